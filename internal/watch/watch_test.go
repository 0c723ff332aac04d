package watch_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/derickschaefer/chartspec/internal/watch"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

// start runs w in the background and returns a stop function that cancels
// it and waits for Run to return.
func start(t *testing.T, w *watch.Watcher) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Run did not return after cancel")
		}
	}
}

func expectCall(t *testing.T, calls <-chan string, what string) string {
	t.Helper()
	select {
	case p := <-calls:
		return p
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		return ""
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestRunCallsHandlerInitiallyAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")
	writeFile(t, path, `{}`)

	calls := make(chan string, 16)
	w, err := watch.New(path, 10*time.Millisecond, nil, func(_ context.Context, p string) error {
		calls <- p
		return nil
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stop := start(t, w)
	defer stop()

	if got := expectCall(t, calls, "initial run"); got != w.Path() {
		t.Errorf("expected %s, got %s", w.Path(), got)
	}
	// give the watcher a moment to be registered before writing
	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, `{"backgroundColor":"#fff"}`)
	expectCall(t, calls, "run after change")
}

func TestRunIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")
	writeFile(t, path, `{}`)

	calls := make(chan string, 16)
	w, err := watch.New(path, 10*time.Millisecond, nil, func(_ context.Context, p string) error {
		calls <- p
		return nil
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stop := start(t, w)
	defer stop()

	expectCall(t, calls, "initial run")
	time.Sleep(50 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "other.json"), `{}`)

	select {
	case <-calls:
		t.Error("handler should not run for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHandlerErrorIsLoggedAndWatchingContinues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")
	writeFile(t, path, `{}`)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	calls := make(chan string, 16)
	w, err := watch.New(path, 10*time.Millisecond, logger, func(_ context.Context, p string) error {
		calls <- p
		return errors.New("bad document")
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stop := start(t, w)

	expectCall(t, calls, "initial run")
	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, `{"x":1}`)
	expectCall(t, calls, "run after failed run")
	stop()

	if !strings.Contains(buf.String(), "bad document") {
		t.Errorf("expected handler error in log, got %q", buf.String())
	}
}

func TestRunMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "chart.json")
	w, err := watch.New(path, time.Second, nil, func(context.Context, string) error { return nil })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
