package app_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/config"
	"github.com/derickschaefer/chartspec/pkg/chart"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want log.Level
	}{
		{"default", config.Config{}, log.WarnLevel},
		{"verbose", config.Config{Verbose: true}, log.InfoLevel},
		{"debug", config.Config{Debug: true}, log.DebugLevel},
		{"debug beats verbose", config.Config{Verbose: true, Debug: true}, log.DebugLevel},
		{"quiet beats everything", config.Config{Quiet: true, Debug: true}, log.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := app.Level(&tt.cfg); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := app.NewLogger(&buf, log.WarnLevel)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := app.NewProgress(app.NewLogger(&buf, log.InfoLevel))
	prog.Done("formatted 3 files")

	out := buf.String()
	if !strings.Contains(out, "formatted 3 files") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "s)") {
		t.Errorf("expected elapsed duration in output, got %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	logger := app.NewLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := app.WithLogger(context.Background(), logger)
	if got := app.LoggerFromContext(ctx); got != logger {
		t.Error("expected the attached logger back")
	}
	if got := app.LoggerFromContext(context.Background()); got != log.Default() {
		t.Error("expected log.Default() without an attached logger")
	}
}

func TestStoreOpensLazily(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "charts.db")}
	deps := app.New(cfg, &bytes.Buffer{})
	t.Cleanup(func() { _ = deps.Close() })

	s1, err := deps.Store()
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	s2, err := deps.Store()
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if s1 != s2 {
		t.Error("Store should return the already open store")
	}
	if _, err := s1.Save("x", chart.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestCloseWithoutStore(t *testing.T) {
	deps := app.New(&config.Config{}, &bytes.Buffer{})
	if err := deps.Close(); err != nil {
		t.Errorf("Close without store: %v", err)
	}
}
