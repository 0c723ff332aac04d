// Package watch re-runs a handler whenever a chart document changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a new file and renaming it over the old one
// are still seen. Bursts of events are coalesced and handler runs are spaced
// at least one interval apart.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Handler processes the watched file. An error is logged and watching
// continues.
type Handler func(ctx context.Context, path string) error

// Watcher monitors one file.
type Watcher struct {
	path    string
	handle  Handler
	limiter *rate.Limiter
	logger  *log.Logger
}

// New creates a watcher for path. interval is the minimum spacing between
// handler runs.
func New(path string, interval time.Duration, logger *log.Logger, handle Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:    abs,
		handle:  handle,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run calls the handler once, then again after every change, until ctx is
// cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("watching", "path", w.path)

	// the initial run spends the limiter's burst token
	w.limiter.Allow()
	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("change", "op", ev.Op.String())
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(fw.Events)
			w.run(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) run(ctx context.Context) {
	if err := w.handle(ctx, w.path); err != nil {
		w.logger.Error("handler failed", "path", w.path, "err", err)
	}
}

// drain discards events that queued up while waiting for the limiter.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
