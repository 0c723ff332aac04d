// Package app wires together configuration, the logger, and the chart store
// into a single Deps struct that commands receive at runtime.
package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/derickschaefer/chartspec/internal/config"
	"github.com/derickschaefer/chartspec/internal/store"
)

// Deps holds all runtime dependencies injected into command Run functions.
// The store is opened on first use so commands that never touch it do not
// take the database lock.
type Deps struct {
	Config *config.Config
	Logger *log.Logger

	store *store.Store
}

// New builds a Deps from resolved config. Log output goes to w.
func New(cfg *config.Config, w io.Writer) *Deps {
	return &Deps{
		Config: cfg,
		Logger: NewLogger(w, Level(cfg)),
	}
}

// Store opens the chart store at Config.DBPath, or returns the one already
// open.
func (d *Deps) Store() (*store.Store, error) {
	if d.store != nil {
		return d.store, nil
	}
	s, err := store.Open(d.Config.DBPath)
	if err != nil {
		return nil, err
	}
	d.Logger.Debug("opened store", "path", s.Path())
	d.store = s
	return s, nil
}

// Close releases the store if it was opened.
func (d *Deps) Close() error {
	if d.store == nil {
		return nil
	}
	err := d.store.Close()
	d.store = nil
	return err
}

// ─── Logging ──────────────────────────────────────────────────────────────────

// NewLogger creates a logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level maps the --quiet, --verbose and --debug flags to a log level.
// Without flags only warnings and errors are shown.
func Level(cfg *config.Config) log.Level {
	switch {
	case cfg.Quiet:
		return log.ErrorLevel
	case cfg.Debug:
		return log.DebugLevel
	case cfg.Verbose:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// Progress tracks the start time of an operation and logs completion with
// elapsed duration.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg along with the elapsed time, rounded to the millisecond.
func (p *Progress) Done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext retrieves the logger from ctx, or log.Default() when none
// is attached.
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
