package surfmanip

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the hosts and the run loop. By default
// nothing is logged. Pass nil to restore that. The pixel writers never log.
//
// Levels used:
//   - [slog.LevelDebug]: per-frame diagnostics
//   - [slog.LevelInfo]: host lifecycle (surface opened, loop stopped)
//   - [slog.LevelWarn]: non-fatal host failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Host packages share it through this call.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
