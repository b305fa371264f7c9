package paint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled log
// calls never format their arguments.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is the logger installed by default and by SetLogger(nil).
var silent = slog.New(nopHandler{})

// active holds the current logger; SetLogger may race with session logging.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger configures the logger used by paint.
// By default, paint produces no log output. Pass nil to restore the default.
//
// Log levels used by paint:
//   - [slog.LevelDebug]: stroke lifecycle, command execution, undo and reset
//   - [slog.LevelInfo]: buffer loads
//   - [slog.LevelWarn]: rejected brush settings and discarded history entries
//
// Example:
//
//	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the current logger used by paint.
func Logger() *slog.Logger {
	return active.Load()
}
