package annotate

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled is always false, so log calls
// return before building attributes.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

// silent is installed until SetLogger is called with a non-nil logger.
var silent = slog.New(silentHandler{})

// current is read on every surface reload, commit and export; SetLogger
// may swap it from another goroutine.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes annotate's diagnostics to l. A nil l silences them
// again, which is also the initial state.
//
// Records emitted, by level:
//   - [slog.LevelDebug]: "surfaces reloaded" on every image or mask reload,
//     "stroke committed" when a stroke ends
//   - [slog.LevelInfo]: "images added" per batch, "export finished" and
//     "export skipped"
//   - [slog.LevelWarn]: "export entry failed" for each skipped label
//
// Example:
//
//	annotate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger annotate currently writes to.
func Logger() *slog.Logger {
	return current.Load()
}
