package hwframe

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/hwframe/va/software"
	"github.com/gogpu/hwframe/vaapi"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for hwframe and all its sub-packages.
// By default, hwframe produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by hwframe:
//   - [slog.LevelDebug]: supported image formats, derived image usage, driver calls
//   - [slog.LevelInfo]: display selection
//   - [slog.LevelWarn]: inconsistent driver answers
//   - [slog.LevelError]: failed VA calls, with the call name and status
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	hwframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	vaapi.SetLogger(l)
	software.SetLogger(l)
}

// Logger returns the current logger used by hwframe.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
