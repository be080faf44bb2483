package ggview

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggview/assets"
	"github.com/gogpu/ggview/backend/wgpu"
	"github.com/gogpu/ggview/engine"
	"github.com/gogpu/ggview/host"
	"github.com/gogpu/ggview/window"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggview and its packages: engine,
// window, host, backend/wgpu and assets. By default nothing is logged.
// Pass nil to restore silence.
//
// Log levels used by ggview:
//   - [slog.LevelDebug]: per-window diagnostics (surface sizes, routed
//     events, backend calls when Traits.APIDump is set)
//   - [slog.LevelInfo]: lifecycle events (device created, view added)
//   - [slog.LevelWarn]: non-fatal issues (surface resize or cache failures)
//
// Example:
//
//	ggview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	engine.SetLogger(l)
	window.SetLogger(l)
	host.SetLogger(l)
	wgpu.SetLogger(l)
	assets.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
