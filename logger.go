package trifractal

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops everything; Enabled is false so render loops never
// build attributes for a disabled logger.
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

// SetLogger configures the logger used by trifractal and its commands.
// A Renderer built WithLogger uses its own logger instead. Pass nil to
// restore the silent default.
//
// What is logged where:
//   - Renderer.Render logs "trifractal: rendered" at debug level with the
//     effective depth, the requested depth and the triangle count.
//   - NewRenderer logs a degenerate outer triangle at debug level.
//   - CanvasSurface logs a failed gg fill at warn level with the corners.
//   - NewLabel logs at warn level when the Go Regular face cannot load.
//   - cmd/trifractal logs each written file at info level; the viewer
//     logs window start and rejected depths.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. The viewer calls it from the ebiten
// game loop while tests swap it, so it is read atomically.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
