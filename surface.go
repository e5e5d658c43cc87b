package trifractal

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Surface is a 2D drawing target. Implementations are synchronous and are
// assumed to always succeed.
type Surface interface {
	// FillTriangle fills the triangle abc with the current fill color.
	FillTriangle(a, b, c Point)

	// Clear erases everything drawn so far.
	Clear()
}

// ColorSurface is a Surface whose fill color can be configured.
// Renderer sets the color before drawing; RenderFractal never does.
type ColorSurface interface {
	Surface
	SetFillColor(c gg.RGBA)
}

// CanvasSurface draws onto a gg.Context using its software rasterizer.
type CanvasSurface struct {
	dc         *gg.Context
	background gg.RGBA
}

// NewCanvasSurface wraps dc. Clear paints the surface with background.
// It returns ErrMissingSurface if dc is nil.
func NewCanvasSurface(dc *gg.Context, background gg.RGBA) (*CanvasSurface, error) {
	if dc == nil {
		return nil, ErrMissingSurface
	}
	return &CanvasSurface{dc: dc, background: background}, nil
}

// Context returns the wrapped drawing context.
func (s *CanvasSurface) Context() *gg.Context {
	return s.dc
}

// FillTriangle implements Surface.
func (s *CanvasSurface) FillTriangle(a, b, c Point) {
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	s.dc.LineTo(c.X, c.Y)
	s.dc.ClosePath()
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("trifractal: fill failed", "a", a, "b", b, "c", c, "err", err)
	}
}

// Clear implements Surface.
func (s *CanvasSurface) Clear() {
	s.dc.ClearPath()
	s.dc.ClearWithColor(s.background)
}

// SetFillColor implements ColorSurface.
func (s *CanvasSurface) SetFillColor(c gg.RGBA) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// RecordingSurface captures fills as vector commands on a recording.Recorder
// so a render can be played back to any registered recording backend.
type RecordingSurface struct {
	rec        *recording.Recorder
	background gg.RGBA
}

// NewRecordingSurface wraps rec. It returns ErrMissingSurface if rec is nil.
func NewRecordingSurface(rec *recording.Recorder, background gg.RGBA) (*RecordingSurface, error) {
	if rec == nil {
		return nil, ErrMissingSurface
	}
	return &RecordingSurface{rec: rec, background: background}, nil
}

// Recorder returns the wrapped recorder.
func (s *RecordingSurface) Recorder() *recording.Recorder {
	return s.rec
}

// FillTriangle implements Surface.
func (s *RecordingSurface) FillTriangle(a, b, c Point) {
	s.rec.MoveTo(a.X, a.Y)
	s.rec.LineTo(b.X, b.Y)
	s.rec.LineTo(c.X, c.Y)
	s.rec.ClosePath()
	s.rec.Fill()
}

// Clear implements Surface. A recording cannot forget commands, so clearing
// records a full-canvas rectangle in the background color.
func (s *RecordingSurface) Clear() {
	s.rec.ClearPath()
	s.rec.ClearWithColor(s.background)
}

// SetFillColor implements ColorSurface.
func (s *RecordingSurface) SetFillColor(c gg.RGBA) {
	s.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
}

// CountingSurface draws nothing and counts calls.
type CountingSurface struct {
	Fills  int
	Clears int
}

// FillTriangle implements Surface.
func (s *CountingSurface) FillTriangle(_, _, _ Point) {
	s.Fills++
}

// Clear implements Surface. It does not reset Fills.
func (s *CountingSurface) Clear() {
	s.Clears++
}
