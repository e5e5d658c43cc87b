package trifractal

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// DefaultFill is the fill color used when none is configured.
var DefaultFill = gg.RGB(0, 0, 200.0/255)

// RenderFractal clears s and fills every leaf triangle of t at depth.
//
// The fill color is whatever s currently uses. A nil surface returns
// ErrMissingSurface; a depth outside [0, MaxDepth] returns
// ErrInvalidArgument and leaves the surface untouched.
func RenderFractal(s Surface, t Triangle, depth int) error {
	if s == nil {
		return ErrMissingSurface
	}
	if err := checkDepth(depth); err != nil {
		return err
	}

	s.Clear()
	return Subdivide(t, depth, func(leaf Triangle) {
		s.FillTriangle(leaf.A, leaf.B, leaf.C)
	})
}

// Renderer draws the fractal for a fixed outer triangle.
// A Renderer is immutable and may be shared.
type Renderer struct {
	outer    Triangle
	maxDepth int
	fill     gg.RGBA
	useFill  bool
	logger   *slog.Logger
}

// NewRenderer creates a Renderer for the outer triangle.
//
// Example:
//
//	r := trifractal.NewRenderer(trifractal.OuterTriangle(1200, 800),
//	    trifractal.WithMaxDepth(8),
//	    trifractal.WithFillColor(gg.Hex("#0000c8")))
//	err := r.Render(surface, 5)
func NewRenderer(outer Triangle, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if outer.Degenerate() {
		o.loggerOrDefault().Debug("trifractal: degenerate outer triangle", "outer", outer)
	}
	return &Renderer{
		outer:    outer,
		maxDepth: o.maxDepth,
		fill:     o.fill,
		useFill:  o.useFill,
		logger:   o.logger,
	}
}

// Outer returns the outer triangle.
func (r *Renderer) Outer() Triangle {
	return r.outer
}

// MaxDepth returns the depth ceiling.
func (r *Renderer) MaxDepth() int {
	return r.maxDepth
}

// Render clears s and draws the fractal at depth, clamped to the
// renderer's ceiling.
// If s is a ColorSurface the configured fill color is applied first.
func (r *Renderer) Render(s Surface, depth int) error {
	if s == nil {
		return ErrMissingSurface
	}
	if err := checkNonNegative(depth); err != nil {
		return err
	}
	d := ClampDepth(depth, r.maxDepth)
	if cs, ok := s.(ColorSurface); ok && r.useFill {
		cs.SetFillColor(r.fill)
	}
	if err := RenderFractal(s, r.outer, d); err != nil {
		return err
	}
	r.log().Debug("trifractal: rendered",
		"depth", d,
		"requested", depth,
		"triangles", LeafCount(d))
	return nil
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}
