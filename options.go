package trifractal

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Option configures a Renderer during creation.
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	maxDepth int
	fill     gg.RGBA
	useFill  bool
	logger   *slog.Logger
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		maxDepth: MaxDepth,
		fill:     DefaultFill,
		useFill:  true,
		logger:   nil, // Falls back to the package logger
	}
}

func (o options) loggerOrDefault() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// WithMaxDepth sets the depth ceiling, clamped to [0, MaxDepth].
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = ClampDepth(n, MaxDepth)
	}
}

// WithFillColor sets the color applied to a ColorSurface before drawing.
func WithFillColor(c gg.RGBA) Option {
	return func(o *options) {
		o.fill = c
		o.useFill = true
	}
}

// WithInheritedFill leaves the surface's current fill color alone.
func WithInheritedFill() Option {
	return func(o *options) {
		o.useFill = false
	}
}

// WithLogger sets a logger for this Renderer only.
// By default the package logger from Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
