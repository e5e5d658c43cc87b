package trifractal

import "errors"

var (
	// ErrInvalidArgument is returned for a negative or non-numeric depth.
	ErrInvalidArgument = errors.New("trifractal: invalid argument")

	// ErrMissingSurface is returned when no drawing surface is available.
	// It is fatal to the demo instance that hit it.
	ErrMissingSurface = errors.New("trifractal: missing drawing surface")
)
