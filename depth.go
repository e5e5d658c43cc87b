package trifractal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxDepth is the highest recursion depth a control will accept.
	// Depth 10 already emits 59,049 triangles.
	MaxDepth = 10

	// DefaultDepth is the depth rendered before the control is touched.
	DefaultDepth = 0
)

// LeafCount returns the number of leaf triangles emitted at depth, 3^depth.
// It returns 0 for a negative depth and saturates at math.MaxInt.
func LeafCount(depth int) int {
	if depth < 0 {
		return 0
	}
	n := 1
	for range depth {
		if n > math.MaxInt/3 {
			return math.MaxInt
		}
		n *= 3
	}
	return n
}

// ClampDepth clamps depth into [0, limit].
func ClampDepth(depth, limit int) int {
	return max(0, min(depth, limit))
}

// ParseDepth parses a depth as typed into or reported by a control.
// Surrounding whitespace is ignored. Values above MaxDepth are returned as
// is; controls clamp them.
func ParseDepth(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: depth %q is not an integer", ErrInvalidArgument, s)
	}
	if err := checkNonNegative(d); err != nil {
		return 0, err
	}
	return d, nil
}

// checkDepth accepts depths in [0, MaxDepth].
func checkDepth(depth int) error {
	if err := checkNonNegative(depth); err != nil {
		return err
	}
	if depth > MaxDepth {
		return fmt.Errorf("%w: depth %d exceeds %d", ErrInvalidArgument, depth, MaxDepth)
	}
	return nil
}

func checkNonNegative(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidArgument, depth)
	}
	return nil
}
