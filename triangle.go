package trifractal

import (
	"fmt"
	"math"
)

// Triangle is three ordered corners. The order does not change the filled
// shape but decides which sub-triangle is visited first.
type Triangle struct {
	A, B, C Point
}

// Tri is a convenience function to create a Triangle.
func Tri(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// OuterTriangle returns the default outer triangle for a surface of the
// given size: apex at the top centre, base along the bottom edge.
func OuterTriangle(width, height float64) Triangle {
	return Triangle{
		A: Pt(width/2, 0),
		B: Pt(0, height),
		C: Pt(width, height),
	}
}

// Corners returns the three corners in order.
func (t Triangle) Corners() (a, b, c Point) {
	return t.A, t.B, t.C
}

// Midpoints returns the midpoints of edges AB, BC and CA.
func (t Triangle) Midpoints() (ab, bc, ca Point) {
	return Midpoint(t.A, t.B), Midpoint(t.B, t.C), Midpoint(t.C, t.A)
}

// Split returns the corner sub-triangles in visiting order:
// (A, mAB, mCA), (mAB, B, mBC), (mCA, mBC, C).
func (t Triangle) Split() [3]Triangle {
	ab, bc, ca := t.Midpoints()
	return [3]Triangle{
		{A: t.A, B: ab, C: ca},
		{A: ab, B: t.B, C: bc},
		{A: ca, B: bc, C: t.C},
	}
}

// Center returns the inverted triangle (mAB, mBC, mCA) left over by Split.
// Subdivision never draws or descends into it.
func (t Triangle) Center() Triangle {
	ab, bc, ca := t.Midpoints()
	return Triangle{A: ab, B: bc, C: ca}
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

// Degenerate reports whether the corners are collinear.
func (t Triangle) Degenerate() bool {
	return t.Area() == 0
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.A, t.B, t.C)
}
