package trifractal

import "iter"

// task is a pending sub-triangle on the subdivision worklist.
type task struct {
	tri   Triangle
	depth int
}

// Subdivide emits the leaf triangles of the midpoint subdivision of t.
//
// At depth 0, t itself is the only leaf. Otherwise t is split at its edge
// midpoints and the three corner triangles are subdivided at depth-1, in the
// order corner A, corner B, corner C, depth-first. The central triangle is
// never emitted. Exactly LeafCount(depth) leaves are emitted.
//
// A depth outside [0, MaxDepth] returns an error wrapping
// ErrInvalidArgument and emits nothing.
func Subdivide(t Triangle, depth int, emit func(Triangle)) error {
	if err := checkDepth(depth); err != nil {
		return err
	}
	walk(t, depth, func(leaf Triangle) bool {
		emit(leaf)
		return true
	})
	return nil
}

// Leaves returns the leaf triangles of t at depth in emission order.
func Leaves(t Triangle, depth int) ([]Triangle, error) {
	if err := checkDepth(depth); err != nil {
		return nil, err
	}
	out := make([]Triangle, 0, LeafCount(depth))
	walk(t, depth, func(leaf Triangle) bool {
		out = append(out, leaf)
		return true
	})
	return out, nil
}

// Walk returns an iterator over the leaf triangles of t at depth, in the
// same order Subdivide emits them. A depth outside [0, MaxDepth] yields
// nothing.
func Walk(t Triangle, depth int) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		if checkDepth(depth) != nil {
			return
		}
		walk(t, depth, yield)
	}
}

// walk runs the subdivision on an explicit stack. Children are pushed in
// reverse so they pop as A, B, C; the stack never holds more than
// 2*depth+1 tasks.
func walk(t Triangle, depth int, yield func(Triangle) bool) {
	stack := make([]task, 1, 2*depth+1)
	stack[0] = task{tri: t, depth: depth}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth == 0 {
			if !yield(top.tri) {
				return
			}
			continue
		}

		sub := top.tri.Split()
		next := top.depth - 1
		stack = append(stack,
			task{tri: sub[2], depth: next},
			task{tri: sub[1], depth: next},
			task{tri: sub[0], depth: next},
		)
	}
}
