package trifractal

import (
	"slices"
	"strconv"
	"sync"
)

// Display shows the current depth as text next to a control.
type Display interface {
	SetText(s string)
}

// DepthControl is a bounded integer slider for the recursion depth.
//
// Every accepted change notifies the registered listeners synchronously, in
// registration order, even when the value did not move. This mirrors an
// input event firing on each user interaction.
type DepthControl struct {
	mu        sync.Mutex
	value     int
	limit     int
	listeners []func(int)
}

// NewDepthControl creates a control over [0, limit] starting at initial.
// The limit is clamped to [0, MaxDepth] and initial into [0, limit].
func NewDepthControl(initial, limit int) *DepthControl {
	limit = ClampDepth(limit, MaxDepth)
	return &DepthControl{value: ClampDepth(initial, limit), limit: limit}
}

// Value returns the current depth.
func (c *DepthControl) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Max returns the upper bound.
func (c *DepthControl) Max() int {
	return c.limit
}

// OnChange registers fn to be called with the new value on every change.
func (c *DepthControl) OnChange(fn func(int)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Set moves the control to depth, clamped to Max. A negative depth returns
// ErrInvalidArgument and leaves the control unchanged.
func (c *DepthControl) Set(depth int) error {
	if err := checkNonNegative(depth); err != nil {
		return err
	}
	c.update(func(int) int { return ClampDepth(depth, c.limit) })
	return nil
}

// SetText parses s as a depth and sets it.
func (c *DepthControl) SetText(s string) error {
	d, err := ParseDepth(s)
	if err != nil {
		return err
	}
	return c.Set(d)
}

// Step moves the control by delta, saturating at both ends.
func (c *DepthControl) Step(delta int) {
	c.update(func(v int) int { return ClampDepth(v+delta, c.limit) })
}

func (c *DepthControl) update(next func(int) int) {
	c.mu.Lock()
	c.value = next(c.value)
	v := c.value
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Bind wires a control to its display and to a render callback: each change
// updates the display text and then calls render with the new depth.
// The display is initialised with the current value.
func Bind(c *DepthControl, d Display, render func(depth int)) {
	if d != nil {
		d.SetText(strconv.Itoa(c.Value()))
	}
	c.OnChange(func(depth int) {
		if d != nil {
			d.SetText(strconv.Itoa(depth))
		}
		if render != nil {
			render(depth)
		}
	})
}
