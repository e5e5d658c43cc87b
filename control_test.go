package trifractal

import (
	"errors"
	"testing"
)

type textDisplay struct {
	texts []string
}

func (d *textDisplay) SetText(s string) {
	d.texts = append(d.texts, s)
}

func TestNewDepthControl_Clamps(t *testing.T) {
	tests := []struct {
		name           string
		initial, limit int
		want           int
	}{
		{"in range", 3, 10, 3},
		{"above", 15, 10, 10},
		{"below", -4, 10, 0},
		{"negative limit", 2, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDepthControl(tt.initial, tt.limit)
			if c.Value() != tt.want {
				t.Errorf("Value() = %d, want %d", c.Value(), tt.want)
			}
		})
	}
}

func TestDepthControl_Set(t *testing.T) {
	c := NewDepthControl(0, 5)
	var seen []int
	c.OnChange(func(d int) { seen = append(seen, d) })

	if err := c.Set(4); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(9); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Set(-1) error = %v, want ErrInvalidArgument", err)
	}
	if c.Value() != 5 {
		t.Errorf("Value() = %d, want 5", c.Value())
	}
	want := []int{4, 5}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestDepthControl_SetText(t *testing.T) {
	c := NewDepthControl(0, MaxDepth)
	if err := c.SetText(" 7 "); err != nil {
		t.Fatal(err)
	}
	if c.Value() != 7 {
		t.Errorf("Value() = %d, want 7", c.Value())
	}
	for _, bad := range []string{"", "abc", "2.5", "-3"} {
		if err := c.SetText(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetText(%q) error = %v, want ErrInvalidArgument", bad, err)
		}
	}
	if c.Value() != 7 {
		t.Errorf("Value() = %d after rejected input, want 7", c.Value())
	}
}

func TestDepthControl_Step(t *testing.T) {
	c := NewDepthControl(1, 3)
	c.Step(1)
	c.Step(5)
	if c.Value() != 3 {
		t.Errorf("Value() = %d, want 3", c.Value())
	}
	c.Step(-10)
	if c.Value() != 0 {
		t.Errorf("Value() = %d, want 0", c.Value())
	}
	if c.Max() != 3 {
		t.Errorf("Max() = %d, want 3", c.Max())
	}
}

func TestDepthControl_ListenersInOrder(t *testing.T) {
	c := NewDepthControl(0, 4)
	var order []string
	c.OnChange(func(int) { order = append(order, "first") })
	c.OnChange(func(int) { order = append(order, "second") })
	c.Step(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestBind(t *testing.T) {
	c := NewDepthControl(2, MaxDepth)
	var d textDisplay
	var spy spySurface
	var rendered []int
	Bind(c, &d, func(depth int) {
		rendered = append(rendered, depth)
		if err := RenderFractal(&spy, page, depth); err != nil {
			t.Errorf("RenderFractal: %v", err)
		}
	})

	if len(d.texts) != 1 || d.texts[0] != "2" {
		t.Fatalf("initial display = %v, want [2]", d.texts)
	}

	if err := c.Set(3); err != nil {
		t.Fatal(err)
	}
	if d.texts[len(d.texts)-1] != "3" {
		t.Errorf("display = %q, want 3", d.texts[len(d.texts)-1])
	}
	if len(rendered) != 1 || rendered[0] != 3 {
		t.Errorf("rendered = %v, want [3]", rendered)
	}
	if len(spy.fills) != 27 {
		t.Errorf("fills = %d, want 27", len(spy.fills))
	}

	// Each change starts from scratch with a clear.
	c.Step(-3)
	if got := spy.calls[len(spy.calls)-2]; got != "clear" {
		t.Errorf("call before depth-0 fill = %q, want clear", got)
	}
	if d.texts[len(d.texts)-1] != "0" {
		t.Errorf("display = %q, want 0", d.texts[len(d.texts)-1])
	}
}

func TestBind_NilCollaborators(t *testing.T) {
	c := NewDepthControl(0, 2)
	Bind(c, nil, nil)
	c.Step(1)
	if c.Value() != 1 {
		t.Errorf("Value() = %d, want 1", c.Value())
	}
}

func TestDepthControl_NotifyDuringListener(t *testing.T) {
	c := NewDepthControl(0, 3)
	var seen []int
	c.OnChange(func(d int) {
		seen = append(seen, d)
		// Registering from inside a notification must not affect the
		// snapshot being delivered.
		c.OnChange(func(int) {})
	})
	c.Step(1)
	c.Step(1)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
}
