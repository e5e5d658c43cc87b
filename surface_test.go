package trifractal

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func TestNewCanvasSurface_Nil(t *testing.T) {
	if _, err := NewCanvasSurface(nil, gg.White); !errors.Is(err, ErrMissingSurface) {
		t.Errorf("NewCanvasSurface(nil) error = %v, want ErrMissingSurface", err)
	}
}

func TestNewRecordingSurface_Nil(t *testing.T) {
	if _, err := NewRecordingSurface(nil, gg.White); !errors.Is(err, ErrMissingSurface) {
		t.Errorf("NewRecordingSurface(nil) error = %v, want ErrMissingSurface", err)
	}
}

func TestCanvasSurface_Render(t *testing.T) {
	dc := gg.NewContext(120, 80)
	s, err := NewCanvasSurface(dc, gg.White)
	if err != nil {
		t.Fatal(err)
	}
	if s.Context() != dc {
		t.Error("Context() does not return the wrapped context")
	}

	r := NewRenderer(OuterTriangle(120, 80), WithFillColor(gg.Blue))
	if err := r.Render(s, 1); err != nil {
		t.Fatal(err)
	}
	img := dc.Image()

	// Inside the top corner triangle.
	if _, _, b, _ := img.At(60, 20).RGBA(); b < 0xE000 {
		t.Errorf("pixel in corner triangle not blue: %v", img.At(60, 20))
	}
	// Centre of the skipped inverted triangle stays background.
	if r, g, b, _ := img.At(60, 60).RGBA(); r < 0xE000 || g < 0xE000 || b < 0xE000 {
		t.Errorf("pixel in central triangle not white: %v", img.At(60, 60))
	}
	// Outside the outer triangle.
	if r, g, _, _ := img.At(5, 5).RGBA(); r < 0xE000 || g < 0xE000 {
		t.Errorf("pixel outside triangle not white: %v", img.At(5, 5))
	}
}

func TestCanvasSurface_ClearErasesPreviousFrame(t *testing.T) {
	dc := gg.NewContext(120, 80)
	s, err := NewCanvasSurface(dc, gg.White)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(OuterTriangle(120, 80), WithFillColor(gg.Blue))
	if err := r.Render(s, 0); err != nil {
		t.Fatal(err)
	}
	if _, _, b, _ := dc.Image().At(60, 60).RGBA(); b < 0xE000 {
		t.Fatalf("depth 0 did not fill the centre: %v", dc.Image().At(60, 60))
	}

	if err := r.Render(s, 1); err != nil {
		t.Fatal(err)
	}
	if r, g, _, _ := dc.Image().At(60, 60).RGBA(); r < 0xE000 || g < 0xE000 {
		t.Errorf("centre still filled after re-render at depth 1: %v", dc.Image().At(60, 60))
	}
}

func TestRecordingSurface_Render(t *testing.T) {
	rec := recording.NewRecorder(120, 80)
	s, err := NewRecordingSurface(rec, gg.White)
	if err != nil {
		t.Fatal(err)
	}
	if s.Recorder() != rec {
		t.Error("Recorder() does not return the wrapped recorder")
	}
	if err := NewRenderer(OuterTriangle(120, 80)).Render(s, 2); err != nil {
		t.Fatal(err)
	}

	var fills, rects int
	for _, cmd := range rec.FinishRecording().Commands() {
		switch cmd.(type) {
		case recording.FillPathCommand:
			fills++
		case recording.FillRectCommand:
			rects++
		}
	}
	if fills != 9 {
		t.Errorf("fill commands = %d, want 9", fills)
	}
	// The clear is recorded as one full-canvas rectangle.
	if rects != 1 {
		t.Errorf("fill rect commands = %d, want 1", rects)
	}
}

func TestCountingSurface(t *testing.T) {
	var s CountingSurface
	if err := RenderFractal(&s, page, 3); err != nil {
		t.Fatal(err)
	}
	if err := RenderFractal(&s, page, 1); err != nil {
		t.Fatal(err)
	}
	if s.Fills != 27+3 {
		t.Errorf("Fills = %d, want 30", s.Fills)
	}
	if s.Clears != 2 {
		t.Errorf("Clears = %d, want 2", s.Clears)
	}
}
