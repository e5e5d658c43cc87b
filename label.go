package trifractal

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label is the text display paired with a DepthControl. It remembers the
// last value it was given and draws it, with the resulting triangle count,
// onto a gg.Context.
type Label struct {
	mu      sync.Mutex
	text    string
	face    text.Face
	color   gg.RGBA
	printer *message.Printer
}

// NewLabel creates a label using the Go Regular font at size points.
// If the font cannot be loaded the label still tracks its text but Draw
// does nothing.
func NewLabel(size float64, col gg.RGBA) *Label {
	l := &Label{
		text:    fmt.Sprint(DefaultDepth),
		color:   col,
		printer: message.NewPrinter(language.English),
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		Logger().Warn("trifractal: label font unavailable", "err", err)
		return l
	}
	l.face = source.Face(size)
	return l
}

// SetText implements Display.
func (l *Label) SetText(s string) {
	l.mu.Lock()
	l.text = s
	l.mu.Unlock()
}

// Text returns the last value passed to SetText.
func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

// Caption returns the full line drawn by Draw, e.g.
// "depth 10 · 59,049 triangles".
func (l *Label) Caption() string {
	s := l.Text()
	d, err := ParseDepth(s)
	if err != nil || d > MaxDepth {
		return "depth " + s
	}
	n := LeafCount(d)
	if n == 1 {
		return l.printer.Sprintf("depth %d · %d triangle", d, n)
	}
	return l.printer.Sprintf("depth %d · %d triangles", d, n)
}

// Draw writes the caption with its top-left corner near (x, y).
func (l *Label) Draw(dc *gg.Context, x, y float64) {
	if dc == nil || l.face == nil {
		return
	}
	dc.SetFont(l.face)
	dc.SetRGBA(l.color.R, l.color.G, l.color.B, l.color.A)
	dc.DrawStringAnchored(l.Caption(), x, y, 0, 1)
}
