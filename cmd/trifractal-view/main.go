// Command trifractal-view shows the triangle fractal in a window.
//
// The depth is driven like a slider: Up/Right and Down/Left step it, the
// mouse wheel scrolls it and the digit keys jump straight to a depth.
// Every change clears the canvas and redraws from scratch.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/trifractal"
	"github.com/gogpu/trifractal/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "trifractal-view:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("trifractal-view", flag.ContinueOnError)
	def := config.Default()
	def.Label = true
	flags := config.Register(fs, def)
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trifractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Resolve(def)
	if err != nil {
		return err
	}

	v, err := newViewer(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(v.title())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	trifractal.Logger().Info("window opened", "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"depth", v.ctrl.Value())
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("%w: %w", trifractal.ErrMissingSurface, err)
	}
	return nil
}

// viewer implements ebiten.Game. All rendering happens on the game loop
// goroutine, inside the control's change notification.
type viewer struct {
	cfg      config.Config
	renderer *trifractal.Renderer
	ctrl     *trifractal.DepthControl
	label    *trifractal.Label
	dc       *gg.Context
	surface  *trifractal.CanvasSurface

	frame *image.RGBA
	img   *ebiten.Image
	dirty bool
}

func newViewer(cfg config.Config) (*viewer, error) {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	s, err := trifractal.NewCanvasSurface(dc, cfg.BackgroundColor())
	if err != nil {
		return nil, err
	}
	v := &viewer{
		cfg: cfg,
		renderer: trifractal.NewRenderer(cfg.Outer(),
			trifractal.WithMaxDepth(cfg.MaxDepth),
			trifractal.WithFillColor(cfg.FillColor())),
		ctrl:    trifractal.NewDepthControl(cfg.Depth, cfg.MaxDepth),
		label:   trifractal.NewLabel(18, gg.Black),
		dc:      dc,
		surface: s,
		frame:   image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	trifractal.Bind(v.ctrl, v.label, v.render)
	v.render(v.ctrl.Value())
	return v, nil
}

func (v *viewer) render(depth int) {
	if err := v.renderer.Render(v.surface, depth); err != nil {
		trifractal.Logger().Warn("render failed", "depth", depth, "err", err)
		return
	}
	if v.cfg.Label {
		v.label.Draw(v.dc, 10, 10)
	}
	draw.Draw(v.frame, v.frame.Bounds(), v.dc.Image(), image.Point{}, draw.Src)
	v.dirty = true
	ebiten.SetWindowTitle(v.title())
}

func (v *viewer) title() string {
	return fmt.Sprintf("trifractal: depth %d", v.ctrl.Value())
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.ctrl.Step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.ctrl.Step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	for d, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			v.set(d)
		}
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		v.ctrl.Step(1)
	} else if dy < 0 {
		v.ctrl.Step(-1)
	}
	return nil
}

func (v *viewer) set(depth int) {
	if err := v.ctrl.Set(depth); err != nil {
		trifractal.Logger().Warn("depth rejected", "depth", depth, "err", err)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImage(v.cfg.Width, v.cfg.Height)
		v.dirty = true
	}
	if v.dirty {
		v.img.WritePixels(v.frame.Pix)
		v.dirty = false
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
