// Command trifractal renders the midpoint-subdivision triangle fractal to PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // Register the "raster" playback backend

	"github.com/gogpu/trifractal"
	"github.com/gogpu/trifractal/internal/config"
)

func main() {
	err := run(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "trifractal:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("trifractal", flag.ContinueOnError)
	flags := config.Register(fs, config.Default())
	var (
		sweep   = fs.Bool("sweep", false, "render every depth from 0 to max-depth")
		record  = fs.Bool("record", false, "render through a recording and play it back")
		dryRun  = fs.Bool("dry-run", false, "count triangles without drawing")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trifractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Resolve(config.Default())
	if err != nil {
		return err
	}

	r := trifractal.NewRenderer(cfg.Outer(),
		trifractal.WithMaxDepth(cfg.MaxDepth),
		trifractal.WithFillColor(cfg.FillColor()))

	if *dryRun {
		return count(r, cfg, *sweep)
	}

	draw := renderPNG
	if *record {
		draw = renderRecorded
	}
	if !*sweep {
		return draw(r, cfg, cfg.Depth, cfg.Output)
	}
	for d := 0; d <= r.MaxDepth(); d++ {
		if err := draw(r, cfg, d, sweepName(cfg.Output, d)); err != nil {
			return err
		}
	}
	return nil
}

func count(r *trifractal.Renderer, cfg config.Config, sweep bool) error {
	lo, hi := cfg.Depth, cfg.Depth
	if sweep {
		lo, hi = 0, r.MaxDepth()
	}
	for d := lo; d <= hi; d++ {
		var s trifractal.CountingSurface
		if err := r.Render(&s, d); err != nil {
			return err
		}
		fmt.Printf("depth %d: %d triangles\n", trifractal.ClampDepth(d, r.MaxDepth()), s.Fills)
	}
	return nil
}

func renderPNG(r *trifractal.Renderer, cfg config.Config, depth int, path string) error {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer dc.Close()

	s, err := trifractal.NewCanvasSurface(dc, cfg.BackgroundColor())
	if err != nil {
		return err
	}
	if err := r.Render(s, depth); err != nil {
		return err
	}
	if cfg.Label {
		drawLabel(dc, trifractal.ClampDepth(depth, r.MaxDepth()))
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	trifractal.Logger().Info("wrote image", "path", path, "depth", depth,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return nil
}

func renderRecorded(r *trifractal.Renderer, cfg config.Config, depth int, path string) error {
	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	s, err := trifractal.NewRecordingSurface(rec, cfg.BackgroundColor())
	if err != nil {
		return err
	}
	if err := r.Render(s, depth); err != nil {
		return err
	}
	out := rec.FinishRecording()

	backend, err := recording.NewBackend("raster")
	if err != nil {
		return fmt.Errorf("%w: %w", trifractal.ErrMissingSurface, err)
	}
	if err := out.Playback(backend); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("raster backend cannot write files")
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	trifractal.Logger().Info("wrote recording", "path", path, "depth", depth,
		"commands", len(out.Commands()))
	return nil
}

func drawLabel(dc *gg.Context, depth int) {
	l := trifractal.NewLabel(18, gg.Black)
	l.SetText(fmt.Sprint(depth))
	l.Draw(dc, 10, 10)
}

// sweepName turns "out.png" into "out-03.png".
func sweepName(path string, depth int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%02d%s", strings.TrimSuffix(path, ext), depth, ext)
}
