// Package config holds the settings shared by the trifractal commands.
//
// Settings come from built-in defaults, then an optional TOML file, then
// command-line flags that were set explicitly.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/trifractal"
)

// Config is the full set of command settings.
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Depth      int    `toml:"depth"`
	MaxDepth   int    `toml:"max_depth"`
	Fill       string `toml:"fill"`
	Background string `toml:"background"`
	Output     string `toml:"output"`
	Label      bool   `toml:"label"`
}

// Default returns the settings of the original page: a 1200x800 canvas,
// opaque blue fill, depth 0.
func Default() Config {
	return Config{
		Width:      1200,
		Height:     800,
		Depth:      trifractal.DefaultDepth,
		MaxDepth:   trifractal.MaxDepth,
		Fill:       "#0000c8",
		Background: "#ffffff",
		Output:     "trifractal.png",
		Label:      false,
	}
}

// Load reads a TOML file over base. Keys missing from the file keep their
// value from base.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	cfg := base
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return base, fmt.Errorf("config: %s:%d:%d: %w", path, row, col, err)
		}
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Flags binds the settings to fs. Call Resolve after fs.Parse.
type Flags struct {
	fs   *flag.FlagSet
	path *string
	vals Config
}

// Register adds the common flags to fs with defaults taken from def.
func Register(fs *flag.FlagSet, def Config) *Flags {
	f := &Flags{fs: fs, vals: def}
	f.path = fs.String("config", "", "TOML settings file")
	fs.IntVar(&f.vals.Width, "width", def.Width, "canvas width")
	fs.IntVar(&f.vals.Height, "height", def.Height, "canvas height")
	fs.IntVar(&f.vals.Depth, "depth", def.Depth, "recursion depth")
	fs.IntVar(&f.vals.MaxDepth, "max-depth", def.MaxDepth, "highest accepted depth")
	fs.StringVar(&f.vals.Fill, "fill", def.Fill, "triangle fill color (hex)")
	fs.StringVar(&f.vals.Background, "background", def.Background, "background color (hex)")
	fs.StringVar(&f.vals.Output, "output", def.Output, "output file")
	fs.BoolVar(&f.vals.Label, "label", def.Label, "draw the depth caption")
	return f
}

// Resolve merges defaults, the -config file and explicitly set flags, and
// validates the result.
func (f *Flags) Resolve(def Config) (Config, error) {
	cfg := def
	if *f.path != "" {
		var err error
		if cfg, err = Load(*f.path, def); err != nil {
			return def, err
		}
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.vals.Width
		case "height":
			cfg.Height = f.vals.Height
		case "depth":
			cfg.Depth = f.vals.Depth
		case "max-depth":
			cfg.MaxDepth = f.vals.MaxDepth
		case "fill":
			cfg.Fill = f.vals.Fill
		case "background":
			cfg.Background = f.vals.Background
		case "output":
			cfg.Output = f.vals.Output
		case "label":
			cfg.Label = f.vals.Label
		}
	})
	return cfg, cfg.Validate()
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxDepth < 0 || c.MaxDepth > trifractal.MaxDepth {
		return fmt.Errorf("config: %w: max_depth %d outside [0, %d]",
			trifractal.ErrInvalidArgument, c.MaxDepth, trifractal.MaxDepth)
	}
	if c.Depth < 0 || c.Depth > c.MaxDepth {
		return fmt.Errorf("config: %w: depth %d outside [0, %d]",
			trifractal.ErrInvalidArgument, c.Depth, c.MaxDepth)
	}
	if !validHex(c.Fill) {
		return fmt.Errorf("config: fill color %q is not hex", c.Fill)
	}
	if !validHex(c.Background) {
		return fmt.Errorf("config: background color %q is not hex", c.Background)
	}
	return nil
}

// FillColor returns the parsed fill color.
func (c Config) FillColor() gg.RGBA {
	return gg.Hex(c.Fill)
}

// BackgroundColor returns the parsed background color.
func (c Config) BackgroundColor() gg.RGBA {
	return gg.Hex(c.Background)
}

// Outer returns the outer triangle for the configured canvas.
func (c Config) Outer() trifractal.Triangle {
	return trifractal.OuterTriangle(float64(c.Width), float64(c.Height))
}

// validHex accepts the forms gg.Hex understands: RGB, RGBA, RRGGBB and
// RRGGBBAA, with an optional leading '#'.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
