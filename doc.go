// Package trifractal draws the midpoint-subdivision triangle fractal.
//
// # Overview
//
// A triangle is split at its three edge midpoints into four parts. The three
// corner parts are split again, recursively, down to the requested depth;
// the central inverted part is never drawn and never split. Depth D yields
// exactly 3^D filled triangles.
//
// # Quick Start
//
//	dc := gg.NewContext(1200, 800)
//	surface, _ := trifractal.NewCanvasSurface(dc, gg.White)
//
//	r := trifractal.NewRenderer(trifractal.OuterTriangle(1200, 800))
//	if err := r.Render(surface, 5); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("fractal.png")
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. [CanvasSurface] rasterizes
// with gg, [RecordingSurface] captures vector commands with gg/recording,
// and [CountingSurface] only counts.
//
// # Depth control
//
// [DepthControl] is a bounded slider. [Bind] connects it to a [Display]
// such as [Label] and to a render callback, so every change redraws the
// fractal from scratch.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X right, Y down.
package trifractal
