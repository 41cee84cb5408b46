// Package raster2d is a 2D vector rasterizer and glyph-imaging engine: a
// cell-based anti-aliased scanline rasterizer, a stroker with synth style
// transforms, a multi-channel signed distance field generator, a glyph
// atlas packer, and a linear/radial gradient sampler.
//
// The package is organized the way agg_go organizes its own public
// surface — a thin root package that re-exports the pieces it needs from
// its internal/ subsystems, so callers get one import and one set of
// names:
//
//   - raster2d.go  - this file: package doc, shared type aliases
//   - path.go      - Path construction (internal/gpath)
//   - raster.go    - Rasterize, the Path -> Bitmap entry point (internal/
//     scanraster, internal/pixfmt)
//   - stroke.go    - Stroke, StrokeAsymmetric, Embolden, and the synth
//     transform family (internal/stroker)
//   - msdf.go      - GenerateMSDF (internal/msdf)
//   - atlas.go     - AtlasBuilder (internal/atlas)
//   - gradient.go  - LinearGradient, RadialGradient, FillGradient
//     (internal/gradient)
//
// Basic usage:
//
//	p := raster2d.NewPath().MoveTo(0, 0).LineTo(100, 0).LineTo(50, 80).ClosePath()
//	bmp, err := raster2d.Rasterize(p, raster2d.Options{
//		Width: 100, Height: 100, ScaleX: 1, ScaleY: 1, Mode: raster2d.RGBA,
//	})
package raster2d

import (
	"github.com/vexraster/raster2d/internal/pixfmt"
	"github.com/vexraster/raster2d/internal/scanraster"
)

// PixelMode selects the byte layout Rasterize writes (spec §6).
type PixelMode = pixfmt.PixelMode

const (
	Gray          = pixfmt.Gray
	Mono          = pixfmt.Mono
	LCDHorizontal = pixfmt.LCDHorizontal
	LCDVertical   = pixfmt.LCDVertical
	RGBA          = pixfmt.RGBA
)

// FillRule selects how accumulated winding is mapped to coverage (spec §4.4).
type FillRule = scanraster.FillRule

const (
	NonZero = scanraster.NonZero
	EvenOdd = scanraster.EvenOdd
)

// Color is a caller-provided foreground used when painting RGBA targets;
// coverage from rasterization supplies the alpha channel.
type Color = pixfmt.Color

// Bitmap is an owned pixel buffer (spec §6): {buffer, width, rows, pitch,
// pixelMode}. A negative Pitch means row 0 is stored at the end of the
// buffer (bottom-up).
type Bitmap = pixfmt.Bitmap
