package raster2d

import "github.com/vexraster/raster2d/internal/gradient"

// ColorStop is one color at a normalized offset along a gradient (spec §4.9).
type ColorStop = gradient.ColorStop

// Gradient evaluates a color at a design-space point.
type Gradient = gradient.Gradient

// LinearGradient projects a point onto a segment and interpolates color
// stops along it (spec §4.9, component C9).
type LinearGradient = gradient.Linear

// NewLinearGradient builds a linear gradient from (p0x,p0y) to (p1x,p1y).
func NewLinearGradient(p0x, p0y, p1x, p1y float64, stops []ColorStop) *LinearGradient {
	return gradient.NewLinear(p0x, p0y, p1x, p1y, stops)
}

// RadialGradient evaluates color by normalized distance from a center
// point (spec §4.9, component C9).
type RadialGradient = gradient.Radial

// NewRadialGradient builds a radial gradient centered at (cx,cy).
func NewRadialGradient(cx, cy, radius float64, stops []ColorStop) *RadialGradient {
	return gradient.NewRadial(cx, cy, radius, stops)
}

// FillGradient composites g over an RGBA bitmap using a previously
// rasterized Gray coverage bitmap as the alpha mask (spec §4.9): the
// output RGBA pixel = (gradient.rgb, gradient.a * coverage / 255).
// originX/originY/scale map bitmap pixels back to g's design-space
// coordinates, matching the Options used to produce coverage.
func FillGradient(out *Bitmap, coverage *Bitmap, g Gradient, originX, originY, scale float64) {
	gradient.Fill(out, coverage, g, originX, originY, scale)
}
