package raster2d

import "github.com/vexraster/raster2d/internal/stroker"

// Cap selects the shape used to close an open contour's two free ends.
type Cap = stroker.Cap

const (
	CapButt   = stroker.CapButt
	CapRound  = stroker.CapRound
	CapSquare = stroker.CapSquare
)

// Join selects the outer-join geometry at a convex vertex.
type Join = stroker.Join

const (
	JoinMiter = stroker.JoinMiter
	JoinRound = stroker.JoinRound
	JoinBevel = stroker.JoinBevel
)

// InnerJoin selects the geometry used at a concave (inner) vertex.
type InnerJoin = stroker.InnerJoin

const (
	InnerBevel = stroker.InnerBevel
	InnerMiter = stroker.InnerMiter
	InnerJag   = stroker.InnerJag
	InnerRound = stroker.InnerRound
)

// StrokeOptions configures the uniform stroker.
type StrokeOptions = stroker.Options

// AsymStrokeOptions configures the asymmetric (independent X/Y width)
// stroker used for synthetic bold/oblique glyph variants.
type AsymStrokeOptions = stroker.AsymOptions

// Affine is a 2D affine transform used by the synth transform family.
type Affine = stroker.Affine

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return stroker.IdentityAffine()
}

// Oblique returns a shear transform simulating an italic slant.
func Oblique(slant float64) Affine {
	return stroker.Oblique(slant)
}

// Condense returns a horizontal scale transform simulating a condensed
// (narrower) style variant.
func Condense(factor float64) Affine {
	return stroker.Condense(factor)
}

// Stroke turns a centerline path into a filled outline path (spec §4.6,
// component C6).
func Stroke(p *Path, opts StrokeOptions) *Path {
	return stroker.Stroke(p, opts)
}

// StrokeAsymmetric strokes p with independently-scaled X/Y border widths,
// returning the outer and inner ring paths separately (used to derive
// synthetic bold glyph outlines at non-uniform weight).
func StrokeAsymmetric(p *Path, opts AsymStrokeOptions) (outer, inner *Path) {
	return stroker.StrokeAsymmetric(p, opts)
}

// Embolden synthesizes a bold variant of p by offsetting its outline by
// strength design units, without a full stroke-then-fill pass.
func Embolden(p *Path, strength float64) *Path {
	return stroker.Embolden(p, strength)
}

// Transform applies an affine transform to every command in p, producing
// a new path.
func Transform(p *Path, m Affine) *Path {
	return stroker.Transform(p, m)
}
