// Package stroker turns a centerline path into a filled outline path (spec
// §4.6, component C6) and provides the synth-transform family (oblique,
// condense, general affine, embolden) used to derive style variants of an
// existing outline without re-deriving it from scratch.
//
// It is grounded on agg_go's internal/basics/math_stroke.go (MathStroke,
// CalcCap/CalcJoin/CalcMiter/CalcArc) for the per-vertex join/cap geometry
// and internal/transform/affine.go (TransAffine) for the synth transforms.
// Where spec.md gives a closed-form join formula that differs from the
// teacher's (e.g. the miter-extension and round-segment-count formulas),
// the spec's formula wins; the teacher's vertex-consumer shape and overall
// forward/backward-walk ring construction are kept.
package stroker

// Cap selects the shape used to close an open contour's two free ends.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join selects the outer-join geometry at a convex vertex.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// InnerJoin selects the geometry used at a concave (inner) vertex. Spec
// §4.6 only specifies the default (InnerBevel, a straight line); the other
// variants are a supplemented feature (SPEC_FULL.md §13).
type InnerJoin uint8

const (
	InnerBevel InnerJoin = iota
	InnerMiter
	InnerJag
	InnerRound
)

// angleElisionThreshold is the signed-turn-angle magnitude, in radians,
// below which a join is elided entirely (spec §4.6).
const angleElisionThreshold = 0.01

// Options configures the uniform stroker.
type Options struct {
	Width           float64
	Cap             Cap
	Join            Join
	MiterLimit      float64 // defaults to 4.0 if <= 0
	InnerJoin       InnerJoin
	InnerMiterLimit float64 // defaults to 1.01 if <= 0
	// FlattenEps bounds the curve-to-polyline flattening error before
	// offsetting (spec §4.6 asymmetric stroker: "depth-2 Bézier
	// subdivision to eps≈1"); defaults to 1.0 if <= 0. Round caps reuse
	// the same tolerance.
	FlattenEps float64
}
