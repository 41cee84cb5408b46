// Package msdf generates multi-channel signed distance fields from glyph
// outlines (spec §4.7, component C7): an RGB bitmap where each channel
// carries a signed distance to a coloured subset of the outline, such that
// downstream GPU sampling reconstructs sharp corners via median(R,G,B).
//
// There is no direct teacher equivalent for this component — agg_go has no
// distance-field renderer. The edge model reuses internal/fixedmath's
// curve-evaluation helpers (the same ones internal/stroker flattens with),
// and the per-edge distance formulas and coloring strategy follow spec
// §4.7's description of the algorithm introduced by Chlumský (2015).
package msdf

import "github.com/vexraster/raster2d/internal/fixedmath"

// EdgeColor is a 3-bit RGB channel mask: bit 0 is red, bit 1 green, bit 2
// blue. A channel's reported distance only considers edges whose mask
// includes that channel.
type EdgeColor uint8

const (
	maskR EdgeColor = 1 << iota
	maskG
	maskB
)

const (
	// The three two-bit subsets an edge can be assigned, cycled at each
	// corner so adjacent edges across the corner always share exactly one
	// channel (any two distinct two-bit subsets of a three-bit space share
	// exactly one set bit). Named the way spec §4.7 names them; note that
	// "Cyan" here is literally R+G as spec defines it, not the conventional
	// G+B — followed literally rather than "corrected" to the conventional
	// CMY meaning, since spec's three-mask cycle only needs three mutually
	// adjacent 2-bit values, and R+G/R+B/G+B are exactly that set.
	colorCyan    = maskR | maskG
	colorMagenta = maskR | maskB
	colorYellow  = maskG | maskB

	// White marks a single-edge contour, whose one edge is compared against
	// in all three channels. Spec literally writes "mask 0 (all channels)"
	// for this case; 0 would conventionally mean *no* channel, contradicting
	// its own parenthetical, so the functional intent ("all channels") is
	// implemented here as the all-ones mask instead of the literal 0.
	colorWhite = maskR | maskG | maskB
)

// EdgeKind discriminates the tagged edge shapes, mirroring gpath.Kind's
// closed tagged-union style rather than an interface per edge type.
type EdgeKind uint8

const (
	EdgeLine EdgeKind = iota
	EdgeQuad
	EdgeCubic
)

// Edge is one segment of a decomposed contour. P0 and P3 are always the
// segment's endpoints; P1 is the quadratic control point (EdgeQuad) or the
// first cubic control point (EdgeCubic); P2 is the second cubic control
// point (EdgeCubic only).
type Edge struct {
	Kind  EdgeKind
	P0    fixedmath.Point
	P1    fixedmath.Point
	P2    fixedmath.Point
	P3    fixedmath.Point
	Color EdgeColor
}

// Bounds returns the edge's axis-aligned bounding box over its control
// polygon (loose but cheap — a curve never leaves its control hull's box),
// used to prune edges before the exact distance evaluation (spec §4.7:
// "each edge stores its rectangular AABB for pruning").
func (e Edge) Bounds() (minX, minY, maxX, maxY float64) {
	minX, maxX = e.P0.X, e.P0.X
	minY, maxY = e.P0.Y, e.P0.Y
	grow := func(p fixedmath.Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	switch e.Kind {
	case EdgeLine:
		grow(e.P3)
	case EdgeQuad:
		grow(e.P1)
		grow(e.P3)
	case EdgeCubic:
		grow(e.P1)
		grow(e.P2)
		grow(e.P3)
	}
	return
}

// Contour is one subpath's ordered, colored ring of edges.
type Contour struct {
	Edges []Edge
}

// Options configures Generate.
type Options struct {
	Width, Height int

	// Scale is design units per pixel; Origin is the design-space
	// coordinate of pixel (0,0)'s top-left corner. Pixel (x,y) samples at
	// design point (OriginX+(x+0.5)*Scale, OriginY+(y+0.5)*Scale).
	Scale           float64
	OriginX, OriginY float64

	// Spread is the distance range, in design units, mapped into [0,255]
	// with 128 at the zero crossing (spec §4.7). Defaults to 4 if <= 0.
	Spread float64

	// CornerAngleThreshold is the minimum turn angle, in radians, that
	// marks a contour vertex as a corner (spec §4.7: "≈3° below straight").
	// Defaults to 3 degrees if <= 0.
	CornerAngleThreshold float64
}
