package msdf

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
	"github.com/vexraster/raster2d/internal/pixfmt"
	"github.com/vexraster/raster2d/internal/scanraster"
)

const defaultSpread = 4.0

// Generate rasterizes p into a multi-channel signed distance field (spec
// §4.7, component C7): each RGBA pixel's R/G/B channels are independently
// the minimum-|distance| to the edges assigned that channel, all three
// re-signed to agree with a single ray-cast inside/outside decision so
// median(R,G,B) reconstructs the true outline. Alpha is always 255.
func Generate(p *gpath.Path, opts Options) *pixfmt.Bitmap {
	spread := opts.Spread
	if spread <= 0 {
		spread = defaultSpread
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	contours := Decompose(p, opts.CornerAngleThreshold)
	rings := make([][]fixedmath.Point, len(contours))
	for i, ct := range contours {
		rings[i] = flattenContour(ct)
	}

	bmp := pixfmt.NewBitmap(opts.Width, opts.Height, pixfmt.RGBA, false)
	for py := 0; py < opts.Height; py++ {
		for px := 0; px < opts.Width; px++ {
			pt := fixedmath.Point{
				X: opts.OriginX + (float64(px)+0.5)*scale,
				Y: opts.OriginY + (float64(py)+0.5)*scale,
			}
			r, g, b := sampleChannels(contours, pt)
			inside := isInside(rings, pt, scanraster.NonZero)
			sign := -1.0
			if inside {
				sign = 1.0
			}
			bmp.SetRGBA(px, py,
				encode(sign*r, spread),
				encode(sign*g, spread),
				encode(sign*b, spread),
				255)
		}
	}
	return bmp
}

// sampleChannels returns, for each of R/G/B, the minimum unsigned distance
// over every edge (across all contours) whose color mask includes that
// channel (spec §4.7: "the reported distance is the minimum-|d| over edges
// whose mask includes that channel").
func sampleChannels(contours []Contour, pt fixedmath.Point) (r, g, b float64) {
	const tieEpsilon = 1e-9
	r, g, b = math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	tR, tG, tB := 0.0, 0.0, 0.0

	// consider reports a candidate (distance d, edge parameter t) for one
	// channel: it wins outright on a smaller distance, and on a near-tie
	// wins by being closer to the edge's interior (spec §4.7: "ties broken
	// by whichever edge has smaller |t-0.5|, to avoid cusps").
	consider := func(best, bestT *float64, d, t float64) {
		switch {
		case d < *best-tieEpsilon:
			*best, *bestT = d, t
		case d < *best+tieEpsilon && math.Abs(t-0.5) < math.Abs(*bestT-0.5):
			*best, *bestT = d, t
		}
	}

	for _, ct := range contours {
		for _, e := range ct.Edges {
			// The edge's control-polygon AABB is a cheap lower bound on its
			// true distance; skip the exact (root-solving) evaluation when
			// that lower bound can't possibly beat any channel this edge
			// contributes to (spec §4.7: "each edge stores its rectangular
			// AABB for pruning").
			minX, minY, maxX, maxY := e.Bounds()
			lower := pointToBoxDistance(minX, minY, maxX, maxY, pt)
			if (e.Color&maskR == 0 || lower >= r) &&
				(e.Color&maskG == 0 || lower >= g) &&
				(e.Color&maskB == 0 || lower >= b) {
				continue
			}
			_, t, d := signedEdgeDistance(e, pt)
			if e.Color&maskR != 0 {
				consider(&r, &tR, d, t)
			}
			if e.Color&maskG != 0 {
				consider(&g, &tG, d, t)
			}
			if e.Color&maskB != 0 {
				consider(&b, &tB, d, t)
			}
		}
	}
	if r == math.MaxFloat64 {
		r = 0
	}
	if g == math.MaxFloat64 {
		g = 0
	}
	if b == math.MaxFloat64 {
		b = 0
	}
	return r, g, b
}

// encode maps a signed distance in [-spread, +spread] design units into a
// [0,255] byte with 128 at the zero crossing (spec §4.7).
func encode(signedDist, spread float64) byte {
	v := 128 + (signedDist/spread)*127
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return byte(v + 0.5)
}

// pointToBoxDistance returns the distance from pt to the nearest point of
// the axis-aligned box, 0 if pt is inside it.
func pointToBoxDistance(minX, minY, maxX, maxY float64, pt fixedmath.Point) float64 {
	dx := 0.0
	if pt.X < minX {
		dx = minX - pt.X
	} else if pt.X > maxX {
		dx = pt.X - maxX
	}
	dy := 0.0
	if pt.Y < minY {
		dy = minY - pt.Y
	} else if pt.Y > maxY {
		dy = pt.Y - maxY
	}
	return math.Hypot(dx, dy)
}

// Median returns the median of three channel bytes, the reconstruction
// operator used downstream (spec §4.7: "median(R,G,B)"; >128 means inside).
func Median(r, g, b byte) byte {
	if r > g {
		r, g = g, r
	}
	if g > b {
		g, b = b, g
	}
	if r > g {
		r, g = g, r
	}
	return g
}
