package stroker

import (
	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

// Stroke produces a filled outline path representing p stroked with opts
// (spec §4.6, component C6). Each input subpath becomes one ring (open
// contours) or two rings, outer and inner (closed contours), in the output
// path; the result is meant to be filled with the non-zero winding rule —
// inner joins are intentionally allowed to self-overlap.
func Stroke(p *gpath.Path, opts Options) *gpath.Path {
	ms := newMathStroke(opts)
	eps := opts.FlattenEps
	if eps <= 0 {
		eps = 1.0
	}

	out := gpath.New()
	for _, sub := range p.Subpaths() {
		pts := flattenSubpath(sub, eps)
		if len(pts) < 2 {
			continue
		}
		if sub.Closed && len(pts) >= 3 {
			emitRing(out, strokeClosedSide(pts, ms, true))
			emitRing(out, strokeClosedSide(pts, ms, false))
		} else {
			emitRing(out, strokeOpenSubpath(pts, ms, eps))
		}
	}
	return out
}

// strokeOpenSubpath assembles a single closed ring for an open contour:
// the start cap, the forward-walk joins, the end cap, then the
// backward-walk joins (spec §4.6).
func strokeOpenSubpath(pts []fixedmath.Point, ms *mathStroke, eps float64) []fixedmath.Point {
	n := len(pts)
	var ring []fixedmath.Point
	ring = append(ring, ms.calcCap(pts[0], pts[1], eps)...)
	for i := 1; i < n-1; i++ {
		ring = append(ring, ms.calcJoin(pts[i-1], pts[i], pts[i+1], eps)...)
	}
	ring = append(ring, ms.calcCap(pts[n-1], pts[n-2], eps)...)
	for i := n - 2; i >= 1; i-- {
		ring = append(ring, ms.calcJoin(pts[i+1], pts[i], pts[i-1], eps)...)
	}
	return ring
}

// strokeClosedSide walks a closed polygon's vertex ring either forward
// (producing the outer border) or backward (producing the inner border —
// reversing the walk direction flips which physical side "left" refers to,
// the same trick used to generate an open contour's two opposite sides).
func strokeClosedSide(pts []fixedmath.Point, ms *mathStroke, forward bool) []fixedmath.Point {
	n := len(pts)
	var ring []fixedmath.Point
	if forward {
		for i := 0; i < n; i++ {
			v0 := pts[(i-1+n)%n]
			v1 := pts[i]
			v2 := pts[(i+1)%n]
			ring = append(ring, ms.calcJoin(v0, v1, v2, 0)...)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			v0 := pts[(i+1)%n]
			v1 := pts[i]
			v2 := pts[(i-1+n)%n]
			ring = append(ring, ms.calcJoin(v0, v1, v2, 0)...)
		}
	}
	return ring
}

func emitRing(out *gpath.Path, pts []fixedmath.Point) {
	if len(pts) < 3 {
		return
	}
	out.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		out.LineTo(p.X, p.Y)
	}
	out.ClosePath()
}
