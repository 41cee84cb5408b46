package stroker

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

// AsymOptions configures the asymmetric stroker: independent X and Y
// border widths (spec §4.6).
type AsymOptions struct {
	WX, WY     float64
	Join       Join
	FlattenEps float64
}

// StrokeAsymmetric offsets p by independent border widths (wx, wy), using
// perp = (-dy·wy, dx·wx) at each edge of unit direction (dx,dy) — an
// elliptical offset rather than a circular one, so round/miter joins
// degrade to the averaged offset point at each vertex (there is no single
// well-defined join radius once the offset is anisotropic); bevel keeps its
// usual two-point shape. Curves are flattened first with fixedmath's
// fixed-step flatteners, which take no tolerance: opts.FlattenEps does not
// change the result. Returns the outer and inner border paths separately.
func StrokeAsymmetric(p *gpath.Path, opts AsymOptions) (outer, inner *gpath.Path) {
	eps := opts.FlattenEps
	if eps <= 0 {
		eps = 1.0
	}
	outer, inner = gpath.New(), gpath.New()
	for _, sub := range p.Subpaths() {
		pts := flattenSubpathFast(sub)
		if len(pts) < 2 {
			continue
		}
		emitRing(outer, asymOffsetSide(pts, sub.Closed, opts.WX, opts.WY, opts.Join, +1))
		emitRing(inner, asymOffsetSide(pts, sub.Closed, opts.WX, opts.WY, opts.Join, -1))
	}
	return outer, inner
}

// flattenSubpathFast mirrors flattenSubpath but uses the fixed-step
// flatteners (spec §4.1's "fast variants for the stroker/synth path").
func flattenSubpathFast(sub gpath.Subpath) []fixedmath.Point {
	var pts []fixedmath.Point
	var cx, cy float64
	push := func(x, y float64) {
		if len(pts) > 0 {
			last := pts[len(pts)-1]
			if calcDistance(last.X, last.Y, x, y) <= vertexDistEpsilon {
				return
			}
		}
		pts = append(pts, fixedmath.Point{X: x, Y: y})
	}
	for _, c := range sub.Commands {
		switch c.Kind {
		case gpath.Move, gpath.Line:
			push(c.X, c.Y)
			cx, cy = c.X, c.Y
		case gpath.Quad:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.X, Y: c.Y}
			for _, p := range fixedmath.FlattenQuadFast(p0, p1, p2) {
				push(p.X, p.Y)
			}
			cx, cy = c.X, c.Y
		case gpath.Cubic:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.CX2, Y: c.CY2}
			p3 := fixedmath.Point{X: c.X, Y: c.Y}
			for _, p := range fixedmath.FlattenCubicFast(p0, p1, p2, p3) {
				push(p.X, p.Y)
			}
			cx, cy = c.X, c.Y
		case gpath.Close:
		}
	}
	if sub.Closed && len(pts) > 1 {
		first, last := pts[0], pts[len(pts)-1]
		if calcDistance(first.X, first.Y, last.X, last.Y) <= vertexDistEpsilon {
			pts = pts[:len(pts)-1]
		}
	}
	return pts
}

type asymEdge struct{ nx, ny float64 }

func asymOffsetSide(pts []fixedmath.Point, closed bool, wx, wy float64, join Join, side float64) []fixedmath.Point {
	n := len(pts)
	segCount := n - 1
	if closed {
		segCount = n
	}
	if segCount < 1 {
		return nil
	}

	edges := make([]asymEdge, segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			if i > 0 {
				edges[i] = edges[i-1]
			}
			continue
		}
		ux, uy := dx/length, dy/length
		edges[i] = asymEdge{nx: -uy * wy * side, ny: ux * wx * side}
	}

	var out []fixedmath.Point
	for i := 0; i < n; i++ {
		var inIdx, outIdx int
		hasIn, hasOut := false, false
		if i > 0 {
			inIdx, hasIn = i-1, true
		} else if closed {
			inIdx, hasIn = segCount-1, true
		}
		if i < segCount {
			outIdx, hasOut = i, true
		}

		switch {
		case hasIn && hasOut:
			ein, eout := edges[inIdx], edges[outIdx]
			if join == JoinBevel {
				out = append(out, fixedmath.Point{X: pts[i].X + ein.nx, Y: pts[i].Y + ein.ny})
				out = append(out, fixedmath.Point{X: pts[i].X + eout.nx, Y: pts[i].Y + eout.ny})
			} else {
				out = append(out, fixedmath.Point{
					X: pts[i].X + (ein.nx+eout.nx)/2,
					Y: pts[i].Y + (ein.ny+eout.ny)/2,
				})
			}
		case hasOut:
			out = append(out, fixedmath.Point{X: pts[i].X + edges[outIdx].nx, Y: pts[i].Y + edges[outIdx].ny})
		case hasIn:
			out = append(out, fixedmath.Point{X: pts[i].X + edges[inIdx].nx, Y: pts[i].Y + edges[inIdx].ny})
		}
	}
	return out
}
