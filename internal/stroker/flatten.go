package stroker

import (
	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

const vertexDistEpsilon = 1e-6

// flattenSubpath reduces a subpath's commands to a polyline of distinct
// vertices, deduplicating points closer than vertexDistEpsilon the way
// agg_go's VertexDist.Validate filters near-coincident vertices before
// offsetting.
func flattenSubpath(sub gpath.Subpath, eps float64) []fixedmath.Point {
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
		case gpath.Move:
			push(c.X, c.Y)
			cx, cy = c.X, c.Y
		case gpath.Line:
			push(c.X, c.Y)
			cx, cy = c.X, c.Y
		case gpath.Quad:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.X, Y: c.Y}
			for _, p := range fixedmath.FlattenQuad(p0, p1, p2, eps) {
				push(p.X, p.Y)
			}
			cx, cy = c.X, c.Y
		case gpath.Cubic:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.CX2, Y: c.CY2}
			p3 := fixedmath.Point{X: c.X, Y: c.Y}
			for _, p := range fixedmath.FlattenCubic(p0, p1, p2, p3, eps) {
				push(p.X, p.Y)
			}
			cx, cy = c.X, c.Y
		case gpath.Close:
			// handled by Subpath.Closed; no point to add.
		}
	}

	// A closed subpath whose last flattened point coincides with the first
	// (an explicit return-to-start) collapses to one ring vertex.
	if sub.Closed && len(pts) > 1 {
		first, last := pts[0], pts[len(pts)-1]
		if calcDistance(first.X, first.Y, last.X, last.Y) <= vertexDistEpsilon {
			pts = pts[:len(pts)-1]
		}
	}
	return pts
}
