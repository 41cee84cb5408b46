package msdf

import (
	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/scanraster"
)

// flattenContour reduces a contour to a closed polyline for the ray-cast
// inside/outside test (spec §4.7: "flatten each edge to ~8 segments").
func flattenContour(ct Contour) []fixedmath.Point {
	var pts []fixedmath.Point
	for _, e := range ct.Edges {
		pts = append(pts, e.P0)
		switch e.Kind {
		case EdgeQuad:
			pts = append(pts, fixedmath.FlattenQuadFast(e.P0, e.P1, e.P3)...)
		case EdgeCubic:
			pts = append(pts, fixedmath.FlattenCubicFast(e.P0, e.P1, e.P2, e.P3)...)
		}
	}
	return pts
}

// isInside runs a horizontal ray-cast from pt toward +X against every
// flattened contour, evaluated under rule (spec §4.7: "a standard ray-cast
// even-odd/non-zero test"); scanraster.FillRule is reused directly so the
// MSDF generator and the coverage rasterizer agree on what "inside" means.
func isInside(contours [][]fixedmath.Point, pt fixedmath.Point, rule scanraster.FillRule) bool {
	winding, crossings := 0, 0
	for _, ring := range contours {
		n := len(ring)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if (a.Y > pt.Y) == (b.Y > pt.Y) {
				continue
			}
			// Edge straddles the ray's Y; find its X at that Y.
			tY := (pt.Y - a.Y) / (b.Y - a.Y)
			xAt := a.X + tY*(b.X-a.X)
			if xAt <= pt.X {
				continue
			}
			crossings++
			if b.Y > a.Y {
				winding++
			} else {
				winding--
			}
		}
	}
	if rule == scanraster.EvenOdd {
		return crossings%2 != 0
	}
	return winding != 0
}
