package stroker

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
)

// crossProduct mirrors agg_go's basics.CrossProduct: the signed area (times
// two) of the triangle (x1,y1)-(x2,y2)-(x,y), used to classify a join as
// inner or outer.
func crossProduct(x1, y1, x2, y2, x, y float64) float64 {
	return (x-x2)*(y2-y1) - (y-y2)*(x2-x1)
}

func calcDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Hypot(dx, dy)
}

// signedArea returns twice the signed area of a closed polygon (positive
// for CCW winding under a Y-up convention); used by embolden to orient the
// outward offset (spec §4.6, §9: "winding order is computed via signed
// area").
func signedArea(pts []fixedmath.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}
