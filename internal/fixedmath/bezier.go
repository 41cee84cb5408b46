package fixedmath

import "math"

// Point is a design-space 2D coordinate. It is the lowest-level vertex type
// in the pipeline; every higher package (gpath, stroker, msdf) builds on it.
type Point struct {
	X, Y float64
}

// QuadEval evaluates a quadratic Bezier at parameter t using the standard
// (1-t)^2*p0 + 2(1-t)t*p1 + t^2*p2 form (spec §4.1).
func QuadEval(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
	}
}

// CubicEval evaluates a cubic Bezier at parameter t using the Bernstein form.
func CubicEval(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// QuadExtremum1D returns the single parametric extremum of one axis of a
// quadratic Bezier, t = (p0-p1)/(p0-2p1+p2), filtered to the open interval
// (0,1); the second result is false if there is no interior extremum
// (denominator within DenominatorEpsilon of zero, or the root lies outside
// (0,1)). Spec §4.1.
func QuadExtremum1D(p0, p1, p2 float64) (float64, bool) {
	denom := p0 - 2*p1 + p2
	if NearZero(denom) {
		return 0, false
	}
	t := (p0 - p1) / denom
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// CubicExtrema1D returns the real roots, strictly inside (0,1), of the
// derivative of one axis of a cubic Bezier:
//
//	3(p3-3p2+3p1-p0)t^2 + 6(p2-2p1+p0)t + 3(p1-p0) = 0
//
// A near-zero leading coefficient falls through to the linear case. A
// near-zero discriminant returns the single repeated root. Spec §4.1.
func CubicExtrema1D(p0, p1, p2, p3 float64) []float64 {
	a := 3 * (p3 - 3*p2 + 3*p1 - p0)
	b := 6 * (p2 - 2*p1 + p0)
	c := 3 * (p1 - p0)

	var roots []float64
	if NearZero(a) {
		// Linear derivative: bt + c = 0.
		if !NearZero(b) {
			if t := -c / b; t > 0 && t < 1 {
				roots = append(roots, t)
			}
		}
		return roots
	}

	disc := b*b - 4*a*c
	switch {
	case disc < -DenominatorEpsilon:
		return nil
	case math.Abs(disc) <= DenominatorEpsilon:
		t := -b / (2 * a)
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	default:
		sq := math.Sqrt(disc)
		t1 := (-b + sq) / (2 * a)
		t2 := (-b - sq) / (2 * a)
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > 0 && t1 < 1 {
			roots = append(roots, t1)
		}
		if t2 > 0 && t2 < 1 {
			roots = append(roots, t2)
		}
	}
	return roots
}

// perpDistance returns the perpendicular distance from pt to the line
// through (a,b); used by the flattening recursion to measure flatness.
func perpDistance(a, b, pt Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := math.Hypot(dx, dy)
	if d < 1e-12 {
		return math.Hypot(pt.X-a.X, pt.Y-a.Y)
	}
	return math.Abs((pt.X-a.X)*dy-(pt.Y-a.Y)*dx) / d
}

// flattenRecursionLimit bounds recursive bisection the same way agg_go's
// curves.go bounds its recursive_bezier (32 levels is ample for any glyph
// scaled to sane sizes; beyond that the geometry is degenerate).
const flattenRecursionLimit = 32

// FlattenQuad reduces a quadratic Bezier to a polyline whose maximum
// deviation from the true curve is at most eps design units, by recursive
// de Casteljau bisection (spec §4.1). The returned slice excludes p0 (the
// caller already has the current point) and includes p2.
func FlattenQuad(p0, p1, p2 Point, eps float64) []Point {
	var out []Point
	flattenQuadRec(p0, p1, p2, eps*eps, 0, &out)
	out = append(out, p2)
	return out
}

func flattenQuadRec(p0, p1, p2 Point, epsSq float64, level int, out *[]Point) {
	if level >= flattenRecursionLimit {
		return
	}
	d := perpDistance(p0, p2, p1)
	if d*d <= epsSq {
		return
	}
	p01 := Point{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
	p12 := Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
	mid := Point{(p01.X + p12.X) / 2, (p01.Y + p12.Y) / 2}
	flattenQuadRec(p0, p01, mid, epsSq, level+1, out)
	*out = append(*out, mid)
	flattenQuadRec(mid, p12, p2, epsSq, level+1, out)
}

// FlattenCubic reduces a cubic Bezier to a polyline within eps design units
// of the true curve, using the max of the two control-point distances from
// the chord as the flatness test (spec §4.1). Excludes p0, includes p3.
func FlattenCubic(p0, p1, p2, p3 Point, eps float64) []Point {
	var out []Point
	flattenCubicRec(p0, p1, p2, p3, eps*eps, 0, &out)
	out = append(out, p3)
	return out
}

func flattenCubicRec(p0, p1, p2, p3 Point, epsSq float64, level int, out *[]Point) {
	if level >= flattenRecursionLimit {
		return
	}
	d1 := perpDistance(p0, p3, p1)
	d2 := perpDistance(p0, p3, p2)
	dmax := d1
	if d2 > dmax {
		dmax = d2
	}
	if dmax*dmax <= epsSq {
		return
	}

	p01 := Point{(p0.X + p1.X) / 2, (p0.Y + p1.Y) / 2}
	p12 := Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
	p23 := Point{(p2.X + p3.X) / 2, (p2.Y + p3.Y) / 2}
	p012 := Point{(p01.X + p12.X) / 2, (p01.Y + p12.Y) / 2}
	p123 := Point{(p12.X + p23.X) / 2, (p12.Y + p23.Y) / 2}
	mid := Point{(p012.X + p123.X) / 2, (p012.Y + p123.Y) / 2}

	flattenCubicRec(p0, p01, p012, mid, epsSq, level+1, out)
	*out = append(*out, mid)
	flattenCubicRec(mid, p123, p23, p3, epsSq, level+1, out)
}

// FlattenQuadFast approximates a quadratic with a fixed 8-segment polyline.
// Used by consumers that tolerate coarser flattening in exchange for
// avoiding the recursive-bisection cost (spec §4.1: stroker, synth offset).
func FlattenQuadFast(p0, p1, p2 Point) []Point {
	const steps = 8
	out := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		out = append(out, QuadEval(p0, p1, p2, float64(i)/steps))
	}
	return out
}

// FlattenCubicFast approximates a cubic with a fixed 12-segment polyline.
func FlattenCubicFast(p0, p1, p2, p3 Point) []Point {
	const steps = 12
	out := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		out = append(out, CubicEval(p0, p1, p2, p3, float64(i)/steps))
	}
	return out
}
