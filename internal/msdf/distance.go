package msdf

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
)

// signedEdgeDistance returns the signed perpendicular distance from pt to
// edge, the nearest parameter t (for tie-breaking between edges, spec
// §4.7), and the unsigned distance. Sign is positive on the side the edge's
// direction turns left toward (cross product of the tangent at the
// nearest point and (pt - nearest point)).
func signedEdgeDistance(e Edge, pt fixedmath.Point) (signed, t, unsigned float64) {
	switch e.Kind {
	case EdgeQuad:
		return quadDistance(e.P0, e.P1, e.P3, pt)
	case EdgeCubic:
		return cubicDistance(e.P0, e.P1, e.P2, e.P3, pt)
	default:
		return lineDistance(e.P0, e.P3, pt)
	}
}

// lineDistance projects pt onto the segment, clamped to [0,1]; sign is the
// cross product of the (unclamped) edge direction and (pt-p0) (spec §4.7).
func lineDistance(p0, p3, pt fixedmath.Point) (signed, t, unsigned float64) {
	dx, dy := p3.X-p0.X, p3.Y-p0.Y
	lenSq := dx*dx + dy*dy
	wx, wy := pt.X-p0.X, pt.Y-p0.Y
	if lenSq < 1e-18 {
		d := math.Hypot(wx, wy)
		return d, 0, d
	}
	t = (wx*dx + wy*dy) / lenSq
	tc := t
	if tc < 0 {
		tc = 0
	} else if tc > 1 {
		tc = 1
	}
	proj := fixedmath.Point{X: p0.X + tc*dx, Y: p0.Y + tc*dy}
	diffX, diffY := pt.X-proj.X, pt.Y-proj.Y
	unsigned = math.Hypot(diffX, diffY)
	cross := dx*wy - dy*wx
	signed = unsigned
	if cross < 0 {
		signed = -unsigned
	}
	return signed, tc, unsigned
}

// quadDistance solves (pt - B(t))·B'(t) = 0 for a quadratic Bezier, a cubic
// in t, compares its real roots against the endpoints, and picks the
// closest (spec §4.7).
func quadDistance(p0, p1, p2, pt fixedmath.Point) (signed, t, unsigned float64) {
	e1x, e1y := p1.X-p0.X, p1.Y-p0.Y
	e2x, e2y := p2.X-2*p1.X+p0.X, p2.Y-2*p1.Y+p0.Y
	d0x, d0y := pt.X-p0.X, pt.Y-p0.Y

	a3 := -2 * (e2x*e2x + e2y*e2y)
	a2 := -6 * (e1x*e2x + e1y*e2y)
	a1 := 2*(d0x*e2x+d0y*e2y) - 4*(e1x*e1x+e1y*e1y)
	a0 := 2 * (d0x*e1x + d0y*e1y)

	candidates := append(solveCubicReal(a3, a2, a1, a0), 0, 1)

	bestT, bestDist := 0.0, math.MaxFloat64
	for _, c := range candidates {
		if c < 0 || c > 1 {
			continue
		}
		p := fixedmath.QuadEval(p0, p1, p2, c)
		d := math.Hypot(pt.X-p.X, pt.Y-p.Y)
		if d < bestDist {
			bestDist, bestT = d, c
		}
	}

	bp := fixedmath.QuadEval(p0, p1, p2, bestT)
	tanX, tanY := 2*(e1x+bestT*e2x), 2*(e1y+bestT*e2y)
	cross := tanX*(pt.Y-bp.Y) - tanY*(pt.X-bp.X)
	signed = bestDist
	if cross < 0 {
		signed = -bestDist
	}
	return signed, bestT, bestDist
}

// cubicDistance samples five candidate t values (four subdivisions plus
// endpoints), keeps the closest, then refines it with a few Newton steps
// on (pt-B(t))·B'(t) = 0 (spec §4.7).
func cubicDistance(p0, p1, p2, p3, pt fixedmath.Point) (signed, t, unsigned float64) {
	bestT, bestDist := 0.0, math.MaxFloat64
	for _, c := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := fixedmath.CubicEval(p0, p1, p2, p3, c)
		d := math.Hypot(pt.X-p.X, pt.Y-p.Y)
		if d < bestDist {
			bestDist, bestT = d, c
		}
	}

	tt := bestT
	for iter := 0; iter < 4; iter++ {
		b := fixedmath.CubicEval(p0, p1, p2, p3, tt)
		d1x, d1y := cubicDeriv1(p0, p1, p2, p3, tt)
		d2x, d2y := cubicDeriv2(p0, p1, p2, p3, tt)
		rx, ry := pt.X-b.X, pt.Y-b.Y

		g := rx*d1x + ry*d1y
		gp := -(d1x*d1x + d1y*d1y) + rx*d2x + ry*d2y
		if math.Abs(gp) < 1e-12 {
			break
		}
		next := tt - g/gp
		if next < 0 {
			next = 0
		} else if next > 1 {
			next = 1
		}
		if math.Abs(next-tt) < 1e-9 {
			tt = next
			break
		}
		tt = next
	}

	bp := fixedmath.CubicEval(p0, p1, p2, p3, tt)
	d := math.Hypot(pt.X-bp.X, pt.Y-bp.Y)
	if d <= bestDist {
		bestDist, bestT = d, tt
	} else {
		bp = fixedmath.CubicEval(p0, p1, p2, p3, bestT)
	}

	d1x, d1y := cubicDeriv1(p0, p1, p2, p3, bestT)
	cross := d1x*(pt.Y-bp.Y) - d1y*(pt.X-bp.X)
	signed = bestDist
	if cross < 0 {
		signed = -bestDist
	}
	return signed, bestT, bestDist
}

func cubicDeriv1(p0, p1, p2, p3 fixedmath.Point, t float64) (float64, float64) {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	return a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y)
}

func cubicDeriv2(p0, p1, p2, p3 fixedmath.Point, t float64) (float64, float64) {
	mt := 1 - t
	a := 6 * mt
	b := 6 * t
	return a*(p2.X-2*p1.X+p0.X) + b*(p3.X-2*p2.X+p1.X),
		a*(p2.Y-2*p1.Y+p0.Y) + b*(p3.Y-2*p2.Y+p1.Y)
}

// solveCubicReal returns the real roots of a*t^3 + b*t^2 + c*t + d = 0
// using the standard depressed-cubic trigonometric/Cardano method. Falls
// through to the quadratic/linear cases when leading coefficients vanish.
func solveCubicReal(a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-12 {
		return solveQuadraticReal(b, c, d)
	}
	b, c, d = b/a, c/a, d/a

	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	offset := -b / 3

	if math.Abs(p) < 1e-12 && math.Abs(q) < 1e-12 {
		return []float64{offset}
	}

	disc := q*q/4 + p*p*p/27
	switch {
	case disc > 1e-12:
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		return []float64{u + v + offset}
	case disc < -1e-12:
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(clampUnit(-q / (2 * r)))
		m := 2 * math.Sqrt(-p/3)
		return []float64{
			m*math.Cos(phi/3) + offset,
			m*math.Cos((phi+2*math.Pi)/3) + offset,
			m*math.Cos((phi+4*math.Pi)/3) + offset,
		}
	default:
		u := math.Cbrt(-q / 2)
		return []float64{2*u + offset, -u + offset}
	}
}

func solveQuadraticReal(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
