package gpath

import "github.com/vexraster/raster2d/internal/fixedmath"

// ExactBounds computes the tightest axis-aligned bounding box of a path,
// analytically exact up to float rounding (spec §4.2, component C2).
//
// It walks the command list maintaining a current point, folding every
// on-curve endpoint into the box, and for curves additionally evaluating
// the axis extrema (roots of the derivative, filtered to the open interval
// (0,1)) so a control point that overshoots the curve — e.g. a quadratic's
// apex sitting well inside its control point's Y — never inflates the box.
// Close never alters the box. The second return value is false only for an
// empty path or a path consisting solely of Close commands.
func ExactBounds(p *Path) (Box, bool) {
	var box Box
	have := false
	var cx, cy float64

	include := func(x, y float64) {
		if !have {
			box = Box{XMin: x, YMin: y, XMax: x, YMax: y}
			have = true
			return
		}
		if x < box.XMin {
			box.XMin = x
		}
		if x > box.XMax {
			box.XMax = x
		}
		if y < box.YMin {
			box.YMin = y
		}
		if y > box.YMax {
			box.YMax = y
		}
	}

	for _, c := range p.Commands {
		switch c.Kind {
		case Move:
			include(c.X, c.Y)
			cx, cy = c.X, c.Y

		case Line:
			include(c.X, c.Y)
			cx, cy = c.X, c.Y

		case Quad:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.X, Y: c.Y}
			if t, ok := fixedmath.QuadExtremum1D(p0.X, p1.X, p2.X); ok {
				e := fixedmath.QuadEval(p0, p1, p2, t)
				include(e.X, e.Y)
			}
			if t, ok := fixedmath.QuadExtremum1D(p0.Y, p1.Y, p2.Y); ok {
				e := fixedmath.QuadEval(p0, p1, p2, t)
				include(e.X, e.Y)
			}
			include(c.X, c.Y)
			cx, cy = c.X, c.Y

		case Cubic:
			p0 := fixedmath.Point{X: cx, Y: cy}
			p1 := fixedmath.Point{X: c.CX1, Y: c.CY1}
			p2 := fixedmath.Point{X: c.CX2, Y: c.CY2}
			p3 := fixedmath.Point{X: c.X, Y: c.Y}
			for _, t := range fixedmath.CubicExtrema1D(p0.X, p1.X, p2.X, p3.X) {
				e := fixedmath.CubicEval(p0, p1, p2, p3, t)
				include(e.X, e.Y)
			}
			for _, t := range fixedmath.CubicExtrema1D(p0.Y, p1.Y, p2.Y, p3.Y) {
				e := fixedmath.CubicEval(p0, p1, p2, p3, t)
				include(e.X, e.Y)
			}
			include(c.X, c.Y)
			cx, cy = c.X, c.Y

		case Close:
			// Does not alter bounds (spec §4.2).
		}
	}

	return box, have
}
