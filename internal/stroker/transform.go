package stroker

import "github.com/vexraster/raster2d/internal/gpath"

// Affine is a 2x3 affine transformation matrix, adapted from agg_go's
// internal/transform.TransAffine down to the fields this engine's synth
// transforms actually need: (x',y') = (a·x + c·y + e, b·x + d·y + f).
type Affine struct {
	A, B, C, D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, D: 1}
}

// Apply transforms one point.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Oblique returns a shear transform approximating an oblique/italic slant:
// (x,y) -> (x + slant·y, y). slant is the tangent of the shear angle
// (0.2 ≈ 12°, spec §4.6).
func Oblique(slant float64) Affine {
	return Affine{A: 1, C: slant, D: 1}
}

// Condense returns a transform that scales only the X axis:
// x' = x·factor, y' = y (spec §4.6).
func Condense(factor float64) Affine {
	return Affine{A: factor, D: 1}
}

// Transform applies a general affine transform to every on-curve and
// control point of p, preserving command structure. No bounds are cached
// on the result; gpath.ExactBounds computes them from its commands.
func Transform(p *gpath.Path, m Affine) *gpath.Path {
	out := gpath.New()
	out.Commands = make([]gpath.Command, len(p.Commands))
	for i, c := range p.Commands {
		nc := c
		switch c.Kind {
		case gpath.Move, gpath.Line:
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		case gpath.Quad:
			nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		case gpath.Cubic:
			nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
			nc.CX2, nc.CY2 = m.Apply(c.CX2, c.CY2)
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		case gpath.Close:
		}
		out.Commands[i] = nc
	}
	return out
}
