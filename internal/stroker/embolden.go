package stroker

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

// Embolden approximates an outward contour offset of strength design units
// via a per-vertex averaged normal of the two edges adjacent to each anchor
// point (spec §4.6). Winding is determined from the subpath's signed area
// so the offset points outward for both CW and CCW contours; a degenerate
// (zero-area, e.g. self-intersecting or open) contour is treated as CCW,
// per this project's resolved open question (SPEC_FULL.md §14). Command
// structure (M/L/Q/C/Z counts) is preserved exactly; a curve's control
// points move by the same offset as its terminal anchor, which is an
// approximation but keeps the curve's shape roughly intact.
func Embolden(p *gpath.Path, strength float64) *gpath.Path {
	out := gpath.New()
	for _, sub := range p.Subpaths() {
		out.Commands = append(out.Commands, emboldenSubpath(sub, strength)...)
	}
	return out
}

func emboldenSubpath(sub gpath.Subpath, strength float64) []gpath.Command {
	type anchor struct {
		pt     fixedmath.Point
		cmdIdx int
	}
	var anchors []anchor
	for i, c := range sub.Commands {
		switch c.Kind {
		case gpath.Move, gpath.Line, gpath.Quad, gpath.Cubic:
			anchors = append(anchors, anchor{pt: fixedmath.Point{X: c.X, Y: c.Y}, cmdIdx: i})
		}
	}

	out := make([]gpath.Command, len(sub.Commands))
	copy(out, sub.Commands)
	if len(anchors) == 0 {
		return out
	}

	pts := make([]fixedmath.Point, len(anchors))
	for i, a := range anchors {
		pts[i] = a.pt
	}
	n := len(pts)

	windingSign := 1.0
	if sub.Closed && n >= 3 && signedArea(pts) < 0 {
		windingSign = -1
	}

	edgeDir := func(a, b fixedmath.Point) (ux, uy, length float64, ok bool) {
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l < 1e-12 {
			return 0, 0, 0, false
		}
		return dx / l, dy / l, l, true
	}
	// outward normal of an edge, given its unit direction, oriented by winding.
	normalFor := func(ux, uy float64) fixedmath.Point {
		return fixedmath.Point{X: uy * windingSign, Y: -ux * windingSign}
	}

	offsets := make([]fixedmath.Point, n)
	for i := 0; i < n; i++ {
		var dIn, dOut fixedmath.Point
		hasIn, hasOut := false, false
		if i > 0 {
			if ux, uy, _, ok := edgeDir(pts[i-1], pts[i]); ok {
				dIn, hasIn = fixedmath.Point{X: ux, Y: uy}, true
			}
		} else if sub.Closed {
			if ux, uy, _, ok := edgeDir(pts[n-1], pts[i]); ok {
				dIn, hasIn = fixedmath.Point{X: ux, Y: uy}, true
			}
		}
		if i < n-1 {
			if ux, uy, _, ok := edgeDir(pts[i], pts[i+1]); ok {
				dOut, hasOut = fixedmath.Point{X: ux, Y: uy}, true
			}
		} else if sub.Closed {
			if ux, uy, _, ok := edgeDir(pts[i], pts[0]); ok {
				dOut, hasOut = fixedmath.Point{X: ux, Y: uy}, true
			}
		}

		var avg fixedmath.Point
		scale := 1.0
		switch {
		case hasIn && hasOut:
			nIn := normalFor(dIn.X, dIn.Y)
			nOut := normalFor(dOut.X, dOut.Y)
			avg = fixedmath.Point{X: (nIn.X + nOut.X) / 2, Y: (nIn.Y + nOut.Y) / 2}
			theta := math.Atan2(dIn.X*dOut.Y-dIn.Y*dOut.X, dIn.X*dOut.X+dIn.Y*dOut.Y)
			cosH := math.Cos(theta / 2)
			if math.Abs(cosH) > 1e-6 {
				scale = 1 / math.Abs(cosH)
			}
			if scale > 3 {
				scale = 3
			}
		case hasOut:
			avg = normalFor(dOut.X, dOut.Y)
		case hasIn:
			avg = normalFor(dIn.X, dIn.Y)
		default:
			continue
		}

		l := math.Hypot(avg.X, avg.Y)
		if l < 1e-9 {
			continue
		}
		mag := strength * scale
		offsets[i] = fixedmath.Point{X: avg.X / l * mag, Y: avg.Y / l * mag}
	}

	for i, a := range anchors {
		off := offsets[i]
		c := &out[a.cmdIdx]
		c.X += off.X
		c.Y += off.Y
		if c.Kind == gpath.Quad || c.Kind == gpath.Cubic {
			c.CX1 += off.X
			c.CY1 += off.Y
		}
		if c.Kind == gpath.Cubic {
			c.CX2 += off.X
			c.CY2 += off.Y
		}
	}
	return out
}
