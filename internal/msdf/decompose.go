package msdf

import (
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

const defaultCornerAngleThreshold = 3 * math.Pi / 180

// Decompose turns every subpath of p into a colored Contour (spec §4.7:
// "Path → edges"). Subpaths are treated as implicitly closed for this
// purpose regardless of their Closed flag — an MSDF is only meaningful for
// a filled (closed) outline, and glyph contours from font sources routinely
// omit an explicit trailing Close.
func Decompose(p *gpath.Path, cornerAngleThreshold float64) []Contour {
	if cornerAngleThreshold <= 0 {
		cornerAngleThreshold = defaultCornerAngleThreshold
	}
	var contours []Contour
	for contourIdx, sub := range p.Subpaths() {
		edges := edgesOf(sub)
		if len(edges) == 0 {
			continue
		}
		assignColors(edges, cornerAngleThreshold, contourIdx)
		contours = append(contours, Contour{Edges: edges})
	}
	return contours
}

func edgesOf(sub gpath.Subpath) []Edge {
	var edges []Edge
	var cx, cy float64
	var startX, startY float64
	haveStart := false
	for _, c := range sub.Commands {
		switch c.Kind {
		case gpath.Move:
			cx, cy = c.X, c.Y
			startX, startY = c.X, c.Y
			haveStart = true
		case gpath.Line:
			edges = append(edges, Edge{Kind: EdgeLine,
				P0: fixedmath.Point{X: cx, Y: cy}, P3: fixedmath.Point{X: c.X, Y: c.Y}})
			cx, cy = c.X, c.Y
		case gpath.Quad:
			edges = append(edges, Edge{Kind: EdgeQuad,
				P0: fixedmath.Point{X: cx, Y: cy},
				P1: fixedmath.Point{X: c.CX1, Y: c.CY1},
				P3: fixedmath.Point{X: c.X, Y: c.Y}})
			cx, cy = c.X, c.Y
		case gpath.Cubic:
			edges = append(edges, Edge{Kind: EdgeCubic,
				P0: fixedmath.Point{X: cx, Y: cy},
				P1: fixedmath.Point{X: c.CX1, Y: c.CY1},
				P2: fixedmath.Point{X: c.CX2, Y: c.CY2},
				P3: fixedmath.Point{X: c.X, Y: c.Y}})
			cx, cy = c.X, c.Y
		case gpath.Close:
			if haveStart && (cx != startX || cy != startY) {
				edges = append(edges, Edge{Kind: EdgeLine,
					P0: fixedmath.Point{X: cx, Y: cy}, P3: fixedmath.Point{X: startX, Y: startY}})
			}
		}
	}
	if haveStart && len(edges) > 0 {
		last := edges[len(edges)-1]
		if last.P3.X != startX || last.P3.Y != startY {
			edges = append(edges, Edge{Kind: EdgeLine, P0: last.P3, P3: fixedmath.Point{X: startX, Y: startY}})
		}
	}
	return edges
}

// tangentAtStart and tangentAtEnd return an edge's unit tangent direction
// at t=0 / t=1, falling back to the chord when the adjacent control point
// coincides with the endpoint (a degenerate tangent).
func tangentAtStart(e Edge) (float64, float64) {
	switch e.Kind {
	case EdgeQuad:
		if d := normalize(e.P1.X-e.P0.X, e.P1.Y-e.P0.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
	case EdgeCubic:
		if d := normalize(e.P1.X-e.P0.X, e.P1.Y-e.P0.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
		if d := normalize(e.P2.X-e.P0.X, e.P2.Y-e.P0.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
	}
	d := normalize(e.P3.X-e.P0.X, e.P3.Y-e.P0.Y)
	return d.X, d.Y
}

func tangentAtEnd(e Edge) (float64, float64) {
	switch e.Kind {
	case EdgeQuad:
		if d := normalize(e.P3.X-e.P1.X, e.P3.Y-e.P1.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
	case EdgeCubic:
		if d := normalize(e.P3.X-e.P2.X, e.P3.Y-e.P2.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
		if d := normalize(e.P3.X-e.P1.X, e.P3.Y-e.P1.Y); d != (fixedmath.Point{}) {
			return d.X, d.Y
		}
	}
	d := normalize(e.P3.X-e.P0.X, e.P3.Y-e.P0.Y)
	return d.X, d.Y
}

func normalize(x, y float64) fixedmath.Point {
	l := math.Hypot(x, y)
	if l < 1e-12 {
		return fixedmath.Point{}
	}
	return fixedmath.Point{X: x / l, Y: y / l}
}

// assignColors implements spec §4.7's edge-coloring pass: corners found, a
// seed mask alternated per contour, and the mask rotated through the three
// mutually-adjacent two-bit subsets at each corner. Smooth (non-corner)
// transitions keep the same mask (spec: "propagate the mask unchanged").
//
// The literal algorithm XORs the running mask with a switching mask cycled
// {magenta, yellow, cyan}; that can degenerate to an invalid 0- or 3-bit
// mask when the running mask happens to equal the next switch value.
// Assigning the next cycle value directly (rather than XOR-ing into it)
// gets the same documented guarantee — any two distinct two-bit subsets of
// three channels always share exactly one bit — without that failure mode.
func assignColors(edges []Edge, cornerAngleThreshold float64, contourIdx int) {
	n := len(edges)
	if n == 1 {
		edges[0].Color = colorWhite
		return
	}
	if n == 2 {
		edges[0].Color = colorCyan
		edges[1].Color = colorMagenta
		return
	}

	corners := make([]bool, n)
	anyCorner := false
	for i := 0; i < n; i++ {
		prev := edges[(i-1+n)%n]
		tInX, tInY := tangentAtEnd(prev)
		tOutX, tOutY := tangentAtStart(edges[i])
		angle := math.Atan2(tInX*tOutY-tInY*tOutX, tInX*tOutX+tInY*tOutY)
		if math.Abs(angle) > cornerAngleThreshold {
			corners[i] = true
			anyCorner = true
		}
	}

	seed := colorCyan
	if contourIdx%2 == 1 {
		seed = colorMagenta
	}
	if !anyCorner {
		for i := range edges {
			edges[i].Color = seed
		}
		return
	}

	cycle := [3]EdgeColor{colorMagenta, colorYellow, colorCyan}
	mask := seed
	si := 0
	for i := 0; i < n; i++ {
		if corners[i] {
			mask = cycle[si%3]
			si++
		}
		edges[i].Color = mask
	}

	// The cycle has period 3; when the total corner count isn't a multiple
	// of 3 the wraparound corner (corners[0], between the last and first
	// edge) can land back on the same mask it started from, violating the
	// "adjacent edges across a corner share exactly one channel" guarantee
	// right at that one seam. Patch the last edge to whichever cycle value
	// differs from both neighbors when that happens.
	if corners[0] && n >= 3 && edges[n-1].Color == edges[0].Color {
		other := edges[0].Color
		prev := edges[n-2].Color
		for _, cand := range cycle {
			if cand != other && cand != prev {
				edges[n-1].Color = cand
				break
			}
		}
	}
}
