package scanraster

import (
	"github.com/vexraster/raster2d/internal/cellbuf"
	"github.com/vexraster/raster2d/internal/fixedmath"
)

// lineWalker decomposes a single directed edge into cell area/cover
// contributions (spec §4.4, "core line algorithm"). It mirrors the role of
// agg_go's rasterizer_cells_aa.line()/render_hline() (internal/rasterizer/
// cells_aa_simple.go in the teacher tree), but where the teacher's
// render_hline left the multi-cell-per-row case as a placeholder, this
// walks every crossed row and every crossed column explicitly using exact
// rational crossing points, so an axis-aligned edge accumulates exactly
// (required by spec §8 scenario S1's integer-boundary exactness).
type lineWalker struct {
	cb  *cellbuf.CellBuffer
	err error
}

// Line feeds one directed edge, in target fixed-point pixel coordinates,
// into the cell buffer. x/y are in units of 1/fixedmath.PixelScale pixels.
func (lw *lineWalker) Line(x1, y1, x2, y2 int) {
	if lw.err != nil {
		return
	}
	if y1 == y2 {
		// A horizontal edge crosses no scanlines and contributes nothing;
		// the next edge recomputes its own starting cell independently, so
		// there is nothing further to update here (spec §4.4).
		return
	}

	ey1 := fixedmath.PixelFloor(y1)
	ey2 := fixedmath.PixelFloor(y2)
	if ey1 == ey2 {
		lw.renderRow(ey1, x1, y1, x2, y2)
		return
	}

	incr := 1
	if y2 < y1 {
		incr = -1
	}

	curX, curY := x1, y1
	ey := ey1
	for ey != ey2 {
		var yBound int
		if incr > 0 {
			yBound = (ey + 1) << fixedmath.PixelBits
		} else {
			yBound = ey << fixedmath.PixelBits
		}
		xAt := crossAt(y1, x1, y2, x2, yBound)
		lw.renderRow(ey, curX, curY, xAt, yBound)
		if lw.err != nil {
			return
		}
		curX, curY = xAt, yBound
		ey += incr
	}
	lw.renderRow(ey, curX, curY, x2, y2)
}

// renderRow handles one edge fully contained within scanline row ey,
// splitting it at every pixel-column boundary it crosses (spec §4.4).
func (lw *lineWalker) renderRow(ey, x1, y1, x2, y2 int) {
	rowY := ey << fixedmath.PixelBits

	if x1 == x2 {
		ex := fixedmath.PixelFloor(x1)
		fx := fracIn(x1, ex)
		dy := y2 - y1
		lw.setCell(ex<<fixedmath.PixelBits, rowY)
		lw.cb.AddArea(2*fx*dy, dy)
		return
	}

	ex1 := fixedmath.PixelFloor(x1)
	ex2 := fixedmath.PixelFloor(x2)
	if ex1 == ex2 {
		fx1 := fracIn(x1, ex1)
		fx2 := fracIn(x2, ex1)
		dy := y2 - y1
		lw.setCell(ex1<<fixedmath.PixelBits, rowY)
		lw.cb.AddArea((fx1+fx2)*dy, dy)
		return
	}

	incr := 1
	if x2 < x1 {
		incr = -1
	}

	curX, curY := x1, y1
	ex := ex1
	for ex != ex2 {
		var xBound int
		if incr > 0 {
			xBound = (ex + 1) << fixedmath.PixelBits
		} else {
			xBound = ex << fixedmath.PixelBits
		}
		yAt := crossAt(x1, y1, x2, y2, xBound)
		fx0 := fracIn(curX, ex)
		fx1 := fracIn(xBound, ex)
		dy := yAt - curY
		lw.setCell(ex<<fixedmath.PixelBits, rowY)
		lw.cb.AddArea((fx0+fx1)*dy, dy)
		if lw.err != nil {
			return
		}
		curX, curY = xBound, yAt
		ex += incr
	}
	fx0 := fracIn(curX, ex)
	fx1 := fracIn(x2, ex)
	dy := y2 - curY
	lw.setCell(ex<<fixedmath.PixelBits, rowY)
	lw.cb.AddArea((fx0+fx1)*dy, dy)
}

func (lw *lineWalker) setCell(xProbe, yProbe int) {
	if lw.err != nil {
		return
	}
	if err := lw.cb.SetCurrentCell(xProbe, yProbe); err != nil {
		lw.err = err
	}
}

// fracIn returns the sub-pixel offset of v within cell index `cell`,
// ranging over [0, PixelScale] inclusive of both edges — unlike
// fixedmath.PixelFrac, this never re-floors v, so it stays correct for a
// value sitting exactly on a cell's right boundary.
func fracIn(v, cell int) int {
	return v - (cell << fixedmath.PixelBits)
}

// crossAt returns the value of axis B's coordinate at the point where a
// line from (a1,b1) to (a2,b2) crosses axis A's value aAt. Used both ways
// round: (x1,y1,x2,y2, yBound) solves for x at a given y, and the call
// site in renderRow swaps arguments to solve for y at a given x.
func crossAt(a1, b1, a2, b2, aAt int) int {
	da := a2 - a1
	if da == 0 {
		return b1
	}
	num := int64(b2-b1) * int64(aAt-a1)
	return b1 + int(divRound(num, int64(da)))
}

func divRound(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}
