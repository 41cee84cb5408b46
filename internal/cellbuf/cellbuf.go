package cellbuf

import (
	"errors"
	"math"

	"github.com/vexraster/raster2d/internal/fixedmath"
)

// ErrPoolOverflow is raised when setCurrentCell needs a new cell and the
// pool is exhausted. Component C4 catches this, halves the band height,
// and retries per the pool-overflow protocol (spec §4.3).
var ErrPoolOverflow = errors.New("cellbuf: pool overflow")

// CellBuffer is the pool described in spec §3/§4.3: a pre-allocated slice
// of cells plus one linked-list head per scanline in the current band.
type CellBuffer struct {
	pool    []Cell
	poolCap int
	used    int

	yHead    []int
	bandMinY int
	bandMaxY int

	clipMinX, clipMinY, clipMaxX, clipMaxY int

	minX, minY, maxX, maxY int

	currentCell int
}

// NewCellBuffer allocates a buffer with room for poolCap cells. The pool
// itself never grows: when band subdivision cannot make a band fit, C4
// fails the render with ErrOutOfMemory rather than allocating a larger
// pool.
func NewCellBuffer(poolCap int) *CellBuffer {
	cb := &CellBuffer{
		pool:    make([]Cell, poolCap),
		poolCap: poolCap,
	}
	cb.SetClip(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
	cb.currentCell = NullCell
	return cb
}

// SetClip installs the active pixel rectangle (inclusive bounds).
func (cb *CellBuffer) SetClip(xMin, yMin, xMax, yMax int) {
	cb.clipMinX, cb.clipMinY, cb.clipMaxX, cb.clipMaxY = xMin, yMin, xMax, yMax
}

// SetBandBounds installs a scan band [yMin,yMax) in absolute scanline coordinates
// and resets the buffer, reallocating the yCells head table (spec §4.3).
func (cb *CellBuffer) SetBandBounds(yMin, yMax int) {
	cb.bandMinY, cb.bandMaxY = yMin, yMax
	n := yMax - yMin
	if n < 0 {
		n = 0
	}
	if cap(cb.yHead) >= n {
		cb.yHead = cb.yHead[:n]
	} else {
		cb.yHead = make([]int, n)
	}
	cb.Reset()
}

// Reset empties cell lists, zeroes the bounding box, and releases the pool
// back to index 0 without touching pool capacity (spec §4.3).
func (cb *CellBuffer) Reset() {
	for i := range cb.yHead {
		cb.yHead[i] = NullCell
	}
	cb.used = 0
	cb.minX, cb.minY = math.MaxInt32, math.MaxInt32
	cb.maxX, cb.maxY = math.MinInt32, math.MinInt32
	cb.currentCell = NullCell
}

// PoolUsed reports how many cells are currently allocated from the pool.
func (cb *CellBuffer) PoolUsed() int { return cb.used }

// PoolCap reports the pool's fixed capacity.
func (cb *CellBuffer) PoolCap() int { return cb.poolCap }

func (cb *CellBuffer) allocate() (int, bool) {
	if cb.used >= cb.poolCap {
		return NullCell, false
	}
	idx := cb.used
	cb.used++
	cb.pool[idx] = Cell{Next: NullCell}
	return idx, true
}

// SetCurrentCell converts fixed-point coordinates to integer pixel
// coordinates, clips against the band and clip rectangle, and finds or
// inserts a cell at (x,y) in that row's sorted list (spec §4.3). Outside
// the band/clip, currentCell becomes NullCell and subsequent AddArea calls
// are no-ops. Returns ErrPoolOverflow if a new cell is needed but the pool
// is exhausted.
func (cb *CellBuffer) SetCurrentCell(xFixed, yFixed int) error {
	x := fixedmath.PixelFloor(xFixed)
	y := fixedmath.PixelFloor(yFixed)

	if x < cb.clipMinX || x > cb.clipMaxX ||
		y < cb.clipMinY || y > cb.clipMaxY ||
		y < cb.bandMinY || y >= cb.bandMaxY {
		cb.currentCell = NullCell
		return nil
	}

	row := y - cb.bandMinY
	prev := NullCell
	cur := cb.yHead[row]
	for cur != NullCell && cb.pool[cur].X < x {
		prev = cur
		cur = cb.pool[cur].Next
	}
	if cur != NullCell && cb.pool[cur].X == x {
		cb.currentCell = cur
		cb.touch(x, y)
		return nil
	}

	idx, ok := cb.allocate()
	if !ok {
		return ErrPoolOverflow
	}
	cb.pool[idx].X = x
	cb.pool[idx].Next = cur
	if prev == NullCell {
		cb.yHead[row] = idx
	} else {
		cb.pool[prev].Next = idx
	}
	cb.currentCell = idx
	cb.touch(x, y)
	return nil
}

func (cb *CellBuffer) touch(x, y int) {
	if x < cb.minX {
		cb.minX = x
	}
	if x > cb.maxX {
		cb.maxX = x
	}
	if y < cb.minY {
		cb.minY = y
	}
	if y > cb.maxY {
		cb.maxY = y
	}
}

// AddArea accumulates into the current cell's area/cover. A no-op if the
// current position is outside the band/clip (spec §4.3).
func (cb *CellBuffer) AddArea(deltaArea, deltaCover int) {
	if cb.currentCell == NullCell {
		return
	}
	c := &cb.pool[cb.currentCell]
	c.Area += deltaArea
	c.Cover += deltaCover
}

// HasCells reports whether any cell has been touched since the last reset.
func (cb *CellBuffer) HasCells() bool { return cb.minY <= cb.maxY }

// MinX, MaxX, MinY, MaxY report the bounding box (in pixel coordinates) of
// every cell touched since the last reset. Only meaningful if HasCells.
func (cb *CellBuffer) MinX() int { return cb.minX }
func (cb *CellBuffer) MaxX() int { return cb.maxX }
func (cb *CellBuffer) MinY() int { return cb.minY }
func (cb *CellBuffer) MaxY() int { return cb.maxY }

// RowCells returns a copy of row y's cells (absolute scanline y), in ascending x
// order, satisfying iterateCells' per-row contract (spec §4.3). Returns nil
// for an empty or out-of-range row.
func (cb *CellBuffer) RowCells(y int) []Cell {
	row := y - cb.bandMinY
	if row < 0 || row >= len(cb.yHead) {
		return nil
	}
	var out []Cell
	for idx := cb.yHead[row]; idx != NullCell; idx = cb.pool[idx].Next {
		out = append(out, cb.pool[idx])
	}
	return out
}

// BandMinY, BandMaxY report the current band bounds in absolute scanline
// coordinates.
func (cb *CellBuffer) BandMinY() int { return cb.bandMinY }
func (cb *CellBuffer) BandMaxY() int { return cb.bandMaxY }
