// Package cellbuf implements the per-scanline cell pool that accumulates
// sub-pixel area/cover contributions during scan conversion (spec §4.3,
// component C3).
//
// agg_go's equivalent (internal/rasterizer/cell.go, cells_aa.go,
// cells_aa_simple.go) stores cells unsorted in block-allocated arrays and
// sorts each row with qsort once scanning finishes. This package instead
// keeps each row's list sorted by x at insertion time — spec's
// setCurrentCell is specified as a sorted walk-and-insert-or-reuse, not a
// sort-at-sweep-time design — trading a little insertion cost (amortised
// O(1) in practice, since successive calls from the line algorithm almost
// always touch x values at or past the row's current tail) for a pool that
// never needs an explicit sort pass.
package cellbuf

// NullCell is the sentinel terminating a row's linked list and marking
// "no current cell" (spec §4.3, agg_go's cell_block_scale sentinel idiom).
const NullCell = -1

// Cell is the sub-pixel accumulator described in spec §3: area is signed,
// in units of 2*(subpixel^2), summing partial-coverage area contributed by
// crossings within the pixel; cover sums vertical crossings leaving the
// pixel. Next links to the following cell in the same row's list, or
// NullCell if this is the last.
type Cell struct {
	X     int
	Area  int
	Cover int
	Next  int
}
