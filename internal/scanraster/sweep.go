package scanraster

import "github.com/vexraster/raster2d/internal/fixedmath"

// FillRule selects how accumulated winding is mapped to coverage (spec §4.4).
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// Span is a run of Len pixels starting at X on one scanline, all sharing
// Cover, ready for packing into a pixel format by component C5.
type Span struct {
	X, Y, Len int
	Cover     uint8
}

// alphaShift/fullCover2 mirror agg_go's aa_shift/aa_scale2 conventions
// (internal/rasterizer/scanline_aa.go CalculateAlpha): with PixelBits=8
// sub-pixel precision, a fully covered pixel's accumulated "cover*2*scale"
// quantity normalizes to 256 after a (PixelBits+1)-bit shift, which
// alphaFromRaw clamps to 255.
const (
	alphaShift = fixedmath.PixelBits + 1
	fullCover2 = 1 << alphaShift
	evenOddMod = fullCover2 - 1
)

// Gamma is a 256-entry lookup table applied to every computed coverage
// value before it leaves the sweep, following agg_go's
// RasterizerScanlineAA.SetGamma/ApplyGamma (scanline_aa.go) — identity by
// default. Kept as a supplemental feature: the gray rasterizer's raw
// 0..255 coverage (spec §4.4) is what every downstream consumer of this
// package sees unless a gamma table is installed in Options.
type Gamma [256]uint8

// IdentityGamma returns the no-op gamma table.
func IdentityGamma() *Gamma {
	var g Gamma
	for i := range g {
		g[i] = uint8(i)
	}
	return &g
}

// alphaFromRaw converts a raw signed accumulator (runningCover*2*pixelScale
// minus a cell's area, or pure runningCover*2*pixelScale for a gap span)
// into an 8-bit coverage value under the given fill rule (spec §4.4),
// optionally passed through a gamma LUT.
func alphaFromRaw(raw int, rule FillRule, gamma *Gamma) uint8 {
	cover := fixedmath.Abs(raw) >> alphaShift
	if rule == EvenOdd {
		cover &= evenOddMod
		if cover > (1 << fixedmath.PixelBits) {
			cover = fullCover2 - cover
		}
	}
	a := fixedmath.Clamp255(cover)
	if gamma != nil {
		a = gamma[a]
	}
	return a
}

// rowCell is the minimal view sweepRow needs of a cellbuf.Cell; kept
// separate so this package doesn't need to import cellbuf's Cell type in
// its exported surface.
type rowCell struct {
	X, Area, Cover int
}

// sweepRow walks one scanline's cells left to right, emitting gap spans
// (pure running coverage) between cells and a one-pixel partial-coverage
// span at each cell (spec §4.4, "Sweep & span emission").
func sweepRow(y int, cells []rowCell, rule FillRule, gamma *Gamma) []Span {
	if len(cells) == 0 {
		return nil
	}
	var spans []Span
	running := 0
	prevX := cells[0].X
	for i, c := range cells {
		if i > 0 && c.X > prevX+1 {
			gapAlpha := alphaFromRaw(running*fullCover2, rule, gamma)
			if gapAlpha > 0 {
				spans = append(spans, Span{X: prevX + 1, Y: y, Len: c.X - 1 - (prevX + 1) + 1, Cover: gapAlpha})
			}
		}
		running += c.Cover
		raw := running*fullCover2 - c.Area
		alpha := alphaFromRaw(raw, rule, gamma)
		if alpha > 0 {
			spans = append(spans, Span{X: c.X, Y: y, Len: 1, Cover: alpha})
		}
		prevX = c.X
	}
	return spans
}
