package pixfmt

// FilterWeights is a 5-tap FIR kernel for LCD subpixel filtering (spec
// §4.5). The weights need not sum to 256 — FilterLCDHorizontal and
// FilterLCDVertical divide by the actual sum at runtime so alternative kernels (Light, Legacy) work
// unmodified.
type FilterWeights [5]int

var (
	// DefaultFilter is agg_go/FreeType's standard LCD kernel.
	DefaultFilter = FilterWeights{8, 77, 86, 77, 8}
	// LightFilter trades some crispness for less color fringing.
	LightFilter = FilterWeights{0, 85, 86, 85, 0}
	// LegacyFilter is the older, sharper ClearType-style kernel.
	LegacyFilter = FilterWeights{0, 64, 128, 64, 0}
)

func (w FilterWeights) sum() int {
	s := 0
	for _, v := range w {
		s += v
	}
	return s
}

// filterAt applies the 5-tap kernel centered at index `center`, reading
// through get (which clamps out-of-range indices to the nearest edge
// sample, so a uniform source filters to the same uniform value).
func filterAt(get func(int) int, center int, w FilterWeights) int {
	acc := 0
	for i, wt := range w {
		off := i - 2
		acc += wt * get(center+off)
	}
	return acc
}

// FilterLCDHorizontal consumes a Gray bitmap oversampled 3x horizontally
// (width = 3*outWidth, height = outHeight) and produces an LCDHorizontal
// bitmap by filtering each of the R/G/B subpixel columns independently
// with the given kernel (spec §4.5). If bgr is set, the R and B channel
// assignments are swapped in the output.
func FilterLCDHorizontal(src *Bitmap, outWidth, outHeight int, weights FilterWeights, bgr bool) *Bitmap {
	out := NewBitmap(outWidth, outHeight, LCDHorizontal, false)
	sum := weights.sum()

	for y := 0; y < outHeight; y++ {
		rowOff := src.rowOffset(y)
		rowLen := src.Width
		get := func(i int) int {
			if i < 0 {
				i = 0
			} else if i >= rowLen {
				i = rowLen - 1
			}
			return int(src.Pix[rowOff+i])
		}

		outOff := out.rowOffset(y)
		for x := 0; x < outWidth; x++ {
			base := x * 3
			r := filterAt(get, base+0, weights) / sum
			g := filterAt(get, base+1, weights) / sum
			b := filterAt(get, base+2, weights) / sum
			if bgr {
				r, b = b, r
			}
			p := outOff + x*3
			out.Pix[p+0] = clampByte(r)
			out.Pix[p+1] = clampByte(g)
			out.Pix[p+2] = clampByte(b)
		}
	}
	return out
}

// FilterLCDVertical mirrors FilterLCDHorizontal with the oversampling and
// filtering axes swapped: src must be a Gray bitmap oversampled 3x
// vertically (width = outWidth, height = 3*outHeight); the FIR runs
// column-wise down each of the three oversampled rows that fuse into one
// output row (spec §4.5).
func FilterLCDVertical(src *Bitmap, outWidth, outHeight int, weights FilterWeights, bgr bool) *Bitmap {
	out := NewBitmap(outWidth, outHeight, LCDVertical, false)
	sum := weights.sum()
	srcRows := src.Height

	for x := 0; x < outWidth; x++ {
		get := func(row int) int {
			if row < 0 {
				row = 0
			} else if row >= srcRows {
				row = srcRows - 1
			}
			off := src.rowOffset(row)
			return int(src.Pix[off+x])
		}

		for y := 0; y < outHeight; y++ {
			base := y * 3
			r := filterAt(get, base+0, weights) / sum
			g := filterAt(get, base+1, weights) / sum
			b := filterAt(get, base+2, weights) / sum
			if bgr {
				r, b = b, r
			}
			outOff := out.rowOffset(y)
			p := outOff + x*3
			out.Pix[p+0] = clampByte(r)
			out.Pix[p+1] = clampByte(g)
			out.Pix[p+2] = clampByte(b)
		}
	}
	return out
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
