package pixfmt

import "github.com/vexraster/raster2d/internal/scanraster"

// PaintSpans writes a set of coverage spans into a Gray, Mono, or RGBA
// bitmap. LCD bitmaps are not produced this way — they are assembled by
// FilterLCDHorizontal/FilterLCDVertical from an oversampled Gray
// intermediate (spec §4.5); calling PaintSpans with an LCD-mode bitmap
// panics, since it indicates a caller wiring bug rather than a domain
// no-op.
func PaintSpans(b *Bitmap, spans []scanraster.Span, fg Color) {
	switch b.Mode {
	case Gray:
		for _, s := range spans {
			writeGraySpan(b, s)
		}
	case Mono:
		for _, s := range spans {
			writeMonoSpan(b, s)
		}
	case RGBA:
		for _, s := range spans {
			writeRGBASpan(b, s, fg)
		}
	default:
		panic("pixfmt: PaintSpans called with an LCD-mode bitmap")
	}
}

func writeGraySpan(b *Bitmap, s scanraster.Span) {
	off := b.rowOffset(s.Y)
	for i := 0; i < s.Len; i++ {
		b.Pix[off+s.X+i] = s.Cover
	}
}

// writeMonoSpan thresholds coverage at 128 and packs bits MSB-first, one
// bit per pixel; 1 means inside (spec §4.5/§6).
func writeMonoSpan(b *Bitmap, s scanraster.Span) {
	off := b.rowOffset(s.Y)
	on := s.Cover >= 128
	for i := 0; i < s.Len; i++ {
		px := s.X + i
		byteIdx := off + px/8
		bit := uint(7 - px%8)
		if on {
			b.Pix[byteIdx] |= 1 << bit
		} else {
			b.Pix[byteIdx] &^= 1 << bit
		}
	}
}

func writeRGBASpan(b *Bitmap, s scanraster.Span, fg Color) {
	off := b.rowOffset(s.Y)
	for i := 0; i < s.Len; i++ {
		p := off + (s.X+i)*4
		b.Pix[p+0] = fg.R
		b.Pix[p+1] = fg.G
		b.Pix[p+2] = fg.B
		b.Pix[p+3] = s.Cover
	}
}
