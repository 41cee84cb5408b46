package gradient

import "github.com/vexraster/raster2d/internal/pixfmt"

// Fill composites g over an RGBA bitmap using a previously-rasterized
// Gray coverage bitmap as the alpha mask (spec §4.9: "the rasterizer
// emits a gray coverage bitmap first; then the output RGBA pixel =
// (gradient.rgb, gradient.a * coverage / 255)"). coverage and out must
// share the same Width/Height; out must be pixfmt.RGBA.
//
// originX/originY/scale map bitmap pixel coordinates back to the
// design-space coordinates g.At expects, mirroring the
// scale+offset convention internal/scanraster's rasterizer uses
// (spec §6's RasterOptions).
func Fill(out *pixfmt.Bitmap, coverage *pixfmt.Bitmap, g Gradient, originX, originY, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	for py := 0; py < out.Height; py++ {
		for px := 0; px < out.Width; px++ {
			cov := coverage.AtGray(px, py)
			if cov == 0 {
				out.SetRGBA(px, py, 0, 0, 0, 0)
				continue
			}
			x := originX + (float64(px)+0.5)*scale
			y := originY + (float64(py)+0.5)*scale
			r, g2, b, a := g.At(x, y)
			out.SetRGBA(px, py, r, g2, b, byte(int(a)*int(cov)/255))
		}
	}
}
