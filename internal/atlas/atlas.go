// Package atlas packs independently-rasterized glyph bitmaps into a single
// shelf-packed texture (spec §4.8, component C8), the hand-off point to a
// GPU text renderer: this package stops at a CPU-side bitmap plus a UV
// table, never touching GPU resources itself (§1 Non-goals).
//
// There is no direct teacher equivalent — agg_go has no atlas packer — so
// the shelf algorithm follows spec §4.8's description directly. The glyph
// metrics layout and UV-normalization idiom are grounded on
// other_examples' imgui font_atlas.go (CustomRect/CalcCustomRectUV), and
// GlyphMetrics' bearing/advance fields use golang.org/x/image/math/fixed's
// 26.6 fixed-point convention, the same one golang.org/x/image/font uses.
package atlas

import "golang.org/x/image/math/fixed"

// GlyphMetrics is the placement record for one packed glyph (spec §4.8).
type GlyphMetrics struct {
	// AtlasX, AtlasY, AtlasWidth, AtlasHeight locate the glyph's pixels
	// within the atlas bitmap.
	AtlasX, AtlasY, AtlasWidth, AtlasHeight int

	// BearingX, BearingY are the glyph's offset from the pen position to
	// its bitmap's top-left corner, in 26.6 fixed-point design units.
	BearingX, BearingY fixed.Int26_6

	// Advance is the pen advance after drawing this glyph, in 26.6
	// fixed-point design units.
	Advance fixed.Int26_6
}

// GlyphInput is one glyph's rasterized bitmap and metrics, as submitted to
// Builder.Build.
type GlyphInput struct {
	ID                 int
	Width, Height      int
	Pixels             []byte // Width*Height bytes, one per pixel (Gray8)
	BearingX, BearingY fixed.Int26_6
	Advance            fixed.Int26_6
}

// UV is a normalized texture-coordinate rectangle.
type UV struct {
	U0, V0, U1, V1 float64
}

// getGlyphUV normalizes an atlas rectangle to UV coordinates (spec §4.8),
// grounded on imgui's CalcCustomRectUV: uv = rect * (1/texWidth, 1/texHeight).
func getGlyphUV(atlasX, atlasY, width, height, texWidth, texHeight int) UV {
	sx := 1.0 / float64(texWidth)
	sy := 1.0 / float64(texHeight)
	return UV{
		U0: float64(atlasX) * sx,
		V0: float64(atlasY) * sy,
		U1: float64(atlasX+width) * sx,
		V1: float64(atlasY+height) * sy,
	}
}

// GetGlyphUV normalizes a placed glyph's atlas rectangle to UV coordinates
// against the given atlas's current dimensions.
func (a *Atlas) GetGlyphUV(m GlyphMetrics) UV {
	return getGlyphUV(m.AtlasX, m.AtlasY, m.AtlasWidth, m.AtlasHeight, a.Width, a.Height)
}
