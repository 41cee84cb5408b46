package raster2d

import "github.com/vexraster/raster2d/internal/atlas"

// GlyphMetrics is the placement record for one packed glyph (spec §4.8).
type GlyphMetrics = atlas.GlyphMetrics

// GlyphInput is one glyph's rasterized bitmap and metrics, as submitted
// to AtlasBuilder.Build.
type GlyphInput = atlas.GlyphInput

// GlyphUV is a normalized texture-coordinate rectangle.
type GlyphUV = atlas.UV

// GlyphAtlas is the packed result of an AtlasBuilder.Build call: {bitmap,
// glyphs: map<GlyphId,GlyphMetrics>} (spec §3 Data model).
type GlyphAtlas = atlas.Atlas

// AtlasBuilder packs independently-rasterized glyph bitmaps into a single
// shelf-packed texture (spec §4.8, component C8).
type AtlasBuilder = atlas.Builder

// NewAtlasBuilder creates a shelf-packing builder bounded by maxWidth x
// maxHeight, with padding atlas pixels separating adjacent glyphs.
func NewAtlasBuilder(maxWidth, maxHeight, padding int) *AtlasBuilder {
	return atlas.NewBuilder(maxWidth, maxHeight, padding)
}
