package atlas

import "sort"

// shelf is one open horizontal strip of the atlas: glyphs are placed left
// to right along cursorX until none fit, after which a new shelf opens
// below (spec §4.8: "maintain a list of open shelves (y, remainingWidth,
// shelfHeight)").
type shelf struct {
	y, height, cursorX int
}

// Atlas is the packed result of a Builder.Build call.
type Atlas struct {
	Width, Height int
	Pix           []byte // Gray8, one byte per pixel
	Glyphs        map[int]GlyphMetrics
	Omitted       []int // glyph IDs that did not fit even at MaxWidth x MaxHeight
}

// Builder accumulates glyph placements into a growing shelf-packed atlas.
type Builder struct {
	maxWidth, maxHeight int
	padding             int

	width, height int
	pix           []byte
	shelves       []shelf
	growWidthNext bool

	glyphs  map[int]GlyphMetrics
	omitted []int
}

const defaultInitialSize = 64

// NewBuilder creates a shelf-packing builder bounded by maxWidth x
// maxHeight. padding separates adjacent glyphs to avoid bilinear-filter
// bleed (spec §4.8); padding <= 0 defaults to 1.
func NewBuilder(maxWidth, maxHeight, padding int) *Builder {
	if padding <= 0 {
		padding = 1
	}
	w := defaultInitialSize
	if w > maxWidth {
		w = maxWidth
	}
	h := defaultInitialSize
	if h > maxHeight {
		h = maxHeight
	}
	return &Builder{
		maxWidth: maxWidth, maxHeight: maxHeight, padding: padding,
		width: w, height: h, pix: make([]byte, w*h),
		growWidthNext: true,
		glyphs:        make(map[int]GlyphMetrics),
	}
}

// Build packs every glyph in inputs, sorted by rasterized height descending
// (spec §4.8), and returns the resulting atlas. Glyphs that don't fit even
// at MaxWidth x MaxHeight are omitted, not an error — the caller can retry
// with larger bounds (spec §4.8: "not fatal").
func (b *Builder) Build(inputs []GlyphInput) *Atlas {
	sorted := make([]GlyphInput, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Height > sorted[j].Height })

	for _, g := range sorted {
		b.place(g)
	}

	return &Atlas{
		Width: b.width, Height: b.height, Pix: b.pix,
		Glyphs: b.glyphs, Omitted: b.omitted,
	}
}

func (b *Builder) place(g GlyphInput) {
	padded2 := 2 * b.padding
	w, h := g.Width+padded2, g.Height+padded2

	for {
		if x, y, ok := b.tryPlaceInShelves(w, h); ok {
			b.commit(g, x, y)
			return
		}
		if !b.grow() {
			b.omitted = append(b.omitted, g.ID)
			return
		}
	}
}

// tryPlaceInShelves finds the first open shelf the glyph (w x h, already
// padded) fits in horizontally, or opens a new shelf below the last one
// when none does (spec §4.8). Returns the top-left of the padded box.
func (b *Builder) tryPlaceInShelves(w, h int) (x, y int, ok bool) {
	for i := range b.shelves {
		s := &b.shelves[i]
		if h <= s.height && b.width-s.cursorX >= w {
			x, y = s.cursorX, s.y
			s.cursorX += w
			return x, y, true
		}
	}
	newY := 0
	if n := len(b.shelves); n > 0 {
		last := b.shelves[n-1]
		newY = last.y + last.height
	}
	if newY+h > b.height || w > b.width {
		return 0, 0, false
	}
	b.shelves = append(b.shelves, shelf{y: newY, height: h, cursorX: w})
	return 0, newY, true
}

func (b *Builder) commit(g GlyphInput, x, y int) {
	px, py := x+b.padding, y+b.padding
	for row := 0; row < g.Height; row++ {
		srcOff := row * g.Width
		dstOff := (py+row)*b.width + px
		copy(b.pix[dstOff:dstOff+g.Width], g.Pixels[srcOff:srcOff+g.Width])
	}
	b.glyphs[g.ID] = GlyphMetrics{
		AtlasX: px, AtlasY: py, AtlasWidth: g.Width, AtlasHeight: g.Height,
		BearingX: g.BearingX, BearingY: g.BearingY, Advance: g.Advance,
	}
}

// grow doubles width, then height, in alternation, up to maxWidth x
// maxHeight (spec §4.8); returns false once neither dimension can grow
// further.
func (b *Builder) grow() bool {
	if b.growWidthNext {
		if b.width < b.maxWidth {
			b.resize(min(b.width*2, b.maxWidth), b.height)
			b.growWidthNext = false
			return true
		}
	} else {
		if b.height < b.maxHeight {
			b.resize(b.width, min(b.height*2, b.maxHeight))
			b.growWidthNext = true
			return true
		}
	}
	// Preferred dimension is already maxed; try the other one before
	// giving up entirely.
	if b.width < b.maxWidth {
		b.resize(min(b.width*2, b.maxWidth), b.height)
		return true
	}
	if b.height < b.maxHeight {
		b.resize(b.width, min(b.height*2, b.maxHeight))
		return true
	}
	return false
}

// resize reallocates the pixel buffer to (newWidth, newHeight), preserving
// every already-placed pixel at its existing (x,y) — shelf packing never
// moves a glyph once placed, only the available area grows around it — and
// widens every open shelf's remaining width by the newly available area.
func (b *Builder) resize(newWidth, newHeight int) {
	newPix := make([]byte, newWidth*newHeight)
	for row := 0; row < b.height; row++ {
		srcOff := row * b.width
		dstOff := row * newWidth
		copy(newPix[dstOff:dstOff+b.width], b.pix[srcOff:srcOff+b.width])
	}
	b.pix = newPix
	b.width = newWidth
	b.height = newHeight
}
