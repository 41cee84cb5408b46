package raster2d

import "github.com/vexraster/raster2d/internal/gpath"

// Path is an ordered sequence of Move/Line/Quad/Cubic/Close commands in
// 64-bit float design coordinates (spec §3 Data model).
type Path = gpath.Path

// Box is an axis-aligned bounding box in design units.
type Box = gpath.Box

// NewPath creates an empty path ready for MoveTo/LineTo/... chaining.
func NewPath() *Path {
	return gpath.New()
}

// Bounds returns p's tightest axis-aligned bounding box, or false for an
// empty path (spec §4.2, component C2).
func Bounds(p *Path) (Box, bool) {
	return gpath.ExactBounds(p)
}
