package msdf

import (
	"testing"

	"github.com/vexraster/raster2d/internal/fixedmath"
	"github.com/vexraster/raster2d/internal/gpath"
)

// S6 — MSDF square: a filled square rendered to a 100x100 MSDF with spread
// 16 must read inside at its center, outside near a far corner, and the
// median=128 contour must pass within a pixel of the bottom edge (spec §8
// S6).
func TestGenerate_Square(t *testing.T) {
	p := gpath.New().MoveTo(30, 30).LineTo(70, 30).LineTo(70, 70).LineTo(30, 70).ClosePath()
	bmp := Generate(p, Options{Width: 100, Height: 100, Spread: 16})

	r, g, b, _ := bmp.AtRGBA(50, 50)
	if Median(r, g, b) <= 128 {
		t.Fatalf("center (50,50) should be inside: median=%d (r=%d g=%d b=%d)", Median(r, g, b), r, g, b)
	}

	r, g, b, _ = bmp.AtRGBA(5, 5)
	if Median(r, g, b) >= 128 {
		t.Fatalf("(5,5) should be outside: median=%d (r=%d g=%d b=%d)", Median(r, g, b), r, g, b)
	}

	// Rows 31 and 28 (pixel centers 1.5 units inside and outside the bottom
	// edge at y=30) should straddle the median=128 crossing: the inside row
	// reads > 128, the outside row reads < 128.
	r, g, b, _ = bmp.AtRGBA(50, 31)
	inside := Median(r, g, b)
	r, g, b, _ = bmp.AtRGBA(50, 28)
	outside := Median(r, g, b)
	if inside <= 128 || outside >= 128 {
		t.Fatalf("bottom edge crossing not within 1px: just-inside median=%d, just-outside median=%d", inside, outside)
	}
}

func TestAssignColors_SquareEdgesAllDistinctAcrossCorners(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).ClosePath()
	contours := Decompose(p, 0)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	edges := contours[0].Edges
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	n := len(edges)
	for i := 0; i < n; i++ {
		a := edges[i].Color
		b := edges[(i+1)%n].Color
		shared := a & b
		if shared == 0 || (shared&(shared-1)) != 0 {
			t.Fatalf("edges %d,%d share mask %03b vs %03b (shared=%03b), want exactly 1 bit", i, (i+1)%n, a, b, shared)
		}
	}
}

func TestLineDistance_PerpendicularAndSign(t *testing.T) {
	p0 := fixedmath.Point{X: 0, Y: 0}
	p3 := fixedmath.Point{X: 10, Y: 0}
	signed, _, unsigned := lineDistance(p0, p3, fixedmath.Point{X: 5, Y: 3})
	if unsigned != 3 {
		t.Fatalf("unsigned distance = %v, want 3", unsigned)
	}
	if signed <= 0 {
		t.Fatalf("point above a left-to-right edge should be on the positive side, got %v", signed)
	}
}

func TestGenerate_SinglePixelDoesNotPanic(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).LineTo(0, 1).ClosePath()
	Generate(p, Options{Width: 2, Height: 2, Spread: 1})
}
