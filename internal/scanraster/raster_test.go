package scanraster

import (
	"testing"

	"github.com/vexraster/raster2d/internal/gpath"
)

func toGrid(spans []Span, w, h int) [][]uint8 {
	grid := make([][]uint8, h)
	for i := range grid {
		grid[i] = make([]uint8, w)
	}
	for _, s := range spans {
		for i := 0; i < s.Len; i++ {
			grid[s.Y][s.X+i] = s.Cover
		}
	}
	return grid
}

// S1 — unit square, gray: exactly the 10x10 interior is 255, everything
// else is 0, total sum 25500.
func TestRender_UnitSquareExactCoverage(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).ClosePath()

	spans, err := Render(p, Options{
		Width: 20, Height: 20,
		ScaleX: 1, ScaleY: 1, OffsetX: 5, OffsetY: 5,
		Rule: NonZero,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grid := toGrid(spans, 20, 20)

	sum := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			sum += int(grid[y][x])
		}
	}
	if sum != 25500 {
		t.Fatalf("sum = %d, want 25500", sum)
	}

	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			if grid[y][x] != 255 {
				t.Fatalf("interior pixel (%d,%d) = %d, want 255", x, y, grid[y][x])
			}
		}
	}

	corners := [][2]int{{0, 0}, {19, 0}, {0, 19}, {19, 19}}
	for _, c := range corners {
		if grid[c[1]][c[0]] != 0 {
			t.Fatalf("corner (%d,%d) = %d, want 0", c[0], c[1], grid[c[1]][c[0]])
		}
	}
}

func TestRender_EmptyPathSucceedsWithNoSpans(t *testing.T) {
	spans, err := Render(gpath.New(), Options{Width: 10, Height: 10, ScaleX: 1, ScaleY: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spans != nil {
		t.Fatalf("expected nil spans, got %v", spans)
	}
}

func TestRender_PathFullyOutsideClipSucceedsEmpty(t *testing.T) {
	p := gpath.New().MoveTo(1000, 1000).LineTo(1010, 1000).LineTo(1010, 1010).LineTo(1000, 1010).ClosePath()
	spans, err := Render(p, Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("expected no spans, got %d", len(spans))
	}
}

func TestRender_InvalidSizeRejected(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).ClosePath()
	_, err := Render(p, Options{Width: 0, Height: 10})
	if err != ErrInvalidSize {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

// Two nested squares with the same winding direction: NonZero fill should
// leave the whole union solid (winding 2 still clamps to full coverage),
// while EvenOdd fill should hollow out the inner square (winding parity
// flips back to 0).
func TestRender_EvenOddHollowsNestedSquares(t *testing.T) {
	outer := gpath.New().MoveTo(0, 0).LineTo(20, 0).LineTo(20, 20).LineTo(0, 20).ClosePath()
	p := gpath.New()
	p.Commands = append(p.Commands, outer.Commands...)
	p.Commands = append(p.Commands,
		gpath.Command{Kind: gpath.Move, X: 5, Y: 5},
		gpath.Command{Kind: gpath.Line, X: 15, Y: 5},
		gpath.Command{Kind: gpath.Line, X: 15, Y: 15},
		gpath.Command{Kind: gpath.Line, X: 5, Y: 15},
		gpath.Command{Kind: gpath.Close},
	)

	opts := Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1, Rule: EvenOdd}
	spans, err := Render(p, opts)
	if err != nil {
		t.Fatal(err)
	}
	grid := toGrid(spans, 20, 20)
	if grid[10][10] != 0 {
		t.Fatalf("even-odd hole center (10,10) = %d, want 0", grid[10][10])
	}
	if grid[2][2] != 255 {
		t.Fatalf("outer ring (2,2) = %d, want 255", grid[2][2])
	}

	nz, err := Render(p, Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1, Rule: NonZero})
	if err != nil {
		t.Fatal(err)
	}
	nzGrid := toGrid(nz, 20, 20)
	if nzGrid[10][10] != 255 {
		t.Fatalf("non-zero center (10,10) = %d, want 255 (no hole)", nzGrid[10][10])
	}
}

func TestRender_IdentityGammaIsNoop(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).ClosePath()
	plain, err := Render(p, Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1, OffsetX: 5, OffsetY: 5})
	if err != nil {
		t.Fatal(err)
	}
	gammaApplied, err := Render(p, Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1, OffsetX: 5, OffsetY: 5, Gamma: IdentityGamma()})
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(gammaApplied) {
		t.Fatalf("span count differs: %d vs %d", len(plain), len(gammaApplied))
	}
	for i := range plain {
		if plain[i] != gammaApplied[i] {
			t.Fatalf("span %d differs under identity gamma: %+v vs %+v", i, plain[i], gammaApplied[i])
		}
	}
}

func TestHitTest_InsideAndOutsideSquare(t *testing.T) {
	p := gpath.New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).ClosePath()
	opts := Options{Width: 20, Height: 20, ScaleX: 1, ScaleY: 1, OffsetX: 5, OffsetY: 5}

	inside, err := HitTest(p, opts, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !inside {
		t.Fatal("expected (10,10) to hit inside the square")
	}

	outside, err := HitTest(p, opts, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if outside {
		t.Fatal("expected (1,1) to miss the square")
	}
}
