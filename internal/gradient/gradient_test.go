package gradient

import (
	"testing"

	"github.com/vexraster/raster2d/internal/pixfmt"
)

func TestLinear_EndpointsAndMidpoint(t *testing.T) {
	g := NewLinear(0, 0, 100, 0, []ColorStop{
		{Offset: 0, R: 255, G: 0, B: 0, A: 255},
		{Offset: 1, R: 0, G: 0, B: 255, A: 255},
	})
	if r, gr, b, a := g.At(0, 0); r != 255 || gr != 0 || b != 0 || a != 255 {
		t.Fatalf("start = %d,%d,%d,%d, want 255,0,0,255", r, gr, b, a)
	}
	if r, gr, b, a := g.At(100, 0); r != 0 || gr != 0 || b != 255 || a != 255 {
		t.Fatalf("end = %d,%d,%d,%d, want 0,0,255,255", r, gr, b, a)
	}
	r, _, b, _ := g.At(50, 0)
	if r != 128 && r != 127 {
		t.Fatalf("mid R = %d, want ~127/128", r)
	}
	if b != 128 && b != 127 {
		t.Fatalf("mid B = %d, want ~127/128", b)
	}
}

func TestLinear_ClampsBeyondSegment(t *testing.T) {
	g := NewLinear(0, 0, 10, 0, []ColorStop{
		{Offset: 0, R: 10, G: 10, B: 10, A: 255},
		{Offset: 1, R: 200, G: 200, B: 200, A: 255},
	})
	if r, _, _, _ := g.At(-50, 0); r != 10 {
		t.Fatalf("before start R = %d, want 10 (clamped)", r)
	}
	if r, _, _, _ := g.At(500, 0); r != 200 {
		t.Fatalf("past end R = %d, want 200 (clamped)", r)
	}
}

func TestLinear_ZeroLengthDegeneratesToFirstStop(t *testing.T) {
	g := NewLinear(5, 5, 5, 5, []ColorStop{
		{Offset: 0, R: 9, G: 8, B: 7, A: 6},
		{Offset: 1, R: 1, G: 2, B: 3, A: 4},
	})
	if r, gr, b, a := g.At(100, 100); r != 9 || gr != 8 || b != 7 || a != 6 {
		t.Fatalf("got %d,%d,%d,%d, want first stop 9,8,7,6", r, gr, b, a)
	}
}

func TestRadial_CenterAndEdge(t *testing.T) {
	g := NewRadial(50, 50, 25, []ColorStop{
		{Offset: 0, R: 255, G: 255, B: 255, A: 255},
		{Offset: 1, R: 0, G: 0, B: 0, A: 255},
	})
	if r, _, _, _ := g.At(50, 50); r != 255 {
		t.Fatalf("center R = %d, want 255", r)
	}
	if r, _, _, _ := g.At(75, 50); r != 0 {
		t.Fatalf("edge R = %d, want 0", r)
	}
	// Beyond the radius clamps to the last stop, not extrapolated further.
	if r, _, _, _ := g.At(500, 50); r != 0 {
		t.Fatalf("past edge R = %d, want 0 (clamped)", r)
	}
}

func TestRadial_ZeroRadiusDegeneratesToFirstStop(t *testing.T) {
	g := NewRadial(0, 0, 0, []ColorStop{
		{Offset: 0, R: 1, G: 2, B: 3, A: 4},
		{Offset: 1, R: 9, G: 9, B: 9, A: 9},
	})
	if r, gr, b, a := g.At(1000, -1000); r != 1 || gr != 2 || b != 3 || a != 4 {
		t.Fatalf("got %d,%d,%d,%d, want first stop 1,2,3,4", r, gr, b, a)
	}
}

func TestSampleStops_EmptyIsTransparent(t *testing.T) {
	if r, g, b, a := sampleStops(nil, 0.5); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("empty stops = %d,%d,%d,%d, want all zero", r, g, b, a)
	}
}

func TestSampleStops_SingleStopEverywhere(t *testing.T) {
	stops := sortedStops([]ColorStop{{Offset: 0.5, R: 7, G: 8, B: 9, A: 10}})
	for _, t2 := range []float64{0, 0.25, 0.5, 0.9, 1} {
		if r, g, b, a := sampleStops(stops, t2); r != 7 || g != 8 || b != 9 || a != 10 {
			t.Fatalf("t=%v: got %d,%d,%d,%d, want the single stop's color", t2, r, g, b, a)
		}
	}
}

func TestSortedStops_SortsOutOfOrderInput(t *testing.T) {
	stops := sortedStops([]ColorStop{
		{Offset: 1, R: 9},
		{Offset: 0, R: 1},
		{Offset: 0.5, R: 5},
	})
	for i := 1; i < len(stops); i++ {
		if stops[i].Offset < stops[i-1].Offset {
			t.Fatalf("stops not sorted: %+v", stops)
		}
	}
}

func TestFill_ZeroCoverageIsTransparent(t *testing.T) {
	out := pixfmt.NewBitmap(4, 4, pixfmt.RGBA, false)
	coverage := pixfmt.NewBitmap(4, 4, pixfmt.Gray, false)
	g := NewLinear(0, 0, 4, 0, []ColorStop{
		{Offset: 0, R: 255, A: 255},
		{Offset: 1, R: 0, A: 255},
	})
	Fill(out, coverage, g, 0, 0, 1)
	if r, gr, b, a := out.AtRGBA(2, 2); r != 0 || gr != 0 || b != 0 || a != 0 {
		t.Fatalf("zero-coverage pixel = %d,%d,%d,%d, want fully transparent", r, gr, b, a)
	}
}

func TestFill_ScalesAlphaByCoverage(t *testing.T) {
	out := pixfmt.NewBitmap(1, 1, pixfmt.RGBA, false)
	coverage := pixfmt.NewBitmap(1, 1, pixfmt.Gray, false)
	coverage.Pix[0] = 128
	g := NewLinear(0, 0, 1, 0, []ColorStop{
		{Offset: 0, R: 10, G: 20, B: 30, A: 200},
	})
	Fill(out, coverage, g, 0, 0, 1)
	_, _, _, a := out.AtRGBA(0, 0)
	want := byte(200 * 128 / 255)
	if a != want {
		t.Fatalf("alpha = %d, want %d", a, want)
	}
}
