package gpath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vexraster/raster2d/internal/fixedmath"
)

func TestExactBounds_EmptyPath(t *testing.T) {
	p := New()
	_, ok := ExactBounds(p)
	if ok {
		t.Fatal("empty path should yield absent bounds")
	}
}

func TestExactBounds_CloseOnly(t *testing.T) {
	p := New()
	p.Commands = append(p.Commands, Command{Kind: Close})
	_, ok := ExactBounds(p)
	if ok {
		t.Fatal("close-only path should yield absent bounds")
	}
}

func TestExactBounds_MoveOnlyIsDegenerate(t *testing.T) {
	p := New().MoveTo(3, 4)
	box, ok := ExactBounds(p)
	if !ok {
		t.Fatal("move-only path should yield a degenerate box")
	}
	want := Box{3, 4, 3, 4}
	if box != want {
		t.Fatalf("box = %+v, want %+v", box, want)
	}
}

// S2 — M(0,0) Q(50,100)(100,0) Z: tight peak at t=0.5 is y=50, not the
// control point's y=100.
func TestExactBounds_QuadraticCap(t *testing.T) {
	p := New().MoveTo(0, 0).QuadTo(50, 100, 100, 0).ClosePath()
	box, ok := ExactBounds(p)
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Box{XMin: 0, YMin: 0, XMax: 100, YMax: 50}
	if math.Abs(box.XMin-want.XMin) > 1e-9 || math.Abs(box.YMin-want.YMin) > 1e-9 ||
		math.Abs(box.XMax-want.XMax) > 1e-9 || math.Abs(box.YMax-want.YMax) > 1e-9 {
		t.Fatalf("box = %+v, want %+v", box, want)
	}
}

// Invariant 2: getExactBounds(path) contains every sampled curve point at
// many random t in [0,1].
func TestExactBounds_ContainsRandomSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := New().
		MoveTo(0, 0).
		CubicTo(30, 200, 170, -150, 200, 0).
		QuadTo(250, 400, 300, 0).
		ClosePath()

	box, ok := ExactBounds(p)
	if !ok {
		t.Fatal("expected bounds")
	}

	const eps = 1e-6
	check := func(pt fixedmath.Point) {
		if pt.X < box.XMin-eps || pt.X > box.XMax+eps || pt.Y < box.YMin-eps || pt.Y > box.YMax+eps {
			t.Fatalf("sampled point %+v escaped bounds %+v", pt, box)
		}
	}

	for i := 0; i < 10000; i++ {
		tt := rng.Float64()
		check(fixedmath.CubicEval(fixedmath.Point{X: 0, Y: 0}, fixedmath.Point{X: 30, Y: 200},
			fixedmath.Point{X: 170, Y: -150}, fixedmath.Point{X: 200, Y: 0}, tt))
		check(fixedmath.QuadEval(fixedmath.Point{X: 200, Y: 0}, fixedmath.Point{X: 250, Y: 400},
			fixedmath.Point{X: 300, Y: 0}, tt))
	}
}
