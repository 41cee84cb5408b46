package fixedmath

import (
	"math"
	"testing"
)

func TestQuadExtremum1D(t *testing.T) {
	cases := []struct {
		name       string
		p0, p1, p2 float64
		wantOK     bool
		wantT      float64
	}{
		{"peak at 0.5", 0, 100, 0, true, 0.5},
		{"monotonic, no extremum", 0, 1, 2, false, 0},
		{"degenerate denominator", 0, 1, 2.0000000001, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := QuadExtremum1D(c.p0, c.p1, c.p2)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && math.Abs(got-c.wantT) > 1e-6 {
				t.Fatalf("t = %v, want %v", got, c.wantT)
			}
		})
	}
}

// S3 — getCubicExtrema(0,2,2,0) returns exactly one t in (0,1) with t≈0.5.
func TestCubicExtrema1D_SymmetricBump(t *testing.T) {
	roots := CubicExtrema1D(0, 2, 2, 0)
	if len(roots) != 1 {
		t.Fatalf("len(roots) = %d, want 1: %v", len(roots), roots)
	}
	if math.Abs(roots[0]-0.5) > 1e-9 {
		t.Fatalf("root = %v, want 0.5", roots[0])
	}
}

// S3 — getCubicExtrema(0,0.5,0,0.5) returns exactly one t≈0.5 (discriminant zero).
func TestCubicExtrema1D_RepeatedRoot(t *testing.T) {
	roots := CubicExtrema1D(0, 0.5, 0, 0.5)
	if len(roots) != 1 {
		t.Fatalf("len(roots) = %d, want 1: %v", len(roots), roots)
	}
	if math.Abs(roots[0]-0.5) > 1e-6 {
		t.Fatalf("root = %v, want 0.5", roots[0])
	}
}

func TestFlattenQuad_ApproximatesCurve(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{50, 100}
	p2 := Point{100, 0}
	pts := FlattenQuad(p0, p1, p2, 0.1)
	if len(pts) < 2 {
		t.Fatalf("expected a multi-point polyline, got %d points", len(pts))
	}
	if pts[len(pts)-1] != p2 {
		t.Fatalf("last point = %v, want %v", pts[len(pts)-1], p2)
	}
	// Every sampled curve point must lie within 1.0 design unit of some
	// polyline segment (a coarse proxy for "the polyline tracks the curve").
	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		c := QuadEval(p0, p1, p2, tt)
		best := math.MaxFloat64
		prev := p0
		for _, pt := range pts {
			d := segPointDistance(prev, pt, c)
			if d < best {
				best = d
			}
			prev = pt
		}
		if best > 1.0 {
			t.Fatalf("curve point %v strayed %v design units from polyline", c, best)
		}
	}
}

func segPointDistance(a, b, pt Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(pt.X-a.X, pt.Y-a.Y)
	}
	u := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / l2
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	projX := a.X + u*dx
	projY := a.Y + u*dy
	return math.Hypot(pt.X-projX, pt.Y-projY)
}

func TestFlattenCubicFastStepCount(t *testing.T) {
	pts := FlattenCubicFast(Point{0, 0}, Point{10, 10}, Point{20, -10}, Point{30, 0})
	if len(pts) != 12 {
		t.Fatalf("len(pts) = %d, want 12", len(pts))
	}
	if pts[len(pts)-1] != (Point{30, 0}) {
		t.Fatalf("last point = %v, want endpoint", pts[len(pts)-1])
	}
}
