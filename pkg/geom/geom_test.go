package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestArcVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		coverage float64
		step     float64
	}{
		{"quarter", 90, 5},
		{"three-quarter", 270, 5},
		{"full", 360, 5},
		{"odd step", 270, 7},
		{"tiny coverage", 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Arc(10, 6, tt.coverage, tt.step)
			n := int(math.Ceil(tt.coverage / tt.step))
			if n < 1 {
				n = 1
			}
			want := 2 * (n + 1)
			if len(p) != want {
				t.Errorf("vertex count = %d, want %d", len(p), want)
			}
		})
	}
}

func TestArcEndpointsAtAngleZero(t *testing.T) {
	p := Arc(10, 6, 270, 5)
	first := p[0]
	last := p[len(p)-1]

	if math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("first vertex = %v, want (10, 0)", first)
	}
	if math.Abs(last.X-6) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("last vertex = %v, want (6, 0)", last)
	}
}

func TestArcOuterThenInnerOrdering(t *testing.T) {
	const outer, inner = 10.0, 6.0
	p := Arc(outer, inner, 90, 10)
	half := len(p) / 2

	for i, v := range p {
		r := math.Hypot(v.X, v.Y)
		if i < half && math.Abs(r-outer) > 1e-9 {
			t.Fatalf("vertex %d: |p| = %g, want outer radius %g", i, r, outer)
		}
		if i >= half && math.Abs(r-inner) > 1e-9 {
			t.Fatalf("vertex %d: |p| = %g, want inner radius %g", i, r, inner)
		}
	}

	// Outer arc ascends in angle, inner arc descends.
	if !(p[1].Y > p[0].Y) {
		t.Error("outer arc should ascend in angle")
	}
	if !(p[half].Y > p[half+1].Y) {
		t.Error("inner arc should descend in angle")
	}
}

func TestArcFullAnnulus(t *testing.T) {
	const outer, inner = 10.0, 6.0
	p := Arc(outer, inner, 360, 5)
	for i, v := range p {
		r := math.Hypot(v.X, v.Y)
		if r < inner-1e-9 || r > outer+1e-9 {
			t.Fatalf("vertex %d: |p| = %g outside [%g, %g]", i, r, inner, outer)
		}
	}
}

func TestArcStepFloor(t *testing.T) {
	// A zero step must not stall; it is floored to MinStepDeg.
	p := Arc(10, 6, 90, 0)
	want := 2 * (int(math.Ceil(90/MinStepDeg)) + 1)
	if len(p) != want {
		t.Errorf("vertex count = %d, want %d", len(p), want)
	}
}

func TestConvexHullSquare(t *testing.T) {
	pts := []r2.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0.5, Y: 0.5}, // interior, must be dropped
	}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("hull size = %d, want 4", len(hull))
	}
	for _, p := range pts {
		if !hull.Contains(p) {
			t.Errorf("hull does not contain input point %v", p)
		}
	}
}

func TestCircleHullContainsGenerators(t *testing.T) {
	circles := []Circle{
		{Center: r2.Vec{X: 0, Y: 0}, R: 9.85},
		{Center: r2.Vec{X: 17.7, Y: 0}, R: 9.65},
		{Center: r2.Vec{X: 34.5, Y: 0}, R: 10.65},
	}
	hull := CircleHull(circles, 5)
	for _, c := range circles {
		for _, p := range SampleCircle(c, 5) {
			if !hull.Contains(p) {
				t.Fatalf("hull does not contain sample point %v of circle %v", p, c)
			}
		}
	}
}

func TestCircleHullColinearIsStadiumLike(t *testing.T) {
	// Colinear centers: the hull spans from the leftmost circle's left
	// edge to the rightmost circle's right edge, and vertically to the
	// largest radius.
	circles := []Circle{
		{Center: r2.Vec{X: 0, Y: 0}, R: 5},
		{Center: r2.Vec{X: 20, Y: 0}, R: 4},
		{Center: r2.Vec{X: 40, Y: 0}, R: 6},
	}
	hull := CircleHull(circles, 2)
	min, max := hull.Bounds()

	if math.Abs(min.X+5) > 0.05 {
		t.Errorf("min.X = %g, want ≈ -5", min.X)
	}
	if math.Abs(max.X-46) > 0.05 {
		t.Errorf("max.X = %g, want ≈ 46", max.X)
	}
	if math.Abs(max.Y-6) > 0.05 {
		t.Errorf("max.Y = %g, want ≈ 6", max.Y)
	}
}

func TestContainsRejectsOutside(t *testing.T) {
	hull := ConvexHull([]r2.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})
	if hull.Contains(r2.Vec{X: 3, Y: 1}) {
		t.Error("point outside hull reported as contained")
	}
}
