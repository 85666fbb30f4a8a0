package null

import (
	"testing"

	"github.com/otakup0pe/fabz/pkg/geom"
)

func TestRecordsOperations(t *testing.T) {
	k := New()
	a, _ := k.Box(1, 1, 1)
	b, _ := k.Cylinder(2, 1)
	k.Difference(k.Union(a, b), b)

	want := []string{"box", "cylinder", "union", "difference"}
	if len(k.Ops) != len(want) {
		t.Fatalf("recorded %d ops %v, want %d", len(k.Ops), k.Ops, len(want))
	}
	for i, op := range want {
		if k.Ops[i] != op {
			t.Errorf("op %d = %q, want %q", i, k.Ops[i], op)
		}
	}
	if k.Count("union") != 1 {
		t.Errorf("Count(union) = %d, want 1", k.Count("union"))
	}
}

func TestBoundsPropagation(t *testing.T) {
	k := New()
	box, _ := k.Box(10, 20, 30)
	moved := k.Translate(box, 1, 2, 3)
	min, max := moved.BoundingBox()
	if min != [3]float64{1, 2, 3} {
		t.Errorf("min = %v, want {1 2 3}", min)
	}
	if max != [3]float64{11, 22, 33} {
		t.Errorf("max = %v, want {11 22 33}", max)
	}
}

func TestExtrudeBounds(t *testing.T) {
	k := New()
	profile := geom.Polygon{{X: -2, Y: -3}, {X: 2, Y: -3}, {X: 2, Y: 3}, {X: -2, Y: 3}}
	s, err := k.Extrude(profile, 5)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	min, max := s.BoundingBox()
	if min != [3]float64{-2, -3, 0} || max != [3]float64{2, 3, 5} {
		t.Errorf("bounds = %v..%v, want {-2 -3 0}..{2 3 5}", min, max)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	k := New()
	box, _ := k.Box(100, 10, 10)
	r := k.RotateZ(box, 90)
	min, max := r.BoundingBox()
	if got := max[1] - min[1]; got < 99.9 || got > 100.1 {
		t.Errorf("Y extent after quarter turn = %f, want ~100", got)
	}
	if got := max[0] - min[0]; got < 9.9 || got > 10.1 {
		t.Errorf("X extent after quarter turn = %f, want ~10", got)
	}
}
