package csg

import (
	"testing"

	"github.com/otakup0pe/fabz/pkg/geom"
)

func squareProfile() geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
}

func TestConstructorsProduceExpectedKinds(t *testing.T) {
	sq := squareProfile()
	tests := []struct {
		name string
		s    *Solid
		kind Kind
	}{
		{"extrude", Extrude(sq, 2), KindExtrude},
		{"loft", Loft(sq, sq, 3), KindLoft},
		{"cylinder", Cylinder(5, 1), KindCylinder},
		{"box", Box(1, 2, 3), KindBox},
		{"union", Union(Box(1, 1, 1), Box(2, 2, 2)), KindUnion},
		{"difference", Difference(Box(2, 2, 2), Box(1, 1, 1)), KindDifference},
		{"translate", Translate(Box(1, 1, 1), 1, 2, 3), KindTranslate},
		{"rotate-z", RotateZ(Box(1, 1, 1), 90), KindRotateZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.s.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tt.s.Kind, tt.kind)
			}
		})
	}
}

func TestNamedDoesNotMutate(t *testing.T) {
	b := Box(1, 1, 1)
	named := b.Named("plate")
	if b.Name != "" {
		t.Errorf("original name mutated to %q", b.Name)
	}
	if named.Name != "plate" {
		t.Errorf("named copy has name %q, want %q", named.Name, "plate")
	}
	if named.Kind != b.Kind {
		t.Error("named copy changed kind")
	}
}

func TestWalkAndCount(t *testing.T) {
	tree := Difference(
		Union(Box(1, 1, 1), Cylinder(2, 1), Cylinder(3, 1)),
		Cylinder(4, 1),
	)
	if got := tree.Count(KindCylinder); got != 3 {
		t.Errorf("cylinder count = %d, want 3", got)
	}
	visited := 0
	tree.Walk(func(*Solid) { visited++ })
	if visited != 6 {
		t.Errorf("walk visited %d nodes, want 6", visited)
	}
}

func TestContentHashDeterminism(t *testing.T) {
	build := func() *Solid {
		sq := squareProfile()
		return Difference(
			Union(Extrude(sq, 2).Named("plate"), Cylinder(5, 2)),
			Translate(Cylinder(6, 1), 1, 0, -0.01),
		)
	}
	a, b := build(), build()
	if a.ContentHash() != b.ContentHash() {
		t.Error("identical trees produced different content hashes")
	}
}

func TestContentHashSensitivity(t *testing.T) {
	a := Cylinder(5, 2)
	tests := []struct {
		name  string
		other *Solid
	}{
		{"different radius", Cylinder(5, 2.0001)},
		{"different height", Cylinder(5.0001, 2)},
		{"different kind", Box(5, 2, 2)},
		{"different name", Cylinder(5, 2).Named("bore")},
		{"wrapped", Translate(Cylinder(5, 2), 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a.ContentHash() == tt.other.ContentHash() {
				t.Error("distinct trees produced equal content hashes")
			}
		})
	}
}

func TestValidateWellFormedTree(t *testing.T) {
	sq := squareProfile()
	tree := Difference(
		Union(Extrude(sq, 2), Loft(sq, sq, 3)),
		Translate(Cylinder(4, 1), 0, 0, -0.01),
	)
	if errs := Validate(tree); len(errs) != 0 {
		t.Errorf("well-formed tree produced findings: %v", errs)
	}
}

func TestValidateFindings(t *testing.T) {
	sq := squareProfile()
	tests := []struct {
		name string
		s    *Solid
	}{
		{"empty union", Union()},
		{"difference without subtrahend", &Solid{Kind: KindDifference, Args: []*Solid{Box(1, 1, 1)}}},
		{"zero-height extrude", Extrude(sq, 0)},
		{"two-point profile", Extrude(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)},
		{"negative cylinder", Cylinder(-1, 1)},
		{"flat box", Box(1, 0, 1)},
		{"nil operand", Union(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := Validate(tt.s); len(errs) == 0 {
				t.Error("expected findings, got none")
			}
		})
	}
}
