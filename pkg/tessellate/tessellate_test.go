package tessellate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
	"github.com/otakup0pe/fabz/pkg/geom"
	"github.com/otakup0pe/fabz/pkg/guard"
	"github.com/otakup0pe/fabz/pkg/kernel/null"
	"github.com/otakup0pe/fabz/pkg/tessellate"
)

func squareProfile(side float64) geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	}
}

func TestEvaluateOrderAndShape(t *testing.T) {
	k := null.New()
	tree := csg.Difference(
		csg.Translate(csg.Extrude(squareProfile(10), 2), 1, 2, 3),
		csg.Cylinder(5, 1),
	)
	if _, err := tessellate.Evaluate(tree, k); err != nil {
		t.Fatal(err)
	}
	want := []string{"extrude", "translate", "cylinder", "difference"}
	if got := strings.Join(k.Ops, " "); got != strings.Join(want, " ") {
		t.Errorf("ops = %q, want %q", got, strings.Join(want, " "))
	}
}

func TestEvaluateNaryUnionFolds(t *testing.T) {
	k := null.New()
	tree := csg.Union(
		csg.Box(1, 1, 1),
		csg.Box(2, 2, 2),
		csg.Box(3, 3, 3),
	)
	s, err := tessellate.Evaluate(tree, k)
	if err != nil {
		t.Fatal(err)
	}
	if got := k.Count("union"); got != 2 {
		t.Errorf("union count = %d, want 2 for 3 operands", got)
	}
	_, max := s.BoundingBox()
	if max != [3]float64{3, 3, 3} {
		t.Errorf("union bounds max = %v, want merged {3 3 3}", max)
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		tree *csg.Solid
	}{
		{"nil node", nil},
		{"empty union", &csg.Solid{Kind: csg.KindUnion}},
		{"missing data", &csg.Solid{Kind: csg.KindExtrude}},
		{"translate without operand", &csg.Solid{Kind: csg.KindTranslate, Data: csg.TranslateData{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tessellate.Evaluate(tc.tree, null.New()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEvaluateGuardAssemblyOpCounts(t *testing.T) {
	p := config.Default()
	k := null.New()
	if _, err := tessellate.Evaluate(guard.Assemble(p), k); err != nil {
		t.Fatal(err)
	}

	counts := []struct {
		op   string
		want int
	}{
		{"extrude", 1},    // plate
		{"loft", 2},       // channel and volume walls
		{"cylinder", 4},   // three feature bores plus bottom bore
		{"box", 2},        // rear and side notches
		{"rotate-z", 2},   // one per placed wall
		{"translate", 8},  // two walls, six cutters
		{"union", 7},      // 3 positives and 6 negatives, folded pairwise
		{"difference", 1}, // one global subtraction
	}
	for _, c := range counts {
		if got := k.Count(c.op); got != c.want {
			t.Errorf("%s count = %d, want %d", c.op, got, c.want)
		}
	}
}

func TestEvaluateGuardAssemblyBounds(t *testing.T) {
	p := config.Default()
	k := null.New()
	s, err := tessellate.Evaluate(guard.Assemble(p), k)
	if err != nil {
		t.Fatal(err)
	}
	min, max := s.BoundingBox()

	// The solid stands on z=0 and tops out at the taller guard wall.
	wantTop := p.PlateThickness + math.Max(p.ChannelGuardHeight, p.VolumeGuardHeight)
	if min[2] > 1e-9 || math.Abs(max[2]-wantTop) > 1e-9 {
		t.Errorf("z extent [%g, %g], want [0, %g]", min[2], max[2], wantTop)
	}

	// X extent spans the antenna circle to the volume circle.
	antennaR := p.AntennaDiameter/2 + p.Wall + p.Padding
	volumeR := p.VolumeDiameter/2 + p.Wall + p.Padding
	volumeX := p.AntennaChannelSpacing + p.ChannelVolumeSpacing
	if math.Abs(min[0]+antennaR) > 0.1 {
		t.Errorf("min x = %g, want about %g", min[0], -antennaR)
	}
	if math.Abs(max[0]-(volumeX+volumeR)) > 0.1 {
		t.Errorf("max x = %g, want about %g", max[0], volumeX+volumeR)
	}
}

func TestTessellatePartName(t *testing.T) {
	k := null.New()

	named := csg.Box(1, 1, 1).Named("brick")
	mesh, err := tessellate.Tessellate(named, k, 0)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.PartName != "brick" {
		t.Errorf("part name = %q, want %q", mesh.PartName, "brick")
	}

	anon := csg.Box(1, 1, 1)
	mesh, err = tessellate.Tessellate(anon, k, 0)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.PartName != anon.ContentHash().Short() {
		t.Errorf("anonymous part name = %q, want content hash %q", mesh.PartName, anon.ContentHash().Short())
	}
}
