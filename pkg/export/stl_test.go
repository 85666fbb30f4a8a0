package export_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"

	"github.com/otakup0pe/fabz/pkg/export"
	"github.com/otakup0pe/fabz/pkg/kernel"
)

// wedgeMesh is a two-triangle mesh: one face in the z=0 plane, one
// standing upright in the y=0 plane.
func wedgeMesh() *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, -1, 0,
		},
		Indices:  []uint32{0, 1, 2, 0, 3, 1},
		PartName: "wedge",
	}
}

func TestToSTL(t *testing.T) {
	solid, err := export.ToSTL(wedgeMesh())
	if err != nil {
		t.Fatal(err)
	}
	if solid.Name != "wedge" {
		t.Errorf("solid name = %q, want %q", solid.Name, "wedge")
	}
	if len(solid.Triangles) != 2 {
		t.Fatalf("triangle count = %d, want 2", len(solid.Triangles))
	}

	// First triangle lies in z=0 with CCW winding seen from above.
	n := solid.Triangles[0].Normal
	if math.Abs(float64(n[2])-1) > 1e-6 || math.Abs(float64(n[0])) > 1e-6 {
		t.Errorf("face normal = %v, want +Z", n)
	}
}

func TestToSTLRejectsBadMeshes(t *testing.T) {
	cases := []struct {
		name string
		mesh *kernel.Mesh
	}{
		{"nil", nil},
		{"empty", &kernel.Mesh{}},
		{"ragged indices", &kernel.Mesh{
			Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Indices:  []uint32{0, 1},
		}},
		{"index out of range", &kernel.Mesh{
			Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Indices:  []uint32{0, 1, 9},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := export.ToSTL(tc.mesh); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteSTLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedge.stl")
	if err := export.WriteSTL(wedgeMesh(), path, false); err != nil {
		t.Fatal(err)
	}

	read, err := stl.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(read.Triangles) != 2 {
		t.Errorf("read back %d triangles, want 2", len(read.Triangles))
	}
}
