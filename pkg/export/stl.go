// Package export writes build artifacts: STL meshes for printing and
// DXF outlines for flat checks against the radio face.
package export

import (
	"fmt"
	"math"

	"github.com/hschendel/stl"

	"github.com/otakup0pe/fabz/pkg/kernel"
)

// ToSTL converts a triangle mesh to an STL solid. Face normals are
// recomputed from the triangle winding; degenerate triangles get a
// zero normal, which STL readers recompute anyway.
func ToSTL(m *kernel.Mesh) (*stl.Solid, error) {
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("export: empty mesh")
	}
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("export: index count %d is not a multiple of 3", len(m.Indices))
	}

	solid := &stl.Solid{
		Name:      m.PartName,
		Triangles: make([]stl.Triangle, 0, m.TriangleCount()),
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, err := vertexAt(m, m.Indices[i])
		if err != nil {
			return nil, err
		}
		b, err := vertexAt(m, m.Indices[i+1])
		if err != nil {
			return nil, err
		}
		c, err := vertexAt(m, m.Indices[i+2])
		if err != nil {
			return nil, err
		}
		solid.Triangles = append(solid.Triangles, stl.Triangle{
			Normal:   faceNormal(a, b, c),
			Vertices: [3]stl.Vec3{a, b, c},
		})
	}
	return solid, nil
}

// WriteSTL writes a mesh to path. ascii selects the text encoding;
// binary is what print pipelines usually want.
func WriteSTL(m *kernel.Mesh, path string, ascii bool) error {
	solid, err := ToSTL(m)
	if err != nil {
		return err
	}
	solid.IsAscii = ascii
	if err := solid.WriteFile(path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func vertexAt(m *kernel.Mesh, idx uint32) (stl.Vec3, error) {
	i := int(idx) * 3
	if i+2 >= len(m.Vertices) {
		return stl.Vec3{}, fmt.Errorf("export: vertex index %d out of range", idx)
	}
	return stl.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}, nil
}

func faceNormal(a, b, c stl.Vec3) stl.Vec3 {
	ux := float64(b[0] - a[0])
	uy := float64(b[1] - a[1])
	uz := float64(b[2] - a[2])
	vx := float64(c[0] - a[0])
	vy := float64(c[1] - a[1])
	vz := float64(c[2] - a[2])

	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 {
		return stl.Vec3{}
	}
	return stl.Vec3{float32(nx / l), float32(ny / l), float32(nz / l)}
}
