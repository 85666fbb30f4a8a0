// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, null) provide solid modeling and boolean
// operations behind this interface. The kernel abstraction keeps the
// guard construction algorithm independent of which engine performs
// the math.
package kernel

import "github.com/otakup0pe/fabz/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Extrude and Loft span z in [0, height]; Cylinder has
	// its axis on Z spanning z in [0, height]; Box has its minimum
	// corner at the origin.
	Extrude(profile geom.Polygon, height float64) (Solid, error)
	Loft(bottom, top geom.Polygon, height float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	Box(x, y, z float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	RotateZ(s Solid, degrees float64) Solid

	// Mesh output. cells controls tessellation resolution; cells <= 0
	// selects an implementation default.
	ToMesh(s Solid, cells int) (*Mesh, error)
}
