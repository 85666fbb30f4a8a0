// Package null provides a non-evaluating kernel.Kernel. It performs no
// geometry math; solids carry only an approximate bounding box, and
// every operation is recorded in call order. It exists so the shape
// and order of a solid evaluation can be tested without paying for a
// real boolean engine, and as a fallback backend where sdfx is not
// wanted.
package null

import (
	"math"

	"github.com/otakup0pe/fabz/pkg/geom"
	"github.com/otakup0pe/fabz/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// nullSolid carries only a bounding box.
type nullSolid struct {
	min, max [3]float64
}

func (s *nullSolid) BoundingBox() (min, max [3]float64) {
	return s.min, s.max
}

// Kernel implements kernel.Kernel without doing any geometry math.
// Ops records the name of every operation in call order. Not safe for
// concurrent use.
type Kernel struct {
	Ops []string
}

// New returns a new null kernel.
func New() *Kernel {
	return &Kernel{}
}

func (k *Kernel) record(op string) {
	k.Ops = append(k.Ops, op)
}

func polygonBounds(p geom.Polygon) (min, max [3]float64) {
	lo, hi := p.Bounds()
	return [3]float64{lo.X, lo.Y, 0}, [3]float64{hi.X, hi.Y, 0}
}

// Extrude records the operation and returns the profile's bounding box
// extruded to the given height.
func (k *Kernel) Extrude(profile geom.Polygon, height float64) (kernel.Solid, error) {
	k.record("extrude")
	min, max := polygonBounds(profile)
	max[2] = height
	return &nullSolid{min: min, max: max}, nil
}

// Loft records the operation; the bounds cover both profiles over the
// height.
func (k *Kernel) Loft(bottom, top geom.Polygon, height float64) (kernel.Solid, error) {
	k.record("loft")
	bmin, bmax := polygonBounds(bottom)
	tmin, tmax := polygonBounds(top)
	min, max := boxUnion(bmin, bmax, tmin, tmax)
	max[2] = height
	return &nullSolid{min: min, max: max}, nil
}

// Cylinder records the operation.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	k.record("cylinder")
	return &nullSolid{
		min: [3]float64{-radius, -radius, 0},
		max: [3]float64{radius, radius, height},
	}, nil
}

// Box records the operation.
func (k *Kernel) Box(x, y, z float64) (kernel.Solid, error) {
	k.record("box")
	return &nullSolid{max: [3]float64{x, y, z}}, nil
}

// Union records the operation and merges bounds.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	k.record("union")
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	min, max := boxUnion(amin, amax, bmin, bmax)
	return &nullSolid{min: min, max: max}
}

// Difference records the operation; bounds are the base solid's.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	k.record("difference")
	min, max := a.BoundingBox()
	return &nullSolid{min: min, max: max}
}

// Intersection records the operation; bounds are the base solid's.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	k.record("intersection")
	min, max := a.BoundingBox()
	return &nullSolid{min: min, max: max}
}

// Translate records the operation and shifts bounds.
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.record("translate")
	min, max := s.BoundingBox()
	d := [3]float64{x, y, z}
	for i := 0; i < 3; i++ {
		min[i] += d[i]
		max[i] += d[i]
	}
	return &nullSolid{min: min, max: max}
}

// RotateZ records the operation and returns the rotated bounding box
// of the original bounds.
func (k *Kernel) RotateZ(s kernel.Solid, degrees float64) kernel.Solid {
	k.record("rotate-z")
	min, max := s.BoundingBox()
	a := degrees * math.Pi / 180
	sin, cos := math.Sin(a), math.Cos(a)

	corners := [4][2]float64{
		{min[0], min[1]}, {max[0], min[1]}, {min[0], max[1]}, {max[0], max[1]},
	}
	rmin := [3]float64{math.Inf(1), math.Inf(1), min[2]}
	rmax := [3]float64{math.Inf(-1), math.Inf(-1), max[2]}
	for _, c := range corners {
		x := c[0]*cos - c[1]*sin
		y := c[0]*sin + c[1]*cos
		rmin[0] = math.Min(rmin[0], x)
		rmin[1] = math.Min(rmin[1], y)
		rmax[0] = math.Max(rmax[0], x)
		rmax[1] = math.Max(rmax[1], y)
	}
	return &nullSolid{min: rmin, max: rmax}
}

// ToMesh returns an empty mesh; the null kernel never tessellates.
func (k *Kernel) ToMesh(s kernel.Solid, cells int) (*kernel.Mesh, error) {
	k.record("to-mesh")
	return &kernel.Mesh{}, nil
}

// Count returns how often the named operation was recorded.
func (k *Kernel) Count(op string) int {
	n := 0
	for _, o := range k.Ops {
		if o == op {
			n++
		}
	}
	return n
}

func boxUnion(amin, amax, bmin, bmax [3]float64) (min, max [3]float64) {
	for i := 0; i < 3; i++ {
		min[i] = math.Min(amin[i], bmin[i])
		max[i] = math.Max(amax[i], bmax[i])
	}
	return min, max
}
