// Package csg defines the solid expression tree for guard models.
// Builders compose immutable Solid nodes (primitives, booleans,
// transforms); no geometry math happens here. Evaluation against a
// concrete geometry kernel lives in pkg/tessellate.
package csg

// Kind enumerates the types of nodes in a solid expression tree.
type Kind int

const (
	KindExtrude    Kind = iota // linear extrusion of a 2D polygon
	KindLoft                   // transition between two 2D polygons over a height
	KindCylinder               // cylinder primitive
	KindBox                    // axis-aligned box primitive
	KindUnion                  // boolean union of children
	KindDifference             // first child minus the rest
	KindTranslate              // translate single child
	KindRotateZ                // rotate single child about the Z axis
)

func (k Kind) String() string {
	switch k {
	case KindExtrude:
		return "extrude"
	case KindLoft:
		return "loft"
	case KindCylinder:
		return "cylinder"
	case KindBox:
		return "box"
	case KindUnion:
		return "union"
	case KindDifference:
		return "difference"
	case KindTranslate:
		return "translate"
	case KindRotateZ:
		return "rotate-z"
	default:
		return "unknown"
	}
}

// Solid is a node in an immutable solid expression tree. Composition
// always produces a new Solid; operands are never mutated.
type Solid struct {
	Kind Kind
	Name string // optional part name, carried into meshes
	Args []*Solid
	Data Data
}

// Data is the interface for kind-specific node payloads.
type Data interface {
	solidData() // marker method restricting implementations to this package
}

// Named returns a copy of the node carrying the given part name.
// The original node is left untouched.
func (s *Solid) Named(name string) *Solid {
	c := *s
	c.Name = name
	return &c
}

// Walk visits s and every node below it in depth-first pre-order.
func (s *Solid) Walk(fn func(*Solid)) {
	if s == nil {
		return
	}
	fn(s)
	for _, a := range s.Args {
		a.Walk(fn)
	}
}

// Count returns the number of nodes of the given kind in the tree.
func (s *Solid) Count(k Kind) int {
	n := 0
	s.Walk(func(node *Solid) {
		if node.Kind == k {
			n++
		}
	})
	return n
}
