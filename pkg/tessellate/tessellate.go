// Package tessellate evaluates a csg expression tree against a
// geometry kernel and produces a triangle mesh.
package tessellate

import (
	"fmt"

	"github.com/otakup0pe/fabz/pkg/csg"
	"github.com/otakup0pe/fabz/pkg/kernel"
)

// Evaluate walks a csg tree bottom-up and builds the corresponding
// kernel solid. The tree is read-only and never mutated; evaluating
// the same tree twice yields the same geometry.
func Evaluate(s *csg.Solid, k kernel.Kernel) (kernel.Solid, error) {
	if s == nil {
		return nil, fmt.Errorf("evaluate: nil node")
	}

	switch s.Kind {
	case csg.KindExtrude:
		d, ok := s.Data.(csg.ExtrudeData)
		if !ok {
			return nil, dataErr(s)
		}
		return k.Extrude(d.Profile, d.Height)

	case csg.KindLoft:
		d, ok := s.Data.(csg.LoftData)
		if !ok {
			return nil, dataErr(s)
		}
		return k.Loft(d.Bottom, d.Top, d.Height)

	case csg.KindCylinder:
		d, ok := s.Data.(csg.CylinderData)
		if !ok {
			return nil, dataErr(s)
		}
		return k.Cylinder(d.Height, d.Radius)

	case csg.KindBox:
		d, ok := s.Data.(csg.BoxData)
		if !ok {
			return nil, dataErr(s)
		}
		return k.Box(d.X, d.Y, d.Z)

	case csg.KindUnion:
		return evalFold(s, k, k.Union)

	case csg.KindDifference:
		return evalFold(s, k, k.Difference)

	case csg.KindTranslate:
		d, ok := s.Data.(csg.TranslateData)
		if !ok {
			return nil, dataErr(s)
		}
		child, err := evalChild(s, k)
		if err != nil {
			return nil, err
		}
		return k.Translate(child, d.Offset.X, d.Offset.Y, d.Offset.Z), nil

	case csg.KindRotateZ:
		d, ok := s.Data.(csg.RotateZData)
		if !ok {
			return nil, dataErr(s)
		}
		child, err := evalChild(s, k)
		if err != nil {
			return nil, err
		}
		return k.RotateZ(child, d.Degrees), nil

	default:
		return nil, fmt.Errorf("evaluate: unknown node kind %v", s.Kind)
	}
}

// evalFold evaluates an n-ary boolean node left to right. Union folds
// all operands together; difference subtracts every operand after the
// first from the first.
func evalFold(s *csg.Solid, k kernel.Kernel, op func(a, b kernel.Solid) kernel.Solid) (kernel.Solid, error) {
	if len(s.Args) == 0 {
		return nil, fmt.Errorf("evaluate: %s has no operands", label(s))
	}
	acc, err := Evaluate(s.Args[0], k)
	if err != nil {
		return nil, err
	}
	for _, arg := range s.Args[1:] {
		next, err := Evaluate(arg, k)
		if err != nil {
			return nil, err
		}
		acc = op(acc, next)
	}
	return acc, nil
}

func evalChild(s *csg.Solid, k kernel.Kernel) (kernel.Solid, error) {
	if len(s.Args) != 1 {
		return nil, fmt.Errorf("evaluate: %s has %d operands, want 1", label(s), len(s.Args))
	}
	return Evaluate(s.Args[0], k)
}

func dataErr(s *csg.Solid) error {
	return fmt.Errorf("evaluate: %s has unexpected data type %T", label(s), s.Data)
}

func label(s *csg.Solid) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Kind.String()
}

// Tessellate evaluates the tree and converts the resulting solid to a
// triangle mesh. cells controls tessellation resolution; cells <= 0
// selects the kernel's default. The mesh's part name is taken from the
// root node's name, falling back to its content hash.
func Tessellate(s *csg.Solid, k kernel.Kernel, cells int) (*kernel.Mesh, error) {
	solid, err := Evaluate(s, k)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid, cells)
	if err != nil {
		return nil, fmt.Errorf("tessellate: %s: %w", label(s), err)
	}
	if s.Name != "" {
		mesh.PartName = s.Name
	} else {
		mesh.PartName = s.ContentHash().Short()
	}
	return mesh, nil
}
