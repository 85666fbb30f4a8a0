package csg

import (
	"github.com/otakup0pe/fabz/pkg/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Extrude returns a linear extrusion of profile spanning z in [0, height].
func Extrude(profile geom.Polygon, height float64) *Solid {
	return &Solid{
		Kind: KindExtrude,
		Data: ExtrudeData{Profile: profile, Height: height},
	}
}

// Loft returns a solid whose cross-section transitions from bottom
// (at z=0) to top (at z=height).
func Loft(bottom, top geom.Polygon, height float64) *Solid {
	return &Solid{
		Kind: KindLoft,
		Data: LoftData{Bottom: bottom, Top: top, Height: height},
	}
}

// Cylinder returns a cylinder with its axis on Z, spanning z in [0, height].
func Cylinder(height, radius float64) *Solid {
	return &Solid{
		Kind: KindCylinder,
		Data: CylinderData{Height: height, Radius: radius},
	}
}

// Box returns an axis-aligned box with its minimum corner at the origin.
func Box(x, y, z float64) *Solid {
	return &Solid{
		Kind: KindBox,
		Data: BoxData{X: x, Y: y, Z: z},
	}
}

// Union returns the boolean union of the given solids.
func Union(solids ...*Solid) *Solid {
	return &Solid{Kind: KindUnion, Args: solids}
}

// Difference returns base minus the union of the remaining solids.
func Difference(base *Solid, subtrahends ...*Solid) *Solid {
	return &Solid{
		Kind: KindDifference,
		Args: append([]*Solid{base}, subtrahends...),
	}
}

// Translate returns s moved by (x, y, z).
func Translate(s *Solid, x, y, z float64) *Solid {
	return &Solid{
		Kind: KindTranslate,
		Args: []*Solid{s},
		Data: TranslateData{Offset: r3.Vec{X: x, Y: y, Z: z}},
	}
}

// RotateZ returns s rotated by degrees about the Z axis.
func RotateZ(s *Solid, degrees float64) *Solid {
	return &Solid{
		Kind: KindRotateZ,
		Args: []*Solid{s},
		Data: RotateZData{Degrees: degrees},
	}
}
