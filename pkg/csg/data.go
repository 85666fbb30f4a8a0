package csg

import (
	"github.com/otakup0pe/fabz/pkg/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExtrudeData holds the profile and height of a linear extrusion.
// The solid spans z in [0, Height].
type ExtrudeData struct {
	Profile geom.Polygon
	Height  float64
}

func (ExtrudeData) solidData() {}

// LoftData holds the two profiles of a lofted solid. The bottom
// profile sits at z=0, the top profile at z=Height, and the lateral
// surface transitions linearly between them.
type LoftData struct {
	Bottom geom.Polygon
	Top    geom.Polygon
	Height float64
}

func (LoftData) solidData() {}

// CylinderData describes a cylinder with its axis on Z, spanning
// z in [0, Height].
type CylinderData struct {
	Height float64
	Radius float64
}

func (CylinderData) solidData() {}

// BoxData describes an axis-aligned box with its minimum corner at the
// origin.
type BoxData struct {
	X, Y, Z float64
}

func (BoxData) solidData() {}

// TranslateData holds the offset applied to the single child.
type TranslateData struct {
	Offset r3.Vec
}

func (TranslateData) solidData() {}

// RotateZData holds the rotation (degrees, counterclockwise looking
// down +Z) applied to the single child.
type RotateZData struct {
	Degrees float64
}

func (RotateZData) solidData() {}
