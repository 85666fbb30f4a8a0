// Package guard builds the protective guard solid: a base plate
// hosting sloped partial-ring walls around two knobs, pierced by
// feature bores and service notches. Builders emit csg expression
// trees; no geometry kernel is touched here.
package guard

import (
	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
	"github.com/otakup0pe/fabz/pkg/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shell builds one knob's guard wall at the origin, base at z=0. The
// wall's outer face slopes inward by the spec's inset from base to
// top; the inner bore stays straight so the knob clears the full
// height.
//
// The slope inset is clamped to wall − epsilon. Past that the top
// cross-section would invert through the inner radius and the loft
// would degenerate.
func Shell(spec config.GuardSpec, stepDeg, epsilon float64) *csg.Solid {
	outerBase := spec.Diameter/2 + spec.Wall
	innerBase := spec.Diameter/2 + spec.Tolerance/2

	inset := spec.SlopeInset
	if inset > spec.Wall-epsilon {
		inset = spec.Wall - epsilon
	}
	outerTop := outerBase - inset

	base := geom.Arc(outerBase, innerBase, spec.Coverage, stepDeg)
	if spec.Height <= epsilon {
		// Degenerate height: just the base slab.
		return csg.Extrude(base, epsilon)
	}
	top := geom.Arc(outerTop, innerBase, spec.Coverage, stepDeg)
	return csg.Loft(base, top, spec.Height)
}

// PlaceShell positions a guard wall built by Shell: the coverage arc
// is rotated so it is centered about the spec's position angle
// (0/90/180/270 facing right/front/left/back), then moved to the
// knob's center and up onto the plate.
func PlaceShell(s *csg.Solid, spec config.GuardSpec, center r2.Vec, plateThickness float64) *csg.Solid {
	rotated := csg.RotateZ(s, spec.Position-spec.Coverage/2)
	return csg.Translate(rotated, center.X, center.Y, plateThickness)
}
