package guard

import (
	"math"

	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cutters are built taller/longer than what they pierce by 2·epsilon
// and offset epsilon past the pierced surface, so the boolean engine
// never sees coincident faces.

// HoleCutter builds a through-bore for one feature: a cylinder of the
// feature diameter plus tolerance, spanning from below the plate to
// above the tallest guard.
func HoleCutter(center r2.Vec, diameter, tolerance, totalHeight, epsilon float64) *csg.Solid {
	c := csg.Cylinder(totalHeight+2*epsilon, (diameter+tolerance)/2)
	return csg.Translate(c, center.X, center.Y, -epsilon)
}

// RearNotchCutter cuts a rectangular notch inward from the plate's
// rearmost edge (most negative Y). The rear extent is taken from the
// largest generating circle radius, not the hulled silhouette; for the
// standard colinear layout the two coincide.
func RearNotchCutter(p config.Params, epsilon float64) *csg.Solid {
	maxR := 0.0
	for _, c := range plateCircles(p) {
		maxR = math.Max(maxR, c.R)
	}
	b := csg.Box(p.RearNotchWidth, p.RearNotchDepth+epsilon, p.RearNotchHeight+2*epsilon)
	return csg.Translate(b,
		p.RearNotchOffset-p.RearNotchWidth/2,
		-(maxR + epsilon),
		-epsilon,
	)
}

// SideNotchCutter cuts a rectangular notch inward from the plate's
// leftmost edge (most negative X). The antenna circle bounds that edge
// since the antenna sits at the axis origin.
func SideNotchCutter(p config.Params, epsilon float64) *csg.Solid {
	antennaR := plateCircles(p)[0].R
	b := csg.Box(p.SideNotchDepth+epsilon, p.SideNotchWidth, p.SideNotchHeight+2*epsilon)
	return csg.Translate(b,
		-(antennaR + epsilon),
		p.SideNotchOffset-p.SideNotchWidth/2,
		-epsilon,
	)
}

// BottomBoreCutter relieves the underside around the channel knob: a
// cylinder of the knob radius plus padding, cut upward from below the
// plate.
func BottomBoreCutter(p config.Params, epsilon float64) *csg.Solid {
	center := p.Placement().Channel
	c := csg.Cylinder(p.BottomBoreHeight+epsilon, p.ChannelDiameter/2+p.BottomBorePadding)
	return csg.Translate(c, center.X, center.Y, -epsilon)
}
