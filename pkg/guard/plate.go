package guard

import (
	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
	"github.com/otakup0pe/fabz/pkg/geom"
)

// plateCircles returns the three generating circles of the plate
// footprint: one per feature, sized to host its guard wall plus
// padding.
func plateCircles(p config.Params) []geom.Circle {
	pl := p.Placement()
	return []geom.Circle{
		{Center: pl.Antenna, R: p.AntennaDiameter/2 + p.Wall + p.Padding},
		{Center: pl.Channel, R: p.ChannelDiameter/2 + p.Wall + p.Padding},
		{Center: pl.Volume, R: p.VolumeDiameter/2 + p.Wall + p.Padding},
	}
}

// PlateFootprint builds the base plate's 2D outline: the convex hull
// of the three feature circles. With the standard colinear layout the
// hull is a stadium-like shape, end caps joined by tangent lines.
func PlateFootprint(p config.Params) geom.Polygon {
	return geom.CircleHull(plateCircles(p), p.StepDeg())
}

// Plate extrudes the footprint into the base plate, z in
// [0, plate thickness].
func Plate(p config.Params) *csg.Solid {
	return csg.Extrude(PlateFootprint(p), p.PlateThickness).Named("plate")
}
