package guard

import (
	"math"

	"github.com/otakup0pe/fabz/pkg/config"
	"github.com/otakup0pe/fabz/pkg/csg"
)

// Assemble builds the complete guard solid from a parameter record:
// the extruded plate and the two positioned guard walls, minus the
// union of all cutters. The feature bores are cut here, once and
// globally, because plate and guard share a single continuous bore per
// knob.
func Assemble(p config.Params) *csg.Solid {
	step := p.StepDeg()
	eps := p.Epsilon
	pl := p.Placement()

	channel := PlaceShell(Shell(p.ChannelGuard(), step, eps), p.ChannelGuard(), pl.Channel, p.PlateThickness)
	volume := PlaceShell(Shell(p.VolumeGuard(), step, eps), p.VolumeGuard(), pl.Volume, p.PlateThickness)

	positive := csg.Union(
		Plate(p),
		channel.Named("channel-guard"),
		volume.Named("volume-guard"),
	)

	// Bores span from below the plate to above the tallest guard.
	totalHeight := p.PlateThickness + math.Max(p.ChannelGuardHeight, p.VolumeGuardHeight)

	negative := csg.Union(
		HoleCutter(pl.Antenna, p.AntennaDiameter, p.Tolerance, totalHeight, eps).Named("antenna-bore"),
		HoleCutter(pl.Channel, p.ChannelDiameter, p.Tolerance, totalHeight, eps).Named("channel-bore"),
		HoleCutter(pl.Volume, p.VolumeDiameter, p.Tolerance, totalHeight, eps).Named("volume-bore"),
		RearNotchCutter(p, eps).Named("rear-notch"),
		SideNotchCutter(p, eps).Named("side-notch"),
		BottomBoreCutter(p, eps).Named("bottom-bore"),
	)

	return csg.Difference(positive, negative).Named("guard")
}
