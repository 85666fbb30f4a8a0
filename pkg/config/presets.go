package config

import (
	"fmt"
	"sort"
)

// DefaultPreset is the preset used when none is selected.
const DefaultPreset = "uv5r"

// presets holds the built-in parameter sets. They differ only in the
// antenna-stub diameter: the stock SMA base versus the wider base of
// common aftermarket whips.
var presets = map[string]Params{
	"uv5r":      uv5r(),
	"uv5r-wide": uv5rWide(),
}

// uv5r is the baseline: a UV-5R style handheld with the stock antenna.
func uv5r() Params {
	return Params{
		AntennaDiameter: 13.5,
		ChannelDiameter: 13.1,
		VolumeDiameter:  15.1,

		AntennaChannelSpacing: 17.7,
		ChannelVolumeSpacing:  16.8,

		Wall:           3.1,
		Tolerance:      0.5,
		Padding:        1.0,
		PlateThickness: 2.4,

		ChannelGuardHeight: 14.0,
		ChannelCoverage:    270,
		ChannelPosition:    180,
		ChannelSlopeInset:  1.8,

		VolumeGuardHeight: 12.0,
		VolumeCoverage:    220,
		VolumePosition:    180,
		VolumeSlopeInset:  1.8,

		RearNotchWidth:  8.0,
		RearNotchHeight: 6.0,
		RearNotchDepth:  3.5,
		RearNotchOffset: 17.7, // centered on the channel knob

		SideNotchWidth:  6.0,
		SideNotchHeight: 5.0,
		SideNotchDepth:  3.0,
		SideNotchOffset: 0,

		BottomBorePadding: 1.2,
		BottomBoreHeight:  1.6,

		Epsilon:   0.01,
		Segments:  64,
		MeshCells: 200,
	}
}

// uv5rWide fits aftermarket antennas with a wider base collar.
func uv5rWide() Params {
	p := uv5r()
	p.AntennaDiameter = 14.9
	return p
}

// Preset returns a copy of the named built-in parameter set.
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("config: unknown preset %q (have %v)", name, PresetNames())
	}
	return p, nil
}

// Default returns the baseline parameter set.
func Default() Params {
	return presets[DefaultPreset]
}

// PresetNames returns the names of all built-in presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
