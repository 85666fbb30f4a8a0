// Package config declares the dimensional parameters a guard is built
// from. A Params value is immutable by convention: builders receive it
// by value and never write back. All lengths are millimeters, all
// angles degrees.
package config

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params is the flat configuration record for one guard build.
type Params struct {
	// Feature diameters.
	AntennaDiameter float64
	ChannelDiameter float64
	VolumeDiameter  float64

	// Center-to-center spacing along the knob line (the X axis).
	// The antenna stub sits at the origin.
	AntennaChannelSpacing float64
	ChannelVolumeSpacing  float64

	// Shared wall parameters.
	Wall           float64 // guard wall thickness
	Tolerance      float64 // knob-fit clearance added to bores
	Padding        float64 // extra plate material around each feature
	PlateThickness float64

	// Channel knob guard.
	ChannelGuardHeight float64
	ChannelCoverage    float64 // angular extent of wall material
	ChannelPosition    float64 // angle the coverage arc is centered on
	ChannelSlopeInset  float64 // radial top inset of the outer face

	// Volume knob guard.
	VolumeGuardHeight float64
	VolumeCoverage    float64
	VolumePosition    float64
	VolumeSlopeInset  float64

	// Rear notch (cut inward from the plate's rearmost edge).
	RearNotchWidth  float64
	RearNotchHeight float64
	RearNotchDepth  float64
	RearNotchOffset float64 // along the knob line

	// Side notch (cut inward from the plate's leftmost edge).
	SideNotchWidth  float64
	SideNotchHeight float64
	SideNotchDepth  float64
	SideNotchOffset float64 // across the knob line

	// Bottom bore (relief under the channel knob).
	BottomBorePadding float64 // added to the channel knob radius
	BottomBoreHeight  float64 // cut upward from below the plate

	// Numerics. Epsilon is a robustness margin for slab thickness and
	// cutter overshoot; it is not a physical tolerance.
	Epsilon   float64
	Segments  int // subdivisions of a full circle when sampling curves
	MeshCells int // marching cubes resolution for mesh output
}

// StepDeg returns the angular sampling step implied by Segments.
func (p Params) StepDeg() float64 {
	if p.Segments <= 0 {
		return 360
	}
	return 360 / float64(p.Segments)
}

// Placement holds the derived feature centers. The three centers are
// colinear on the X axis and ordered antenna, channel, volume.
type Placement struct {
	Antenna r2.Vec
	Channel r2.Vec
	Volume  r2.Vec
}

// Placement derives the feature centers from the two spacings.
func (p Params) Placement() Placement {
	return Placement{
		Antenna: r2.Vec{},
		Channel: r2.Vec{X: p.AntennaChannelSpacing},
		Volume:  r2.Vec{X: p.AntennaChannelSpacing + p.ChannelVolumeSpacing},
	}
}

// GuardSpec bundles the parameters of one knob guard wall.
type GuardSpec struct {
	Diameter   float64
	Wall       float64
	Tolerance  float64
	Coverage   float64
	Position   float64
	Height     float64
	SlopeInset float64
}

// ChannelGuard returns the channel knob's guard parameters.
func (p Params) ChannelGuard() GuardSpec {
	return GuardSpec{
		Diameter:   p.ChannelDiameter,
		Wall:       p.Wall,
		Tolerance:  p.Tolerance,
		Coverage:   p.ChannelCoverage,
		Position:   p.ChannelPosition,
		Height:     p.ChannelGuardHeight,
		SlopeInset: p.ChannelSlopeInset,
	}
}

// VolumeGuard returns the volume knob's guard parameters.
func (p Params) VolumeGuard() GuardSpec {
	return GuardSpec{
		Diameter:   p.VolumeDiameter,
		Wall:       p.Wall,
		Tolerance:  p.Tolerance,
		Coverage:   p.VolumeCoverage,
		Position:   p.VolumePosition,
		Height:     p.VolumeGuardHeight,
		SlopeInset: p.VolumeSlopeInset,
	}
}

// setters maps external parameter names (kebab-case, as used by preset
// scripts, .env files and -set flags) to field assignments.
var setters = map[string]func(*Params, float64){
	"antenna-diameter":        func(p *Params, v float64) { p.AntennaDiameter = v },
	"channel-diameter":        func(p *Params, v float64) { p.ChannelDiameter = v },
	"volume-diameter":         func(p *Params, v float64) { p.VolumeDiameter = v },
	"antenna-channel-spacing": func(p *Params, v float64) { p.AntennaChannelSpacing = v },
	"channel-volume-spacing":  func(p *Params, v float64) { p.ChannelVolumeSpacing = v },
	"wall":                    func(p *Params, v float64) { p.Wall = v },
	"tolerance":               func(p *Params, v float64) { p.Tolerance = v },
	"padding":                 func(p *Params, v float64) { p.Padding = v },
	"plate-thickness":         func(p *Params, v float64) { p.PlateThickness = v },
	"channel-guard-height":    func(p *Params, v float64) { p.ChannelGuardHeight = v },
	"channel-coverage":        func(p *Params, v float64) { p.ChannelCoverage = v },
	"channel-position":        func(p *Params, v float64) { p.ChannelPosition = v },
	"channel-slope-inset":     func(p *Params, v float64) { p.ChannelSlopeInset = v },
	"volume-guard-height":     func(p *Params, v float64) { p.VolumeGuardHeight = v },
	"volume-coverage":         func(p *Params, v float64) { p.VolumeCoverage = v },
	"volume-position":         func(p *Params, v float64) { p.VolumePosition = v },
	"volume-slope-inset":      func(p *Params, v float64) { p.VolumeSlopeInset = v },
	"rear-notch-width":        func(p *Params, v float64) { p.RearNotchWidth = v },
	"rear-notch-height":       func(p *Params, v float64) { p.RearNotchHeight = v },
	"rear-notch-depth":        func(p *Params, v float64) { p.RearNotchDepth = v },
	"rear-notch-offset":       func(p *Params, v float64) { p.RearNotchOffset = v },
	"side-notch-width":        func(p *Params, v float64) { p.SideNotchWidth = v },
	"side-notch-height":       func(p *Params, v float64) { p.SideNotchHeight = v },
	"side-notch-depth":        func(p *Params, v float64) { p.SideNotchDepth = v },
	"side-notch-offset":       func(p *Params, v float64) { p.SideNotchOffset = v },
	"bottom-bore-padding":     func(p *Params, v float64) { p.BottomBorePadding = v },
	"bottom-bore-height":      func(p *Params, v float64) { p.BottomBoreHeight = v },
	"epsilon":                 func(p *Params, v float64) { p.Epsilon = v },
	"segments":                func(p *Params, v float64) { p.Segments = int(v) },
	"mesh-cells":              func(p *Params, v float64) { p.MeshCells = int(v) },
}

// Set assigns the named parameter. Names are kebab-case, e.g.
// "antenna-diameter". Integer parameters (segments, mesh-cells)
// truncate the value.
func (p *Params) Set(name string, value float64) error {
	set, ok := setters[name]
	if !ok {
		return fmt.Errorf("config: unknown parameter %q", name)
	}
	set(p, value)
	return nil
}

var getters = map[string]func(Params) float64{
	"antenna-diameter":        func(p Params) float64 { return p.AntennaDiameter },
	"channel-diameter":        func(p Params) float64 { return p.ChannelDiameter },
	"volume-diameter":         func(p Params) float64 { return p.VolumeDiameter },
	"antenna-channel-spacing": func(p Params) float64 { return p.AntennaChannelSpacing },
	"channel-volume-spacing":  func(p Params) float64 { return p.ChannelVolumeSpacing },
	"wall":                    func(p Params) float64 { return p.Wall },
	"tolerance":               func(p Params) float64 { return p.Tolerance },
	"padding":                 func(p Params) float64 { return p.Padding },
	"plate-thickness":         func(p Params) float64 { return p.PlateThickness },
	"channel-guard-height":    func(p Params) float64 { return p.ChannelGuardHeight },
	"channel-coverage":        func(p Params) float64 { return p.ChannelCoverage },
	"channel-position":        func(p Params) float64 { return p.ChannelPosition },
	"channel-slope-inset":     func(p Params) float64 { return p.ChannelSlopeInset },
	"volume-guard-height":     func(p Params) float64 { return p.VolumeGuardHeight },
	"volume-coverage":         func(p Params) float64 { return p.VolumeCoverage },
	"volume-position":         func(p Params) float64 { return p.VolumePosition },
	"volume-slope-inset":      func(p Params) float64 { return p.VolumeSlopeInset },
	"rear-notch-width":        func(p Params) float64 { return p.RearNotchWidth },
	"rear-notch-height":       func(p Params) float64 { return p.RearNotchHeight },
	"rear-notch-depth":        func(p Params) float64 { return p.RearNotchDepth },
	"rear-notch-offset":       func(p Params) float64 { return p.RearNotchOffset },
	"side-notch-width":        func(p Params) float64 { return p.SideNotchWidth },
	"side-notch-height":       func(p Params) float64 { return p.SideNotchHeight },
	"side-notch-depth":        func(p Params) float64 { return p.SideNotchDepth },
	"side-notch-offset":       func(p Params) float64 { return p.SideNotchOffset },
	"bottom-bore-padding":     func(p Params) float64 { return p.BottomBorePadding },
	"bottom-bore-height":      func(p Params) float64 { return p.BottomBoreHeight },
	"epsilon":                 func(p Params) float64 { return p.Epsilon },
	"segments":                func(p Params) float64 { return float64(p.Segments) },
	"mesh-cells":              func(p Params) float64 { return float64(p.MeshCells) },
}

// Get reads the named parameter. Names match Set's.
func (p Params) Get(name string) (float64, error) {
	get, ok := getters[name]
	if !ok {
		return 0, fmt.Errorf("config: unknown parameter %q", name)
	}
	return get(p), nil
}

// ParamNames returns all settable parameter names, sorted.
func ParamNames() []string {
	names := make([]string, 0, len(setters))
	for n := range setters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
