package config

import (
	"fmt"
	"strings"
)

// Severity indicates whether a finding blocks a build.
type Severity int

const (
	SeverityError   Severity = iota // blocks the build
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result for one parameter.
type Finding struct {
	Param    string
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Param, f.Message)
}

// Validate checks the parameter record at the configuration boundary.
// Geometry construction itself does not re-validate; anything that
// passes here is algebraically safe for the builders (the one internal
// guard being the slope-inset clamp, which is handled downstream and
// surfaces here only as a warning).
func Validate(p Params) []Finding {
	var fs []Finding
	bad := func(param, msg string, args ...any) {
		fs = append(fs, Finding{Param: param, Message: fmt.Sprintf(msg, args...), Severity: SeverityError})
	}
	warn := func(param, msg string, args ...any) {
		fs = append(fs, Finding{Param: param, Message: fmt.Sprintf(msg, args...), Severity: SeverityWarning})
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"antenna-diameter", p.AntennaDiameter},
		{"channel-diameter", p.ChannelDiameter},
		{"volume-diameter", p.VolumeDiameter},
		{"antenna-channel-spacing", p.AntennaChannelSpacing},
		{"channel-volume-spacing", p.ChannelVolumeSpacing},
		{"wall", p.Wall},
		{"plate-thickness", p.PlateThickness},
		{"rear-notch-width", p.RearNotchWidth},
		{"rear-notch-height", p.RearNotchHeight},
		{"rear-notch-depth", p.RearNotchDepth},
		{"side-notch-width", p.SideNotchWidth},
		{"side-notch-height", p.SideNotchHeight},
		{"side-notch-depth", p.SideNotchDepth},
		{"bottom-bore-height", p.BottomBoreHeight},
		{"epsilon", p.Epsilon},
	}
	for _, pv := range positive {
		if pv.v <= 0 {
			bad(pv.name, "%g, must be positive", pv.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"tolerance", p.Tolerance},
		{"padding", p.Padding},
		{"channel-guard-height", p.ChannelGuardHeight},
		{"volume-guard-height", p.VolumeGuardHeight},
		{"channel-slope-inset", p.ChannelSlopeInset},
		{"volume-slope-inset", p.VolumeSlopeInset},
		{"bottom-bore-padding", p.BottomBorePadding},
	}
	for _, pv := range nonNegative {
		if pv.v < 0 {
			bad(pv.name, "%g, must not be negative", pv.v)
		}
	}

	coverages := []struct {
		name string
		v    float64
	}{
		{"channel-coverage", p.ChannelCoverage},
		{"volume-coverage", p.VolumeCoverage},
	}
	for _, cv := range coverages {
		if cv.v <= 0 || cv.v > 360 {
			bad(cv.name, "%g, must be in (0, 360]", cv.v)
		}
	}

	positions := []struct {
		name string
		v    float64
	}{
		{"channel-position", p.ChannelPosition},
		{"volume-position", p.VolumePosition},
	}
	for _, pv := range positions {
		if pv.v < 0 || pv.v >= 360 {
			bad(pv.name, "%g, must be in [0, 360)", pv.v)
		}
	}

	if p.Segments < 8 {
		bad("segments", "%d, need at least 8 for a usable curve", p.Segments)
	}
	if p.MeshCells < 16 {
		bad("mesh-cells", "%d, need at least 16", p.MeshCells)
	}

	if p.Wall > 0 {
		if p.ChannelSlopeInset >= p.Wall {
			warn("channel-slope-inset", "%g >= wall %g, will be clamped", p.ChannelSlopeInset, p.Wall)
		}
		if p.VolumeSlopeInset >= p.Wall {
			warn("volume-slope-inset", "%g >= wall %g, will be clamped", p.VolumeSlopeInset, p.Wall)
		}
	}
	if p.Epsilon > 0.1 {
		warn("epsilon", "%g is large for a robustness margin; this is not the knob-fit tolerance", p.Epsilon)
	}

	return fs
}

// Check runs Validate and returns an error summarizing all blocking
// findings, or nil if none block.
func Check(p Params) error {
	var blocking []string
	for _, f := range Validate(p) {
		if f.Severity == SeverityError {
			blocking = append(blocking, f.String())
		}
	}
	if len(blocking) == 0 {
		return nil
	}
	return fmt.Errorf("config: %s", strings.Join(blocking, "; "))
}
