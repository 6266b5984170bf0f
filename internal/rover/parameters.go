// Package rover derives rocker-bogie suspension dimensions from base design parameters.
//
// Derivation is a single synchronous pass over a fixed component graph:
// linkages first, then pivot housings (which need linkage angles), spacers
// (housing diameter), shafts (spacer thickness) and finally the mounts. Every
// calculator is a pure function of Parameters and its predecessors' results.
package rover

import (
	"strings"

	"github.com/leapstack-labs/rockerbogie/internal/params"
)

// Design policy constants.
const (
	BoltSpacingFactor         = 0.5
	SteeringMountFilletFactor = 0.25
	rearBogieBaseLengthFactor = 2.5
)

// Pivot selects the upper or lower pivot variant.
type Pivot string

// Pivot variants. The value is the parameter name prefix.
const (
	Upper Pivot = "upper_"
	Lower Pivot = "lower_"
)

// String returns "upper" or "lower".
func (p Pivot) String() string {
	return strings.TrimSuffix(string(p), "_")
}

// End selects the front or rear steering mount.
type End string

// Steering mount ends. The value is the parameter name prefix.
const (
	Front End = "front_"
	Rear  End = "rear_"
)

// String returns "front" or "rear".
func (e End) String() string {
	return strings.TrimSuffix(string(e), "_")
}

// PivotParameters are the per-pivot variant parameters.
type PivotParameters struct {
	BearingDiameter               float64
	BearingOuterRaceInnerDiameter float64
	BearingThickness              float64
	NumBolts                      float64
	ShaftDiameter                 float64
	RetRingInnerDiameter          float64
	RetRingThickness              float64
}

// Parameters is the immutable, typed view of a parameter table.
type Parameters struct {
	RoverWidth  float64
	RoverLength float64

	FrameWidth      float64
	FrameHeight     float64
	GroundClearance float64

	CornerWheelAsmHeight float64
	SteeringAsmHeight    float64

	FrontSteeringMountNeckHeight float64
	RearSteeringMountNeckHeight  float64

	WheelDiameter  float64
	WheelThickness float64

	LinkageThickness         float64
	LinkageWidth             float64
	LinkageWallThickness     float64
	LinkageMountBaseLength   float64
	LinkageMountBoltDiameter float64

	PivotHousingBoltDiameter     float64
	PivotHousingMinWallThickness float64

	UpperShaftFrameClearance float64
	UpperShaftOverhang       float64
	LowerShaftOverhang       float64
	SwingarmThickness        float64

	MiddleWheelClearance     float64
	MiddleWheelShaftDiameter float64
	MiddleWheelShaftLength   float64
	MiddleWheelShaftOverhang float64

	UpperPivot PivotParameters
	LowerPivot PivotParameters

	// units of the parameters copied verbatim into the middle wheel mount
	units map[string]string
}

// Pivot returns the variant parameters for p.
func (p Parameters) Pivot(pv Pivot) PivotParameters {
	if pv == Upper {
		return p.UpperPivot
	}
	return p.LowerPivot
}

// NeckHeight returns the steering mount neck height for the given end.
func (p Parameters) NeckHeight(e End) float64 {
	if e == Front {
		return p.FrontSteeringMountNeckHeight
	}
	return p.RearSteeringMountNeckHeight
}

// unit returns the table unit recorded for name, defaulting to millimetres.
func (p Parameters) unit(name string) string {
	if u := p.units[name]; u != "" {
		return u
	}
	return "mm"
}

// binder resolves parameters by name, remembering the first missing one.
type binder struct {
	table *params.Table
	err   error
	units map[string]string
}

func (b *binder) get(name string) float64 {
	if b.err != nil {
		return 0
	}
	q, err := b.table.Get(name)
	if err != nil {
		b.err = err
		return 0
	}
	if q.Unit != "" {
		b.units[name] = q.Unit
	}
	return q.Value
}

func (b *binder) pivot(pv Pivot) PivotParameters {
	prefix := string(pv)
	return PivotParameters{
		BearingDiameter:               b.get(prefix + "bearing_diameter"),
		BearingOuterRaceInnerDiameter: b.get(prefix + "bearing_outer_race_inner_diameter"),
		BearingThickness:              b.get(prefix + "bearing_thickness"),
		NumBolts:                      b.get(prefix + "pivot_housing_num_bolts"),
		ShaftDiameter:                 b.get(prefix + "shaft_diameter"),
		RetRingInnerDiameter:          b.get(prefix + "ret_ring_inner_diameter"),
		RetRingThickness:              b.get(prefix + "ret_ring_thickness"),
	}
}

// FromTable resolves every parameter the derivation references. It fails
// with a *params.MissingParameterError on the first absent name.
func FromTable(t *params.Table) (Parameters, error) {
	b := &binder{table: t, units: make(map[string]string)}

	p := Parameters{
		RoverWidth:  b.get("rover_width"),
		RoverLength: b.get("rover_length"),

		FrameWidth:      b.get("frame_width"),
		FrameHeight:     b.get("frame_height"),
		GroundClearance: b.get("ground_clearance"),

		CornerWheelAsmHeight: b.get("corner_wheel_asm_height"),
		SteeringAsmHeight:    b.get("steering_asm_height"),

		FrontSteeringMountNeckHeight: b.get(string(Front) + "steering_mount_neck_height"),
		RearSteeringMountNeckHeight:  b.get(string(Rear) + "steering_mount_neck_height"),

		WheelDiameter:  b.get("wheel_diameter"),
		WheelThickness: b.get("wheel_thickness"),

		LinkageThickness:         b.get("linkage_thickness"),
		LinkageWidth:             b.get("linkage_width"),
		LinkageWallThickness:     b.get("linkage_wall_thickness"),
		LinkageMountBaseLength:   b.get("linkage_mount_base_length"),
		LinkageMountBoltDiameter: b.get("linkage_mount_bolt_diameter"),

		PivotHousingBoltDiameter:     b.get("pivot_housing_bolt_diameter"),
		PivotHousingMinWallThickness: b.get("pivot_housing_min_wall_thickness"),

		UpperShaftFrameClearance: b.get("upper_shaft_frame_clearance"),
		UpperShaftOverhang:       b.get("upper_shaft_overhang"),
		LowerShaftOverhang:       b.get("lower_shaft_overhang"),
		SwingarmThickness:        b.get("swingarm_thickness"),

		MiddleWheelClearance:     b.get("middle_wheel_clearance"),
		MiddleWheelShaftDiameter: b.get("middle_wheel_shaft_diameter"),
		MiddleWheelShaftLength:   b.get("middle_wheel_shaft_length"),
		MiddleWheelShaftOverhang: b.get("middle_wheel_shaft_overhang"),

		UpperPivot: b.pivot(Upper),
		LowerPivot: b.pivot(Lower),
	}
	if b.err != nil {
		return Parameters{}, b.err
	}
	p.units = b.units
	return p, nil
}

// ParameterNames lists every parameter FromTable resolves, in lookup order.
func ParameterNames() []string {
	names := []string{
		"rover_width", "rover_length",
		"frame_width", "frame_height", "ground_clearance",
		"corner_wheel_asm_height", "steering_asm_height",
		"front_steering_mount_neck_height", "rear_steering_mount_neck_height",
		"wheel_diameter", "wheel_thickness",
		"linkage_thickness", "linkage_width", "linkage_wall_thickness",
		"linkage_mount_base_length", "linkage_mount_bolt_diameter",
		"pivot_housing_bolt_diameter", "pivot_housing_min_wall_thickness",
		"upper_shaft_frame_clearance", "upper_shaft_overhang", "lower_shaft_overhang",
		"swingarm_thickness",
		"middle_wheel_clearance", "middle_wheel_shaft_diameter",
		"middle_wheel_shaft_length", "middle_wheel_shaft_overhang",
	}
	for _, pv := range []Pivot{Upper, Lower} {
		for _, suffix := range []string{
			"bearing_diameter", "bearing_outer_race_inner_diameter", "bearing_thickness",
			"pivot_housing_num_bolts", "shaft_diameter", "ret_ring_inner_diameter", "ret_ring_thickness",
		} {
			names = append(names, string(pv)+suffix)
		}
	}
	return names
}
