package rover

import (
	"fmt"

	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// Component names a derived part. The name is also its artifact name.
type Component string

// Derived components.
const (
	FrontRockerLinkage Component = "front_rocker_linkage"
	RearRockerLinkage  Component = "rear_rocker_linkage"
	MiddleBogieLinkage Component = "middle_bogie_linkage"
	RearBogieLinkage   Component = "rear_bogie_linkage"
	UpperPivotHousing  Component = "upper_pivot_housing"
	LowerPivotHousing  Component = "lower_pivot_housing"
	UpperSpacer        Component = "upper_spacer"
	LowerSpacer        Component = "lower_spacer"
	UpperShaft         Component = "upper_shaft"
	LowerShaft         Component = "lower_shaft"
	FrontSteeringMount Component = "front_steering_mount"
	RearSteeringMount  Component = "rear_steering_mount"
	MiddleWheelMount   Component = "middle_wheel_mount"
)

// Record projects the linkage onto its artifact fields.
func (l Linkage) Record() *record.Record {
	return record.New(string(l.Component)).
		MM("linkage_thickness", l.Thickness).
		MM("width", l.Width).
		MM("wall_thickness", l.WallThickness).
		MM("length", l.Length).
		Scalar("angle", l.Angle).
		MM("bolt_diameter", l.BoltDiameter).
		MM("bolt_spacing", l.BoltSpacing)
}

// Record projects the housing onto its artifact fields.
func (h PivotHousing) Record() *record.Record {
	return record.New(string(h.Component())).
		MM("housing_diameter", h.HousingDiameter).
		MM("housing_thickness", h.HousingThickness).
		MM("bearing_diameter", h.BearingDiameter).
		MM("bearing_outer_race_inner_diameter", h.BearingOuterRaceInnerDiameter).
		MM("bearing_thickness", h.BearingThickness).
		MM("housing_min_wall_thickness", h.MinWallThickness).
		MM("housing_bolt_diameter", h.BoltDiameter).
		Scalar("linkage_separation_angle", h.LinkageSeparationAngle).
		MM("bolt_placement_radius", h.BoltPlacementRadius).
		Scalar("num_bolts", h.NumBolts).
		MM("linkage_mount_base_width", h.Mount.BaseWidth).
		MM("linkage_mount_base_length", h.Mount.BaseLength).
		MM("linkage_mount_shoulder_depth", h.Mount.ShoulderDepth).
		MM("linkage_mount_bolt_diameter", h.Mount.BoltDiameter).
		MM("linkage_mount_bolt_spacing", h.Mount.BoltSpacing).
		MM("linkage_mount_tongue_length", h.Mount.TongueLength)
}

// Record projects the spacer onto its artifact fields.
func (s Spacer) Record() *record.Record {
	return record.New(string(s.Component())).
		MM("outer_diameter", s.OuterDiameter).
		MM("inner_diameter", s.InnerDiameter).
		MM("spacer_thickness", s.Thickness).
		MM("bolt_diameter", s.BoltDiameter).
		MM("bolt_placement_radius", s.BoltPlacementRadius).
		Scalar("num_bolts", s.NumBolts)
}

// Record projects the shaft onto its artifact fields.
func (s Shaft) Record() *record.Record {
	rec := record.New(string(s.Component())).
		MM("shaft_diameter", s.ShaftDiameter).
		MM("ret_ring_inner_diameter", s.RetRingInnerDiameter).
		MM("ret_ring_thickness", s.RetRingThickness)
	for i, pos := range s.RingPositions {
		rec.MM(fmt.Sprintf("ret_ring_%d_pos", i+1), pos)
	}
	if s.Pivot == Upper {
		rec.MM("ref_length", s.RefLength)
	}
	return rec.MM("length", s.Length)
}

// Record projects the steering mount onto its artifact fields.
func (m SteeringMount) Record() *record.Record {
	return record.New(string(m.Component())).
		MM("neck_height", m.NeckHeight).
		MM("arm_length", m.ArmLength).
		Scalar("angle", m.Angle).
		MM("width", m.Width).
		MM("mount_thickness", m.Thickness).
		MM("fillet_radius", m.FilletRadius).
		MM("linkage_mount_tongue_length", m.TongueLength).
		MM("linkage_mount_shoulder_depth", m.ShoulderDepth).
		MM("linkage_mount_bolt_diameter", m.MountBoltDiameter).
		MM("linkage_mount_bolt_spacing", m.MountBoltSpacing)
}

// Record projects the wheel mount onto its artifact fields. Parameter-sourced
// fields keep the unit they had in the parameter table.
func (m WheelMount) Record() *record.Record {
	rec := record.New(string(MiddleWheelMount))
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"middle_wheel_shaft_diameter", m.ShaftDiameter},
		{"middle_wheel_shaft_length", m.ShaftLength},
		{"middle_wheel_shaft_overhang", m.ShaftOverhang},
		{"wheel_diameter", m.WheelDiameter},
		{"wheel_thickness", m.WheelThickness},
		{"linkage_thickness", m.LinkageThickness},
		{"linkage_width", m.LinkageWidth},
	} {
		rec.Add(f.name, f.value, m.unit(f.name))
	}
	return rec.
		MM("linkage_mount_base_length", m.Mount.BaseLength).
		MM("linkage_mount_tongue_length", m.Mount.TongueLength).
		MM("linkage_mount_shoulder_depth", m.Mount.ShoulderDepth).
		MM("linkage_mount_bolt_diameter", m.Mount.BoltDiameter).
		MM("linkage_mount_bolt_spacing", m.Mount.BoltSpacing)
}
