package rover

// SteeringMount holds the dimensions of a corner steering mount.
type SteeringMount struct {
	End          End
	NeckHeight   float64
	ArmLength    float64
	Angle        float64
	Width        float64
	Thickness    float64
	FilletRadius float64

	// copied from the owning pivot housing's linkage mount
	TongueLength      float64
	ShoulderDepth     float64
	MountBoltDiameter float64
	MountBoltSpacing  float64
}

// Component returns the mount's component name.
func (m SteeringMount) Component() Component {
	if m.End == Front {
		return FrontSteeringMount
	}
	return RearSteeringMount
}

// BuildSteeringMount derives the steering mount at end e. offset is the front
// rocker offset for the front mount and 0 for the rear; angle is the angle of
// the linkage the arm meets.
func BuildSteeringMount(p Parameters, e End, offset, angle float64, housing PivotHousing) SteeringMount {
	neck := p.NeckHeight(e)
	return SteeringMount{
		End:               e,
		NeckHeight:        neck,
		ArmLength:         p.LinkageMountBaseLength + housing.Mount.TongueLength + offset,
		Angle:             angle,
		Width:             p.LinkageWidth,
		Thickness:         p.LinkageThickness,
		FilletRadius:      SteeringMountFilletFactor * neck,
		TongueLength:      housing.Mount.TongueLength,
		ShoulderDepth:     housing.Mount.ShoulderDepth,
		MountBoltDiameter: housing.Mount.BoltDiameter,
		MountBoltSpacing:  housing.Mount.BoltSpacing,
	}
}

// WheelMount holds the middle wheel mount dimensions. Nothing is computed:
// the shaft and wheel geometry come from the parameters and the socket
// geometry from the lower pivot housing.
type WheelMount struct {
	ShaftDiameter    float64
	ShaftLength      float64
	ShaftOverhang    float64
	WheelDiameter    float64
	WheelThickness   float64
	LinkageThickness float64
	LinkageWidth     float64
	Mount            LinkageMount

	units map[string]string
}

// BuildMiddleWheelMount assembles the middle wheel mount from p and the lower housing.
func BuildMiddleWheelMount(p Parameters, housing PivotHousing) WheelMount {
	names := []string{
		"middle_wheel_shaft_diameter", "middle_wheel_shaft_length", "middle_wheel_shaft_overhang",
		"wheel_diameter", "wheel_thickness", "linkage_thickness", "linkage_width",
	}
	units := make(map[string]string, len(names))
	for _, n := range names {
		units[n] = p.unit(n)
	}
	return WheelMount{
		ShaftDiameter:    p.MiddleWheelShaftDiameter,
		ShaftLength:      p.MiddleWheelShaftLength,
		ShaftOverhang:    p.MiddleWheelShaftOverhang,
		WheelDiameter:    p.WheelDiameter,
		WheelThickness:   p.WheelThickness,
		LinkageThickness: p.LinkageThickness,
		LinkageWidth:     p.LinkageWidth,
		Mount:            housing.Mount,
		units:            units,
	}
}

func (m WheelMount) unit(name string) string {
	if u := m.units[name]; u != "" {
		return u
	}
	return "mm"
}
