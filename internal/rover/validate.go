package rover

// WidthCheck is the outcome of the rover width clearance check.
type WidthCheck struct {
	Passed bool `json:"passed"`
	// RequiredClearance is the frame-to-wheel width the stack-up needs.
	RequiredClearance float64 `json:"required_clearance"`
	// Target is the frame-to-wheel width the rover width allows.
	Target float64 `json:"target"`
}

// ValidateRoverWidth checks that the axial stack between the frame and the
// outer wheel face fits inside half the width left over by the frame.
// The result is informational; a failed check never blocks derivation.
func ValidateRoverWidth(p Parameters) WidthCheck {
	target := (p.RoverWidth - p.FrameWidth) / 2
	required := sum(
		p.UpperShaftFrameClearance,
		p.SwingarmThickness,
		2*p.LinkageThickness,
		2*p.MiddleWheelClearance,
		p.UpperShaftOverhang,
		p.MiddleWheelShaftLength,
		p.WheelThickness,
	)
	return WidthCheck{
		Passed:            required <= target,
		RequiredClearance: required,
		Target:            target,
	}
}

func sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
