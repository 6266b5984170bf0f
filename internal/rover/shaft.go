package rover

// Shaft holds the dimensions of a pivot shaft and its retaining ring grooves.
type Shaft struct {
	Pivot                Pivot
	ShaftDiameter        float64
	RetRingInnerDiameter float64
	RetRingThickness     float64
	// RingPositions are axial groove positions from the shaft's reference end.
	RingPositions []float64
	// RefLength is the frame-side half length; only the upper shaft has one.
	RefLength float64
	Length    float64
}

// Component returns the shaft's component name.
func (s Shaft) Component() Component {
	if s.Pivot == Upper {
		return UpperShaft
	}
	return LowerShaft
}

func newShaft(p Parameters, pv Pivot) Shaft {
	v := p.Pivot(pv)
	return Shaft{
		Pivot:                pv,
		ShaftDiameter:        v.ShaftDiameter,
		RetRingInnerDiameter: v.RetRingInnerDiameter,
		RetRingThickness:     v.RetRingThickness,
	}
}

// BuildUpperShaft derives the upper shaft, which passes through the frame and
// is mirrored about it. The second return value is the minimum length of a
// fastener spanning from the frame clearance to the outer retaining ring.
func BuildUpperShaft(p Parameters, upperSpacerThickness float64) (Shaft, float64) {
	ring1 := p.UpperShaftFrameClearance + p.SwingarmThickness
	ring2 := ring1 + 2*p.LinkageThickness + upperSpacerThickness
	ref := ring2 + p.UpperShaftOverhang

	s := newShaft(p, Upper)
	s.RingPositions = []float64{ring1, ring2}
	s.RefLength = ref
	s.Length = 2*ref + p.FrameWidth

	return s, ring2 - p.UpperShaftFrameClearance
}

// BuildLowerShaft derives the lower shaft. The second return value is the
// minimum length of a fastener spanning the two outer retaining rings.
func BuildLowerShaft(p Parameters, upperSpacerThickness, lowerSpacerThickness float64) (Shaft, float64) {
	ring1 := p.LowerShaftOverhang
	ring2 := ring1 + p.LinkageThickness
	ring3 := ring2 + upperSpacerThickness
	ring4 := ring3 + 2*p.LinkageThickness + lowerSpacerThickness

	s := newShaft(p, Lower)
	s.RingPositions = []float64{ring1, ring2, ring3, ring4}
	s.Length = ring4 + p.LowerShaftOverhang

	return s, ring4 - ring3
}
