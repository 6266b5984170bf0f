package rover

// Spacer is the axial ring between a pivot housing and the next part on its shaft.
type Spacer struct {
	Pivot               Pivot
	OuterDiameter       float64
	InnerDiameter       float64
	Thickness           float64
	BoltDiameter        float64
	BoltPlacementRadius float64
	NumBolts            float64
}

// Component returns the spacer's component name.
func (s Spacer) Component() Component {
	if s.Pivot == Upper {
		return UpperSpacer
	}
	return LowerSpacer
}

// BuildSpacer derives the spacer bolted to housing. The upper spacer only
// fills the middle wheel clearance; any other spacer also bridges the upper
// shaft overhang and the middle wheel shaft overhang.
func BuildSpacer(p Parameters, pv Pivot, housing PivotHousing) Spacer {
	thickness := p.MiddleWheelClearance
	if pv != Upper {
		thickness = p.UpperShaftOverhang + p.MiddleWheelClearance + p.MiddleWheelShaftOverhang
	}
	return Spacer{
		Pivot:               pv,
		OuterDiameter:       housing.HousingDiameter,
		InnerDiameter:       housing.BearingDiameter,
		Thickness:           thickness,
		BoltDiameter:        housing.BoltDiameter,
		BoltPlacementRadius: housing.BoltPlacementRadius,
		NumBolts:            p.Pivot(pv).NumBolts,
	}
}
