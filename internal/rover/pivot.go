package rover

// LinkageMount is the bolted socket on a pivot housing that a linkage end
// slides into.
type LinkageMount struct {
	BaseWidth     float64
	BaseLength    float64
	ShoulderDepth float64
	BoltDiameter  float64
	BoltSpacing   float64
	TongueLength  float64
}

// PivotHousing holds the dimensions of a bearing housing at a rocker or bogie pivot.
type PivotHousing struct {
	Pivot                         Pivot
	HousingDiameter               float64
	HousingThickness              float64
	BearingDiameter               float64
	BearingOuterRaceInnerDiameter float64
	BearingThickness              float64
	MinWallThickness              float64
	BoltDiameter                  float64
	// LinkageSeparationAngle is the angular gap between the two linkages
	// meeting at the pivot, in degrees.
	LinkageSeparationAngle float64
	BoltPlacementRadius    float64
	NumBolts               float64
	Mount                  LinkageMount
}

// Component returns the housing's component name.
func (h PivotHousing) Component() Component {
	if h.Pivot == Upper {
		return UpperPivotHousing
	}
	return LowerPivotHousing
}

// BuildPivotHousing derives the housing for pv from the angles of its two
// incident linkages.
func BuildPivotHousing(p Parameters, pv Pivot, angle1, angle2 float64) PivotHousing {
	variant := p.Pivot(pv)
	return PivotHousing{
		Pivot:                         pv,
		HousingDiameter:               HousingDiameter(p, pv),
		HousingThickness:              p.LinkageThickness,
		BearingDiameter:               variant.BearingDiameter,
		BearingOuterRaceInnerDiameter: variant.BearingOuterRaceInnerDiameter,
		BearingThickness:              variant.BearingThickness,
		MinWallThickness:              p.PivotHousingMinWallThickness,
		BoltDiameter:                  p.PivotHousingBoltDiameter,
		LinkageSeparationAngle:        180 - (angle1 + angle2),
		BoltPlacementRadius:           variant.BearingDiameter/2 + p.PivotHousingMinWallThickness + p.PivotHousingBoltDiameter/2,
		NumBolts:                      variant.NumBolts,
		Mount:                         newLinkageMount(p),
	}
}

// newLinkageMount derives the linkage socket. The tongue length formula
// assumes a two-bolt mount and is applied regardless of NumBolts.
func newLinkageMount(p Parameters) LinkageMount {
	spacing := BoltSpacingFactor * p.LinkageMountBoltDiameter
	return LinkageMount{
		BaseWidth:     p.LinkageWidth,
		BaseLength:    p.LinkageMountBaseLength,
		ShoulderDepth: p.LinkageWallThickness,
		BoltDiameter:  p.LinkageMountBoltDiameter,
		BoltSpacing:   spacing,
		TongueLength:  3*spacing + 2*p.LinkageMountBoltDiameter,
	}
}
