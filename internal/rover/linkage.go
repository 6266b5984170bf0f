package rover

import "math"

// Linkage holds the dimensions of one rocker or bogie link.
type Linkage struct {
	Component     Component
	Thickness     float64
	Width         float64
	WallThickness float64
	Length        float64
	// Angle is measured from horizontal, in degrees.
	Angle        float64
	BoltDiameter float64
	BoltSpacing  float64
}

// AngleAndLength treats the link as the hypotenuse of a right triangle with
// legs height and width. It returns the link angle in degrees and the
// extended (centre-to-centre) length.
func AngleAndLength(height, width float64) (angle, extended float64) {
	return degrees(math.Atan2(height, width)), math.Hypot(height, width)
}

// HousingDiameter returns the pivot housing outer diameter: the bearing plus a
// bolt and two minimum walls on each side.
func HousingDiameter(p Parameters, pv Pivot) float64 {
	return p.Pivot(pv).BearingDiameter + 2*(p.PivotHousingBoltDiameter+2*p.PivotHousingMinWallThickness)
}

func housingRadius(p Parameters, pv Pivot) float64 {
	return HousingDiameter(p, pv) / 2
}

func newLinkage(p Parameters, c Component, length, angle float64) Linkage {
	return Linkage{
		Component:     c,
		Thickness:     p.LinkageThickness,
		Width:         p.LinkageWidth,
		WallThickness: p.LinkageWallThickness,
		Length:        length,
		Angle:         angle,
		BoltDiameter:  p.LinkageMountBoltDiameter,
		BoltSpacing:   BoltSpacingFactor * p.LinkageMountBoltDiameter,
	}
}

// pivotHeight is the height of the upper pivot above the ground.
func pivotHeight(p Parameters) float64 {
	return p.GroundClearance + 0.5*p.FrameHeight
}

// cornerHeight is the height of a steering mount base above the ground.
func cornerHeight(p Parameters, e End) float64 {
	return p.CornerWheelAsmHeight + p.SteeringAsmHeight + p.NeckHeight(e)
}

// FrontRocker derives the front rocker link, running from the upper pivot
// down to the front steering mount. It also returns the offset d the link's
// mitred end adds to the front steering mount arm.
func FrontRocker(p Parameters) (Linkage, float64) {
	height := pivotHeight(p) - cornerHeight(p, Front)
	width := 0.5 * (p.RoverLength - p.WheelDiameter)
	angle, extended := AngleAndLength(height, width)

	alpha := radians((angle + 90) / 2)
	offset := p.LinkageWidth / (2 * math.Tan(alpha))
	length := extended - (housingRadius(p, Upper) + 2*p.LinkageMountBaseLength + offset)

	return newLinkage(p, FrontRockerLinkage, length, angle), offset
}

// RearRocker derives the rear rocker link between the upper and lower pivots.
func RearRocker(p Parameters) Linkage {
	height := pivotHeight(p) - (cornerHeight(p, Rear) + p.LinkageWidth/2)
	width := p.RoverLength / 4
	angle, extended := AngleAndLength(height, width)

	length := extended - (housingRadius(p, Upper) + housingRadius(p, Lower) + 2*p.LinkageMountBaseLength)
	return newLinkage(p, RearRockerLinkage, length, angle)
}

// MiddleBogie derives the bogie link from the lower pivot down to the middle
// wheel shaft.
func MiddleBogie(p Parameters) Linkage {
	height := cornerHeight(p, Rear) + p.LinkageWidth/2 - p.WheelDiameter/2
	width := p.RoverLength / 4
	angle, extended := AngleAndLength(height, width)

	length := extended - (housingRadius(p, Lower) + p.MiddleWheelShaftDiameter/2 + 2*p.LinkageMountBaseLength)
	return newLinkage(p, MiddleBogieLinkage, length, angle)
}

// RearBogie derives the horizontal bogie link from the lower pivot to the
// rear steering mount. Its angle is 0 by construction.
func RearBogie(p Parameters) Linkage {
	width := p.RoverLength / 4
	length := width - (housingRadius(p, Lower) + p.WheelDiameter/2 + p.LinkageWidth/2 + rearBogieBaseLengthFactor*p.LinkageMountBaseLength)
	return newLinkage(p, RearBogieLinkage, length, 0)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
