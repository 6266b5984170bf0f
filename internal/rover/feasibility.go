package rover

import (
	"fmt"
	"math"

	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// Warning flags a derived value that describes geometry that cannot be built.
// Warnings are recoverable: the rest of the derivation is still well defined.
type Warning struct {
	Component Component `json:"component"`
	Field     string    `json:"field"`
	Value     float64   `json:"value"`
	Reason    string    `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s.%s = %s: %s", w.Component, w.Field, record.FormatValue(w.Value), w.Reason)
}

// signed fields may legitimately be negative.
var signedFields = map[string]bool{
	"angle":                    true,
	"linkage_separation_angle": true,
}

// CheckFeasibility inspects a component record. Every non-angle field must be
// finite and non-negative; a linkage angle must lie in (-90, 90].
func CheckFeasibility(c Component, rec *record.Record) []Warning {
	var warnings []Warning
	for _, f := range rec.Fields {
		switch {
		case math.IsNaN(f.Value) || math.IsInf(f.Value, 0):
			warnings = append(warnings, Warning{Component: c, Field: f.Name, Value: f.Value, Reason: "not a finite number"})
		case f.Value < 0 && !signedFields[f.Name]:
			warnings = append(warnings, Warning{Component: c, Field: f.Name, Value: f.Value, Reason: "negative dimension"})
		case f.Name == "angle" && isLinkage(c) && (f.Value <= -90 || f.Value > 90):
			warnings = append(warnings, Warning{Component: c, Field: f.Name, Value: f.Value, Reason: "linkage angle outside (-90, 90]"})
		}
	}
	return warnings
}

func isLinkage(c Component) bool {
	switch c {
	case FrontRockerLinkage, RearRockerLinkage, MiddleBogieLinkage, RearBogieLinkage:
		return true
	}
	return false
}
