package rover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/params"
)

// baseValues is a small, buildable rover.
var baseValues = map[string]float64{
	"rover_width":                      600,
	"rover_length":                     900,
	"frame_width":                      300,
	"frame_height":                     150,
	"ground_clearance":                 200,
	"corner_wheel_asm_height":          80,
	"steering_asm_height":              40,
	"front_steering_mount_neck_height": 20,
	"rear_steering_mount_neck_height":  20,
	"wheel_diameter":                   200,
	"wheel_thickness":                  50,
	"linkage_thickness":                6,
	"linkage_width":                    20,
	"linkage_wall_thickness":           2,
	"linkage_mount_base_length":        15,
	"linkage_mount_bolt_diameter":      3,
	"pivot_housing_bolt_diameter":      4,
	"pivot_housing_min_wall_thickness": 2,
	"upper_shaft_frame_clearance":      5,
	"upper_shaft_overhang":             5,
	"lower_shaft_overhang":             4,
	"swingarm_thickness":               10,
	"middle_wheel_clearance":           5,
	"middle_wheel_shaft_diameter":      8,
	"middle_wheel_shaft_length":        40,
	"middle_wheel_shaft_overhang":      6,

	"upper_bearing_diameter":                  10,
	"upper_bearing_outer_race_inner_diameter": 8.5,
	"upper_bearing_thickness":                 4,
	"upper_pivot_housing_num_bolts":           4,
	"upper_shaft_diameter":                    6,
	"upper_ret_ring_inner_diameter":           5.7,
	"upper_ret_ring_thickness":                0.7,

	"lower_bearing_diameter":                  12,
	"lower_bearing_outer_race_inner_diameter": 10.2,
	"lower_bearing_thickness":                 4,
	"lower_pivot_housing_num_bolts":           3,
	"lower_shaft_diameter":                    8,
	"lower_ret_ring_inner_diameter":           7.6,
	"lower_ret_ring_thickness":                0.9,
}

// unitless parameters in the fixture table.
var unitless = map[string]bool{
	"upper_pivot_housing_num_bolts": true,
	"lower_pivot_housing_num_bolts": true,
}

// testTable returns the base table with overrides applied.
func testTable(overrides map[string]float64) *params.Table {
	entries := make(map[string]params.Quantity, len(baseValues))
	for name, v := range baseValues {
		unit := "mm"
		if unitless[name] {
			unit = ""
		}
		entries[name] = params.Quantity{Value: v, Unit: unit}
	}
	for name, v := range overrides {
		q := entries[name]
		q.Value = v
		entries[name] = q
	}
	return params.NewTable(entries)
}

// testParams binds testTable(overrides).
func testParams(t *testing.T, overrides map[string]float64) Parameters {
	t.Helper()
	p, err := FromTable(testTable(overrides))
	require.NoError(t, err)
	return p
}
