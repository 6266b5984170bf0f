package commands

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// derivedProject scaffolds a project and derives it in the given format.
func derivedProject(t *testing.T, format record.Format) string {
	t.Helper()
	dir := newTestProject(t)
	cc, _, _ := newTestContext(t, dir, output.ModeJSON)
	cc.Cfg.Format = string(format)
	require.NoError(t, runDerive(context.Background(), cc))
	return dir
}

func TestRunShow_ByName(t *testing.T) {
	dir := derivedProject(t, record.FormatText)
	cc, out, _ := newTestContext(t, dir, output.ModeMarkdown)

	require.NoError(t, runShow(cc, "upper_shaft"))

	got := out.String()
	assert.Contains(t, got, "# upper_shaft")
	assert.Contains(t, got, filepath.Join(dir, "dimensions", "upper_shaft.txt"))
	assert.Contains(t, got, "| ret_ring_1_pos | 15 | mm |")
	assert.Contains(t, got, "| ref_length | 37 | mm |")
	assert.Contains(t, got, "| length | 374 | mm |")
}

func TestRunShow_FallsBackToOtherFormat(t *testing.T) {
	dir := derivedProject(t, record.FormatYAML)
	cc, out, _ := newTestContext(t, dir, output.ModeJSON)
	require.Equal(t, "text", cc.Cfg.Format)

	require.NoError(t, runShow(cc, "lower_spacer"))

	var got output.ShowOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "lower_spacer", got.Component)
	assert.Equal(t, filepath.Join(dir, "dimensions", "lower_spacer.yaml"), got.Path)
	require.Len(t, got.Fields, 6)
	assert.Equal(t, output.Field{Name: "spacer_thickness", Value: 16, Unit: "mm"}, got.Fields[2])
	assert.Equal(t, output.Field{Name: "num_bolts", Value: 3}, got.Fields[5])
}

func TestRunShow_ByPath(t *testing.T) {
	dir := derivedProject(t, record.FormatText)
	cc, out, _ := newTestContext(t, dir, output.ModeText)

	path := filepath.Join(dir, "dimensions", "rear_bogie_linkage.txt")
	require.NoError(t, runShow(cc, path))
	assert.Contains(t, out.String(), "Rear Bogie Linkage")
	assert.Contains(t, out.String(), "63.5")
}

func TestRunShow_NotFound(t *testing.T) {
	dir := newTestProject(t)
	cc, _, _ := newTestContext(t, dir, output.ModeText)

	err := runShow(cc, "upper_shaft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'rockerbogie derive' first")

	err = runShow(cc, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifact not found")
}
