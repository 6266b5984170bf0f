package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/cli/config"
	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
)

func TestNewDAGCommand(t *testing.T) {
	cmd := NewDAGCommand()

	if cmd.Use != "dag [component]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "dag [component]")
	}

	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}

	if cmd.Example == "" {
		t.Error("Example should not be empty")
	}
}

func executeDAG(t *testing.T, mode output.Mode, args ...string) string {
	t.Helper()
	cfg := config.Default()
	cfg.OutputFormat = string(mode)

	cmd := NewDAGCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), cfg)))
	return buf.String()
}

func TestDAGCommand_JSON(t *testing.T) {
	var got output.DAGOutput
	require.NoError(t, json.Unmarshal([]byte(executeDAG(t, output.ModeJSON)), &got))

	assert.Equal(t, 13, got.TotalComponents)
	require.Len(t, got.Levels, 4)
	assert.Len(t, got.Levels[0].Components, 4)
	assert.Len(t, got.Levels[3].Components, 2)
	assert.Positive(t, got.TotalEdges)
	assert.ElementsMatch(t, []string{
		"front_rocker_linkage", "rear_rocker_linkage", "middle_bogie_linkage", "rear_bogie_linkage",
	}, got.Roots)
	assert.ElementsMatch(t, []string{
		"upper_shaft", "lower_shaft", "front_steering_mount", "rear_steering_mount", "middle_wheel_mount",
	}, got.Leaves)

	for _, node := range got.Levels[0].Components {
		assert.Empty(t, node.DependsOn, node.Component)
		assert.NotNil(t, node.DependsOn, "empty lists encode as []")
	}

	shafts := got.Levels[3].Components
	assert.Equal(t, "upper_shaft", shafts[0].Component)
	assert.Empty(t, shafts[0].UsedBy)
}

func TestDAGCommand_Markdown(t *testing.T) {
	out := executeDAG(t, output.ModeMarkdown)

	assert.Contains(t, out, "Level 0 (Linkages)")
	assert.Contains(t, out, "front_rocker_linkage")
	assert.Contains(t, out, "Total Components")
}

func TestDAGCommand_Impact(t *testing.T) {
	var got output.DAGImpact
	require.NoError(t, json.Unmarshal([]byte(executeDAG(t, output.ModeJSON, "upper_spacer")), &got))

	assert.Equal(t, "upper_spacer", got.Component)
	assert.Equal(t, []string{"front_rocker_linkage", "rear_rocker_linkage", "upper_pivot_housing"}, got.Upstream)
	assert.Equal(t, []string{"lower_shaft", "upper_shaft"}, got.Downstream)

	out := executeDAG(t, output.ModeMarkdown, "rear_bogie_linkage")
	assert.Contains(t, out, "- **Derived from**: (none)")
	assert.Contains(t, out, "lower_pivot_housing")
}

func TestDAGCommand_UnknownComponent(t *testing.T) {
	cmd := NewDAGCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"flux_capacitor"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component")
}
