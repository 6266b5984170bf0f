package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/cli/config"
	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/testutil"
)

// newTestProject scaffolds the CSV template into a temp dir and returns the dir.
func newTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := copyTemplate(templateCSV, dir, false)
	require.NoError(t, err)
	return dir
}

// setParam rewrites one value in the project's CSV table.
func setParam(t *testing.T, dir, name, value string) {
	t.Helper()
	content, err := templateFS.ReadFile("templates/csv/Parameters.csv")
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, name+",") {
			fields := strings.Split(line, ",")
			fields[1] = value
			line = strings.Join(fields, ",")
		}
		lines = append(lines, line)
	}
	testutil.WriteFile(t, dir, "Parameters.csv", strings.Join(lines, "\n"))
}

// dropParam removes one parameter from the project's CSV table.
func dropParam(t *testing.T, dir, name string) {
	t.Helper()
	content, err := templateFS.ReadFile("templates/csv/Parameters.csv")
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.HasPrefix(line, name+",") {
			lines = append(lines, line)
		}
	}
	testutil.WriteFile(t, dir, "Parameters.csv", strings.Join(lines, "\n"))
}

// newTestContext returns a command context for a project dir, with results
// and diagnostics captured in separate buffers.
func newTestContext(t *testing.T, dir string, mode output.Mode) (*CommandContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Params = filepath.Join(dir, "Parameters.csv")
	cfg.OutDir = filepath.Join(dir, "dimensions")
	cfg.OutputFormat = string(mode)
	cfg.ProjectRoot = dir

	var out, errOut bytes.Buffer
	return &CommandContext{
		Cfg:      cfg,
		Logger:   testutil.NewTestLogger(t),
		Renderer: output.NewRenderer(&out, &errOut, mode),
	}, &out, &errOut
}
