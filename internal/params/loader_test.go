package params

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      map[string]Quantity
		wantErr   bool
		errSubstr string
	}{
		{
			name: "name value unit",
			input: `name,value,unit
rover_width,600,mm
pivot_housing_num_bolts,4,
`,
			want: map[string]Quantity{
				"rover_width":             {Value: 600, Unit: "mm"},
				"pivot_housing_num_bolts": {Value: 4},
			},
		},
		{
			name: "columns in any order without unit",
			input: `value,name
12.5,frame_height
`,
			want: map[string]Quantity{
				"frame_height": {Value: 12.5},
			},
		},
		{
			name: "comments and padding",
			input: `Name, Value, Unit
# frame
frame_width, 300, mm
`,
			want: map[string]Quantity{
				"frame_width": {Value: 300, Unit: "mm"},
			},
		},
		{
			name:      "missing value column",
			input:     "name,unit\nrover_width,mm\n",
			wantErr:   true,
			errSubstr: `"name" and "value"`,
		},
		{
			name:      "non numeric value",
			input:     "name,value\nrover_width,wide\n",
			wantErr:   true,
			errSubstr: `invalid value for "rover_width"`,
		},
		{
			name:      "duplicate name",
			input:     "name,value\na,1\na,2\n",
			wantErr:   true,
			errSubstr: `duplicate parameter "a"`,
		},
		{
			name:      "empty input",
			input:     "",
			wantErr:   true,
			errSubstr: "empty parameter table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadCSV(strings.NewReader(tt.input), "Parameters.csv")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				var loadErr *LoadError
				assert.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), table.Len())
			for name, want := range tt.want {
				got, ok := table.Lookup(name)
				require.True(t, ok, "missing %s", name)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestReadCSV_ErrorLine(t *testing.T) {
	input := "name,value\na,1\nb,x\n"
	_, err := ReadCSV(strings.NewReader(input), "p.csv")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, 3, loadErr.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "p.csv:3:"))
}

func TestReadYAML(t *testing.T) {
	input := `
rover_width:
  value: 600
  unit: mm
pivot_housing_num_bolts: 4
`
	table, err := ReadYAML(strings.NewReader(input), "params.yaml")
	require.NoError(t, err)

	q, err := table.Get("rover_width")
	require.NoError(t, err)
	assert.Equal(t, Quantity{Value: 600, Unit: "mm"}, q)

	v, err := table.Value("pivot_housing_num_bolts")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestReadYAML_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{name: "sequence root", input: "- 1\n- 2\n", errSubstr: "must be a mapping"},
		{name: "missing value", input: "a:\n  unit: mm\n", errSubstr: `"a" has no value`},
		{name: "bad scalar", input: "a: wide\n", errSubstr: `invalid value for "a"`},
		{name: "list value", input: "a: [1, 2]\n", errSubstr: "must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadYAML(strings.NewReader(tt.input), "params.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "Parameters.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,value,unit\nrover_length,900,mm\n"), 0644))
	table, err := Load(csvPath)
	require.NoError(t, err)
	assert.Equal(t, csvPath, table.Source())
	assert.Equal(t, []string{"rover_length"}, table.Names())

	ymlPath := filepath.Join(dir, "params.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte("rover_length: 900\n"), 0644))
	table, err = Load(ymlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	txtPath := filepath.Join(dir, "params.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0644))
	_, err = Load(txtPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported parameter table extension")

	_, err = Load(filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTable_MissingParameter(t *testing.T) {
	table := NewTable(map[string]Quantity{"a": {Value: 1}})

	_, err := table.Value("b")
	require.Error(t, err)

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "b", missing.Name)
}

func TestNewTable_CopiesEntries(t *testing.T) {
	entries := map[string]Quantity{"a": {Value: 1}}
	table := NewTable(entries)
	entries["a"] = Quantity{Value: 2}
	entries["b"] = Quantity{Value: 3}

	v, err := table.Value("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, table.Len())
}
