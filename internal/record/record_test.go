package record

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rockerbogie/internal/testutil"
)

func sampleRecord() *Record {
	return New("front_rocker_linkage").
		MM("linkage_thickness", 6).
		MM("width", 20).
		MM("length", 311.6342077106826).
		Scalar("angle", 21.086147288854354).
		MM("bolt_spacing", 1.5)
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecord(), FormatText))

	want := `# front_rocker_linkage
linkage_thickness: 6 mm
width: 20 mm
length: 311.6342077106826 mm
angle: 21.086147288854354
bolt_spacing: 1.5 mm
`
	assert.Equal(t, want, buf.String())
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatText, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			orig := sampleRecord()
			orig.Scalar("tiny", 1e-12).MM("negative", -3.25).Add("wheel_diameter", 200, "mm nom")

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, orig, format))

			got, err := Decode(&buf, format, "test")
			require.NoError(t, err)
			assert.Equal(t, orig.Name, got.Name)
			assert.Equal(t, orig.Fields, got.Fields)
		})
	}
}

func TestDecodeText_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{name: "no colon", input: "width 20 mm\n", errSubstr: "line 1"},
		{name: "bad value", input: "# x\nwidth: wide mm\n", errSubstr: `invalid value "wide"`},
		{name: "missing field name", input: ": 20 mm\n", errSubstr: "expected"},
		{name: "missing value", input: "width:\n", errSubstr: "expected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatText, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestDecodeYAML_UnknownField(t *testing.T) {
	input := "component: x\nfields: []\nextra: 1\n"
	_, err := Decode(strings.NewReader(input), FormatYAML, "x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.yaml")
}

func TestDecodeText_UnitWithSpaces(t *testing.T) {
	rec, err := Decode(strings.NewReader("wheel_diameter: 200 mm nom\nmass: 1.5\n"), FormatText, "")
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{Name: "wheel_diameter", Value: 200, Unit: "mm nom"},
		{Name: "mass", Value: 1.5},
	}, rec.Fields)
}

func TestDecodeYAML_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""), FormatYAML, "empty.yaml")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "empty.yaml: empty artifact", err.Error())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "TXT", want: FormatText},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_Validate(t *testing.T) {
	assert.NoError(t, sampleRecord().Validate())
	assert.Error(t, New("").MM("a", 1).Validate())
	assert.Error(t, New("x").MM("a", 1).MM("a", 2).Validate())
	assert.Error(t, New("x").MM("", 1).Validate())
}

func TestRecord_Get(t *testing.T) {
	rec := sampleRecord()
	f, ok := rec.Get("width")
	require.True(t, ok)
	assert.Equal(t, Field{Name: "width", Value: 20, Unit: UnitMM}, f)

	_, ok = rec.Get("absent")
	assert.False(t, ok)

	assert.Equal(t, []string{"linkage_thickness", "width", "length", "angle", "bolt_spacing"}, rec.Names())
}

func TestFileSink_WriteAndRead(t *testing.T) {
	for _, format := range []Format{FormatText, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			sink := NewFileSink(dir, format, testutil.NewTestLogger(t))

			rec := sampleRecord()
			require.NoError(t, sink.WriteRecord(context.Background(), rec))

			path := sink.Path(rec.Name)
			assert.Equal(t, filepath.Join(dir, "front_rocker_linkage"+format.Ext()), path)

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, rec.Name, got.Name)
			assert.Equal(t, rec.Fields, got.Fields)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must not be left behind")
		})
	}
}

func TestFileSink_Overwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, FormatText, nil)
	ctx := context.Background()

	require.NoError(t, sink.WriteRecord(ctx, New("spacer").MM("spacer_thickness", 5)))
	require.NoError(t, sink.WriteRecord(ctx, New("spacer").MM("spacer_thickness", 7)))

	got, err := ReadFile(sink.Path("spacer"))
	require.NoError(t, err)
	f, ok := got.Get("spacer_thickness")
	require.True(t, ok)
	assert.Equal(t, 7.0, f.Value)
}

func TestFileSink_CancelledContext(t *testing.T) {
	sink := NewFileSink(t.TempDir(), FormatText, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sink.WriteRecord(ctx, sampleRecord())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSink_RemoveRecord(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, FormatYAML, testutil.NewTestLogger(t))
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, sink.WriteRecord(ctx, rec))
	require.FileExists(t, sink.Path(rec.Name))

	removed, err := sink.RemoveRecord(ctx, rec.Name)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, sink.Path(rec.Name))

	removed, err = sink.RemoveRecord(ctx, rec.Name)
	require.NoError(t, err, "removing a missing artifact is not an error")
	assert.False(t, removed)

	missingDir := NewFileSink(filepath.Join(dir, "absent"), FormatText, nil)
	removed, err = missingDir.RemoveRecord(ctx, rec.Name)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReadFile_NameFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upper_shaft.txt")
	require.NoError(t, os.WriteFile(path, []byte("length: 120 mm\n"), 0644))

	rec, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "upper_shaft", rec.Name)

	_, err = ReadFile(filepath.Join(dir, "upper_shaft.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown artifact extension")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "6", FormatValue(6))
	assert.Equal(t, "0.1", FormatValue(0.1))
	assert.Equal(t, "-2.5", FormatValue(-2.5))
	assert.Equal(t, "NaN", FormatValue(math.NaN()))
}
