package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the artifact encoding.
type Format string

// Supported artifact formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a configuration string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown artifact format %q (want text or yaml)", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".txt"
}

// FormatForExt returns the format for a file extension.
func FormatForExt(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".txt":
		return FormatText, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// ParseError describes a malformed artifact.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// FormatValue renders v with the fewest digits that parse back to the same float64.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode writes rec to w in the given format.
func Encode(w io.Writer, rec *Record, format Format) error {
	switch format {
	case FormatYAML:
		return encodeYAML(w, rec)
	case FormatText, "":
		return encodeText(w, rec)
	default:
		return fmt.Errorf("unknown artifact format %q", format)
	}
}

// Decode reads a record from r. source is used in error messages and as the
// record name when the artifact does not carry one.
func Decode(r io.Reader, format Format, source string) (*Record, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r, source)
	case FormatText, "":
		return decodeText(r, source)
	default:
		return nil, fmt.Errorf("unknown artifact format %q", format)
	}
}

// encodeText writes one "field: value [unit]" line per field under a
// "# component" header.
func encodeText(w io.Writer, rec *Record) error {
	bw := bufio.NewWriter(w)
	if rec.Name != "" {
		if _, err := fmt.Fprintf(bw, "# %s\n", rec.Name); err != nil {
			return err
		}
	}
	for _, f := range rec.Fields {
		line := f.Name + ": " + FormatValue(f.Value)
		if f.Unit != "" {
			line += " " + f.Unit
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func decodeText(r io.Reader, source string) (*Record, error) {
	rec := &Record{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if rec.Name == "" && len(rec.Fields) == 0 {
				rec.Name = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{File: source, Line: lineNo, Message: fmt.Sprintf("expected \"field: value [unit]\", got %q", line)}
		}
		name = strings.TrimSpace(name)
		// The unit is everything after the value and may contain spaces.
		raw, unit, _ := strings.Cut(strings.TrimSpace(rest), " ")
		if name == "" || raw == "" {
			return nil, &ParseError{File: source, Line: lineNo, Message: fmt.Sprintf("expected \"field: value [unit]\", got %q", line)}
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ParseError{File: source, Line: lineNo, Message: fmt.Sprintf("invalid value %q for %s", raw, name)}
		}
		rec.Add(name, value, unit)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return rec, nil
}

// yamlRecord is the YAML artifact layout.
type yamlRecord struct {
	Component string  `yaml:"component"`
	Fields    []Field `yaml:"fields"`
}

func encodeYAML(w io.Writer, rec *Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlRecord{Component: rec.Name, Fields: rec.Fields}); err != nil {
		return err
	}
	return enc.Close()
}

func decodeYAML(r io.Reader, source string) (*Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlRecord
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{File: source, Message: "empty artifact"}
		}
		return nil, &ParseError{File: source, Message: err.Error()}
	}
	return &Record{Name: doc.Component, Fields: doc.Fields}, nil
}
