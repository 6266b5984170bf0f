package params

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError describes a malformed parameter source.
type LoadError struct {
	File    string
	Line    int
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.File != "" {
		if e.Line > 0 {
			return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
		}
		return fmt.Sprintf("%s: %s", e.File, msg)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a parameter table from path. The format is chosen by extension:
// .csv for CSV tables, .yaml or .yml for YAML tables.
func Load(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to open parameter table", Err: err}
	}
	defer func() { _ = f.Close() }()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		t, err = ReadCSV(f, path)
	case ".yaml", ".yml":
		t, err = ReadYAML(f, path)
	default:
		return nil, &LoadError{File: path, Message: fmt.Sprintf("unsupported parameter table extension %q (want .csv, .yaml or .yml)", filepath.Ext(path))}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadCSV parses a CSV parameter table. The first row is a header naming the
// columns "name", "value" and optionally "unit", in any order. Lines starting
// with '#' are comments.
func ReadCSV(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{File: source, Message: "empty parameter table"}
		}
		return nil, &LoadError{File: source, Message: "failed to read header", Err: err}
	}

	nameCol, valueCol, unitCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "parameter":
			nameCol = i
		case "value":
			valueCol = i
		case "unit", "units":
			unitCol = i
		}
	}
	if nameCol < 0 || valueCol < 0 {
		return nil, &LoadError{File: source, Line: 1, Message: `header must contain "name" and "value" columns`}
	}

	entries := make(map[string]Quantity)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &LoadError{File: source, Line: line, Message: "malformed row", Err: err}
		}
		line, _ := reader.FieldPos(0)

		if nameCol >= len(row) || valueCol >= len(row) {
			return nil, &LoadError{File: source, Line: line, Message: fmt.Sprintf("row has %d columns, want at least %d", len(row), max(nameCol, valueCol)+1)}
		}

		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			return nil, &LoadError{File: source, Line: line, Message: "empty parameter name"}
		}
		if _, dup := entries[name]; dup {
			return nil, &LoadError{File: source, Line: line, Message: fmt.Sprintf("duplicate parameter %q", name)}
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			return nil, &LoadError{File: source, Line: line, Message: fmt.Sprintf("invalid value for %q", name), Err: err}
		}

		var unit string
		if unitCol >= 0 && unitCol < len(row) {
			unit = strings.TrimSpace(row[unitCol])
		}

		entries[name] = Quantity{Value: value, Unit: unit}
	}

	t := NewTable(entries)
	t.source = source
	return t, nil
}

// yamlQuantity is the long form of a YAML parameter entry.
type yamlQuantity struct {
	Value *float64 `yaml:"value"`
	Unit  string   `yaml:"unit"`
}

// ReadYAML parses a YAML parameter table. Each top-level key is a parameter
// name whose value is either a bare number or a mapping with "value" and
// optional "unit" keys.
func ReadYAML(r io.Reader, source string) (*Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{File: source, Message: "empty parameter table"}
		}
		return nil, &LoadError{File: source, Message: "invalid YAML", Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{File: source, Line: root.Line, Message: "parameter table must be a mapping"}
	}

	entries := make(map[string]Quantity, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		name := strings.TrimSpace(key.Value)
		if name == "" {
			return nil, &LoadError{File: source, Line: key.Line, Message: "empty parameter name"}
		}
		if _, dup := entries[name]; dup {
			return nil, &LoadError{File: source, Line: key.Line, Message: fmt.Sprintf("duplicate parameter %q", name)}
		}

		switch val.Kind {
		case yaml.ScalarNode:
			v, err := strconv.ParseFloat(val.Value, 64)
			if err != nil {
				return nil, &LoadError{File: source, Line: val.Line, Message: fmt.Sprintf("invalid value for %q", name), Err: err}
			}
			entries[name] = Quantity{Value: v}
		case yaml.MappingNode:
			var q yamlQuantity
			if err := val.Decode(&q); err != nil {
				return nil, &LoadError{File: source, Line: val.Line, Message: fmt.Sprintf("invalid entry for %q", name), Err: err}
			}
			if q.Value == nil {
				return nil, &LoadError{File: source, Line: val.Line, Message: fmt.Sprintf("parameter %q has no value", name)}
			}
			entries[name] = Quantity{Value: *q.Value, Unit: strings.TrimSpace(q.Unit)}
		default:
			return nil, &LoadError{File: source, Line: val.Line, Message: fmt.Sprintf("parameter %q must be a number or a {value, unit} mapping", name)}
		}
	}

	t := NewTable(entries)
	t.source = source
	return t, nil
}
