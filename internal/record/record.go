// Package record provides ordered dimension records and their on-disk artifacts.
//
// A Record is the persisted form of one derived component: an ordered list of
// named values with optional units. Field order is significant and is kept
// verbatim by every codec in this package.
package record

import "fmt"

// Unit for every derived length.
const UnitMM = "mm"

// Field is a single named value in a record.
type Field struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Record is an ordered sequence of fields for one component.
type Record struct {
	Name   string
	Fields []Field
}

// New creates an empty record for the named component.
func New(name string) *Record {
	return &Record{Name: name}
}

// Add appends a field and returns the record for chaining.
func (r *Record) Add(name string, value float64, unit string) *Record {
	r.Fields = append(r.Fields, Field{Name: name, Value: value, Unit: unit})
	return r
}

// MM appends a length field in millimetres.
func (r *Record) MM(name string, value float64) *Record {
	return r.Add(name, value, UnitMM)
}

// Scalar appends a unitless field.
func (r *Record) Scalar(name string, value float64) *Record {
	return r.Add(name, value, "")
}

// Get returns the field with the given name.
func (r *Record) Get(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in record order.
func (r *Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Validate checks that the record has a name and no duplicate fields.
func (r *Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("record has no name")
	}
	seen := make(map[string]bool, len(r.Fields))
	for _, f := range r.Fields {
		if f.Name == "" {
			return fmt.Errorf("record %s: field with empty name", r.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("record %s: duplicate field %q", r.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
