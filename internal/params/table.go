// Package params provides the base parameter table for rover dimension derivation.
// A table maps parameter names to a numeric value and an optional unit and
// is immutable once loaded.
package params

import (
	"fmt"
	"sort"
)

// Quantity is a numeric parameter value with an optional unit.
type Quantity struct {
	Value float64
	Unit  string // empty when the parameter is unitless
}

// Table is an immutable mapping of parameter name to quantity.
type Table struct {
	entries map[string]Quantity
	source  string
}

// NewTable creates a table from the given entries. The map is copied.
func NewTable(entries map[string]Quantity) *Table {
	copied := make(map[string]Quantity, len(entries))
	for name, q := range entries {
		copied[name] = q
	}
	return &Table{entries: copied}
}

// Source returns the path the table was loaded from, if any.
func (t *Table) Source() string {
	return t.source
}

// Len returns the number of parameters in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the quantity for name and whether it exists.
func (t *Table) Lookup(name string) (Quantity, bool) {
	q, ok := t.entries[name]
	return q, ok
}

// Get returns the quantity for name or a *MissingParameterError.
func (t *Table) Get(name string) (Quantity, error) {
	q, ok := t.entries[name]
	if !ok {
		return Quantity{}, &MissingParameterError{Name: name, Source: t.source}
	}
	return q, nil
}

// Value returns the numeric value for name or a *MissingParameterError.
func (t *Table) Value(name string) (float64, error) {
	q, err := t.Get(name)
	if err != nil {
		return 0, err
	}
	return q.Value, nil
}

// Names returns all parameter names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MissingParameterError is returned when a referenced parameter is not in the table.
type MissingParameterError struct {
	Name   string
	Source string
}

func (e *MissingParameterError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: missing parameter %q", e.Source, e.Name)
	}
	return fmt.Sprintf("missing parameter %q", e.Name)
}
