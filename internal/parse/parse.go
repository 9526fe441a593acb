// Package parse converts raw command-line arguments into typed values:
// integer record ids and ordered field=value pairs.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is a single field=value pair from the command line.
type Field struct {
	Name  string
	Value string
}

// FieldMap is an ordered collection of field=value pairs. Order is
// preserved so output and store calls see fields as given.
type FieldMap struct {
	fields []Field
}

// Fields parses positional arguments of the form name=value.
// Later duplicates overwrite earlier ones in place.
func Fields(args []string) (*FieldMap, error) {
	fm := &FieldMap{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q: expected field=value", arg)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid argument %q: empty field name", arg)
		}
		fm.Set(name, value)
	}
	return fm, nil
}

// Set stores a field value, replacing an existing entry with the same name.
func (fm *FieldMap) Set(name, value string) {
	for i := range fm.fields {
		if fm.fields[i].Name == name {
			fm.fields[i].Value = value
			return
		}
	}
	fm.fields = append(fm.fields, Field{Name: name, Value: value})
}

// Get returns a field value and whether it was present.
func (fm *FieldMap) Get(name string) (string, bool) {
	for _, f := range fm.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Delete removes a field if present.
func (fm *FieldMap) Delete(name string) {
	for i, f := range fm.fields {
		if f.Name == name {
			fm.fields = append(fm.fields[:i], fm.fields[i+1:]...)
			return
		}
	}
}

// All returns the fields in insertion order.
func (fm *FieldMap) All() []Field {
	return fm.fields
}

// Len returns the number of fields.
func (fm *FieldMap) Len() int {
	return len(fm.fields)
}

// ID parses a comment or post identifier argument.
func ID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", arg)
	}
	return id, nil
}

// FieldList splits a comma-separated field list, dropping empty entries.
func FieldList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
