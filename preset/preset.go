// Package preset loads shader resources: either a multi-pass preset document
// or a single raw GLSL file.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// PassDefinition is one shader source awaiting compilation.
type PassDefinition struct {
	Source     string
	Path       string
	Parameters []ParameterValue
}

// ParameterValue assigns a value to a named shader parameter.
type ParameterValue struct {
	Name  string
	Value float32
}

// ResourceError reports a resource that could not be read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("error opening %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// FormatError reports a structurally invalid preset document.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid shader preset %q: %s", e.Path, e.Reason)
}

// ReadTextFile returns the full content of the resource at path.
func ReadTextFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return b, nil
}

// The multi-pass document shape:
//
//	{"shaders": [{"path": "crt.glsl", "parameters": {"CURVATURE": 0.1}}]}
type document struct {
	Shaders []passEntry `json:"shaders"`
}

type passEntry struct {
	Path       string             `json:"path"`
	Parameters map[string]float64 `json:"parameters"`
}

// Load reads the resource at path and interprets it either as a preset
// document, yielding one definition per listed shader in list order, or as a
// single raw shader source. A resource is never partially interpreted as
// both: anything that does not parse as a document with a "shaders" list is
// raw shader text.
func Load(path string) ([]PassDefinition, error) {
	text, err := ReadTextFile(path)
	if err != nil {
		return nil, err
	}

	var doc document
	if json.Unmarshal(text, &doc) != nil || doc.Shaders == nil {
		return []PassDefinition{{Source: string(text), Path: path}}, nil
	}

	defs := make([]PassDefinition, 0, len(doc.Shaders))
	for _, entry := range doc.Shaders {
		if entry.Path == "" {
			return nil, &FormatError{Path: path, Reason: `shader entry has no "path"`}
		}
		source, err := ReadTextFile(entry.Path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, PassDefinition{
			Source:     string(source),
			Path:       entry.Path,
			Parameters: parameterList(entry.Parameters),
		})
	}
	return defs, nil
}

// parameterList flattens a JSON parameter object into a name-sorted list.
// JSON objects carry no order of their own, so sorting keeps the result
// stable across loads.
func parameterList(params map[string]float64) []ParameterValue {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]ParameterValue, 0, len(names))
	for _, name := range names {
		list = append(list, ParameterValue{Name: name, Value: float32(params[name])})
	}
	return list
}
