/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dataset document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder for a file by its extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DisplayName returns the base name of path with its extension stripped.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DocumentError reports a dataset file that cannot be validated at all:
// unreadable, undecodable or missing its top-level structure.
type DocumentError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid dataset document %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid dataset document %s: %s", e.Path, e.Reason)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Document is a decoded dataset.
type Document struct {
	// Name is the display name derived from the file name.
	Name string
	// Path is the source file, empty for in-memory documents.
	Path string
	// Root is the decoded top-level object.
	Root map[string]any
}

// Load reads and decodes the dataset at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Reason: "cannot read file", Err: err}
	}

	doc, err := Decode(DisplayName(path), FormatForPath(path), data)
	if err != nil {
		if de, ok := err.(*DocumentError); ok {
			de.Path = path
		}
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Decode decodes data in the given format into a Document named name.
func Decode(name string, format Format, data []byte) (*Document, error) {
	var root any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &DocumentError{Path: name, Reason: "cannot decode YAML", Err: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&root); err != nil {
			return nil, &DocumentError{Path: name, Reason: "cannot decode JSON", Err: err}
		}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &DocumentError{Path: name, Reason: fmt.Sprintf("top-level value must be an object, got %s", TypeName(root))}
	}
	return &Document{Name: name, Root: obj}, nil
}

// Features returns the features array or a DocumentError when it is missing
// or not an array.
func (d *Document) Features() ([]any, error) {
	raw, ok := d.Root["features"]
	if !ok {
		return nil, &DocumentError{Path: d.source(), Reason: "field 'features' is missing"}
	}
	features, ok := raw.([]any)
	if !ok {
		return nil, &DocumentError{Path: d.source(), Reason: fmt.Sprintf("field 'features' must be an array, got %s", TypeName(raw))}
	}
	return features, nil
}

// Metadata returns the raw metadata value and whether the key is present.
func (d *Document) Metadata() (any, bool) {
	v, ok := d.Root["metadata"]
	return v, ok
}

func (d *Document) source() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}

// TypeName describes the dynamic type of a decoded value for messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
