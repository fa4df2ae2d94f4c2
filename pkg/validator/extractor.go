/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/NVIDIA/marketlint/pkg/dataset"
	"github.com/NVIDIA/marketlint/pkg/issue"
)

// Value is a raw decoded value together with whether its key was present.
// The zero Value is undefined.
type Value struct {
	Raw     any
	Defined bool
}

// Undefined returns a Value for a missing key.
func Undefined() Value {
	return Value{}
}

// Defined returns a Value for a present key holding raw (nil for null).
func Defined(raw any) Value {
	return Value{Raw: raw, Defined: true}
}

// IsNull reports whether the key is present with an explicit null.
func (v Value) IsNull() bool {
	return v.Defined && v.Raw == nil
}

// lookup extracts key from obj.
func lookup(obj map[string]any, key string) Value {
	raw, ok := obj[key]
	if !ok {
		return Undefined()
	}
	return Defined(raw)
}

// asObject returns the object held by v, or the issue explaining why v is
// not a usable object: undefined, null, not an object, or without keys.
func asObject(name string, v Value) (map[string]any, issue.Issue) {
	switch {
	case !v.Defined:
		return nil, issue.UndefinedField(name)
	case v.Raw == nil:
		return nil, issue.NullField(name)
	}
	obj, ok := v.Raw.(map[string]any)
	if !ok {
		return nil, issue.CustomField(name, fmt.Sprintf("Field '%s' must be an object, got %s.", name, dataset.TypeName(v.Raw)))
	}
	if len(obj) == 0 {
		return nil, issue.EmptyObjectField(name)
	}
	return obj, nil
}

// objectField extracts key from obj and requires it to be a non-empty object.
func objectField(obj map[string]any, key string) (map[string]any, issue.Issue) {
	return asObject(key, lookup(obj, key))
}

// requireString checks that key holds a non-empty string.
func requireString(obj map[string]any, key string) []issue.Issue {
	v := lookup(obj, key)
	switch {
	case !v.Defined:
		return []issue.Issue{issue.UndefinedField(key)}
	case v.Raw == nil:
		return []issue.Issue{issue.NullField(key)}
	}
	s, ok := v.Raw.(string)
	if !ok {
		return []issue.Issue{notAString(key, v.Raw)}
	}
	if s == "" {
		return []issue.Issue{issue.EmptyField(key)}
	}
	return nil
}

func notAString(key string, raw any) issue.Issue {
	return issue.CustomField(key, fmt.Sprintf("Field '%s' must be a string, got %s.", key, dataset.TypeName(raw)))
}

// stringField returns the string held by key, if any.
func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

// toNumber converts a decoded JSON or YAML number to a finite float64.
func toNumber(raw any) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil && isFinite(f)
	case float64:
		return n, isFinite(n)
	case float32:
		return float64(n), isFinite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// notANumber reports a value toNumber rejected. Numbers that overflow
// float64, and NaN or infinities, are quoted as written.
func notANumber(name string, raw any) issue.Issue {
	if dataset.TypeName(raw) == "number" {
		return issue.CustomField(name, fmt.Sprintf("Field '%s' must be a finite number, got %v.", name, raw))
	}
	return issue.CustomField(name, fmt.Sprintf("Field '%s' must be a number, got %s.", name, dataset.TypeName(raw)))
}
