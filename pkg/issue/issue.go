/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package issue

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an Issue.
type Kind string

const (
	KindUndefinedField   Kind = "undefined-field"
	KindNullField        Kind = "null-field"
	KindEmptyField       Kind = "empty-field"
	KindEmptyObjectField Kind = "empty-object-field"
	KindRangeExceedance  Kind = "range-exceedance"
	KindCustom           Kind = "custom"
)

// Issue is a single validation finding.
type Issue interface {
	// Kind returns the variant of the issue.
	Kind() Kind
	// Field returns the name of the offending field, or "" when unknown.
	Field() string
	// Message renders the issue for humans.
	Message() string
}

// FieldIssue reports a missing, null or empty field.
type FieldIssue struct {
	kind  Kind
	field string
}

// UndefinedField reports a field whose key is missing.
func UndefinedField(name string) FieldIssue {
	return FieldIssue{kind: KindUndefinedField, field: name}
}

// NullField reports a field explicitly set to null.
func NullField(name string) FieldIssue {
	return FieldIssue{kind: KindNullField, field: name}
}

// EmptyField reports a field set to the empty string.
func EmptyField(name string) FieldIssue {
	return FieldIssue{kind: KindEmptyField, field: name}
}

// EmptyObjectField reports a field set to an object without keys.
func EmptyObjectField(name string) FieldIssue {
	return FieldIssue{kind: KindEmptyObjectField, field: name}
}

func (i FieldIssue) Kind() Kind    { return i.kind }
func (i FieldIssue) Field() string { return i.field }

func (i FieldIssue) Message() string {
	switch i.kind {
	case KindUndefinedField:
		return fmt.Sprintf("Field '%s' cannot be undefined.", i.field)
	case KindNullField:
		return fmt.Sprintf("Field '%s' cannot be null.", i.field)
	case KindEmptyField:
		return fmt.Sprintf("Field '%s' cannot be empty.", i.field)
	case KindEmptyObjectField:
		return fmt.Sprintf("Field '%s' cannot be an empty object.", i.field)
	default:
		return fmt.Sprintf("Field '%s' is invalid.", i.field)
	}
}

func (i FieldIssue) String() string { return i.Message() }

// RangeIssue reports a numeric value outside its valid bounds.
type RangeIssue struct {
	field  string
	min    float64
	max    float64
	actual float64
}

// RangeExceedance reports that actual lies outside [min:max] for the named field.
func RangeExceedance(name string, min, max, actual float64) RangeIssue {
	return RangeIssue{field: name, min: min, max: max, actual: actual}
}

func (i RangeIssue) Kind() Kind      { return KindRangeExceedance }
func (i RangeIssue) Field() string   { return i.field }
func (i RangeIssue) Min() float64    { return i.min }
func (i RangeIssue) Max() float64    { return i.max }
func (i RangeIssue) Actual() float64 { return i.actual }

func (i RangeIssue) Message() string {
	return fmt.Sprintf("Field '%s' exceeds valid range of [%s:%s]. Actual value is %s.",
		i.field, FormatNumber(i.min), FormatNumber(i.max), FormatNumber(i.actual))
}

func (i RangeIssue) String() string { return i.Message() }

// CustomIssue carries a free-form message.
type CustomIssue struct {
	field   string
	message string
}

// Custom returns an issue rendering message verbatim.
func Custom(message string) CustomIssue {
	return CustomIssue{message: message}
}

// CustomField returns a free-form issue attributed to a field.
func CustomField(name, message string) CustomIssue {
	return CustomIssue{field: name, message: message}
}

func (i CustomIssue) Kind() Kind      { return KindCustom }
func (i CustomIssue) Field() string   { return i.field }
func (i CustomIssue) Message() string { return i.message }
func (i CustomIssue) String() string  { return i.message }

// FormatNumber renders v in its shortest round-trip decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
