/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package issue

// Severity tells whether an issue invalidates a dataset.
type Severity string

const (
	// SeverityError invalidates the dataset.
	SeverityError Severity = "error"
	// SeverityWarning is informational only.
	SeverityWarning Severity = "warning"
)

// Finding is the serializable projection of an Issue.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string   `json:"message" yaml:"message"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Actual   *float64 `json:"actual,omitempty" yaml:"actual,omitempty"`
}

// NewFinding builds a Finding from an issue and the severity assigned to it.
func NewFinding(severity Severity, i Issue) Finding {
	f := Finding{
		Severity: severity,
		Kind:     i.Kind(),
		Field:    i.Field(),
		Message:  i.Message(),
	}
	if r, ok := i.(RangeIssue); ok {
		lo, hi, actual := r.Min(), r.Max(), r.Actual()
		f.Min, f.Max, f.Actual = &lo, &hi, &actual
	}
	return f
}

// Findings projects a list of issues sharing one severity.
func Findings(severity Severity, issues []Issue) []Finding {
	out := make([]Finding, 0, len(issues))
	for _, i := range issues {
		out = append(out, NewFinding(severity, i))
	}
	return out
}
