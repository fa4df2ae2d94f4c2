/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/NVIDIA/marketlint/pkg/issue"
)

// Status is the outcome of validating one dataset.
type Status string

const (
	StatusPassed             Status = "passed"
	StatusPassedWithWarnings Status = "passed-with-warnings"
	StatusFailed             Status = "failed"
)

// Result holds the errors and warnings of one validated part.
type Result struct {
	Errors   []issue.Issue
	Warnings []issue.Issue
}

// ErrorCount returns the number of errors.
func (r Result) ErrorCount() int { return len(r.Errors) }

// WarningCount returns the number of warnings.
func (r Result) WarningCount() int { return len(r.Warnings) }

// Valid reports whether the result has no errors.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Merge returns a new Result holding r's issues followed by o's.
func (r Result) Merge(o Result) Result {
	return Result{
		Errors:   concat(r.Errors, o.Errors),
		Warnings: concat(r.Warnings, o.Warnings),
	}
}

func concat(a, b []issue.Issue) []issue.Issue {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]issue.Issue, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func errorResult(i issue.Issue) Result {
	return Result{Errors: []issue.Issue{i}}
}

// FeatureResult is the outcome of validating one feature.
type FeatureResult struct {
	Result

	// Index is the position of the feature in the dataset.
	Index int
	// Title is properties.title when it is a string, empty otherwise.
	Title string
}

// FeaturesResult is the outcome of validating a feature sequence, in input order.
type FeaturesResult struct {
	Features []FeatureResult
}

// ErrorCount sums the errors of all features.
func (r FeaturesResult) ErrorCount() int {
	n := 0
	for _, f := range r.Features {
		n += f.ErrorCount()
	}
	return n
}

// WarningCount sums the warnings of all features.
func (r FeaturesResult) WarningCount() int {
	n := 0
	for _, f := range r.Features {
		n += f.WarningCount()
	}
	return n
}

// DatasetResult is the validation report of one dataset.
type DatasetResult struct {
	// Name is the display name of the dataset.
	Name string
	// Path is the source file, empty for in-memory documents.
	Path string

	Features FeaturesResult
	Metadata Result
	Duration time.Duration
}

// ErrorCount returns the errors of all features plus the metadata.
func (r *DatasetResult) ErrorCount() int {
	return r.Features.ErrorCount() + r.Metadata.ErrorCount()
}

// WarningCount returns the warnings of all features plus the metadata.
func (r *DatasetResult) WarningCount() int {
	return r.Features.WarningCount() + r.Metadata.WarningCount()
}

// Passed reports whether the dataset has no errors.
func (r *DatasetResult) Passed() bool {
	return r.ErrorCount() == 0
}

// Status classifies the dataset outcome.
func (r *DatasetResult) Status() Status {
	switch {
	case r.ErrorCount() > 0:
		return StatusFailed
	case r.WarningCount() > 0:
		return StatusPassedWithWarnings
	default:
		return StatusPassed
	}
}
