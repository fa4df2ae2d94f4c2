/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"time"

	"github.com/NVIDIA/marketlint/pkg/issue"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

// Process exit codes.
const (
	ExitPassed = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// StatusInvalidDocument marks a dataset that could not be validated.
const StatusInvalidDocument validator.Status = "invalid-document"

// Summary is the aggregate outcome of one batch run.
type Summary struct {
	RunID     string          `json:"runId" yaml:"runId"`
	Directory string          `json:"directory" yaml:"directory"`
	StartedAt time.Time       `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration   `json:"duration" yaml:"duration"`
	Datasets  []DatasetReport `json:"datasets" yaml:"datasets"`

	Passed         int `json:"passed" yaml:"passed"`
	Failed         int `json:"failed" yaml:"failed"`
	Errors         int `json:"errors" yaml:"errors"`
	Warnings       int `json:"warnings" yaml:"warnings"`
	DocumentErrors int `json:"documentErrors" yaml:"documentErrors"`
}

// ExitCode returns ExitFailed when any dataset failed, ExitPassed otherwise.
// Warnings never affect the exit code.
func (s *Summary) ExitCode() int {
	if s.Failed > 0 {
		return ExitFailed
	}
	return ExitPassed
}

// DatasetReport is the serializable outcome of one dataset.
type DatasetReport struct {
	Name     string           `json:"name" yaml:"name"`
	Path     string           `json:"path" yaml:"path"`
	Status   validator.Status `json:"status" yaml:"status"`
	Errors   int              `json:"errors" yaml:"errors"`
	Warnings int              `json:"warnings" yaml:"warnings"`

	Features []FeatureReport `json:"features,omitempty" yaml:"features,omitempty"`
	Metadata []issue.Finding `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// DocumentError is set when the file could not be validated at all.
	DocumentError string `json:"documentError,omitempty" yaml:"documentError,omitempty"`
}

// FeatureReport lists the findings of one feature. Features without
// findings are not reported.
type FeatureReport struct {
	Index    int             `json:"index" yaml:"index"`
	Title    string          `json:"title,omitempty" yaml:"title,omitempty"`
	Findings []issue.Finding `json:"findings" yaml:"findings"`
}

// NewDatasetReport converts a validation result into its serializable form.
func NewDatasetReport(res *validator.DatasetResult) DatasetReport {
	dr := DatasetReport{
		Name:     res.Name,
		Path:     res.Path,
		Status:   res.Status(),
		Errors:   res.ErrorCount(),
		Warnings: res.WarningCount(),
		Metadata: findings(res.Metadata),
	}
	for _, f := range res.Features.Features {
		if f.ErrorCount()+f.WarningCount() == 0 {
			continue
		}
		dr.Features = append(dr.Features, FeatureReport{
			Index:    f.Index,
			Title:    f.Title,
			Findings: findings(f.Result),
		})
	}
	if len(dr.Metadata) == 0 {
		dr.Metadata = nil
	}
	return dr
}

// findings lists warnings before errors, matching the console order.
func findings(r validator.Result) []issue.Finding {
	return append(
		issue.Findings(issue.SeverityWarning, r.Warnings),
		issue.Findings(issue.SeverityError, r.Errors)...,
	)
}

func (s *Summary) add(dr DatasetReport) {
	s.Datasets = append(s.Datasets, dr)
	s.Errors += dr.Errors
	s.Warnings += dr.Warnings
	if dr.DocumentError != "" {
		s.DocumentErrors++
	}
	if dr.Status == validator.StatusFailed || dr.Status == StatusInvalidDocument {
		s.Failed++
		return
	}
	s.Passed++
}
