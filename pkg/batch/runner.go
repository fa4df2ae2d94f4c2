/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/marketlint/pkg/dataset"
	"github.com/NVIDIA/marketlint/pkg/report"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

// Runner validates all datasets of a directory.
type Runner struct {
	validator *validator.Validator
	printer   *report.Printer
	exclude   []string
	failFast  bool
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithPrinter prints every dataset report as it completes.
func WithPrinter(p *report.Printer) Option {
	return func(r *Runner) {
		r.printer = p
	}
}

// WithExclude sets the file name patterns skipped during discovery.
// Nothing is excluded by default.
func WithExclude(patterns []string) Option {
	return func(r *Runner) {
		r.exclude = patterns
	}
}

// WithFailFast stops the run at the first document that cannot be validated.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) {
		r.failFast = enabled
	}
}

// NewRunner creates a Runner using v for each dataset.
func NewRunner(v *validator.Validator, opts ...Option) *Runner {
	r := &Runner{
		validator: v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates every dataset in dir. The returned error covers only
// failures of the run itself (unreadable directory, cancellation, and
// document errors in fail-fast mode); dataset findings are in the Summary.
func (r *Runner) Run(ctx context.Context, dir string) (*Summary, error) {
	sum := &Summary{
		RunID:     uuid.New().String(),
		Directory: dir,
		StartedAt: time.Now().UTC(),
	}
	defer func() {
		sum.Duration = time.Since(sum.StartedAt)
	}()

	paths, err := dataset.Discover(dir, r.exclude)
	if err != nil {
		return sum, err
	}

	slog.Info("validating datasets", "run", sum.RunID, "dir", dir, "files", len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res, err := r.validator.ValidateDataset(ctx, path)
		if err != nil {
			var de *dataset.DocumentError
			if !errors.As(err, &de) || r.failFast {
				return sum, err
			}
			slog.Warn("dataset cannot be validated", "path", path, "error", err)
			sum.add(DatasetReport{
				Name:          dataset.DisplayName(path),
				Path:          path,
				Status:        StatusInvalidDocument,
				DocumentError: de.Error(),
			})
			if r.printer != nil {
				r.printer.PrintDocumentError(dataset.DisplayName(path), de)
			}
			continue
		}

		sum.add(NewDatasetReport(res))
		if r.printer != nil {
			r.printer.PrintDataset(res)
		}
	}

	if r.printer != nil {
		r.printer.PrintTotals(sum.Passed, sum.Failed)
	}

	slog.Info("validation complete",
		"run", sum.RunID,
		"passed", sum.Passed,
		"failed", sum.Failed,
		"errors", sum.Errors,
		"warnings", sum.Warnings)

	return sum, nil
}
