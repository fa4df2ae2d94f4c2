/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/marketlint/pkg/dataset"
	cnserrors "github.com/NVIDIA/marketlint/pkg/errors"
	"github.com/NVIDIA/marketlint/pkg/issue"
)

const statusInvalidDocument = "invalid-document"

// ValidateDataset loads the dataset at path and validates it.
// Load failures are returned as a StructuredError with code
// INVALID_DOCUMENT wrapping the *dataset.DocumentError.
func (v *Validator) ValidateDataset(ctx context.Context, path string) (*DatasetResult, error) {
	doc, err := dataset.Load(path)
	if err != nil {
		datasetsValidatedTotal.WithLabelValues(statusInvalidDocument).Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidDocument, "failed to load dataset", err,
			map[string]any{"path": path})
	}
	return v.ValidateDocument(ctx, doc)
}

// ValidateDocument validates an already decoded dataset.
func (v *Validator) ValidateDocument(ctx context.Context, doc *dataset.Document) (*DatasetResult, error) {
	start := time.Now()

	features, err := doc.Features()
	if err != nil {
		datasetsValidatedTotal.WithLabelValues(statusInvalidDocument).Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidDocument, "dataset has no feature list", err,
			map[string]any{"dataset": doc.Name})
	}

	fr, err := v.ValidateFeatures(ctx, features)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "feature validation interrupted", err)
	}

	md, ok := doc.Metadata()
	mv := Undefined()
	if ok {
		mv = Defined(md)
	}

	res := &DatasetResult{
		Name:     doc.Name,
		Path:     doc.Path,
		Features: fr,
		Metadata: v.ValidateMetadata(mv),
		Duration: time.Since(start),
	}

	datasetValidationDuration.Observe(res.Duration.Seconds())
	datasetsValidatedTotal.WithLabelValues(string(res.Status())).Inc()
	issuesTotal.WithLabelValues(string(issue.SeverityError)).Add(float64(res.ErrorCount()))
	issuesTotal.WithLabelValues(string(issue.SeverityWarning)).Add(float64(res.WarningCount()))

	slog.Debug("dataset validated",
		"dataset", res.Name,
		"features", len(fr.Features),
		"errors", res.ErrorCount(),
		"warnings", res.WarningCount(),
		"status", res.Status(),
		"duration", res.Duration)

	return res, nil
}
