/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks market datasets field by field.
//
// # Overview
//
// The validator walks a decoded dataset document and produces issues, each
// classified as an error (the dataset is invalid) or a warning (informational).
// Validation never stops at the first problem: every feature and the metadata
// block are checked completely and all findings are returned in one pass.
//
// # Rules
//
// Feature:
//   - the feature itself must be a non-empty object
//   - type must be "Feature"
//   - geometry must be a non-empty object with type "Point" and
//     coordinates [longitude, latitude], longitude in (-180, 180] and
//     latitude in (-90, 90]
//   - properties must be a non-empty object
//   - properties.title must be a non-empty string
//   - properties.location must be present; null or "" only warn
//   - exactly one of opening_hours and opening_hours_unclassified carries a
//     value; opening_hours is parsed and its advisory warnings are reported
//     as warnings of the feature
//
// Metadata:
//   - metadata and metadata.data_source must be non-empty objects
//   - data_source.title and data_source.url must be non-empty strings
//   - map_initialization (coordinates plus zoom_level in [1, 18]) is only
//     checked when enabled with WithMapInitialization
//
// # Usage
//
//	v := validator.New(
//	    validator.WithMapInitialization(true),
//	    validator.WithParallelism(4),
//	)
//	res, err := v.ValidateDataset(ctx, "data/berlin.json")
//	if err != nil {
//	    return err // unreadable or undecodable document
//	}
//	fmt.Println(res.Status(), res.ErrorCount(), res.WarningCount())
//
// # Results
//
// Results are values. FeatureResult, FeaturesResult and DatasetResult are
// built once and composed upward by concatenation; nothing is shared or
// mutated between validations.
package validator
