/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/NVIDIA/marketlint/pkg/geo"
	"github.com/NVIDIA/marketlint/pkg/issue"
)

// ValidateMetadata validates the dataset metadata block.
// map_initialization is included only when enabled with WithMapInitialization.
func (v *Validator) ValidateMetadata(md Value) Result {
	metadata, problem := asObject("metadata", md)
	if problem != nil {
		return errorResult(problem)
	}

	res := validateDataSource(metadata)
	if v.mapInit {
		res = res.Merge(v.ValidateMapInitialization(lookup(metadata, "map_initialization")))
	}
	return res
}

func validateDataSource(metadata map[string]any) Result {
	source, problem := objectField(metadata, "data_source")
	if problem != nil {
		return errorResult(problem)
	}

	errs := requireString(source, "title")
	errs = append(errs, requireString(source, "url")...)
	return Result{Errors: errs}
}

// ValidateMapInitialization validates the default map view: coordinates as
// for a Point geometry and a zoom_level in [1, 18].
func (v *Validator) ValidateMapInitialization(mi Value) Result {
	view, problem := asObject("map_initialization", mi)
	if problem != nil {
		return errorResult(problem)
	}

	errs := validateCoordinates(view)
	errs = append(errs, validateZoomLevel(view)...)
	return Result{Errors: errs}
}

func validateZoomLevel(obj map[string]any) []issue.Issue {
	const name = "zoom_level"

	v := lookup(obj, name)
	switch {
	case !v.Defined:
		return []issue.Issue{issue.UndefinedField(name)}
	case v.Raw == nil:
		return []issue.Issue{issue.NullField(name)}
	}

	z, ok := toNumber(v.Raw)
	if !ok {
		return []issue.Issue{notANumber(name, v.Raw)}
	}
	if !geo.ZoomLevelInRange(z) {
		return []issue.Issue{issue.RangeExceedance(name, geo.MinZoomLevel, geo.MaxZoomLevel, z)}
	}
	return nil
}
