/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"github.com/NVIDIA/marketlint/pkg/dataset"
	"github.com/NVIDIA/marketlint/pkg/geo"
	"github.com/NVIDIA/marketlint/pkg/issue"
)

const (
	featureType  = "Feature"
	geometryType = "Point"

	fieldOpeningHours             = "opening_hours"
	fieldOpeningHoursUnclassified = "opening_hours_unclassified"
)

// ValidateFeature validates the feature at position index.
// A missing feature yields a single error; otherwise geometry, properties
// and type are always all checked.
func (v *Validator) ValidateFeature(index int, raw any) FeatureResult {
	res := FeatureResult{Index: index}

	feature, problem := asObject("feature", Defined(raw))
	if problem != nil {
		res.Result = errorResult(problem)
		return res
	}

	if props, ok := feature["properties"].(map[string]any); ok {
		res.Title, _ = stringField(props, "title")
	}

	res.Result = v.validateGeometry(feature).
		Merge(v.validateProperties(feature)).
		Merge(Result{Errors: validateDiscriminator(feature, featureType)})
	return res
}

func (v *Validator) validateGeometry(feature map[string]any) Result {
	geometry, problem := objectField(feature, "geometry")
	if problem != nil {
		return errorResult(problem)
	}

	errs := validateCoordinates(geometry)
	errs = append(errs, validateDiscriminator(geometry, geometryType)...)
	return Result{Errors: errs}
}

// validateCoordinates checks obj.coordinates is [longitude, latitude] within range.
func validateCoordinates(obj map[string]any) []issue.Issue {
	const name = "coordinates"

	v := lookup(obj, name)
	switch {
	case !v.Defined:
		return []issue.Issue{issue.UndefinedField(name)}
	case v.Raw == nil:
		return []issue.Issue{issue.NullField(name)}
	}

	coords, ok := v.Raw.([]any)
	if !ok {
		return []issue.Issue{issue.CustomField(name,
			fmt.Sprintf("Field '%s' must be an array [longitude, latitude], got %s.", name, dataset.TypeName(v.Raw)))}
	}
	if len(coords) != 2 {
		return []issue.Issue{issue.CustomField(name,
			fmt.Sprintf("Field '%s' must contain exactly 2 values [longitude, latitude], got %d.", name, len(coords)))}
	}

	var errs []issue.Issue
	if lon, ok := toNumber(coords[0]); !ok {
		errs = append(errs, notANumber("longitude", coords[0]))
	} else if !geo.LongitudeInRange(lon) {
		errs = append(errs, issue.RangeExceedance("longitude", geo.MinLongitude, geo.MaxLongitude, lon))
	}

	if lat, ok := toNumber(coords[1]); !ok {
		errs = append(errs, notANumber("latitude", coords[1]))
	} else if !geo.LatitudeInRange(lat) {
		errs = append(errs, issue.RangeExceedance("latitude", geo.MinLatitude, geo.MaxLatitude, lat))
	}
	return errs
}

// validateDiscriminator checks obj.type equals want.
func validateDiscriminator(obj map[string]any, want string) []issue.Issue {
	v := lookup(obj, "type")
	switch {
	case !v.Defined:
		return []issue.Issue{issue.UndefinedField("type")}
	case v.Raw == nil:
		return []issue.Issue{issue.NullField("type")}
	}

	got, ok := v.Raw.(string)
	if !ok {
		return []issue.Issue{issue.CustomField("type",
			fmt.Sprintf("Field 'type' must be '%s' but is %s.", want, dataset.TypeName(v.Raw)))}
	}
	if got != want {
		return []issue.Issue{issue.CustomField("type",
			fmt.Sprintf("Field 'type' must be '%s' but is '%s'.", want, got))}
	}
	return nil
}

func (v *Validator) validateProperties(feature map[string]any) Result {
	props, problem := objectField(feature, "properties")
	if problem != nil {
		return errorResult(problem)
	}

	res := Result{Errors: requireString(props, "title")}.
		Merge(validateLocation(props)).
		Merge(v.validateOpeningHours(props))

	if v.suggestFields {
		res = res.Merge(Result{Warnings: suggestFields(props)})
	}
	return res
}

// validateLocation requires the key but only warns about null or empty values.
func validateLocation(props map[string]any) Result {
	const name = "location"

	v := lookup(props, name)
	switch {
	case !v.Defined:
		return errorResult(issue.UndefinedField(name))
	case v.Raw == nil:
		return Result{Warnings: []issue.Issue{issue.NullField(name)}}
	}

	s, ok := v.Raw.(string)
	if !ok {
		return errorResult(notAString(name, v.Raw))
	}
	if s == "" {
		return Result{Warnings: []issue.Issue{issue.EmptyField(name)}}
	}
	return Result{}
}

// validateOpeningHours enforces that exactly one of opening_hours and
// opening_hours_unclassified carries a value.
func (v *Validator) validateOpeningHours(props map[string]any) Result {
	hours := lookup(props, fieldOpeningHours)
	unclassified := lookup(props, fieldOpeningHoursUnclassified)

	if !hours.Defined {
		return errorResult(issue.UndefinedField(fieldOpeningHours))
	}

	if hours.IsNull() {
		// opening_hours is null, so the unclassified text has to carry the hours.
		switch {
		case !unclassified.Defined:
			return errorResult(issue.UndefinedField(fieldOpeningHoursUnclassified))
		case unclassified.IsNull():
			return errorResult(issue.NullField(fieldOpeningHoursUnclassified))
		}
		s, ok := unclassified.Raw.(string)
		if !ok {
			return errorResult(notAString(fieldOpeningHoursUnclassified, unclassified.Raw))
		}
		if s == "" {
			return errorResult(issue.EmptyField(fieldOpeningHoursUnclassified))
		}
		return Result{}
	}

	var res Result
	expr, ok := hours.Raw.(string)
	switch {
	case !ok:
		res.Errors = append(res.Errors, notAString(fieldOpeningHours, hours.Raw))
	case expr == "":
		res.Errors = append(res.Errors, issue.EmptyField(fieldOpeningHours))
	default:
		warnings, err := v.hours.Check(expr)
		if err != nil {
			res.Errors = append(res.Errors, issue.CustomField(fieldOpeningHours,
				fmt.Sprintf("Field '%s' has an invalid value '%s': %v.", fieldOpeningHours, expr, err)))
		}
		for _, w := range warnings {
			res.Warnings = append(res.Warnings, issue.CustomField(fieldOpeningHours,
				fmt.Sprintf("Field '%s' value '%s': %s", fieldOpeningHours, expr, w)))
		}
	}

	if unclassified.Defined && !unclassified.IsNull() {
		res.Errors = append(res.Errors, issue.CustomField(fieldOpeningHoursUnclassified,
			fmt.Sprintf("Field '%s' must be null when '%s' is set.", fieldOpeningHoursUnclassified, fieldOpeningHours)))
	}
	return res
}
