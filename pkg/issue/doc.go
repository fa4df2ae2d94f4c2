/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package issue models a single validation finding.
//
// # Overview
//
// An Issue describes what is wrong with one field of a dataset and renders
// itself as a human-readable message. Issues do not know whether they are
// errors or warnings; the validator that creates them decides the Severity.
//
// # Variants
//
//	UndefinedField(name)                   Field 'name' cannot be undefined.
//	NullField(name)                        Field 'name' cannot be null.
//	EmptyField(name)                       Field 'name' cannot be empty.
//	EmptyObjectField(name)                 Field 'name' cannot be an empty object.
//	RangeExceedance(name, min, max, v)     Field 'name' exceeds valid range of [min:max]. Actual value is v.
//	Custom(message)                        message
//
// Values are immutable once constructed. Numbers render in their shortest
// round-trip form, so 180.0001 stays 180.0001 and 18 stays 18.
//
// # Findings
//
// NewFinding projects an Issue and its Severity into a flat, serializable
// Finding used by the JSON and YAML reports.
package issue
