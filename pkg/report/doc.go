/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package report prints validation results for humans.
//
// For each dataset the printer emits, in order: every feature's warnings
// followed by its errors (errors under a "NAME: title" header), the
// metadata warnings, the metadata errors, and one summary line:
//
//	BERLIN: PASSED without warnings or errors.
//	POTSDAM: PASSED with 2 warning(s).
//	HAMBURG: FAILED with 1 warning(s) and 3 error(s).
//
// Output is colorized only when enabled, see ColorEnabled.
package report
