/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults provides centralized default values for marketlint.
//
// Configuration loading, the CLI flags and the batch runner all read their
// fallback values from here so that the documented defaults stay in one
// place.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/marketlint/pkg/defaults"
//
//	v := validator.New(validator.WithParallelism(defaults.Parallelism))
//
// # Guidelines
//
//   - Parallelism: 1 keeps feature validation sequential; MaxParallelism
//     bounds what configuration may request
//   - ConfigFile: looked up in the working directory when no --config
//     flag or MARKETLINT_CONFIG is given
package defaults
