/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/NVIDIA/marketlint/pkg/openinghours"
)

// HoursChecker validates an opening_hours expression.
// It returns advisory warnings for expressions that parse, or an error
// describing why the expression is invalid.
type HoursChecker interface {
	Check(expr string) ([]string, error)
}

// Validator validates market datasets.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	hours         HoursChecker
	mapInit       bool
	suggestFields bool
	parallelism   int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithHoursChecker replaces the opening_hours grammar.
func WithHoursChecker(c HoursChecker) Option {
	return func(v *Validator) {
		if c != nil {
			v.hours = c
		}
	}
}

// WithMapInitialization enables checking metadata.map_initialization
// as part of ValidateMetadata.
func WithMapInitialization(enabled bool) Option {
	return func(v *Validator) {
		v.mapInit = enabled
	}
}

// WithFieldSuggestions enables warnings for property keys that look like
// misspellings of known keys.
func WithFieldSuggestions(enabled bool) Option {
	return func(v *Validator) {
		v.suggestFields = enabled
	}
}

// WithParallelism sets how many features are validated concurrently.
// Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.parallelism = n
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		hours:       openinghours.Checker{},
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// MapInitializationEnabled reports whether map_initialization is checked
// by ValidateMetadata.
func (v *Validator) MapInitializationEnabled() bool {
	return v.mapInit
}
