/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"reflect"
	"testing"
)

func TestFilterOut(t *testing.T) {
	names := []string{"berlin.json", "potsdam.json", ".DS_Store", "README.md", "berlin.json.bak", "hamburg.yaml"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns",
			patterns: nil,
			want:     names,
		},
		{
			name:     "exact match",
			patterns: []string{"README.md"},
			want:     []string{"berlin.json", "potsdam.json", ".DS_Store", "berlin.json.bak", "hamburg.yaml"},
		},
		{
			name:     "prefix wildcard",
			patterns: []string{".*"},
			want:     []string{"berlin.json", "potsdam.json", "README.md", "berlin.json.bak", "hamburg.yaml"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*.bak", "*.md"},
			want:     []string{"berlin.json", "potsdam.json", ".DS_Store", "hamburg.yaml"},
		},
		{
			name:     "contains wildcard",
			patterns: []string{"*lin*"},
			want:     []string{"potsdam.json", ".DS_Store", "README.md", "hamburg.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOut(names, tt.patterns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterOut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesAny(t *testing.T) {
	if !MatchesAny(".hidden", []string{"*.json", ".*"}) {
		t.Error("expected .hidden to match .*")
	}
	if MatchesAny("berlin.json", []string{"*.yaml", "potsdam*"}) {
		t.Error("expected berlin.json not to match")
	}
}
