/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/NVIDIA/marketlint/pkg/issue"
)

const maxSuggestionDistance = 2

var knownProperties = []string{
	"title",
	"location",
	fieldOpeningHours,
	fieldOpeningHoursUnclassified,
}

// suggestFields warns about property keys that are close to, but not equal
// to, a known property. Keys are visited in sorted order so output is stable.
func suggestFields(props map[string]any) []issue.Issue {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []issue.Issue
	for _, k := range keys {
		if isKnownProperty(k) {
			continue
		}
		if known, ok := closestProperty(k); ok {
			warnings = append(warnings, issue.CustomField(k,
				fmt.Sprintf("Field '%s' is not a known property. Did you mean '%s'?", k, known)))
		}
	}
	return warnings
}

func isKnownProperty(key string) bool {
	for _, k := range knownProperties {
		if k == key {
			return true
		}
	}
	return false
}

func closestProperty(key string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, k := range knownProperties {
		if d := levenshtein.ComputeDistance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}
