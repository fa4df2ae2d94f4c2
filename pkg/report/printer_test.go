/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/marketlint/pkg/issue"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name     string
		warnings int
		errors   int
		want     string
	}{
		{"clean", 0, 0, "BERLIN: PASSED without warnings or errors."},
		{"warnings", 2, 0, "BERLIN: PASSED with 2 warning(s)."},
		{"errors", 0, 1, "BERLIN: FAILED with 0 warning(s) and 1 error(s)."},
		{"both", 3, 4, "BERLIN: FAILED with 3 warning(s) and 4 error(s)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryLine("BERLIN", tt.warnings, tt.errors); got != tt.want {
				t.Errorf("SummaryLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintDataset_Order(t *testing.T) {
	res := &validator.DatasetResult{
		Name: "berlin",
		Features: validator.FeaturesResult{Features: []validator.FeatureResult{
			{Index: 0, Title: "Markt A"},
			{
				Index: 1,
				Title: "Markt B",
				Result: validator.Result{
					Errors:   []issue.Issue{issue.Custom("Field 'type' must be 'Feature' but is 'Point'.")},
					Warnings: []issue.Issue{issue.NullField("location")},
				},
			},
			{
				Index:  2,
				Result: validator.Result{Errors: []issue.Issue{issue.UndefinedField("title")}},
			},
		}},
		Metadata: validator.Result{
			Errors:   []issue.Issue{issue.EmptyField("url")},
			Warnings: []issue.Issue{issue.Custom("metadata warning")},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDataset(res)

	want := []string{
		"  Warning: Field 'location' cannot be null.",
		"BERLIN: Markt B",
		"  Error: Field 'type' must be 'Feature' but is 'Point'.",
		"BERLIN: feature 3",
		"  Error: Field 'title' cannot be undefined.",
		"  Warning: metadata warning",
		"BERLIN: metadata",
		"  Error: Field 'url' cannot be empty.",
		"BERLIN: FAILED with 2 warning(s) and 3 error(s).",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestPrintDataset_Passed(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDataset(&validator.DatasetResult{Name: "potsdam"})
	assert.Equal(t, "POTSDAM: PASSED without warnings or errors.\n", buf.String())
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, WithColor(true))
	p.PrintTotals(1, 0)
	assert.True(t, strings.HasPrefix(buf.String(), ansiBold+ansiGreen))
	assert.Contains(t, buf.String(), ansiReset)

	buf.Reset()
	NewPrinter(&buf).PrintTotals(1, 2)
	assert.Equal(t, "1 dataset(s) passed, 2 failed.\n", buf.String())
}

func TestPrintDocumentError(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDocumentError("broken", errors.New("unexpected end of JSON input"))
	assert.Equal(t, "BROKEN: FAILED, document cannot be validated: unexpected end of JSON input\n", buf.String())
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(nil, false))
	assert.False(t, ColorEnabled(os.Stdout, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout, false))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	os.Unsetenv("NO_COLOR")
	assert.False(t, ColorEnabled(f, false), "regular files are not terminals")
}
