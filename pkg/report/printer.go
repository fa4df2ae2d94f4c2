/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/marketlint/pkg/issue"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// ColorEnabled reports whether output written to f should be colorized.
// NO_COLOR (any value) and noColor both disable colors.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes human readable validation reports.
type Printer struct {
	w     io.Writer
	color bool
	upper cases.Caser
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithColor enables ANSI colors.
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.color = enabled
	}
}

// NewPrinter returns a Printer writing to w. Colors are off unless enabled
// with WithColor.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		w:     w,
		upper: cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintDataset prints the issues of one dataset followed by its summary line.
func (p *Printer) PrintDataset(res *validator.DatasetResult) {
	name := p.upper.String(res.Name)

	for _, f := range res.Features.Features {
		p.printWarnings(f.Warnings)
		if f.ErrorCount() > 0 {
			p.printHeader(name, featureLabel(f))
			p.printErrors(f.Errors)
		}
	}

	p.printWarnings(res.Metadata.Warnings)
	if res.Metadata.ErrorCount() > 0 {
		p.printHeader(name, "metadata")
		p.printErrors(res.Metadata.Errors)
	}

	p.println(p.summaryColor(res), SummaryLine(name, res.WarningCount(), res.ErrorCount()))
}

// PrintDocumentError reports a dataset that could not be validated.
func (p *Printer) PrintDocumentError(name string, err error) {
	name = p.upper.String(name)
	p.println(ansiRed, fmt.Sprintf("%s: FAILED, document cannot be validated: %v", name, err))
}

// PrintTotals prints the final line of a batch run.
func (p *Printer) PrintTotals(passed, failed int) {
	color := ansiGreen
	if failed > 0 {
		color = ansiRed
	}
	p.println(ansiBold+color, fmt.Sprintf("%d dataset(s) passed, %d failed.", passed, failed))
}

// SummaryLine renders the one-line outcome of a dataset.
func SummaryLine(name string, warnings, errors int) string {
	switch {
	case errors > 0:
		return fmt.Sprintf("%s: FAILED with %d warning(s) and %d error(s).", name, warnings, errors)
	case warnings > 0:
		return fmt.Sprintf("%s: PASSED with %d warning(s).", name, warnings)
	default:
		return fmt.Sprintf("%s: PASSED without warnings or errors.", name)
	}
}

func featureLabel(f validator.FeatureResult) string {
	if f.Title != "" {
		return f.Title
	}
	return fmt.Sprintf("feature %d", f.Index+1)
}

func (p *Printer) summaryColor(res *validator.DatasetResult) string {
	switch res.Status() {
	case validator.StatusFailed:
		return ansiRed
	case validator.StatusPassedWithWarnings:
		return ansiYellow
	default:
		return ansiGreen
	}
}

func (p *Printer) printHeader(name, label string) {
	p.println(ansiBold+ansiCyan, fmt.Sprintf("%s: %s", name, label))
}

func (p *Printer) printWarnings(issues []issue.Issue) {
	for _, i := range issues {
		p.println(ansiYellow, "  Warning: "+i.Message())
	}
}

func (p *Printer) printErrors(issues []issue.Issue) {
	for _, i := range issues {
		p.println(ansiRed, "  Error: "+i.Message())
	}
}

func (p *Printer) println(color, s string) {
	if p.color {
		fmt.Fprintln(p.w, color+s+ansiReset)
		return
	}
	fmt.Fprintln(p.w, s)
}
