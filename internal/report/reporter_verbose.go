package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/ctrlstyle"
)

// VerboseReporter prints audit statistics and load warnings.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{w: w, useColors: useColors}
}

// PrintStatistics outputs table and audit counts.
func (r *VerboseReporter) PrintStatistics(rep AuditReport) {
	result := rep.Result
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Table Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	fmt.Fprintf(r.w, "Source Files:    %d\n", len(rep.Files))
	fmt.Fprintf(r.w, "Table Entries:   %d\n", result.Entries)
	fmt.Fprintf(r.w, "Required Keys:   %d\n", result.RequiredKeys)
	fmt.Fprintf(r.w, "Missing Keys:    %d\n", result.MissingKeys)
	fmt.Fprintf(r.w, "States Checked:  %d\n", result.StatesChecked)
	fmt.Fprintf(r.w, "Errors:          %d\n", result.ErrorCount())
	fmt.Fprintf(r.w, "Warnings:        %d\n", result.WarningCount())
}

// PrintCoverage shows how many required keys the table satisfies.
func (r *VerboseReporter) PrintCoverage(result *ctrlstyle.AuditResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------")
	fmt.Fprintln(r.w, progressBar(result.Coverage()))
}

// PrintWarnings lists load warnings such as overridden tokens.
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func progressBar(percentage float64) string {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), percentage)
}
