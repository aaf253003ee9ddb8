// Package report renders audit results and style descriptors for the terminal,
// JSON and Markdown.
package report

import "fmt"

// OutputFormat selects how validate prints an audit.
type OutputFormat string

const (
	// OutputIssues prints one line per issue followed by a count summary.
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints statistics and load warnings only.
	OutputSummary OutputFormat = "summary"
	// OutputFull prints issues, statistics and warnings.
	OutputFull OutputFormat = "full"
	// OutputJSON exports the audit as JSON.
	OutputJSON OutputFormat = "json"
	// OutputMarkdown writes a Markdown report.
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat maps a flag value to an OutputFormat. quiet wins and
// an empty flag selects issues.
func DetermineOutputFormat(formatFlag string, quiet bool) (OutputFormat, error) {
	if quiet {
		return OutputIssues, nil
	}
	switch formatFlag {
	case "", "issues":
		return OutputIssues, nil
	case "summary":
		return OutputSummary, nil
	case "full":
		return OutputFull, nil
	case "json":
		return OutputJSON, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	}
	return "", fmt.Errorf("unknown output format %q (want issues|summary|full|json|markdown)", formatFlag)
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
