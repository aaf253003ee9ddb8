package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes rep as a Markdown report.
func WriteMarkdown(w io.Writer, rep AuditReport) error {
	result := rep.Result
	var b strings.Builder

	b.WriteString("# Token Audit\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Table entries | %d |\n", result.Entries)
	fmt.Fprintf(&b, "| Required keys | %d |\n", result.RequiredKeys)
	fmt.Fprintf(&b, "| Coverage | %.1f%% |\n", result.Coverage())
	fmt.Fprintf(&b, "| Errors | %d |\n", result.ErrorCount())
	fmt.Fprintf(&b, "| Warnings | %d |\n", result.WarningCount())

	if len(result.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		b.WriteString("| Severity | Check | Token | Message |\n|---|---|---|---|\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n",
				issue.Severity, issue.FromLinter, issue.Token, escapeCell(issue.Text))
		}
	}

	if len(rep.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warning := range rep.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
