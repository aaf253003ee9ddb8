package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/ctrlstyle"
)

// AuditReport is an audit together with the load that produced its table.
type AuditReport struct {
	Result   *ctrlstyle.AuditResult
	Files    []string
	Warnings []string
}

// Options configures the issue reporter.
type Options struct {
	UseColors       bool
	PrintLinterName bool
}

// Reporter prints audit issues in golangci-lint style.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{w: w, useColors: opts.UseColors, printLinterName: opts.PrintLinterName}
}

// PrintIssues writes one line per issue:
//
//	tokens: button/primary/medium/default:pressed:text: message (contrast)
func (r *Reporter) PrintIssues(issues []ctrlstyle.Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue ctrlstyle.Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:", issue.Pos.Filename, issue.Pos.Line)
	}
	if issue.Token != "" {
		location += " " + issue.Token + ":"
	}

	severity := StyleYellow
	if issue.Severity == ctrlstyle.SeverityError {
		severity = StyleRed
	}

	suffix := ""
	if r.printLinterName {
		suffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}
	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(severity, issue.Severity, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, suffix, r.useColors))
}

// PrintSummary writes the issue count breakdown.
func (r *Reporter) PrintSummary(result *ctrlstyle.AuditResult) {
	total := len(result.Issues)
	errors, warnings := result.ErrorCount(), result.WarningCount()

	fmt.Fprintln(r.w, "")
	if total == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	head := pluralizeCount(total, "issue", "issues")
	if errors > 0 && warnings > 0 {
		head = fmt.Sprintf("%s (%s, %s", head,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
		if result.TruncatedCount > 0 {
			head += fmt.Sprintf("; %s truncated", pluralizeCount(result.TruncatedCount, "issue", "issues"))
		}
		head += ")"
	} else if result.TruncatedCount > 0 {
		head = fmt.Sprintf("%s (%s truncated)", head, pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}
	fmt.Fprintf(r.w, "%s:\n", head)

	checks := make([]string, 0, len(result.IssuesByCheck))
	for check := range result.IssuesByCheck {
		checks = append(checks, check)
	}
	sort.Strings(checks)
	for _, check := range checks {
		fmt.Fprintf(r.w, "* %s: %d\n", check, len(result.IssuesByCheck[check]))
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
}

// WriteAudit writes rep in the given format.
func WriteAudit(w io.Writer, rep AuditReport, format OutputFormat, opts Options) error {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(rep.Result.Issues)
		reporter.PrintSummary(rep.Result)
	case OutputSummary:
		verbose := NewVerboseReporter(w, opts.UseColors)
		verbose.PrintStatistics(rep)
		verbose.PrintCoverage(rep.Result)
		verbose.PrintWarnings(rep.Warnings)
	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(rep.Result.Issues)
		reporter.PrintSummary(rep.Result)
		verbose := NewVerboseReporter(w, opts.UseColors)
		verbose.PrintStatistics(rep)
		verbose.PrintCoverage(rep.Result)
		verbose.PrintWarnings(rep.Warnings)
	case OutputJSON:
		return WriteJSON(w, rep)
	case OutputMarkdown:
		return WriteMarkdown(w, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
