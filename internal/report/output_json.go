package report

import (
	"encoding/json"
	"io"

	"github.com/yacobolo/ctrlstyle"
)

// JSONOutput is the export schema of an audit.
type JSONOutput struct {
	Version  string      `json:"version"`
	Summary  JSONSummary `json:"summary"`
	Issues   []JSONIssue `json:"issues"`
	Files    []string    `json:"files,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

// JSONSummary holds audit counts.
type JSONSummary struct {
	TotalIssues   int     `json:"total_issues"`
	Errors        int     `json:"errors"`
	Warnings      int     `json:"warnings"`
	Entries       int     `json:"entries"`
	RequiredKeys  int     `json:"required_keys"`
	MissingKeys   int     `json:"missing_keys"`
	Coverage      float64 `json:"coverage"`
	StatesChecked int     `json:"states_checked"`
	Truncated     int     `json:"truncated"`
}

// JSONIssue is one audit issue.
type JSONIssue struct {
	Source   string `json:"source"`
	Line     int    `json:"line,omitempty"`
	Token    string `json:"token,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep AuditReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(rep))
}

func buildJSONOutput(rep AuditReport) JSONOutput {
	result := rep.Result
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		issues[i] = jsonIssue(issue)
	}
	return JSONOutput{
		Version: "1.0",
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			Errors:        result.ErrorCount(),
			Warnings:      result.WarningCount(),
			Entries:       result.Entries,
			RequiredKeys:  result.RequiredKeys,
			MissingKeys:   result.MissingKeys,
			Coverage:      result.Coverage(),
			StatesChecked: result.StatesChecked,
			Truncated:     result.TruncatedCount,
		},
		Issues:   issues,
		Files:    rep.Files,
		Warnings: rep.Warnings,
	}
}

func jsonIssue(issue ctrlstyle.Issue) JSONIssue {
	return JSONIssue{
		Source:   issue.Pos.Filename,
		Line:     issue.Pos.Line,
		Token:    issue.Token,
		Severity: issue.Severity,
		Message:  issue.Text,
		Check:    issue.FromLinter,
	}
}
