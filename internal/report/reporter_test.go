package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/ctrlstyle"
)

func sampleReport() AuditReport {
	issues := []ctrlstyle.Issue{
		{
			FromLinter: ctrlstyle.CheckCompleteness,
			Text:       `missing token width for state key "static"`,
			Severity:   ctrlstyle.SeverityError,
			Pos:        ctrlstyle.IssuePos{Filename: "tokens/elevate.yaml"},
			Token:      "radio/small:static:width",
		},
		{
			FromLinter: ctrlstyle.CheckContrast,
			Text:       "text #777777 over background #ffffff has contrast 4.48:1 | low",
			Severity:   ctrlstyle.SeverityWarning,
			Pos:        ctrlstyle.IssuePos{Filename: "tokens/elevate.yaml"},
			Token:      "button/subtle/medium/default:default:text",
		},
	}
	return AuditReport{
		Result: &ctrlstyle.AuditResult{
			Issues: issues,
			IssuesByCheck: map[string][]ctrlstyle.Issue{
				ctrlstyle.CheckCompleteness: issues[:1],
				ctrlstyle.CheckContrast:     issues[1:],
			},
			Entries:      10,
			RequiredKeys: 4,
			MissingKeys:  1,
		},
		Files:    []string{"tokens/elevate.yaml"},
		Warnings: []string{"tokens/extra.yaml overrides radio.sizes.small.width: 16 -> 18"},
	}
}

func TestWriteAuditIssues(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAudit(&buf, sampleReport(), OutputIssues, Options{PrintLinterName: true})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `tokens/elevate.yaml: radio/small:static:width: error missing token width for state key "static" (completeness)`)
	assert.Contains(t, out, "button/subtle/medium/default:default:text: warning")
	assert.Contains(t, out, "2 issues (1 error, 1 warning):")
	assert.Contains(t, out, "* completeness: 1\n* contrast: 1\n")
	assert.Contains(t, out, "Hint:")
}

func TestWriteAuditIssuesWithoutLinterName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, sampleReport(), OutputIssues, Options{}))
	assert.NotContains(t, buf.String(), "(completeness)")
}

func TestWriteAuditClean(t *testing.T) {
	rep := AuditReport{Result: &ctrlstyle.AuditResult{IssuesByCheck: map[string][]ctrlstyle.Issue{}}}

	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, rep, OutputIssues, Options{}))
	assert.Equal(t, "\n0 issues.\n", buf.String())
}

func TestWriteAuditSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, sampleReport(), OutputSummary, Options{}))
	out := buf.String()

	assert.Contains(t, out, "Token Table Statistics")
	assert.Contains(t, out, "Missing Keys:    1\n")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "• tokens/extra.yaml overrides radio.sizes.small.width: 16 -> 18")
	assert.NotContains(t, out, "(completeness)")
}

func TestWriteAuditFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, sampleReport(), OutputFull, Options{PrintLinterName: true}))
	out := buf.String()
	assert.Contains(t, out, "(completeness)")
	assert.Contains(t, out, "Coverage")
}

func TestWriteAuditJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, sampleReport(), OutputJSON, Options{}))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, 2, out.Summary.TotalIssues)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 1, out.Summary.Warnings)
	assert.InDelta(t, 75.0, out.Summary.Coverage, 1e-9)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "completeness", out.Issues[0].Check)
	assert.Equal(t, "radio/small:static:width", out.Issues[0].Token)
	assert.Equal(t, []string{"tokens/elevate.yaml"}, out.Files)
}

func TestWriteAuditMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAudit(&buf, sampleReport(), OutputMarkdown, Options{}))
	out := buf.String()

	assert.Contains(t, out, "# Token Audit\n")
	assert.Contains(t, out, "| Coverage | 75.0% |")
	assert.Contains(t, out, "| error | completeness | `radio/small:static:width` |")
	assert.Contains(t, out, `4.48:1 \| low`)
	assert.Contains(t, out, "## Warnings")
}

func TestWriteAuditUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteAudit(&buf, sampleReport(), OutputFormat("xml"), Options{}))
}
