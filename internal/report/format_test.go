package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		quiet   bool
		want    OutputFormat
		wantErr bool
	}{
		{name: "empty", flag: "", want: OutputIssues},
		{name: "issues", flag: "issues", want: OutputIssues},
		{name: "summary", flag: "summary", want: OutputSummary},
		{name: "full", flag: "full", want: OutputFull},
		{name: "json", flag: "json", want: OutputJSON},
		{name: "md alias", flag: "md", want: OutputMarkdown},
		{name: "quiet wins", flag: "json", quiet: true, want: OutputIssues},
		{name: "unknown", flag: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetermineOutputFormat(tt.flag, tt.quiet)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "3 errors", pluralizeCount(3, "error", "errors"))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[████████████████████] 100.0%", progressBar(100))
	assert.Equal(t, "[██████████░░░░░░░░░░] 50.0%", progressBar(50))
	assert.Equal(t, "[░░░░░░░░░░░░░░░░░░░░] 0.0%", progressBar(0))
	assert.Equal(t, "[████████████████████] 150.0%", progressBar(150))
}

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
	assert.Empty(t, Swatch("#0b5cdf", false))
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("NO_COLOR", "1")
	assert.True(t, ShouldUseColors(true))
	assert.False(t, ShouldUseColors(false))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}
