package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/ctrlstyle"
	"github.com/yacobolo/ctrlstyle/internal/report"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"lint", "audit"},
	Short:   "Audit a token table for gaps, stray entries and low contrast",
	Long: `Load the token table and check that every state key the resolver can pick
has a value, that no entry is unreachable, that dimensions are positive and
that foregrounds keep WCAG AA contrast over their fills.
Errors exit 1; with --strict any issue does.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd)
	},
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("min-contrast", 0, "Minimum text contrast ratio (default: 4.5)")
	f.Float64("min-graphic-contrast", 0, "Minimum glyph contrast ratio (default: 3.0)")
	f.Int("max-same-issues", 0, "Max issues to show per check (0=unlimited)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Bool("print-linter-name", true, "Show (check) suffix on issues")
}

// runValidate is shared between `ctrlstyle validate` and the bare root command.
func runValidate(cmd *cobra.Command, _ []string) error {
	format, err := report.DetermineOutputFormat(
		getStringWithFallback("output-format", "validate.output-format", ""), quiet())
	if err != nil {
		return err
	}

	ts, err := loadTokens()
	if err != nil {
		return err
	}

	result := ctrlstyle.Audit(ts.table, buildAuditConfig(ts.source()))
	log.WithFields(map[string]any{
		"errors":   result.ErrorCount(),
		"warnings": result.WarningCount(),
		"coverage": result.Coverage(),
	}).Debug("audit complete")

	if !quiet() {
		rep := report.AuditReport{Result: result, Files: ts.files, Warnings: ts.warnings}
		opts := report.Options{
			UseColors:       useColors(),
			PrintLinterName: getBoolWithFallback("print-linter-name", "validate.print-linter-name", true),
		}
		if err := report.WriteAudit(cmd.OutOrStdout(), rep, format, opts); err != nil {
			return err
		}
	}

	// Default mode fails on errors only; strict mode fails on any issue.
	strict := getBoolWithFallback("strict", "validate.strict", false)
	switch {
	case strict && len(result.Issues) > 0:
		return &exitError{code: 1, msg: quietMsg(fmt.Sprintf("strict mode: %d issues", len(result.Issues)))}
	case result.ErrorCount() > 0:
		return &exitError{code: 1, msg: quietMsg(fmt.Sprintf("%d errors", result.ErrorCount()))}
	}
	return nil
}

func quietMsg(msg string) string {
	if quiet() {
		return ""
	}
	return msg
}
