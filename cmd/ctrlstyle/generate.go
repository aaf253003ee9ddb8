package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/ctrlstyle"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Export the token table as Go source, YAML or CSS",
	Long: `Write the loaded token table in another form. The go format declares the
table as a literal so hosts can skip runtime decoding; yaml and css write the
merged token document.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("output", "", "Output file, - for stdout (default: -)")
	f.String("format", "", "Export format: go|yaml|css (default: go)")
	f.String("package", "", "Go package name (default: tokens)")
	f.String("var", "", "Go variable name (default: Table)")
	f.Bool("check", false, "Fail when the table is incomplete instead of exporting it")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ts, err := loadTokens()
	if err != nil {
		return err
	}
	if getBoolWithFallback("check", "generate.check", false) {
		if err := ctrlstyle.CheckComplete(ts.table); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	switch format := getStringWithFallback("format", "generate.format", "go"); format {
	case "go":
		err = ctrlstyle.GenerateGo(&buf, ts.table, ctrlstyle.GenerateConfig{
			PackageName: getStringWithFallback("package", "generate.package", "tokens"),
			VarName:     getStringWithFallback("var", "generate.var", "Table"),
			Source:      ts.source(),
		})
	case "yaml", "yml":
		err = ctrlstyle.EncodeYAML(&buf, ts.doc)
	case "css":
		err = ctrlstyle.EncodeCSS(&buf, ts.doc)
	default:
		return fmt.Errorf("unknown export format %q (want go|yaml|css)", format)
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	output := getStringWithFallback("output", "generate.output", "-")
	if output == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.WithFields(map[string]any{"output": output, "entries": ts.table.Len()}).Info("generated tokens")
	if !quiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d tokens)\n", output, ts.table.Len())
	}
	return nil
}
