package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/ctrlstyle"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .ctrlstyle.yaml config file",
	Long: `Create a .ctrlstyle.yaml configuration file in the current directory with
sensible defaults. With --with-tokens, also write the embedded ELEVATE tokens
to tokens/elevate.yaml as a starting point for a custom table.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withTokens, _ := cmd.Flags().GetBool("with-tokens")
		out := cmd.OutOrStdout()

		if _, err := os.Stat(".ctrlstyle.yaml"); err == nil && !force {
			return fmt.Errorf(".ctrlstyle.yaml already exists (use --force to overwrite)")
		}
		if err := os.WriteFile(".ctrlstyle.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintln(out, "Created .ctrlstyle.yaml")

		if !withTokens {
			return nil
		}
		tokensPath := filepath.Join("tokens", "elevate.yaml")
		if _, err := os.Stat(tokensPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", tokensPath)
		}
		if err := os.MkdirAll("tokens", 0o755); err != nil {
			return fmt.Errorf("creating tokens directory: %w", err)
		}
		if err := os.WriteFile(tokensPath, ctrlstyle.DefaultTokens(), 0o644); err != nil {
			return fmt.Errorf("writing tokens: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n", tokensPath)
		return nil
	},
}

const defaultConfig = `# ctrlstyle configuration
# Precedence: flags > CTRLSTYLE_* environment > this file > defaults

verbose: false
log-level: warn   # debug | info | warn | error

# Token sources (omit to use the embedded ELEVATE tokens)
load:
  sources:
    - "tokens/**/*.yaml"
  exclude:
    - "**/drafts/**"

# Presentation constants
composer:
  scale-factor: 1.25
  disabled-opacity: 0.6

# Defaults for ctrlstyle compose
compose:
  family: button
  size: medium
  output-format: text   # text | json

# Audit settings
validate:
  strict: false
  min-contrast: 4.5
  min-graphic-contrast: 3.0
  max-same-issues: 0      # 0 = unlimited
  output-format: issues   # issues | summary | full | json | markdown
  print-linter-name: true

matrix:
  family: button
  output-format: markdown # markdown | json

# Export settings
generate:
  format: go              # go | yaml | css
  output: internal/tokens/tokens_gen.go
  package: tokens
  var: Table
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("with-tokens", false, "Also write the embedded tokens to tokens/elevate.yaml")
}
