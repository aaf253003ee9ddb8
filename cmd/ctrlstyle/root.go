package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ctrlstyle",
	Short: "Resolve and audit design tokens for interactive controls",
	Long: `Compose style descriptors for buttons, checkboxes, radios and switches
from a design token table, audit token tables for gaps and contrast problems,
and export them as Go source, YAML or CSS custom properties.`,
	// Default behavior: validate the configured token table.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := prepare(cmd); err != nil {
			return err
		}
		return runValidate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".ctrlstyle.yaml", "Config file path")
	pf.String("log-level", "", "Log level: debug|info|warn|error (default: warn)")
	pf.StringSlice("tokens", nil, "Glob patterns of token files (default: embedded ELEVATE tokens)")
	pf.StringSlice("exclude", nil, "Gitignore-style patterns of token files to skip")
	pf.Float64("scale-factor", 0, "Typography scale factor (default: 1.25)")
	pf.Float64("disabled-opacity", 0, "Opacity of disabled controls (default: 0.6)")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
