package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/ctrlstyle"
	"github.com/yacobolo/ctrlstyle/internal/report"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Compose every variant and state of a family",
	Long: `Print the descriptor of every declared variant of a family in every
combination of the interaction flags it reads.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd)
	},
	RunE: runMatrix,
}

func init() {
	f := matrixCmd.Flags()
	f.String("family", "", "Control family: button|checkbox|radio|switch (default: button)")
	f.String("output-format", "", "Output format: markdown|json (default: markdown)")
}

func runMatrix(cmd *cobra.Command, _ []string) error {
	family, err := ctrlstyle.ParseFamily(getStringWithFallback("family", "matrix.family", "button"))
	if err != nil {
		return err
	}
	composer, err := buildComposer()
	if err != nil {
		return err
	}

	var ds []ctrlstyle.StyleDescriptor
	for _, v := range ctrlstyle.Variants(family) {
		ds = append(ds, composer.ComposeAll(v)...)
	}
	log.WithFields(map[string]any{"family": family.String(), "descriptors": len(ds)}).Debug("composed matrix")

	if quiet() {
		return nil
	}
	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("output-format", "matrix.output-format", "markdown"); format {
	case "markdown", "md":
		return report.WriteMatrixMarkdown(out, ds)
	case "json":
		return report.WriteJSONValue(out, ds)
	default:
		return fmt.Errorf("unknown output format %q (want markdown|json)", format)
	}
}
