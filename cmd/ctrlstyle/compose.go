package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/ctrlstyle"
	"github.com/yacobolo/ctrlstyle/internal/report"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose the style descriptor of one control render",
	Long: `Resolve every visual attribute of a control variant in an interaction state.
States are given as flag names: pressed, selected, checked, indeterminate,
disabled, invalid, on. Flags the family does not read are ignored.`,
	Example: `  ctrlstyle compose --family button --tone danger --state pressed
  ctrlstyle compose --family checkbox --state checked,invalid --explain`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return prepare(cmd)
	},
	RunE: runCompose,
}

func init() {
	f := composeCmd.Flags()
	f.String("family", "", "Control family: button|checkbox|radio|switch (default: button)")
	f.String("tone", "", "Tone (button: primary, secondary, ...; switch: primary|success)")
	f.String("size", "", "Size: small|medium|large (default: medium)")
	f.String("shape", "", "Button shape: default|pill")
	f.StringSlice("state", nil, "Interaction flags, comma separated")
	f.Bool("explain", false, "Show which rule chose each state key")
	f.String("output-format", "", "Output format: text|json")
}

func runCompose(cmd *cobra.Command, _ []string) error {
	v, err := ctrlstyle.ParseVariant(
		getStringWithFallback("family", "compose.family", "button"),
		getStringWithFallback("tone", "compose.tone", ""),
		getStringWithFallback("size", "compose.size", ""),
		getStringWithFallback("shape", "compose.shape", ""),
	)
	if err != nil {
		return err
	}
	state, err := ctrlstyle.ParseState(getStringsWithFallback("state", "compose.state", nil))
	if err != nil {
		return err
	}

	composer, err := buildComposer()
	if err != nil {
		return err
	}
	d := composer.Compose(v, state)
	log.WithFields(map[string]any{"variant": v.String(), "state": d.State.String()}).Debug("composed descriptor")

	if quiet() {
		return nil
	}
	explain := getBoolWithFallback("explain", "compose.explain", false)
	out := cmd.OutOrStdout()

	switch format := getStringWithFallback("output-format", "compose.output-format", "text"); format {
	case "text":
		colors := useColors()
		if err := report.WriteDescriptor(out, d, colors); err != nil {
			return err
		}
		if explain {
			fmt.Fprintln(out)
			return report.WriteExplain(out, v, state, colors)
		}
		return nil
	case "json":
		if explain {
			return report.WriteJSONValue(out, explainJSON{Descriptor: d, Rules: explainRules(v, state)})
		}
		return report.WriteJSONValue(out, d)
	default:
		return fmt.Errorf("unknown output format %q (want text|json)", format)
	}
}

type explainJSON struct {
	Descriptor ctrlstyle.StyleDescriptor `json:"descriptor"`
	Rules      map[string]string         `json:"rules"`
}

func explainRules(v ctrlstyle.Variant, s ctrlstyle.InteractionState) map[string]string {
	rules := make(map[string]string)
	for _, g := range ctrlstyle.Groups() {
		if g == ctrlstyle.GroupStatic || ctrlstyle.RulesFor(v.Family(), g) == nil {
			continue
		}
		_, rule := ctrlstyle.Explain(v, g, s)
		rules[g.String()] = rule.Name
	}
	return rules
}
