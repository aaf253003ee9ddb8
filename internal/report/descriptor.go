package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yacobolo/ctrlstyle"
)

// WriteDescriptor prints one descriptor as an aligned attribute list.
func WriteDescriptor(w io.Writer, d ctrlstyle.StyleDescriptor, useColors bool) error {
	f := d.Variant.Family()
	fmt.Fprintf(w, "%s %s\n",
		RenderStyle(StyleCyan, d.Variant.String(), useColors),
		RenderStyle(StyleGray, d.State.String(), useColors))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, attr := range ctrlstyle.Attributes(f) {
		v, _ := d.Value(attr)
		swatch := ""
		if v.Kind() == ctrlstyle.KindColor {
			swatch = Swatch(v.Color().Hex(), useColors)
		}
		fmt.Fprintf(tw, "  %s\t%s%s\t%s\n", attr, swatch, v, RenderStyle(StyleGray, string(d.Key(attr.Group())), useColors))
	}
	fmt.Fprintf(tw, "  opacity\t%g\t\n", d.Opacity)
	switch f {
	case ctrlstyle.FamilyCheckbox:
		fmt.Fprintf(tw, "  icon\t%s\t\n", d.Icon)
	case ctrlstyle.FamilyRadio, ctrlstyle.FamilySwitch:
		fmt.Fprintf(tw, "  handle\t%t\t\n", d.HandleVisible)
	}
	return tw.Flush()
}

// WriteExplain prints which rule picked each group's key.
func WriteExplain(w io.Writer, v ctrlstyle.Variant, s ctrlstyle.InteractionState, useColors bool) error {
	fmt.Fprintln(w, RenderStyle(StyleCyan, "Resolution", useColors))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, g := range ctrlstyle.Groups() {
		if g == ctrlstyle.GroupStatic || ctrlstyle.RulesFor(v.Family(), g) == nil {
			continue
		}
		key, rule := ctrlstyle.Explain(v, g, s)
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", g, key, RenderStyle(StyleGray, "rule "+rule.Name, useColors))
	}
	return tw.Flush()
}

// WriteJSONValue writes any value as indented JSON.
func WriteJSONValue(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteMatrixMarkdown writes one row per descriptor with a column per attribute.
// All descriptors must belong to the same family.
func WriteMatrixMarkdown(w io.Writer, ds []ctrlstyle.StyleDescriptor) error {
	if len(ds) == 0 {
		return nil
	}
	attrs := ctrlstyle.Attributes(ds[0].Variant.Family())

	var b strings.Builder
	b.WriteString("| variant | state |")
	for _, a := range attrs {
		b.WriteString(" " + string(a) + " |")
	}
	b.WriteString(" opacity |\n|---|---|")
	b.WriteString(strings.Repeat("---|", len(attrs)+1))
	b.WriteString("\n")

	for _, d := range ds {
		if d.Variant.Family() != ds[0].Variant.Family() {
			return fmt.Errorf("matrix mixes %s and %s", ds[0].Variant.Family(), d.Variant.Family())
		}
		fmt.Fprintf(&b, "| %s | %s |", d.Variant, d.State)
		for _, a := range attrs {
			v, _ := d.Value(a)
			fmt.Fprintf(&b, " %s |", v)
		}
		fmt.Fprintf(&b, " %g |\n", d.Opacity)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
