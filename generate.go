package ctrlstyle

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"text/template"
)

// ImportPath is the import path generated code uses for this package.
const ImportPath = "github.com/yacobolo/ctrlstyle"

// GenerateConfig controls GenerateGo output.
type GenerateConfig struct {
	PackageName string // package clause of the generated file
	VarName     string // name of the generated table variable
	Source      string // shown in the header comment
}

type generatedEntry struct {
	Key   string
	Value string
}

type generateData struct {
	Package string
	VarName string
	Source  string
	Count   int
	Entries []generatedEntry
}

var goTableTemplate = template.Must(template.New("table").Parse(`// Code generated by ctrlstyle generate. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "github.com/yacobolo/ctrlstyle"

// {{.VarName}} holds {{.Count}} tokens.
var {{.VarName}} = ctrlstyle.NewTable(map[ctrlstyle.Key]ctrlstyle.Value{
{{- range .Entries}}
	{{.Key}}: {{.Value}},
{{- end}}
})
`))

// GenerateGo writes a gofmt'd Go file declaring t as a table literal.
func GenerateGo(w io.Writer, t *Table, cfg GenerateConfig) error {
	if cfg.PackageName == "" {
		cfg.PackageName = "tokens"
	}
	if cfg.VarName == "" {
		cfg.VarName = "Table"
	}
	if !token.IsIdentifier(cfg.PackageName) || cfg.PackageName == "ctrlstyle" {
		return fmt.Errorf("invalid package name %q", cfg.PackageName)
	}
	if !token.IsIdentifier(cfg.VarName) {
		return fmt.Errorf("invalid variable name %q", cfg.VarName)
	}

	data := generateData{
		Package: cfg.PackageName,
		VarName: cfg.VarName,
		Source:  cfg.Source,
		Count:   t.Len(),
	}
	for _, k := range t.Keys() {
		v, _ := t.Lookup(k)
		data.Entries = append(data.Entries, generatedEntry{Key: keyExpr(k), Value: valueExpr(v)})
	}

	var buf bytes.Buffer
	if err := goTableTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

var (
	sizeIdents = map[Size]string{
		SizeSmall: "SizeSmall", SizeMedium: "SizeMedium", SizeLarge: "SizeLarge",
	}
	buttonToneIdents = map[ButtonTone]string{
		ButtonPrimary: "ButtonPrimary", ButtonSecondary: "ButtonSecondary",
		ButtonSuccess: "ButtonSuccess", ButtonWarning: "ButtonWarning",
		ButtonDanger: "ButtonDanger", ButtonEmphasized: "ButtonEmphasized",
		ButtonSubtle: "ButtonSubtle", ButtonNeutral: "ButtonNeutral",
	}
	shapeIdents = map[ButtonShape]string{
		ShapeDefault: "ShapeDefault", ShapePill: "ShapePill",
	}
	switchToneIdents = map[SwitchTone]string{
		SwitchPrimary: "SwitchPrimary", SwitchSuccess: "SwitchSuccess",
	}
)

// variantExpr renders the constructor call that rebuilds v.
func variantExpr(v Variant) string {
	size := "ctrlstyle." + sizeIdents[v.Size()]
	switch v.Family() {
	case FamilyButton:
		return fmt.Sprintf("ctrlstyle.Button(ctrlstyle.%s, %s, ctrlstyle.%s)",
			buttonToneIdents[v.ButtonTone()], size, shapeIdents[v.ButtonShape()])
	case FamilySwitch:
		return fmt.Sprintf("ctrlstyle.Switch(ctrlstyle.%s, %s)", switchToneIdents[v.SwitchTone()], size)
	case FamilyCheckbox:
		return fmt.Sprintf("ctrlstyle.Checkbox(%s)", size)
	default:
		return fmt.Sprintf("ctrlstyle.Radio(%s)", size)
	}
}

func keyExpr(k Key) string {
	return fmt.Sprintf("{Variant: %s, State: %q, Attribute: %q}", variantExpr(k.Variant), string(k.State), string(k.Attribute))
}

func valueExpr(v Value) string {
	switch v.Kind() {
	case KindColor:
		c := v.Color()
		return fmt.Sprintf("ctrlstyle.ColorValue(ctrlstyle.Color{R: 0x%02x, G: 0x%02x, B: 0x%02x, A: 0x%02x})", c.R, c.G, c.B, c.A)
	default:
		return fmt.Sprintf("ctrlstyle.DimensionValue(%s)", v.String())
	}
}
