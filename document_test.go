package ctrlstyle

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const radioSnippet = `version: "1"
name: snippet
families:
  radio:
    colors:
      background:
        uncheckedDefault: "#ffffff"
    sizes:
      m:
        width: 20
`

func TestDecodeYAMLAndExpand(t *testing.T) {
	doc, err := DecodeYAML(strings.NewReader(radioSnippet), "snippet.yaml")
	require.NoError(t, err)
	assert.Equal(t, "snippet", doc.Name)

	table, err := doc.Table()
	require.NoError(t, err)
	// One color per radio variant plus the medium width.
	assert.Equal(t, 4, table.Len())

	v, ok := table.Lookup(Key{Variant: Radio(SizeMedium), State: KeyStatic, Attribute: AttrWidth})
	require.True(t, ok)
	assert.Equal(t, 20.0, v.Dimension())

	_, ok = table.Lookup(Key{Variant: Radio(SizeLarge), State: KeyUncheckedDefault, Attribute: AttrBackground})
	assert.True(t, ok)
	_, ok = table.Lookup(Key{Variant: Radio(SizeLarge), State: KeyStatic, Attribute: AttrWidth})
	assert.False(t, ok)
}

func TestDecodeYAMLParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "unknown field", input: "version: \"1\"\nfamilies: {}\nbogus: true\n", wantLine: 3},
		{name: "wrong type", input: "version: \"1\"\nfamilies:\n  radio:\n    sizes:\n      m:\n        width: wide\n", wantLine: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.input), "bad.yaml")
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "bad.yaml", perr.Source)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.Contains(t, err.Error(), "bad.yaml:")
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeYAML(strings.NewReader(""), "empty.yaml")
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "empty document", perr.Message)
	})
}

func TestDocumentTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(d *Document)
		wantErr string
	}{
		{
			name:    "no families",
			build:   func(d *Document) {},
			wantErr: "invalid token document",
		},
		{
			name:    "unknown family",
			build:   func(d *Document) { d.Family("slider").SetColor("background", "default", "#ffffff") },
			wantErr: "invalid token document",
		},
		{
			name:    "tone on checkbox",
			build:   func(d *Document) { d.Family("checkbox").SetToneColor("primary", "background", "checkedDefault", "#ffffff") },
			wantErr: "checkbox has no tones",
		},
		{
			name:    "unknown tone",
			build:   func(d *Document) { d.Family("button").SetToneColor("magenta", "background", "default", "#ffffff") },
			wantErr: "magenta",
		},
		{
			name:    "unknown state key",
			build:   func(d *Document) { d.Family("radio").SetColor("background", "hovered", "#ffffff") },
			wantErr: "unknown state key",
		},
		{
			name:    "dimension under colors",
			build:   func(d *Document) { d.Family("radio").SetColor("width", "uncheckedDefault", "#ffffff") },
			wantErr: "not a color attribute",
		},
		{
			name:    "bad color",
			build:   func(d *Document) { d.Family("radio").SetColor("background", "uncheckedDefault", "white") },
			wantErr: "invalid color",
		},
		{
			name:    "color under sizes",
			build:   func(d *Document) { d.Family("switch").SetSize("medium", "background", 4) },
			wantErr: "not a dimension attribute",
		},
		{
			name:    "shape on radio",
			build:   func(d *Document) { d.Family("radio").SetShape("pill", "border-radius", 4) },
			wantErr: "radio has no shapes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument("test")
			tt.build(d)
			_, err := d.Table()
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "test", perr.Source)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeYAMLCanonicalizesNames(t *testing.T) {
	input := "version: \"1\"\nfamilies:\n  button:\n    tones:\n      Primary:\n        text:\n          default: \"#ffffff\"\n    sizes:\n      s:\n        height: 32\n    shapes:\n      PILL:\n        border-radius: 9999\n"
	doc, err := DecodeYAML(strings.NewReader(input), "aliases.yaml")
	require.NoError(t, err)

	button := doc.Families["button"]
	assert.Contains(t, button.Tones, "primary")
	assert.Equal(t, 32.0, button.Sizes["small"]["height"])
	assert.Equal(t, 9999.0, button.Shapes["pill"]["border-radius"])
}

func TestDuplicateSpellingsAreRejected(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "size shorthand and full name",
			input:   "version: \"1\"\nfamilies:\n  radio:\n    sizes:\n      s:\n        width: 10\n      small:\n        width: 99\n",
			wantErr: `"s" and "small" both name small`,
		},
		{
			name:    "shape case",
			input:   "version: \"1\"\nfamilies:\n  button:\n    shapes:\n      Pill:\n        border-radius: 4\n      pill:\n        border-radius: 9999\n",
			wantErr: `"Pill" and "pill" both name pill`,
		},
		{
			name:    "tone case",
			input:   "version: \"1\"\nfamilies:\n  switch:\n    tones:\n      SUCCESS:\n        background:\n          onSuccessDefault: \"#05763d\"\n      success:\n        background:\n          onSuccessDefault: \"#000000\"\n",
			wantErr: `"SUCCESS" and "success" both name success`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.input), "dup.yaml")
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "dup.yaml", perr.Source)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("built in code", func(t *testing.T) {
		d := NewDocument("test")
		d.Family("radio").Sizes = map[string]map[string]float64{
			"s":     {"width": 10},
			"small": {"width": 99},
		}
		for i := 0; i < 20; i++ {
			_, err := d.Table()
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Contains(t, err.Error(), `"s" and "small" both name small`)
		}
	})
}

func TestSetSizeStoresFullName(t *testing.T) {
	d := NewDocument("test")
	d.Family("radio").SetSize("s", "width", 10)
	d.Family("radio").SetSize("small", "width", 12)

	assert.Equal(t, map[string]map[string]float64{"small": {"width": 12}}, d.Families["radio"].Sizes)

	table, err := d.Table()
	require.NoError(t, err)
	v, ok := table.Lookup(Key{Variant: Radio(SizeSmall), State: KeyStatic, Attribute: AttrWidth})
	require.True(t, ok)
	assert.Equal(t, 12.0, v.Dimension())
}

func TestMergeMatchesSizeShorthands(t *testing.T) {
	base := NewDocument("base")
	base.Family("radio").SetSize("small", "width", 16)

	override, err := DecodeYAML(strings.NewReader("version: \"1\"\nfamilies:\n  radio:\n    sizes:\n      s:\n        width: 18\n"), "override.yaml")
	require.NoError(t, err)

	warnings := base.Merge(override)
	assert.Equal(t, []string{"radio.sizes.small.width: 16 -> 18"}, warnings)
	assert.Equal(t, map[string]map[string]float64{"small": {"width": 18}}, base.Families["radio"].Sizes)
}

func TestDocumentMergeReportsOverrides(t *testing.T) {
	base := NewDocument("base")
	base.Family("button").SetToneColor("primary", "background", "default", "#0b5cdf")
	base.Family("button").SetSize("medium", "height", 40)

	override := NewDocument("override")
	override.Family("button").SetToneColor("primary", "background", "default", "#000000")
	override.Family("button").SetSize("medium", "height", 40)
	override.Family("radio").SetSize("small", "width", 16)

	warnings := base.Merge(override)

	assert.Equal(t, []string{"button.tones.primary.background.default: #0b5cdf -> #000000"}, warnings)
	assert.Equal(t, "#000000", base.Families["button"].Tones["primary"]["background"]["default"])
	assert.Equal(t, 16.0, base.Families["radio"].Sizes["small"]["width"])
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	doc, err := DefaultDocument()
	require.NoError(t, err)
	want, err := doc.Table()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, doc))

	decoded, err := DecodeYAML(&buf, "roundtrip.yaml")
	require.NoError(t, err)
	got, err := decoded.Table()
	require.NoError(t, err)
	assert.Equal(t, want.Entries(), got.Entries())
}
