package ctrlstyle

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSS(t *testing.T) {
	input := `/* tokens */
:root {
  --app-accent: #ff00ff;
  --switch--colors--background--offDefault: #d9dce3;
  --switch--tone-success--background--onSuccessDefault: #05763d;
  --switch--size-medium--width: 48px;
  --button--shape-pill--border-radius: 9999px;
}
`
	doc, err := DecodeCSS(strings.NewReader(input), "tokens.css")
	require.NoError(t, err)

	sw := doc.Families["switch"]
	require.NotNil(t, sw)
	assert.Equal(t, "#d9dce3", sw.Colors["background"]["offDefault"])
	assert.Equal(t, "#05763d", sw.Tones["success"]["background"]["onSuccessDefault"])
	assert.Equal(t, 48.0, sw.Sizes["medium"]["width"])
	assert.Equal(t, 9999.0, doc.Families["button"].Shapes["pill"]["border-radius"])
	assert.NotContains(t, doc.Families, "app-accent")
}

func TestDecodeCSSErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantErr  string
	}{
		{
			name:     "unknown scope",
			input:    ":root {\n  --radio--bogus--background--default: #fff;\n}\n",
			wantLine: 2,
			wantErr:  "unrecognized token property",
		},
		{
			name:     "bad dimension",
			input:    ":root {\n\n  --radio--size-small--width: wide;\n}\n",
			wantLine: 3,
			wantErr:  "invalid dimension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCSS(strings.NewReader(tt.input), "bad.css")
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.Contains(t, perr.Message, tt.wantErr)
		})
	}
}

func TestCSSMatchesYAML(t *testing.T) {
	doc, err := DefaultDocument()
	require.NoError(t, err)
	want, err := doc.Table()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSS(&buf, doc))
	assert.True(t, strings.HasPrefix(buf.String(), ":root {\n"))
	assert.Contains(t, buf.String(), "  --button--tone-primary--background--default: #0b5cdf;\n")
	assert.Contains(t, buf.String(), "  --button--shape-pill--border-radius: 9999px;\n")

	decoded, err := DecodeCSS(&buf, "elevate.css")
	require.NoError(t, err)
	got, err := decoded.Table()
	require.NoError(t, err)
	assert.Equal(t, want.Entries(), got.Entries())
}
