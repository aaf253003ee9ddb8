package ctrlstyle

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CSS token sources declare one custom property per token:
//
//	--checkbox--colors--background--checkedDefault: #0b5cdf;
//	--button--tone-primary--text--default: #ffffff;
//	--switch--size-medium--width: 48px;
//	--button--shape-pill--border-radius: 9999px;
//
// Properties that do not start with a known family are ignored, so token
// files may share a stylesheet with unrelated variables.

// cssDeclaration is one custom property found by the lexer.
type cssDeclaration struct {
	name  string
	value string
	line  int
}

// DecodeCSS decodes a stylesheet of token custom properties.
func DecodeCSS(r io.Reader, source string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	decls := lexDeclarations(data)
	doc := NewDocument(source)
	for _, decl := range decls {
		if err := applyDeclaration(doc, decl); err != nil {
			return nil, NewParseError(source, decl.line, err.Error(), err)
		}
	}
	return doc, nil
}

// lexDeclarations collects every custom property and its raw value.
func lexDeclarations(data []byte) []cssDeclaration {
	lexer := css.NewLexer(parse.NewInputBytes(data))
	line := 1

	var decls []cssDeclaration
	var current *cssDeclaration
	var value strings.Builder
	seenColon := false

	flush := func() {
		if current != nil && seenColon {
			current.value = strings.TrimSpace(value.String())
			decls = append(decls, *current)
		}
		current = nil
		seenColon = false
		value.Reset()
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			flush()
			break
		}
		startLine := line
		line += bytes.Count(text, []byte("\n"))

		switch {
		case isCustomPropertyName(tt, text) && current == nil:
			current = &cssDeclaration{name: string(text), line: startLine}
		case current == nil:
			// outside a declaration
		case tt == css.ColonToken && !seenColon:
			seenColon = true
		case tt == css.SemicolonToken || tt == css.RightBraceToken:
			flush()
		case tt == css.CommentToken:
			// comments inside values are dropped
		case seenColon:
			value.Write(text)
		}
	}
	return decls
}

func isCustomPropertyName(tt css.TokenType, text []byte) bool {
	return (tt == css.CustomPropertyNameToken || tt == css.IdentToken) && bytes.HasPrefix(text, []byte("--"))
}

func applyDeclaration(doc *Document, decl cssDeclaration) error {
	parts := strings.Split(strings.TrimPrefix(decl.name, "--"), "--")
	if len(parts) < 3 {
		return nil
	}
	if _, err := ParseFamily(parts[0]); err != nil {
		return nil
	}
	fd := doc.Family(parts[0])
	scope := parts[1]

	switch {
	case scope == "colors" && len(parts) == 4:
		fd.SetColor(parts[2], parts[3], decl.value)
	case strings.HasPrefix(scope, "tone-") && len(parts) == 4:
		fd.SetToneColor(strings.TrimPrefix(scope, "tone-"), parts[2], parts[3], decl.value)
	case strings.HasPrefix(scope, "size-") && len(parts) == 3:
		d, err := parseDimension(decl.value)
		if err != nil {
			return fmt.Errorf("%s: %w", decl.name, err)
		}
		fd.SetSize(strings.TrimPrefix(scope, "size-"), parts[2], d)
	case strings.HasPrefix(scope, "shape-") && len(parts) == 3:
		d, err := parseDimension(decl.value)
		if err != nil {
			return fmt.Errorf("%s: %w", decl.name, err)
		}
		fd.SetShape(strings.TrimPrefix(scope, "shape-"), parts[2], d)
	default:
		return fmt.Errorf("unrecognized token property %s", decl.name)
	}
	return nil
}

// parseDimension accepts unitless numbers and px/pt values.
func parseDimension(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, unit := range []string{"px", "pt"} {
		s = strings.TrimSuffix(s, unit)
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return d, nil
}

// EncodeCSS writes doc as a :root block of custom properties in stable order.
func EncodeCSS(w io.Writer, doc *Document) error {
	var lines []string
	for famName, fd := range doc.Families {
		if fd == nil {
			continue
		}
		for attr, keys := range fd.Colors {
			for key, hex := range keys {
				lines = append(lines, fmt.Sprintf("--%s--colors--%s--%s: %s;", famName, attr, key, hex))
			}
		}
		for tone, attrs := range fd.Tones {
			for attr, keys := range attrs {
				for key, hex := range keys {
					lines = append(lines, fmt.Sprintf("--%s--tone-%s--%s--%s: %s;", famName, tone, attr, key, hex))
				}
			}
		}
		for size, attrs := range fd.Sizes {
			for attr, d := range attrs {
				lines = append(lines, fmt.Sprintf("--%s--size-%s--%s: %spx;", famName, size, attr, formatDimension(d)))
			}
		}
		for shape, attrs := range fd.Shapes {
			for attr, d := range attrs {
				lines = append(lines, fmt.Sprintf("--%s--shape-%s--%s: %spx;", famName, shape, attr, formatDimension(d)))
			}
		}
	}
	sort.Strings(lines)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func formatDimension(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
