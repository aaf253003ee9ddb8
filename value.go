package ctrlstyle

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is ParseColor that panics on malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Luminance returns the WCAG relative luminance of the color, ignoring alpha.
func (c Color) Luminance() float64 {
	r, g, b := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors (1 to 21).
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// ValueKind tags the payload of a Value.
type ValueKind uint8

// Value kinds.
const (
	KindColor ValueKind = iota + 1
	KindDimension
)

// Value is a raw token value: either a color or a dimension in points.
type Value struct {
	kind  ValueKind
	color Color
	dim   float64
}

// ColorValue wraps a color.
func ColorValue(c Color) Value { return Value{kind: KindColor, color: c} }

// DimensionValue wraps a dimension.
func DimensionValue(d float64) Value { return Value{kind: KindDimension, dim: d} }

// Kind returns the payload kind; zero for the empty Value.
func (v Value) Kind() ValueKind { return v.kind }

// Color returns the color payload.
func (v Value) Color() Color { return v.color }

// Dimension returns the dimension payload.
func (v Value) Dimension() float64 { return v.dim }

func (v Value) String() string {
	switch v.kind {
	case KindColor:
		return v.color.Hex()
	case KindDimension:
		return strconv.FormatFloat(v.dim, 'f', -1, 64)
	}
	return "<unset>"
}

// MarshalJSON renders colors as hex strings and dimensions as numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindColor:
		return json.Marshal(v.color.Hex())
	case KindDimension:
		return json.Marshal(v.dim)
	}
	return []byte("null"), nil
}
