package ctrlstyle

import (
	"fmt"
	"strings"
)

// Family identifies one of the supported control families.
type Family uint8

// Control families.
const (
	FamilyButton Family = iota + 1
	FamilyCheckbox
	FamilyRadio
	FamilySwitch
)

var familyNames = map[Family]string{
	FamilyButton:   "button",
	FamilyCheckbox: "checkbox",
	FamilyRadio:    "radio",
	FamilySwitch:   "switch",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{FamilyButton, FamilyCheckbox, FamilyRadio, FamilySwitch}
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// ParseFamily converts a family name ("button", "checkbox", ...) to a Family.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown family %q", s)
}

// Size is the size class shared by all families.
type Size uint8

// Size classes.
const (
	SizeSmall Size = iota + 1
	SizeMedium
	SizeLarge
)

var sizeNames = map[Size]string{
	SizeSmall:  "small",
	SizeMedium: "medium",
	SizeLarge:  "large",
}

// Sizes lists every size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("size(%d)", uint8(s))
}

// ParseSize accepts the full size names and the s/m/l shorthands used by token files.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "small", "s":
		return SizeSmall, nil
	case "medium", "m", "":
		return SizeMedium, nil
	case "large", "l":
		return SizeLarge, nil
	}
	return 0, fmt.Errorf("unknown size %q", s)
}

// ButtonTone is the color family of a button. It is not interchangeable with SwitchTone.
type ButtonTone uint8

// Button tones.
const (
	ButtonPrimary ButtonTone = iota + 1
	ButtonSecondary
	ButtonSuccess
	ButtonWarning
	ButtonDanger
	ButtonEmphasized
	ButtonSubtle
	ButtonNeutral
)

var buttonToneNames = map[ButtonTone]string{
	ButtonPrimary:    "primary",
	ButtonSecondary:  "secondary",
	ButtonSuccess:    "success",
	ButtonWarning:    "warning",
	ButtonDanger:     "danger",
	ButtonEmphasized: "emphasized",
	ButtonSubtle:     "subtle",
	ButtonNeutral:    "neutral",
}

// ButtonTones lists every button tone.
func ButtonTones() []ButtonTone {
	return []ButtonTone{
		ButtonPrimary, ButtonSecondary, ButtonSuccess, ButtonWarning,
		ButtonDanger, ButtonEmphasized, ButtonSubtle, ButtonNeutral,
	}
}

func (t ButtonTone) String() string {
	if name, ok := buttonToneNames[t]; ok {
		return name
	}
	return fmt.Sprintf("buttonTone(%d)", uint8(t))
}

// ParseButtonTone converts a tone name to a ButtonTone. Empty selects primary.
func ParseButtonTone(s string) (ButtonTone, error) {
	if s == "" {
		return ButtonPrimary, nil
	}
	for t, name := range buttonToneNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown button tone %q", s)
}

// ButtonShape selects the corner treatment of a button.
type ButtonShape uint8

// Button shapes.
const (
	ShapeDefault ButtonShape = iota + 1
	ShapePill
)

// ButtonShapes lists every button shape.
func ButtonShapes() []ButtonShape {
	return []ButtonShape{ShapeDefault, ShapePill}
}

func (s ButtonShape) String() string {
	switch s {
	case ShapeDefault:
		return "default"
	case ShapePill:
		return "pill"
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// ParseButtonShape converts a shape name to a ButtonShape. Empty selects default.
func ParseButtonShape(s string) (ButtonShape, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return ShapeDefault, nil
	case "pill":
		return ShapePill, nil
	}
	return 0, fmt.Errorf("unknown button shape %q", s)
}

// SwitchTone is the "on" color family of a switch.
type SwitchTone uint8

// Switch tones.
const (
	SwitchPrimary SwitchTone = iota + 1
	SwitchSuccess
)

// SwitchTones lists every switch tone.
func SwitchTones() []SwitchTone {
	return []SwitchTone{SwitchPrimary, SwitchSuccess}
}

func (t SwitchTone) String() string {
	switch t {
	case SwitchPrimary:
		return "primary"
	case SwitchSuccess:
		return "success"
	}
	return fmt.Sprintf("switchTone(%d)", uint8(t))
}

// ParseSwitchTone converts a tone name to a SwitchTone. Empty selects primary.
func ParseSwitchTone(s string) (SwitchTone, error) {
	switch strings.ToLower(s) {
	case "", "primary":
		return SwitchPrimary, nil
	case "success":
		return SwitchSuccess, nil
	}
	return 0, fmt.Errorf("unknown switch tone %q", s)
}

// Variant is the static configuration of one control instance.
//
// Variants are comparable values and can only be built through the
// per-family constructors, so a variant never carries a tone or shape its
// family does not define.
type Variant struct {
	family     Family
	size       Size
	buttonTone ButtonTone
	shape      ButtonShape
	switchTone SwitchTone
}

// The constructors do not check their arguments. A tone, size or shape
// outside the declared constants yields a variant that is not Valid, and
// Composer.Compose panics on it. Use ParseVariant for untrusted input.

// Button returns a button variant.
func Button(tone ButtonTone, size Size, shape ButtonShape) Variant {
	return Variant{family: FamilyButton, size: size, buttonTone: tone, shape: shape}
}

// Checkbox returns a checkbox variant.
func Checkbox(size Size) Variant {
	return Variant{family: FamilyCheckbox, size: size}
}

// Radio returns a radio variant.
func Radio(size Size) Variant {
	return Variant{family: FamilyRadio, size: size}
}

// Switch returns a switch variant.
func Switch(tone SwitchTone, size Size) Variant {
	return Variant{family: FamilySwitch, size: size, switchTone: tone}
}

// Valid reports whether v is a member of the declared variant domain.
func (v Variant) Valid() bool {
	if _, ok := sizeNames[v.size]; !ok {
		return false
	}
	switch v.family {
	case FamilyButton:
		_, ok := buttonToneNames[v.buttonTone]
		return ok && (v.shape == ShapeDefault || v.shape == ShapePill)
	case FamilySwitch:
		return v.switchTone == SwitchPrimary || v.switchTone == SwitchSuccess
	case FamilyCheckbox, FamilyRadio:
		return true
	}
	return false
}

// Family returns the control family.
func (v Variant) Family() Family { return v.family }

// Size returns the size class.
func (v Variant) Size() Size { return v.size }

// ButtonTone returns the tone of a button variant, zero for other families.
func (v Variant) ButtonTone() ButtonTone { return v.buttonTone }

// ButtonShape returns the shape of a button variant, zero for other families.
func (v Variant) ButtonShape() ButtonShape { return v.shape }

// SwitchTone returns the tone of a switch variant, zero for other families.
func (v Variant) SwitchTone() SwitchTone { return v.switchTone }

// Tone returns the name of the family-specific tone, or "" when the family has none.
func (v Variant) Tone() string {
	switch v.family {
	case FamilyButton:
		return v.buttonTone.String()
	case FamilySwitch:
		return v.switchTone.String()
	}
	return ""
}

// String renders the canonical family/tone/size/shape form, skipping unused slots.
func (v Variant) String() string {
	parts := []string{v.family.String()}
	if tone := v.Tone(); tone != "" {
		parts = append(parts, tone)
	}
	parts = append(parts, v.size.String())
	if v.family == FamilyButton {
		parts = append(parts, v.shape.String())
	}
	return strings.Join(parts, "/")
}

// ParseVariant builds a Variant from text. Tone and shape are ignored by
// families that do not define them; empty values select the family default.
func ParseVariant(family, tone, size, shape string) (Variant, error) {
	f, err := ParseFamily(family)
	if err != nil {
		return Variant{}, err
	}
	sz, err := ParseSize(size)
	if err != nil {
		return Variant{}, err
	}

	switch f {
	case FamilyButton:
		bt, err := ParseButtonTone(tone)
		if err != nil {
			return Variant{}, err
		}
		sh, err := ParseButtonShape(shape)
		if err != nil {
			return Variant{}, err
		}
		return Button(bt, sz, sh), nil
	case FamilySwitch:
		st, err := ParseSwitchTone(tone)
		if err != nil {
			return Variant{}, err
		}
		return Switch(st, sz), nil
	case FamilyCheckbox:
		return Checkbox(sz), nil
	default:
		return Radio(sz), nil
	}
}

// Variants enumerates the declared variant domain of a family.
func Variants(f Family) []Variant {
	var out []Variant
	for _, size := range Sizes() {
		switch f {
		case FamilyButton:
			for _, tone := range ButtonTones() {
				for _, shape := range ButtonShapes() {
					out = append(out, Button(tone, size, shape))
				}
			}
		case FamilyCheckbox:
			out = append(out, Checkbox(size))
		case FamilyRadio:
			out = append(out, Radio(size))
		case FamilySwitch:
			for _, tone := range SwitchTones() {
				out = append(out, Switch(tone, size))
			}
		}
	}
	return out
}

// AllVariants enumerates the declared variant domain of every family.
func AllVariants() []Variant {
	var out []Variant
	for _, f := range Families() {
		out = append(out, Variants(f)...)
	}
	return out
}
