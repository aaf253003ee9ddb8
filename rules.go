package ctrlstyle

// Precedence per family, highest first. Disabled always leads; Invalid comes
// next for checkbox and radio; Pressed only ever splits two leaves of the
// branch already chosen.

var buttonSurfaceRules = RuleSet{
	when("disabled", KeyDisabled, disabled),
	when("selected+pressed", KeySelectedPressed, selected, pressed),
	when("selected", KeySelected, selected),
	when("pressed", KeyPressed, pressed),
	otherwise("default", KeyDefault),
}

var buttonBorderRules = RuleSet{
	when("disabled", KeyDisabled, disabled),
	when("selected", KeySelected, selected),
	otherwise("default", KeyDefault),
}

// Checked wins over indeterminate for the fill when both are set.
var checkboxFillRules = RuleSet{
	when("disabled+checked", KeyCheckedDisabled, disabled, checked),
	when("disabled+indeterminate", KeyIndeterminateDisabled, disabled, indeterminate),
	when("disabled", KeyUncheckedDisabled, disabled),
	when("checked+pressed", KeyCheckedPressed, checked, pressed),
	when("checked", KeyCheckedDefault, checked),
	when("indeterminate+pressed", KeyIndeterminatePressed, indeterminate, pressed),
	when("indeterminate", KeyIndeterminateDefault, indeterminate),
	when("unchecked+pressed", KeyUncheckedPressed, pressed),
	otherwise("unchecked", KeyUncheckedDefault),
}

var checkboxBorderRules = RuleSet{
	when("disabled+checked", KeyCheckedDisabled, disabled, checked),
	when("disabled+indeterminate", KeyIndeterminateDisabled, disabled, indeterminate),
	when("disabled", KeyUncheckedDisabled, disabled),
	when("invalid+checked+pressed", KeyCheckedInvalidPressed, invalid, checkedOrIndeterminate, pressed),
	when("invalid+checked", KeyCheckedInvalidDefault, invalid, checkedOrIndeterminate),
	when("invalid+pressed", KeyUncheckedInvalidPressed, invalid, pressed),
	when("invalid", KeyUncheckedInvalidDefault, invalid),
	when("checked+pressed", KeyCheckedPressed, checked, pressed),
	when("checked", KeyCheckedDefault, checked),
	when("indeterminate+pressed", KeyIndeterminatePressed, indeterminate, pressed),
	when("indeterminate", KeyIndeterminateDefault, indeterminate),
	when("unchecked+pressed", KeyUncheckedPressed, pressed),
	otherwise("unchecked", KeyUncheckedDefault),
}

// Shared by checkbox icon and label, radio handle and label.
var pressableRules = RuleSet{
	when("disabled", KeyDisabled, disabled),
	when("pressed", KeyPressed, pressed),
	otherwise("default", KeyDefault),
}

var radioTrackRules = RuleSet{
	when("disabled+checked", KeyCheckedDisabled, disabled, checked),
	when("disabled", KeyUncheckedDisabled, disabled),
	when("invalid+checked+pressed", KeyCheckedInvalidPressed, invalid, checked, pressed),
	when("invalid+checked", KeyCheckedInvalidDefault, invalid, checked),
	when("invalid+pressed", KeyUncheckedInvalidPressed, invalid, pressed),
	when("invalid", KeyUncheckedInvalidDefault, invalid),
	when("checked+pressed", KeyCheckedPressed, checked, pressed),
	when("checked", KeyCheckedDefault, checked),
	when("unchecked+pressed", KeyUncheckedPressed, pressed),
	otherwise("unchecked", KeyUncheckedDefault),
}

var switchTrackRules = RuleSet{
	when("disabled+on+success", KeyOnSuccessDisabled, disabled, on, toneIs(SwitchSuccess)),
	when("disabled+on", KeyOnPrimaryDisabled, disabled, on),
	when("disabled", KeyOffDisabled, disabled),
	when("on+success+pressed", KeyOnSuccessPressed, on, toneIs(SwitchSuccess), pressed),
	when("on+success", KeyOnSuccessDefault, on, toneIs(SwitchSuccess)),
	when("on+pressed", KeyOnPrimaryPressed, on, pressed),
	when("on", KeyOnPrimaryDefault, on),
	when("off+pressed", KeyOffPressed, pressed),
	otherwise("off", KeyOffDefault),
}

// The handle has no pressed token while off.
var switchHandleRules = RuleSet{
	when("disabled+on+success", KeyOnSuccessDisabled, disabled, on, toneIs(SwitchSuccess)),
	when("disabled+on", KeyOnPrimaryDisabled, disabled, on),
	when("disabled", KeyOffDisabled, disabled),
	when("on+success+pressed", KeyOnSuccessPressed, on, toneIs(SwitchSuccess), pressed),
	when("on+success", KeyOnSuccessDefault, on, toneIs(SwitchSuccess)),
	when("on+pressed", KeyOnPrimaryPressed, on, pressed),
	when("on", KeyOnPrimaryDefault, on),
	otherwise("off", KeyOffDefault),
}

var switchLabelRules = RuleSet{
	when("disabled", KeyDisabled, disabled),
	otherwise("default", KeyDefault),
}

var familyRules = map[Family]map[Group]RuleSet{
	FamilyButton: {
		GroupFill:   buttonSurfaceRules,
		GroupLabel:  buttonSurfaceRules,
		GroupBorder: buttonBorderRules,
	},
	FamilyCheckbox: {
		GroupFill:   checkboxFillRules,
		GroupBorder: checkboxBorderRules,
		GroupIcon:   pressableRules,
		GroupLabel:  pressableRules,
	},
	FamilyRadio: {
		GroupFill:   radioTrackRules,
		GroupBorder: radioTrackRules,
		GroupHandle: pressableRules,
		GroupLabel:  pressableRules,
	},
	FamilySwitch: {
		GroupFill:   switchTrackRules,
		GroupHandle: switchHandleRules,
		GroupLabel:  switchLabelRules,
	},
}

// IconGlyph is the mark drawn inside a checkbox.
type IconGlyph string

// Checkbox glyphs.
const (
	IconNone      IconGlyph = "none"
	IconCheckmark IconGlyph = "checkmark"
	IconDash      IconGlyph = "dash"
)

// glyphFor picks the checkbox glyph. Indeterminate wins here even though
// checked wins for the fill; both flags set draws a dash over a checked fill.
func glyphFor(v Variant, s InteractionState) IconGlyph {
	if v.Family() != FamilyCheckbox {
		return IconNone
	}
	switch {
	case s.Indeterminate:
		return IconDash
	case s.Checked:
		return IconCheckmark
	}
	return IconNone
}
