package ctrlstyle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSetsEndWithCatchAll(t *testing.T) {
	for f, groups := range familyRules {
		for g, rs := range groups {
			require.NotEmpty(t, rs, "%s/%s", f, g)
			last := rs[len(rs)-1]
			for _, v := range Variants(f) {
				for _, s := range States(f) {
					assert.True(t, last.Match(v, s), "%s/%s last rule %q must match everything", f, g, last.Name)
				}
			}
		}
	}
}

func TestRulesFor(t *testing.T) {
	assert.Nil(t, RulesFor(FamilyButton, GroupIcon))
	assert.Nil(t, RulesFor(FamilySwitch, GroupBorder))
	assert.NotNil(t, RulesFor(FamilyCheckbox, GroupIcon))
	assert.Equal(t, []EffectiveStateKey{KeyStatic}, RulesFor(FamilyRadio, GroupStatic).Keys())
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		v     Variant
		group Group
		s     InteractionState
		want  EffectiveStateKey
	}{
		{"button idle", Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupFill, InteractionState{}, KeyDefault},
		{"button selected pressed", Button(ButtonNeutral, SizeSmall, ShapePill), GroupFill, InteractionState{Selected: true, Pressed: true}, KeySelectedPressed},
		{"button disabled beats selected", Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupFill, InteractionState{Selected: true, Disabled: true}, KeyDisabled},
		{"button border ignores pressed", Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupBorder, InteractionState{Pressed: true}, KeyDefault},
		{"button border selected", Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupBorder, InteractionState{Selected: true, Pressed: true}, KeySelected},
		{"checkbox checked wins fill", Checkbox(SizeMedium), GroupFill, InteractionState{Checked: true, Indeterminate: true}, KeyCheckedDefault},
		{"checkbox indeterminate pressed", Checkbox(SizeMedium), GroupFill, InteractionState{Indeterminate: true, Pressed: true}, KeyIndeterminatePressed},
		{"checkbox invalid fill unchanged", Checkbox(SizeMedium), GroupFill, InteractionState{Invalid: true}, KeyUncheckedDefault},
		{"checkbox invalid checked border", Checkbox(SizeMedium), GroupBorder, InteractionState{Invalid: true, Indeterminate: true}, KeyCheckedInvalidDefault},
		{"checkbox invalid pressed border", Checkbox(SizeMedium), GroupBorder, InteractionState{Invalid: true, Pressed: true}, KeyUncheckedInvalidPressed},
		{"checkbox disabled beats invalid", Checkbox(SizeMedium), GroupBorder, InteractionState{Invalid: true, Disabled: true, Checked: true}, KeyCheckedDisabled},
		{"radio invalid unchecked pressed fill", Radio(SizeMedium), GroupFill, InteractionState{Invalid: true, Pressed: true}, KeyUncheckedInvalidPressed},
		{"radio invalid unchecked pressed border", Radio(SizeMedium), GroupBorder, InteractionState{Invalid: true, Pressed: true}, KeyUncheckedInvalidPressed},
		{"radio invalid checked", Radio(SizeLarge), GroupBorder, InteractionState{Invalid: true, Checked: true}, KeyCheckedInvalidDefault},
		{"radio handle pressed", Radio(SizeLarge), GroupHandle, InteractionState{Checked: true, Pressed: true}, KeyPressed},
		{"switch on success", Switch(SwitchSuccess, SizeMedium), GroupFill, InteractionState{On: true}, KeyOnSuccessDefault},
		{"switch on primary pressed", Switch(SwitchPrimary, SizeMedium), GroupFill, InteractionState{On: true, Pressed: true}, KeyOnPrimaryPressed},
		{"switch off pressed track", Switch(SwitchSuccess, SizeMedium), GroupFill, InteractionState{Pressed: true}, KeyOffPressed},
		{"switch off pressed handle", Switch(SwitchSuccess, SizeMedium), GroupHandle, InteractionState{Pressed: true}, KeyOffDefault},
		{"switch disabled on success", Switch(SwitchSuccess, SizeMedium), GroupHandle, InteractionState{On: true, Disabled: true, Pressed: true}, KeyOnSuccessDisabled},
		{"switch label disabled", Switch(SwitchPrimary, SizeSmall), GroupLabel, InteractionState{Disabled: true}, KeyDisabled},
		{"foreign flags ignored", Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupFill, InteractionState{Checked: true, On: true}, KeyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.v, tt.group, tt.s))
		})
	}
}

func TestExplainReturnsMatchingRule(t *testing.T) {
	key, rule := Explain(Checkbox(SizeMedium), GroupBorder, InteractionState{Invalid: true, Checked: true, Pressed: true})
	assert.Equal(t, KeyCheckedInvalidPressed, key)
	assert.Equal(t, "invalid+checked+pressed", rule.Name)
	assert.Equal(t, key, rule.Key)

	key, rule = Explain(Button(ButtonPrimary, SizeMedium, ShapeDefault), GroupIcon, InteractionState{})
	assert.Empty(t, key)
	assert.Empty(t, rule.Name)
}

func isDisabledKey(k EffectiveStateKey) bool {
	return strings.HasSuffix(strings.ToLower(string(k)), "disabled")
}

// branchOf strips the pressed/default leaf so two keys of the same branch compare equal.
func branchOf(k EffectiveStateKey) string {
	s := string(k)
	for _, leaf := range []string{"Pressed", "Default"} {
		s = strings.TrimSuffix(s, leaf)
	}
	if s == "default" || s == "pressed" {
		return ""
	}
	return s
}

func TestDisabledDominates(t *testing.T) {
	for _, v := range AllVariants() {
		f := v.Family()
		for _, s := range States(f) {
			if !s.Disabled {
				continue
			}
			for _, g := range familyGroups(f) {
				if g == GroupStatic {
					continue
				}
				key := Resolve(v, g, s)
				assert.True(t, isDisabledKey(key), "%s %s %s resolved to %s", v, s, g, key)
			}
		}
	}
}

func TestPressedNeverChangesBranch(t *testing.T) {
	for _, v := range AllVariants() {
		f := v.Family()
		for _, s := range States(f) {
			if s.Pressed {
				continue
			}
			p := s.With(FlagPressed, true)
			for _, g := range familyGroups(f) {
				released, held := Resolve(v, g, s), Resolve(v, g, p)
				assert.Equal(t, branchOf(released), branchOf(held), "%s %s %s: %s vs %s", v, s, g, released, held)
			}
		}
	}
}

func TestInvalidOutranksCheckedForBorders(t *testing.T) {
	for _, v := range append(Variants(FamilyCheckbox), Variants(FamilyRadio)...) {
		for _, s := range States(v.Family()) {
			if !s.Invalid || s.Disabled {
				continue
			}
			key := Resolve(v, GroupBorder, s)
			assert.Contains(t, string(key), "Invalid", "%s %s", v, s)
		}
	}
}
