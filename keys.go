package ctrlstyle

import "fmt"

// Group is a set of attributes that share one resolved state key.
type Group uint8

// Attribute groups.
const (
	GroupFill Group = iota
	GroupBorder
	GroupLabel
	GroupIcon
	GroupHandle
	GroupStatic
	groupCount
)

var groupNames = [groupCount]string{"fill", "border", "label", "icon", "handle", "static"}

// Groups lists every attribute group.
func Groups() []Group {
	return []Group{GroupFill, GroupBorder, GroupLabel, GroupIcon, GroupHandle, GroupStatic}
}

func (g Group) String() string {
	if g < groupCount {
		return groupNames[g]
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

// EffectiveStateKey is the bucket the resolver picks for one attribute group.
type EffectiveStateKey string

// State keys. Which keys a group can produce depends on the family.
const (
	KeyDefault         EffectiveStateKey = "default"
	KeyPressed         EffectiveStateKey = "pressed"
	KeySelected        EffectiveStateKey = "selected"
	KeySelectedPressed EffectiveStateKey = "selectedPressed"
	KeyDisabled        EffectiveStateKey = "disabled"

	KeyCheckedDefault        EffectiveStateKey = "checkedDefault"
	KeyCheckedPressed        EffectiveStateKey = "checkedPressed"
	KeyCheckedDisabled       EffectiveStateKey = "checkedDisabled"
	KeyIndeterminateDefault  EffectiveStateKey = "indeterminateDefault"
	KeyIndeterminatePressed  EffectiveStateKey = "indeterminatePressed"
	KeyIndeterminateDisabled EffectiveStateKey = "indeterminateDisabled"
	KeyUncheckedDefault      EffectiveStateKey = "uncheckedDefault"
	KeyUncheckedPressed      EffectiveStateKey = "uncheckedPressed"
	KeyUncheckedDisabled     EffectiveStateKey = "uncheckedDisabled"

	KeyCheckedInvalidDefault   EffectiveStateKey = "checkedInvalidDefault"
	KeyCheckedInvalidPressed   EffectiveStateKey = "checkedInvalidPressed"
	KeyUncheckedInvalidDefault EffectiveStateKey = "uncheckedInvalidDefault"
	KeyUncheckedInvalidPressed EffectiveStateKey = "uncheckedInvalidPressed"

	KeyOnPrimaryDefault  EffectiveStateKey = "onPrimaryDefault"
	KeyOnPrimaryPressed  EffectiveStateKey = "onPrimaryPressed"
	KeyOnPrimaryDisabled EffectiveStateKey = "onPrimaryDisabled"
	KeyOnSuccessDefault  EffectiveStateKey = "onSuccessDefault"
	KeyOnSuccessPressed  EffectiveStateKey = "onSuccessPressed"
	KeyOnSuccessDisabled EffectiveStateKey = "onSuccessDisabled"
	KeyOffDefault        EffectiveStateKey = "offDefault"
	KeyOffPressed        EffectiveStateKey = "offPressed"
	KeyOffDisabled       EffectiveStateKey = "offDisabled"

	// KeyStatic is the only key of GroupStatic; dimensions do not vary with state.
	KeyStatic EffectiveStateKey = "static"
)

// Attribute names one visual property of a descriptor.
type Attribute string

// Color attributes.
const (
	AttrBackground  Attribute = "background"
	AttrBorderColor Attribute = "border-color"
	AttrText        Attribute = "text"
	AttrIconColor   Attribute = "icon-color"
	AttrHandleColor Attribute = "handle-color"
)

// Dimension attributes.
const (
	AttrBorderWidth   Attribute = "border-width"
	AttrBorderRadius  Attribute = "border-radius"
	AttrWidth         Attribute = "width"
	AttrHeight        Attribute = "height"
	AttrPaddingInline Attribute = "padding-inline"
	AttrGap           Attribute = "gap"
	AttrIconSize      Attribute = "icon-size"
	AttrHandleSize    Attribute = "handle-size"
	AttrTrackPadding  Attribute = "track-padding"
	AttrFontSize      Attribute = "font-size"
)

var attributeGroups = map[Attribute]Group{
	AttrBackground:    GroupFill,
	AttrBorderColor:   GroupBorder,
	AttrText:          GroupLabel,
	AttrIconColor:     GroupIcon,
	AttrHandleColor:   GroupHandle,
	AttrBorderWidth:   GroupStatic,
	AttrBorderRadius:  GroupStatic,
	AttrWidth:         GroupStatic,
	AttrHeight:        GroupStatic,
	AttrPaddingInline: GroupStatic,
	AttrGap:           GroupStatic,
	AttrIconSize:      GroupStatic,
	AttrHandleSize:    GroupStatic,
	AttrTrackPadding:  GroupStatic,
	AttrFontSize:      GroupStatic,
}

// Group returns the attribute group a carries its key from.
func (a Attribute) Group() Group {
	return attributeGroups[a]
}

// IsColor reports whether a holds a color rather than a dimension.
func (a Attribute) IsColor() bool {
	g, ok := attributeGroups[a]
	return ok && g != GroupStatic
}

// Valid reports whether a is a known attribute.
func (a Attribute) Valid() bool {
	_, ok := attributeGroups[a]
	return ok
}

var familyAttributes = map[Family][]Attribute{
	FamilyButton: {
		AttrBackground, AttrBorderColor, AttrText,
		AttrBorderWidth, AttrBorderRadius, AttrHeight, AttrPaddingInline, AttrGap, AttrFontSize,
	},
	FamilyCheckbox: {
		AttrBackground, AttrBorderColor, AttrText, AttrIconColor,
		AttrBorderWidth, AttrBorderRadius, AttrWidth, AttrHeight, AttrGap, AttrIconSize, AttrFontSize,
	},
	FamilyRadio: {
		AttrBackground, AttrBorderColor, AttrText, AttrHandleColor,
		AttrBorderWidth, AttrBorderRadius, AttrWidth, AttrHeight, AttrGap, AttrHandleSize, AttrFontSize,
	},
	FamilySwitch: {
		AttrBackground, AttrText, AttrHandleColor,
		AttrBorderRadius, AttrWidth, AttrHeight, AttrGap, AttrHandleSize, AttrTrackPadding, AttrFontSize,
	},
}

// Attributes lists the attributes a family's descriptor carries.
func Attributes(f Family) []Attribute {
	return append([]Attribute(nil), familyAttributes[f]...)
}

// hasAttribute reports whether family f carries attribute a.
func hasAttribute(f Family, a Attribute) bool {
	for _, attr := range familyAttributes[f] {
		if attr == a {
			return true
		}
	}
	return false
}

// familyGroups lists the groups that at least one attribute of family f uses.
func familyGroups(f Family) []Group {
	var seen [groupCount]bool
	var out []Group
	for _, attr := range familyAttributes[f] {
		g := attr.Group()
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}
