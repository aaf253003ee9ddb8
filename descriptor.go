package ctrlstyle

import "encoding/json"

// StyleDescriptor is the complete set of resolved visual attributes for one
// render of one control.
//
// It is a comparable value: two descriptors composed from the same input are
// equal under ==. Fields outside Attributes(Variant.Family()) are zero.
type StyleDescriptor struct {
	Variant Variant
	State   InteractionState

	Background  Color
	BorderColor Color
	Text        Color
	IconColor   Color
	HandleColor Color

	BorderWidth   float64
	BorderRadius  float64
	Width         float64
	Height        float64
	PaddingInline float64
	Gap           float64
	IconSize      float64
	HandleSize    float64
	TrackPadding  float64
	// FontSize is already multiplied by the composer's scale factor.
	FontSize float64

	Icon          IconGlyph
	HandleVisible bool
	Opacity       float64

	keys [groupCount]EffectiveStateKey
}

// Key returns the state key the resolver chose for group g.
func (d StyleDescriptor) Key(g Group) EffectiveStateKey {
	if g >= groupCount {
		return ""
	}
	return d.keys[g]
}

// Value returns attribute a as a token Value. The second result is false
// when the descriptor's family does not carry a.
func (d StyleDescriptor) Value(a Attribute) (Value, bool) {
	if !hasAttribute(d.Variant.Family(), a) {
		return Value{}, false
	}
	switch a {
	case AttrBackground:
		return ColorValue(d.Background), true
	case AttrBorderColor:
		return ColorValue(d.BorderColor), true
	case AttrText:
		return ColorValue(d.Text), true
	case AttrIconColor:
		return ColorValue(d.IconColor), true
	case AttrHandleColor:
		return ColorValue(d.HandleColor), true
	case AttrBorderWidth:
		return DimensionValue(d.BorderWidth), true
	case AttrBorderRadius:
		return DimensionValue(d.BorderRadius), true
	case AttrWidth:
		return DimensionValue(d.Width), true
	case AttrHeight:
		return DimensionValue(d.Height), true
	case AttrPaddingInline:
		return DimensionValue(d.PaddingInline), true
	case AttrGap:
		return DimensionValue(d.Gap), true
	case AttrIconSize:
		return DimensionValue(d.IconSize), true
	case AttrHandleSize:
		return DimensionValue(d.HandleSize), true
	case AttrTrackPadding:
		return DimensionValue(d.TrackPadding), true
	case AttrFontSize:
		return DimensionValue(d.FontSize), true
	}
	return Value{}, false
}

// set stores a table value into the field backing a.
func (d *StyleDescriptor) set(a Attribute, v Value) {
	switch a {
	case AttrBackground:
		d.Background = v.Color()
	case AttrBorderColor:
		d.BorderColor = v.Color()
	case AttrText:
		d.Text = v.Color()
	case AttrIconColor:
		d.IconColor = v.Color()
	case AttrHandleColor:
		d.HandleColor = v.Color()
	case AttrBorderWidth:
		d.BorderWidth = v.Dimension()
	case AttrBorderRadius:
		d.BorderRadius = v.Dimension()
	case AttrWidth:
		d.Width = v.Dimension()
	case AttrHeight:
		d.Height = v.Dimension()
	case AttrPaddingInline:
		d.PaddingInline = v.Dimension()
	case AttrGap:
		d.Gap = v.Dimension()
	case AttrIconSize:
		d.IconSize = v.Dimension()
	case AttrHandleSize:
		d.HandleSize = v.Dimension()
	case AttrTrackPadding:
		d.TrackPadding = v.Dimension()
	case AttrFontSize:
		d.FontSize = v.Dimension()
	}
}

// descriptorJSON is the export schema of a descriptor.
type descriptorJSON struct {
	Variant    string                       `json:"variant"`
	State      string                       `json:"state"`
	Keys       map[string]EffectiveStateKey `json:"keys"`
	Attributes map[Attribute]Value          `json:"attributes"`
	Icon       IconGlyph                    `json:"icon,omitempty"`
	Handle     *bool                        `json:"handle_visible,omitempty"`
	Opacity    float64                      `json:"opacity"`
}

// MarshalJSON exports only the attributes the family carries.
func (d StyleDescriptor) MarshalJSON() ([]byte, error) {
	f := d.Variant.Family()
	out := descriptorJSON{
		Variant:    d.Variant.String(),
		State:      d.State.String(),
		Keys:       make(map[string]EffectiveStateKey),
		Attributes: make(map[Attribute]Value),
		Opacity:    d.Opacity,
	}
	for _, g := range familyGroups(f) {
		out.Keys[g.String()] = d.keys[g]
	}
	for _, a := range familyAttributes[f] {
		v, _ := d.Value(a)
		out.Attributes[a] = v
	}
	switch f {
	case FamilyCheckbox:
		out.Icon = d.Icon
	case FamilyRadio:
		visible := d.HandleVisible
		out.Handle = &visible
	}
	return json.Marshal(out)
}
