package ctrlstyle

import (
	"fmt"
	"strings"
)

// InteractionState is a snapshot of the dynamic flags of a control.
//
// The host produces a fresh value on every gesture or state change. Each
// family reads only the flags listed by Flags; the rest are ignored.
type InteractionState struct {
	Pressed       bool `json:"pressed,omitempty"`
	Selected      bool `json:"selected,omitempty"`
	Checked       bool `json:"checked,omitempty"`
	Indeterminate bool `json:"indeterminate,omitempty"`
	Disabled      bool `json:"disabled,omitempty"`
	Invalid       bool `json:"invalid,omitempty"`
	On            bool `json:"on,omitempty"`
}

// Flag names a single interaction flag.
type Flag string

// Interaction flags.
const (
	FlagPressed       Flag = "pressed"
	FlagSelected      Flag = "selected"
	FlagChecked       Flag = "checked"
	FlagIndeterminate Flag = "indeterminate"
	FlagDisabled      Flag = "disabled"
	FlagInvalid       Flag = "invalid"
	FlagOn            Flag = "on"
)

var familyFlags = map[Family][]Flag{
	FamilyButton:   {FlagPressed, FlagSelected, FlagDisabled},
	FamilyCheckbox: {FlagPressed, FlagChecked, FlagIndeterminate, FlagDisabled, FlagInvalid},
	FamilyRadio:    {FlagPressed, FlagChecked, FlagDisabled, FlagInvalid},
	FamilySwitch:   {FlagPressed, FlagOn, FlagDisabled},
}

// Flags lists the flags a family reads.
func Flags(f Family) []Flag {
	return append([]Flag(nil), familyFlags[f]...)
}

// Has reports whether flag is set.
func (s InteractionState) Has(flag Flag) bool {
	switch flag {
	case FlagPressed:
		return s.Pressed
	case FlagSelected:
		return s.Selected
	case FlagChecked:
		return s.Checked
	case FlagIndeterminate:
		return s.Indeterminate
	case FlagDisabled:
		return s.Disabled
	case FlagInvalid:
		return s.Invalid
	case FlagOn:
		return s.On
	}
	return false
}

// With returns a copy of s with flag set to value.
func (s InteractionState) With(flag Flag, value bool) InteractionState {
	switch flag {
	case FlagPressed:
		s.Pressed = value
	case FlagSelected:
		s.Selected = value
	case FlagChecked:
		s.Checked = value
	case FlagIndeterminate:
		s.Indeterminate = value
	case FlagDisabled:
		s.Disabled = value
	case FlagInvalid:
		s.Invalid = value
	case FlagOn:
		s.On = value
	}
	return s
}

// Normalize clears the flags family f does not read.
func (s InteractionState) Normalize(f Family) InteractionState {
	var out InteractionState
	for _, flag := range familyFlags[f] {
		out = out.With(flag, s.Has(flag))
	}
	return out
}

func (s InteractionState) String() string {
	var set []string
	for _, flag := range []Flag{FlagDisabled, FlagInvalid, FlagSelected, FlagChecked, FlagIndeterminate, FlagOn, FlagPressed} {
		if s.Has(flag) {
			set = append(set, string(flag))
		}
	}
	if len(set) == 0 {
		return "idle"
	}
	return strings.Join(set, "+")
}

// ParseState builds a state from flag names. "idle" and empty names are skipped.
func ParseState(flags []string) (InteractionState, error) {
	var s InteractionState
	for _, raw := range flags {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "idle" {
			continue
		}
		flag := Flag(name)
		switch flag {
		case FlagPressed, FlagSelected, FlagChecked, FlagIndeterminate, FlagDisabled, FlagInvalid, FlagOn:
			s = s.With(flag, true)
		default:
			return InteractionState{}, fmt.Errorf("unknown state flag %q", raw)
		}
	}
	return s, nil
}

// States enumerates every combination of the flags family f reads.
func States(f Family) []InteractionState {
	flags := familyFlags[f]
	out := make([]InteractionState, 0, 1<<len(flags))
	for mask := 0; mask < 1<<len(flags); mask++ {
		var s InteractionState
		for i, flag := range flags {
			if mask&(1<<i) != 0 {
				s = s.With(flag, true)
			}
		}
		out = append(out, s)
	}
	return out
}
