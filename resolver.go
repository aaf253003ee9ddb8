package ctrlstyle

import "fmt"

// Predicate tests a variant and state against one rule.
type Predicate func(v Variant, s InteractionState) bool

// Rule maps a predicate to the key it selects.
type Rule struct {
	Name  string
	Key   EffectiveStateKey
	Match Predicate
}

// RuleSet is evaluated top-down; the first matching rule wins. A valid
// RuleSet always ends with a catch-all rule.
type RuleSet []Rule

// Resolve returns the key of the first matching rule.
func (rs RuleSet) Resolve(v Variant, s InteractionState) (EffectiveStateKey, int) {
	for i, r := range rs {
		if r.Match(v, s) {
			return r.Key, i
		}
	}
	// Unreachable for rule sets built with otherwise(); checked by tests.
	panic(fmt.Sprintf("ctrlstyle: no rule matched %s %s", v, s))
}

// Keys lists the distinct keys a rule set can produce, in rule order.
func (rs RuleSet) Keys() []EffectiveStateKey {
	seen := make(map[EffectiveStateKey]bool, len(rs))
	out := make([]EffectiveStateKey, 0, len(rs))
	for _, r := range rs {
		if !seen[r.Key] {
			seen[r.Key] = true
			out = append(out, r.Key)
		}
	}
	return out
}

// staticRules serve GroupStatic in every family.
var staticRules = RuleSet{otherwise("static", KeyStatic)}

// RulesFor returns the rule set of group g in family f, or nil when the
// family does not use the group.
func RulesFor(f Family, g Group) RuleSet {
	if g == GroupStatic {
		return staticRules
	}
	return familyRules[f][g]
}

// Resolve reduces a state to the key of group g for variant v.
func Resolve(v Variant, g Group, s InteractionState) EffectiveStateKey {
	key, _ := Explain(v, g, s)
	return key
}

// Explain is Resolve that also returns the rule that matched.
func Explain(v Variant, g Group, s InteractionState) (EffectiveStateKey, Rule) {
	rs := RulesFor(v.Family(), g)
	if rs == nil {
		return "", Rule{}
	}
	key, i := rs.Resolve(v, s.Normalize(v.Family()))
	return key, rs[i]
}

// Predicates.

func disabled(_ Variant, s InteractionState) bool      { return s.Disabled }
func pressed(_ Variant, s InteractionState) bool       { return s.Pressed }
func selected(_ Variant, s InteractionState) bool      { return s.Selected }
func checked(_ Variant, s InteractionState) bool       { return s.Checked }
func indeterminate(_ Variant, s InteractionState) bool { return s.Indeterminate }
func invalid(_ Variant, s InteractionState) bool       { return s.Invalid }
func on(_ Variant, s InteractionState) bool            { return s.On }
func always(Variant, InteractionState) bool            { return true }

func checkedOrIndeterminate(_ Variant, s InteractionState) bool {
	return s.Checked || s.Indeterminate
}

func toneIs(t SwitchTone) Predicate {
	return func(v Variant, _ InteractionState) bool { return v.SwitchTone() == t }
}

func all(preds ...Predicate) Predicate {
	return func(v Variant, s InteractionState) bool {
		for _, p := range preds {
			if !p(v, s) {
				return false
			}
		}
		return true
	}
}

func when(name string, key EffectiveStateKey, preds ...Predicate) Rule {
	return Rule{Name: name, Key: key, Match: all(preds...)}
}

func otherwise(name string, key EffectiveStateKey) Rule {
	return Rule{Name: name, Key: key, Match: always}
}
