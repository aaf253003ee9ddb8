package ctrlstyle

import (
	"sort"
)

// Key addresses one token: the value of Attribute for Variant in State.
type Key struct {
	Variant   Variant
	State     EffectiveStateKey
	Attribute Attribute
}

func (k Key) String() string {
	return k.Variant.String() + ":" + string(k.State) + ":" + string(k.Attribute)
}

// Table is an immutable token table keyed by (Variant, EffectiveStateKey, Attribute).
//
// A Table is safe for concurrent use; nothing mutates it after NewTable returns.
type Table struct {
	entries map[Key]Value
}

// NewTable copies entries into a new table.
func NewTable(entries map[Key]Value) *Table {
	t := &Table{entries: make(map[Key]Value, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Lookup returns the value stored under k.
func (t *Table) Lookup(k Key) (Value, bool) {
	v, ok := t.entries[k]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns every key in a stable order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Entries returns a copy of the underlying mapping.
func (t *Table) Entries() map[Key]Value {
	out := make(map[Key]Value, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
}

// RequiredKeys enumerates every key some (variant, state) pair resolves to.
//
// A table is complete when it holds a value of the right kind for each of
// them; these are exactly the lookups Compose can perform.
func RequiredKeys() []Key {
	seen := make(map[Key]bool)
	var out []Key
	for _, v := range AllVariants() {
		f := v.Family()
		for _, s := range States(f) {
			for _, attr := range familyAttributes[f] {
				k := Key{Variant: v, State: Resolve(v, attr.Group(), s), Attribute: attr}
				if !seen[k] {
					seen[k] = true
					out = append(out, k)
				}
			}
		}
	}
	sortKeys(out)
	return out
}

// CheckComplete verifies t against RequiredKeys. Missing entries and entries
// of the wrong kind are reported together in a *CompletenessError.
func CheckComplete(t *Table) error {
	var missing, mistyped []Key
	for _, k := range RequiredKeys() {
		v, ok := t.Lookup(k)
		switch {
		case !ok:
			missing = append(missing, k)
		case k.Attribute.IsColor() != (v.Kind() == KindColor):
			mistyped = append(mistyped, k)
		}
	}
	if len(missing) == 0 && len(mistyped) == 0 {
		return nil
	}
	return &CompletenessError{Missing: missing, Mistyped: mistyped}
}
