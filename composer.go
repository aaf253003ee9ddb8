package ctrlstyle

import (
	"fmt"
)

// Composer turns (Variant, InteractionState) pairs into StyleDescriptors.
//
// A Composer holds only immutable data and is safe for concurrent use.
type Composer struct {
	table           *Table
	scaler          Scaler
	disabledOpacity float64
}

// NewComposer validates cfg and checks that table is complete. Both checks
// run once here so Compose never meets a missing token.
func NewComposer(cfg Config, table *Table) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("token table is nil")
	}
	scaler, err := NewScaler(cfg.ScaleFactor)
	if err != nil {
		return nil, &ConfigError{Field: "ScaleFactor", Message: err.Error(), Err: err}
	}
	if err := CheckComplete(table); err != nil {
		return nil, err
	}
	return &Composer{table: table, scaler: scaler, disabledOpacity: cfg.DisabledOpacity}, nil
}

// MustComposer is NewComposer that panics on error.
func MustComposer(cfg Config, table *Table) *Composer {
	c, err := NewComposer(cfg, table)
	if err != nil {
		panic(err)
	}
	return c
}

// Table returns the composer's token table.
func (c *Composer) Table() *Table { return c.table }

// Scaler returns the composer's scale transform.
func (c *Composer) Scaler() Scaler { return c.scaler }

// Compose resolves every attribute of v's family for state s.
//
// Compose panics if v is not Valid or the table lacks an entry; NewComposer
// rules out the latter for every variant returned by Variants.
func (c *Composer) Compose(v Variant, s InteractionState) StyleDescriptor {
	if !v.Valid() {
		panic(fmt.Sprintf("ctrlstyle: variant %s is outside the declared domain", v))
	}
	f := v.Family()
	s = s.Normalize(f)

	d := StyleDescriptor{Variant: v, State: s, Opacity: 1}
	for _, g := range familyGroups(f) {
		d.keys[g] = Resolve(v, g, s)
	}

	for _, attr := range familyAttributes[f] {
		k := Key{Variant: v, State: d.keys[attr.Group()], Attribute: attr}
		val, ok := c.table.Lookup(k)
		if !ok {
			panic(fmt.Sprintf("ctrlstyle: token table has no entry for %s", k))
		}
		if attr == AttrFontSize {
			val = DimensionValue(c.scaler.Scale(val.Dimension()))
		}
		d.set(attr, val)
	}

	d.Icon = glyphFor(v, s)
	d.HandleVisible = f == FamilyRadio && s.Checked || f == FamilySwitch
	if s.Disabled {
		d.Opacity = c.disabledOpacity
	}
	return d
}

// ComposeAll composes every state of v in States order.
func (c *Composer) ComposeAll(v Variant) []StyleDescriptor {
	states := States(v.Family())
	out := make([]StyleDescriptor, len(states))
	for i, s := range states {
		out[i] = c.Compose(v, s)
	}
	return out
}
