package ctrlstyle

import (
	"fmt"
	"sort"
	"strings"
)

// Document is the decoded form of a token source file, before expansion
// over the variant domain.
type Document struct {
	Version  string                     `yaml:"version" validate:"required"`
	Name     string                     `yaml:"name,omitempty"`
	Families map[string]*FamilyDocument `yaml:"families" validate:"required,min=1,dive,keys,oneof=button checkbox radio switch,endkeys,required"`
}

// FamilyDocument holds the raw tokens of one family.
//
// Colors apply to every variant of the family; Tones only to variants of
// that tone. Sizes and Shapes hold dimensions.
type FamilyDocument struct {
	Colors map[string]map[string]string            `yaml:"colors,omitempty"`
	Tones  map[string]map[string]map[string]string `yaml:"tones,omitempty"`
	Sizes  map[string]map[string]float64           `yaml:"sizes,omitempty"`
	Shapes map[string]map[string]float64           `yaml:"shapes,omitempty"`
}

// NewDocument returns an empty document.
func NewDocument(name string) *Document {
	return &Document{Version: "1", Name: name, Families: make(map[string]*FamilyDocument)}
}

// Family returns the family document for name, creating it when absent.
func (d *Document) Family(name string) *FamilyDocument {
	if d.Families == nil {
		d.Families = make(map[string]*FamilyDocument)
	}
	fd, ok := d.Families[name]
	if !ok || fd == nil {
		fd = &FamilyDocument{}
		d.Families[name] = fd
	}
	return fd
}

// SetColor records a tone-independent color token.
func (fd *FamilyDocument) SetColor(attr, key, hex string) {
	if fd.Colors == nil {
		fd.Colors = make(map[string]map[string]string)
	}
	setString(fd.Colors, attr, key, hex)
}

// SetToneColor records a color token of one tone. Tone names are stored
// lowercased.
func (fd *FamilyDocument) SetToneColor(tone, attr, key, hex string) {
	if fd.Tones == nil {
		fd.Tones = make(map[string]map[string]map[string]string)
	}
	tone = canonicalTone(tone)
	if fd.Tones[tone] == nil {
		fd.Tones[tone] = make(map[string]map[string]string)
	}
	setString(fd.Tones[tone], attr, key, hex)
}

// SetSize records a dimension of one size class. Shorthands ("s", "m",
// "l") are stored under the full size name.
func (fd *FamilyDocument) SetSize(size, attr string, v float64) {
	if fd.Sizes == nil {
		fd.Sizes = make(map[string]map[string]float64)
	}
	setFloat(fd.Sizes, canonicalSize(size), attr, v)
}

// SetShape records a dimension of one shape.
func (fd *FamilyDocument) SetShape(shape, attr string, v float64) {
	if fd.Shapes == nil {
		fd.Shapes = make(map[string]map[string]float64)
	}
	setFloat(fd.Shapes, canonicalShape(shape), attr, v)
}

// Names that do not parse are kept as written so Table can report them.
func canonicalTone(name string) string { return strings.ToLower(name) }

func canonicalSize(name string) string {
	if name == "" {
		return name
	}
	if size, err := ParseSize(name); err == nil {
		return size.String()
	}
	return name
}

func canonicalShape(name string) string {
	if name == "" {
		return name
	}
	if shape, err := ParseButtonShape(name); err == nil {
		return shape.String()
	}
	return name
}

// canonicalKeys rekeys m under canonical names. Two spellings of one name
// are an error.
func canonicalKeys[V any](section string, m map[string]V, canon func(string) string) (map[string]V, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]V, len(m))
	spelledAs := make(map[string]string, len(m))
	for _, name := range sortedKeys(m) {
		c := canon(name)
		if prev, dup := spelledAs[c]; dup {
			return nil, fmt.Errorf("%s: %q and %q both name %s", section, prev, name, c)
		}
		spelledAs[c] = name
		out[c] = m[name]
	}
	return out, nil
}

// canonical returns a copy of fd with tone, size and shape names in
// canonical form.
func (fd *FamilyDocument) canonical() (*FamilyDocument, error) {
	tones, err := canonicalKeys("tones", fd.Tones, canonicalTone)
	if err != nil {
		return nil, err
	}
	sizes, err := canonicalKeys("sizes", fd.Sizes, canonicalSize)
	if err != nil {
		return nil, err
	}
	shapes, err := canonicalKeys("shapes", fd.Shapes, canonicalShape)
	if err != nil {
		return nil, err
	}
	return &FamilyDocument{Colors: fd.Colors, Tones: tones, Sizes: sizes, Shapes: shapes}, nil
}

// canonicalize rewrites every family of d in canonical form.
func (d *Document) canonicalize() error {
	for _, famName := range sortedKeys(d.Families) {
		fd := d.Families[famName]
		if fd == nil {
			continue
		}
		c, err := fd.canonical()
		if err != nil {
			return fmt.Errorf("family %s: %w", famName, err)
		}
		d.Families[famName] = c
	}
	return nil
}

func setString(m map[string]map[string]string, outer, inner, v string) {
	if m[outer] == nil {
		m[outer] = make(map[string]string)
	}
	m[outer][inner] = v
}

func setFloat(m map[string]map[string]float64, outer, inner string, v float64) {
	if m[outer] == nil {
		m[outer] = make(map[string]float64)
	}
	m[outer][inner] = v
}

// Merge copies every token of other into d; tokens of other win. It returns
// a description of each token that other overrode with a different value.
// Size and shape shorthands are matched against their full names.
func (d *Document) Merge(other *Document) []string {
	var overrides []string
	note := func(path, old, new string) {
		if old != new {
			overrides = append(overrides, fmt.Sprintf("%s: %s -> %s", path, old, new))
		}
	}

	for _, famName := range sortedKeys(other.Families) {
		src := other.Families[famName]
		if src == nil {
			continue
		}
		dst := d.Family(famName)
		for _, attr := range sortedKeys(src.Colors) {
			for _, key := range sortedKeys(src.Colors[attr]) {
				hex := src.Colors[attr][key]
				if old, ok := dst.Colors[attr][key]; ok {
					note(famName+".colors."+attr+"."+key, old, hex)
				}
				dst.SetColor(attr, key, hex)
			}
		}
		for _, rawTone := range sortedKeys(src.Tones) {
			tone := canonicalTone(rawTone)
			for _, attr := range sortedKeys(src.Tones[rawTone]) {
				for _, key := range sortedKeys(src.Tones[rawTone][attr]) {
					hex := src.Tones[rawTone][attr][key]
					if old, ok := dst.Tones[tone][attr][key]; ok {
						note(famName+".tones."+tone+"."+attr+"."+key, old, hex)
					}
					dst.SetToneColor(tone, attr, key, hex)
				}
			}
		}
		for _, rawSize := range sortedKeys(src.Sizes) {
			size := canonicalSize(rawSize)
			for _, attr := range sortedKeys(src.Sizes[rawSize]) {
				v := src.Sizes[rawSize][attr]
				if old, ok := dst.Sizes[size][attr]; ok {
					note(famName+".sizes."+size+"."+attr, fmt.Sprint(old), fmt.Sprint(v))
				}
				dst.SetSize(size, attr, v)
			}
		}
		for _, rawShape := range sortedKeys(src.Shapes) {
			shape := canonicalShape(rawShape)
			for _, attr := range sortedKeys(src.Shapes[rawShape]) {
				v := src.Shapes[rawShape][attr]
				if old, ok := dst.Shapes[shape][attr]; ok {
					note(famName+".shapes."+shape+"."+attr, fmt.Sprint(old), fmt.Sprint(v))
				}
				dst.SetShape(shape, attr, v)
			}
		}
	}
	sort.Strings(overrides)
	return overrides
}

// Validate checks the document structure.
func (d *Document) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		return fmt.Errorf("invalid token document: %w", err)
	}
	return nil
}

// Table expands the document over the declared variant domain.
//
// Unknown family, tone, size, shape, attribute and state key names are
// reported as a *ParseError, as are two spellings of the same size, shape
// or tone ("s" and "small"). Expansion does not check completeness; see
// CheckComplete.
func (d *Document) Table() (*Table, error) {
	if err := d.Validate(); err != nil {
		return nil, NewParseError(d.Name, 0, "", err)
	}

	entries := make(map[Key]Value)
	for _, famName := range sortedKeys(d.Families) {
		f, err := ParseFamily(famName)
		if err != nil {
			return nil, NewParseError(d.Name, 0, "", err)
		}
		if err := d.Families[famName].expand(f, entries); err != nil {
			return nil, NewParseError(d.Name, 0, "", fmt.Errorf("family %s: %w", famName, err))
		}
	}
	return NewTable(entries), nil
}

func (fd *FamilyDocument) expand(f Family, entries map[Key]Value) error {
	if fd == nil {
		return nil
	}
	fd, err := fd.canonical()
	if err != nil {
		return err
	}
	if err := fd.checkNames(f); err != nil {
		return err
	}
	variants := Variants(f)

	for _, v := range variants {
		if err := expandColors(fd.Colors, v, entries); err != nil {
			return err
		}
		if tone := v.Tone(); tone != "" {
			if err := expandColors(fd.Tones[tone], v, entries); err != nil {
				return fmt.Errorf("tone %s: %w", tone, err)
			}
		}
		if attrs, ok := fd.Sizes[v.Size().String()]; ok {
			if err := expandDimensions(attrs, v, entries); err != nil {
				return fmt.Errorf("size %s: %w", v.Size(), err)
			}
		}
		if f == FamilyButton {
			if attrs, ok := fd.Shapes[v.ButtonShape().String()]; ok {
				if err := expandDimensions(attrs, v, entries); err != nil {
					return fmt.Errorf("shape %s: %w", v.ButtonShape(), err)
				}
			}
		}
	}
	return nil
}

// checkNames rejects tone, size and shape names the family does not declare.
func (fd *FamilyDocument) checkNames(f Family) error {
	for tone := range fd.Tones {
		var err error
		switch f {
		case FamilyButton:
			_, err = ParseButtonTone(tone)
		case FamilySwitch:
			_, err = ParseSwitchTone(tone)
		default:
			err = fmt.Errorf("%s has no tones", f)
		}
		if err != nil || tone == "" {
			return fmt.Errorf("tones: %w", errOr(err, "empty tone name"))
		}
	}
	for size := range fd.Sizes {
		if _, err := ParseSize(size); err != nil || size == "" {
			return fmt.Errorf("sizes: %w", errOr(err, "empty size name"))
		}
	}
	for shape := range fd.Shapes {
		if f != FamilyButton {
			return fmt.Errorf("shapes: %s has no shapes", f)
		}
		if _, err := ParseButtonShape(shape); err != nil || shape == "" {
			return fmt.Errorf("shapes: %w", errOr(err, "empty shape name"))
		}
	}
	return nil
}

func errOr(err error, msg string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("%s", msg)
}

func expandColors(attrs map[string]map[string]string, v Variant, entries map[Key]Value) error {
	for attrName, keys := range attrs {
		attr := Attribute(attrName)
		if !attr.IsColor() {
			return fmt.Errorf("%q is not a color attribute", attrName)
		}
		for keyName, hex := range keys {
			key, err := parseStateKey(keyName)
			if err != nil {
				return fmt.Errorf("%s: %w", attrName, err)
			}
			c, err := ParseColor(hex)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", attrName, keyName, err)
			}
			entries[Key{Variant: v, State: key, Attribute: attr}] = ColorValue(c)
		}
	}
	return nil
}

func expandDimensions(attrs map[string]float64, v Variant, entries map[Key]Value) error {
	for attrName, d := range attrs {
		attr := Attribute(attrName)
		if !attr.Valid() || attr.IsColor() {
			return fmt.Errorf("%q is not a dimension attribute", attrName)
		}
		entries[Key{Variant: v, State: KeyStatic, Attribute: attr}] = DimensionValue(d)
	}
	return nil
}

var knownStateKeys = func() map[EffectiveStateKey]bool {
	known := make(map[EffectiveStateKey]bool)
	for _, groups := range familyRules {
		for _, rs := range groups {
			for _, k := range rs.Keys() {
				known[k] = true
			}
		}
	}
	return known
}()

func parseStateKey(s string) (EffectiveStateKey, error) {
	key := EffectiveStateKey(s)
	if !knownStateKeys[key] {
		return "", fmt.Errorf("unknown state key %q", s)
	}
	return key, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
