package ctrlstyle

import (
	"fmt"
	"math"
	"sort"
)

// Issue is a single audit finding, shaped like a golangci-lint issue.
type Issue struct {
	FromLinter string   `json:"FromLinter"` // check name: "completeness", "contrast", ...
	Text       string   `json:"Text"`
	Severity   string   `json:"Severity"`
	Pos        IssuePos `json:"Pos"`
	// Token is the table key the issue is about, when it has one.
	Token string `json:"Token,omitempty"`
}

// IssuePos locates an issue. Tables carry no line information, so Line is
// only set for issues raised while decoding.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Audit check names.
const (
	CheckCompleteness = "completeness"
	CheckUnreachable  = "unreachable"
	CheckDimension    = "dimension"
	CheckContrast     = "contrast"
)

// Contrast thresholds from WCAG 2.1 AA.
const (
	DefaultMinContrast        = 4.5
	DefaultMinGraphicContrast = 3.0
)

// AuditConfig tunes Audit.
type AuditConfig struct {
	// Source names the table in issue positions.
	Source string
	// MinContrast is the minimum ratio of button text over its background.
	MinContrast float64
	// MinGraphicContrast is the minimum ratio of glyphs (checkmark, radio dot) over their fill.
	MinGraphicContrast float64
	// MaxSameIssues caps issues per check; 0 keeps all.
	MaxSameIssues int
}

// DefaultAuditConfig returns the AA thresholds.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Source:             "tokens",
		MinContrast:        DefaultMinContrast,
		MinGraphicContrast: DefaultMinGraphicContrast,
	}
}

// AuditResult holds every finding of one Audit run.
type AuditResult struct {
	Issues        []Issue
	IssuesByCheck map[string][]Issue

	Entries        int // entries in the table
	RequiredKeys   int // keys some (variant, state) resolves to
	MissingKeys    int // required keys with no entry of the right kind
	StatesChecked  int // (variant, state) pairs walked by the contrast check
	TruncatedCount int
}

// Coverage returns the share of required keys the table satisfies, 0 to 100.
func (r *AuditResult) Coverage() float64 {
	if r.RequiredKeys == 0 {
		return 100
	}
	return float64(r.RequiredKeys-r.MissingKeys) / float64(r.RequiredKeys) * 100
}

// ErrorCount counts error-severity issues.
func (r *AuditResult) ErrorCount() int { return r.count(SeverityError) }

// WarningCount counts warning-severity issues.
func (r *AuditResult) WarningCount() int { return r.count(SeverityWarning) }

func (r *AuditResult) count(severity string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// Audit inspects t for missing, unreachable, out-of-range and low-contrast
// tokens. Unlike CheckComplete it never stops at the first problem.
func Audit(t *Table, cfg AuditConfig) *AuditResult {
	if cfg.Source == "" {
		cfg.Source = "tokens"
	}
	required := RequiredKeys()
	result := &AuditResult{
		Entries:       t.Len(),
		RequiredKeys:  len(required),
		IssuesByCheck: make(map[string][]Issue),
	}

	add := func(check, severity string, k *Key, format string, args ...any) {
		issue := Issue{
			FromLinter: check,
			Text:       fmt.Sprintf(format, args...),
			Severity:   severity,
			Pos:        IssuePos{Filename: cfg.Source},
		}
		if k != nil {
			issue.Token = k.String()
		}
		result.Issues = append(result.Issues, issue)
	}

	auditCompleteness(t, required, add)
	result.MissingKeys = len(result.Issues)
	auditUnreachable(t, required, add)
	auditDimensions(t, add)
	if cfg.MinContrast > 0 || cfg.MinGraphicContrast > 0 {
		result.StatesChecked = auditContrast(t, cfg, add)
	}

	sortIssues(result.Issues)
	if cfg.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitPerCheck(result.Issues, cfg.MaxSameIssues)
	}
	for _, issue := range result.Issues {
		result.IssuesByCheck[issue.FromLinter] = append(result.IssuesByCheck[issue.FromLinter], issue)
	}
	return result
}

type issueFunc func(check, severity string, k *Key, format string, args ...any)

func auditCompleteness(t *Table, required []Key, add issueFunc) {
	for _, k := range required {
		v, ok := t.Lookup(k)
		switch {
		case !ok:
			add(CheckCompleteness, SeverityError, &k, "missing token %s for state key %q", k.Attribute, k.State)
		case k.Attribute.IsColor() && v.Kind() != KindColor:
			add(CheckCompleteness, SeverityError, &k, "token %s must be a color, got %s", k.Attribute, v)
		case !k.Attribute.IsColor() && v.Kind() != KindDimension:
			add(CheckCompleteness, SeverityError, &k, "token %s must be a dimension, got %s", k.Attribute, v)
		}
	}
}

func auditUnreachable(t *Table, required []Key, add issueFunc) {
	reachable := make(map[Key]bool, len(required))
	for _, k := range required {
		reachable[k] = true
	}
	for _, k := range t.Keys() {
		if !reachable[k] {
			add(CheckUnreachable, SeverityWarning, &k, "token %s is never selected by any state", k.Attribute)
		}
	}
}

func auditDimensions(t *Table, add issueFunc) {
	for _, k := range t.Keys() {
		v, _ := t.Lookup(k)
		if v.Kind() != KindDimension {
			continue
		}
		d := v.Dimension()
		switch {
		case math.IsNaN(d) || math.IsInf(d, 0):
			add(CheckDimension, SeverityError, &k, "%s is not a finite number", k.Attribute)
		case k.Attribute == AttrBorderWidth && d < 0:
			add(CheckDimension, SeverityError, &k, "%s must not be negative, got %s", k.Attribute, v)
		case k.Attribute != AttrBorderWidth && d <= 0:
			add(CheckDimension, SeverityError, &k, "%s must be positive, got %s", k.Attribute, v)
		}
	}
}

// contrastPair is a foreground drawn over a background in the same render.
type contrastPair struct {
	family     Family
	foreground Attribute
	background Attribute
	graphic    bool
	visible    func(InteractionState) bool
}

var contrastPairs = []contrastPair{
	{family: FamilyButton, foreground: AttrText, background: AttrBackground,
		visible: func(InteractionState) bool { return true }},
	{family: FamilyCheckbox, foreground: AttrIconColor, background: AttrBackground, graphic: true,
		visible: func(s InteractionState) bool { return s.Checked || s.Indeterminate }},
	{family: FamilyRadio, foreground: AttrHandleColor, background: AttrBackground, graphic: true,
		visible: func(s InteractionState) bool { return s.Checked }},
}

// auditContrast walks every enabled state where a foreground is drawn and
// reports each distinct low-contrast token pair once.
func auditContrast(t *Table, cfg AuditConfig, add issueFunc) int {
	checked := 0
	reported := make(map[[2]Key]bool)
	for _, pair := range contrastPairs {
		threshold := cfg.MinContrast
		if pair.graphic {
			threshold = cfg.MinGraphicContrast
		}
		if threshold <= 0 {
			continue
		}
		for _, v := range Variants(pair.family) {
			for _, s := range States(pair.family) {
				if s.Disabled || !pair.visible(s) {
					continue
				}
				checked++
				fg := Key{Variant: v, State: Resolve(v, pair.foreground.Group(), s), Attribute: pair.foreground}
				bg := Key{Variant: v, State: Resolve(v, pair.background.Group(), s), Attribute: pair.background}
				fv, ok1 := t.Lookup(fg)
				bv, ok2 := t.Lookup(bg)
				if !ok1 || !ok2 || fv.Kind() != KindColor || bv.Kind() != KindColor {
					continue
				}
				if reported[[2]Key{fg, bg}] {
					continue
				}
				ratio := ContrastRatio(fv.Color(), bv.Color())
				if ratio < threshold {
					reported[[2]Key{fg, bg}] = true
					add(CheckContrast, SeverityWarning, &fg, "%s %s over %s %s has contrast %.2f:1, want at least %.1f:1",
						pair.foreground, fv, pair.background, bv, ratio, threshold)
				}
			}
		}
	}
	return checked
}

// sortIssues orders issues by severity, then check, then token.
func sortIssues(issues []Issue) {
	rank := map[string]int{SeverityError: 0, SeverityWarning: 1}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return rank[issues[i].Severity] < rank[issues[j].Severity]
		}
		if issues[i].FromLinter != issues[j].FromLinter {
			return issues[i].FromLinter < issues[j].FromLinter
		}
		return issues[i].Token < issues[j].Token
	})
}

// limitPerCheck keeps at most max issues of each check.
func limitPerCheck(issues []Issue, max int) ([]Issue, int) {
	counts := make(map[string]int)
	var kept []Issue
	for _, issue := range issues {
		if counts[issue.FromLinter] < max {
			kept = append(kept, issue)
			counts[issue.FromLinter]++
		}
	}
	return kept, len(issues) - len(kept)
}
