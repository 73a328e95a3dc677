// Package csstransform is the minify/transform driver: a depth-first walk
// over a Stylesheet that runs the property-handler pipeline on every
// style rule's declaration block, resolves @custom-media references
// inside @media preludes, injects @supports-guarded fallbacks for values
// not every target understands, and removes rules whose condition the
// build already knows the answer to.
//
// This runs as a separate post-parse pass rather than resolving inline
// during parsing, so the handler framework stays runnable independently
// of parsing (e.g. from a future fmt-only code path that never minifies).
package csstransform

import (
	"sort"
	"strings"

	"cssc/internal/clog"
	"cssc/internal/compat"
	"cssc/internal/cssast"
	"cssc/internal/csshandler"
	"cssc/internal/location"
)

// Options configures a transform pass.
type Options struct {
	Minify      bool
	Constraints map[compat.Engine][]int
	RTLFallback bool // emit [dir=rtl] overrides when expanding logical properties

	// UsedSymbols, when non-nil, turns on dead-rule elimination for style
	// rules and @keyframes/@counter-style blocks: only a rule whose
	// selector class/id or at-rule name appears in this set survives.
	// nil leaves every such rule in place, since a caller that never ran
	// usage analysis has no grounds to drop anything.
	UsedSymbols map[string]bool
}

// Transform walks sheet and returns a new Stylesheet with every style
// rule's declarations fused/expanded/prefixed in place; sheet's own Rules
// slice is not mutated so a caller can diff before/after for testing.
func Transform(log *clog.Log, sheet *cssast.Stylesheet, opts Options) *cssast.Stylesheet {
	customMedia := collectCustomMedia(sheet.Rules)
	out := &cssast.Stylesheet{
		Filename:        sheet.Filename,
		Options:         sheet.Options,
		SourceFilenames: sheet.SourceFilenames,
		Rules:           transformRules(sheet.Rules, opts, customMedia),
	}
	return out
}

func collectCustomMedia(rules []cssast.Rule) map[string]string {
	m := map[string]string{}
	for _, r := range rules {
		if cm, ok := r.(*cssast.CustomMediaRule); ok {
			m[cm.Name] = cm.Query
		}
	}
	return m
}

func transformRules(rules []cssast.Rule, opts Options, customMedia map[string]string) []cssast.Rule {
	var out []cssast.Rule
	for _, r := range rules {
		switch rule := r.(type) {
		case *cssast.StyleRule:
			if opts.UsedSymbols != nil && !styleRuleIsUsed(rule, opts.UsedSymbols) {
				continue
			}
			out = append(out, transformStyleRule(rule, opts)...)

		case *cssast.MediaRule:
			query := resolveCustomMedia(rule.Query, customMedia)
			switch evaluateAlwaysNever(query) {
			case conditionAlways:
				out = append(out, transformRules(rule.Rules, opts, customMedia)...)
			case conditionNever:
				// drop entirely: dead-rule elimination
			default:
				out = append(out, &cssast.MediaRule{Query: query, Rules: transformRules(rule.Rules, opts, customMedia)})
			}

		case *cssast.SupportsRule:
			switch evaluateSupportsAlwaysNever(rule.Condition) {
			case conditionAlways:
				out = append(out, transformRules(rule.Rules, opts, customMedia)...)
			case conditionNever:
				// drop entirely: dead-rule elimination
			default:
				out = append(out, &cssast.SupportsRule{Condition: rule.Condition, Rules: transformRules(rule.Rules, opts, customMedia)})
			}

		case *cssast.LayerBlockRule:
			out = append(out, &cssast.LayerBlockRule{Name: rule.Name, Rules: transformRules(rule.Rules, opts, customMedia)})

		case *cssast.MozDocumentRule:
			out = append(out, &cssast.MozDocumentRule{Prelude: rule.Prelude, Rules: transformRules(rule.Rules, opts, customMedia)})

		case *cssast.CustomMediaRule:
			// fully resolved into every @media prelude that referenced it; the
			// declaration itself carries no output (custom-media is a build-time
			// macro, not a runtime CSS construct)

		case *cssast.KeyframesRule:
			if opts.UsedSymbols != nil && !opts.UsedSymbols[rule.Name] {
				continue
			}
			out = append(out, transformKeyframes(rule, opts))

		case *cssast.CounterStyleRule:
			if opts.UsedSymbols != nil && !opts.UsedSymbols[rule.Name] {
				continue
			}
			out = append(out, rule)

		default:
			out = append(out, r)
		}
	}
	return out
}

// styleRuleIsUsed reports whether any class or id named in rule's selector
// list appears in used: a rule with no class/id selectors at all (a bare
// type or attribute selector, "*", or "&") is always kept, since usage
// analysis only ever names classes and ids.
func styleRuleIsUsed(rule *cssast.StyleRule, used map[string]bool) bool {
	named := false
	for _, sel := range rule.Selectors.Selectors {
		for _, compound := range sel.Compounds {
			for _, sub := range compound.SubclassSelectors {
				switch s := sub.(type) {
				case *cssast.ClassSelector:
					named = true
					if used[s.Name] {
						return true
					}
				case *cssast.IDSelector:
					named = true
					if used[s.Name] {
						return true
					}
				}
			}
		}
	}
	return !named
}

func transformKeyframes(rule *cssast.KeyframesRule, opts Options) cssast.Rule {
	blocks := make([]cssast.KeyframeBlock, len(rule.Blocks))
	for i, b := range rule.Blocks {
		decls, _, _ := runHandlers(b.Declarations, opts)
		blocks[i] = cssast.KeyframeBlock{Selectors: b.Selectors, Declarations: decls}
	}
	return &cssast.KeyframesRule{Name: rule.Name, Prefix: rule.Prefix, Blocks: blocks}
}

// transformStyleRule runs the declaration-level handler pipeline and
// returns the rewritten rule alongside whatever sibling rules that
// pipeline required: an "[dir=rtl]" override rule for logical properties
// needing an RTL fallback, and one "@supports (...) { ... }" rule per
// distinct condition for declarations needing a fallback value injected.
// Both siblings are genuinely separate rules (not appended into the same
// declaration block) since neither an RTL override nor a guarded modern
// value is safe to apply unconditionally alongside the value it replaces.
func transformStyleRule(rule *cssast.StyleRule, opts Options) []cssast.Rule {
	declarations, rtlOverrides, supportsOverrides := runHandlers(rule.Declarations, opts)
	out := []cssast.Rule{&cssast.StyleRule{
		Selectors:    rule.Selectors,
		Declarations: declarations,
		Rules:        transformRules(rule.Rules, opts, nil),
	}}
	if len(rtlOverrides) > 0 {
		out = append(out, &cssast.StyleRule{
			Selectors:    rtlScopedSelectors(rule.Selectors),
			Declarations: splitByImportant(rtlOverrides),
		})
	}
	out = append(out, supportsFallbackRules(rule.Selectors, supportsOverrides)...)
	return out
}

// rtlScopedSelectors prepends a "[dir=rtl]" attribute selector onto each
// complex selector's first compound, so the sibling rule it guards only
// applies to elements explicitly marked right-to-left.
func rtlScopedSelectors(list cssast.SelectorList) cssast.SelectorList {
	out := make([]cssast.ComplexSelector, len(list.Selectors))
	dirRTL := &cssast.AttributeSelector{Name: cssast.NamespacedName{Name: "dir"}, MatcherOp: "=", Value: "rtl"}
	for i, sel := range list.Selectors {
		compounds := make([]cssast.CompoundSelector, len(sel.Compounds))
		copy(compounds, sel.Compounds)
		if len(compounds) == 0 {
			compounds = []cssast.CompoundSelector{{}}
		}
		first := compounds[0]
		subs := make([]cssast.SubclassSelector, 0, len(first.SubclassSelectors)+1)
		subs = append(subs, dirRTL)
		subs = append(subs, first.SubclassSelectors...)
		first.SubclassSelectors = subs
		compounds[0] = first
		out[i] = cssast.ComplexSelector{Compounds: compounds}
	}
	return cssast.SelectorList{Selectors: out}
}

func splitByImportant(props []cssast.Property) cssast.DeclarationBlock {
	var block cssast.DeclarationBlock
	for _, p := range props {
		if p.Important {
			block.ImportantDeclarations = append(block.ImportantDeclarations, p)
		} else {
			block.Declarations = append(block.Declarations, p)
		}
	}
	return block
}

// supportsFallbackRules groups overrides by their condition text (two
// declarations needing the same feature test share one @supports block)
// and builds one rule-scoped sibling per group, in a deterministic order
// so output doesn't depend on map iteration.
func supportsFallbackRules(selectors cssast.SelectorList, overrides []csshandler.SupportsOverride) []cssast.Rule {
	if len(overrides) == 0 {
		return nil
	}
	byCondition := map[string][]cssast.Property{}
	for _, o := range overrides {
		byCondition[o.Condition] = append(byCondition[o.Condition], o.Decl)
	}
	conditions := make([]string, 0, len(byCondition))
	for cond := range byCondition {
		conditions = append(conditions, cond)
	}
	sort.Strings(conditions)

	out := make([]cssast.Rule, 0, len(conditions))
	for _, cond := range conditions {
		sibling := &cssast.StyleRule{Selectors: selectors, Declarations: splitByImportant(byCondition[cond])}
		out = append(out, csshandler.WrapWithSupportsFallback(cond, []cssast.Rule{sibling}))
	}
	return out
}

// runHandlers is the per-declaration-block pipeline: logical-property
// expansion, family fusion (margin/padding/inset), vendor-prefix
// duplication, and modern-value fallback injection, in that order, since a
// fused shorthand should only be prefixed once rather than once per
// longhand, and a declaration's prefixed copies should each be considered
// for fallback injection individually.
func runHandlers(block cssast.DeclarationBlock, opts Options) (cssast.DeclarationBlock, []cssast.Property, []csshandler.SupportsOverride) {
	decls, rtl1, sup1 := runHandlersOnList(block.Declarations, opts)
	important, rtl2, sup2 := runHandlersOnList(block.ImportantDeclarations, opts)
	block.Declarations = decls
	block.ImportantDeclarations = important
	return block, append(rtl1, rtl2...), append(sup1, sup2...)
}

func runHandlersOnList(decls []cssast.Property, opts Options) ([]cssast.Property, []cssast.Property, []csshandler.SupportsOverride) {
	if len(decls) == 0 {
		return decls, nil, nil
	}
	needsRTL := opts.RTLFallback && csshandler.NeedsSupportsFallback(compat.LogicalProperties, opts.Constraints)

	margin := csshandler.NewMarginFamily()
	padding := csshandler.NewPaddingFamily()
	inset := csshandler.NewInsetFamily()
	families := []*csshandler.BoxSidesFamily{margin, padding, inset}
	familyLoc := map[*csshandler.BoxSidesFamily]location.Range{} // Loc of each family's last accepted declaration

	var out []cssast.Property
	var rtlOverrides []cssast.Property
	var supportsOverrides []csshandler.SupportsOverride

	consider := func(prop cssast.Property) {
		for _, expanded := range expandPrefixes(prop, opts) {
			expanded, override := csshandler.ModernValueFallback(expanded, opts.Constraints)
			if override != nil {
				supportsOverrides = append(supportsOverrides, *override)
			}
			out = append(out, expanded)
		}
	}

	for _, d := range decls {
		if d.Logical != nil {
			ltr, rtl := csshandler.ExpandLogical(d, needsRTL)
			ltr.Loc = d.Loc
			d = ltr
			if rtl != nil {
				rtl.Loc = d.Loc
				rtlOverrides = append(rtlOverrides, *rtl)
			}
		}
		consumed := false
		for _, fam := range families {
			if fam.IsMember(d.ID) && fam.Accept(d) {
				familyLoc[fam] = d.Loc
				consumed = true
				break
			}
		}
		if !consumed {
			consider(d)
		}
	}
	for _, fam := range families {
		for _, flushed := range fam.Flush() {
			flushed.Loc = familyLoc[fam]
			consider(flushed)
		}
	}
	return out, rtlOverrides, supportsOverrides
}

func expandPrefixes(prop cssast.Property, opts Options) []cssast.Property {
	if opts.Constraints == nil {
		return []cssast.Property{prop}
	}
	return csshandler.DuplicateForPrefixes(prop, opts.Constraints)
}

type conditionResult uint8

const (
	conditionUnknown conditionResult = iota
	conditionAlways
	conditionNever
)

// evaluateAlwaysNever recognizes the two trivial media-query outcomes a
// build can decide without a real evaluator: "all" (or empty) always
// matches, "not all" never does. Anything else is left for the browser;
// this module never evaluates arbitrary media-query feature tests.
func evaluateAlwaysNever(query string) conditionResult {
	q := strings.ToLower(strings.TrimSpace(query))
	switch q {
	case "", "all":
		return conditionAlways
	case "not all":
		return conditionNever
	}
	return conditionUnknown
}

// evaluateSupportsAlwaysNever mirrors evaluateAlwaysNever for @supports: an
// empty condition always matches (a fully-resolved-away prelude), and
// and/or/not combine their operands' results the way boolean algebra
// would, so a condition built entirely out of sub-conditions this module
// already resolved collapses instead of printing a dead @supports
// wrapper. A single opaque feature test (a bare "(display: grid)"
// declaration) this module doesn't evaluate stays unknown, same as an
// opaque media feature test.
func evaluateSupportsAlwaysNever(c cssast.SupportsCondition) conditionResult {
	switch {
	case c.Not != nil:
		switch evaluateSupportsAlwaysNever(*c.Not) {
		case conditionAlways:
			return conditionNever
		case conditionNever:
			return conditionAlways
		}
		return conditionUnknown

	case len(c.And) > 0:
		sawUnknown := false
		for _, sub := range c.And {
			switch evaluateSupportsAlwaysNever(sub) {
			case conditionNever:
				return conditionNever
			case conditionUnknown:
				sawUnknown = true
			}
		}
		if sawUnknown {
			return conditionUnknown
		}
		return conditionAlways

	case len(c.Or) > 0:
		sawUnknown := false
		for _, sub := range c.Or {
			switch evaluateSupportsAlwaysNever(sub) {
			case conditionAlways:
				return conditionAlways
			case conditionUnknown:
				sawUnknown = true
			}
		}
		if sawUnknown {
			return conditionUnknown
		}
		return conditionNever

	case c.Declaration == "" && strings.TrimSpace(c.Raw) == "":
		return conditionAlways
	}
	return conditionUnknown
}

func resolveCustomMedia(query string, customMedia map[string]string) string {
	if len(customMedia) == 0 {
		return query
	}
	// name is the whole "--foo" ident; a reference is written "(--foo)"
	for name, resolved := range customMedia {
		query = strings.ReplaceAll(query, "("+name+")", resolved)
		query = strings.ReplaceAll(query, name, resolved)
	}
	return query
}
