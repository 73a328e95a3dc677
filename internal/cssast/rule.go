package cssast

import "cssc/internal/location"

// Rule is a tagged union over every at-rule and style rule shape, modeled
// as a marker-method interface implemented by one struct per rule kind
// rather than a single struct with a kind tag, since rule payloads vary
// far more than Property payloads do.
type Rule interface{ isRule() }

// SelectorList is a comma-separated list of complex selectors, used by
// both StyleRule and the (non-goal-scoped but still representational)
// nesting rule.
type SelectorList struct {
	Selectors []ComplexSelector
}

type StyleRule struct {
	Selectors    SelectorList
	Declarations DeclarationBlock
	Rules        []Rule // nested rules, when CSS Nesting is in play

	// Loc is the selector prelude's source position, recorded at parse
	// time so the printer can emit a source-map mapping at the start of
	// every rule it writes.
	Loc location.Range
}

func (*StyleRule) isRule() {}

type MediaRule struct {
	Query string // kept as raw prelude text; media-query grammar is out of scope
	Rules []Rule
}

func (*MediaRule) isRule() {}

type SupportsCondition struct {
	// Raw holds the condition text for conditions this module doesn't
	// structurally reason about; And/Or/Not/Declaration are populated when
	// the fallback-injection handler builds one itself.
	Raw         string
	And, Or     []SupportsCondition
	Not         *SupportsCondition
	Declaration string // "prop: value" form, e.g. "(display: grid)"
}

type SupportsRule struct {
	Condition SupportsCondition
	Rules     []Rule
}

func (*SupportsRule) isRule() {}

type ImportRule struct {
	URL               string
	ImportRecordIndex uint32
	Media             string
	Supports          *SupportsCondition
	LayerName         *string // nil: no layer; empty string: anonymous "layer"; non-empty: "layer(name)"
}

func (*ImportRule) isRule() {}

type KeyframesRule struct {
	Name   string
	Prefix VendorPrefix
	Blocks []KeyframeBlock
}

func (*KeyframesRule) isRule() {}

type KeyframeBlock struct {
	Selectors    []string // "from", "to", or a percentage like "50%"
	Declarations DeclarationBlock
}

type FontFaceRule struct {
	Declarations DeclarationBlock
}

func (*FontFaceRule) isRule() {}

type PageRule struct {
	Selector     string
	Declarations DeclarationBlock
}

func (*PageRule) isRule() {}

type CounterStyleRule struct {
	Name         string
	Declarations DeclarationBlock
}

func (*CounterStyleRule) isRule() {}

type NamespaceRule struct {
	Prefix string // "" for the default namespace
	URI    string
}

func (*NamespaceRule) isRule() {}

type CustomMediaRule struct {
	Name  string
	Query string
}

func (*CustomMediaRule) isRule() {}

type MozDocumentRule struct {
	// Prelude is the raw "url-prefix(...)"/"domain(...)"/"regexp(...)"
	// argument list; -moz-document's grammar is legacy Firefox-only and
	// this module only needs to round-trip it.
	Prelude string
	Rules   []Rule
}

func (*MozDocumentRule) isRule() {}

type ViewportRule struct {
	Prefix       VendorPrefix
	Declarations DeclarationBlock
}

func (*ViewportRule) isRule() {}

type LayerStatementRule struct {
	Names []string // one or more comma-separated layer names declared with no block
}

func (*LayerStatementRule) isRule() {}

type LayerBlockRule struct {
	Name  string // "" for an anonymous layer
	Rules []Rule
}

func (*LayerBlockRule) isRule() {}

// NestingRule wraps a bare "&"-prefixed nested rule so the parser doesn't
// need to special-case nesting syntax inside StyleRule.Rules.
type NestingRule struct {
	Inner *StyleRule
}

func (*NestingRule) isRule() {}

// IgnoredRule stands in for a rule the parser drops (an unknown at-rule,
// or a style rule whose selector could not be parsed), so the rule list
// keeps a placeholder at its position without acting on its content.
type IgnoredRule struct {
	Reason string
}

func (*IgnoredRule) isRule() {}
