package csshandler

import (
	"strings"

	"cssc/internal/compat"
	"cssc/internal/cssast"
	"cssc/internal/csstoken"
)

// SupportsOverride pairs a declaration this module can't express in a form
// every target understands with the @supports condition that gates it: the
// caller emits Decl as a rule-scoped sibling wrapped in
// "@supports (Condition) { ... }", alongside the degraded value
// ModernValueFallback already substituted in the unguarded declaration.
type SupportsOverride struct {
	Condition string
	Decl      cssast.Property
}

// ModernValueFallback looks for a value this module only partially
// understands (an image-set() function, or a CSS Color 4 function like
// oklch()/color()) inside prop's unparsed tokens, and, when constraints
// name an engine that doesn't support it, returns a degraded Property safe
// for every target plus the original wrapped as a SupportsOverride. Any
// other property, or one every constrained engine already supports,
// returns unchanged with a nil override.
//
// Neither image-set() nor the Color 4 functions are reduced to a typed
// cssvalue shape yet (cssvalue.ParseImage never runs from the declaration
// parser, and cssvalue.Color has no slot for them), so detection works
// directly off the raw token stream rather than a typed field.
func ModernValueFallback(prop cssast.Property, constraints map[compat.Engine][]int) (cssast.Property, *SupportsOverride) {
	if prop.Unparsed == nil {
		return prop, nil
	}
	tokens := prop.Unparsed.Tokens
	fnIndex := topLevelFunctionIndex(tokens)
	if fnIndex < 0 {
		return prop, nil
	}
	fn := tokens[fnIndex]
	feature, fallback, ok := degradeFunction(strings.ToLower(fn.Text), fn)
	if !ok || !NeedsSupportsFallback(feature, constraints) {
		return prop, nil
	}

	original := prop
	degraded := prop
	fallback.HasWhitespaceAfter = fn.HasWhitespaceAfter
	degradedTokens := make([]cssast.Token, len(tokens))
	copy(degradedTokens, tokens)
	degradedTokens[fnIndex] = fallback
	degraded.Unparsed = &cssast.UnparsedValue{Tokens: degradedTokens}

	return degraded, &SupportsOverride{
		Condition: propertyConditionText(prop),
		Decl:      original,
	}
}

// topLevelFunctionIndex returns the index of the first Function token at
// the top level of tokens, or -1. image-set() and the color functions only
// need fallback handling when they're the declaration's leading function,
// which covers every real use (background-image: image-set(...), color:
// oklch(...)).
func topLevelFunctionIndex(tokens []cssast.Token) int {
	for i, t := range tokens {
		if t.Kind == csstoken.Function {
			return i
		}
	}
	return -1
}

// degradeFunction maps a function name this module recognizes as needing a
// fallback to the compat feature that guards it and a same-shape
// replacement token safe for engines lacking that feature.
func degradeFunction(name string, fn cssast.Token) (compat.CSSFeature, cssast.Token, bool) {
	switch name {
	case "image-set", "-webkit-image-set":
		fallback, ok := firstImageSetCandidate(fn)
		if !ok {
			return 0, cssast.Token{}, false
		}
		return compat.ImageSet, fallback, true
	case "oklch", "oklab", "lch", "lab", "color":
		return compat.ColorFunctionSyntax, cssast.Token{Kind: csstoken.Ident, Text: "currentcolor"}, true
	}
	return 0, cssast.Token{}, false
}

// firstImageSetCandidate builds a plain "url(...)" fallback token from the
// first url()/string argument inside an image-set() function, the
// degradation every browser lacking image-set() still renders correctly
// (just without the resolution-switching behavior).
func firstImageSetCandidate(fn cssast.Token) (cssast.Token, bool) {
	if fn.Children == nil {
		return cssast.Token{}, false
	}
	for _, c := range *fn.Children {
		switch c.Kind {
		case csstoken.URL:
			return cssast.Token{Kind: csstoken.URL, Text: c.Text}, true
		case csstoken.String:
			children := []cssast.Token{{Kind: csstoken.String, Text: c.Text}}
			return cssast.Token{Kind: csstoken.Function, Text: "url", Children: &children}, true
		}
	}
	return cssast.Token{}, false
}

// propertyConditionText builds the "(prop: value)" text for the @supports
// condition a fallback override is gated on, reserializing the property's
// own name and raw tokens rather than importing cssprinter (which would
// invert this package's position below cssprinter in the dependency
// order), mirroring the small duplicated token-to-text helpers cssparser
// and cssprinter each already keep for the same reason.
func propertyConditionText(prop cssast.Property) string {
	name := prop.ID.String()
	if prop.Custom != nil {
		name = prop.Custom.Name
	}
	tokens := []cssast.Token(nil)
	if prop.Unparsed != nil {
		tokens = prop.Unparsed.Tokens
	}
	return "(" + name + ": " + tokensToText(tokens) + ")"
}

func tokensToText(tokens []cssast.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && tokens[i-1].HasWhitespaceAfter {
			b.WriteByte(' ')
		}
		b.WriteString(tokenSourceText(t))
	}
	return strings.TrimSpace(b.String())
}

func tokenSourceText(t cssast.Token) string {
	switch t.Kind {
	case csstoken.String:
		return "\"" + t.Text + "\""
	case csstoken.Function:
		inner := ""
		if t.Children != nil {
			inner = tokensToText(*t.Children)
		}
		return t.Text + "(" + inner + ")"
	case csstoken.URL:
		return "url(" + t.Text + ")"
	default:
		return t.Text
	}
}
