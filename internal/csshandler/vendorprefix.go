package csshandler

import (
	"cssc/internal/compat"
	"cssc/internal/cssast"
)

// DuplicateForPrefixes expands one declaration into one copy per vendor
// prefix the compat table says the build's browser targets still need,
// plus the unprefixed original, in a fixed print order (WebKit, Moz, Ms,
// O, None). The AST node just carries a VendorPrefix bitmask; only this
// handler stage actually materializes N declarations from it.
func DuplicateForPrefixes(prop cssast.Property, constraints map[compat.Engine][]int) []cssast.Property {
	if !prop.ID.IsVendorPrefixable() {
		return []cssast.Property{prop}
	}
	prefixData := compat.CSSPrefixData(constraints)
	mask := prefixData[prop.ID]
	if mask == 0 {
		return []cssast.Property{prop}
	}

	var out []cssast.Property
	mask.Each(func(bit cssast.VendorPrefix) {
		copyProp := prop
		copyProp.VendorPrefix = bit
		out = append(out, copyProp)
	})
	out = append(out, prop)
	return out
}

// NeedsSupportsFallback reports whether a feature the handler framework
// just used (e.g. a logical property, CSS Nesting, an `:is()` selector)
// needs an @supports-guarded physical/legacy fallback injected before it,
// based on whether every target engine already supports the feature.
func NeedsSupportsFallback(feature compat.CSSFeature, constraints map[compat.Engine][]int) bool {
	return compat.UnsupportedCSSFeatures(constraints)&feature != 0
}

// WrapWithSupportsFallback builds the "@supports (condition) { rules }"
// wrapper the fallback-injection pass places around a block of rules that
// rely on a feature not every target supports, pairing it with
// a preceding unguarded fallback the caller supplies separately (the two
// together give every engine working CSS: old engines see only the
// fallback, new ones see both but the @supports rule wins the cascade).
func WrapWithSupportsFallback(condition string, rules []cssast.Rule) *cssast.SupportsRule {
	return &cssast.SupportsRule{Condition: cssast.SupportsCondition{Raw: condition}, Rules: rules}
}
