package compat

import "cssc/internal/cssast"

// CSSFeature is a bitmask of CSS language features the target table can
// mark as supported or not, driving @supports fallback-injection
// decisions.
type CSSFeature uint16

const (
	HexRGBA CSSFeature = 1 << iota
	RebeccaPurple
	ModernRGBHSL
	InsetProperty
	Nesting
	IsPseudoClass
	LogicalProperties
	MediaRangeSyntax
	LayerAtRule
	ImageSet
	ColorFunctionSyntax
)

var cssTable = map[CSSFeature]map[Engine][]versionRange{
	HexRGBA: {
		Chrome:  {{start: Version{62, 0, 0}}},
		Edge:    {{start: Version{79, 0, 0}}},
		Firefox: {{start: Version{49, 0, 0}}},
		IOS:     {{start: Version{9, 3, 0}}},
		Opera:   {{start: Version{49, 0, 0}}},
		Safari:  {{start: Version{9, 1, 0}}},
	},
	RebeccaPurple: {
		Chrome:  {{start: Version{38, 0, 0}}},
		Edge:    {{start: Version{12, 0, 0}}},
		Firefox: {{start: Version{33, 0, 0}}},
		IE:      {{start: Version{11, 0, 0}}},
		IOS:     {{start: Version{8, 0, 0}}},
		Opera:   {{start: Version{25, 0, 0}}},
		Safari:  {{start: Version{9, 0, 0}}},
	},
	ModernRGBHSL: {
		Chrome:  {{start: Version{66, 0, 0}}},
		Edge:    {{start: Version{79, 0, 0}}},
		Firefox: {{start: Version{52, 0, 0}}},
		IOS:     {{start: Version{12, 2, 0}}},
		Opera:   {{start: Version{53, 0, 0}}},
		Safari:  {{start: Version{12, 1, 0}}},
	},
	InsetProperty: {
		Chrome:  {{start: Version{87, 0, 0}}},
		Edge:    {{start: Version{87, 0, 0}}},
		Firefox: {{start: Version{66, 0, 0}}},
		IOS:     {{start: Version{14, 5, 0}}},
		Opera:   {{start: Version{73, 0, 0}}},
		Safari:  {{start: Version{14, 1, 0}}},
	},
	Nesting: {
		Chrome:  {{start: Version{112, 0, 0}}},
		Edge:    {{start: Version{112, 0, 0}}},
		Firefox: {{start: Version{117, 0, 0}}},
		IOS:     {{start: Version{16, 4, 0}}},
		Opera:   {{start: Version{98, 0, 0}}},
		Safari:  {{start: Version{16, 4, 0}}},
	},
	IsPseudoClass: {
		Chrome:  {{start: Version{88, 0, 0}}},
		Edge:    {{start: Version{88, 0, 0}}},
		Firefox: {{start: Version{78, 0, 0}}},
		IOS:     {{start: Version{14, 0, 0}}},
		Opera:   {{start: Version{75, 0, 0}}},
		Safari:  {{start: Version{14, 0, 0}}},
	},
	LogicalProperties: {
		Chrome:  {{start: Version{69, 0, 0}}},
		Edge:    {{start: Version{79, 0, 0}}},
		Firefox: {{start: Version{41, 0, 0}}},
		IOS:     {{start: Version{12, 0, 0}}},
		Opera:   {{start: Version{56, 0, 0}}},
		Safari:  {{start: Version{12, 1, 0}}},
	},
	MediaRangeSyntax: {
		Chrome:  {{start: Version{104, 0, 0}}},
		Edge:    {{start: Version{104, 0, 0}}},
		Firefox: {{start: Version{63, 0, 0}}},
		Safari:  {{start: Version{16, 4, 0}}},
	},
	LayerAtRule: {
		Chrome:  {{start: Version{99, 0, 0}}},
		Edge:    {{start: Version{99, 0, 0}}},
		Firefox: {{start: Version{97, 0, 0}}},
		IOS:     {{start: Version{15, 4, 0}}},
		Opera:   {{start: Version{85, 0, 0}}},
		Safari:  {{start: Version{15, 4, 0}}},
	},
	ImageSet: {
		Chrome:  {{start: Version{113, 0, 0}}},
		Edge:    {{start: Version{113, 0, 0}}},
		Firefox: {{start: Version{88, 0, 0}}},
		IOS:     {{start: Version{17, 0, 0}}},
		Opera:   {{start: Version{99, 0, 0}}},
		Safari:  {{start: Version{17, 0, 0}}},
	},
	ColorFunctionSyntax: {
		Chrome:  {{start: Version{111, 0, 0}}},
		Edge:    {{start: Version{111, 0, 0}}},
		Firefox: {{start: Version{113, 0, 0}}},
		IOS:     {{start: Version{15, 4, 0}}},
		Opera:   {{start: Version{97, 0, 0}}},
		Safari:  {{start: Version{15, 4, 0}}},
	},
}

// UnsupportedCSSFeatures reports which features are unsupported by at
// least one of the engines named in constraints: a feature only counts as
// supported once every named engine supports it.
func UnsupportedCSSFeatures(constraints map[Engine][]int) (unsupported CSSFeature) {
	for feature, engines := range cssTable {
		for engine, version := range constraints {
			if !engine.IsBrowser() {
				continue
			}
			if versionRanges, ok := engines[engine]; !ok || !isVersionSupported(versionRanges, version) {
				unsupported |= feature
			}
		}
	}
	return
}

// CSSPrefix is a bitmask of vendor prefixes a property may need, matching
// cssast.VendorPrefix bit-for-bit so the handler framework can pass one
// straight into the other without translation.
type CSSPrefix = cssast.VendorPrefix

type prefixData struct {
	withoutPrefix Version // zero value means "always needs the prefix in this engine"
	prefix        CSSPrefix
}

var cssMaskPrefixTable = map[Engine]prefixData{
	Chrome: {prefix: cssast.PrefixWebKit},
	Edge:   {prefix: cssast.PrefixWebKit},
	IOS:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{15, 4, 0}},
	Opera:  {prefix: cssast.PrefixWebKit},
	Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{15, 4, 0}},
}

// cssPrefixTable records, per property and engine, the version at which
// that engine stopped needing a vendor prefix (zero meaning it always
// needs one within the tracked version range).
var cssPrefixTable = map[cssast.PropertyID]map[Engine]prefixData{
	cssast.Appearance: {
		Chrome:  {prefix: cssast.PrefixWebKit, withoutPrefix: Version{84, 0, 0}},
		Edge:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{84, 0, 0}},
		Firefox: {prefix: cssast.PrefixMoz, withoutPrefix: Version{80, 4, 0}},
		IOS:     {prefix: cssast.PrefixWebKit, withoutPrefix: Version{15, 4, 0}},
		Opera:   {prefix: cssast.PrefixWebKit, withoutPrefix: Version{73, 4, 0}},
		Safari:  {prefix: cssast.PrefixWebKit, withoutPrefix: Version{15, 4, 0}},
	},
	cssast.BackdropFilter: {
		IOS:    {prefix: cssast.PrefixWebKit},
		Safari: {prefix: cssast.PrefixWebKit},
	},
	cssast.BackgroundClip: {
		Chrome: {prefix: cssast.PrefixWebKit},
		Edge:   {prefix: cssast.PrefixWebKit},
		IOS:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{14, 0, 0}},
		Opera:  {prefix: cssast.PrefixWebKit},
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{14, 0, 0}},
	},
	cssast.ClipPath: {
		Chrome: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{55, 0, 0}},
		IOS:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{13, 0, 0}},
		Opera:  {prefix: cssast.PrefixWebKit, withoutPrefix: Version{42, 0, 0}},
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{13, 1, 0}},
	},
	cssast.FontKerning: {
		Chrome: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{33, 0, 0}},
		IOS:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{12, 0, 0}},
		Opera:  {prefix: cssast.PrefixWebKit, withoutPrefix: Version{20, 0, 0}},
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{9, 1, 0}},
	},
	cssast.Hyphens: {
		Edge:    {prefix: cssast.PrefixMs, withoutPrefix: Version{79, 0, 0}},
		Firefox: {prefix: cssast.PrefixMoz, withoutPrefix: Version{43, 0, 0}},
		IE:      {prefix: cssast.PrefixMs},
		IOS:     {prefix: cssast.PrefixWebKit},
		Safari:  {prefix: cssast.PrefixWebKit},
	},
	cssast.InitialLetter: {
		IOS:    {prefix: cssast.PrefixWebKit},
		Safari: {prefix: cssast.PrefixWebKit},
	},
	cssast.MaskImage:    cssMaskPrefixTable,
	cssast.MaskOrigin:   cssMaskPrefixTable,
	cssast.MaskPosition: cssMaskPrefixTable,
	cssast.MaskRepeat:   cssMaskPrefixTable,
	cssast.MaskSize:     cssMaskPrefixTable,
	cssast.Position: {
		IOS:    {prefix: cssast.PrefixWebKit, withoutPrefix: Version{13, 0, 0}},
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{13, 0, 0}},
	},
	cssast.PrintColorAdjust: {
		Chrome: {prefix: cssast.PrefixWebKit},
		Edge:   {prefix: cssast.PrefixWebKit},
		Opera:  {prefix: cssast.PrefixWebKit},
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{15, 4, 0}},
	},
	cssast.TabSize: {
		Firefox: {prefix: cssast.PrefixMoz, withoutPrefix: Version{91, 0, 0}},
		Opera:   {prefix: cssast.PrefixO, withoutPrefix: Version{15, 0, 0}},
	},
	cssast.TextOrientation: {
		Safari: {prefix: cssast.PrefixWebKit, withoutPrefix: Version{14, 0, 0}},
	},
	cssast.TextSizeAdjust: {
		Edge: {prefix: cssast.PrefixMs, withoutPrefix: Version{79, 0, 0}},
		IOS:  {prefix: cssast.PrefixWebKit},
	},
	cssast.UserSelect: {
		Chrome:  {prefix: cssast.PrefixWebKit, withoutPrefix: Version{54, 0, 0}},
		Edge:    {prefix: cssast.PrefixMs, withoutPrefix: Version{79, 0, 0}},
		Firefox: {prefix: cssast.PrefixMoz, withoutPrefix: Version{69, 0, 0}},
		IOS:     {prefix: cssast.PrefixWebKit},
		Opera:   {prefix: cssast.PrefixWebKit, withoutPrefix: Version{41, 0, 0}},
		Safari:  {prefix: cssast.PrefixWebKit},
		IE:      {prefix: cssast.PrefixMs},
	},
}

// CSSPrefixData computes, per property, the OR of every vendor prefix
// still needed given constraints. csshandler's vendor-prefixing pass
// duplicates declarations from this table.
func CSSPrefixData(constraints map[Engine][]int) (entries map[cssast.PropertyID]CSSPrefix) {
	for property, engines := range cssPrefixTable {
		var prefixes CSSPrefix
		for engine, version := range constraints {
			if !engine.IsBrowser() {
				continue
			}
			if data, ok := engines[engine]; ok && (data.withoutPrefix == (Version{}) || compareVersion(data.withoutPrefix, version) > 0) {
				prefixes |= data.prefix
			}
		}
		if prefixes != 0 {
			if entries == nil {
				entries = make(map[cssast.PropertyID]CSSPrefix)
			}
			entries[property] = prefixes
		}
	}
	return
}
