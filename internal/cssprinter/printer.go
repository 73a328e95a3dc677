// Package cssprinter serializes a (typically already-transformed)
// Stylesheet back to CSS text, optionally emitting a source map alongside
// it.
//
// A single printer struct threads an output buffer through one print*
// method per rule kind, driven by a type switch over the Rule/Property
// payload.
package cssprinter

import (
	"strings"

	"cssc/internal/compat"
	"cssc/internal/cssast"
	"cssc/internal/cssvalue"
	"cssc/internal/sourcemap"
)

// Options configures one Print call.
type Options struct {
	Minify bool

	// SourceMap, when non-nil, receives a mapping at the start of every
	// style rule and declaration the printer emits. SourceIndex identifies which
	// of SourceMap's registered sources this stylesheet's own positions
	// (not tracked further than "this whole file") belong to; a bundler
	// printing several inlined files reuses one Builder across multiple
	// Print calls, registering one source per file via Builder.AddSource.
	SourceMap   *sourcemap.Builder
	SourceIndex int

	// Targets restricts which vendor-prefix/fallback-aware printing
	// decisions apply; most such decisions already happened in
	// csstransform, but a handful (the minified color-function
	// serialization in value.go, for one) are cheap enough to make here
	// instead of threading a degraded Property all the way from the
	// transform pass. nil means "print for every target".
	Targets map[compat.Engine][]int

	// PseudoClassOverrides remaps a pseudo-class name to a plain class
	// selector instead of ":name" syntax — e.g. a build targeting an
	// engine that never implements ":focus-visible" natively can map it to
	// the class a polyfill toggles instead ("focus-visible" ->
	// "js-focus-visible").
	PseudoClassOverrides map[string]string

	// Modules, when non-nil, turns on CSS-Modules scoping: every class and
	// id selector the printer emits is rewritten to a per-file-unique name,
	// and the original->scoped mapping is reported on Result.Exports.
	Modules *ModulesOptions

	// CollectDependencies turns on reporting every external resource this
	// stylesheet's declarations reference (@import targets and url(...)
	// values) on Result.Dependencies.
	CollectDependencies bool
}

// ModulesOptions configures CSS-Modules class/id scoping.
type ModulesOptions struct {
	// Pattern controls the scoped name: "[name]" is replaced with the
	// original class/id, "[hash]" with a short digest of SourceName plus
	// the original name. Defaults to "[name]_[hash]" when empty.
	Pattern string

	// SourceName identifies this stylesheet for hashing purposes (normally
	// its filename); two files scoping the same local name must still
	// produce distinct output, which is what feeds SourceName into the hash.
	SourceName string
}

// Result is the output of one Print call.
type Result struct {
	Code string

	// Exports maps each original class/id name found while CSS-Modules
	// scoping was on to the scoped name the printer actually emitted; empty
	// when Options.Modules is nil.
	Exports map[string]string

	// Dependencies lists, in first-seen order, every external resource this
	// stylesheet's rules referenced: @import URLs and url(...) values found
	// in declarations. Empty unless Options.CollectDependencies is set.
	Dependencies []string
}

type printer struct {
	opts Options
	sb   strings.Builder
	line int
	col  int
	// indent is the current nesting depth in non-minified output; minified
	// output never indents, so Options.Minify short-circuits around it.
	indent int

	exports      map[string]string
	dependencies []string
	seenDeps     map[string]bool
}

// Print renders sheet as CSS text, plus whatever CSS-Modules exports and
// dependency list opts asked it to collect along the way.
func Print(sheet *cssast.Stylesheet, opts Options) Result {
	p := &printer{opts: opts}
	if opts.Modules != nil {
		p.exports = map[string]string{}
	}
	if opts.CollectDependencies {
		p.seenDeps = map[string]bool{}
	}
	for _, r := range sheet.Rules {
		p.printRule(r)
	}
	return Result{Code: p.sb.String(), Exports: p.exports, Dependencies: p.dependencies}
}

func (p *printer) mf() cssvalue.MinifyFlags {
	hexRGBA := p.opts.Targets != nil && compat.UnsupportedCSSFeatures(p.opts.Targets)&compat.HexRGBA == 0
	return cssvalue.MinifyFlags{Minify: p.opts.Minify, HexRGBASupported: hexRGBA}
}

// write appends s to the output, tracking line/column so a caller that
// wired up a source map can ask the printer to record a mapping before the
// next write (see addMapping). Every newline inside s resets the column,
// matching how a real text editor would report position.
func (p *printer) write(s string) {
	for _, r := range s {
		if r == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
	p.sb.WriteString(s)
}

// addMapping records that the generated position the printer is about to
// write corresponds to originalLine/originalColumn in the current source
// file, when a source map was requested.
func (p *printer) addMapping(originalLine, originalColumn int) {
	if p.opts.SourceMap == nil {
		return
	}
	p.opts.SourceMap.AddMapping(p.line, p.col, p.opts.SourceIndex, originalLine, originalColumn, "")
}

func (p *printer) newline() {
	if p.opts.Minify {
		return
	}
	p.write("\n")
}

func (p *printer) writeIndent() {
	if p.opts.Minify {
		return
	}
	p.write(strings.Repeat("  ", p.indent))
}

func (p *printer) printRule(r cssast.Rule) {
	switch rule := r.(type) {
	case *cssast.StyleRule:
		p.printStyleRule(rule)
	case *cssast.MediaRule:
		p.printConditionRule("@media", rule.Query, rule.Rules)
	case *cssast.SupportsRule:
		p.printConditionRule("@supports", printSupportsCondition(rule.Condition), rule.Rules)
	case *cssast.ImportRule:
		p.printImportRule(rule)
	case *cssast.KeyframesRule:
		p.printKeyframesRule(rule)
	case *cssast.FontFaceRule:
		p.printAtRuleWithBlock("@font-face", "", rule.Declarations)
	case *cssast.PageRule:
		p.printAtRuleWithBlock("@page", rule.Selector, rule.Declarations)
	case *cssast.CounterStyleRule:
		p.printAtRuleWithBlock("@counter-style", rule.Name, rule.Declarations)
	case *cssast.NamespaceRule:
		p.printNamespaceRule(rule)
	case *cssast.MozDocumentRule:
		p.printConditionRule("@-moz-document", rule.Prelude, rule.Rules)
	case *cssast.ViewportRule:
		p.printAtRuleWithBlock("@"+rule.Prefix.Text()+"viewport", "", rule.Declarations)
	case *cssast.LayerStatementRule:
		p.writeIndent()
		p.write("@layer " + strings.Join(rule.Names, ", ") + ";")
		p.newline()
	case *cssast.LayerBlockRule:
		p.printConditionRule("@layer", rule.Name, rule.Rules)
	case *cssast.NestingRule:
		p.printStyleRule(rule.Inner)
	case *cssast.CustomMediaRule:
		// prints nothing: the transform pass inlines custom-media
		// references and drops the declaration itself, and a sheet printed
		// without that pass loses the declaration here
	case *cssast.IgnoredRule:
		// dropped on purpose; nothing to print
	}
}

func (p *printer) printConditionRule(keyword, prelude string, rules []cssast.Rule) {
	p.writeIndent()
	p.write(keyword)
	if prelude != "" {
		p.write(" " + prelude)
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, r := range rules {
		p.printRule(r)
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	p.newline()
}

func (p *printer) printAtRuleWithBlock(keyword, prelude string, block cssast.DeclarationBlock) {
	p.writeIndent()
	p.write(keyword)
	if prelude != "" {
		p.write(" " + prelude)
	}
	p.write(" {")
	p.newline()
	p.indent++
	p.printDeclarationBlock(block)
	p.indent--
	p.writeIndent()
	p.write("}")
	p.newline()
}

// recordDependency appends url to Result.Dependencies the first time it's
// seen, when Options.CollectDependencies is on; duplicate references to the
// same resource (two rules using the same background image, say) only need
// reporting once.
func (p *printer) recordDependency(url string) {
	if !p.opts.CollectDependencies || url == "" || p.seenDeps[url] {
		return
	}
	p.seenDeps[url] = true
	p.dependencies = append(p.dependencies, url)
}

func (p *printer) printImportRule(rule *cssast.ImportRule) {
	p.recordDependency(rule.URL)
	p.writeIndent()
	p.write("@import " + quoteString(rule.URL))
	if rule.LayerName != nil {
		if *rule.LayerName == "" {
			p.write(" layer")
		} else {
			p.write(" layer(" + *rule.LayerName + ")")
		}
	}
	if rule.Supports != nil {
		p.write(" supports(" + printSupportsCondition(*rule.Supports) + ")")
	}
	if rule.Media != "" {
		p.write(" " + rule.Media)
	}
	p.write(";")
	p.newline()
}

func (p *printer) printNamespaceRule(rule *cssast.NamespaceRule) {
	p.writeIndent()
	p.write("@namespace ")
	if rule.Prefix != "" {
		p.write(rule.Prefix + " ")
	}
	p.write(quoteString(rule.URI) + ";")
	p.newline()
}

func (p *printer) printKeyframesRule(rule *cssast.KeyframesRule) {
	p.writeIndent()
	p.write("@" + rule.Prefix.Text() + "keyframes " + rule.Name + " {")
	p.newline()
	p.indent++
	for _, b := range rule.Blocks {
		p.writeIndent()
		p.write(strings.Join(b.Selectors, ", "))
		p.write(" {")
		p.newline()
		p.indent++
		p.printDeclarationBlock(b.Declarations)
		p.indent--
		p.writeIndent()
		p.write("}")
		p.newline()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	p.newline()
}

func (p *printer) printStyleRule(rule *cssast.StyleRule) {
	p.writeIndent()
	p.addMapping(rule.Loc.Start.Line, rule.Loc.Start.Column)
	p.printSelectorList(rule.Selectors)
	p.write(" {")
	p.newline()
	p.indent++
	p.printDeclarationBlock(rule.Declarations)
	for _, nested := range rule.Rules {
		p.printRule(nested)
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	p.newline()
}

func (p *printer) printDeclarationBlock(block cssast.DeclarationBlock) {
	for _, d := range block.Declarations {
		p.printDeclaration(d)
	}
	for _, d := range block.ImportantDeclarations {
		p.printDeclaration(d)
	}
}

func (p *printer) printDeclaration(prop cssast.Property) {
	if p.opts.CollectDependencies {
		for _, url := range declarationDependencies(prop) {
			p.recordDependency(url)
		}
	}
	p.writeIndent()
	p.addMapping(prop.Loc.Start.Line, prop.Loc.Start.Column)
	p.write(prop.VendorPrefix.Text())
	p.write(propertyNameFor(prop))
	p.write(":")
	if !p.opts.Minify {
		p.write(" ")
	}
	p.write(printValue(prop, p.mf()))
	if prop.Important {
		if p.opts.Minify {
			p.write("!important")
		} else {
			p.write(" !important")
		}
	}
	p.write(";")
	p.newline()
}

func propertyNameFor(prop cssast.Property) string {
	if prop.Custom != nil {
		return prop.Custom.Name
	}
	return prop.ID.String()
}

func quoteString(s string) string {
	if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		return "'" + s + "'"
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

func printSupportsCondition(c cssast.SupportsCondition) string {
	switch {
	case c.Declaration != "":
		return "(" + c.Declaration + ")"
	case c.Not != nil:
		return "not (" + printSupportsCondition(*c.Not) + ")"
	case len(c.And) > 0:
		parts := make([]string, len(c.And))
		for i, sub := range c.And {
			parts[i] = printSupportsCondition(sub)
		}
		return strings.Join(parts, " and ")
	case len(c.Or) > 0:
		parts := make([]string, len(c.Or))
		for i, sub := range c.Or {
			parts[i] = printSupportsCondition(sub)
		}
		return strings.Join(parts, " or ")
	default:
		return c.Raw
	}
}
