package cssast

// DeclarationBlock is a rule's `{ ... }` body, split into the normal and
// "!important" declaration lists, since the handler framework must
// process both lists independently (an !important longhand never folds
// into a non-important shorthand).
type DeclarationBlock struct {
	Declarations          []Property
	ImportantDeclarations []Property
}

// ParserOptions configures parsing; its knobs (nesting support, the
// CSS Modules flag) are separate from minify/print options, which
// belong to the printer.
type ParserOptions struct {
	// AllowNesting enables "&"-prefixed nested rules inside style rules.
	// Off by default, matching CSS's historical grammar.
	AllowNesting bool

	// CSSModules marks this stylesheet as a CSS Modules source file: the
	// printer scopes every class/id selector it finds to a per-file-unique
	// name and reports the original->scoped mapping as the print result's
	// Exports table. The parser itself doesn't treat CSS Modules syntax
	// (":local"/":global") any differently; this is purely a printer knob,
	// carried on ParserOptions so it survives a Parse/Transform/Print
	// round trip the same way AllowNesting does.
	CSSModules bool
}

// Stylesheet is one parsed file's worth of rules, the parser's entry and
// exit point and the bundler's and printer's unit of work.
type Stylesheet struct {
	Filename string
	Rules    []Rule
	Options  ParserOptions

	// SourceFilenames records every file this stylesheet's content came
	// from after bundling: the stylesheet's own filename plus every
	// @import target inlined into it, in source-map source order.
	SourceFilenames []string
}
