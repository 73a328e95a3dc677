// Package cssparser turns a csstoken.Token stream into a cssast.Stylesheet:
// the rule parser (top-level and nested contexts), the at-rule dispatch
// table, the selector parser, and the declaration parser with its
// Unparsed/Custom escape hatches for anything outside the properties this
// module type-checks.
//
// The parser struct carries the usual token-stream helpers
// (advance/at/current/peek/eat/expect) over a flat []csstoken.ValueToken,
// rather than indexing back into a separate source buffer.
package cssparser

import (
	"cssc/internal/clog"
	"cssc/internal/cssast"
	"cssc/internal/csstoken"
	"cssc/internal/location"
)

// Options configures parsing, forwarded from cssast.ParserOptions plus the
// filename diagnostics are attributed to.
type Options struct {
	Filename     string
	AllowNesting bool
	CSSModules   bool
}

type parser struct {
	log     *clog.Log
	tokens  []csstoken.ValueToken
	index   int
	options Options
}

// Parse tokenizes source and parses it into a Stylesheet.
func Parse(log *clog.Log, options Options, source string) *cssast.Stylesheet {
	raw := csstoken.Tokenize(log, options.Filename, source)
	tree, _ := buildValueTree(raw, source, 0, false)
	p := &parser{log: log, tokens: tree, options: options}
	rules := p.parseListOfRules(ruleContext{isTopLevel: true})
	return &cssast.Stylesheet{
		Filename:        options.Filename,
		Rules:           rules,
		Options:         cssast.ParserOptions{AllowNesting: options.AllowNesting, CSSModules: options.CSSModules},
		SourceFilenames: []string{options.Filename},
	}
}

// buildValueTree turns the lexer's flat token stream into the nested shape
// csstoken.ValueToken.Children expects: a Function token's arguments (up
// to its matching CloseParen) become its Children instead of appearing as
// siblings, so value grammars like cssvalue.ParseCalc can recurse into a
// function's argument list the way a real parse tree lets them. Plain
// "(" ... ")" groups stay flat, their CloseParen included, and a ")"
// outside any function is kept as an ordinary token. It returns the next
// unconsumed index so a recursive call can resume where its caller left
// off.
func buildValueTree(raw []csstoken.Token, source string, start int, inFunction bool) ([]csstoken.ValueToken, int) {
	var out []csstoken.ValueToken
	i := start
	depth := 0 // plain "(" groups opened at this level and not yet closed
	for i < len(raw) {
		t := raw[i]
		if t.Kind == csstoken.CloseParen && depth == 0 && inFunction {
			return out, i + 1
		}
		if t.Kind == csstoken.OpenParen {
			depth++
		} else if t.Kind == csstoken.CloseParen && depth > 0 {
			depth--
		}
		v := csstoken.ValueToken{
			Text:               t.DecodedText(source),
			Range:              t.Range,
			UnitOffset:         t.UnitOffset,
			Kind:               t.Kind,
			IsID:               t.IsID,
			HasWhitespaceAfter: false,
		}
		i++
		if t.Kind == csstoken.Function {
			children, next := buildValueTree(raw, source, i, true)
			v.Children = &children
			i = next
		}
		if i < len(raw) {
			v.HasWhitespaceAfter = raw[i].HasWhitespaceBefore
		}
		out = append(out, v)
	}
	return out, i
}

func (p *parser) at(index int) csstoken.ValueToken {
	if index < len(p.tokens) {
		return p.tokens[index]
	}
	return csstoken.ValueToken{Kind: csstoken.EOF}
}

func (p *parser) current() csstoken.ValueToken { return p.at(p.index) }

func (p *parser) advance() {
	if p.index < len(p.tokens) {
		p.index++
	}
}

func (p *parser) peek(kind csstoken.Kind) bool { return p.current().Kind == kind }

func (p *parser) eat(kind csstoken.Kind) bool {
	if p.peek(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind csstoken.Kind) bool {
	if p.eat(kind) {
		return true
	}
	p.addError("expected " + kind.String())
	return false
}

func (p *parser) addError(text string) {
	p.log.AddDiagnostic(clog.Diagnostic{
		Kind:     clog.KindError,
		Text:     text,
		Filename: p.options.Filename,
		Range:    location.Range{Start: p.current().Range.Start},
	})
}

// ruleContext carries down whether the current list of rules is the
// top-level stylesheet body (where @import/@charset/@namespace are valid
// only in a contiguous prelude) or a nested block (where a bare
// declaration is legal, and "&" nesting may appear when enabled).
type ruleContext struct {
	isTopLevel bool
	allowDecls bool
}

// parseListOfRules implements the CSS Syntax "consume a list of rules"
// algorithm, dispatching each prelude to either the at-rule parser or the
// qualified-rule (selector) parser, and recovering from a malformed rule
// by skipping to the next plausible rule boundary.
func (p *parser) parseListOfRules(context ruleContext) []cssast.Rule {
	var rules []cssast.Rule
	sawNonImportRule := false
	for {
		switch p.current().Kind {
		case csstoken.EOF:
			return rules
		case csstoken.AtKeyword:
			rule := p.parseAtRule(context, sawNonImportRule)
			if rule != nil {
				rules = append(rules, rule)
				if _, isImport := rule.(*cssast.ImportRule); !isImport {
					sawNonImportRule = true
				}
			}
		default:
			sawNonImportRule = true
			rule := p.parseQualifiedRule(context)
			if rule != nil {
				rules = append(rules, rule)
			}
		}
	}
}

// parseQualifiedRule consumes a selector prelude followed by a `{}` block
// of declarations (and, when nesting is enabled, further nested rules).
func (p *parser) parseQualifiedRule(context ruleContext) cssast.Rule {
	preludeStart := p.index
	for !p.peek(csstoken.OpenBrace) && !p.peek(csstoken.EOF) {
		p.advance()
	}
	if p.peek(csstoken.EOF) {
		p.addError("unexpected end of file in qualified rule")
		return nil
	}
	selectors, ok := p.parseSelectorList(p.tokens[preludeStart:p.index])
	if !ok {
		p.advance() // consume "{"
		p.skipBlock()
		return &cssast.IgnoredRule{Reason: "unparsable selector"}
	}
	loc := location.Range{Start: p.tokens[preludeStart].Range.Start}
	p.advance() // consume "{"
	decls, nested := p.parseBlockBody()
	return &cssast.StyleRule{Selectors: cssast.SelectorList{Selectors: selectors}, Declarations: decls, Rules: nested, Loc: loc}
}

// parseBlockBody consumes declarations (and nested rules, when the parser
// sees something that looks like a selector rather than a declaration) up
// to the matching CloseBrace, implementing the CSS Nesting mixed-content
// rule.
func (p *parser) parseBlockBody() (cssast.DeclarationBlock, []cssast.Rule) {
	var block cssast.DeclarationBlock
	var nested []cssast.Rule
	for {
		switch p.current().Kind {
		case csstoken.EOF:
			p.addError("unexpected end of file in block")
			return block, nested
		case csstoken.CloseBrace:
			p.advance()
			return block, nested
		case csstoken.Semicolon:
			p.advance()
		case csstoken.AtKeyword:
			if rule := p.parseAtRule(ruleContext{allowDecls: true}, true); rule != nil {
				nested = append(nested, rule)
			}
		default:
			if p.options.AllowNesting && p.looksLikeNestedRule() {
				if rule := p.parseQualifiedRule(ruleContext{allowDecls: true}); rule != nil {
					nested = append(nested, rule)
				}
				continue
			}
			prop, important, ok := p.parseDeclaration()
			if !ok {
				p.skipToDeclarationEnd()
				continue
			}
			if important {
				block.ImportantDeclarations = append(block.ImportantDeclarations, prop)
			} else {
				block.Declarations = append(block.Declarations, prop)
			}
		}
	}
}

// looksLikeNestedRule scans ahead (without consuming) to tell a nested
// style rule's selector prelude apart from a declaration's "prop: value",
// the same lookahead esbuild's css_nesting.go needs since both start with
// an ident or a combinator/selector token.
func (p *parser) looksLikeNestedRule() bool {
	if p.current().Kind == csstoken.DelimAmpersand {
		return true
	}
	save := p.index
	defer func() { p.index = save }()
	if p.current().Kind == csstoken.Ident {
		p.advance()
		if p.current().Kind == csstoken.Colon {
			return false
		}
	}
	for {
		switch p.current().Kind {
		case csstoken.EOF, csstoken.Semicolon:
			return false
		case csstoken.OpenBrace:
			return true
		case csstoken.CloseBrace:
			return false
		}
		p.advance()
	}
}

func (p *parser) skipBlock() {
	depth := 1
	for depth > 0 {
		switch p.current().Kind {
		case csstoken.EOF:
			return
		case csstoken.OpenBrace:
			depth++
		case csstoken.CloseBrace:
			depth--
		}
		p.advance()
	}
}

func (p *parser) skipToDeclarationEnd() {
	depth := 0
	for {
		switch p.current().Kind {
		case csstoken.EOF:
			return
		case csstoken.OpenBrace:
			depth++
		case csstoken.CloseBrace:
			if depth == 0 {
				return
			}
			depth--
		case csstoken.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}
