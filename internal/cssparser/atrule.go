package cssparser

import (
	"strings"

	"cssc/internal/clog"
	"cssc/internal/cssast"
	"cssc/internal/csstoken"
	"cssc/internal/location"
)

// parseAtRule dispatches on the at-keyword's name: @charset, @import,
// @namespace, @custom-media, @keyframes (with vendor prefixes),
// @font-face, @page, @counter-style, @viewport / -ms-viewport,
// -moz-document url-prefix(). Unknown at-rules are skipped with a
// warning rather than aborting the whole parse.
func (p *parser) parseAtRule(context ruleContext, sawNonImportRule bool) cssast.Rule {
	at := p.current()
	name := strings.ToLower(at.Text)
	p.advance()

	switch {
	case name == "charset":
		p.skipToDeclarationEnd()
		return nil // @charset is consumed for its side effect only and isn't kept as a rule

	case name == "import":
		return p.parseImportRule()

	case name == "namespace":
		return p.parseNamespaceRule()

	case name == "custom-media":
		return p.parseCustomMediaRule()

	case name == "keyframes" || isVendorKeyframes(name):
		return p.parseKeyframesRule(name)

	case name == "font-face":
		return p.parseDeclarationsOnlyRule(func(b cssast.DeclarationBlock) cssast.Rule { return &cssast.FontFaceRule{Declarations: b} })

	case name == "page":
		return p.parsePageRule()

	case name == "counter-style":
		return p.parseCounterStyleRule()

	case name == "viewport" || name == "-ms-viewport":
		prefix := cssast.PrefixNone
		if name == "-ms-viewport" {
			prefix = cssast.PrefixMs
		}
		return p.parseDeclarationsOnlyRule(func(b cssast.DeclarationBlock) cssast.Rule {
			return &cssast.ViewportRule{Prefix: prefix, Declarations: b}
		})

	case name == "media":
		return p.parseConditionRule(func(prelude string, rules []cssast.Rule) cssast.Rule {
			return &cssast.MediaRule{Query: prelude, Rules: rules}
		})

	case name == "supports":
		return p.parseConditionRule(func(prelude string, rules []cssast.Rule) cssast.Rule {
			return &cssast.SupportsRule{Condition: cssast.SupportsCondition{Raw: prelude}, Rules: rules}
		})

	case name == "document" || name == "-moz-document":
		return p.parseConditionRule(func(prelude string, rules []cssast.Rule) cssast.Rule {
			return &cssast.MozDocumentRule{Prelude: prelude, Rules: rules}
		})

	case name == "layer":
		return p.parseLayerRule()

	default:
		p.log.AddDiagnostic(clog.Diagnostic{
			Kind:     clog.KindWarning,
			Text:     "unknown at-rule @" + name,
			Filename: p.options.Filename,
			Range:    location.Range{Start: at.Range.Start},
		})
		p.skipUnknownAtRule()
		return &cssast.IgnoredRule{Reason: "unknown at-rule @" + name}
	}
}

func isVendorKeyframes(name string) bool {
	return name == "-webkit-keyframes" || name == "-moz-keyframes" || name == "-o-keyframes"
}

// preludeTokens consumes tokens up to (not including) the next "{" or ";"
// at nesting depth zero, returning their concatenated raw text. Condition
// grammars (media queries, @supports conditions) are kept as this raw
// prelude text rather than parsed into a structured form.
func (p *parser) preludeTokens() ([]csstoken.ValueToken, string) {
	start := p.index
	for {
		switch p.current().Kind {
		case csstoken.OpenBrace, csstoken.Semicolon, csstoken.EOF:
			tokens := p.tokens[start:p.index]
			return tokens, tokensToText(tokens)
		}
		p.advance()
	}
}

func tokensToText(tokens []csstoken.ValueToken) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && needsSpaceBetween(tokens[i-1], t) {
			b.WriteByte(' ')
		}
		b.WriteString(tokenSourceText(t))
	}
	return strings.TrimSpace(b.String())
}

func needsSpaceBetween(prev, next csstoken.ValueToken) bool {
	return prev.HasWhitespaceAfter
}

func tokenSourceText(t csstoken.ValueToken) string {
	switch t.Kind {
	case csstoken.Ident:
		return t.Text
	case csstoken.Hash:
		return "#" + t.Text
	case csstoken.AtKeyword:
		return "@" + t.Text
	case csstoken.String:
		return "\"" + t.Text + "\""
	case csstoken.Dimension:
		return t.Text
	case csstoken.Percentage:
		return t.Text + "%"
	case csstoken.Colon:
		return ":"
	case csstoken.Comma:
		return ","
	case csstoken.DelimGreaterThan:
		return ">"
	case csstoken.OpenParen:
		return "("
	case csstoken.CloseParen:
		return ")"
	case csstoken.Function:
		inner := ""
		if t.Children != nil {
			inner = tokensToText(*t.Children)
		}
		return t.Text + "(" + inner + ")"
	default:
		return t.Text
	}
}

func (p *parser) parseConditionRule(build func(prelude string, rules []cssast.Rule) cssast.Rule) cssast.Rule {
	_, prelude := p.preludeTokens()
	if p.peek(csstoken.Semicolon) {
		p.advance()
		return build(prelude, nil)
	}
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	rules := p.parseListOfRules(ruleContext{allowDecls: true})
	return build(prelude, rules)
}

func (p *parser) parseDeclarationsOnlyRule(build func(cssast.DeclarationBlock) cssast.Rule) cssast.Rule {
	p.skipWhitespaceTokensInPrelude()
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	block, _ := p.parseBlockBody()
	return build(block)
}

func (p *parser) skipWhitespaceTokensInPrelude() {
	for !p.peek(csstoken.OpenBrace) && !p.peek(csstoken.Semicolon) && !p.peek(csstoken.EOF) {
		p.advance()
	}
}

func (p *parser) skipUnknownAtRule() {
	for {
		switch p.current().Kind {
		case csstoken.EOF, csstoken.Semicolon:
			p.advance()
			return
		case csstoken.OpenBrace:
			p.advance()
			p.skipBlock()
			return
		}
		p.advance()
	}
}

func (p *parser) parseImportRule() cssast.Rule {
	url, ok := p.expectURLOrString()
	if !ok {
		p.skipUnknownAtRule()
		return nil
	}
	rule := &cssast.ImportRule{URL: url}
	if t := p.current(); t.Kind == csstoken.Function && strings.EqualFold(t.Text, "layer") {
		p.advance()
		name := ""
		if t.Children != nil {
			name = tokensToText(*t.Children)
		}
		rule.LayerName = &name
	} else if kw, ok := p.peekIdentEquals("layer"); ok {
		p.advance()
		if p.peek(csstoken.OpenParen) {
			p.advance()
			nameTok, _ := p.eatIdent()
			name := nameTok
			rule.LayerName = &name
			p.expect(csstoken.CloseParen)
		} else {
			empty := ""
			rule.LayerName = &empty
		}
		_ = kw
	}
	if t := p.current(); t.Kind == csstoken.Function && strings.EqualFold(t.Text, "supports") {
		p.advance()
		text := ""
		if t.Children != nil {
			text = tokensToText(*t.Children)
		}
		rule.Supports = &cssast.SupportsCondition{Raw: text}
	} else if kw, ok := p.peekIdentEquals("supports"); ok {
		p.advance()
		if p.peek(csstoken.OpenParen) {
			p.advance()
			_, text := p.preludeTokensUntilParen()
			cond := cssast.SupportsCondition{Raw: text}
			rule.Supports = &cond
		}
		_ = kw
	}
	_, mediaText := p.preludeTokens()
	rule.Media = mediaText
	if p.peek(csstoken.Semicolon) {
		p.advance()
	}
	return rule
}

func (p *parser) preludeTokensUntilParen() ([]csstoken.ValueToken, string) {
	start := p.index
	depth := 1
	for depth > 0 && !p.peek(csstoken.EOF) {
		switch p.current().Kind {
		case csstoken.OpenParen:
			depth++
		case csstoken.CloseParen:
			depth--
			if depth == 0 {
				tokens := p.tokens[start:p.index]
				p.advance()
				return tokens, tokensToText(tokens)
			}
		}
		p.advance()
	}
	return p.tokens[start:p.index], tokensToText(p.tokens[start:p.index])
}

func (p *parser) peekIdentEquals(name string) (string, bool) {
	t := p.current()
	if t.Kind == csstoken.Ident && strings.EqualFold(t.Text, name) {
		return t.Text, true
	}
	return "", false
}

func (p *parser) eatIdent() (string, bool) {
	t := p.current()
	if t.Kind == csstoken.Ident {
		p.advance()
		return t.Text, true
	}
	return "", false
}

// expectURLOrString consumes a URL token or a quoted String token, the two
// interchangeable forms @import's (and url()'s bare-string shorthand's)
// grammar allows.
func (p *parser) expectURLOrString() (string, bool) {
	t := p.current()
	if t.Kind == csstoken.URL || t.Kind == csstoken.String {
		p.advance()
		return t.Text, true
	}
	return "", false
}

func (p *parser) parseNamespaceRule() cssast.Rule {
	prefix := ""
	if t := p.current(); t.Kind == csstoken.Ident {
		prefix = t.Text
		p.advance()
	}
	uri, ok := p.expectURLOrString()
	if !ok {
		p.skipUnknownAtRule()
		return nil
	}
	if p.peek(csstoken.Semicolon) {
		p.advance()
	}
	return &cssast.NamespaceRule{Prefix: prefix, URI: uri}
}

func (p *parser) parseCustomMediaRule() cssast.Rule {
	name, ok := p.eatIdent()
	if !ok {
		p.skipUnknownAtRule()
		return nil
	}
	_, query := p.preludeTokens()
	if p.peek(csstoken.Semicolon) {
		p.advance()
	}
	return &cssast.CustomMediaRule{Name: name, Query: query}
}

func (p *parser) parseKeyframesRule(atName string) cssast.Rule {
	prefix := cssast.PrefixNone
	switch atName {
	case "-webkit-keyframes":
		prefix = cssast.PrefixWebKit
	case "-moz-keyframes":
		prefix = cssast.PrefixMoz
	case "-o-keyframes":
		prefix = cssast.PrefixO
	}
	name := ""
	if t := p.current(); t.Kind == csstoken.Ident || t.Kind == csstoken.String {
		name = t.Text
		p.advance()
	}
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	var blocks []cssast.KeyframeBlock
	for !p.peek(csstoken.CloseBrace) && !p.peek(csstoken.EOF) {
		var selectors []string
		for {
			t := p.current()
			if t.Kind == csstoken.Ident || t.Kind == csstoken.Percentage {
				selectors = append(selectors, tokenSourceText(t))
				p.advance()
			}
			if p.peek(csstoken.Comma) {
				p.advance()
				continue
			}
			break
		}
		if !p.expect(csstoken.OpenBrace) {
			p.skipBlock()
			continue
		}
		block, _ := p.parseBlockBody()
		blocks = append(blocks, cssast.KeyframeBlock{Selectors: selectors, Declarations: block})
	}
	p.eat(csstoken.CloseBrace)
	return &cssast.KeyframesRule{Name: name, Prefix: prefix, Blocks: blocks}
}

func (p *parser) parsePageRule() cssast.Rule {
	_, selector := p.preludeTokens()
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	block, _ := p.parseBlockBody()
	return &cssast.PageRule{Selector: selector, Declarations: block}
}

func (p *parser) parseCounterStyleRule() cssast.Rule {
	name, _ := p.eatIdent()
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	block, _ := p.parseBlockBody()
	return &cssast.CounterStyleRule{Name: name, Declarations: block}
}

// parseLayerRule handles both forms of @layer: the statement form
// ("@layer a, b;") and the block form ("@layer name { ... }" or the
// anonymous "@layer { ... }"). The bundler treats anonymous and named
// layer blocks as distinct even when they share a position, and rejects
// merging one into the other.
func (p *parser) parseLayerRule() cssast.Rule {
	var names []string
	if t := p.current(); t.Kind == csstoken.Ident {
		names = append(names, t.Text)
		p.advance()
		for p.peek(csstoken.Comma) {
			p.advance()
			if t := p.current(); t.Kind == csstoken.Ident {
				names = append(names, t.Text)
				p.advance()
			}
		}
	}
	if p.peek(csstoken.Semicolon) {
		p.advance()
		return &cssast.LayerStatementRule{Names: names}
	}
	if !p.expect(csstoken.OpenBrace) {
		return nil
	}
	rules := p.parseListOfRules(ruleContext{allowDecls: true})
	name := ""
	if len(names) == 1 {
		name = names[0]
	}
	return &cssast.LayerBlockRule{Name: name, Rules: rules}
}
