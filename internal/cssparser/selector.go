package cssparser

import (
	"cssc/internal/cssast"
	"cssc/internal/csstoken"
)

// parseSelectorList parses a comma-separated prelude of complex selectors.
// It runs over a prelude slice rather than the live parser cursor because
// the caller (parseQualifiedRule) has already located the prelude's exact
// token span by scanning ahead to the block's "{", a two-pass shape that
// keeps selector parsing independent of the surrounding rule parser.
func (p *parser) parseSelectorList(prelude []cssast.Token) ([]cssast.ComplexSelector, bool) {
	sc := &selectorCursor{tokens: prelude}
	var list []cssast.ComplexSelector
	for {
		sel, ok := sc.parseComplexSelector()
		if !ok {
			return nil, false
		}
		list = append(list, sel)
		if t, ok := sc.peek(); ok && t.Kind == csstoken.Comma {
			sc.next()
			continue
		}
		break
	}
	return list, sc.done()
}

// selectorCursor is a second, narrower cursor over just a selector
// prelude; kept separate from the main parser cursor so selector parsing
// never has to worry about at-rule or declaration context.
type selectorCursor struct {
	tokens []cssast.Token
	pos    int
}

func (sc *selectorCursor) done() bool { return sc.pos >= len(sc.tokens) }

func (sc *selectorCursor) peek() (cssast.Token, bool) {
	if sc.done() {
		return cssast.Token{}, false
	}
	return sc.tokens[sc.pos], true
}

func (sc *selectorCursor) next() (cssast.Token, bool) {
	t, ok := sc.peek()
	if ok {
		sc.pos++
	}
	return t, ok
}

// parseComplexSelector parses one combinator-joined chain of compound
// selectors, e.g. "div.foo > .bar:hover".
func (sc *selectorCursor) parseComplexSelector() (cssast.ComplexSelector, bool) {
	var compounds []cssast.CompoundSelector
	combinator := ""
	for {
		if t, ok := sc.peek(); ok {
			switch t.Kind {
			case csstoken.DelimGreaterThan:
				sc.next()
				combinator = ">"
				continue
			case csstoken.DelimTilde:
				sc.next()
				combinator = "~"
				continue
			case csstoken.DelimPlus:
				sc.next()
				combinator = "+"
				continue
			}
		}
		compound, ok := sc.parseCompoundSelector()
		if !ok {
			if len(compounds) == 0 {
				return cssast.ComplexSelector{}, false
			}
			break
		}
		if combinator == "" && len(compounds) > 0 {
			// No explicit combinator token between two compounds means they
			// were separated only by whitespace: the descendant combinator,
			// which the tokenizer never emits as its own token
			// (HasWhitespaceAfter carries it instead).
			combinator = " "
		}
		compound.Combinator = combinator
		combinator = ""
		compounds = append(compounds, compound)
		if t, ok := sc.peek(); !ok || t.Kind == csstoken.Comma {
			break
		}
	}
	if len(compounds) == 0 {
		return cssast.ComplexSelector{}, false
	}
	return cssast.ComplexSelector{Compounds: compounds}, true
}

func (sc *selectorCursor) parseCompoundSelector() (cssast.CompoundSelector, bool) {
	var compound cssast.CompoundSelector
	matched := false

	if t, ok := sc.peek(); ok {
		switch {
		case t.Kind == csstoken.Ident:
			sc.next()
			compound.TypeSelector = &cssast.NamespacedName{Name: t.Text}
			matched = true
		case t.Kind == csstoken.DelimAsterisk:
			sc.next()
			compound.TypeSelector = &cssast.NamespacedName{Name: "*"}
			matched = true
		case t.Kind == csstoken.DelimAmpersand:
			sc.next()
			compound.HasNestingSelector = true
			matched = true
		}
	}

loop:
	for {
		t, ok := sc.peek()
		if !ok {
			break
		}
		switch t.Kind {
		case csstoken.Hash:
			sc.next()
			compound.SubclassSelectors = append(compound.SubclassSelectors, &cssast.IDSelector{Name: t.Text})
			matched = true
		case csstoken.DelimDot:
			sc.next()
			name, ok := sc.next()
			if !ok || name.Kind != csstoken.Ident {
				return cssast.CompoundSelector{}, false
			}
			compound.SubclassSelectors = append(compound.SubclassSelectors, &cssast.ClassSelector{Name: name.Text})
			matched = true
		case csstoken.OpenBracket:
			sc.next()
			attr, ok := sc.parseAttributeSelector()
			if !ok {
				return cssast.CompoundSelector{}, false
			}
			compound.SubclassSelectors = append(compound.SubclassSelectors, attr)
			matched = true
		case csstoken.Colon:
			sc.next()
			isElement := false
			if t2, ok := sc.peek(); ok && t2.Kind == csstoken.Colon {
				sc.next()
				isElement = true
			}
			name, ok := sc.next()
			if !ok || (name.Kind != csstoken.Ident && name.Kind != csstoken.Function) {
				return cssast.CompoundSelector{}, false
			}
			var args []cssast.Token
			if name.Kind == csstoken.Function && name.Children != nil {
				args = *name.Children
			}
			compound.PseudoClassSelectors = append(compound.PseudoClassSelectors, cssast.PseudoClassSelector{
				Name: name.Text, Args: args, IsElement: isElement,
			})
			matched = true
		default:
			break loop
		}
	}

	if !matched {
		return cssast.CompoundSelector{}, false
	}
	return compound, true
}

func (sc *selectorCursor) parseAttributeSelector() (*cssast.AttributeSelector, bool) {
	name, ok := sc.next()
	if !ok || name.Kind != csstoken.Ident {
		return nil, false
	}
	attr := &cssast.AttributeSelector{Name: cssast.NamespacedName{Name: name.Text}}
	if t, ok := sc.peek(); ok && isAttributeMatcher(t.Kind) {
		sc.next()
		attr.MatcherOp = matcherText(t.Kind)
		if attr.MatcherOp != "=" {
			// The base tokenizer emits "~=", "|=", "^=", "$=", "*=" as two
			// adjacent delimiter tokens (e.g. DelimTilde, DelimEquals); the
			// attribute-selector grammar is what gives them their combined
			// meaning, so consume the trailing "=" here.
			if eq, ok := sc.peek(); !ok || eq.Kind != csstoken.DelimEquals {
				return nil, false
			}
			sc.next()
		}
		val, ok := sc.next()
		if !ok || (val.Kind != csstoken.String && val.Kind != csstoken.Ident) {
			return nil, false
		}
		attr.Value = val.Text
		if kw, ok := sc.peek(); ok && kw.Kind == csstoken.Ident && (kw.Text == "i" || kw.Text == "I" || kw.Text == "s" || kw.Text == "S") {
			sc.next()
			attr.CaseFolding = kw.Text[0] | 0x20
		}
	}
	if t, ok := sc.next(); !ok || t.Kind != csstoken.CloseBracket {
		return nil, false
	}
	return attr, true
}

func isAttributeMatcher(k csstoken.Kind) bool {
	switch k {
	case csstoken.DelimEquals, csstoken.DelimTilde, csstoken.DelimBar, csstoken.DelimCaret, csstoken.DelimDollar, csstoken.DelimAsterisk:
		return true
	}
	return false
}

func matcherText(k csstoken.Kind) string {
	switch k {
	case csstoken.DelimEquals:
		return "="
	case csstoken.DelimDollar:
		return "$="
	case csstoken.DelimTilde:
		return "~="
	case csstoken.DelimBar:
		return "|="
	case csstoken.DelimCaret:
		return "^="
	case csstoken.DelimAsterisk:
		return "*="
	}
	return ""
}
