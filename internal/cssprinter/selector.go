package cssprinter

import (
	"strings"

	"cssc/internal/cssast"
)

// printSelectorList renders a comma-separated ComplexSelector list.
func (p *printer) printSelectorList(list cssast.SelectorList) {
	for i, sel := range list.Selectors {
		if i > 0 {
			p.write(",")
			if !p.opts.Minify {
				p.write(" ")
			}
		}
		p.write(p.printComplexSelector(sel))
	}
}

func (p *printer) printComplexSelector(sel cssast.ComplexSelector) string {
	var b strings.Builder
	for i, c := range sel.Compounds {
		if i > 0 {
			if c.Combinator == "" || c.Combinator == " " {
				b.WriteString(" ")
			} else {
				b.WriteString(" " + c.Combinator + " ")
			}
		}
		b.WriteString(p.printCompoundSelector(c))
	}
	return b.String()
}

func (p *printer) printCompoundSelector(c cssast.CompoundSelector) string {
	var b strings.Builder
	if c.HasNestingSelector {
		b.WriteString("&")
	}
	if c.TypeSelector != nil {
		b.WriteString(printNamespacedName(*c.TypeSelector))
	}
	for _, sub := range c.SubclassSelectors {
		b.WriteString(p.printSubclassSelector(sub))
	}
	for _, pc := range c.PseudoClassSelectors {
		b.WriteString(p.printPseudoClassSelector(pc))
	}
	return b.String()
}

func printNamespacedName(n cssast.NamespacedName) string {
	if n.NamespacePrefix != nil {
		return *n.NamespacePrefix + "|" + n.Name
	}
	return n.Name
}

func (p *printer) printSubclassSelector(s cssast.SubclassSelector) string {
	switch sel := s.(type) {
	case *cssast.IDSelector:
		if p.opts.Modules != nil {
			return "#" + p.scopeName(sel.Name)
		}
		return "#" + sel.Name
	case *cssast.ClassSelector:
		if p.opts.Modules != nil {
			return "." + p.scopeName(sel.Name)
		}
		return "." + sel.Name
	case *cssast.AttributeSelector:
		return printAttributeSelector(sel)
	default:
		return ""
	}
}

func printAttributeSelector(sel *cssast.AttributeSelector) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(printNamespacedName(sel.Name))
	if sel.MatcherOp != "" {
		b.WriteString(sel.MatcherOp)
		b.WriteString(quoteString(sel.Value))
		if sel.CaseFolding != 0 {
			b.WriteString(" " + string(sel.CaseFolding))
		}
	}
	b.WriteString("]")
	return b.String()
}

// printPseudoClassSelector renders a pseudo-class/element, unless
// Options.PseudoClassOverrides names a replacement class for pc.Name, in
// which case it emits ".<replacement>" instead — e.g. a build targeting an
// engine with no native ":focus-visible" support maps it to the class a
// polyfill toggles at runtime.
func (p *printer) printPseudoClassSelector(pc cssast.PseudoClassSelector) string {
	if !pc.IsElement {
		if replacement, ok := p.opts.PseudoClassOverrides[pc.Name]; ok {
			return "." + replacement
		}
	}
	prefix := ":"
	if pc.IsElement {
		prefix = "::"
	}
	if len(pc.Args) == 0 {
		return prefix + pc.Name
	}
	return prefix + pc.Name + "(" + tokensToCSS(pc.Args) + ")"
}
