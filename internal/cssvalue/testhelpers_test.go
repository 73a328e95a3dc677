package cssvalue

import (
	"cssc/internal/clog"
	"cssc/internal/csstoken"
)

// tokenizeValue lexes text (a bare component-value list, not a whole
// stylesheet) and nests each Function token's arguments into its
// Children, mirroring cssparser's buildValueTree closely enough for unit
// tests that exercise one value grammar in isolation without pulling in
// the rule parser.
func tokenizeValue(text string) []csstoken.ValueToken {
	log := clog.New(nil, "test")
	raw := csstoken.Tokenize(log, "test.css", text)
	tree, _ := nestFunctionChildren(raw, text, 0, false)
	return tree
}

func nestFunctionChildren(raw []csstoken.Token, source string, start int, inFunction bool) ([]csstoken.ValueToken, int) {
	var out []csstoken.ValueToken
	i := start
	depth := 0
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
			Text:       t.DecodedText(source),
			Range:      t.Range,
			UnitOffset: t.UnitOffset,
			Kind:       t.Kind,
			IsID:       t.IsID,
		}
		i++
		if t.Kind == csstoken.Function {
			children, next := nestFunctionChildren(raw, source, i, true)
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
