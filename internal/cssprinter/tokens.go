package cssprinter

import "cssc/internal/csstoken"

// tokenSourceText renders one token back to CSS text, covering the token
// kinds this module's parser actually produces inside an Unparsed/Custom
// value or a function-argument list.
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
	case csstoken.Number:
		return t.Text
	case csstoken.Colon:
		return ":"
	case csstoken.Comma:
		return ","
	case csstoken.Semicolon:
		return ";"
	case csstoken.DelimGreaterThan:
		return ">"
	case csstoken.DelimTilde:
		return "~"
	case csstoken.DelimPlus:
		return "+"
	case csstoken.DelimMinus:
		return "-"
	case csstoken.DelimSlash:
		return "/"
	case csstoken.DelimAsterisk:
		return "*"
	case csstoken.DelimEquals:
		return "="
	case csstoken.OpenParen:
		return "("
	case csstoken.CloseParen:
		return ")"
	case csstoken.OpenBracket:
		return "["
	case csstoken.CloseBracket:
		return "]"
	case csstoken.URL:
		return "url(" + t.Text + ")"
	case csstoken.Function:
		inner := ""
		if t.Children != nil {
			inner = tokensToCSS(*t.Children)
		}
		return t.Text + "(" + inner + ")"
	default:
		return t.Text
	}
}
