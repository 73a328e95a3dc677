package cssparser

import (
	"strings"

	"cssc/internal/cssast"
	"cssc/internal/csstoken"
	"cssc/internal/cssvalue"
	"cssc/internal/location"
)

// parseDeclaration consumes "<ident> : <value> [!important]? ;?" and
// returns the typed Property when the property name and value shape are
// ones this module knows, falling back to Unparsed for a recognized
// property with an untyped value and to Custom for a "--name" custom
// property.
func (p *parser) parseDeclaration() (cssast.Property, bool, bool) {
	nameTok := p.current()
	if nameTok.Kind != csstoken.Ident {
		return cssast.Property{}, false, false
	}
	loc := location.Range{Start: nameTok.Range.Start}
	p.advance()
	if !p.expect(csstoken.Colon) {
		return cssast.Property{}, false, false
	}

	valueStart := p.index
	for !p.peek(csstoken.Semicolon) && !p.peek(csstoken.CloseBrace) && !p.peek(csstoken.EOF) {
		p.advance()
	}
	valueTokens := p.tokens[valueStart:p.index]
	if p.peek(csstoken.Semicolon) {
		p.advance()
	}

	important := false
	if n := len(valueTokens); n >= 2 &&
		valueTokens[n-1].Kind == csstoken.Ident && strings.EqualFold(valueTokens[n-1].Text, "important") &&
		valueTokens[n-2].Kind == csstoken.DelimExclamation {
		important = true
		valueTokens = valueTokens[:n-2]
	}

	name := nameTok.Text
	if strings.HasPrefix(name, "--") {
		return cssast.Property{ID: cssast.Unknown, Custom: &cssast.CustomProperty{Name: name, Tokens: valueTokens}, Loc: loc}, important, true
	}

	id, known := cssast.PropertyIDFromName(strings.ToLower(name))
	if !known {
		return cssast.Property{ID: cssast.Unknown, Unparsed: &cssast.UnparsedValue{Tokens: valueTokens}, Loc: loc}, important, true
	}

	if prop, ok := parseTypedValue(id, valueTokens); ok {
		prop.Important = important
		prop.Loc = loc
		return prop, important, true
	}
	return cssast.Property{ID: id, Unparsed: &cssast.UnparsedValue{Tokens: valueTokens}, Important: important, Loc: loc}, important, true
}

// parseTypedValue builds a typed Property for the property families this
// module models structurally; anything not covered here still parses
// successfully, just as Property.Unparsed.
func parseTypedValue(id cssast.PropertyID, tokens []csstoken.ValueToken) (cssast.Property, bool) {
	c := cssvalue.NewCursor(tokens)
	switch id {
	case cssast.Margin, cssast.Padding, cssast.Inset:
		sides, ok := parseBoxSidesShorthand(c)
		if !ok {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, BoxSides: sides}, true

	case cssast.MarginTop, cssast.MarginRight, cssast.MarginBottom, cssast.MarginLeft,
		cssast.PaddingTop, cssast.PaddingRight, cssast.PaddingBottom, cssast.PaddingLeft,
		cssast.Top, cssast.Right, cssast.Bottom, cssast.Left,
		cssast.Width, cssast.Height, cssast.MaxWidth, cssast.MaxHeight, cssast.MinWidth, cssast.MinHeight:
		lp, ok := cssvalue.TryParse(c, cssvalue.ParseLengthPercentage)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Length: &lp}}, true

	case cssast.MarginBlockStart, cssast.MarginBlockEnd, cssast.MarginInlineStart, cssast.MarginInlineEnd,
		cssast.PaddingBlockStart, cssast.PaddingBlockEnd, cssast.PaddingInlineStart, cssast.PaddingInlineEnd,
		cssast.InsetBlockStart, cssast.InsetBlockEnd, cssast.InsetInlineStart, cssast.InsetInlineEnd:
		lp, ok := cssvalue.TryParse(c, cssvalue.ParseLengthPercentage)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Logical: &cssast.LogicalProperty{Value: lp}}, true

	case cssast.Color, cssast.BackgroundColor, cssast.BorderColor,
		cssast.BorderTopColor, cssast.BorderRightColor, cssast.BorderBottomColor, cssast.BorderLeftColor:
		col, ok := cssvalue.TryParse(c, cssvalue.ParseColor)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Color: &col}}, true

	case cssast.Opacity:
		n, ok := cssvalue.TryParse(c, cssvalue.ParseNumber)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Number: &n}}, true

	case cssast.ZIndex:
		n, ok := cssvalue.TryParse(c, cssvalue.ParseInteger)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Integer: &n}}, true

	case cssast.Display, cssast.Visibility, cssast.BoxSizing, cssast.Cursor, cssast.TextAlign,
		cssast.Position, cssast.OverflowX, cssast.OverflowY,
		cssast.Appearance, cssast.UserSelect, cssast.Hyphens, cssast.TabSize,
		cssast.TextOrientation, cssast.TextSizeAdjust, cssast.PrintColorAdjust:
		kw, ok := c.ExpectIdent(keywordsFor(id)...)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Keyword: kw}}, true

	case cssast.Overflow:
		x, ok := c.ExpectIdent("visible", "hidden", "scroll", "auto", "clip")
		if !ok {
			return cssast.Property{}, false
		}
		y := x
		if y2, ok := c.ExpectIdent("visible", "hidden", "scroll", "auto", "clip"); ok {
			y = y2
		}
		if !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Overflow: &cssast.Overflow{X: x, Y: y}}, true

	case cssast.BorderRadius:
		r, ok := cssvalue.TryParse(c, cssvalue.ParseLengthPercentage)
		if !ok || !c.Done() {
			return cssast.Property{}, false
		}
		return cssast.Property{ID: id, Single: &cssast.SingleValue{Length: &r}}, true
	}
	return cssast.Property{}, false
}

// keywordsFor is a representative (not exhaustive) keyword set per
// property, enough to type-check the common cases; anything outside the
// set still parses via Unparsed.
func keywordsFor(id cssast.PropertyID) []string {
	switch id {
	case cssast.Display:
		return []string{"none", "block", "inline", "inline-block", "flex", "inline-flex", "grid", "inline-grid", "table", "contents"}
	case cssast.Visibility:
		return []string{"visible", "hidden", "collapse"}
	case cssast.BoxSizing:
		return []string{"content-box", "border-box"}
	case cssast.Cursor:
		return []string{"auto", "default", "pointer", "text", "move", "not-allowed", "grab", "grabbing", "wait", "help"}
	case cssast.TextAlign:
		return []string{"left", "right", "center", "justify", "start", "end"}
	case cssast.Position:
		return []string{"static", "relative", "absolute", "fixed", "sticky"}
	case cssast.OverflowX, cssast.OverflowY:
		return []string{"visible", "hidden", "scroll", "auto", "clip"}
	case cssast.Appearance:
		return []string{"none", "auto", "button", "textfield", "menulist"}
	case cssast.UserSelect:
		return []string{"none", "auto", "text", "all", "contain"}
	case cssast.Hyphens:
		return []string{"none", "manual", "auto"}
	case cssast.TabSize:
		return []string{} // numeric form handled elsewhere; keyword form has none standard
	case cssast.TextOrientation:
		return []string{"mixed", "upright", "sideways"}
	case cssast.TextSizeAdjust:
		return []string{"none", "auto"}
	case cssast.PrintColorAdjust:
		return []string{"economy", "exact"}
	}
	return nil
}

// parseBoxSidesShorthand implements the CSS "1 to 4 values" box-edge
// shorthand expansion (used for margin/padding/inset): one value applies
// to all sides, two to vertical/horizontal, three to top/horizontal/
// bottom, four to top/right/bottom/left in that order.
func parseBoxSidesShorthand(c *cssvalue.Cursor) (*cssast.BoxSides, bool) {
	var values []cssvalue.LengthPercentage
	for len(values) < 4 {
		v, ok := cssvalue.TryParse(c, cssvalue.ParseLengthPercentage)
		if !ok {
			break
		}
		values = append(values, v)
	}
	if !c.Done() || len(values) == 0 {
		return nil, false
	}
	var sides cssast.BoxSides
	switch len(values) {
	case 1:
		sides = cssast.BoxSides{Top: values[0], Right: values[0], Bottom: values[0], Left: values[0]}
	case 2:
		sides = cssast.BoxSides{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}
	case 3:
		sides = cssast.BoxSides{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}
	case 4:
		sides = cssast.BoxSides{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}
	}
	return &sides, true
}
