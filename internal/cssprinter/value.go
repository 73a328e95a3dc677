package cssprinter

import (
	"strings"

	"cssc/internal/cssast"
	"cssc/internal/cssvalue"
)

// printValue renders a Property's value text, dispatching on whichever
// typed payload field is populated (property.go documents exactly one is,
// chosen by ID) and falling back to the raw token text for the Unparsed/
// Custom escape hatches.
func printValue(prop cssast.Property, f cssvalue.MinifyFlags) string {
	switch {
	case prop.BoxSides != nil:
		return printBoxSides(*prop.BoxSides, f)
	case prop.Border != nil:
		b := prop.Border
		return strings.Join([]string{b.Width.String(f), b.Style, b.Color.String(f)}, " ")
	case prop.Flex != nil:
		return printFlex(*prop.Flex, f)
	case prop.Font != nil:
		return printFont(*prop.Font, f)
	case len(prop.Background) > 0:
		return printBackground(prop.Background, f)
	case len(prop.Transition) > 0:
		return printTransition(prop.Transition, f)
	case len(prop.Animation) > 0:
		return printAnimation(prop.Animation, f)
	case prop.Overflow != nil:
		if prop.Overflow.X == prop.Overflow.Y {
			return prop.Overflow.X
		}
		return prop.Overflow.X + " " + prop.Overflow.Y
	case prop.ListStyle != nil:
		return printListStyle(*prop.ListStyle, f)
	case len(prop.Mask) > 0:
		return printMask(prop.Mask, f)
	case len(prop.Filter) > 0:
		return printFilter(prop.Filter)
	case prop.Grid != nil:
		return printGrid(*prop.Grid)
	case prop.Single != nil:
		return printSingleValue(*prop.Single, f)
	case prop.Logical != nil:
		return prop.Logical.Value.String(f)
	case prop.Unparsed != nil:
		return tokensToCSS(prop.Unparsed.Tokens)
	case prop.Custom != nil:
		return tokensToCSS(prop.Custom.Tokens)
	default:
		return ""
	}
}

// printBoxSides folds four physical sides back to the shortest equivalent
// 1/2/4-value shorthand form, the inverse of what BoxSidesFamily.Accept
// does while collecting declarations during the transform pass.
func printBoxSides(b cssast.BoxSides, f cssvalue.MinifyFlags) string {
	if b.AllEqual() {
		return b.Top.String(f)
	}
	if b.TopBottomEqual() {
		return b.Top.String(f) + " " + b.Right.String(f)
	}
	return strings.Join([]string{b.Top.String(f), b.Right.String(f), b.Bottom.String(f), b.Left.String(f)}, " ")
}

func printFlex(fl cssast.Flex, f cssvalue.MinifyFlags) string {
	basis := "auto"
	if !fl.IsBasisAuto {
		basis = fl.Basis.String(f)
	}
	return fl.Grow.String(f) + " " + fl.Shrink.String(f) + " " + basis
}

func printFont(ft cssast.Font, f cssvalue.MinifyFlags) string {
	var parts []string
	if ft.Style != "" {
		parts = append(parts, ft.Style)
	}
	if ft.Variant != "" {
		parts = append(parts, ft.Variant)
	}
	if ft.Weight != "" {
		parts = append(parts, ft.Weight)
	}
	size := ft.Size.String(f)
	if ft.LineHeight != nil {
		size += "/" + ft.LineHeight.String(f)
	}
	parts = append(parts, size)
	if len(ft.Family) > 0 {
		parts = append(parts, strings.Join(ft.Family, ", "))
	}
	return strings.Join(parts, " ")
}

func printBackground(layers []cssast.BackgroundLayer, f cssvalue.MinifyFlags) string {
	rendered := make([]string, len(layers))
	for i, layer := range layers {
		var parts []string
		if layer.Image != nil {
			parts = append(parts, layer.Image.String(f))
		}
		if layer.Position != nil {
			parts = append(parts, layer.Position.String(f))
			if layer.Size != nil {
				parts = append(parts, "/ "+layer.Size.Width.String(f)+" "+layer.Size.Height.String(f))
			}
		}
		if layer.Repeat != "" {
			parts = append(parts, layer.Repeat)
		}
		if layer.Attachment != "" {
			parts = append(parts, layer.Attachment)
		}
		if layer.Origin != "" {
			parts = append(parts, layer.Origin)
		}
		if layer.Clip != "" && layer.Clip != layer.Origin {
			parts = append(parts, layer.Clip)
		}
		if layer.Color != nil {
			parts = append(parts, layer.Color.String(f))
		}
		rendered[i] = strings.Join(parts, " ")
	}
	return strings.Join(rendered, ", ")
}

func printTransition(items []cssast.TransitionItem, f cssvalue.MinifyFlags) string {
	rendered := make([]string, len(items))
	for i, t := range items {
		parts := []string{t.Property, t.Duration.String(f)}
		if t.Timing != "" {
			parts = append(parts, t.Timing)
		}
		parts = append(parts, t.Delay.String(f))
		rendered[i] = strings.Join(parts, " ")
	}
	return strings.Join(rendered, ", ")
}

func printAnimation(items []cssast.AnimationItem, f cssvalue.MinifyFlags) string {
	rendered := make([]string, len(items))
	for i, a := range items {
		parts := []string{a.Duration.String(f)}
		if a.Timing != "" {
			parts = append(parts, a.Timing)
		}
		parts = append(parts, a.Delay.String(f))
		if a.IterationCount != "" {
			parts = append(parts, a.IterationCount)
		}
		if a.Direction != "" {
			parts = append(parts, a.Direction)
		}
		if a.FillMode != "" {
			parts = append(parts, a.FillMode)
		}
		if a.PlayState != "" {
			parts = append(parts, a.PlayState)
		}
		parts = append(parts, a.Name)
		rendered[i] = strings.Join(parts, " ")
	}
	return strings.Join(rendered, ", ")
}

func printListStyle(ls cssast.ListStyle, f cssvalue.MinifyFlags) string {
	var parts []string
	if ls.Type != "" {
		parts = append(parts, ls.Type)
	}
	if ls.Position != "" {
		parts = append(parts, ls.Position)
	}
	if ls.Image != nil {
		parts = append(parts, ls.Image.String(f))
	}
	return strings.Join(parts, " ")
}

func printMask(layers []cssast.MaskLayer, f cssvalue.MinifyFlags) string {
	rendered := make([]string, len(layers))
	for i, layer := range layers {
		var parts []string
		if layer.Image != nil {
			parts = append(parts, layer.Image.String(f))
		}
		if layer.Position != nil {
			parts = append(parts, layer.Position.String(f))
			if layer.Size != nil {
				parts = append(parts, "/ "+layer.Size.Width.String(f)+" "+layer.Size.Height.String(f))
			}
		}
		if layer.Repeat != "" {
			parts = append(parts, layer.Repeat)
		}
		if layer.Origin != "" {
			parts = append(parts, layer.Origin)
		}
		rendered[i] = strings.Join(parts, " ")
	}
	return strings.Join(rendered, ", ")
}

func printFilter(fns []cssast.FilterFunction) string {
	rendered := make([]string, len(fns))
	for i, fn := range fns {
		rendered[i] = fn.Name + "(" + tokensToCSS(fn.Args) + ")"
	}
	return strings.Join(rendered, " ")
}

func printGrid(g cssast.Grid) string {
	switch {
	case g.Area != "":
		return g.Area
	case g.Column != "" || g.Row != "":
		return strings.TrimSpace(g.Row + " / " + g.Column)
	case len(g.TemplateAreas) > 0:
		quoted := make([]string, len(g.TemplateAreas))
		for i, row := range g.TemplateAreas {
			quoted[i] = quoteString(row)
		}
		return strings.Join(quoted, " ")
	case len(g.TemplateColumns) > 0:
		return tokensToCSS(g.TemplateColumns)
	case len(g.TemplateRows) > 0:
		return tokensToCSS(g.TemplateRows)
	default:
		return ""
	}
}

func printSingleValue(sv cssast.SingleValue, f cssvalue.MinifyFlags) string {
	switch {
	case sv.Color != nil:
		return sv.Color.String(f)
	case sv.Length != nil:
		return sv.Length.String(f)
	case sv.Number != nil:
		return sv.Number.String(f)
	case sv.Integer != nil:
		return sv.Integer.String(f)
	case sv.CustomIdent != nil:
		return sv.CustomIdent.String(f)
	default:
		return sv.Keyword
	}
}

// tokensToCSS re-serializes a raw token span back to CSS text, for the
// Unparsed/Custom escape hatches and any other value this module leaves
// untyped (e.g. a filter function's argument list, a grid-template-columns
// track list). Mirrors cssparser's own tokensToText, which can't be
// imported directly from here without creating a printer->parser
// dependency.
func tokensToCSS(tokens []cssast.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && tokens[i-1].HasWhitespaceAfter {
			b.WriteByte(' ')
		}
		b.WriteString(tokenSourceText(t))
	}
	return strings.TrimSpace(b.String())
}
