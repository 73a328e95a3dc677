// Package csshandler implements the property-handler framework: per-
// family stateful collectors that fuse longhands into shorthands, expand
// logical properties into physical ones, duplicate declarations under
// vendor prefixes the compat table still requires, and synthesize
// @supports fallbacks for properties a target engine lacks.
//
// Each family is an explicit collect-then-flush tracker: it remembers the
// last declaration written to each "side" within a DeclarationBlock, so a
// later declaration for a side overrides an earlier one, and emits the
// surviving values only when flushed.
package csshandler

import (
	"cssc/internal/cssast"
	"cssc/internal/cssvalue"
)

// BoxSidesFamily tracks margin/padding/inset declarations within one
// DeclarationBlock and folds the four physical longhands (and their
// shorthand) into the shortest equivalent set of declarations.
type BoxSidesFamily struct {
	shorthandID cssast.PropertyID
	longhandIDs [4]cssast.PropertyID // Top, Right, Bottom, Left order

	sides     [4]cssvalue.LengthPercentage
	have      [4]bool
	important [4]bool
}

func NewMarginFamily() *BoxSidesFamily {
	return &BoxSidesFamily{
		shorthandID: cssast.Margin,
		longhandIDs: [4]cssast.PropertyID{cssast.MarginTop, cssast.MarginRight, cssast.MarginBottom, cssast.MarginLeft},
	}
}

func NewPaddingFamily() *BoxSidesFamily {
	return &BoxSidesFamily{
		shorthandID: cssast.Padding,
		longhandIDs: [4]cssast.PropertyID{cssast.PaddingTop, cssast.PaddingRight, cssast.PaddingBottom, cssast.PaddingLeft},
	}
}

func NewInsetFamily() *BoxSidesFamily {
	return &BoxSidesFamily{
		shorthandID: cssast.Inset,
		longhandIDs: [4]cssast.PropertyID{cssast.Top, cssast.Right, cssast.Bottom, cssast.Left},
	}
}

// IsMember reports whether id belongs to this family, so the transform
// driver can route declarations to the right handler without each handler
// needing to know about the others.
func (f *BoxSidesFamily) IsMember(id cssast.PropertyID) bool {
	if id == f.shorthandID {
		return true
	}
	for _, l := range f.longhandIDs {
		if id == l {
			return true
		}
	}
	return false
}

// Accept records prop if it belongs to this family, returning true if it
// consumed it. The caller drops accepted declarations from the block and
// calls Flush once at the end to get the fused replacement(s), which the
// transform pass appends after the block's other declarations.
func (f *BoxSidesFamily) Accept(prop cssast.Property) bool {
	if prop.ID == f.shorthandID && prop.BoxSides != nil {
		f.sides = [4]cssvalue.LengthPercentage{prop.BoxSides.Top, prop.BoxSides.Right, prop.BoxSides.Bottom, prop.BoxSides.Left}
		f.have = [4]bool{true, true, true, true}
		f.important = [4]bool{prop.Important, prop.Important, prop.Important, prop.Important}
		return true
	}
	for i, id := range f.longhandIDs {
		if prop.ID == id && prop.Single != nil && prop.Single.Length != nil {
			f.sides[i] = *prop.Single.Length
			f.have[i] = true
			f.important[i] = prop.Important
			return true
		}
	}
	return false
}

// Flush returns the fused declarations to emit: a single shorthand when
// all four sides are present and agree on !important, else the per-side
// longhands.
func (f *BoxSidesFamily) Flush() []cssast.Property {
	anyPresent := f.have[0] || f.have[1] || f.have[2] || f.have[3]
	if !anyPresent {
		return nil
	}
	allPresent := f.have[0] && f.have[1] && f.have[2] && f.have[3]
	sameImportant := f.important[0] == f.important[1] && f.important[0] == f.important[2] && f.important[0] == f.important[3]

	if allPresent && sameImportant {
		merged := cssast.BoxSides{Top: f.sides[0], Right: f.sides[1], Bottom: f.sides[2], Left: f.sides[3]}
		return []cssast.Property{{ID: f.shorthandID, Important: f.important[0], BoxSides: &merged}}
	}

	var out []cssast.Property
	for i, id := range f.longhandIDs {
		if f.have[i] {
			lp := f.sides[i]
			out = append(out, cssast.Property{ID: id, Important: f.important[i], Single: &cssast.SingleValue{Length: &lp}})
		}
	}
	return out
}
