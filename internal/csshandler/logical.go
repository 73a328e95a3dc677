package csshandler

import "cssc/internal/cssast"

// logicalToPhysicalLTR maps each logical property this module types to the
// physical longhand it becomes in left-to-right, top-to-bottom writing
// modes. logicalToPhysicalRTL holds the right-to-left targets of the
// inline-axis properties, whose Start/End members swap sides; block-axis
// properties have no RTL entry since their target does not change.
var logicalToPhysicalLTR = map[cssast.PropertyID]cssast.PropertyID{
	cssast.MarginBlockStart:   cssast.MarginTop,
	cssast.MarginBlockEnd:     cssast.MarginBottom,
	cssast.MarginInlineStart:  cssast.MarginLeft,
	cssast.MarginInlineEnd:    cssast.MarginRight,
	cssast.PaddingBlockStart:  cssast.PaddingTop,
	cssast.PaddingBlockEnd:    cssast.PaddingBottom,
	cssast.PaddingInlineStart: cssast.PaddingLeft,
	cssast.PaddingInlineEnd:   cssast.PaddingRight,
	cssast.InsetBlockStart:    cssast.Top,
	cssast.InsetBlockEnd:      cssast.Bottom,
	cssast.InsetInlineStart:   cssast.Left,
	cssast.InsetInlineEnd:     cssast.Right,
}

var logicalToPhysicalRTL = map[cssast.PropertyID]cssast.PropertyID{
	cssast.MarginInlineStart:  cssast.MarginRight,
	cssast.MarginInlineEnd:    cssast.MarginLeft,
	cssast.PaddingInlineStart: cssast.PaddingRight,
	cssast.PaddingInlineEnd:   cssast.PaddingLeft,
	cssast.InsetInlineStart:   cssast.Right,
	cssast.InsetInlineEnd:     cssast.Left,
}

// ExpandLogical converts a Property built from a logical declaration
// (cssast.Property.Logical != nil) into its LTR physical equivalent, and,
// when needsRTLFallback is true, also returns the RTL physical
// equivalent for the caller to place in an "[dir=rtl]" override rule, for
// targets that don't support logical properties themselves (compat
// feature LogicalProperties).
func ExpandLogical(prop cssast.Property, needsRTLFallback bool) (ltr cssast.Property, rtl *cssast.Property) {
	if prop.Logical == nil {
		return prop, nil
	}
	physicalLTR, ok := logicalToPhysicalLTR[prop.ID]
	if !ok {
		return prop, nil
	}
	lp := prop.Logical.Value
	ltr = cssast.Property{ID: physicalLTR, Important: prop.Important, Single: &cssast.SingleValue{Length: &lp}}
	if !needsRTLFallback {
		return ltr, nil
	}
	if physicalRTL, ok := logicalToPhysicalRTL[prop.ID]; ok && physicalRTL != physicalLTR {
		r := cssast.Property{ID: physicalRTL, Important: prop.Important, Single: &cssast.SingleValue{Length: &lp}}
		rtl = &r
	}
	return ltr, rtl
}
