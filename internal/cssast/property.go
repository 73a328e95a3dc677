package cssast

import (
	"cssc/internal/cssvalue"
	"cssc/internal/location"
)

// Property is a tagged union over every declaration this module knows a
// typed shape for, plus three escape hatches for anything it doesn't:
// Unparsed (a recognized property whose value wasn't reduced to a typed
// shape, e.g. one containing var()), Custom (a "--custom-property"), and
// Logical (a property with a physical LTR/RTL pair still pending
// expansion by the logical-property handler).
//
// A PropertyID tag pairs with one pointer field per family below, rather
// than a single interface{} payload, so callers can switch on PropertyID
// without a further type assertion inside the common case.
type Property struct {
	ID           PropertyID
	VendorPrefix VendorPrefix
	Important    bool

	// Loc is the declaration's source position (the property name token),
	// recorded at parse time so the printer can map generated output back
	// to it. A Property built by a transform pass rather than the parser
	// (e.g. an expanded logical-property override) carries its source
	// declaration's Loc forward rather than a zero value, so the mapping
	// still points somewhere meaningful.
	Loc location.Range

	// Exactly one of the following is non-nil/non-zero-length, chosen by ID.
	BoxSides     *BoxSides     // Margin, Padding, Inset (and their per-side longhands store a single Side)
	Border       *Border
	Flex         *Flex
	Font         *Font
	Background   []BackgroundLayer
	Transition   []TransitionItem
	Animation    []AnimationItem
	Overflow     *Overflow
	ListStyle    *ListStyle
	Mask         []MaskLayer
	Filter       []FilterFunction
	Grid         *Grid
	Single       *SingleValue // the catch-all for single-value properties (color, opacity, cursor, ...)

	Unparsed *UnparsedValue
	Custom   *CustomProperty
	Logical  *LogicalProperty
}

// BoxSides is the shared shape for margin/padding/inset: four physical
// sides, normalized so the handler family can always reason about
// Top/Right/Bottom/Left regardless of how many longhands the author
// wrote, then re-fold into the shortest equivalent shorthand at print time.
type BoxSides struct {
	Top, Right, Bottom, Left cssvalue.LengthPercentage
}

// AllEqual reports whether all four sides share one value, letting the
// printer emit the single-value shorthand form.
func (b BoxSides) AllEqual() bool {
	return b.Top.Equals(b.Right) && b.Top.Equals(b.Bottom) && b.Top.Equals(b.Left)
}

// TopBottomEqual reports whether the shorthand can use the 2-value form.
func (b BoxSides) TopBottomEqual() bool {
	return b.Top.Equals(b.Bottom) && b.Right.Equals(b.Left)
}

type Border struct {
	Width cssvalue.LengthPercentage
	Style string // "none", "solid", "dashed", ...
	Color cssvalue.Color
}

type Flex struct {
	Grow, Shrink cssvalue.Number
	Basis        cssvalue.LengthPercentage
	IsBasisAuto  bool
}

type Font struct {
	Family     []string
	Size       cssvalue.LengthPercentage
	Style      string
	Weight     string
	Variant    string
	LineHeight *cssvalue.Number
}

type BackgroundLayer struct {
	Color      *cssvalue.Color // only set on the last layer, per CSS Backgrounds
	Image      *cssvalue.Image
	Position   *cssvalue.Position
	Size       *cssvalue.Size2D[cssvalue.LengthPercentage]
	Repeat     string
	Attachment string
	Origin     string
	Clip       string
}

type TransitionItem struct {
	Property string
	Duration cssvalue.Time
	Timing   string
	Delay    cssvalue.Time
}

type AnimationItem struct {
	Name           string
	Duration       cssvalue.Time
	Timing         string
	Delay          cssvalue.Time
	IterationCount string // a number, or "infinite"
	Direction      string
	FillMode       string
	PlayState      string
}

type Overflow struct{ X, Y string }

type ListStyle struct {
	Type     string
	Position string
	Image    *cssvalue.Image
}

type MaskLayer struct {
	Image    *cssvalue.Image
	Position *cssvalue.Position
	Repeat   string
	Size     *cssvalue.Size2D[cssvalue.LengthPercentage]
	Origin   string
}

type FilterFunction struct {
	Name string // "blur", "brightness", "drop-shadow", ...
	Args []Token
}

type Grid struct {
	TemplateColumns []Token
	TemplateRows    []Token
	TemplateAreas   []string
	Column, Row     string
	Area            string
}

// SingleValue covers every property typed as one of a small fixed set of
// shapes (a color, a length-percentage, a number, a keyword, ...) so the
// catalog doesn't need a bespoke struct per single-value property.
type SingleValue struct {
	Keyword     string
	Color       *cssvalue.Color
	Length      *cssvalue.LengthPercentage
	Number      *cssvalue.Number
	Integer     *cssvalue.Integer
	CustomIdent *cssvalue.CustomIdent
}

// UnparsedValue is a recognized property whose value this module leaves as
// raw tokens: anything containing var(), an unsupported function, or a
// shape this module doesn't model structurally.
type UnparsedValue struct {
	Tokens []Token
}

// CustomProperty is a "--name" custom property; its value is never parsed,
// per the CSS Custom Properties spec (arbitrary token streams are valid).
type CustomProperty struct {
	Name   string
	Tokens []Token
}

// LogicalProperty holds the value of a still-unresolved logical property
// (e.g. margin-inline-start, named by Property.ID); the logical-property
// handler replaces it with the physical longhand for left-to-right
// writing and, when an RTL fallback is needed, a second longhand for an
// [dir=rtl] override rule.
type LogicalProperty struct {
	Value cssvalue.LengthPercentage
}
