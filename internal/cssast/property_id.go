package cssast

// PropertyID enumerates every property this module has typed value-grammar
// and handler support for: a representative catalog covering the families
// with dedicated typed shapes (box model, border, flex, font, background,
// transition, animation, overflow, list-style, mask, filter, grid) plus
// the handful of single properties the vendor-prefix table
// (compat.CSSPrefixData) needs a target for. This is not an exhaustive
// transcription of the full CSS property list; anything not enumerated
// here round-trips through Property.Unparsed instead.
type PropertyID uint16

const (
	Unknown PropertyID = iota

	// Box model: margin / padding / inset family, including their
	// logical-property variants (margin-inline-start etc).
	Margin
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	MarginBlockStart
	MarginBlockEnd
	MarginInlineStart
	MarginInlineEnd
	MarginBlock
	MarginInline

	Padding
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	PaddingBlockStart
	PaddingBlockEnd
	PaddingInlineStart
	PaddingInlineEnd
	PaddingBlock
	PaddingInline

	Inset
	Top
	Right
	Bottom
	Left
	InsetBlockStart
	InsetBlockEnd
	InsetInlineStart
	InsetInlineEnd
	InsetBlock
	InsetInline

	// Border family.
	Border
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	BorderWidth
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderStyle
	BorderTopStyle
	BorderRightStyle
	BorderBottomStyle
	BorderLeftStyle
	BorderColor
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	BorderRadius
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderBottomRightRadius
	BorderBottomLeftRadius

	// Flex family.
	Flex
	FlexGrow
	FlexShrink
	FlexBasis
	FlexDirection
	FlexWrap
	FlexFlow

	// Font family.
	Font
	FontFamily
	FontSize
	FontStyle
	FontWeight
	FontVariant
	LineHeight
	FontKerning

	// Background family.
	Background
	BackgroundColor
	BackgroundImage
	BackgroundPosition
	BackgroundPositionX
	BackgroundPositionY
	BackgroundSize
	BackgroundRepeat
	BackgroundAttachment
	BackgroundOrigin
	BackgroundClip

	// Transition family.
	Transition
	TransitionProperty
	TransitionDuration
	TransitionTimingFunction
	TransitionDelay

	// Animation family.
	Animation
	AnimationName
	AnimationDuration
	AnimationTimingFunction
	AnimationDelay
	AnimationIterationCount
	AnimationDirection
	AnimationFillMode
	AnimationPlayState

	// Overflow family.
	Overflow
	OverflowX
	OverflowY

	// List-style family.
	ListStyle
	ListStyleType
	ListStylePosition
	ListStyleImage

	// Mask family (vendor-prefixed on older WebKit/Safari).
	MaskImage
	MaskPosition
	MaskRepeat
	MaskSize
	MaskOrigin

	// Filter / grid (representative single-value families).
	Filter
	BackdropFilter
	GridTemplateColumns
	GridTemplateRows
	GridTemplateAreas
	GridColumn
	GridRow
	GridArea
	Gap
	RowGap
	ColumnGap

	// Other single properties referenced by the compat prefix table
	// (internal/compat/css_table.go) or commonly exercised in tests.
	Appearance
	UserSelect
	ClipPath
	Hyphens
	InitialLetter
	Position
	PrintColorAdjust
	TabSize
	TextOrientation
	TextSizeAdjust

	Color
	Display
	Visibility
	BoxSizing
	Opacity
	ZIndex
	Cursor
	TextAlign
	Width
	Height
	MaxWidth
	MaxHeight
	MinWidth
	MinHeight
)

var propertyNames = map[PropertyID]string{
	Margin: "margin", MarginTop: "margin-top", MarginRight: "margin-right",
	MarginBottom: "margin-bottom", MarginLeft: "margin-left",
	MarginBlockStart: "margin-block-start", MarginBlockEnd: "margin-block-end",
	MarginInlineStart: "margin-inline-start", MarginInlineEnd: "margin-inline-end",
	MarginBlock: "margin-block", MarginInline: "margin-inline",

	Padding: "padding", PaddingTop: "padding-top", PaddingRight: "padding-right",
	PaddingBottom: "padding-bottom", PaddingLeft: "padding-left",
	PaddingBlockStart: "padding-block-start", PaddingBlockEnd: "padding-block-end",
	PaddingInlineStart: "padding-inline-start", PaddingInlineEnd: "padding-inline-end",
	PaddingBlock: "padding-block", PaddingInline: "padding-inline",

	Inset: "inset", Top: "top", Right: "right", Bottom: "bottom", Left: "left",
	InsetBlockStart: "inset-block-start", InsetBlockEnd: "inset-block-end",
	InsetInlineStart: "inset-inline-start", InsetInlineEnd: "inset-inline-end",
	InsetBlock: "inset-block", InsetInline: "inset-inline",

	Border: "border", BorderTop: "border-top", BorderRight: "border-right",
	BorderBottom: "border-bottom", BorderLeft: "border-left",
	BorderWidth: "border-width", BorderTopWidth: "border-top-width",
	BorderRightWidth: "border-right-width", BorderBottomWidth: "border-bottom-width",
	BorderLeftWidth: "border-left-width", BorderStyle: "border-style",
	BorderTopStyle: "border-top-style", BorderRightStyle: "border-right-style",
	BorderBottomStyle: "border-bottom-style", BorderLeftStyle: "border-left-style",
	BorderColor: "border-color", BorderTopColor: "border-top-color",
	BorderRightColor: "border-right-color", BorderBottomColor: "border-bottom-color",
	BorderLeftColor: "border-left-color", BorderRadius: "border-radius",
	BorderTopLeftRadius: "border-top-left-radius", BorderTopRightRadius: "border-top-right-radius",
	BorderBottomRightRadius: "border-bottom-right-radius", BorderBottomLeftRadius: "border-bottom-left-radius",

	Flex: "flex", FlexGrow: "flex-grow", FlexShrink: "flex-shrink", FlexBasis: "flex-basis",
	FlexDirection: "flex-direction", FlexWrap: "flex-wrap", FlexFlow: "flex-flow",

	Font: "font", FontFamily: "font-family", FontSize: "font-size", FontStyle: "font-style",
	FontWeight: "font-weight", FontVariant: "font-variant", LineHeight: "line-height",
	FontKerning: "font-kerning",

	Background: "background", BackgroundColor: "background-color", BackgroundImage: "background-image",
	BackgroundPosition: "background-position", BackgroundPositionX: "background-position-x",
	BackgroundPositionY: "background-position-y", BackgroundSize: "background-size",
	BackgroundRepeat: "background-repeat", BackgroundAttachment: "background-attachment",
	BackgroundOrigin: "background-origin", BackgroundClip: "background-clip",

	Transition: "transition", TransitionProperty: "transition-property",
	TransitionDuration: "transition-duration", TransitionTimingFunction: "transition-timing-function",
	TransitionDelay: "transition-delay",

	Animation: "animation", AnimationName: "animation-name", AnimationDuration: "animation-duration",
	AnimationTimingFunction: "animation-timing-function", AnimationDelay: "animation-delay",
	AnimationIterationCount: "animation-iteration-count", AnimationDirection: "animation-direction",
	AnimationFillMode: "animation-fill-mode", AnimationPlayState: "animation-play-state",

	Overflow: "overflow", OverflowX: "overflow-x", OverflowY: "overflow-y",

	ListStyle: "list-style", ListStyleType: "list-style-type", ListStylePosition: "list-style-position",
	ListStyleImage: "list-style-image",

	MaskImage: "mask-image", MaskPosition: "mask-position", MaskRepeat: "mask-repeat",
	MaskSize: "mask-size", MaskOrigin: "mask-origin",

	Filter: "filter", BackdropFilter: "backdrop-filter",
	GridTemplateColumns: "grid-template-columns", GridTemplateRows: "grid-template-rows",
	GridTemplateAreas: "grid-template-areas", GridColumn: "grid-column", GridRow: "grid-row",
	GridArea: "grid-area", Gap: "gap", RowGap: "row-gap", ColumnGap: "column-gap",

	Appearance: "appearance", UserSelect: "user-select", ClipPath: "clip-path", Hyphens: "hyphens",
	InitialLetter: "initial-letter", Position: "position", PrintColorAdjust: "print-color-adjust",
	TabSize: "tab-size", TextOrientation: "text-orientation", TextSizeAdjust: "text-size-adjust",

	Color: "color", Display: "display", Visibility: "visibility", BoxSizing: "box-sizing",
	Opacity: "opacity", ZIndex: "z-index", Cursor: "cursor", TextAlign: "text-align",
	Width: "width", Height: "height", MaxWidth: "max-width", MaxHeight: "max-height",
	MinWidth: "min-width", MinHeight: "min-height",
}

var propertyIDs map[string]PropertyID

func init() {
	propertyIDs = make(map[string]PropertyID, len(propertyNames))
	for id, name := range propertyNames {
		propertyIDs[name] = id
	}
}

// String returns the CSS property name for id, or "" for Unknown.
func (id PropertyID) String() string { return propertyNames[id] }

// PropertyIDFromName looks up a recognized property by its unprefixed CSS
// name. It returns (Unknown, false) for anything not in the catalog above
// (including properties this module simply doesn't type, which is
// expected — those round-trip through Property.Unparsed instead).
func PropertyIDFromName(name string) (PropertyID, bool) {
	id, ok := propertyIDs[name]
	return id, ok
}

// vendorPrefixable is the set of properties the browser-target table
// (internal/compat) may ask the handler framework to duplicate under one
// or more vendor prefixes.
var vendorPrefixable = map[PropertyID]bool{
	Appearance: true, UserSelect: true, MaskImage: true, MaskPosition: true,
	MaskRepeat: true, MaskSize: true, MaskOrigin: true, BackdropFilter: true,
	BackgroundClip: true, ClipPath: true, FontKerning: true, Hyphens: true,
	InitialLetter: true, Position: true, PrintColorAdjust: true, TabSize: true,
	TextOrientation: true, TextSizeAdjust: true,
}

// IsVendorPrefixable reports whether the target table may request extra
// prefixed copies of a declaration for this property.
func (id PropertyID) IsVendorPrefixable() bool { return vendorPrefixable[id] }
