package cssvalue

// Rect is the generic 4-sided "top/right/bottom/left" shape shared by
// border-radius corners, clip rectangles, and border-image-width, so each
// property doesn't redefine its own struct.
type Rect[T any] struct {
	Top, Right, Bottom, Left T
}

func NewRectAll[T any](v T) Rect[T] { return Rect[T]{Top: v, Right: v, Bottom: v, Left: v} }

// Size2D is the generic "horizontal/vertical" pair shared by
// border-spacing, background-size, and border-radius ellipse sizes.
type Size2D[T any] struct {
	Width, Height T
}

func NewSize2DSquare[T any](v T) Size2D[T] { return Size2D[T]{Width: v, Height: v} }

// Position is a CSS <position> (background-position, transform-origin,
// object-position): a horizontal and vertical LengthPercentage, each
// written either as a length-percentage or as a keyword (left/center/right,
// top/center/bottom) stored as its percentage. An edge keyword followed by
// an offset ("right 10px") is not recognized as one component.
type Position struct {
	X, Y LengthPercentage
}

func ParsePosition(c *Cursor) (Position, bool) {
	x, xok := parsePositionComponent(c, true)
	if !xok {
		return Position{}, false
	}
	y, yok := parsePositionComponent(c, false)
	if !yok {
		// A single component centers the other axis, per CSS Backgrounds.
		return Position{X: x, Y: LengthPercentage{IsPercentage: true, Percentage: 0.5}}, true
	}
	return Position{X: x, Y: y}, true
}

func parsePositionComponent(c *Cursor, isX bool) (LengthPercentage, bool) {
	if kw, ok := TryParse(c, func(c *Cursor) (string, bool) {
		if isX {
			return c.ExpectIdent("left", "right", "center")
		}
		return c.ExpectIdent("top", "bottom", "center")
	}); ok {
		switch kw {
		case "left", "top":
			return LengthPercentage{IsPercentage: true, Percentage: 0}, true
		case "right", "bottom":
			return LengthPercentage{IsPercentage: true, Percentage: 1}, true
		default: // center
			return LengthPercentage{IsPercentage: true, Percentage: 0.5}, true
		}
	}
	return TryParse(c, ParseLengthPercentage)
}

func (p Position) String(f MinifyFlags) string {
	return p.X.String(f) + " " + p.Y.String(f)
}

func (p Position) Equals(o Position) bool { return p.X.Equals(o.X) && p.Y.Equals(o.Y) }
