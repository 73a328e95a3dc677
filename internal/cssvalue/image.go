package cssvalue

import "cssc/internal/csstoken"

// Image is a CSS <image>. Only url() and linear-gradient()/
// radial-gradient() (with their -webkit- prefixed legacy forms folded in)
// are modeled structurally; anything else (image-set(), cross-fade(), ...)
// is kept as raw tokens rather than modeled exhaustively.
type Image struct {
	URL      *URL
	Gradient *Gradient
	Raw      []csstoken.ValueToken // fallback for unmodeled image functions
}

type Gradient struct {
	Kind       string // "linear" or "radial"
	Prefix     VendorPrefixHint
	Angle      *Angle
	ColorStops []ColorStop
}

// VendorPrefixHint mirrors cssast.VendorPrefix without importing cssast,
// which would create the same import-cycle hazard the Token type alias
// was introduced to avoid (cssast depends on cssvalue, not vice versa).
type VendorPrefixHint uint8

const (
	PrefixHintNone VendorPrefixHint = iota
	PrefixHintWebKit
)

type ColorStop struct {
	Color    Color
	Position *LengthPercentage // nil means "evenly distributed", per CSS Images
}

func ParseImage(c *Cursor) (Image, bool) {
	if u, ok := TryParse(c, ParseURL); ok {
		return Image{URL: &u}, true
	}
	if g, ok := TryParse(c, parseGradient); ok {
		return Image{Gradient: &g}, true
	}
	return Image{}, false
}

func parseGradient(c *Cursor) (Gradient, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Function {
		return Gradient{}, false
	}
	name := asciiLower(t.Text)
	var kind string
	var prefix VendorPrefixHint
	switch name {
	case "linear-gradient":
		kind = "linear"
	case "radial-gradient":
		kind = "radial"
	case "-webkit-linear-gradient":
		kind, prefix = "linear", PrefixHintWebKit
	case "-webkit-radial-gradient":
		kind, prefix = "radial", PrefixHintWebKit
	default:
		return Gradient{}, false
	}
	c.Next()
	inner := childCursor(t)

	var angle *Angle
	if kind == "linear" {
		if a, ok := TryParse(inner, ParseAngle); ok {
			angle = &a
			expectComma(inner)
		} else if _, ok := inner.ExpectIdent("to"); ok {
			// "to <side>" direction keywords; normalized to an angle so the
			// handler family can compare directions without a second shape.
			deg, ok := parseSideDirection(inner)
			if !ok {
				return Gradient{}, false
			}
			angle = &deg
			expectComma(inner)
		}
	}

	var stops []ColorStop
	for {
		stop, ok := parseColorStop(inner)
		if !ok {
			break
		}
		stops = append(stops, stop)
		if !expectComma(inner) {
			break
		}
	}
	if len(stops) < 1 {
		return Gradient{}, false
	}
	return Gradient{Kind: kind, Prefix: prefix, Angle: angle, ColorStops: stops}, true
}

func parseSideDirection(c *Cursor) (Angle, bool) {
	var horiz, vert string
	if kw, ok := c.ExpectIdent("left", "right", "top", "bottom"); ok {
		horiz = kw
	}
	if kw, ok := c.ExpectIdent("left", "right", "top", "bottom"); ok {
		vert = kw
	}
	switch {
	case horiz == "top" || vert == "top":
		return Angle{Degrees: 0, unit: "deg"}, true
	case horiz == "right" && vert == "":
		return Angle{Degrees: 90, unit: "deg"}, true
	case horiz == "bottom" || vert == "bottom":
		return Angle{Degrees: 180, unit: "deg"}, true
	case horiz == "left" && vert == "":
		return Angle{Degrees: 270, unit: "deg"}, true
	}
	return Angle{}, false
}

func parseColorStop(c *Cursor) (ColorStop, bool) {
	col, ok := TryParse(c, ParseColor)
	if !ok {
		return ColorStop{}, false
	}
	if pos, ok := TryParse(c, ParseLengthPercentage); ok {
		return ColorStop{Color: col, Position: &pos}, true
	}
	return ColorStop{Color: col}, true
}

func expectComma(c *Cursor) bool {
	if t, ok := c.Peek(); ok && t.Kind == csstoken.Comma {
		c.Next()
		return true
	}
	return false
}

func (img Image) String(f MinifyFlags) string {
	switch {
	case img.URL != nil:
		return img.URL.String(f)
	case img.Gradient != nil:
		return img.Gradient.String(f)
	default:
		var s string
		for _, t := range img.Raw {
			s += t.Text
		}
		return s
	}
}

func (g Gradient) String(f MinifyFlags) string {
	name := g.Kind + "-gradient"
	if g.Prefix == PrefixHintWebKit {
		name = "-webkit-" + name
	}
	s := name + "("
	if g.Angle != nil {
		s += g.Angle.String(f)
		if !f.Minify {
			s += ", "
		} else {
			s += ","
		}
	}
	for i, stop := range g.ColorStops {
		if i > 0 {
			if f.Minify {
				s += ","
			} else {
				s += ", "
			}
		}
		s += stop.Color.String(f)
		if stop.Position != nil {
			s += " " + stop.Position.String(f)
		}
	}
	return s + ")"
}
