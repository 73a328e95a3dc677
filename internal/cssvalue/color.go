package cssvalue

import (
	"fmt"
	"strconv"
	"strings"

	"cssc/internal/csstoken"
)

// Color is a CSS <color>. Only a representative subset is modeled
// precisely (hex, rgb()/rgba(), hsl()/hsla(), named colors, transparent,
// currentcolor); anything else round-trips as Unparsed tokens at the
// cssast.Property level rather than being rejected outright.
type Color struct {
	R, G, B uint8
	A       float64 // 0..1

	IsCurrentColor bool
	IsNamed        bool
	Name           string // lowercased source name, kept so minification can prefer it or the hex form
}

func ParseColor(c *Cursor) (Color, bool) {
	t, ok := c.Peek()
	if !ok {
		return Color{}, false
	}
	switch t.Kind {
	case csstoken.Hash:
		return parseHexColor(c)
	case csstoken.Ident:
		return parseIdentColor(c)
	case csstoken.Function:
		switch asciiLower(t.Text) {
		case "rgb", "rgba":
			return parseRGBFunction(c)
		case "hsl", "hsla":
			return parseHSLFunction(c)
		}
	}
	return Color{}, false
}

func parseHexColor(c *Cursor) (Color, bool) {
	t, _ := c.Next()
	hex := t.Text
	var r, g, b uint8
	a := 1.0
	expand := func(h byte) uint8 {
		v, _ := strconv.ParseUint(string([]byte{h, h}), 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3, 4:
		r, g, b = expand(hex[0]), expand(hex[1]), expand(hex[2])
		if len(hex) == 4 {
			av, _ := strconv.ParseUint(string([]byte{hex[3], hex[3]}), 16, 8)
			a = float64(av) / 255
		}
	case 6, 8:
		rv, e1 := strconv.ParseUint(hex[0:2], 16, 8)
		gv, e2 := strconv.ParseUint(hex[2:4], 16, 8)
		bv, e3 := strconv.ParseUint(hex[4:6], 16, 8)
		if e1 != nil || e2 != nil || e3 != nil {
			return Color{}, false
		}
		r, g, b = uint8(rv), uint8(gv), uint8(bv)
		if len(hex) == 8 {
			av, err := strconv.ParseUint(hex[6:8], 16, 8)
			if err != nil {
				return Color{}, false
			}
			a = float64(av) / 255
		}
	default:
		return Color{}, false
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

func parseIdentColor(c *Cursor) (Color, bool) {
	t, _ := c.Peek()
	name := asciiLower(t.Text)
	if name == "currentcolor" {
		c.Next()
		return Color{IsCurrentColor: true}, true
	}
	if name == "transparent" {
		c.Next()
		return Color{A: 0, IsNamed: true, Name: name}, true
	}
	if rgb, ok := namedColors[name]; ok {
		c.Next()
		return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1, IsNamed: true, Name: name}, true
	}
	return Color{}, false
}

// functionArgs pulls the comma-or-whitespace separated argument tokens out
// of a Function token's decoded children, skipping the separators (Comma
// and Delim "/") that only mark boundaries between components.
func functionArgs(t csstoken.ValueToken) []csstoken.ValueToken {
	if t.Children == nil {
		return nil
	}
	var args []csstoken.ValueToken
	for _, child := range *t.Children {
		if child.Kind == csstoken.Comma || child.Kind == csstoken.DelimSlash {
			continue
		}
		args = append(args, child)
	}
	return args
}

func componentToByte(t csstoken.ValueToken) (uint8, bool) {
	switch t.Kind {
	case csstoken.Number:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return 0, false
		}
		return clampByte(f), true
	case csstoken.Percentage:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return 0, false
		}
		return clampByte(f / 100 * 255), true
	}
	return 0, false
}

func clampByte(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}

func alphaComponent(t csstoken.ValueToken) (float64, bool) {
	switch t.Kind {
	case csstoken.Number:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return 0, false
		}
		return clampUnit(f), true
	case csstoken.Percentage:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return 0, false
		}
		return clampUnit(f / 100), true
	}
	return 0, false
}

func clampUnit(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func parseRGBFunction(c *Cursor) (Color, bool) {
	t, _ := c.Next()
	args := functionArgs(t)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	r, ok1 := componentToByte(args[0])
	g, ok2 := componentToByte(args[1])
	b, ok3 := componentToByte(args[2])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	a := 1.0
	if len(args) == 4 {
		var ok bool
		a, ok = alphaComponent(args[3])
		if !ok {
			return Color{}, false
		}
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

// parseHSLFunction converts hsl()/hsla() to RGB at parse time, since the
// compat table and fallback injection only reason about colors in RGB
// terms.
func parseHSLFunction(c *Cursor) (Color, bool) {
	t, _ := c.Next()
	args := functionArgs(t)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	if args[0].Kind != csstoken.Number && args[0].Kind != csstoken.Dimension {
		return Color{}, false
	}
	hDeg, err := strconv.ParseFloat(args[0].DimensionOrNumberText(), 64)
	if err != nil {
		return Color{}, false
	}
	s, ok1 := percentTo01(args[1])
	l, ok2 := percentTo01(args[2])
	if !ok1 || !ok2 {
		return Color{}, false
	}
	a := 1.0
	if len(args) == 4 {
		var ok bool
		a, ok = alphaComponent(args[3])
		if !ok {
			return Color{}, false
		}
	}
	r, g, b := hslToRGB(hDeg, s, l)
	return Color{R: r, G: g, B: b, A: a}, true
}

func percentTo01(t csstoken.ValueToken) (float64, bool) {
	if t.Kind != csstoken.Percentage {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, false
	}
	return clampUnit(f / 100), true
}

func hslToRGB(hDeg, s, l float64) (uint8, uint8, uint8) {
	h := hDeg / 360
	h -= float64(int64(h))
	if h < 0 {
		h += 1
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hueToRGB := func(p, q, t float64) float64 {
		if t < 0 {
			t += 1
		}
		if t > 1 {
			t -= 1
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		default:
			return p
		}
	}
	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
}

// String serializes the color. Minify mode prefers whichever of the hex
// form or the shortest matching named color is shorter.
func (col Color) String(f MinifyFlags) string {
	if col.IsCurrentColor {
		return "currentcolor"
	}
	if col.A == 0 && f.Minify {
		return "transparent"
	}
	if col.A < 1 {
		rgba := fmt.Sprintf("rgba(%d, %d, %d, %s)", col.R, col.G, col.B, formatNumber(col.A, f))
		if !f.Minify {
			return rgba
		}
		rgba = fmt.Sprintf("rgba(%d,%d,%d,%s)", col.R, col.G, col.B, formatNumber(col.A, f))
		if f.HexRGBASupported {
			if hex8 := shortestHexAlpha(col.R, col.G, col.B, col.A); len(hex8) < len(rgba) {
				return hex8
			}
		}
		return rgba
	}
	hex := shortestHex(col.R, col.G, col.B)
	if !f.Minify {
		if col.IsNamed {
			return col.Name
		}
		return hex
	}
	best := hex
	if col.IsNamed && len(col.Name) < len(best) {
		best = col.Name
	}
	if name, ok := hexToNamedColor[strings.ToLower(hex)]; ok && len(name) < len(best) {
		best = name
	}
	return best
}

func shortestHex(r, g, b uint8) string {
	if canShorten(r) && canShorten(g) && canShorten(b) {
		return fmt.Sprintf("#%x%x%x", r>>4, g>>4, b>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func canShorten(v uint8) bool { return v&0x0F == v>>4 }

// shortestHexAlpha renders the 4- or 8-digit hex-with-alpha form, whichever
// the channels allow shortening to.
func shortestHexAlpha(r, g, b uint8, a float64) string {
	alpha := clampByte(a * 255)
	if canShorten(r) && canShorten(g) && canShorten(b) && canShorten(alpha) {
		return fmt.Sprintf("#%x%x%x%x", r>>4, g>>4, b>>4, alpha>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, alpha)
}

// namedColors is a representative subset of the CSS named-color table.
var namedColors = map[string][3]uint8{
	"black": {0, 0, 0}, "white": {255, 255, 255}, "red": {255, 0, 0},
	"green": {0, 128, 0}, "blue": {0, 0, 255}, "yellow": {255, 255, 0},
	"gray": {128, 128, 128}, "grey": {128, 128, 128}, "silver": {192, 192, 192},
	"maroon": {128, 0, 0}, "purple": {128, 0, 128}, "fuchsia": {255, 0, 255},
	"lime": {0, 255, 0}, "olive": {128, 128, 0}, "navy": {0, 0, 128},
	"teal": {0, 128, 128}, "aqua": {0, 255, 255}, "orange": {255, 165, 0},
}

var hexToNamedColor = func() map[string]string {
	m := make(map[string]string, len(namedColors))
	for name, rgb := range namedColors {
		m[strings.ToLower(shortestHex(rgb[0], rgb[1], rgb[2]))] = name
	}
	return m
}()
