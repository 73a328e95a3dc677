package cssvalue

import (
	"strconv"
	"strings"

	"cssc/internal/csstoken"
)

// Angle is a CSS <angle>, normalized to degrees internally so handlers
// that compare angles (e.g. gradient direction folding) don't need to
// know about the four angle units.
type Angle struct {
	Degrees float64
	unit    string // original unit, preserved so printing round-trips unless minifying
}

var angleToDegrees = map[string]float64{
	"deg": 1, "grad": 0.9, "rad": 180 / 3.141592653589793, "turn": 360,
}

func ParseAngle(c *Cursor) (Angle, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Dimension {
		return Angle{}, false
	}
	unit := asciiLower(t.DimensionUnit())
	factor, ok := angleToDegrees[unit]
	if !ok {
		return Angle{}, false
	}
	f, err := strconv.ParseFloat(t.DimensionValue(), 64)
	if err != nil {
		return Angle{}, false
	}
	c.Next()
	return Angle{Degrees: f * factor, unit: unit}, true
}

func (a Angle) String(f MinifyFlags) string {
	// Minification picks whichever unit gives the shortest output, the
	// same strategy Time.String uses for choosing between s and ms.
	if !f.Minify {
		return formatNumber(a.Degrees/angleToDegrees[a.unit], f) + a.unit
	}
	best := formatNumber(a.Degrees, f) + "deg"
	if a.Degrees != 0 {
		if turns := a.Degrees / 360; turns == float64(int64(turns*1000))/1000 {
			if cand := formatNumber(turns, f) + "turn"; len(cand) < len(best) {
				best = cand
			}
		}
	}
	return best
}

// Time is a CSS <time>, normalized to milliseconds.
type Time struct{ Milliseconds float64 }

func ParseTime(c *Cursor) (Time, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Dimension {
		return Time{}, false
	}
	unit := asciiLower(t.DimensionUnit())
	var factor float64
	switch unit {
	case "s":
		factor = 1000
	case "ms":
		factor = 1
	default:
		return Time{}, false
	}
	f, err := strconv.ParseFloat(t.DimensionValue(), 64)
	if err != nil {
		return Time{}, false
	}
	c.Next()
	return Time{Milliseconds: f * factor}, true
}

// String picks whichever of "Nms" or "Ns" is shorter.
func (t Time) String(f MinifyFlags) string {
	ms := formatNumber(t.Milliseconds, f) + "ms"
	s := formatNumber(t.Milliseconds/1000, f) + "s"
	if len(s) < len(ms) {
		return s
	}
	return ms
}

// Resolution is a CSS <resolution>, normalized to dots per pixel unit (dppx).
type Resolution struct{ Dppx float64 }

var resolutionToDppx = map[string]float64{"dpi": 1.0 / 96, "dpcm": 2.54 / 96, "dppx": 1, "x": 1}

func ParseResolution(c *Cursor) (Resolution, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Dimension {
		return Resolution{}, false
	}
	unit := asciiLower(t.DimensionUnit())
	factor, ok := resolutionToDppx[unit]
	if !ok {
		return Resolution{}, false
	}
	f, err := strconv.ParseFloat(t.DimensionValue(), 64)
	if err != nil {
		return Resolution{}, false
	}
	c.Next()
	return Resolution{Dppx: f * factor}, true
}

func (r Resolution) String(f MinifyFlags) string { return formatNumber(r.Dppx, f) + "dppx" }

// cssWideKeywords is the set CustomIdent must never match.
var cssWideKeywords = map[string]bool{
	"initial": true, "inherit": true, "unset": true, "default": true, "revert": true,
}

// CustomIdent is an author-chosen identifier (keyframe name, counter-style
// name, grid line name, ...) that must not collide with a CSS-wide
// keyword.
type CustomIdent string

func ParseCustomIdent(c *Cursor) (CustomIdent, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Ident {
		return "", false
	}
	if cssWideKeywords[asciiLower(t.Text)] {
		return "", false
	}
	c.Next()
	return CustomIdent(t.Text), true
}

// String escapes the identifier per CSS identifier rules. Only the
// characters that would otherwise change the token's meaning are escaped;
// the common case (a plain ASCII identifier) round-trips byte for byte.
func (id CustomIdent) String(MinifyFlags) string {
	s := string(id)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		needsEscape := !(c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80)
		if i == 0 && (c >= '0' && c <= '9') {
			needsEscape = true
		}
		if needsEscape {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// URL is a CSS <url>.
type URL struct {
	Text              string
	ImportRecordIndex uint32
}

func ParseURL(c *Cursor) (URL, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.URL {
		return URL{}, false
	}
	c.Next()
	return URL{Text: t.Text, ImportRecordIndex: t.ImportRecordIndex}, true
}

func (u URL) String(MinifyFlags) string {
	return "url(" + quoteURLIfNeeded(u.Text) + ")"
}

func quoteURLIfNeeded(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f', '"', '\'', '(', ')', '\\':
			return strconv.Quote(s)
		}
	}
	return s
}
