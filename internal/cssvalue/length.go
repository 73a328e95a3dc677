package cssvalue

import (
	"strconv"

	"cssc/internal/csstoken"
)

// absoluteToPx maps every absolute CSS length unit to its value in CSS
// pixels; ParseLength uses it to recognize absolute units and ToPx to
// convert them. Relative units
// (em, rem, vw, ...) are kept symbolic since they depend on context this
// module never resolves (there is no DOM or layout engine here).
var absoluteToPx = map[string]float64{
	"px": 1,
	"in": 96,
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"q":  96.0 / 101.6,
}

var relativeUnits = map[string]bool{
	"em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"lh": true, "rlh": true, "vi": true, "vb": true,
}

// Length is a CSS <length>: a number plus a unit, either absolute
// (normalizable) or relative (kept symbolic).
type Length struct {
	Value float64
	Unit  string // lowercased, without leading "-"; "" only for a zero literal written as "0"
}

// ParseLength consumes a Dimension token (or a bare "0" Number token,
// which is a valid zero length per CSS Values).
func ParseLength(c *Cursor) (Length, bool) {
	t, ok := c.Peek()
	if !ok {
		return Length{}, false
	}
	switch t.Kind {
	case csstoken.Dimension:
		unit := asciiLower(t.DimensionUnit())
		if _, abs := absoluteToPx[unit]; !abs && !relativeUnits[unit] {
			return Length{}, false
		}
		f, err := strconv.ParseFloat(t.DimensionValue(), 64)
		if err != nil {
			return Length{}, false
		}
		c.Next()
		return Length{Value: f, Unit: unit}, true
	case csstoken.Number:
		if t.Text != "0" && t.Text != "-0" && t.Text != "+0" {
			if f, err := strconv.ParseFloat(t.Text, 64); err != nil || f != 0 {
				return Length{}, false
			}
		}
		c.Next()
		return Length{Value: 0}, true
	}
	return Length{}, false
}

// IsZero reports whether the length is the literal zero, which CSS lets
// the printer write without a unit.
func (l Length) IsZero() bool { return l.Value == 0 }

// ToPx converts an absolute-unit length to pixels. ok is false for
// relative units; a unitless zero converts to 0 with ok true.
func (l Length) ToPx() (float64, bool) {
	if l.Unit == "" {
		return 0, l.Value == 0
	}
	factor, ok := absoluteToPx[l.Unit]
	if !ok {
		return 0, false
	}
	return l.Value * factor, true
}

func (l Length) String(f MinifyFlags) string {
	if l.IsZero() && f.Minify {
		return "0"
	}
	if l.Unit == "" {
		return "0"
	}
	return formatNumber(l.Value, f) + l.Unit
}

// Percentage is a CSS <percentage>, stored as the fraction (50% -> 0.5).
type Percentage float64

func ParsePercentage(c *Cursor) (Percentage, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Percentage {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, false
	}
	c.Next()
	return Percentage(f / 100), true
}

func (p Percentage) String(f MinifyFlags) string {
	return formatNumber(float64(p)*100, f) + "%"
}

// LengthPercentage is the common "either a length or a percentage" value
// shape used throughout box-model and position properties.
type LengthPercentage struct {
	IsPercentage bool
	Length       Length
	Percentage   Percentage
}

func ParseLengthPercentage(c *Cursor) (LengthPercentage, bool) {
	if pct, ok := TryParse(c, ParsePercentage); ok {
		return LengthPercentage{IsPercentage: true, Percentage: pct}, true
	}
	if l, ok := TryParse(c, ParseLength); ok {
		return LengthPercentage{Length: l}, true
	}
	return LengthPercentage{}, false
}

func (lp LengthPercentage) IsZero() bool {
	if lp.IsPercentage {
		return lp.Percentage == 0
	}
	return lp.Length.IsZero()
}

func (lp LengthPercentage) String(f MinifyFlags) string {
	if lp.IsPercentage {
		return lp.Percentage.String(f)
	}
	return lp.Length.String(f)
}

// Equals is used by the margin/padding/inset handler family to decide
// when four physical sides can fold into a shorter shorthand list.
func (lp LengthPercentage) Equals(o LengthPercentage) bool {
	if lp.IsPercentage != o.IsPercentage {
		return false
	}
	if lp.IsPercentage {
		return lp.Percentage == o.Percentage
	}
	return lp.Length == o.Length
}
