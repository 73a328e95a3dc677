package cssvalue

import (
	"strconv"
	"strings"

	"cssc/internal/csstoken"
)

// Number is a bare CSS <number>.
type Number float64

// ParseNumber consumes a Number token.
func ParseNumber(c *Cursor) (Number, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Number {
		return 0, false
	}
	f, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, false
	}
	c.Next()
	return Number(f), true
}

// String serializes the number, dropping a leading "0" before "." and a
// trailing ".0" when minifying.
func (n Number) String(f MinifyFlags) string {
	return formatNumber(float64(n), f)
}

// Integer is a bare CSS <integer>.
type Integer int64

// ParseInteger consumes a Number token whose text has no fractional part.
func ParseInteger(c *Cursor) (Integer, bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Number || strings.ContainsAny(t.Text, ".eE") {
		return 0, false
	}
	i, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	c.Next()
	return Integer(i), true
}

func (n Integer) String(MinifyFlags) string { return strconv.FormatInt(int64(n), 10) }

// formatNumber renders a float the way browsers and minifiers expect:
// shortest round-tripping decimal, with the minifier-only "0" stripping.
func formatNumber(f float64, mf MinifyFlags) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !mf.Minify {
		return s
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0.") && len(s) > 2 {
		s = s[1:]
	}
	s = strings.TrimSuffix(s, ".0")
	if neg && s != "0" {
		s = "-" + s
	}
	return s
}
