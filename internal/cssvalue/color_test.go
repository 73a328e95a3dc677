package cssvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseColorText(t *testing.T, text string) Color {
	t.Helper()
	c := NewCursor(tokenizeValue(text))
	col, ok := ParseColor(c)
	require.True(t, ok, "expected %q to parse as a color", text)
	return col
}

func TestParseColorHex(t *testing.T) {
	cases := []struct {
		text    string
		r, g, b uint8
	}{
		{"#ff0000", 0xff, 0x00, 0x00},
		{"#0f0", 0x00, 0xff, 0x00},
		{"#0000FF", 0x00, 0x00, 0xff},
	}
	for _, tc := range cases {
		col := parseColorText(t, tc.text)
		assert.Equal(t, tc.r, col.R, tc.text)
		assert.Equal(t, tc.g, col.G, tc.text)
		assert.Equal(t, tc.b, col.B, tc.text)
		assert.Equal(t, 1.0, col.A, tc.text)
	}
}

func TestParseColorRGBFunction(t *testing.T) {
	col := parseColorText(t, "rgb(255, 0, 128)")
	assert.Equal(t, uint8(255), col.R)
	assert.Equal(t, uint8(0), col.G)
	assert.Equal(t, uint8(128), col.B)
	assert.Equal(t, 1.0, col.A)
}

func TestParseColorRGBAFunctionWithAlpha(t *testing.T) {
	col := parseColorText(t, "rgba(0, 0, 0, 0.5)")
	assert.Equal(t, uint8(0), col.R)
	assert.InDelta(t, 0.5, col.A, 0.001)
}

func TestParseColorHSLFunction(t *testing.T) {
	// pure red at hsl(0, 100%, 50%)
	col := parseColorText(t, "hsl(0, 100%, 50%)")
	assert.Equal(t, uint8(255), col.R)
	assert.Equal(t, uint8(0), col.G)
	assert.Equal(t, uint8(0), col.B)
}

func TestParseColorKeywords(t *testing.T) {
	transparent := parseColorText(t, "transparent")
	assert.InDelta(t, 0.0, transparent.A, 0.001)

	current := parseColorText(t, "currentcolor")
	assert.True(t, current.IsCurrentColor)

	named := parseColorText(t, "red")
	assert.Equal(t, uint8(255), named.R)
	assert.True(t, named.IsNamed)
}

func TestColorStringPicksShortestForm(t *testing.T) {
	col := parseColorText(t, "#ff0000")
	assert.Equal(t, "red", col.String(MinifyFlags{Minify: true}))
}

func TestColorStringNonMinifiedKeepsHex(t *testing.T) {
	col := parseColorText(t, "rgb(18, 52, 86)")
	assert.Equal(t, "#123456", col.String(MinifyFlags{}))
}

func TestColorStringAlphaPrefersHexWhenSupported(t *testing.T) {
	col := parseColorText(t, "rgba(17, 17, 17, 0.2)")
	assert.Equal(t, "rgba(17,17,17,.2)", col.String(MinifyFlags{Minify: true}))
	assert.Equal(t, "#1113", col.String(MinifyFlags{Minify: true, HexRGBASupported: true}))
}

func TestColorStringAlphaIgnoresHexWhenUnsupported(t *testing.T) {
	col := parseColorText(t, "rgba(17, 17, 17, 0.2)")
	assert.Equal(t, "rgba(17,17,17,.2)", col.String(MinifyFlags{Minify: true, HexRGBASupported: false}))
}
