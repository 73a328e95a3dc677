package cssvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCalcText(t *testing.T, text string) Calc[Length] {
	t.Helper()
	c := NewCursor(tokenizeValue(text))
	calc, ok := ParseCalc(c, ParseLength)
	require.True(t, ok, "expected %q to parse as calc()", text)
	return calc
}

func TestParseCalcSimpleAddition(t *testing.T) {
	calc := parseCalcText(t, "calc(1px + 2px)")
	assert.Equal(t, "+", calc.Op)
	require.Len(t, calc.Operands, 2)
	assert.Equal(t, "calc(1px + 2px)", calc.String(MinifyFlags{}, Length.String))
}

func TestParseCalcSubtraction(t *testing.T) {
	calc := parseCalcText(t, "calc(20px - 10px)")
	assert.Equal(t, "-", calc.Op)
	assert.Equal(t, "calc(20px - 10px)", calc.String(MinifyFlags{}, func(l Length, f MinifyFlags) string { return l.String(f) }))
}

func TestParseCalcMultiplicationByScalarFactor(t *testing.T) {
	calc := parseCalcText(t, "calc(2 * 3px)")
	assert.Equal(t, "*", calc.Op)
	assert.Equal(t, "calc(2 * 3px)", calc.String(MinifyFlags{}, func(l Length, f MinifyFlags) string { return l.String(f) }))
}

func TestParseCalcMinFunction(t *testing.T) {
	calc := parseCalcText(t, "min(1px, 2px)")
	assert.Equal(t, "min", calc.Op)
	require.Len(t, calc.Operands, 2)
	assert.Equal(t, "min(1px, 2px)", calc.String(MinifyFlags{}, func(l Length, f MinifyFlags) string { return l.String(f) }))
	assert.Equal(t, "min(1px,2px)", calc.String(MinifyFlags{Minify: true}, func(l Length, f MinifyFlags) string { return l.String(f) }))
}

func TestParseCalcClampFunction(t *testing.T) {
	calc := parseCalcText(t, "clamp(1px, 2px, 3px)")
	assert.Equal(t, "clamp", calc.Op)
	require.Len(t, calc.Operands, 3)
	assert.Equal(t, "clamp(1px, 2px, 3px)", calc.String(MinifyFlags{}, func(l Length, f MinifyFlags) string { return l.String(f) }))
}

func TestParseCalcClampRequiresExactlyThreeArguments(t *testing.T) {
	c := NewCursor(tokenizeValue("clamp(1px, 2px)"))
	_, ok := ParseCalc(c, ParseLength)
	assert.False(t, ok)
}

func TestParseCalcNestedParentheses(t *testing.T) {
	calc := parseCalcText(t, "calc((1px + 2px) * 3)")
	assert.Equal(t, "*", calc.Op)
	require.Len(t, calc.Operands, 2)
	assert.Equal(t, "+", calc.Operands[0].Op)
	// String doesn't track original parenthesization, so the inner sum
	// re-prints as its own calc(...) wrapper nested inside the product.
	assert.Equal(t, "calc(calc(1px + 2px) * 3)", calc.String(MinifyFlags{}, func(l Length, f MinifyFlags) string { return l.String(f) }))
}
