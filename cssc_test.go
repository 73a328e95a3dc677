package cssc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssc/internal/compat"
	"cssc/internal/cssast"
	"cssc/internal/cssprinter"
)

func parseOne(t *testing.T, source string) *cssast.Stylesheet {
	t.Helper()
	sheet, log := Parse(ParserOptions{Filename: "in.css"}, source)
	require.Empty(t, log.Diagnostics())
	return sheet
}

func TestPrintRoundTrip(t *testing.T) {
	sheet := parseOne(t, ".a { color: red; }")
	result := Print(sheet, PrinterOptions{})
	assert.Contains(t, result.Code, ".a")
	assert.Contains(t, result.Code, "color: red")
}

func TestPrintCSSModulesScopesClassesAndReportsExports(t *testing.T) {
	sheet := parseOne(t, ".button { color: blue; } .button:hover { color: navy; }")
	result := Print(sheet, PrinterOptions{Modules: &cssprinter.ModulesOptions{SourceName: "widget.css"}})
	scoped, ok := result.Exports["button"]
	require.True(t, ok)
	assert.NotEqual(t, "button", scoped)
	// the same local name scopes to the same output name everywhere it recurs
	assert.Equal(t, 2, strings.Count(result.Code, "."+scoped))
	// every ".button" left in the output is the prefix of a scoped name
	assert.Equal(t, strings.Count(result.Code, "."+scoped), strings.Count(result.Code, ".button"))
}

func TestPrintPseudoClassOverrideEmitsClassInstead(t *testing.T) {
	sheet := parseOne(t, ".a:focus-visible { outline: none; }")
	result := Print(sheet, PrinterOptions{PseudoClassOverrides: map[string]string{"focus-visible": "js-focus-visible"}})
	assert.Contains(t, result.Code, ".a.js-focus-visible")
	assert.NotContains(t, result.Code, ":focus-visible")
}

func TestPrintCollectsDependencies(t *testing.T) {
	sheet := parseOne(t, `
		@import "reset.css";
		.a { background: url("bg.png"); }
	`)
	result := Print(sheet, PrinterOptions{CollectDependencies: true})
	assert.Contains(t, result.Dependencies, "reset.css")
	assert.Contains(t, result.Dependencies, "bg.png")
}

func TestMinifyUsedSymbolsDropsUnreferencedRules(t *testing.T) {
	sheet := parseOne(t, ".kept { color: red; } .dropped { color: blue; }")
	minified := Minify(sheet, MinifyOptions{UsedSymbols: map[string]bool{"kept": true}})
	result := Print(minified, PrinterOptions{})
	assert.Contains(t, result.Code, ".kept")
	assert.NotContains(t, result.Code, ".dropped")
}

func TestMinifyRTLFallbackEmitsScopedSibling(t *testing.T) {
	sheet := parseOne(t, ".a { margin-inline-start: 1px; }")
	minified := Minify(sheet, MinifyOptions{
		RTLFallback: true,
		Constraints: map[compat.Engine][]int{compat.Safari: {12, 0, 0}},
	})
	result := Print(minified, PrinterOptions{})
	assert.Contains(t, result.Code, `[dir="rtl"]`)
	assert.Contains(t, result.Code, ".a")
}

func TestPrintSourceMapRecordsAMapping(t *testing.T) {
	sheet := parseOne(t, ".a { color: red; }")
	result := Print(sheet, PrinterOptions{SourceMap: true, SourceText: ".a { color: red; }"})
	require.NotEmpty(t, result.SourceMap)
}
