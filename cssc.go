// Package cssc is a CSS compiler toolchain: a Syntax-Level-3 tokenizer, a
// typed rule/value parser, a vendor-prefixing and logical-property
// transform pipeline, a minifying printer with source maps, and a
// multi-file @import bundler.
//
// Parse, Minify, Print, and Bundle are each their own entry point rather
// than one combined Build call, since this module has no bundler-driven
// code splitting or plugin system to unify them around.
package cssc

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cssc/internal/clog"
	"cssc/internal/compat"
	"cssc/internal/cssast"
	"cssc/internal/cssbundle"
	"cssc/internal/cssparser"
	"cssc/internal/cssprinter"
	"cssc/internal/csstransform"
	"cssc/internal/fileprovider"
	"cssc/internal/sourcemap"
)

// ParserOptions configures Parse.
type ParserOptions struct {
	Filename     string
	AllowNesting bool

	// CSSModules marks the resulting Stylesheet for CSS-Modules scoping at
	// print time; see cssast.ParserOptions.CSSModules.
	CSSModules bool
}

// Parse tokenizes and parses source into a Stylesheet. Recoverable
// per-rule/per-declaration problems are recorded on the returned Log
// rather than failing the call; the parser has no fatal error path of its
// own.
func Parse(options ParserOptions, source string) (*cssast.Stylesheet, *clog.Log) {
	log := newLog()
	sheet := cssparser.Parse(log, cssparser.Options{Filename: options.Filename, AllowNesting: options.AllowNesting, CSSModules: options.CSSModules}, source)
	return sheet, log
}

// MinifyOptions configures Minify.
type MinifyOptions struct {
	Minify      bool
	Constraints map[compat.Engine][]int
	RTLFallback bool

	// UsedSymbols, when non-nil, turns on dead-rule elimination: only a
	// style rule naming a class/id in this set, or a @keyframes/
	// @counter-style whose name is in this set, survives. A caller that
	// never ran usage analysis over its markup should leave this nil
	// rather than pass an empty-but-non-nil map, since an empty set would
	// otherwise drop every class-scoped rule in the sheet.
	UsedSymbols map[string]bool
}

// Minify runs the transform pipeline (logical-property expansion, family
// fusion, vendor-prefix duplication, dead-rule elimination) over sheet and
// returns a new Stylesheet; sheet itself is left untouched.
func Minify(sheet *cssast.Stylesheet, options MinifyOptions) *cssast.Stylesheet {
	log := newLog()
	return csstransform.Transform(log, sheet, csstransform.Options{
		Minify:      options.Minify,
		Constraints: options.Constraints,
		RTLFallback: options.RTLFallback,
		UsedSymbols: options.UsedSymbols,
	})
}

// PrinterOptions configures Print.
type PrinterOptions struct {
	Minify     bool
	SourceMap  bool
	SourceText string // original source, recorded as the map's sourcesContent when SourceMap is set

	// Targets restricts target-aware printing decisions the same way
	// MinifyOptions.Constraints does for the transform pass.
	Targets map[compat.Engine][]int

	// PseudoClassOverrides remaps a pseudo-class selector to a plain class
	// selector at print time; see cssprinter.Options.PseudoClassOverrides.
	PseudoClassOverrides map[string]string

	// Modules turns on CSS-Modules class/id scoping; nil leaves selectors
	// untouched. SourceName on the embedded ModulesOptions defaults to
	// sheet.Filename when left empty.
	Modules *cssprinter.ModulesOptions

	// CollectDependencies turns on reporting external resource references
	// (@import targets, url(...) values) via PrintResult.Dependencies.
	CollectDependencies bool
}

// PrintResult is everything a Print call produces.
type PrintResult struct {
	Code      string
	SourceMap []byte // nil unless PrinterOptions.SourceMap was set

	// Exports maps each original CSS-Modules class/id name to its scoped
	// output name; empty unless PrinterOptions.Modules was set.
	Exports map[string]string

	// Dependencies lists every external resource this stylesheet's rules
	// referenced; empty unless PrinterOptions.CollectDependencies was set.
	Dependencies []string
}

// Print serializes sheet back to CSS text.
func Print(sheet *cssast.Stylesheet, options PrinterOptions) PrintResult {
	opts := cssprinter.Options{
		Minify:               options.Minify,
		Targets:              options.Targets,
		PseudoClassOverrides: options.PseudoClassOverrides,
		Modules:              options.Modules,
		CollectDependencies:  options.CollectDependencies,
	}
	if opts.Modules != nil && opts.Modules.SourceName == "" {
		scoped := *opts.Modules
		scoped.SourceName = sheet.Filename
		opts.Modules = &scoped
	}
	var builder *sourcemap.Builder
	if options.SourceMap {
		builder = sourcemap.NewBuilder()
		opts.SourceMap = builder
		opts.SourceIndex = builder.AddSource(sheet.Filename, options.SourceText)
	}
	printed := cssprinter.Print(sheet, opts)
	result := PrintResult{Code: printed.Code, Exports: printed.Exports, Dependencies: printed.Dependencies}
	if builder != nil {
		result.SourceMap = builder.Generate()
	}
	return result
}

// BundleOptions configures Bundle.
type BundleOptions struct {
	AllowNesting bool
	CSSModules   bool
}

// Bundle loads entryPath and every file it transitively @imports through
// provider, inlining each import in place under the @media/@supports/
// @layer conditions its accumulated reach condition requires.
func Bundle(ctx context.Context, provider fileprovider.Provider, entryPath string, options BundleOptions) (*cssast.Stylesheet, *clog.Log, error) {
	log := newLog()
	sheet, err := cssbundle.Bundle(ctx, log, provider, entryPath, cssbundle.Options{AllowNesting: options.AllowNesting, CSSModules: options.CSSModules})
	return sheet, log, err
}

// newLog stamps every top-level call with its own correlation id so
// diagnostics from concurrent Bundle calls never get attributed to the
// wrong operation.
func newLog() *clog.Log {
	return clog.New(zap.L(), uuid.NewString())
}
