// Package cssbundle implements the multi-file @import bundler: a
// concurrent phase 1 that loads and condition-merges the import graph,
// followed by a serial, cycle-safe phase 2 that inlines every file as a
// flat run of segments, each wrapped exactly once in the @media/
// @supports/@layer its own accumulated reach condition requires.
//
// Phase 1 admits work into a path-keyed map guarded by a mutex, so only
// the first goroutine to arrive at a given path does the load/parse/
// recurse work; every later arrival just OR-merges its condition into the
// existing entry and returns.
package cssbundle

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"cssc/internal/clog"
	"cssc/internal/cssast"
	"cssc/internal/cssparser"
	"cssc/internal/fileprovider"
)

// Options configures a Bundle call.
type Options struct {
	AllowNesting bool
	CSSModules   bool
}

type bundler struct {
	provider fileprovider.Provider
	log      *clog.Log
	opts     Options

	mu          sync.Mutex
	loaded      map[string]*condition
	stylesheets map[string]*cssast.Stylesheet
}

// Bundle loads entryPath and every file it transitively @imports through
// provider, and returns one Stylesheet with every import inlined in
// place.
func Bundle(ctx context.Context, log *clog.Log, provider fileprovider.Provider, entryPath string, opts Options) (*cssast.Stylesheet, error) {
	b := &bundler{
		provider:    provider,
		log:         log,
		opts:        opts,
		loaded:      map[string]*condition{},
		stylesheets: map[string]*cssast.Stylesheet{},
	}

	entryCond := condition{}
	if err := b.load(ctx, entryPath, entryCond); err != nil {
		return nil, err
	}

	segments, sourceFiles, err := b.inline(entryPath)
	if err != nil {
		return nil, err
	}
	return &cssast.Stylesheet{
		Filename:        entryPath,
		Rules:           flatten(segments),
		Options:         cssast.ParserOptions{AllowNesting: opts.AllowNesting, CSSModules: opts.CSSModules},
		SourceFilenames: sourceFiles,
	}, nil
}

// load is phase 1: read and parse path, record its reach condition, and
// recursively load every @import it contains. The first goroutine to
// claim a vacant entry in b.loaded becomes that path's owner and does the
// actual read/parse/recurse; later arrivals only merge their condition
// into the existing entry.
func (b *bundler) load(ctx context.Context, path string, cond condition) error {
	owner, err := b.claimOrMerge(path, cond)
	if err != nil {
		return err
	}
	if !owner {
		return nil
	}

	content, err := b.provider.Read(path)
	if err != nil {
		return &Error{Kind: IOError, Path: path, Message: "reading imported file", Wrapped: err}
	}

	sheet := cssparser.Parse(b.log, cssparser.Options{Filename: path, AllowNesting: b.opts.AllowNesting, CSSModules: b.opts.CSSModules}, content)

	b.mu.Lock()
	b.stylesheets[path] = sheet
	b.mu.Unlock()

	// Resolve every child import's path up front so a resolve failure on
	// one sibling doesn't prevent reporting a resolve failure on another;
	// multierr aggregates what it can before any goroutine is launched.
	type child struct {
		path string
		cond condition
	}
	var children []child
	var resolveErrs error
	for _, r := range sheet.Rules {
		imp, ok := r.(*cssast.ImportRule)
		if !ok {
			continue
		}
		childPath, err := b.provider.Resolve(imp.URL, path)
		if err != nil {
			resolveErrs = multierr.Append(resolveErrs, &Error{Kind: IOError, Path: imp.URL, Message: "resolving @import", Wrapped: err})
			continue
		}
		combined, err := mergeAND(cond, conditionFromImportRule(imp))
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Path = imp.URL
			}
			resolveErrs = multierr.Append(resolveErrs, err)
			continue
		}
		children = append(children, child{path: childPath, cond: combined})
	}
	if resolveErrs != nil {
		return resolveErrs
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range children {
		c := c
		g.Go(func() error { return b.load(gctx, c.path, c.cond) })
	}
	return g.Wait()
}

// claimOrMerge returns (true, nil) when the caller is the first to reach
// path and must load it, or (false, err) when a prior arrival already
// owns it and this call's condition has been OR-merged into that entry.
func (b *bundler) claimOrMerge(path string, cond condition) (owner bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	existing, ok := b.loaded[path]
	if !ok {
		stored := cond
		b.loaded[path] = &stored
		return true, nil
	}
	merged, err := mergeOR(*existing, cond)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = path
		}
		return false, err
	}
	*existing = merged
	return false, nil
}

// segment is a run of rules contributed by one file in the import graph.
// cond is nil until the file's own condition is known to the caller that
// spliced it in; once a segment is assigned a condition it is wrapped and
// must never be touched again by an ancestor further up the import chain.
// Without this distinction, wrapping a child's fully-resolved segment a
// second time at every ancestor level nests "@layer foo { @layer
// foo.bar { ... } ... }" instead of the flat "@layer foo.bar {...}
// @layer foo {...}" siblings CSS layer nesting actually needs: a name
// like "foo.bar" is already fully qualified by concatLayer, so placing it
// inside an unrelated "@layer foo" block would requalify it a second time.
type segment struct {
	cond  *condition
	rules []cssast.Rule
}

// inline is phase 2: depth-first, consuming b.stylesheets as it goes so a
// cyclic @import graph terminates (a path visited a second time finds its
// entry already removed and contributes nothing further). It returns
// path's content as a flat list of segments rather than a single rule
// list, so flatten can wrap each one under its own condition exactly
// once instead of every enclosing file re-wrapping what a deeper file
// already finished.
func (b *bundler) inline(path string) ([]segment, []string, error) {
	sheet, ok := b.stylesheets[path]
	if !ok {
		return nil, nil, nil
	}
	delete(b.stylesheets, path)

	var segments []segment
	var ownRules []cssast.Rule
	sourceFiles := []string{path}

	flushOwn := func() {
		if len(ownRules) > 0 {
			segments = append(segments, segment{rules: ownRules})
			ownRules = nil
		}
	}

	for _, r := range sheet.Rules {
		imp, ok := r.(*cssast.ImportRule)
		if !ok {
			ownRules = append(ownRules, r)
			continue
		}
		childPath, err := b.provider.Resolve(imp.URL, path)
		if err != nil {
			return nil, nil, &Error{Kind: IOError, Path: imp.URL, Message: "resolving @import", Wrapped: err}
		}
		childSegments, childSources, err := b.inline(childPath)
		if err != nil {
			return nil, nil, err
		}
		if childSegments == nil {
			// already inlined elsewhere in the graph (a cycle); the @import
			// edge that got here first already emitted this file's content
			continue
		}
		flushOwn()
		childCond := b.loaded[childPath]
		for _, seg := range childSegments {
			if seg.cond != nil {
				// resolved at a deeper level already; pass through untouched
				segments = append(segments, seg)
				continue
			}
			segments = append(segments, segment{cond: childCond, rules: prefixLayerStatements(seg.rules, imp.LayerName)})
		}
		sourceFiles = append(sourceFiles, childSources...)
	}
	flushOwn()
	return segments, sourceFiles, nil
}

// flatten wraps each segment under its own condition exactly once (a nil
// condition, meaning the entry file's own top-level content, passes
// through unwrapped) and concatenates the results in source order.
func flatten(segments []segment) []cssast.Rule {
	var out []cssast.Rule
	for _, seg := range segments {
		rules := seg.rules
		if seg.cond != nil {
			rules = wrap(rules, *seg.cond)
		}
		out = append(out, rules...)
	}
	return out
}
