package cssbundle

import (
	"strings"

	"cssc/internal/cssast"
)

// condition is the accumulated "under what conditions is this file
// reached" state the bundler tracks per canonical path: the OR of every
// @import arrival's media/supports/layer, combined at descend time with
// the parent's own condition by AND.
type condition struct {
	media    []string // nil means unconditional ("all"); non-nil is an OR-list of raw query strings
	supports *cssast.SupportsCondition
	layer    *string // nil: no layer; pointer to "": anonymous; else a (possibly dotted) layer name
}

func conditionFromImportRule(imp *cssast.ImportRule) condition {
	return condition{media: splitMediaList(imp.Media), supports: imp.Supports, layer: imp.LayerName}
}

func splitMediaList(media string) []string {
	media = strings.TrimSpace(media)
	if media == "" || strings.EqualFold(media, "all") {
		return nil
	}
	parts := strings.Split(media, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func layersEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// mergeOR combines two arrival conditions for the same path, for when the
// bundler encounters an @import of the same file a second time. Two
// anonymous layers never merge: each one is a distinct layer.
func mergeOR(a, b condition) (condition, error) {
	if !layersEqual(a.layer, b.layer) || (a.layer != nil && *a.layer == "") {
		return condition{}, &Error{Kind: UnsupportedLayerCombination, Message: "conflicting layer annotations on the same imported file"}
	}
	aHasMedia, bHasMedia := len(a.media) > 0, len(b.media) > 0
	aHasSupports, bHasSupports := a.supports != nil, b.supports != nil
	if (aHasMedia && bHasSupports) || (bHasMedia && aHasSupports) {
		return condition{}, &Error{Kind: UnsupportedImportCondition, Message: "cannot OR a media-only arrival with a supports-only arrival"}
	}
	return condition{
		media:    unionMedia(a.media, b.media),
		supports: orSupports(a.supports, b.supports),
		layer:    a.layer,
	}, nil
}

// unionMedia ORs two media-query lists; an empty ("all") list absorbs the
// union, matching CSS's own media-list OR semantics.
func unionMedia(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, m := range list {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func orSupports(a, b *cssast.SupportsCondition) *cssast.SupportsCondition {
	if a == nil || b == nil {
		return nil
	}
	return &cssast.SupportsCondition{Or: []cssast.SupportsCondition{*a, *b}}
}

// mergeAND combines a parent's accumulated condition with one of its own
// @import edges' condition, when descending into the child.
func mergeAND(parent, child condition) (condition, error) {
	media, err := andMedia(parent.media, child.media)
	if err != nil {
		return condition{}, err
	}
	layer, err := concatLayer(parent.layer, child.layer)
	if err != nil {
		return condition{}, err
	}
	return condition{media: media, supports: andSupports(parent.supports, child.supports), layer: layer}, nil
}

func andMedia(parent, child []string) ([]string, error) {
	if len(parent) == 0 {
		return child, nil
	}
	if len(child) == 0 {
		return parent, nil
	}
	return nil, &Error{Kind: UnsupportedMediaBooleanLogic, Message: "cannot AND two non-trivial media lists without boolean-query support"}
}

func andSupports(parent, child *cssast.SupportsCondition) *cssast.SupportsCondition {
	if parent == nil {
		return child
	}
	if child == nil {
		return parent
	}
	return &cssast.SupportsCondition{And: []cssast.SupportsCondition{*parent, *child}}
}

func concatLayer(parent, child *string) (*string, error) {
	if child == nil {
		return parent, nil
	}
	if parent == nil {
		name := *child
		return &name, nil
	}
	if *parent == "" {
		name := *child
		return &name, nil
	}
	if *child == "" {
		name := *parent
		return &name, nil
	}
	combined := *parent + "." + *child
	return &combined, nil
}

// wrap applies cond's media, then supports, then layer, around rules, in
// that fixed order.
func wrap(rules []cssast.Rule, cond condition) []cssast.Rule {
	if len(cond.media) > 0 {
		rules = []cssast.Rule{&cssast.MediaRule{Query: strings.Join(cond.media, ", "), Rules: rules}}
	}
	if cond.supports != nil {
		rules = []cssast.Rule{&cssast.SupportsRule{Condition: *cond.supports, Rules: rules}}
	}
	if cond.layer != nil {
		rules = []cssast.Rule{&cssast.LayerBlockRule{Name: *cond.layer, Rules: rules}}
	}
	return rules
}

// prefixLayerStatements rewrites an imported file's top-level @layer
// statement names under layerPrefix ("foo.qux, foo.baz" from "qux, baz"),
// so the statement still orders layers correctly once phase 2 flattens
// everything into one rule list.
func prefixLayerStatements(rules []cssast.Rule, layerPrefix *string) []cssast.Rule {
	if layerPrefix == nil || *layerPrefix == "" {
		return rules
	}
	out := make([]cssast.Rule, len(rules))
	for i, r := range rules {
		if ls, ok := r.(*cssast.LayerStatementRule); ok {
			names := make([]string, len(ls.Names))
			for j, n := range ls.Names {
				names[j] = *layerPrefix + "." + n
			}
			out[i] = &cssast.LayerStatementRule{Names: names}
			continue
		}
		out[i] = r
	}
	return out
}
