package cssprinter

import (
	"strings"

	"cssc/internal/cssast"
	"cssc/internal/csstoken"
	"cssc/internal/cssvalue"
)

// declarationDependencies returns every url(...) reference prop carries,
// whether it's in a typed Image field (Background/Mask/ListStyle layers,
// the only shapes this module reduces url() into) or still raw tokens
// (Unparsed, Custom, or an untyped Image.Raw fallback like image-set()).
func declarationDependencies(prop cssast.Property) []string {
	var urls []string

	addImage := func(img *cssvalue.Image) {
		if img == nil {
			return
		}
		if img.URL != nil {
			urls = append(urls, img.URL.Text)
			return
		}
		urls = append(urls, urlsFromTokens(img.Raw)...)
	}

	for i := range prop.Background {
		addImage(prop.Background[i].Image)
	}
	for i := range prop.Mask {
		addImage(prop.Mask[i].Image)
	}
	if prop.ListStyle != nil {
		addImage(prop.ListStyle.Image)
	}
	if prop.Unparsed != nil {
		urls = append(urls, urlsFromTokens(prop.Unparsed.Tokens)...)
	}
	if prop.Custom != nil {
		urls = append(urls, urlsFromTokens(prop.Custom.Tokens)...)
	}
	return urls
}

// urlsFromTokens walks a raw token tree (including function arguments) for
// url references, covering three shapes: a bare url(...) token (the URL
// token kind, only produced for an unquoted url()), a quoted url("...")
// (the grammar tokenizes this as a Function named "url" with a String
// child, per the CSS syntax spec), and a URL/string nested inside an
// unmodeled function like image-set(...) or -webkit-image-set(...).
func urlsFromTokens(tokens []cssast.Token) []string {
	var urls []string
	for _, t := range tokens {
		switch {
		case t.Kind == csstoken.URL:
			urls = append(urls, t.Text)
		case t.Kind == csstoken.Function && strings.EqualFold(t.Text, "url") && t.Children != nil && len(*t.Children) > 0:
			if first := (*t.Children)[0]; first.Kind == csstoken.String {
				urls = append(urls, first.Text)
				continue
			}
		}
		if t.Children != nil {
			urls = append(urls, urlsFromTokens(*t.Children)...)
		}
	}
	return urls
}
