package cssprinter

import (
	"crypto/sha1"
	"encoding/base32"
	"strings"
)

// scopeName rewrites a class/id's original name to its CSS-Modules scoped
// form, recording the mapping in p.exports the first time it's seen so the
// same local name always maps to the same scoped one within one file. A
// cryptographic hash isn't needed here (this only needs to be stable and
// collision-resistant across a build, not secret); sha1 is used anyway
// because it's already in the standard library and every CSS-Modules
// implementation in the wild derives its suffix from a general-purpose
// digest rather than a bespoke non-cryptographic hash.
func (p *printer) scopeName(original string) string {
	if scoped, ok := p.exports[original]; ok {
		return scoped
	}
	pattern := p.opts.Modules.Pattern
	if pattern == "" {
		pattern = "[name]_[hash]"
	}
	scoped := pattern
	scoped = strings.ReplaceAll(scoped, "[name]", original)
	scoped = strings.ReplaceAll(scoped, "[hash]", moduleHash(p.opts.Modules.SourceName, original))
	p.exports[original] = scoped
	return scoped
}

// moduleHash derives a short, filesystem- and CSS-identifier-safe suffix
// from a file name and a local name, so the same local class name in two
// different files never collides once bundled together.
func moduleHash(sourceName, original string) string {
	sum := sha1.Sum([]byte(sourceName + "\x00" + original))
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:]))[:8]
}
