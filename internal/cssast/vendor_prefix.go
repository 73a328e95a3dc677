package cssast

// VendorPrefix is a bitmask of legacy vendor prefixes: the canonical
// representation of "the same rule/property under several engine-specific
// names". A single node carrying WebKit|Moz|None expands at print time
// into three declarations sharing one value, instead of the AST holding
// three parallel nodes.
type VendorPrefix uint8

const (
	PrefixNone VendorPrefix = 1 << iota
	PrefixWebKit
	PrefixMoz
	PrefixMs
	PrefixO
)

// printOrder is the fixed order the printer emits one declaration per set
// bit in: WebKit, Moz, Ms, O, None.
var printOrder = [...]VendorPrefix{PrefixWebKit, PrefixMoz, PrefixMs, PrefixO, PrefixNone}

// Each iterates f over every prefix bit set in p, in print order.
func (p VendorPrefix) Each(f func(VendorPrefix)) {
	for _, bit := range printOrder {
		if p&bit != 0 {
			f(bit)
		}
	}
}

// Count reports how many bits are set: the printer emits exactly this
// many declarations for the property carrying this mask.
func (p VendorPrefix) Count() int {
	n := 0
	p.Each(func(VendorPrefix) { n++ })
	return n
}

// Text returns the prefix's textual form, e.g. "-webkit-", or "" for PrefixNone.
func (p VendorPrefix) Text() string {
	switch p {
	case PrefixWebKit:
		return "-webkit-"
	case PrefixMoz:
		return "-moz-"
	case PrefixMs:
		return "-ms-"
	case PrefixO:
		return "-o-"
	default:
		return ""
	}
}

// VendorPrefixFromText maps a leading dash-prefix fragment (already split
// off an at-rule or property name, without its own leading/trailing dash)
// to the matching bit, or PrefixNone if it names no known vendor.
func VendorPrefixFromText(s string) VendorPrefix {
	switch s {
	case "webkit":
		return PrefixWebKit
	case "moz":
		return PrefixMoz
	case "ms":
		return PrefixMs
	case "o":
		return PrefixO
	default:
		return PrefixNone
	}
}
