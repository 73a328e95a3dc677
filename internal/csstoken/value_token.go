package csstoken

import (
	"strconv"

	"cssc/internal/location"
)

// ValueToken is the parser's own copy of a lexical token, decoded and
// detached from the source buffer. Unlike Token above, which borrows a
// range of the original source, ValueToken carries its decoded text
// directly, since Go has no borrow checker to make the zero-copy approach
// safe once a token outlives the buffer it was sliced from; cloning on
// read is the simpler alternative. Children holds the argument tokens of
// a Function token, with its closing ")" implicit; a plain "(", "[" or
// "{" block is not nested, and its closing token stays an ordinary
// sibling. It lives in this package rather than cssast so that cssvalue
// (which parses and prints typed values out of streams of these) does not
// need to import cssast, which itself imports cssvalue for Property's
// typed variants.
type ValueToken struct {
	Text               string
	Children           *[]ValueToken
	Range              location.Range
	ImportRecordIndex  uint32
	UnitOffset         uint16
	Kind               Kind
	IsID               bool
	HasWhitespaceAfter bool
}

// DimensionValue returns the numeric prefix of a Dimension token.
func (t ValueToken) DimensionValue() string { return t.Text[:t.UnitOffset] }

// DimensionUnit returns the unit suffix of a Dimension token.
func (t ValueToken) DimensionUnit() string { return t.Text[t.UnitOffset:] }

// DimensionOrNumberText returns the numeric portion of a Dimension token
// or the entire text of a Number/Percentage token.
func (t ValueToken) DimensionOrNumberText() string {
	if t.Kind == Dimension {
		return t.DimensionValue()
	}
	return t.Text
}

// EqualsIgnoringWhitespace compares two tokens for the purpose of
// shorthand mangling (e.g. folding "margin: 1px 1px 1px 1px" down to
// "margin: 1px"), where the HasWhitespaceAfter flag must not affect
// equality but the decoded contents must.
func (t ValueToken) EqualsIgnoringWhitespace(o ValueToken) bool {
	if t.Kind != o.Kind || t.Text != o.Text || t.UnitOffset != o.UnitOffset {
		return false
	}
	if (t.Children == nil) != (o.Children == nil) {
		return false
	}
	if t.Children == nil {
		return true
	}
	a, b := *t.Children, *o.Children
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].EqualsIgnoringWhitespace(b[i]) {
			return false
		}
	}
	return true
}

// TurnLengthIntoNumberIfZero rewrites a zero-valued dimension or
// percentage token into a bare "0" number token, which CSS treats as
// equivalent and the printer can emit without a unit. It reports whether
// it made a change.
func (t *ValueToken) TurnLengthIntoNumberIfZero() bool {
	if (t.Kind == Dimension || t.Kind == Percentage) && isZeroText(t.DimensionOrNumberText()) {
		t.Kind = Number
		t.Text = "0"
		t.UnitOffset = 0
		return true
	}
	return false
}

func isZeroText(numText string) bool {
	f, err := strconv.ParseFloat(numText, 64)
	return err == nil && f == 0
}
