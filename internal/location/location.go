// Package location holds the source-position types shared by every stage
// of the pipeline: the tokenizer stamps them on tokens, the parser copies
// them onto AST nodes, and the printer and bundler use them to report
// errors back to the original file and line.
package location

// Loc is a single position in a source file. Line and Column are zero
// based; Offset is the byte offset from the start of the file.
type Loc struct {
	Offset int
	Line   int
	Column int
}

// Range is a half-open [Start, End) span of source text.
type Range struct {
	Start Loc
	End   Loc
}

// Len reports the byte length of the range.
func (r Range) Len() int {
	return r.End.Offset - r.Start.Offset
}

// Before reports whether a precedes b using byte offsets, which are the
// only monotonically increasing field across files.
func Before(a, b Loc) bool {
	return a.Offset < b.Offset
}
