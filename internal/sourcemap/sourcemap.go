// Package sourcemap implements the printer's source-map collaborator: a
// V3 JSON source map built incrementally as the printer emits output, so
// printing and mapping stay in lockstep without needing the printer to
// buffer its entire output before mapping can start.
//
// This covers just the pieces a single-file (non-incremental-bundle)
// printer needs: VLQ encoding and a flat mapping buffer, without the
// chunk-stitching machinery an incremental multi-output bundler would
// need.
package sourcemap

import (
	"bytes"
	"encoding/json"
)

// Mapping is one "generated position -> original position" entry.
type Mapping struct {
	GeneratedLine   int
	GeneratedColumn int
	SourceIndex     int
	OriginalLine    int
	OriginalColumn  int
	NameIndex       int // -1 when the mapping has no associated name
}

// Builder accumulates mappings and source file content for one output
// file, in the generated-position order the printer naturally produces
// them as it calls AddMapping while writing.
type Builder struct {
	Sources        []string
	SourcesContent []string
	Names          []string
	mappings       []Mapping
	sourceIndices  map[string]int
	nameIndices    map[string]int
}

func NewBuilder() *Builder {
	return &Builder{sourceIndices: map[string]int{}, nameIndices: map[string]int{}}
}

// AddSource registers a source file (used by the bundler to give each
// inlined @import its own source-map source) and returns its index,
// reusing an existing entry if the same filename was added before.
func (b *Builder) AddSource(filename, content string) int {
	if i, ok := b.sourceIndices[filename]; ok {
		return i
	}
	i := len(b.Sources)
	b.Sources = append(b.Sources, filename)
	b.SourcesContent = append(b.SourcesContent, content)
	b.sourceIndices[filename] = i
	return i
}

func (b *Builder) addName(name string) int {
	if name == "" {
		return -1
	}
	if i, ok := b.nameIndices[name]; ok {
		return i
	}
	i := len(b.Names)
	b.Names = append(b.Names, name)
	b.nameIndices[name] = i
	return i
}

// AddMapping records one generated->original position pair.
func (b *Builder) AddMapping(generatedLine, generatedColumn, sourceIndex, originalLine, originalColumn int, name string) {
	b.mappings = append(b.mappings, Mapping{
		GeneratedLine: generatedLine, GeneratedColumn: generatedColumn,
		SourceIndex: sourceIndex, OriginalLine: originalLine, OriginalColumn: originalColumn,
		NameIndex: b.addName(name),
	})
}

// jsonSourceMap is the V3 source map wire format.
type jsonSourceMap struct {
	Version        int      `json:"version"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Generate renders the accumulated mappings as a V3 JSON source map.
func (b *Builder) Generate() []byte {
	doc := jsonSourceMap{
		Version:        3,
		Sources:        b.Sources,
		SourcesContent: b.SourcesContent,
		Names:          b.Names,
		Mappings:       encodeMappings(b.mappings),
	}
	out, _ := json.Marshal(doc)
	return out
}

// encodeMappings renders the "mappings" field: semicolon-separated
// generated lines, each holding comma-separated VLQ-encoded groups of
// (generatedColumnDelta, sourceIndexDelta, originalLineDelta,
// originalColumnDelta[, nameIndexDelta]), per the source map v3 spec: the
// generated column is relative to the previous mapping on the same line
// (starting from zero on each new line), every other field to the
// previous mapping overall.
func encodeMappings(mappings []Mapping) string {
	var out bytes.Buffer
	prevGeneratedColumn, prevSourceIndex, prevOriginalLine, prevOriginalColumn, prevNameIndex := 0, 0, 0, 0, 0
	currentLine := 0
	firstOnLine := true

	for _, m := range mappings {
		for currentLine < m.GeneratedLine {
			out.WriteByte(';')
			currentLine++
			prevGeneratedColumn = 0
			firstOnLine = true
		}
		if !firstOnLine {
			out.WriteByte(',')
		}
		firstOnLine = false

		out.Write(encodeVLQ(m.GeneratedColumn - prevGeneratedColumn))
		out.Write(encodeVLQ(m.SourceIndex - prevSourceIndex))
		out.Write(encodeVLQ(m.OriginalLine - prevOriginalLine))
		out.Write(encodeVLQ(m.OriginalColumn - prevOriginalColumn))
		if m.NameIndex >= 0 {
			out.Write(encodeVLQ(m.NameIndex - prevNameIndex))
			prevNameIndex = m.NameIndex
		}

		prevGeneratedColumn = m.GeneratedColumn
		prevSourceIndex = m.SourceIndex
		prevOriginalLine = m.OriginalLine
		prevOriginalColumn = m.OriginalColumn
	}
	return out.String()
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ encodes a signed integer as base64 VLQ: the sign occupies the
// low bit, and every following 5-bit group sets its continuation bit
// except the last.
func encodeVLQ(value int) []byte {
	var vlq int
	if value < 0 {
		vlq = ((-value) << 1) | 1
	} else {
		vlq = value << 1
	}

	var encoded []byte
	for {
		digit := vlq & 31
		vlq >>= 5
		if vlq != 0 {
			digit |= 32
		}
		encoded = append(encoded, base64Chars[digit])
		if vlq == 0 {
			break
		}
	}
	return encoded
}
