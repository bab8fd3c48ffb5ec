package parsec

import (
	"sort"
	"unicode/utf8"
)

// source holds the immutable input text plus a lazily-built index of
// line-start byte offsets, shared by every Cursor derived from it.
type source struct {
	text      string
	file      string
	lineStart []int
}

func newSource(text, file string) *source {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &source{text: text, file: file, lineStart: lineStart}
}

// Location is a 1-based (line, column) pair derived from a byte offset.
type Location struct {
	Line   int
	Column int
}

// Cursor denotes an immutable position within a UTF-8 string. Cursors
// are cheap, copyable value types; advancing one never mutates the
// receiver, it returns a new Cursor.
type Cursor struct {
	src    *source
	offset int
}

// NewCursor returns a Cursor positioned at the start of input. An
// optional filename may be supplied for callers that want to carry it
// alongside positions (it is not part of the canonical render, which
// only ever cites line/column).
func NewCursor(input string, filename ...string) Cursor {
	file := ""
	if len(filename) > 0 {
		file = filename[0]
	}
	return Cursor{src: newSource(input, file), offset: 0}
}

// Offset reports the current byte offset into the underlying input.
func (c Cursor) Offset() int { return c.offset }

// File reports the filename this cursor's input was tagged with, or
// "" if none was given to NewCursor.
func (c Cursor) File() string { return c.src.file }

// Equal reduces to byte-offset equality; it assumes both cursors were
// derived from the same underlying input.
func (c Cursor) Equal(other Cursor) bool { return c.offset == other.offset }

// Peek returns the rune under the cursor. ok is false at end of input.
func (c Cursor) Peek() (rune, bool) {
	if c.offset >= len(c.src.text) {
		return utf8.RuneError, false
	}
	r, size := utf8.DecodeRuneInString(c.src.text[c.offset:])
	if size == 0 {
		return utf8.RuneError, false
	}
	return r, true
}

// Advance returns a new cursor past the current rune. Calling Advance
// at end of input is a no-op (callers must check Peek first).
func (c Cursor) Advance() Cursor {
	if c.offset >= len(c.src.text) {
		return c
	}
	_, size := utf8.DecodeRuneInString(c.src.text[c.offset:])
	if size == 0 {
		size = 1
	}
	return Cursor{src: c.src, offset: c.offset + size}
}

// Remaining reports the number of runes left in the input, used as
// fuel by the repetition combinators.
func (c Cursor) Remaining() int {
	n := 0
	for i := c.offset; i < len(c.src.text); {
		_, size := utf8.DecodeRuneInString(c.src.text[i:])
		if size == 0 {
			size = 1
		}
		i += size
		n++
	}
	return n
}

// AtEnd reports whether the cursor has consumed the entire input.
func (c Cursor) AtEnd() bool { return c.offset >= len(c.src.text) }

// Location computes the 1-based (line, column) of the cursor's byte
// offset. Newline is '\n'; a lone '\r' is not a newline.
func (c Cursor) Location() Location {
	lineStart := c.src.lineStart
	idx := sort.Search(len(lineStart), func(i int) bool {
		return lineStart[i] > c.offset
	}) - 1
	if idx < 0 {
		idx = 0
	}

	col := 1
	for i := lineStart[idx]; i < c.offset; {
		_, size := utf8.DecodeRuneInString(c.src.text[i:])
		if size == 0 {
			size = 1
		}
		i += size
		col++
	}
	return Location{Line: idx + 1, Column: col}
}

// textBetween returns the raw substring between two cursors over the same
// source, used by Str/Take/TakeWhile to materialize matched text.
func textBetween(from, to Cursor) string {
	return from.src.text[from.offset:to.offset]
}
