package parsec

// Parse runs p against input from the start, returning either its
// value or an error. It does not require the parser to consume the
// entire input; use ParseWithEoi for that. An optional filename tags
// the error message for callers that report across multiple files; it
// is not part of the canonical rendered text (Render only ever cites
// line/column).
func Parse[A any](p Parser[A], input string, filename ...string) (A, error) {
	r := p(NewCursor(input, filename...))
	if !r.IsOK() {
		var zero A
		return zero, r.Message().AsError()
	}
	return r.Value(), nil
}

// ParseWithEoi runs p, then requires the entire input to have been
// consumed: parse(p <* eoi, ...).
func ParseWithEoi[A any](p Parser[A], input string, filename ...string) (A, error) {
	return Parse(Before(p, EOI()), input, filename...)
}

// ParseWithLeftOver runs p and returns both its value and the cursor
// left over after parsing, so the caller can keep going (e.g. to parse
// a sequence of top-level declarations one at a time).
func ParseWithLeftOver[A any](p Parser[A], input string, filename ...string) (A, Cursor, error) {
	c := NewCursor(input, filename...)
	r := p(c)
	if !r.IsOK() {
		var zero A
		return zero, c, r.Message().AsError()
	}
	return r.Value(), r.Cursor(), nil
}
