package parsec

// expectedSet is a difference-list accumulation of expected labels.
// Appending two sets is O(1); materializing to a concrete, ordered,
// de-duplicated slice happens only when a Message is rendered.
//
// Represented the way the spec's design notes suggest for a target
// language without a built-in difference-list type: a function that
// prepends its own labels onto whatever tail it's given.
type expectedSet func(tail []string) []string

func emptySet() expectedSet {
	return func(tail []string) []string { return tail }
}

func singleton(label string) expectedSet {
	if label == "" {
		return emptySet()
	}
	return func(tail []string) []string { return append([]string{label}, tail...) }
}

func labelSet(labels []string) expectedSet {
	cp := append([]string(nil), labels...)
	return func(tail []string) []string { return append(cp, tail...) }
}

// union concatenates two expected-sets in O(1).
func (s expectedSet) union(other expectedSet) expectedSet {
	if s == nil {
		return other
	}
	if other == nil {
		return s
	}
	return func(tail []string) []string { return s(other(tail)) }
}

// materialize flattens the difference list into a de-duplicated slice
// in first-seen order. This is only ever called at render time.
func (s expectedSet) materialize() []string {
	if s == nil {
		return nil
	}
	raw := s(nil)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Message carries everything needed to report or render a parse
// failure: where it happened, what was actually seen, and what would
// have been accepted instead. Custom holds an optional user payload;
// Message is not generic over the payload type, so Custom is typed
// `any` and is nil for messages that carry none.
type Message struct {
	Cursor     Cursor
	Unexpected string
	Custom     any
	File       string

	expected expectedSet
}

// NewMessage builds a Message with a single expected label (possibly
// empty, meaning "no expectation to report").
func NewMessage(cursor Cursor, unexpected, expectedLabel string) Message {
	return Message{Cursor: cursor, Unexpected: unexpected, File: cursor.File(), expected: singleton(expectedLabel)}
}

// NewMessageLabels builds a Message whose expected-set is seeded with
// several labels at once.
func NewMessageLabels(cursor Cursor, unexpected string, expectedLabels []string) Message {
	return Message{Cursor: cursor, Unexpected: unexpected, File: cursor.File(), expected: labelSet(expectedLabels)}
}

// Expected materializes the message's expected-set: de-duplicated,
// first-seen order.
func (m Message) Expected() []string {
	return m.expected.materialize()
}

// withExpected returns a copy of m with its expected-set replaced.
func (m Message) withExpected(s expectedSet) Message {
	m.expected = s
	return m
}

// merge combines two error messages referring to the same cursor by
// concatenating their expected-sets (union semantics at render time),
// keeping m1's cursor, unexpected text, custom payload and file.
func merge(m1, m2 Message) Message {
	return Message{
		Cursor:     m1.Cursor,
		Unexpected: m1.Unexpected,
		Custom:     m1.Custom,
		File:       m1.File,
		expected:   m1.expected.union(m2.expected),
	}
}

// parseError is the error implementation returned at the run
// boundary (Parse/ParseWithEoi/ParseWithLeftOver). Internally, a
// Message is a plain value, not a Go error: only at the boundary does
// it become one, keeping backtrackable failures separate from the
// error a caller actually sees.
type parseError struct {
	Message Message
}

func (e *parseError) Error() string { return Render(e.Message) }

// AsError wraps a Message as a Go error value.
func (m Message) AsError() error { return &parseError{Message: m} }
