package parsec

// resultTag discriminates the four-way classification of a parser
// outcome: crossing {success, failure} with {consumed, epsilon}. This
// discipline is the central invariant of the library. Every
// combinator must preserve it.
type resultTag uint8

const (
	tagOkConsumed resultTag = iota
	tagOkEps
	tagErrConsumed
	tagErrEps
)

// Result is the outcome of running a Parser[A] against a Cursor. It is
// always exactly one of four cases:
//
//   - okConsumed: success, input consumed. Cursor is strictly past the
//     input cursor. Expected-set is empty.
//   - okEps:      success, nothing consumed. Cursor equals the input
//     cursor. Expected-set records labels that would have been
//     reported had epsilon success not occurred.
//   - errConsumed: failure, input consumed. Not recoverable by OrElse
//     unless wrapped in Try.
//   - errEps:      failure, nothing consumed. Recoverable by OrElse.
type Result[A any] struct {
	tag      resultTag
	value    A
	cursor   Cursor
	expected expectedSet
	message  Message
}

// OkConsumed builds a success result that consumed input.
func OkConsumed[A any](value A, cursor Cursor) Result[A] {
	return Result[A]{tag: tagOkConsumed, value: value, cursor: cursor}
}

// OkEps builds a zero-width success result, carrying the expected-set
// that would have applied had this epsilon success not happened.
func OkEps[A any](value A, cursor Cursor, expected expectedSet) Result[A] {
	return Result[A]{tag: tagOkEps, value: value, cursor: cursor, expected: expected}
}

// ErrConsumed builds a failure result that consumed input.
func ErrConsumed[A any](msg Message) Result[A] {
	return Result[A]{tag: tagErrConsumed, message: msg}
}

// ErrEps builds a zero-width failure result.
func ErrEps[A any](msg Message) Result[A] {
	return Result[A]{tag: tagErrEps, message: msg}
}

// mkEps constructs an okEps result with an empty expected-set.
func mkEps[A any](value A, cursor Cursor) Result[A] {
	return OkEps(value, cursor, emptySet())
}

// IsOK reports whether r represents success (either okConsumed or
// okEps).
func (r Result[A]) IsOK() bool {
	return r.tag == tagOkConsumed || r.tag == tagOkEps
}

// Consumed reports whether r represents an outcome where input was
// consumed (okConsumed or errConsumed).
func (r Result[A]) Consumed() bool {
	return r.tag == tagOkConsumed || r.tag == tagErrConsumed
}

// Value returns r's value. It is only meaningful when IsOK() is true.
func (r Result[A]) Value() A { return r.value }

// Cursor returns r's resulting cursor. It is only meaningful when
// IsOK() is true: for okEps it equals the input cursor, for okConsumed
// it is strictly past it. Error results carry their position in
// Message().Cursor instead.
func (r Result[A]) Cursor() Cursor { return r.cursor }

// Message returns r's error message. It is only meaningful when
// IsOK() is false.
func (r Result[A]) Message() Message { return r.message }

// Expected returns r's pending expected-set. It is only meaningful for
// okEps results (errors carry their expected-set inside Message).
func (r Result[A]) Expected() expectedSet { return r.expected }

func (r Result[A]) withCursor(c Cursor) Result[A] {
	r.cursor = c
	return r
}

func (r Result[A]) withExpected(s expectedSet) Result[A] {
	r.expected = s
	return r
}

func (r Result[A]) withMessage(m Message) Result[A] {
	r.message = m
	return r
}

// mapResult transforms a result's value, preserving its tag, cursor
// and expected-set. It never touches error results.
func mapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	switch r.tag {
	case tagOkConsumed:
		return OkConsumed(f(r.value), r.cursor)
	case tagOkEps:
		return OkEps(f(r.value), r.cursor, r.expected)
	case tagErrConsumed:
		return ErrConsumed[B](r.message)
	default:
		return ErrEps[B](r.message)
	}
}
