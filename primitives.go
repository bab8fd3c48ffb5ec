package parsec

import (
	"unicode"
)

// Parser over element type A: a pure function from a Cursor to a
// Result. Parsers are values, cheaply composable, sharing no mutable
// state; a Cursor borrows from its underlying input, so a Parser's
// lifetime is tied to whatever input it is eventually run against.
type Parser[A any] func(Cursor) Result[A]

// Pure returns a parser that always succeeds with a, without touching
// the cursor.
func Pure[A any](a A) Parser[A] {
	return func(c Cursor) Result[A] { return mkEps(a, c) }
}

// Failure always fails at the current cursor without consuming input.
func Failure[A any]() Parser[A] {
	return func(c Cursor) Result[A] {
		return ErrEps[A](NewMessage(c, "failure", ""))
	}
}

// quoteRune renders a rune the way error messages cite an unexpected
// character.
func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

// Satisfy succeeds with the current rune and advances the cursor if
// predicate p holds for it. It fails without consuming on end of input
// or predicate rejection.
func Satisfy(p func(rune) bool) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return ErrEps[rune](NewMessage(c, "end of input", ""))
		}
		if !p(r) {
			return ErrEps[rune](NewMessage(c, quoteRune(r), ""))
		}
		return OkConsumed(r, c.Advance())
	}
}

// Ch matches exactly the rune r.
func Ch(r rune) Parser[rune] {
	return Label(Satisfy(func(v rune) bool { return v == r }), quoteRune(r))
}

// Alpha matches any Unicode letter.
func Alpha() Parser[rune] {
	return Label(Satisfy(unicode.IsLetter), "letter")
}

// Digit matches any Unicode decimal digit.
func Digit() Parser[rune] {
	return Label(Satisfy(unicode.IsDigit), "digit")
}

// Upper matches any upper-case letter.
func Upper() Parser[rune] {
	return Label(Satisfy(unicode.IsUpper), "uppercase letter")
}

// Lower matches any lower-case letter.
func Lower() Parser[rune] {
	return Label(Satisfy(unicode.IsLower), "lowercase letter")
}

// Any matches any single rune, failing only at end of input.
func Any() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// Str succeeds only if every rune of s matches in order. It is
// all-or-nothing: on any mismatch or premature end of input, the
// cursor is returned unchanged (errEps), never left mid-word. An extra
// cursor snapshot is the price of never committing mid-string.
func Str(s string) Parser[string] {
	runes := []rune(s)
	label := "\"" + s + "\""
	return func(start Cursor) Result[string] {
		c := start
		for _, want := range runes {
			r, ok := c.Peek()
			if !ok {
				return ErrEps[string](NewMessage(start, "end of input", label))
			}
			if r != want {
				return ErrEps[string](NewMessage(start, quoteRune(r), label))
			}
			c = c.Advance()
		}
		if len(runes) == 0 {
			return mkEps(s, start)
		}
		return OkConsumed(s, c)
	}
}

// Take consumes exactly n characters. If input runs out after at least
// one character was taken it fails with errConsumed; if input was
// already exhausted at the start it fails with errEps.
// Take(0) always succeeds with okEps("").
func Take(n int) Parser[string] {
	return func(start Cursor) Result[string] {
		if n == 0 {
			return mkEps("", start)
		}
		c := start
		for i := 0; i < n; i++ {
			if _, ok := c.Peek(); !ok {
				msg := NewMessage(c, "end of input", "")
				if c.Equal(start) {
					return ErrEps[string](msg)
				}
				return ErrConsumed[string](msg)
			}
			c = c.Advance()
		}
		return OkConsumed(textBetween(start, c), c)
	}
}

// TakeWhile greedily consumes runes while p holds. It never fails: an
// immediate predicate rejection yields okEps(""), otherwise okConsumed
// with the matched prefix.
func TakeWhile(p func(rune) bool) Parser[string] {
	return func(start Cursor) Result[string] {
		c := start
		for {
			r, ok := c.Peek()
			if !ok || !p(r) {
				break
			}
			c = c.Advance()
		}
		if c.Equal(start) {
			return mkEps("", start)
		}
		return OkConsumed(textBetween(start, c), c)
	}
}

// TakeWhile1 requires at least one matching rune: Satisfy(p) followed
// by TakeWhile(p).
func TakeWhile1(p func(rune) bool) Parser[string] {
	return Bind(Satisfy(p), func(first rune) Parser[string] {
		return Bind(TakeWhile(p), func(rest string) Parser[string] {
			return Pure(string(first) + rest)
		})
	})
}

// TakeUntil greedily consumes runes up to (but not including) the
// first rune for which stop holds. Mirrors TakeWhile with the
// predicate inverted; never fails.
func TakeUntil(stop func(rune) bool) Parser[string] {
	return TakeWhile(func(r rune) bool { return !stop(r) })
}

// TakeUntil1 requires at least one rune before the stop predicate
// holds.
func TakeUntil1(stop func(rune) bool) Parser[string] {
	return TakeWhile1(func(r rune) bool { return !stop(r) })
}

// EOI succeeds (okEps) iff no input remains.
func EOI() Parser[struct{}] {
	return Label(func(c Cursor) Result[struct{}] {
		if c.AtEnd() {
			return mkEps(struct{}{}, c)
		}
		r, _ := c.Peek()
		return ErrEps[struct{}](NewMessage(c, quoteRune(r), ""))
	}, "end of input")
}

// LeftOver returns the remaining, unconsumed substring without
// advancing the cursor.
func LeftOver() Parser[string] {
	return func(c Cursor) Result[string] {
		return mkEps(c.src.text[c.offset:], c)
	}
}

// Pos returns the current cursor without consuming input.
func Pos() Parser[Cursor] {
	return func(c Cursor) Result[Cursor] { return mkEps(c, c) }
}

// Remaining returns the number of runes left in the input without
// consuming it.
func Remaining() Parser[int] {
	return func(c Cursor) Result[int] { return mkEps(c.Remaining(), c) }
}

// Curr returns the rune under the cursor without consuming it; it
// fails at end of input.
func Curr() Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return ErrEps[rune](NewMessage(c, "end of input", ""))
		}
		return mkEps(r, c)
	}
}

func isSpacingRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// Whitespace consumes zero or more space/tab/CR/LF runes. Never fails.
func Whitespace() Parser[string] {
	return TakeWhile(isSpacingRune)
}

// Lexeme runs p, then discards any trailing whitespace, so grammars
// built on top of this core don't have to interleave Whitespace calls
// by hand between every token.
func Lexeme[A any](p Parser[A]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Bind(Whitespace(), func(string) Parser[A] {
			return Pure(a)
		})
	})
}

// Num matches one or more decimal digits, labelled "number".
func Num() Parser[string] {
	return Label(TakeWhile1(unicode.IsDigit), "number")
}

// Ensure runs p, then applies check to its value; it fails with label
// lbl if check rejects the value, without consuming beyond what p
// already consumed.
func Ensure[A any](p Parser[A], check func(A) bool, lbl string) Parser[A] {
	return func(c Cursor) Result[A] {
		r := p(c)
		if !r.IsOK() || check(r.Value()) {
			return r
		}
		msg := NewMessage(r.Cursor(), "value rejected by "+lbl, lbl)
		if r.Consumed() {
			return ErrConsumed[A](msg)
		}
		return ErrEps[A](msg)
	}
}

// Unexpected raises a user error at the current cursor with no
// expected-set, never consuming input.
func Unexpected[A any](description string) Parser[A] {
	return func(c Cursor) Result[A] {
		return ErrEps[A](NewMessage(c, description, ""))
	}
}

// UnexpectedAt raises a user error as if it had happened at cursor c,
// regardless of where the parser is actually run from. Useful for
// pointing an error back at a construct's start.
func UnexpectedAt[A any](c Cursor, description string) Parser[A] {
	return func(Cursor) Result[A] {
		return ErrEps[A](NewMessage(c, description, ""))
	}
}

// Error raises a user error carrying custom as the message's Custom
// payload.
func Error[A any](description string, custom any) Parser[A] {
	return func(c Cursor) Result[A] {
		msg := NewMessage(c, description, "")
		msg.Custom = custom
		return ErrEps[A](msg)
	}
}
