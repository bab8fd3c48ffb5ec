package parsec

// Repetition combinators are bounded by an explicit fuel counter equal
// to the remaining character count of the input at the point
// repetition starts. Each iteration that actually makes progress
// consumes at least one character, so fuel is a hard upper bound on
// the number of iterations even when p is capable of epsilon success.
// That is what guarantees termination.

// Many1 matches p one or more times: p once unconditionally, then as
// many more times as fuel (the remaining character count after that
// first match) allows. Fuel is decremented on every subsequent
// iteration, progressing or not. That bounds a p capable of epsilon
// success to finitely many repetitions instead of looping forever.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return func(start Cursor) Result[[]A] {
		r := p(start)
		if !r.IsOK() {
			if r.Consumed() {
				return ErrConsumed[[]A](r.Message())
			}
			return ErrEps[[]A](r.Message())
		}

		out := []A{r.Value()}
		c := r.Cursor()
		consumedAny := r.tag == tagOkConsumed

		for fuel := c.Remaining(); fuel > 0; fuel-- {
			next := p(c)
			if !next.IsOK() {
				if next.Consumed() {
					return ErrConsumed[[]A](next.Message())
				}
				break
			}
			out = append(out, next.Value())
			c = next.Cursor()
			if next.tag == tagOkConsumed {
				consumedAny = true
			}
		}

		if consumedAny {
			return OkConsumed(out, c)
		}
		return OkEps(out, start, emptySet())
	}
}

// Many matches p zero or more times.
func Many[A any](p Parser[A]) Parser[[]A] {
	return OrElse(Many1(p), Pure[[]A](nil))
}

// SepBy1 matches p, then zero or more occurrences of (sep then p).
func SepBy1[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return Bind(p, func(first A) Parser[[]A] {
		return Bind(Many(Then(sep, p)), func(rest []A) Parser[[]A] {
			return Pure(append([]A{first}, rest...))
		})
	})
}

// SepBy matches zero or more occurrences of p separated by sep.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return OrElse(SepBy1(p, sep), Pure[[]A](nil))
}

// FoldR folds zero or more occurrences of p from the right: for input
// matching p n times producing v1..vn, it returns f(v1, f(v2, ...
// f(vn, b)...)).
func FoldR[A, B any](f func(A, B) B, p Parser[A], b B) Parser[B] {
	return Bind(Many(p), func(vs []A) Parser[B] {
		acc := b
		for i := len(vs) - 1; i >= 0; i-- {
			acc = f(vs[i], acc)
		}
		return Pure(acc)
	})
}

// FoldL folds zero or more occurrences of p from the left: it returns
// f(...f(f(a, v1), v2)..., vn).
func FoldL[A, B any](f func(B, A) B, a B, p Parser[A]) Parser[B] {
	return Bind(Many(p), func(vs []A) Parser[B] {
		acc := a
		for _, v := range vs {
			acc = f(acc, v)
		}
		return Pure(acc)
	})
}

// SkipMany matches p zero or more times, discarding its values. A
// direct corollary of Many with no accumulation, used for skipping
// whitespace/comments between tokens.
func SkipMany[A any](p Parser[A]) Parser[struct{}] {
	return Map(Many(p), func([]A) struct{} { return struct{}{} })
}

// SkipMany1 matches p one or more times, discarding its values.
func SkipMany1[A any](p Parser[A]) Parser[struct{}] {
	return Map(Many1(p), func([]A) struct{} { return struct{}{} })
}

// Fix defines a recursive parser without tying a knot in the language:
// f is applied to itself, fuel deep, bottoming out in a parser that
// always fails with "no progress" once fuel is exhausted. Fuel is
// remaining + 1 so a single top-level reference to the fixed point
// still has an application left after every character is consumed.
func Fix[A any](f func(Parser[A]) Parser[A]) Parser[A] {
	return func(c Cursor) Result[A] {
		fuel := c.Remaining() + 1
		p := noProgress[A]()
		for i := 0; i < fuel; i++ {
			p = f(p)
		}
		return p(c)
	}
}

func noProgress[A any]() Parser[A] {
	return func(c Cursor) Result[A] {
		return ErrEps[A](NewMessage(c, "no progress", ""))
	}
}
