package parsec

// Bind sequences p then q, threading p's resulting cursor into q and
// reconciling the two outcomes: consumed dominates epsilon, and when
// both sides are epsilon their expected-sets union so the caller sees
// everything that could have continued a zero-width parse.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(c Cursor) Result[B] {
		r1 := p(c)
		if !r1.IsOK() {
			// error propagates unchanged, whichever flavor it is.
			if r1.Consumed() {
				return ErrConsumed[B](r1.Message())
			}
			return ErrEps[B](r1.Message())
		}

		q := f(r1.Value())
		r2 := q(r1.Cursor())

		switch {
		case r1.tag == tagOkConsumed:
			// consumed dominates: promote q's outcome to consumed,
			// discarding any epsilon expected-set it carried.
			if r2.IsOK() {
				return OkConsumed(r2.Value(), r2.Cursor())
			}
			return ErrConsumed[B](r2.Message())

		default: // r1.tag == tagOkEps
			ex1 := r1.Expected()
			switch {
			case r2.tag == tagOkConsumed:
				return OkConsumed(r2.Value(), r2.Cursor())
			case r2.tag == tagOkEps:
				return OkEps(r2.Value(), r2.Cursor(), ex1.union(r2.Expected()))
			case r2.tag == tagErrEps:
				msg := r2.Message()
				return ErrEps[B](msg.withExpected(ex1.union(msg.expected)))
			default: // errConsumed
				return ErrConsumed[B](r2.Message())
			}
		}
	}
}

// Then sequences p then q, discarding p's value (Parsec's `*>`).
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Before sequences p then q, discarding q's value (Parsec's `<*`).
func Before[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Bind(q, func(B) Parser[A] { return Pure(a) })
	})
}

// Map transforms a parser's value on success, preserving its
// consumed/epsilon classification.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c Cursor) Result[B] { return mapResult(p(c), f) }
}

// OrElse tries p; if p succeeded or consumed input (success or
// failure), its result is returned unchanged. Only on errEps is q
// tried, from the original cursor. There is no backtracking across
// consumed input by default, the caller opts in with Try.
func OrElse[A any](p, q Parser[A]) Parser[A] {
	return func(c Cursor) Result[A] {
		r1 := p(c)
		if r1.tag != tagErrEps {
			return r1
		}
		msg1 := r1.Message()

		r2 := q(c)
		switch r2.tag {
		case tagOkConsumed:
			return r2
		case tagOkEps:
			return OkEps(r2.Value(), r2.Cursor(), msg1.expected.union(r2.Expected()))
		case tagErrEps:
			return ErrEps[A](merge(msg1, r2.Message()))
		default: // errConsumed
			return r2
		}
	}
}

// Try rewrites p's outcome so a consumed error becomes an epsilon
// error (recoverable by OrElse). All other outcomes pass through
// unchanged; in particular Try never turns an okConsumed into an
// okEps, and Try(Try(p)) behaves exactly like Try(p).
func Try[A any](p Parser[A]) Parser[A] {
	return func(c Cursor) Result[A] {
		r := p(c)
		if r.tag == tagErrConsumed {
			return ErrEps[A](r.Message())
		}
		return r
	}
}

// Lookahead runs p; on success (either kind) it returns okEps with the
// *original* cursor and an empty expected-set, so the cursor is always
// exactly where it was before the call. On failure it passes through.
func Lookahead[A any](p Parser[A]) Parser[A] {
	return func(c Cursor) Result[A] {
		r := p(c)
		if !r.IsOK() {
			return r
		}
		return mkEps(r.Value(), c)
	}
}

// Label overrides p's expected-set with a single label lbl. On okEps
// it replaces the pending expected-set; on errEps it replaces the
// message's expected-set. Consumed outcomes (okConsumed, errConsumed)
// pass through unchanged: a parser that has committed to a specific
// parse should not have its report relabeled.
func Label[A any](p Parser[A], lbl string) Parser[A] {
	return Labels(p, []string{lbl})
}

// Labels is Label generalized to a set of labels at once.
func Labels[A any](p Parser[A], lbls []string) Parser[A] {
	set := labelSet(lbls)
	return func(c Cursor) Result[A] {
		r := p(c)
		switch r.tag {
		case tagOkEps:
			return r.withExpected(set)
		case tagErrEps:
			return ErrEps[A](r.Message().withExpected(set))
		default:
			return r
		}
	}
}

// Hidden is Labels(p, nil): it suppresses p's expected-set entirely
// rather than replacing it with something to report.
func Hidden[A any](p Parser[A]) Parser[A] {
	return Labels(p, nil)
}

// NotFollowedBy succeeds (okEps, nothing consumed) only if p would
// fail at the current cursor; it fails with description desc if p
// would succeed. Grounded on Lookahead(Try(p)) catching p's errors.
func NotFollowedBy[A any](p Parser[A], desc string) Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		r := Lookahead(Try(p))(c)
		if r.IsOK() {
			return ErrEps[struct{}](NewMessage(c, desc, ""))
		}
		return mkEps(struct{}{}, c)
	}
}

// Observed is the value-level reification of a parser outcome, as
// produced by Observing.
type Observed[A any] struct {
	Ok     A
	Err    Message
	Failed bool
}

// Observing runs p; if it fails, the result is an okEps value
// carrying the failure as data; if it succeeds, it mirrors p's own
// success shape (consumed or epsilon) with an Observed wrapping the
// value. A consumed success stays okConsumed rather than being
// flattened to okEps, so callers downstream of Observing still see
// how much input was actually consumed; don't "fix" this to always
// return okEps.
func Observing[A any](p Parser[A]) Parser[Observed[A]] {
	return func(c Cursor) Result[Observed[A]] {
		r := p(c)
		if r.IsOK() {
			return mapResult(r, func(a A) Observed[A] { return Observed[A]{Ok: a} })
		}
		return mkEps(Observed[A]{Err: r.Message(), Failed: true}, c)
	}
}
