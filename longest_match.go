package parsec

// LongestMatch runs every parser in ps from the same starting cursor,
// each isolated via Try so none of them can affect the real cursor or
// each other, however much of the input they consume.
//
//   - If any succeed, it returns the values of whichever parsers
//     advanced furthest (strictly greatest end offset), in ps's
//     original order; on a tie the earlier parser's value leads.
//   - If none succeed, it returns the error whose cursor is furthest
//     advanced; on a tie, messages are merged.
//
// After aggregation, the real cursor is advanced to the furthest
// offset reached. The outcome is tagged consumed iff that furthest
// offset is strictly past the starting cursor.
func LongestMatch[A any](ps []Parser[A]) Parser[[]A] {
	return func(start Cursor) Result[[]A] {
		if len(ps) == 0 {
			return ErrEps[[]A](NewMessage(start, "no alternatives", ""))
		}

		type success struct {
			value A
			end   Cursor
		}
		var (
			successes   []success
			failMsg     Message
			haveFailure bool
		)

		for _, p := range ps {
			// Try isolates each candidate from the others: a
			// consumed error can't poison the comparison, and
			// because every candidate starts fresh from the same
			// cursor (parsers are pure functions of their input),
			// this already gives each one Lookahead's isolation
			// without discarding the end cursor a plain Lookahead
			// would reset away.
			r := Try(p)(start)
			if r.IsOK() {
				successes = append(successes, success{value: r.Value(), end: r.Cursor()})
				continue
			}
			if !haveFailure || r.Message().Cursor.Offset() > failMsg.Cursor.Offset() {
				failMsg = r.Message()
				haveFailure = true
			} else if r.Message().Cursor.Offset() == failMsg.Cursor.Offset() {
				failMsg = merge(failMsg, r.Message())
			}
		}

		if len(successes) == 0 {
			if failMsg.Cursor.Offset() > start.Offset() {
				return ErrConsumed[[]A](failMsg)
			}
			return ErrEps[[]A](failMsg)
		}

		furthest := successes[0].end.Offset()
		for _, s := range successes[1:] {
			if s.end.Offset() > furthest {
				furthest = s.end.Offset()
			}
		}

		var (
			values  []A
			endHere Cursor
		)
		for _, s := range successes {
			if s.end.Offset() == furthest {
				values = append(values, s.value)
				endHere = s.end
			}
		}

		if furthest > start.Offset() {
			return OkConsumed(values, endHere)
		}
		return OkEps(values, start, emptySet())
	}
}
