package parsec

// Stack is the minimal capability contract required of an ambient
// effect M that hosts this parser: Lift embeds a pure parser into M,
// Map transforms a parser while preserving M's outer structure so
// combinators like Try can be expressed uniformly over composed
// effect stacks.
//
// Go has no higher-kinded type parameters, so Stack can't be a single
// generic interface parameterized over the value the effect eventually
// produces. Instead it is a pair of concrete callbacks the user
// supplies once for their chosen M, specialized to a single result
// type A at each use site.
type Stack[M any, A any] struct {
	// Lift embeds a pure cursor->Result function into M.
	Lift func(Parser[A]) M

	// Map transforms the Result a computation in M would produce,
	// returning a new M with that transformation applied, without the
	// core needing to know anything about M's internals.
	Map func(M, func(Result[A]) Result[A]) M
}

// LiftParser embeds p into the effect stack s.
func LiftParser[M any, A any](s Stack[M, A], p Parser[A]) M {
	return s.Lift(p)
}

// MapParser applies f to whatever Result the computation m in s's
// effect would produce, through s.Map.
func MapParser[M any, A any](s Stack[M, A], m M, f func(Result[A]) Result[A]) M {
	return s.Map(m, f)
}

// TryInStack reimplements Try for a parser already embedded in an
// effect stack: it rewrites an errConsumed Result to errEps through
// s.Map, exactly like the bare Try, without the core ever inspecting
// M directly. Any transformer that is itself liftable and
// functor-mappable inherits this for free by supplying a Stack.
func TryInStack[M any, A any](s Stack[M, A], m M) M {
	return s.Map(m, func(r Result[A]) Result[A] {
		if r.tag == tagErrConsumed {
			return ErrEps[A](r.Message())
		}
		return r
	})
}
