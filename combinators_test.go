package parsec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindMonadLaws(t *testing.T) {
	toStr := func(n int) Parser[string] { return Pure(strconv.Itoa(n)) }

	t.Run("left identity: bind(pure(a), f) == f(a)", func(t *testing.T) {
		r1 := Bind(Pure(5), toStr)(NewCursor("x"))
		r2 := toStr(5)(NewCursor("x"))
		assert.Equal(t, r2.Value(), r1.Value())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
	})

	t.Run("right identity: bind(p, pure) == p", func(t *testing.T) {
		p := Digit()
		r1 := Bind(p, func(r rune) Parser[rune] { return Pure(r) })(NewCursor("7"))
		r2 := p(NewCursor("7"))
		assert.Equal(t, r2.Value(), r1.Value())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
	})

	t.Run("associativity: bind(bind(p,f),g) == bind(p, a => bind(f(a),g))", func(t *testing.T) {
		p := Digit()
		f := func(r rune) Parser[string] { return Pure(string(r) + "!") }
		g := func(s string) Parser[string] { return Pure(s + "?") }

		left := Bind(Bind(p, f), g)(NewCursor("3"))
		right := Bind(p, func(a rune) Parser[string] { return Bind(f(a), g) })(NewCursor("3"))
		assert.Equal(t, right.Value(), left.Value())
	})

	t.Run("consumed dominates: p consumes, q is epsilon failure => errConsumed", func(t *testing.T) {
		p := Ch('a')
		r := Bind(p, func(rune) Parser[int] { return Failure[int]() })(NewCursor("ab"))
		require.False(t, r.IsOK())
		assert.True(t, r.Consumed())
	})

	t.Run("both epsilon: expected sets union", func(t *testing.T) {
		p := Label(Pure(1), "x") // okEps pending expected-set {"x"}
		q := Label(Failure[int](), "y")
		r := Bind(p, func(int) Parser[int] { return q })(NewCursor(""))
		require.False(t, r.IsOK())
		assert.False(t, r.Consumed())
		assert.Equal(t, []string{"x", "y"}, r.Message().Expected())
	})
}

func TestOrElseIdentityLaws(t *testing.T) {
	t.Run("p <|> failure == p, when p succeeds", func(t *testing.T) {
		p := Ch('a')
		r1 := OrElse(p, Failure[rune]())(NewCursor("ab"))
		r2 := p(NewCursor("ab"))
		assert.Equal(t, r2.Value(), r1.Value())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
	})

	t.Run("p <|> failure == p, when p fails epsilon", func(t *testing.T) {
		p := Ch('a')
		r1 := OrElse(p, Failure[rune]())(NewCursor("b"))
		r2 := p(NewCursor("b"))
		assert.Equal(t, r2.IsOK(), r1.IsOK())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
		assert.Equal(t, r2.Message().Cursor, r1.Message().Cursor)
		// exact message equality holds in this direction: p is tried
		// first, so failure contributes nothing p's own message lacks.
		assert.Equal(t, r2.Message().Unexpected, r1.Message().Unexpected)
	})

	t.Run("failure <|> p == p, when p succeeds", func(t *testing.T) {
		p := Ch('a')
		r1 := OrElse(Failure[rune](), p)(NewCursor("ab"))
		r2 := p(NewCursor("ab"))
		assert.Equal(t, r2.Value(), r1.Value())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
	})

	t.Run("failure <|> p, when p also fails epsilon: cursor/tag match but message is merge-biased", func(t *testing.T) {
		p := Ch('a')
		r1 := OrElse(Failure[rune](), p)(NewCursor("b"))
		r2 := p(NewCursor("b"))
		// classification agrees...
		assert.Equal(t, r2.IsOK(), r1.IsOK())
		assert.Equal(t, r2.Consumed(), r1.Consumed())
		assert.Equal(t, r2.Message().Cursor, r1.Message().Cursor)
		// ...but merge keeps the first-tried branch's Unexpected text,
		// so failure's generic "failure" wins over p's "'b'" here. This
		// is the one sub-case where exact message equality does not
		// hold; it mirrors Parsec's own left-biased merge order.
		assert.Equal(t, "failure", r1.Message().Unexpected)
		assert.NotEqual(t, r2.Message().Unexpected, r1.Message().Unexpected)
	})

	t.Run("no backtracking across consumed input without Try", func(t *testing.T) {
		// Ch('a') consumes 'a', then Ch('b') fails on 'c': errConsumed.
		r := OrElse(Then(Ch('a'), Ch('b')), Ch('a'))(NewCursor("ac"))
		require.False(t, r.IsOK())
		assert.True(t, r.Consumed(), "without Try, OrElse must not recover from a consumed error")
	})

	t.Run("Try enables backtracking across consumed input", func(t *testing.T) {
		v, err := Parse(OrElse(Try(Then(Ch('a'), Ch('b'))), Then(Ch('a'), Ch('c'))), "ac")
		require.NoError(t, err)
		assert.Equal(t, 'c', v)
	})
}

func TestTryIdempotence(t *testing.T) {
	p := Then(Ch('a'), Ch('z'))
	r1 := Try(p)(NewCursor("ax"))
	r2 := Try(Try(p))(NewCursor("ax"))
	assert.Equal(t, r1.Consumed(), r2.Consumed())
	assert.Equal(t, r1.IsOK(), r2.IsOK())
	assert.False(t, r1.Consumed(), "Try must turn a consumed error into epsilon")
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	c := NewCursor("abc")
	r := Lookahead(Str("ab"))(c)
	require.True(t, r.IsOK())
	assert.False(t, r.Consumed())
	assert.Equal(t, c, r.Cursor())

	r2 := Lookahead(Str("xy"))(c)
	require.False(t, r2.IsOK())
}

func TestLabelReplacement(t *testing.T) {
	t.Run("replaces the expected-set on an epsilon failure", func(t *testing.T) {
		r := Label(Digit(), "a digit please")(NewCursor("x"))
		require.False(t, r.IsOK())
		assert.Equal(t, []string{"a digit please"}, r.Message().Expected())
	})

	t.Run("consumed outcomes pass through unchanged", func(t *testing.T) {
		p := Then(Ch('a'), Digit())
		r := Label(p, "never seen")(NewCursor("ax"))
		require.False(t, r.IsOK())
		assert.True(t, r.Consumed())
		assert.NotContains(t, r.Message().Expected(), "never seen")
	})

	t.Run("Hidden suppresses the expected-set entirely", func(t *testing.T) {
		r := Hidden(Digit())(NewCursor("x"))
		require.False(t, r.IsOK())
		assert.Empty(t, r.Message().Expected())
	})
}

func TestNotFollowedBy(t *testing.T) {
	r := NotFollowedBy(Ch('a'), "must not be followed by 'a'")(NewCursor("bcd"))
	require.True(t, r.IsOK())
	assert.False(t, r.Consumed())

	r2 := NotFollowedBy(Ch('a'), "must not be followed by 'a'")(NewCursor("abc"))
	require.False(t, r2.IsOK())
	assert.False(t, r2.Consumed())
}

func TestObserving(t *testing.T) {
	t.Run("success is reified without Failed", func(t *testing.T) {
		r := Observing(Ch('a'))(NewCursor("ab"))
		require.True(t, r.IsOK())
		obs := r.Value()
		assert.False(t, obs.Failed)
		assert.Equal(t, 'a', obs.Ok)
	})

	t.Run("failure never escapes: it is captured as data", func(t *testing.T) {
		r := Observing(Ch('a'))(NewCursor("zz"))
		require.True(t, r.IsOK())
		assert.False(t, r.Consumed())
		obs := r.Value()
		assert.True(t, obs.Failed)
		assert.Equal(t, "'z'", obs.Err.Unexpected)
	})
}
