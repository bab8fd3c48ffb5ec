package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedSetDifferenceList(t *testing.T) {
	t.Run("union concatenates in first-seen order", func(t *testing.T) {
		a := singleton("digit")
		b := singleton("letter")
		assert.Equal(t, []string{"digit", "letter"}, a.union(b).materialize())
	})

	t.Run("materialize de-duplicates, keeping first occurrence", func(t *testing.T) {
		a := labelSet([]string{"x", "y"})
		b := labelSet([]string{"y", "z"})
		assert.Equal(t, []string{"x", "y", "z"}, a.union(b).materialize())
	})

	t.Run("empty labels are dropped", func(t *testing.T) {
		assert.Empty(t, singleton("").materialize())
		assert.Equal(t, []string{"a"}, singleton("").union(singleton("a")).materialize())
	})

	t.Run("union is O(1): deep chains never rebuild earlier labels", func(t *testing.T) {
		set := singleton("l0")
		for i := 1; i < 1000; i++ {
			set = set.union(singleton("l" + string(rune('0'+i%10))))
		}
		// this is a smoke test that materialize terminates and returns
		// a de-duplicated, bounded-size result even after many unions.
		assert.LessOrEqual(t, len(set.materialize()), 10)
	})
}

func TestMessageMerge(t *testing.T) {
	c := NewCursor("abc")
	m1 := NewMessage(c, "'x'", "a")
	m2 := NewMessage(c, "'y'", "b")

	merged := merge(m1, m2)
	assert.Equal(t, "'x'", merged.Unexpected, "merge keeps m1's unexpected text")
	assert.Equal(t, c, merged.Cursor, "merge keeps m1's cursor")
	assert.Equal(t, []string{"a", "b"}, merged.Expected())
}

func TestMessageAsError(t *testing.T) {
	c := NewCursor("abc")
	msg := NewMessage(c, "'z'", "digit")
	err := msg.AsError()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected 'z'")
	assert.Contains(t, err.Error(), "expected digit")
}
