package deck

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCursor(t *testing.T) *Cursor {
	t.Helper()
	return NewCursor(Builtin())
}

func TestCursor_StartsAtFirstSlide(t *testing.T) {
	c := newTestCursor(t)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Position())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, "Arsenal", c.Current().Caption)
}

func TestCursor_AdvanceRetreatAreInverse(t *testing.T) {
	c := newTestCursor(t)
	for start := 0; start < c.Len(); start++ {
		require.NoError(t, c.Seek(start+1))

		c.Advance()
		c.Retreat()
		assert.Equal(t, start, c.Index(), "advance then retreat from %d", start)

		c.Retreat()
		c.Advance()
		assert.Equal(t, start, c.Index(), "retreat then advance from %d", start)
	}
}

func TestCursor_FullCycle(t *testing.T) {
	c := newTestCursor(t)
	for start := 0; start < c.Len(); start++ {
		require.NoError(t, c.Seek(start+1))
		for i := 0; i < c.Len(); i++ {
			c.Advance()
		}
		assert.Equal(t, start, c.Index())
	}
}

func TestCursor_WrapAround(t *testing.T) {
	c := newTestCursor(t)

	c.Retreat()
	assert.Equal(t, 4, c.Index(), "retreat from first wraps to last")
	assert.Equal(t, "Real Madrid", c.Current().Caption)

	c.Advance()
	assert.Equal(t, 0, c.Index(), "advance from last wraps to first")
}

func TestCursor_JumpToEverySlide(t *testing.T) {
	c := newTestCursor(t)
	for k := 1; k <= c.Len(); k++ {
		require.NoError(t, c.JumpTo(strconv.Itoa(k)))
		assert.Equal(t, k-1, c.Index())
	}
}

func TestCursor_JumpToTrimsInput(t *testing.T) {
	c := newTestCursor(t)
	require.NoError(t, c.JumpTo("  4 \t"))
	assert.Equal(t, 3, c.Index())
}

func TestCursor_JumpToInvalidInput(t *testing.T) {
	c := newTestCursor(t)
	c.Advance()

	for _, raw := range []string{"abc", "", "  ", "2.5", "3a", "one"} {
		err := c.JumpTo(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", raw)
		assert.Equal(t, 1, c.Index(), "cursor moved on %q", raw)
	}
}

func TestCursor_JumpToOutOfRange(t *testing.T) {
	c := newTestCursor(t)
	c.Advance()
	c.Advance()

	for _, raw := range []string{"0", "6", "-1", "100"} {
		err := c.JumpTo(raw)
		assert.ErrorIs(t, err, ErrOutOfRange, "input %q", raw)
		assert.NotErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 2, c.Index(), "cursor moved on %q", raw)
	}
}

func TestCursor_EndToEnd(t *testing.T) {
	c := newTestCursor(t)
	assert.Equal(t, 1, c.Position())

	c.Advance()
	assert.Equal(t, 2, c.Position())

	for i := 0; i < 4; i++ {
		c.Advance()
	}
	assert.Equal(t, 1, c.Position())

	c.Retreat()
	assert.Equal(t, 5, c.Position())

	require.NoError(t, c.JumpTo("3"))
	assert.Equal(t, 2, c.Index())
}

func TestDeck_SlidesAreCopies(t *testing.T) {
	d := Builtin()
	s := d.Slides()
	s[0].Caption = "changed"

	got := d.At(0)
	got.Caption = "changed too"

	assert.Equal(t, "Arsenal", d.At(0).Caption)
}

func TestNew_RejectsEmptyDeck(t *testing.T) {
	_, err := New("x", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}
