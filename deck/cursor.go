package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Cursor is the index of the slide on screen. It is always a valid index
// into its deck.
type Cursor struct {
	deck  *Deck
	index int
}

func NewCursor(d *Deck) *Cursor {
	return &Cursor{deck: d}
}

func (c *Cursor) Deck() *Deck { return c.deck }

// Index is zero-based.
func (c *Cursor) Index() int { return c.index }

// Position is the one-based slide number shown to the user.
func (c *Cursor) Position() int { return c.index + 1 }

func (c *Cursor) Len() int { return c.deck.Len() }

func (c *Cursor) Current() Slide { return c.deck.At(c.index) }

// Advance moves to the next slide, wrapping from the last to the first.
func (c *Cursor) Advance() {
	c.index = (c.index + 1) % c.deck.Len()
}

// Retreat moves to the previous slide, wrapping from the first to the last.
func (c *Cursor) Retreat() {
	if c.index == 0 {
		c.index = c.deck.Len() - 1
		return
	}
	c.index--
}

// JumpTo parses raw as a one-based slide number and moves there. On error the
// cursor is left where it was.
func (c *Cursor) JumpTo(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	return c.Seek(n)
}

// Seek moves to the one-based slide n.
func (c *Cursor) Seek(n int) error {
	if n < 1 || n > c.deck.Len() {
		return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, n, c.deck.Len())
	}
	c.index = n - 1
	return nil
}
