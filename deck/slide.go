package deck

import (
	"fmt"
	"io/fs"
)

// Slide is one image and its caption. Image is a path inside the deck's assets.
type Slide struct {
	Image   string
	Caption string
}

// Deck is the fixed, ordered slide store. It is built once at startup and
// has no methods that change it.
type Deck struct {
	title  string
	slides []Slide
	assets fs.FS
}

// New copies slides into a deck whose image references resolve against assets.
func New(title string, slides []Slide, assets fs.FS) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	if title == "" {
		title = DefaultTitle
	}
	return &Deck{
		title:  title,
		slides: append([]Slide(nil), slides...),
		assets: assets,
	}, nil
}

func (d *Deck) Title() string { return d.title }
func (d *Deck) Len() int      { return len(d.slides) }
func (d *Deck) Assets() fs.FS { return d.assets }

// At returns a copy of slide i. It panics if i is not a valid index, which a
// Cursor never produces.
func (d *Deck) At(i int) Slide {
	if i < 0 || i >= len(d.slides) {
		panic(fmt.Sprintf("deck: index %d out of range [0,%d)", i, len(d.slides)))
	}
	return d.slides[i]
}

// Slides returns a copy of all slides in order.
func (d *Deck) Slides() []Slide {
	return append([]Slide(nil), d.slides...)
}
