package main

import (
	"github.com/andareed/siftly-slideshow/deck"
	"github.com/andareed/siftly-slideshow/picture"
)

type dataState struct {
	cursor *deck.Cursor
	images *picture.Renderer
	box    picture.Box
}
