package deck

import (
	"embed"
	"io/fs"
)

const DefaultTitle = "Slideshow"

//go:embed assets/*.png
var builtinAssets embed.FS

var builtinSlides = []Slide{
	{Image: "arsenal_logo.png", Caption: "Arsenal"},
	{Image: "barca_logo.png", Caption: "Barcelona"},
	{Image: "bayern_logo.png", Caption: "Bayern Munich"},
	{Image: "liverpool_logo.png", Caption: "Liverpool"},
	{Image: "madrid_logo.png", Caption: "Real Madrid"},
}

// Builtin returns the sample deck compiled into the binary.
func Builtin() *Deck {
	assets, err := fs.Sub(builtinAssets, "assets")
	if err != nil {
		panic(err)
	}
	d, err := New(DefaultTitle, builtinSlides, assets)
	if err != nil {
		panic(err)
	}
	return d
}
