// Package picture turns slide images into terminal art: the image is scaled
// to fill a fixed box, centre-cropped, given rounded corners and drawn with
// half-block characters, two pixel rows per terminal row.
package picture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/webp"
)

// Box is the display area in terminal cells. Radius is the corner rounding
// in pixels.
type Box struct {
	Width  int
	Height int
	Radius int
}

// PixelSize is the pixel grid a box is drawn from.
func (b Box) PixelSize() (int, int) {
	return b.Width, b.Height * 2
}

// Load decodes an image from fsys.
func Load(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return img, nil
}
