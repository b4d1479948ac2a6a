package picture

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Fill scales src to cover a w×h canvas and crops the overflow evenly from
// both sides, keeping the aspect ratio.
func Fill(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if w <= 0 || h <= 0 || sb.Empty() {
		return dst
	}

	sw, sh := sb.Dx(), sb.Dy()
	crop := sb
	// Compare aspect ratios without floats: sw/sh against w/h.
	if sw*h > w*sh {
		cw := sh * w / h
		if cw < 1 {
			cw = 1
		}
		x0 := sb.Min.X + (sw-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	} else if sw*h < w*sh {
		ch := sw * h / w
		if ch < 1 {
			ch = 1
		}
		y0 := sb.Min.Y + (sh-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// RoundCorners clears the pixels outside a circle of the given radius in
// each corner of img.
func RoundCorners(img *image.RGBA, radius int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	if radius <= 0 {
		return
	}

	r2 := float64(radius * radius)
	none := color.RGBA{}
	for y := 0; y < radius; y++ {
		for x := 0; x < radius; x++ {
			dx := float64(radius-x) - 0.5
			dy := float64(radius-y) - 0.5
			if dx*dx+dy*dy <= r2 {
				continue
			}
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, none)
			img.SetRGBA(b.Max.X-1-x, b.Min.Y+y, none)
			img.SetRGBA(b.Min.X+x, b.Max.Y-1-y, none)
			img.SetRGBA(b.Max.X-1-x, b.Max.Y-1-y, none)
		}
	}
}
