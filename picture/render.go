package picture

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

var shades = []rune(" ░▒▓█")

// Renderer draws the images of one asset tree for one colour profile and
// remembers what it has already drawn. It is not safe for concurrent use.
type Renderer struct {
	profile termenv.Profile
	assets  fs.FS
	cache   map[cacheKey]string
}

type cacheKey struct {
	name string
	box  Box
}

func NewRenderer(profile termenv.Profile, assets fs.FS) *Renderer {
	return &Renderer{
		profile: profile,
		assets:  assets,
		cache:   make(map[cacheKey]string),
	}
}

// RenderFile loads name from the asset tree and draws it into box. Results
// are cached per file and box size.
func (r *Renderer) RenderFile(name string, box Box) (string, error) {
	key := cacheKey{name: name, box: box}
	if s, ok := r.cache[key]; ok {
		return s, nil
	}

	img, err := Load(r.assets, name)
	if err != nil {
		return "", err
	}
	w, h := box.PixelSize()
	canvas := Fill(img, w, h)
	RoundCorners(canvas, box.Radius)

	s := r.Render(canvas)
	r.cache[key] = s
	return s, nil
}

// Render draws img with half blocks. Fully transparent pixels are left as
// terminal background.
func (r *Renderer) Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			var bottom color.Color = color.Transparent
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			r.writeCell(&sb, top, bottom)
		}
	}
	return sb.String()
}

func (r *Renderer) writeCell(sb *strings.Builder, top, bottom color.Color) {
	if r.profile == termenv.Ascii {
		sb.WriteRune(shade(top, bottom))
		return
	}

	topOn, bottomOn := opaque(top), opaque(bottom)
	sb.WriteString(reset)
	switch {
	case topOn && bottomOn:
		sb.WriteString(r.seq(top, false))
		sb.WriteString(r.seq(bottom, true))
		sb.WriteString(upperHalf)
	case topOn:
		sb.WriteString(r.seq(top, false))
		sb.WriteString(upperHalf)
	case bottomOn:
		sb.WriteString(r.seq(bottom, false))
		sb.WriteString(lowerHalf)
	default:
		sb.WriteByte(' ')
	}
	sb.WriteString(reset)
}

var reset = termenv.CSI + termenv.ResetSeq + "m"

func (r *Renderer) seq(c color.Color, bg bool) string {
	s := r.profile.Color(hexColor(c)).Sequence(bg)
	if s == "" {
		return ""
	}
	return termenv.CSI + s + "m"
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func opaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a >= 0x8000
}

// shade maps the mean luminance of two pixels onto a block shade character.
func shade(top, bottom color.Color) rune {
	l := (luminance(top) + luminance(bottom)) / 2
	i := int(l*float64(len(shades)-1) + 0.5)
	return shades[i]
}

func luminance(c color.Color) float64 {
	if !opaque(c) {
		return 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return (0.2126*float64(n.R) + 0.7152*float64(n.G) + 0.0722*float64(n.B)) / 255
}

// Placeholder fills box with a rounded frame naming what could not be shown.
func Placeholder(box Box, label string) string {
	w, h := box.Width-2, box.Height-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("245")).
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}
