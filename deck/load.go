package deck

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// --- Wire format ---

const deckVersion = 1

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatCSV
)

type slideDTO struct {
	Image   string `json:"image" yaml:"image"`
	Caption string `json:"caption" yaml:"caption"`
}

type deckDTO struct {
	Version int        `json:"version" yaml:"version"`
	Title   string     `json:"title,omitempty" yaml:"title,omitempty"`
	Slides  []slideDTO `json:"slides" yaml:"slides"`
}

func (s slideDTO) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Image, validation.Required, validation.By(validAssetPath)),
		validation.Field(&s.Caption, validation.Required),
	)
}

func validAssetPath(v any) error {
	p, _ := v.(string)
	if p == "" {
		return nil
	}
	if !fs.ValidPath(p) {
		return errors.New("must be a relative path inside the deck directory")
	}
	return nil
}

// FormatForPath picks a deck format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("unsupported deck extension %q (want .yaml, .yml, .json or .csv)", ext)
	}
}

// LoadFile reads a deck file. Image paths inside it are relative to the
// file's directory.
func LoadFile(path string) (*Deck, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	d, err := Decode(f, format, title, os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", path, err)
	}
	return d, nil
}

// Decode reads a deck in the given format. fallbackTitle is used when the
// document does not name itself.
func Decode(r io.Reader, format Format, fallbackTitle string, assets fs.FS) (*Deck, error) {
	var dto deckDTO
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&dto); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&dto); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatCSV:
		slides, err := readCSV(r)
		if err != nil {
			return nil, err
		}
		dto.Slides = slides
	default:
		return nil, fmt.Errorf("unknown deck format %d", format)
	}

	if dto.Version != 0 && dto.Version != deckVersion {
		return nil, fmt.Errorf("deck version %d not supported (want %d)", dto.Version, deckVersion)
	}
	if dto.Title == "" {
		dto.Title = fallbackTitle
	}
	return fromDTO(dto, assets)
}

func fromDTO(dto deckDTO, assets fs.FS) (*Deck, error) {
	if len(dto.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	slides := make([]Slide, 0, len(dto.Slides))
	for i, s := range dto.Slides {
		s.Image = strings.TrimSpace(s.Image)
		s.Caption = strings.TrimSpace(s.Caption)
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		if assets != nil {
			if _, err := fs.Stat(assets, s.Image); err != nil {
				return nil, fmt.Errorf("slide %d: image %q: %w", i+1, s.Image, err)
			}
		}
		slides = append(slides, Slide{Image: s.Image, Caption: s.Caption})
	}
	return New(dto.Title, slides, assets)
}

// readCSV expects a header row naming an "image" and a "caption" column, in
// any order. Other columns are ignored.
func readCSV(r io.Reader) ([]slideDTO, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDeck
	}

	imageCol, captionCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "image":
			imageCol = i
		case "caption":
			captionCol = i
		}
	}
	if imageCol < 0 || captionCol < 0 {
		return nil, errors.New("CSV header must name image and caption columns")
	}

	slides := make([]slideDTO, 0, len(records)-1)
	for _, rec := range records[1:] {
		var s slideDTO
		if imageCol < len(rec) {
			s.Image = rec[imageCol]
		}
		if captionCol < len(rec) {
			s.Caption = rec[captionCol]
		}
		if strings.TrimSpace(s.Image) == "" && strings.TrimSpace(s.Caption) == "" {
			continue
		}
		slides = append(slides, s)
	}
	return slides, nil
}
