package config

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func init() {
	// Report fields by their YAML keys.
	validation.ErrorTag = "yaml"
}

// Config represents the application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Deck    DeckConfig    `yaml:"deck"`
	Display DisplayConfig `yaml:"display"`
	Tracing TracingConfig `yaml:"tracing"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Deck.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Tracing.Validate()
}

// AppConfig holds logging settings. An empty LogFile disables logging.
type AppConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// DeckConfig selects the slides. An empty Path means the built-in deck.
// Start is the one-based slide shown first.
type DeckConfig struct {
	Path  string `yaml:"path"`
	Start int    `yaml:"start"`
}

func (c *DeckConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Start, validation.Required, validation.Min(1)),
	)
}

// DisplayConfig sizes the image box in terminal cells.
type DisplayConfig struct {
	ImageWidth     int           `yaml:"image_width"`
	ImageHeight    int           `yaml:"image_height"`
	CornerRadius   int           `yaml:"corner_radius"`
	NoticeDuration time.Duration `yaml:"notice_duration"`
}

func (c *DisplayConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ImageWidth, validation.Required, validation.Min(8), validation.Max(400)),
		validation.Field(&c.ImageHeight, validation.Required, validation.Min(4), validation.Max(200)),
		validation.Field(&c.CornerRadius, validation.Min(0)),
		validation.Field(&c.NoticeDuration, validation.Required, validation.Min(100*time.Millisecond)),
	)
}

// TracingConfig enables OTLP/HTTP export of navigation spans when Endpoint
// is set.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

func (c *TracingConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServiceName, validation.Required),
	)
}

// Enabled reports whether spans are exported.
func (c *TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}

// NewDefaultConfig returns a Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel: slog.LevelInfo,
		},
		Deck: DeckConfig{
			Start: 1,
		},
		Display: DisplayConfig{
			ImageWidth:     48,
			ImageHeight:    14,
			CornerRadius:   3,
			NoticeDuration: 2 * time.Second,
		},
		Tracing: TracingConfig{
			ServiceName: "siftly-slideshow",
			Insecure:    true,
		},
	}
}
