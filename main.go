package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/andareed/siftly-slideshow/config"
	"github.com/andareed/siftly-slideshow/deck"
	"github.com/andareed/siftly-slideshow/logging"
	"github.com/andareed/siftly-slideshow/tracing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

var Version = "dev"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewDefaultConfig()
	if err := loadConfig(cmd, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if p := cmd.String("deck"); p != "" {
		cfg.Deck.Path = p
	}
	if f := cmd.String("debug"); f != "" {
		cfg.App.LogFile = f
		cfg.App.LogLevel = slog.LevelDebug
	}

	// Anything below here writes to the log file, never the terminal.
	cleanup, err := logging.SetupLogging(cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()

	logging.Infof("siftly-slideshow %s: Started", Version)

	d, err := loadDeck(cfg.Deck.Path)
	if err != nil {
		return err
	}

	recorder, shutdown, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to setup tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logging.Warnf("tracing shutdown: %v", err)
		}
	}()

	m, err := newModel(ctx, d, cfg, lipgloss.ColorProfile(), recorder)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return fmt.Errorf("tea program: %w", err)
	}
	return nil
}

// loadConfig reads the config file. The default path may be absent; an
// explicitly chosen one may not.
func loadConfig(cmd *cli.Command, cfg *config.Config) error {
	path := cmd.String("config")
	if cmd.IsSet("config") {
		return config.Load(path, cfg)
	}
	return config.LoadOptional(path, cfg)
}

func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Builtin(), nil
	}
	d, err := deck.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	logging.Infof("Loaded deck %q with %d slides", d.Title(), d.Len())
	return d, nil
}

func main() {
	cmd := &cli.Command{
		Name:    "slideshow",
		Usage:   "Step through a fixed deck of captioned images in the terminal",
		Version: Version,
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config.yaml",
				Value:       "config.yaml",
				Sources:     cli.EnvVars("SLIDESHOW_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "deck",
				Aliases: []string{"d"},
				Usage:   "Deck file (.yaml, .json or .csv); the built-in deck when empty",
				Sources: cli.EnvVars("SLIDESHOW_DECK"),
			},
			&cli.StringFlag{
				Name:  "debug",
				Usage: "Write debug logs to file",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
