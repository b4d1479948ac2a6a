package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled because the TUI owns the terminal.
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string, level slog.Level) (cleanup func(), err error) {
	if filename == "" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		debugMode = false
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		AddSource: level <= slog.LevelDebug,
		Level:     level,
	}))
	debugMode = level <= slog.LevelDebug

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// Logger returns the process logger.
func Logger() *slog.Logger { return logger }

// IsDebugMode reports whether debug output is being written.
func IsDebugMode() bool { return debugMode }

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

func Debugf(format string, args ...any) { logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { logger.Error(fmt.Sprintf(format, args...)) }
