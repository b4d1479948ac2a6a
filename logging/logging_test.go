package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Disabled(t *testing.T) {
	cleanup, err := SetupLogging("", slog.LevelDebug)
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, IsDebugMode())
	Infof("dropped %d", 1)
}

func TestSetupLogging_WritesFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path, slog.LevelInfo)
	require.NoError(t, err)

	assert.False(t, IsDebugMode())
	Debugf("hidden %s", "detail")
	Infof("slide %d/%d", 2, 5)
	Warnf("careful")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "slide 2/5")
	assert.Contains(t, out, "level=WARN")
	assert.NotContains(t, out, "hidden detail")

	_, err = SetupLogging("", slog.LevelInfo)
	require.NoError(t, err)
}

func TestSetupLogging_DebugMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path, slog.LevelDebug)
	require.NoError(t, err)
	defer func() {
		cleanup()
		_, _ = SetupLogging("", slog.LevelInfo)
	}()

	assert.True(t, IsDebugMode())
	Debug("render", "slide", 3)
	Logger().Info("direct")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slide=3")
	assert.Contains(t, string(data), "direct")
}

func TestSetupLogging_BadPath(t *testing.T) {
	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	assert.Error(t, err)
}
