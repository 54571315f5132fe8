package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.2, cfg.ClosureThreshold)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goextrude.toml")
	data := `
closure_threshold = 0.5
default_height = 3.0
log_level = "debug"

[window]
width = 800
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.ClosureThreshold)
	assert.Equal(t, 3.0, cfg.DefaultHeight)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, Default().MinHeight, cfg.MinHeight)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goextrude.toml")
	require.NoError(t, os.WriteFile(path, []byte("closure_treshold = 0.3\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "closure_treshold")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"zero threshold":   "closure_threshold = 0.0",
		"negative height":  "default_height = -1.0",
		"below min height": "default_height = 0.001",
		"bad level":        `log_level = "chatty"`,
		"zero window":      "[window]\nwidth = 0",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}
