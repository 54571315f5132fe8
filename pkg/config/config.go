// Package config holds the tunables of the modeling session.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of a modeling session
type Config struct {
	ClosureThreshold float64 `toml:"closure_threshold"` // world units
	DefaultHeight    float64 `toml:"default_height"`
	MinHeight        float64 `toml:"min_height"`    // floor for height clamping
	HeightStep       float64 `toml:"height_step"`   // increment of the +/- controls
	HandleRadius     float64 `toml:"handle_radius"` // pixels
	LogLevel         string  `toml:"log_level"`
	Window           Window  `toml:"window"`
}

// Window is the initial size of the interactive viewport
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ClosureThreshold: 0.2,
		DefaultHeight:    1.0,
		MinHeight:        0.01,
		HeightStep:       0.5,
		HandleRadius:     12,
		LogLevel:         "info",
		Window: Window{
			Width:  1400,
			Height: 900,
		},
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text on top of the defaults
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the modeler cannot work with
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("closure_threshold", c.ClosureThreshold)
	positive("default_height", c.DefaultHeight)
	positive("min_height", c.MinHeight)
	positive("height_step", c.HeightStep)
	positive("handle_radius", c.HandleRadius)

	if c.DefaultHeight < c.MinHeight {
		errs = append(errs, fmt.Errorf("default_height %v is below min_height %v", c.DefaultHeight, c.MinHeight))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
