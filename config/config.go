// Package config loads editor settings from a TOML file, falling back to
// defaults for anything unset. The core library never reads configuration;
// the shell resolves it once and injects plain values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full editor configuration.
type Config struct {
	// Grid dimensions for new projects.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Palette is the id of the startup palette.
	Palette string `toml:"palette"`

	// HistoryLimit caps retained undo commands.
	HistoryLimit int `toml:"history_limit"`

	// MergeCooldownMS is how long merging stays disabled after a gesture
	// ends, so a new stroke never folds into the previous one.
	MergeCooldownMS int `toml:"merge_cooldown_ms"`

	SprayRadius  int `toml:"spray_radius"`
	SprayDensity int `toml:"spray_density"`
}

// Defaults returns the configuration used when no file overrides it.
func Defaults() Config {
	return Config{
		Width:           80,
		Height:          24,
		Palette:         "ansi16",
		HistoryLimit:    100,
		MergeCooldownMS: 300,
		SprayRadius:     2,
		SprayDensity:    6,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("config: history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.MergeCooldownMS < 0 {
		return fmt.Errorf("config: merge_cooldown_ms must not be negative, got %d", c.MergeCooldownMS)
	}
	return nil
}
