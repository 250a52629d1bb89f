package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridd.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// TestLoad_MissingFileUsesDefaults: an absent config is not an error.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

// TestLoad_PartialOverride: set keys override, unset keys keep defaults.
func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, "width = 120\nhistory_limit = 10\npalette = \"gameboy\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 120 || cfg.HistoryLimit != 10 || cfg.Palette != "gameboy" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != Defaults().Height || cfg.MergeCooldownMS != Defaults().MergeCooldownMS {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

// TestLoad_Invalid covers malformed TOML and out-of-range values.
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed TOML", "width = = 3"},
		{"Zero width", "width = 0"},
		{"Negative history", "history_limit = -1"},
		{"Negative cooldown", "merge_cooldown_ms = -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}
