package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 160 || cfg.Height != 120 {
		t.Errorf("expected 160x120, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 2 {
		t.Errorf("expected scale 2, got %d", cfg.Scale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"width below cell grid", func(c *Config) { c.Width = MinWidth - 1 }, false},
		{"height below cell grid", func(c *Config) { c.Height = 1 }, false},
		{"minimum resolution", func(c *Config) { c.Width, c.Height = MinWidth, MinHeight }, true},
		{"zero scale", func(c *Config) { c.Scale = 0 }, false},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }, false},
		{"zero duration", func(c *Config) { c.EffectSeconds = 0 }, false},
		{"palette too large", func(c *Config) { c.PaletteMax = 257 }, false},
		{"palette too small", func(c *Config) { c.PaletteMax = 0 }, false},
		{"negative scratch", func(c *Config) { c.ScratchBytes = -1 }, false},
		{"zero scratch", func(c *Config) { c.ScratchBytes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pyportal")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 160 || cfg.PaletteMax != 64 {
		t.Errorf("unexpected pyportal profile: %+v", cfg)
	}

	// Mutating the returned config must not leak into the preset table.
	cfg.Width = 1
	if Presets["pyportal"].Width != 160 {
		t.Error("preset table was mutated through GetPreset")
	}

	if GetPreset("vga") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for name := range Presets {
		cfg := GetPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s should validate: %v", name, err)
		}
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameRate = 10
	cfg.EffectSeconds = 2.5

	if got := cfg.FrameInterval(); got != 100*time.Millisecond {
		t.Errorf("expected 100ms interval, got %v", got)
	}
	if got := cfg.EffectDuration(); got != 2500*time.Millisecond {
		t.Errorf("expected 2.5s duration, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.FrameRate = 24
	cfg.Effects = []string{"plasma", "fire"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.FrameRate != 24 {
		t.Errorf("expected frame rate 24, got %d", loaded.FrameRate)
	}
	if len(loaded.Effects) != 2 || loaded.Effects[0] != "plasma" {
		t.Errorf("unexpected effects: %v", loaded.Effects)
	}
	if loaded.Width != cfg.Width {
		t.Errorf("expected width %d, got %d", cfg.Width, loaded.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
