package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Minimum resolution: the coarsest effect grids work in 8-pixel cells
	// (rain columns, fire at half scale), so anything smaller degenerates
	// to empty grids.
	MinWidth  = 8
	MinHeight = 8

	DefaultWidth         = 160
	DefaultHeight        = 120
	DefaultScale         = 2
	DefaultFrameRate     = 12
	DefaultEffectSeconds = 60.0
	DefaultPaletteMax    = 64
	DefaultScratchBytes  = 32 * 1024
	DefaultSeed          = 1
)

type Config struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	Scale         int      `yaml:"scale"`
	FrameRate     int      `yaml:"frame_rate"`
	EffectSeconds float64  `yaml:"effect_seconds"`
	PaletteMax    int      `yaml:"palette_max"`
	ScratchBytes  int      `yaml:"scratch_bytes"`
	Seed          int64    `yaml:"seed"`
	Effects       []string `yaml:"effects"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Scale:         DefaultScale,
		FrameRate:     DefaultFrameRate,
		EffectSeconds: DefaultEffectSeconds,
		PaletteMax:    DefaultPaletteMax,
		ScratchBytes:  DefaultScratchBytes,
		Seed:          DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("resolution must be at least %dx%d, got %dx%d", MinWidth, MinHeight, c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.FrameRate < 1 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.EffectSeconds <= 0 {
		return fmt.Errorf("effect duration must be positive, got %f", c.EffectSeconds)
	}
	if c.PaletteMax < 1 || c.PaletteMax > 256 {
		return fmt.Errorf("palette max must be in [1, 256], got %d", c.PaletteMax)
	}
	if c.ScratchBytes < 0 {
		return fmt.Errorf("scratch budget must be non-negative, got %d", c.ScratchBytes)
	}
	return nil
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c *Config) EffectDuration() time.Duration {
	return time.Duration(c.EffectSeconds * float64(time.Second))
}
