package config

// Presets capture the two hardware profiles the engine targets plus a
// deliberately starved one for exercising the fallback path.
var Presets = map[string]*Config{
	// The memory-constrained profile: half-resolution buffer drawn at 2×,
	// small palettes, a few tens of KB of scratch.
	"pyportal": {
		Width: 160, Height: 120, Scale: 2,
		FrameRate: 12, EffectSeconds: 60,
		PaletteMax: 64, ScratchBytes: 32 * 1024,
		Seed: DefaultSeed,
	},
	// Unconstrained profile for desktop preview: full resolution, full
	// palette, generous scratch.
	"desktop": {
		Width: 320, Height: 240, Scale: 1,
		FrameRate: 30, EffectSeconds: 30,
		PaletteMax: 256, ScratchBytes: 256 * 1024,
		Seed: DefaultSeed,
	},
	// Starved profile: only the zero-scratch effects survive init, the
	// rest are skipped by the budget check.
	"lowmem": {
		Width: 160, Height: 120, Scale: 2,
		FrameRate: 12, EffectSeconds: 60,
		PaletteMax: 64, ScratchBytes: 512,
		Seed: DefaultSeed,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
