package engine

import (
	"github.com/Coreymillia/psyscreen/internal/config"
	"github.com/Coreymillia/psyscreen/internal/display"
	"github.com/Coreymillia/psyscreen/internal/effects"
	"github.com/Coreymillia/psyscreen/internal/render"
)

// FromConfig builds the full aggregate from a configuration: roster,
// registry, the one frame buffer and palette, guardian, cycler. Everything
// the rotation will ever allocate long-term is allocated here.
func FromConfig(cfg *config.Config, disp display.Display) (*Cycler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	descs, err := effects.Roster(cfg.Effects, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	reg, err := render.NewRegistry(descs, cfg.PaletteMax)
	if err != nil {
		return nil, err
	}
	fb := render.NewFrameBuffer(cfg.Width, cfg.Height)
	pal := render.NewPalette()
	guardian := NewGuardian(cfg.ScratchBytes)
	return New(reg, fb, pal, guardian, disp, Config{
		FrameInterval:  cfg.FrameInterval(),
		EffectDuration: cfg.EffectDuration(),
		Seed:           cfg.Seed,
	})
}

// Buffer exposes the frame buffer to display collaborators that read it
// between steps (the live terminal view).
func (c *Cycler) Buffer() *render.FrameBuffer { return c.fb }

// Palette exposes the active palette alongside the buffer.
func (c *Cycler) Palette() *render.Palette { return c.pal }

// Guardian exposes memory accounting for the stats sidebar.
func (c *Cycler) GuardianState() (inUse, budget int) {
	return c.guardian.InUse(), c.guardian.Budget()
}
