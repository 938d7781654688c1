package effects

import (
	"errors"
	"testing"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	testW = 160
	testH = 120
)

func newSurfaces(t *testing.T) (*render.FrameBuffer, *render.Palette, *render.Arena) {
	t.Helper()
	fb := render.NewFrameBuffer(testW, testH)
	// No index clamp: effects must produce valid indices on their own.
	fb.Limit(render.PaletteCap)
	return fb, render.NewPalette(), render.NewArena(64 * 1024)
}

func TestEffectBoundsInvariant(t *testing.T) {
	for _, d := range DefaultDescriptors() {
		t.Run(d.Name, func(t *testing.T) {
			fb, pal, scratch := newSurfaces(t)
			eff := d.New()
			if err := eff.Init(fb, pal, scratch, 7); err != nil {
				t.Fatalf("init failed: %v", err)
			}
			if pal.Len() != d.PaletteSize {
				t.Errorf("expected palette size %d, got %d", d.PaletteSize, pal.Len())
			}
			if used := scratch.InUse(); used > d.ScratchBytes {
				t.Errorf("scratch %d exceeds declared bound %d", used, d.ScratchBytes)
			}
			pal.Seal()

			for frame := 0; frame < 120; frame++ {
				eff.Step(fb, pal, frame)
				for y := 0; y < testH; y++ {
					for _, idx := range fb.Row(y) {
						if int(idx) >= d.PaletteSize {
							t.Fatalf("frame %d: index %d >= palette size %d", frame, idx, d.PaletteSize)
						}
					}
				}
			}
			eff.Teardown()
			pal.Unseal()
		})
	}
}

func TestEffectDeterminism(t *testing.T) {
	// Two independent runs with the same seed must agree frame-for-frame.
	for _, name := range []string{"plasma", "matrix_rain", "julia", "fire"} {
		t.Run(name, func(t *testing.T) {
			descs, err := Roster([]string{name}, testW, testH)
			if err != nil {
				t.Fatalf("roster failed: %v", err)
			}
			d := descs[0]

			run := func() []uint8 {
				fb, pal, scratch := newSurfaces(t)
				eff := d.New()
				if err := eff.Init(fb, pal, scratch, 42); err != nil {
					t.Fatalf("init failed: %v", err)
				}
				sum := make([]uint8, 0, 600)
				for frame := 0; frame < 600; frame++ {
					eff.Step(fb, pal, frame)
					sum = append(sum, fb.At(frame%testW, (frame*7)%testH))
				}
				eff.Teardown()
				return sum
			}

			a, b := run(), run()
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("runs diverged at frame %d: %d vs %d", i, a[i], b[i])
				}
			}
		})
	}
}

func TestEffectSeedValidation(t *testing.T) {
	for _, name := range []string{"matrix_rain", "color_matrix", "fire", "starfield", "streamers"} {
		t.Run(name, func(t *testing.T) {
			descs, err := Roster([]string{name}, testW, testH)
			if err != nil {
				t.Fatalf("roster failed: %v", err)
			}
			fb, pal, scratch := newSurfaces(t)
			if err := descs[0].New().Init(fb, pal, scratch, -1); !errors.Is(err, render.ErrSeed) {
				t.Errorf("expected ErrSeed, got %v", err)
			}
		})
	}
}

func TestFireRejectsDegenerateBuffer(t *testing.T) {
	// A buffer shorter than one heat cell would leave the grid empty and
	// the stoke row unaddressable.
	fb := render.NewFrameBuffer(testW, 1)
	pal := render.NewPalette()
	scratch := render.NewArena(64 * 1024)

	if err := NewFire().Init(fb, pal, scratch, 1); !errors.Is(err, render.ErrResolution) {
		t.Errorf("expected ErrResolution, got %v", err)
	}
}

func TestEffectScratchBudgetPropagates(t *testing.T) {
	fb := render.NewFrameBuffer(testW, testH)
	pal := render.NewPalette()
	tiny := render.NewArena(16)

	if err := NewFire().Init(fb, pal, tiny, 1); !errors.Is(err, render.ErrScratchBudget) {
		t.Errorf("expected ErrScratchBudget, got %v", err)
	}
}

func TestRoster(t *testing.T) {
	descs, err := Roster(nil, testW, testH)
	if err != nil {
		t.Fatalf("default roster failed: %v", err)
	}
	if len(descs) != 9 {
		t.Errorf("expected 9 effects, got %d", len(descs))
	}
	if descs[0].Name != "plasma" || descs[8].Name != "streamers" {
		t.Errorf("unexpected rotation order: %v", Names())
	}

	descs, err = Roster([]string{"fire", "plasma"}, testW, testH)
	if err != nil {
		t.Fatalf("subset roster failed: %v", err)
	}
	if descs[0].Name != "fire" || descs[1].Name != "plasma" {
		t.Error("roster did not preserve config order")
	}

	if _, err := Roster([]string{"lavalamp"}, testW, testH); !errors.Is(err, render.ErrUnknownEffect) {
		t.Errorf("expected ErrUnknownEffect, got %v", err)
	}
}

func TestDescriptorsScaleWithResolution(t *testing.T) {
	// Grid-based effects claim more scratch at a larger buffer; the declared
	// bound must track the actual claim.
	for _, d := range Descriptors(320, 240) {
		fb := render.NewFrameBuffer(320, 240)
		fb.Limit(render.PaletteCap)
		pal := render.NewPalette()
		scratch := render.NewArena(256 * 1024)

		eff := d.New()
		if err := eff.Init(fb, pal, scratch, 3); err != nil {
			t.Fatalf("%s init failed: %v", d.Name, err)
		}
		if used := scratch.InUse(); used > d.ScratchBytes {
			t.Errorf("%s: scratch %d exceeds declared bound %d", d.Name, used, d.ScratchBytes)
		}
		eff.Teardown()
	}
}

func TestRegistryFromDefaults(t *testing.T) {
	reg, err := render.NewRegistry(DefaultDescriptors(), render.PaletteCap)
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	if reg.At(reg.Baseline()).Name != "plasma" {
		t.Errorf("expected plasma baseline, got %s", reg.At(reg.Baseline()).Name)
	}
}
