package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestPaletteResetAndSeal(t *testing.T) {
	p := NewPalette()
	if err := p.Reset(64); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if p.Len() != 64 {
		t.Errorf("expected 64 entries, got %d", p.Len())
	}

	p.Set(10, color.RGBA{R: 255})
	p.Seal()
	p.Set(10, color.RGBA{G: 255})
	if got := p.At(10); got.R != 255 || got.G != 0 {
		t.Errorf("sealed palette was mutated: %v", got)
	}

	if err := p.Reset(32); !errors.Is(err, ErrPaletteSealed) {
		t.Errorf("expected ErrPaletteSealed, got %v", err)
	}

	p.Unseal()
	if err := p.Reset(32); err != nil {
		t.Fatalf("reset after unseal failed: %v", err)
	}
	if got := p.At(10); got.R != 0 {
		t.Errorf("reset did not clear entries: %v", got)
	}
}

func TestPaletteSizeLimits(t *testing.T) {
	p := NewPalette()

	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -4},
		{"over capacity", PaletteCap + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Reset(tt.n); !errors.Is(err, ErrPaletteSize) {
				t.Errorf("expected ErrPaletteSize, got %v", err)
			}
		})
	}
}

func TestPaletteRamp(t *testing.T) {
	p := NewPalette()
	if err := p.Reset(8); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	p.Ramp(0, 7, color.RGBA{}, color.RGBA{R: 255, G: 255, B: 255})

	if got := p.At(7); got.R < 250 || got.G < 250 || got.B < 250 {
		t.Errorf("expected near-white end, got %v", got)
	}
	if got := p.At(0); got.R > 5 {
		t.Errorf("expected near-black start, got %v", got)
	}
}

func TestPaletteAtClamps(t *testing.T) {
	p := NewPalette()
	if err := p.Reset(4); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	p.SetHSV(3, 120, 1, 1)
	if p.At(100) != p.At(3) {
		t.Error("expected out-of-range read to clamp to last entry")
	}
	if p.At(-1) != p.At(0) {
		t.Error("expected negative read to clamp to first entry")
	}
}
