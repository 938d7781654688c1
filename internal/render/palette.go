package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteCap is the storage capacity of every palette. The active size per
// effect is usually far smaller (≤64 in the memory-constrained preset).
const PaletteCap = 256

// Palette is a fixed-capacity ordered color table. Storage is allocated once
// with the engine; each effect re-arms it during init and the cycler seals it
// for the rest of the effect's window, making it read-only to Step and to the
// display collaborator.
type Palette struct {
	colors [PaletteCap]color.RGBA
	n      int
	sealed bool
}

// NewPalette returns an unsealed palette with a single black entry.
func NewPalette() *Palette {
	return &Palette{n: 1}
}

// Reset re-arms the palette for a new effect with n active entries, all
// black. Fails if the palette is sealed or n exceeds capacity.
func (p *Palette) Reset(n int) error {
	if p.sealed {
		return ErrPaletteSealed
	}
	if n < 1 || n > PaletteCap {
		return ErrPaletteSize
	}
	p.n = n
	for i := 0; i < n; i++ {
		p.colors[i] = color.RGBA{A: 255}
	}
	return nil
}

// Len returns the active palette size.
func (p *Palette) Len() int { return p.n }

// At returns entry i, clamped into the active range.
func (p *Palette) At(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= p.n {
		i = p.n - 1
	}
	return p.colors[i]
}

// Set stores entry i. Writes to a sealed palette or outside the active range
// are dropped.
func (p *Palette) Set(i int, c color.RGBA) {
	if p.sealed || i < 0 || i >= p.n {
		return
	}
	c.A = 255
	p.colors[i] = c
}

// SetHSV stores entry i from hue [0,360), saturation and value in [0,1].
func (p *Palette) SetHSV(i int, h, s, v float64) {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	p.Set(i, color.RGBA{R: r, G: g, B: b, A: 255})
}

// Ramp fills entries [from, to] with a perceptual blend between two colors.
func (p *Palette) Ramp(from, to int, c0, c1 color.RGBA) {
	if to <= from {
		p.Set(from, c0)
		return
	}
	a := colorful.Color{R: float64(c0.R) / 255, G: float64(c0.G) / 255, B: float64(c0.B) / 255}
	b := colorful.Color{R: float64(c1.R) / 255, G: float64(c1.G) / 255, B: float64(c1.B) / 255}
	for i := from; i <= to; i++ {
		t := float64(i-from) / float64(to-from)
		r, g, bl := a.BlendLuv(b, t).Clamped().RGB255()
		p.Set(i, color.RGBA{R: r, G: g, B: bl, A: 255})
	}
}

// Seal makes the palette immutable until the next Unseal. The cycler seals
// after init and unseals at the reclamation barrier.
func (p *Palette) Seal()   { p.sealed = true }
func (p *Palette) Unseal() { p.sealed = false }
