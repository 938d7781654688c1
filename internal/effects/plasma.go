package effects

import (
	"math"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	plasmaColors = 64
	plasmaPeriod = 2 * math.Pi * 1000
)

// Plasma renders a two-axis sine interference field. It claims no scratch at
// all, which makes it the rotation's baseline: the effect the cycler falls
// back to when everything else fails init.
type Plasma struct {
	t float64
}

func NewPlasma() render.Effect { return &Plasma{} }

func (p *Plasma) Init(fb *render.FrameBuffer, pal *render.Palette, _ *render.Arena, _ int64) error {
	if err := pal.Reset(plasmaColors); err != nil {
		return err
	}
	for i := 0; i < plasmaColors; i++ {
		angle := float64(i) / float64(plasmaColors-1) * 2 * math.Pi
		pal.Set(i, rgb(
			127+127*math.Sin(angle),
			127+127*math.Sin(angle+2.094),
			127+127*math.Sin(angle+4.188),
		))
	}
	p.t = 0
	return nil
}

func (p *Plasma) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	p.t = math.Mod(p.t+0.1, plasmaPeriod)
	w, h := fb.Width(), fb.Height()
	for y := 0; y < h; y++ {
		wy := render.FastSin(float64(y)*0.15 + p.t*0.8)
		for x := 0; x < w; x++ {
			val := render.FastSin(float64(x)*0.2+p.t) + wy
			fb.Set(x, y, uint8(int((val+2.0)*15.5)%plasmaColors))
		}
	}
}

func (p *Plasma) Teardown() { p.t = 0 }
