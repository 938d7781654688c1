package effects

import (
	"image/color"
	"math/rand"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	fireColors = 32
	fireScale  = 2 // heat cells per frame-buffer pixel edge
)

// Fire runs a cellular heat-diffusion simulation on a half-resolution grid
// (80×60 at the 160×120 logical resolution) and draws each cell as a 2×2
// block. The bottom row is the heat source; heat averages upward with random
// cooling for the flicker.
type Fire struct {
	w, h int
	heat []byte
	rng  *rand.Rand
}

func NewFire() render.Effect { return &Fire{} }

func (f *Fire) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, seed int64) error {
	if seed < 0 {
		return render.ErrSeed
	}
	if err := pal.Reset(fireColors); err != nil {
		return err
	}
	// Black → dark red → red → orange → yellow → white.
	pal.Ramp(0, 9, color.RGBA{A: 255}, color.RGBA{R: 128, A: 255})
	pal.Ramp(10, 18, color.RGBA{R: 128, A: 255}, color.RGBA{R: 255, A: 255})
	pal.Ramp(19, 25, color.RGBA{R: 255, A: 255}, color.RGBA{R: 255, G: 165, A: 255})
	pal.Ramp(26, 29, color.RGBA{R: 255, G: 165, A: 255}, color.RGBA{R: 255, G: 255, B: 100, A: 255})
	pal.Ramp(30, 31, color.RGBA{R: 255, G: 255, B: 100, A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	f.w = fb.Width() / fireScale
	f.h = fb.Height() / fireScale
	if f.w < 1 || f.h < 1 {
		return render.ErrResolution
	}

	var err error
	if f.heat, err = scratch.Bytes(f.w * f.h); err != nil {
		return err
	}

	f.rng = rand.New(rand.NewSource(seed))
	f.stoke()
	return nil
}

// stoke sets the bottom row to maximum heat.
func (f *Fire) stoke() {
	base := (f.h - 1) * f.w
	for x := 0; x < f.w; x++ {
		f.heat[base+x] = fireColors - 1
	}
}

func (f *Fire) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	// Diffuse bottom-up, every cell averaging itself, the row below, and
	// horizontal neighbors, minus random cooling.
	for y := f.h - 2; y >= 0; y-- {
		for x := 0; x < f.w; x++ {
			sum, count := 0, 0
			for dx := -1; dx <= 1; dx++ {
				for dy := 0; dy <= 1; dy++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= f.w || ny >= f.h {
						continue
					}
					sum += int(f.heat[ny*f.w+nx])
					count++
				}
			}
			heat := sum/count - (1 + f.rng.Intn(3))
			if f.rng.Intn(11) < 3 {
				heat -= f.rng.Intn(3)
			}
			if heat < 0 {
				heat = 0
			}
			f.heat[y*f.w+x] = byte(heat)
		}
	}

	// Re-stoke the source row with some variation.
	base := (f.h - 1) * f.w
	for x := 0; x < f.w; x++ {
		h := fireColors - 4 + f.rng.Intn(7) - 3
		if h < 20 {
			h = 20
		}
		if h > fireColors-1 {
			h = fireColors - 1
		}
		f.heat[base+x] = byte(h)
	}

	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			fb.Fill(x*fireScale, y*fireScale, fireScale, fireScale, f.heat[y*f.w+x])
		}
	}
}

func (f *Fire) Teardown() { f.heat, f.rng = nil, nil }
