package effects

import (
	"math"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const spiralColors = 32

// Spiral renders a rotating spiral with a radial ripple, on a
// blue-to-purple-to-pink ramp.
type Spiral struct {
	t   float64
	rot float64
}

func NewSpiral() render.Effect { return &Spiral{} }

func (s *Spiral) Init(fb *render.FrameBuffer, pal *render.Palette, _ *render.Arena, _ int64) error {
	if err := pal.Reset(spiralColors); err != nil {
		return err
	}
	for i := 0; i < spiralColors; i++ {
		t := float64(i) / float64(spiralColors-1)
		pal.Set(i, rgb(
			50+205*t*t,
			20+100*math.Sin(t*math.Pi),
			255-100*t,
		))
	}
	s.t = 0
	s.rot = 0
	return nil
}

func (s *Spiral) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	s.t = math.Mod(s.t+0.08, 2*math.Pi*1000)
	s.rot = math.Mod(s.rot+0.05, 2*math.Pi)
	w, h := fb.Width(), fb.Height()
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		dy := float64(y) - cy
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dist := math.Sqrt(dx*dx + dy*dy)
			angle := math.Atan2(dy, dx)
			spiral := render.FastSin(dist*0.3 - s.t*3 + angle*2 + s.rot)
			radial := render.FastCos(dist*0.1 + s.t)
			combined := (spiral + radial) / 2
			fb.Set(x, y, uint8(int((combined+1.0)*15.5)%spiralColors))
		}
	}
}

func (s *Spiral) Teardown() { s.t, s.rot = 0, 0 }
