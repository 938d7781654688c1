package effects

import (
	"math"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	juliaColors = 64
	juliaIters  = 20
	juliaBlock  = 2 // fill 2×2 blocks, the classic embedded shortcut

	juliaCenterX = -0.7
	juliaCenterY = 0.0
)

// Julia renders a morphing Julia-set fractal. The c parameter and zoom orbit
// slowly, so the set breathes; escape-time indices cycle through the palette
// for the color-rotation shimmer.
type Julia struct {
	t           float64
	colorOffset float64
}

func NewJulia() render.Effect { return &Julia{} }

func (j *Julia) Init(fb *render.FrameBuffer, pal *render.Palette, _ *render.Arena, _ int64) error {
	if err := pal.Reset(juliaColors); err != nil {
		return err
	}
	// Entry 0 is the interior; the rest is banded escape-time coloring.
	for i := 1; i < juliaColors; i++ {
		t := float64(i) / float64(juliaColors-1)
		intensity := 0.7 + 0.3*math.Sin(t*math.Pi*12)
		pal.Set(i, rgb(
			(127+127*math.Sin(t*math.Pi*6))*intensity,
			(127+127*math.Sin(t*math.Pi*4+2))*intensity,
			(127+127*math.Sin(t*math.Pi*8+4))*intensity,
		))
	}
	j.t = 0
	j.colorOffset = 0
	return nil
}

func (j *Julia) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	j.t = math.Mod(j.t+0.05, 2*math.Pi*1000)
	j.colorOffset = math.Mod(j.colorOffset+1, juliaColors-1)

	cr := -0.4 + 0.3*render.FastSin(j.t*0.5)
	ci := 0.6 + 0.2*render.FastCos(j.t*0.7)
	zoom := 1.5 + 0.3*render.FastSin(j.t*0.3)

	w, h := fb.Width(), fb.Height()
	for y := 0; y < h; y += juliaBlock {
		for x := 0; x < w; x += juliaBlock {
			iters := j.escape(x, y, w, h, cr, ci, zoom)
			idx := uint8(0)
			if iters > 0 {
				idx = uint8(int(float64(iters)+j.colorOffset)%(juliaColors-1)) + 1
			}
			fb.Fill(x, y, juliaBlock, juliaBlock, idx)
		}
	}
}

// escape iterates z = z² + c and returns the escape count, or 0 for points
// that stay bounded (the interior).
func (j *Julia) escape(x, y, w, h int, cr, ci, zoom float64) int {
	zx := (float64(x)/float64(w)-0.5)*4.0/zoom + juliaCenterX
	zy := (float64(y)/float64(h)-0.5)*4.0/zoom + juliaCenterY
	for i := 0; i < juliaIters; i++ {
		if zx*zx+zy*zy > 4.0 {
			return i
		}
		zx, zy = zx*zx-zy*zy+cr, 2*zx*zy+ci
	}
	return 0
}

func (j *Julia) Teardown() { j.t, j.colorOffset = 0, 0 }
