package effects

import (
	"math"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	waveColors  = 64
	waveSources = 4
	waveStride  = 4 // x, y, frequency, phase
)

// Per-source amplitudes, fixed for the effect's lifetime.
var waveAmps = [waveSources]float64{1.0, 0.8, 0.9, 0.7}

// Waves renders the interference field of four circling wave sources with
// distance attenuation, indices cycling through the palette over time.
type Waves struct {
	src        []float64
	t          float64
	colorShift float64
}

func NewWaves() render.Effect { return &Waves{} }

func (w *Waves) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, _ int64) error {
	if err := pal.Reset(waveColors); err != nil {
		return err
	}
	for i := 0; i < waveColors; i++ {
		t := float64(i) / float64(waveColors-1)
		switch {
		case t < 0.2:
			pal.Set(i, rgb(0, t*5*255, 255))
		case t < 0.4:
			s := (t - 0.2) / 0.2
			pal.Set(i, rgb(0, 255, 255*(1-s)))
		case t < 0.6:
			s := (t - 0.4) / 0.2
			pal.Set(i, rgb(s*255, 255, 0))
		case t < 0.8:
			s := (t - 0.6) / 0.2
			pal.Set(i, rgb(255, 255*(1-s*0.5), 0))
		default:
			s := (t - 0.8) / 0.2
			pal.Set(i, rgb(255, 128+s*127, s*255))
		}
	}

	var err error
	if w.src, err = scratch.Float64s(waveSources * waveStride); err != nil {
		return err
	}
	for i := 0; i < waveSources; i++ {
		s := w.src[i*waveStride:]
		s[2] = 0.1 + float64(i)*0.05
		s[3] = float64(i) * math.Pi / 2
	}
	w.t = 0
	w.colorShift = 0
	return nil
}

func (w *Waves) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	w.t = math.Mod(w.t+0.08, 2*math.Pi*1000)
	w.colorShift = math.Mod(w.colorShift+0.5, waveColors)

	width, height := fb.Width(), fb.Height()
	cx, cy := float64(width)/2, float64(height)/2

	// Sources orbit the center at staggered phases.
	for i := 0; i < waveSources; i++ {
		s := w.src[i*waveStride:]
		angle := w.t*0.3 + float64(i)*math.Pi/2
		radius := 20 + 15*render.FastSin(w.t*0.2+float64(i))
		s[0] = cx + radius*render.FastCos(angle)
		s[1] = cy + radius*render.FastSin(angle)
		s[2] = 0.1 + float64(i)*0.05 + 0.05*render.FastSin(w.t*0.4+float64(i))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			total := 0.0
			for i := 0; i < waveSources; i++ {
				s := w.src[i*waveStride:]
				dx, dy := float64(x)-s[0], float64(y)-s[1]
				dist := math.Sqrt(dx*dx + dy*dy)
				wave := waveAmps[i] * render.FastSin(s[2]*dist+s[3]+w.t*2)
				total += wave / (1.0 + dist*0.01)
			}
			idx := int((total+2.0)/4.0*(waveColors-1) + w.colorShift)
			idx %= waveColors
			if idx < 0 {
				idx += waveColors
			}
			fb.Set(x, y, uint8(idx))
		}
	}
}

func (w *Waves) Teardown() { w.src = nil }
