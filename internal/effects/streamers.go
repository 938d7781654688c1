package effects

import (
	"math"
	"math/rand"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	streamerColors = 32
	streamerCount  = 8
	streamerStride = 10 // x, yBase, amplitude, frequency, speed, phase, color, thickness, direction, waveSpeed
)

// Streamers renders wavy horizontal ribbons drifting across the screen, each
// with its own amplitude, frequency, color and direction. Index 0 is the
// black background; 1..31 is a saturated rainbow.
type Streamers struct {
	strm []float64
	rng  *rand.Rand
}

func NewStreamers() render.Effect { return &Streamers{} }

func (s *Streamers) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, seed int64) error {
	if seed < 0 {
		return render.ErrSeed
	}
	if err := pal.Reset(streamerColors); err != nil {
		return err
	}
	for i := 1; i < streamerColors; i++ {
		t := float64(i-1) / float64(streamerColors-2)
		pal.SetHSV(i, t*360, 1, 0.9)
	}

	var err error
	if s.strm, err = scratch.Float64s(streamerCount * streamerStride); err != nil {
		return err
	}

	s.rng = rand.New(rand.NewSource(seed))
	for i := 0; i < streamerCount; i++ {
		s.reroll(s.strm[i*streamerStride:], fb, true)
	}
	return nil
}

// reroll randomizes one streamer. On spawn the x origin is anywhere across
// the screen; on wrap it re-enters from the side it is moving away from.
func (s *Streamers) reroll(st []float64, fb *render.FrameBuffer, spawn bool) {
	w, h := float64(fb.Width()), float64(fb.Height())
	if spawn {
		st[0] = -20 + s.rng.Float64()*(w+40)
		st[8] = 1
		if s.rng.Intn(2) == 0 {
			st[8] = -1
		}
	} else if st[8] > 0 {
		st[0] = -50 + s.rng.Float64()*30
	} else {
		st[0] = w + 20 + s.rng.Float64()*30
	}
	st[1] = 10 + s.rng.Float64()*(h-20)
	st[2] = 5 + s.rng.Float64()*20
	st[3] = 0.05 + s.rng.Float64()*0.1
	st[4] = 0.5 + s.rng.Float64()*1.5
	if spawn {
		st[5] = s.rng.Float64() * 2 * math.Pi
	}
	st[6] = float64(1 + s.rng.Intn(streamerColors-1))
	st[7] = float64(1 + s.rng.Intn(3))
	st[9] = 0.02 + s.rng.Float64()*0.06
}

func (s *Streamers) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	fb.Clear(0)
	w := fb.Width()
	for i := 0; i < streamerCount; i++ {
		st := s.strm[i*streamerStride:]
		st[0] += st[4] * st[8]
		st[5] = math.Mod(st[5]+st[9], 2*math.Pi)

		offscreen := (st[8] > 0 && st[0] > float64(w)+50) ||
			(st[8] < 0 && st[0] < -50)
		if offscreen {
			s.reroll(st, fb, false)
		}

		s.draw(st, fb)
	}
}

// draw renders one ribbon as short vertical strokes along a sine path.
func (s *Streamers) draw(st []float64, fb *render.FrameBuffer) {
	idx := uint8(st[6])
	thickness := int(st[7])
	start := int(st[0]) - 30
	end := int(st[0]) + 60
	for x := start; x < end; x += 2 {
		if x < 0 || x >= fb.Width() {
			continue
		}
		offset := st[2] * render.FastSin((float64(x)-st[0])*st[3]+st[5])
		y := int(st[1] + offset)
		for t := 0; t < thickness; t++ {
			fb.Set(x, y+t-thickness/2, idx)
			fb.Set(x+1, y+t-thickness/2, idx)
		}
	}
}

func (s *Streamers) Teardown() { s.strm, s.rng = nil, nil }
