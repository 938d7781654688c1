package effects

import (
	"math"
	"math/rand"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	starColors = 16
	starCount  = 150
	starStride = 5 // x, y, z, brightness, speed
)

// Starfield renders a warp-speed flight: stars stream outward from a central
// vanishing point, growing brighter and larger as they approach. Star state
// lives in one strided float slice claimed from the arena.
type Starfield struct {
	stars []float64
	t     float64
	rng   *rand.Rand
}

func NewStarfield() render.Effect { return &Starfield{} }

func (s *Starfield) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, seed int64) error {
	if seed < 0 {
		return render.ErrSeed
	}
	if err := pal.Reset(starColors); err != nil {
		return err
	}
	for i := 1; i < starColors; i++ {
		intensity := float64(i) / float64(starColors-1)
		switch {
		case intensity < 0.3:
			pal.Set(i, rgb(intensity*100, intensity*100, intensity*255))
		case intensity < 0.7:
			v := intensity * 255
			pal.Set(i, rgb(v, v, v))
		default:
			pal.Set(i, rgb(255, 255, 255))
		}
	}

	var err error
	if s.stars, err = scratch.Float64s(starCount * starStride); err != nil {
		return err
	}

	s.rng = rand.New(rand.NewSource(seed))
	s.t = 0
	cx, cy := float64(fb.Width())/2, float64(fb.Height())/2
	for i := 0; i < starCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := 1 + s.rng.Float64()*99
		st := s.stars[i*starStride:]
		st[0] = cx + dist*math.Cos(angle)
		st[1] = cy + dist*math.Sin(angle)
		st[2] = 1 + s.rng.Float64()*49
		st[3] = float64(5 + s.rng.Intn(11))
		st[4] = 0.5 + s.rng.Float64()*1.5
	}
	return nil
}

func (s *Starfield) respawn(st []float64, cx, cy float64) {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := 1 + s.rng.Float64()*4
	st[0] = cx + dist*math.Cos(angle)
	st[1] = cy + dist*math.Sin(angle)
	st[2] = 30 + s.rng.Float64()*20
	st[3] = float64(5 + s.rng.Intn(11))
	st[4] = 0.5 + s.rng.Float64()*1.5
}

func (s *Starfield) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	s.t = math.Mod(s.t+0.1, 2*math.Pi*10)
	warp := 1.0 + 0.5*render.FastSin(s.t*0.3)

	fb.Clear(0)
	w, h := fb.Width(), fb.Height()
	cx, cy := float64(w)/2, float64(h)/2

	for i := 0; i < starCount; i++ {
		st := s.stars[i*starStride:]
		dx, dy := st[0]-cx, st[1]-cy
		st[0] += dx * 0.02 * st[4] * warp
		st[1] += dy * 0.02 * st[4] * warp
		st[2] -= 0.5 * st[4] * warp

		x, y := int(st[0]), int(st[1])
		if x < 0 || x >= w || y < 0 || y >= h || st[2] < 1 {
			s.respawn(st, cx, cy)
			continue
		}

		size := 30.0 / st[2]
		if size < 0.1 {
			size = 0.1
		}
		brightness := int(st[3] * size)
		if brightness < 1 {
			brightness = 1
		}
		if brightness > starColors-1 {
			brightness = starColors - 1
		}

		fb.Set(x, y, uint8(brightness))
		if size > 1.5 {
			fb.Fill(x, y, 2, 2, uint8(brightness))
		}
	}
}

func (s *Starfield) Teardown() { s.stars, s.rng = nil, nil }
