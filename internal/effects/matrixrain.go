package effects

import (
	"math/rand"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	rainColors = 16
	rainCell   = 8 // pixels per grid cell
	rainTrail  = 8 // cells per falling trail
)

// MatrixRain renders green digital rain on a coarse cell grid (20×15 at the
// 160×120 logical resolution), each column an independently falling drop.
type MatrixRain struct {
	cols, rows int
	pos        []float64
	speed      []float64
	active     []byte
	rng        *rand.Rand
}

func NewMatrixRain() render.Effect { return &MatrixRain{} }

func (m *MatrixRain) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, seed int64) error {
	if seed < 0 {
		return render.ErrSeed
	}
	if err := pal.Reset(rainColors); err != nil {
		return err
	}
	for i := 0; i < rainColors; i++ {
		intensity := float64(i) / float64(rainColors-1)
		// Slight blue tint keeps the green from looking flat.
		pal.Set(i, rgb(0, intensity*255, intensity*50))
	}

	m.cols = fb.Width() / rainCell
	m.rows = fb.Height() / rainCell

	var err error
	if m.pos, err = scratch.Float64s(m.cols); err != nil {
		return err
	}
	if m.speed, err = scratch.Float64s(m.cols); err != nil {
		return err
	}
	if m.active, err = scratch.Bytes(m.cols); err != nil {
		return err
	}

	m.rng = rand.New(rand.NewSource(seed))
	for c := 0; c < m.cols; c++ {
		m.pos[c] = float64(m.rng.Intn(m.rows+10) - 10)
		m.speed[c] = float64(1 + m.rng.Intn(3))
		if m.rng.Intn(2) == 0 {
			m.active[c] = 1
		}
	}
	return nil
}

func (m *MatrixRain) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	fb.Clear(0)
	for c := 0; c < m.cols; c++ {
		if m.active[c] == 0 {
			// 5% chance per frame to restart a stalled column.
			if m.rng.Intn(100) < 5 {
				m.active[c] = 1
				m.pos[c] = float64(-15 + m.rng.Intn(11))
			}
			continue
		}

		dropY := int(m.pos[c])
		for trail := 0; trail < rainTrail; trail++ {
			y := dropY - trail
			if y < 0 || y >= m.rows {
				continue
			}
			brightness := rainColors - 1 - trail*2
			if trail == 0 {
				brightness = rainColors - 1
			}
			if brightness < 0 {
				brightness = 0
			}
			fb.Fill(c*rainCell, y*rainCell, rainCell, rainCell, uint8(brightness))
		}

		m.pos[c] += m.speed[c] * 0.3
		if m.pos[c] > float64(m.rows+5) {
			m.pos[c] = float64(-15 + m.rng.Intn(11))
			m.speed[c] = float64(1 + m.rng.Intn(3))
			if m.rng.Intn(4) == 3 {
				m.active[c] = 0
			}
		}
	}
}

func (m *MatrixRain) Teardown() {
	m.pos, m.speed, m.active, m.rng = nil, nil, nil, nil
}
