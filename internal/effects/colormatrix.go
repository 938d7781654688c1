package effects

import (
	"math/rand"

	"github.com/Coreymillia/psyscreen/internal/render"
)

const (
	cmatColors = 32
	cmatHues   = 7
	cmatTiers  = 4 // brightness steps per hue, brightest at the drop head
)

// ColorMatrix is the multi-color rain variant: each column falls in its own
// hue, trails fading through brightness tiers. Index 0 is black; entries
// 1..28 are 7 hues × 4 tiers.
type ColorMatrix struct {
	cols, rows int
	pos        []float64
	speed      []float64
	hue        []byte
	active     []byte
	rng        *rand.Rand
}

func NewColorMatrix() render.Effect { return &ColorMatrix{} }

func (m *ColorMatrix) Init(fb *render.FrameBuffer, pal *render.Palette, scratch *render.Arena, seed int64) error {
	if seed < 0 {
		return render.ErrSeed
	}
	if err := pal.Reset(cmatColors); err != nil {
		return err
	}
	for h := 0; h < cmatHues; h++ {
		hue := float64(h) * 360 / cmatHues
		for t := 0; t < cmatTiers; t++ {
			value := 0.3 + 0.7*float64(t)/float64(cmatTiers-1)
			pal.SetHSV(1+h*cmatTiers+t, hue, 1, value)
		}
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
	if m.hue, err = scratch.Bytes(m.cols); err != nil {
		return err
	}
	if m.active, err = scratch.Bytes(m.cols); err != nil {
		return err
	}

	m.rng = rand.New(rand.NewSource(seed))
	for c := 0; c < m.cols; c++ {
		m.pos[c] = float64(m.rng.Intn(m.rows+20) - 20)
		m.speed[c] = 0.5 + 0.5*float64(m.rng.Intn(4))
		m.hue[c] = byte(m.rng.Intn(cmatHues))
		if m.rng.Intn(2) == 0 {
			m.active[c] = 1
		}
	}
	return nil
}

func (m *ColorMatrix) Step(fb *render.FrameBuffer, pal *render.Palette, _ int) {
	fb.Clear(0)
	for c := 0; c < m.cols; c++ {
		if m.active[c] == 0 {
			if m.rng.Intn(150) < 3 {
				m.active[c] = 1
				m.pos[c] = float64(-25 + m.rng.Intn(21))
				m.hue[c] = byte(m.rng.Intn(cmatHues))
			}
			continue
		}

		dropY := int(m.pos[c])
		base := 1 + int(m.hue[c])*cmatTiers
		for trail := 0; trail < cmatTiers*2; trail++ {
			y := dropY - trail
			if y < 0 || y >= m.rows {
				continue
			}
			tier := cmatTiers - 1 - trail/2
			if tier < 0 {
				tier = 0
			}
			fb.Fill(c*rainCell, y*rainCell, rainCell, rainCell, uint8(base+tier))
		}

		m.pos[c] += m.speed[c] * 0.4
		if m.pos[c] > float64(m.rows+5) {
			m.pos[c] = float64(-25 + m.rng.Intn(21))
			m.speed[c] = 0.5 + 0.5*float64(m.rng.Intn(4))
			m.hue[c] = byte(m.rng.Intn(cmatHues))
			if m.rng.Intn(3) == 2 {
				m.active[c] = 0
			}
		}
	}
}

func (m *ColorMatrix) Teardown() {
	m.pos, m.speed, m.hue, m.active, m.rng = nil, nil, nil, nil, nil
}
