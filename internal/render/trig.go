package render

import "math"

// TrigTable provides precomputed sin/cos values for fast lookup.
// Uses linear interpolation for values between table entries.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// Shared table for effect math (1024 entries = ~0.006 rad resolution,
// plenty for palette-index quantization).
var defaultTrig = NewTrigTable(1024)

// NewTrigTable creates a precomputed trig lookup table.
func NewTrigTable(n int) *TrigTable {
	if n < 4 {
		n = 4
	}
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

func (t *TrigTable) index(x float64) (int, int, float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)
	return i % t.n, (i + 1) % t.n, frac
}

// Sin returns approximate sin using table lookup with interpolation.
func (t *TrigTable) Sin(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.sin[i0]*(1-frac) + t.sin[i1]*frac
}

// Cos returns approximate cos using table lookup with interpolation.
func (t *TrigTable) Cos(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.cos[i0]*(1-frac) + t.cos[i1]*frac
}

// FastSin uses the shared table for quick sin lookup.
func FastSin(x float64) float64 {
	return defaultTrig.Sin(x)
}

// FastCos uses the shared table for quick cos lookup.
func FastCos(x float64) float64 {
	return defaultTrig.Cos(x)
}
