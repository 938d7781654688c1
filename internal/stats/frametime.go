// Package stats provides render-loop metrics that plug into the engine's
// observer hook: per-frame step cost and per-effect aggregates, kept in
// fixed-size buffers so long sessions never grow the heap.
package stats

import (
	"time"
)

// DefaultHistory is the ring size used for charting recent frame times.
const DefaultHistory = 120

// FrameTime tracks how long effect steps take. Value reports the running
// mean in milliseconds; History exposes a bounded ring of recent samples
// for charting.
type FrameTime struct {
	name    string
	sum     time.Duration
	max     time.Duration
	samples int
	ring    []float64
	head    int
	filled  bool
}

func NewFrameTime() *FrameTime {
	return &FrameTime{
		name: "frame_time",
		ring: make([]float64, DefaultHistory),
	}
}

func (f *FrameTime) Name() string { return f.name }

func (f *FrameTime) Observe(effect string, frame int, stepTime time.Duration) {
	f.sum += stepTime
	if stepTime > f.max {
		f.max = stepTime
	}
	f.samples++

	f.ring[f.head] = float64(stepTime) / float64(time.Millisecond)
	f.head++
	if f.head == len(f.ring) {
		f.head = 0
		f.filled = true
	}
}

func (f *FrameTime) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.sum) / float64(f.samples) / float64(time.Millisecond)
}

// Max reports the worst step observed, in milliseconds.
func (f *FrameTime) Max() float64 {
	return float64(f.max) / float64(time.Millisecond)
}

// History returns recent samples oldest-first, sized to what has actually
// been observed.
func (f *FrameTime) History() []float64 {
	if !f.filled {
		out := make([]float64, f.head)
		copy(out, f.ring[:f.head])
		return out
	}
	out := make([]float64, len(f.ring))
	n := copy(out, f.ring[f.head:])
	copy(out[n:], f.ring[:f.head])
	return out
}

func (f *FrameTime) Reset() {
	f.sum = 0
	f.max = 0
	f.samples = 0
	f.head = 0
	f.filled = false
}
