package stats

import (
	"sort"
	"time"
)

// EffectLoad aggregates step cost per effect so the bench and live views can
// rank the roster by expense. Value reports the mean across all effects.
type EffectLoad struct {
	name    string
	sums    map[string]time.Duration
	counts  map[string]int
	samples int
	total   time.Duration
}

func NewEffectLoad() *EffectLoad {
	return &EffectLoad{
		name:   "effect_load",
		sums:   make(map[string]time.Duration),
		counts: make(map[string]int),
	}
}

func (e *EffectLoad) Name() string { return e.name }

func (e *EffectLoad) Observe(effect string, frame int, stepTime time.Duration) {
	e.sums[effect] += stepTime
	e.counts[effect]++
	e.total += stepTime
	e.samples++
}

func (e *EffectLoad) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.total) / float64(e.samples) / float64(time.Millisecond)
}

// Mean reports the mean step cost for one effect in milliseconds, zero if
// the effect has not been observed.
func (e *EffectLoad) Mean(effect string) float64 {
	n := e.counts[effect]
	if n == 0 {
		return 0
	}
	return float64(e.sums[effect]) / float64(n) / float64(time.Millisecond)
}

// Effects lists observed effect names sorted by descending mean cost.
func (e *EffectLoad) Effects() []string {
	names := make([]string, 0, len(e.counts))
	for name := range e.counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		mi, mj := e.Mean(names[i]), e.Mean(names[j])
		if mi != mj {
			return mi > mj
		}
		return names[i] < names[j]
	})
	return names
}

func (e *EffectLoad) Reset() {
	e.sums = make(map[string]time.Duration)
	e.counts = make(map[string]int)
	e.total = 0
	e.samples = 0
}
