package render

import "time"

// Effect is the contract every animation plug-in implements. An instance is
// created fresh for each active window: Init claims bounded scratch from the
// arena and fills the palette, Step advances exactly one frame, Teardown
// drops all references so the reclamation barrier can run.
type Effect interface {
	// Init prepares the effect against the shared surfaces. Scratch
	// allocations must stay within the declared bound; a failed claim
	// propagates ErrScratchBudget and the effect is skipped.
	Init(fb *FrameBuffer, pal *Palette, scratch *Arena, seed int64) error

	// Step renders one frame. It is the only operation permitted to mutate
	// the frame buffer, and must run in bounded time independent of frame.
	Step(fb *FrameBuffer, pal *Palette, frame int)

	// Teardown releases scratch references. After it returns the effect
	// holds nothing that points into the frame buffer or arena.
	Teardown()
}

// Descriptor describes one entry in the rotation: a factory plus the bounds
// the guardian checks before the effect is allowed to allocate.
type Descriptor struct {
	Name         string
	ScratchBytes int
	PaletteSize  int
	// Seed overrides the engine-wide seed for this effect when nonzero.
	Seed int64
	// Duration overrides the engine-wide window length when positive.
	Duration time.Duration
	New      func() Effect
}

// Registry is the fixed, ordered effect rotation. It is built once at
// startup and never mutated; rotation order is exactly declaration order.
type Registry struct {
	descs    []Descriptor
	baseline int
}

// NewRegistry validates the descriptors and fixes the rotation order. The
// baseline is the lowest-scratch effect (ties broken by order); it is the
// fallback when every other init fails.
func NewRegistry(descs []Descriptor, paletteCap int) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyRegistry
	}
	seen := make(map[string]bool, len(descs))
	baseline := 0
	for i, d := range descs {
		if d.Name == "" || d.New == nil {
			return nil, &InitError{Effect: d.Name, Wrapped: ErrUnknownEffect}
		}
		if seen[d.Name] {
			return nil, &InitError{Effect: d.Name, Wrapped: ErrUnknownEffect}
		}
		seen[d.Name] = true
		if d.PaletteSize < 1 || d.PaletteSize > paletteCap {
			return nil, &InitError{Effect: d.Name, Wrapped: ErrPaletteSize}
		}
		if d.ScratchBytes < 0 {
			return nil, &InitError{Effect: d.Name, Wrapped: ErrScratchBudget}
		}
		if d.ScratchBytes < descs[baseline].ScratchBytes {
			baseline = i
		}
	}
	return &Registry{descs: descs, baseline: baseline}, nil
}

func (r *Registry) Len() int            { return len(r.descs) }
func (r *Registry) At(i int) Descriptor { return r.descs[i%len(r.descs)] }
func (r *Registry) Baseline() int       { return r.baseline }

// MaxScratch returns the largest declared scratch bound in the rotation.
// The guardian's arena is sized to at least this value.
func (r *Registry) MaxScratch() int {
	max := 0
	for _, d := range r.descs {
		if d.ScratchBytes > max {
			max = d.ScratchBytes
		}
	}
	return max
}

// Names returns the rotation order for display and config round-trips.
func (r *Registry) Names() []string {
	names := make([]string, len(r.descs))
	for i, d := range r.descs {
		names[i] = d.Name
	}
	return names
}
