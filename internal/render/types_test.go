package render

import (
	"errors"
	"testing"
)

type nullEffect struct{}

func (nullEffect) Init(*FrameBuffer, *Palette, *Arena, int64) error { return nil }
func (nullEffect) Step(*FrameBuffer, *Palette, int)                 {}
func (nullEffect) Teardown()                                        {}

func desc(name string, scratch, pal int) Descriptor {
	return Descriptor{Name: name, ScratchBytes: scratch, PaletteSize: pal, New: func() Effect { return nullEffect{} }}
}

func TestRegistryOrderAndBaseline(t *testing.T) {
	r, err := NewRegistry([]Descriptor{
		desc("plasma", 0, 64),
		desc("fire", 4800, 32),
		desc("spiral", 0, 32),
	}, 64)
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}

	if r.Len() != 3 {
		t.Errorf("expected 3 descriptors, got %d", r.Len())
	}
	if got := r.At(4).Name; got != "fire" {
		t.Errorf("expected wrap to fire, got %s", got)
	}
	// Lowest scratch wins, ties broken by order.
	if r.Baseline() != 0 {
		t.Errorf("expected baseline 0 (plasma), got %d", r.Baseline())
	}
	if r.MaxScratch() != 4800 {
		t.Errorf("expected max scratch 4800, got %d", r.MaxScratch())
	}
}

func TestRegistryValidation(t *testing.T) {
	tests := []struct {
		name  string
		descs []Descriptor
		want  error
	}{
		{"empty", nil, ErrEmptyRegistry},
		{"duplicate name", []Descriptor{desc("a", 0, 16), desc("a", 0, 16)}, ErrUnknownEffect},
		{"missing factory", []Descriptor{{Name: "a", PaletteSize: 16}}, ErrUnknownEffect},
		{"palette over cap", []Descriptor{desc("a", 0, 128)}, ErrPaletteSize},
		{"zero palette", []Descriptor{desc("a", 0, 0)}, ErrPaletteSize},
		{"negative scratch", []Descriptor{desc("a", -1, 16)}, ErrScratchBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.descs, 64); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegistryNames(t *testing.T) {
	r, err := NewRegistry([]Descriptor{desc("a", 0, 16), desc("b", 0, 16)}, 64)
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
}
