package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/Coreymillia/psyscreen/internal/render"
)

func blitFixture(t *testing.T) (*render.FrameBuffer, *render.Palette) {
	t.Helper()
	fb := render.NewFrameBuffer(8, 8)
	pal := render.NewPalette()
	if err := pal.Reset(2); err != nil {
		t.Fatalf("palette reset failed: %v", err)
	}
	pal.Set(0, color.RGBA{A: 255})
	pal.Set(1, color.RGBA{R: 255, A: 255})
	return fb, pal
}

func TestBlitterDimensions(t *testing.T) {
	fb, _ := blitFixture(t)

	tests := []struct {
		down, cols, rows int
	}{
		{1, 8, 4},
		{2, 4, 2},
		{0, 8, 4}, // clamped to 1
	}
	for _, tt := range tests {
		b := NewBlitter(tt.down)
		if got := b.Cols(fb); got != tt.cols {
			t.Errorf("down %d: expected %d cols, got %d", tt.down, tt.cols, got)
		}
		if got := b.Rows(fb); got != tt.rows {
			t.Errorf("down %d: expected %d rows, got %d", tt.down, tt.rows, got)
		}
	}
}

func TestBlitterOutput(t *testing.T) {
	fb, pal := blitFixture(t)
	fb.Fill(0, 0, 8, 3, 1)

	b := NewBlitter(1)
	out := b.String(fb, pal)

	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("expected 4 rows, got %d", got)
	}
	if got := strings.Count(out, "▀"); got != 32 {
		t.Errorf("expected 32 cells, got %d", got)
	}
	// Top half red over red, bottom half red over black, then black.
	if !strings.Contains(out, "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m") {
		t.Error("missing red-over-red cell in upper rows")
	}
	if !strings.Contains(out, "\x1b[38;2;255;0;0m\x1b[48;2;0;0;0m") {
		t.Error("missing red-over-black cell at the color boundary")
	}
	if !strings.Contains(out, "\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m") {
		t.Error("missing black cell in lower rows")
	}
}

func TestBlitterReuseIsStable(t *testing.T) {
	fb, pal := blitFixture(t)
	fb.Fill(0, 0, 8, 8, 1)

	b := NewBlitter(2)
	first := b.String(fb, pal)
	second := b.String(fb, pal)
	if first != second {
		t.Error("repeated blits of the same frame diverged")
	}
}
