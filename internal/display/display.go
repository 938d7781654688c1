// Package display provides the collaborator that pushes rendered frames to
// an output surface. The engine hands it the frame buffer and palette once
// per frame and does not wait for completion; pacing the physical output is
// the collaborator's problem.
package display

import (
	"github.com/Coreymillia/psyscreen/internal/render"
)

// Display converts palette indices to physical colors and pushes them out.
type Display interface {
	Push(fb *render.FrameBuffer, pal *render.Palette) error
}

// Null discards every frame. Used for headless soak runs and benchmarks.
type Null struct{}

func (Null) Push(*render.FrameBuffer, *render.Palette) error { return nil }
