package display

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/Coreymillia/psyscreen/internal/render"
)

// GIF records pushed frames as paletted images and writes an animated GIF.
// Frames are scaled up by the configured factor, matching how the physical
// display presents the logical resolution.
type GIF struct {
	scale  int
	delay  int // per frame, in 100ths of a second
	frames []*image.Paletted
}

// NewGIF creates a recorder. Scale is the pixel multiplier, delay the
// per-frame delay in 100ths of a second.
func NewGIF(scale, delay int) *GIF {
	if scale < 1 {
		scale = 1
	}
	if delay < 1 {
		delay = 1
	}
	return &GIF{scale: scale, delay: delay}
}

// Frames returns the number of recorded frames.
func (g *GIF) Frames() int { return len(g.frames) }

func (g *GIF) Push(fb *render.FrameBuffer, pal *render.Palette) error {
	cp := make(color.Palette, pal.Len())
	for i := range cp {
		cp[i] = pal.At(i)
	}

	w, h := fb.Width()*g.scale, fb.Height()*g.scale
	img := image.NewPaletted(image.Rect(0, 0, w, h), cp)
	for y := 0; y < fb.Height(); y++ {
		row := fb.Row(y)
		for x, idx := range row {
			for dy := 0; dy < g.scale; dy++ {
				base := (y*g.scale+dy)*img.Stride + x*g.scale
				for dx := 0; dx < g.scale; dx++ {
					img.Pix[base+dx] = idx
				}
			}
		}
	}
	g.frames = append(g.frames, img)
	return nil
}

// Save writes the recording as a looping animated GIF.
func (g *GIF) Save(path string) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
