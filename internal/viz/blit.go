package viz

import (
	"fmt"
	"strings"

	"github.com/Coreymillia/psyscreen/internal/render"
)

// Blitter converts the indexed frame buffer into terminal rows. Each text
// cell carries two vertically stacked pixels through the upper half block,
// foreground for the top pixel and background for the bottom, so a 160x120
// buffer downsampled by two lands at 80x30 cells.
type Blitter struct {
	down int
	buf  strings.Builder
}

func NewBlitter(down int) *Blitter {
	if down < 1 {
		down = 1
	}
	return &Blitter{down: down}
}

// Cols reports the cell width the blitter produces for a buffer.
func (b *Blitter) Cols(fb *render.FrameBuffer) int {
	return fb.Width() / b.down
}

// Rows reports the cell height the blitter produces for a buffer.
func (b *Blitter) Rows(fb *render.FrameBuffer) int {
	return fb.Height() / b.down / 2
}

// String renders the buffer through the palette. The builder is reused
// across frames, so the only steady-state allocation is the returned string.
func (b *Blitter) String(fb *render.FrameBuffer, pal *render.Palette) string {
	cols, rows := b.Cols(fb), b.Rows(fb)
	b.buf.Reset()
	b.buf.Grow(cols * rows * 40)

	for row := 0; row < rows; row++ {
		top := fb.Row(row * 2 * b.down)
		bot := fb.Row((row*2 + 1) * b.down)
		for col := 0; col < cols; col++ {
			tc := pal.At(int(top[col*b.down]))
			bc := pal.At(int(bot[col*b.down]))
			fmt.Fprintf(&b.buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				tc.R, tc.G, tc.B, bc.R, bc.G, bc.B)
		}
		b.buf.WriteString("\x1b[0m\n")
	}
	return b.buf.String()
}
