package render

// FrameBuffer is a W×H grid of palette-index bytes. The backing storage is
// allocated exactly once and shared by every effect in the rotation; writes
// are bounds-checked because an out-of-range write on the target hardware
// corrupts arbitrary memory rather than faulting.
type FrameBuffer struct {
	w, h   int
	pix    []uint8
	maxIdx uint8
}

// NewFrameBuffer allocates the single pixel grid for the engine's lifetime.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &FrameBuffer{w: w, h: h, pix: make([]uint8, w*h), maxIdx: 255}
}

func (f *FrameBuffer) Width() int  { return f.w }
func (f *FrameBuffer) Height() int { return f.h }

// Limit caps the indices Set will store, so every stored byte is a valid
// entry of the active palette. The cycler calls this once per effect window.
func (f *FrameBuffer) Limit(paletteSize int) {
	if paletteSize < 1 {
		paletteSize = 1
	}
	if paletteSize > 256 {
		paletteSize = 256
	}
	f.maxIdx = uint8(paletteSize - 1)
}

// Set stores a palette index at (x, y). Writes outside the extent are
// dropped; indices above the palette limit are clamped.
func (f *FrameBuffer) Set(x, y int, idx uint8) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	if idx > f.maxIdx {
		idx = f.maxIdx
	}
	f.pix[y*f.w+x] = idx
}

// At returns the index at (x, y), or zero outside the extent.
func (f *FrameBuffer) At(x, y int) uint8 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return f.pix[y*f.w+x]
}

// Clear overwrites the whole grid with one index.
func (f *FrameBuffer) Clear(idx uint8) {
	if idx > f.maxIdx {
		idx = f.maxIdx
	}
	for i := range f.pix {
		f.pix[i] = idx
	}
}

// Fill stores idx into the rectangle [x, x+w) × [y, y+h), clipped to the
// extent. Effects that render coarse grids (fire, matrix rain) use it to
// scale their cells up to the logical resolution.
func (f *FrameBuffer) Fill(x, y, w, h int, idx uint8) {
	if idx > f.maxIdx {
		idx = f.maxIdx
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > f.w {
		w = f.w - x
	}
	if y+h > f.h {
		h = f.h - y
	}
	// Wholly outside the extent: nothing survives clipping.
	if w <= 0 || h <= 0 {
		return
	}
	for yy := y; yy < y+h; yy++ {
		row := f.pix[yy*f.w+x : yy*f.w+x+w]
		for i := range row {
			row[i] = idx
		}
	}
}

// Row exposes one row of storage to the display collaborator. The slice
// aliases the buffer; readers must not retain it across frames.
func (f *FrameBuffer) Row(y int) []uint8 {
	if y < 0 || y >= f.h {
		return nil
	}
	return f.pix[y*f.w : (y+1)*f.w]
}
