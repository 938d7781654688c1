package render

import "testing"

func TestFrameBufferBounds(t *testing.T) {
	fb := NewFrameBuffer(8, 4)
	fb.Limit(16)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 8, 0},
		{"y at height", 0, 4},
		{"far outside", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb.Set(tt.x, tt.y, 5)
			if got := fb.At(tt.x, tt.y); got != 0 {
				t.Errorf("expected dropped write, got %d", got)
			}
		})
	}

	fb.Set(3, 2, 7)
	if got := fb.At(3, 2); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestFrameBufferIndexClamp(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Limit(16)

	fb.Set(0, 0, 200)
	if got := fb.At(0, 0); got != 15 {
		t.Errorf("expected clamp to 15, got %d", got)
	}

	fb.Clear(99)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != 15 {
				t.Errorf("clear: expected 15 at (%d,%d), got %d", x, y, got)
			}
		}
	}
}

func TestFrameBufferFillClips(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Limit(4)

	fb.Fill(-2, -2, 4, 4, 3)
	if got := fb.At(1, 1); got != 3 {
		t.Errorf("expected clipped fill to land inside, got %d", got)
	}
	if got := fb.At(2, 2); got != 0 {
		t.Errorf("expected fill to stop at extent, got %d", got)
	}

	fb.Clear(0)
	fb.Fill(6, 6, 10, 10, 2)
	if got := fb.At(7, 7); got != 2 {
		t.Errorf("expected corner filled, got %d", got)
	}
}

func TestFrameBufferFillOutsideExtent(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Limit(4)
	fb.Clear(0)

	// Rectangles wholly outside on every side are dropped, not sliced.
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"right of extent", 9, 0, 2, 2},
		{"at right edge", 8, 0, 2, 2},
		{"left of extent", -5, 0, 2, 2},
		{"below extent", 0, 9, 2, 2},
		{"above extent", 0, -5, 2, 2},
		{"far corner", 100, 100, 4, 4},
		{"zero size", 2, 2, 0, 0},
		{"negative size", 2, 2, -3, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb.Fill(tt.x, tt.y, tt.w, tt.h, 3)
			for y := 0; y < 8; y++ {
				for _, idx := range fb.Row(y) {
					if idx != 0 {
						t.Fatalf("fill leaked into the buffer at row %d", y)
					}
				}
			}
		})
	}
}

func TestFrameBufferSingleAllocation(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	row := fb.Row(0)
	fb.Clear(1)
	fb.Fill(0, 0, 16, 16, 2)

	// Row slices alias the one backing array for the engine's lifetime.
	if &row[0] != &fb.Row(0)[0] {
		t.Error("frame buffer storage was reallocated")
	}
	if fb.Row(-1) != nil || fb.Row(16) != nil {
		t.Error("expected nil row outside extent")
	}
}
