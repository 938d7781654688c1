package effects

import (
	"fmt"

	"github.com/Coreymillia/psyscreen/internal/render"
)

// Default logical resolution, matching the constrained hardware profile.
const (
	logicalW = 160
	logicalH = 120
)

// Descriptors returns the full rotation in its canonical order, with every
// scratch bound computed as the exact byte cost of the effect's arena claims
// at the given resolution.
func Descriptors(w, h int) []render.Descriptor {
	rainCols := w / rainCell
	return []render.Descriptor{
		{Name: "plasma", ScratchBytes: 0, PaletteSize: plasmaColors, New: NewPlasma},
		{Name: "spiral", ScratchBytes: 0, PaletteSize: spiralColors, New: NewSpiral},
		{Name: "matrix_rain", ScratchBytes: 17 * rainCols, PaletteSize: rainColors, New: NewMatrixRain},
		{Name: "color_matrix", ScratchBytes: 18 * rainCols, PaletteSize: cmatColors, New: NewColorMatrix},
		{Name: "julia", ScratchBytes: 0, PaletteSize: juliaColors, New: NewJulia},
		{Name: "fire", ScratchBytes: (w / fireScale) * (h / fireScale), PaletteSize: fireColors, New: NewFire},
		{Name: "starfield", ScratchBytes: 8 * starCount * starStride, PaletteSize: starColors, New: NewStarfield},
		{Name: "waves", ScratchBytes: 8 * waveSources * waveStride, PaletteSize: waveColors, New: NewWaves},
		{Name: "streamers", ScratchBytes: 8 * streamerCount * streamerStride, PaletteSize: streamerColors, New: NewStreamers},
	}
}

// DefaultDescriptors returns the rotation at the default logical resolution.
func DefaultDescriptors() []render.Descriptor {
	return Descriptors(logicalW, logicalH)
}

// Roster builds a rotation from config names for the given resolution,
// preserving their order. An empty list selects the full default rotation.
func Roster(names []string, w, h int) ([]render.Descriptor, error) {
	all := Descriptors(w, h)
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]render.Descriptor, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}
	descs := make([]render.Descriptor, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", render.ErrUnknownEffect, name)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Names lists the default rotation order.
func Names() []string {
	all := DefaultDescriptors()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}
