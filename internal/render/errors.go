package render

import "errors"

// Domain errors for the render engine.
var (
	// ErrScratchBudget indicates an effect's scratch request exceeds the
	// engine-wide ceiling. This is the only error with a recovery path: the
	// cycler skips the effect and advances the rotation.
	ErrScratchBudget = errors.New("render: scratch budget exceeded")

	// ErrPaletteSize indicates a requested palette size exceeds capacity.
	ErrPaletteSize = errors.New("render: palette size exceeds capacity")

	// ErrPaletteSealed indicates a write to a palette after initialization.
	ErrPaletteSealed = errors.New("render: palette sealed for effect lifetime")

	// ErrUnknownEffect indicates a roster name with no registered descriptor.
	ErrUnknownEffect = errors.New("render: unknown effect")

	// ErrEmptyRegistry indicates a registry constructed with no descriptors.
	ErrEmptyRegistry = errors.New("render: registry is empty")

	// ErrSeed indicates an effect-specific setup precondition failed.
	ErrSeed = errors.New("render: invalid effect seed")

	// ErrResolution indicates the frame buffer is too small for an effect's
	// cell grid.
	ErrResolution = errors.New("render: resolution below effect minimum")
)

// InitError wraps an init failure with the effect that produced it.
type InitError struct {
	Effect  string
	Wrapped error
}

func (e *InitError) Error() string {
	return e.Effect + ": " + e.Wrapped.Error()
}

func (e *InitError) Unwrap() error {
	return e.Wrapped
}
