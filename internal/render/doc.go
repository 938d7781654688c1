// Package render provides the core primitives of the effect-cycling engine.
//
// The package defines the fixed memory surfaces every effect draws into and
// the contract effects implement:
//
//   - [FrameBuffer]: W×H grid of palette indices, allocated once and reused
//   - [Palette]: fixed-capacity color table, sealed for an effect's lifetime
//   - [Arena]: bounded scratch allocator reclaimed between effects
//   - [Effect]: init/step/teardown contract for animation plug-ins
//   - [Registry]: the fixed rotation order of effect descriptors
//
// # Memory Discipline
//
// Nothing in this package allocates per frame. The frame buffer and palette
// are created once at engine start; effect scratch state comes out of the
// arena and is released wholesale at the reclamation barrier:
//
//	scratch := render.NewArena(budget)
//	heat, err := scratch.Bytes(80 * 60)
//	...
//	scratch.Reset() // between effects
//
// # Thread Safety
//
// None of these types are safe for concurrent use. The engine is
// single-threaded: one writer (the active effect) and one reader (the
// display collaborator), strictly interleaved.
package render
