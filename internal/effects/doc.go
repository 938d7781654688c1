// Package effects provides the animation roster for the render engine.
//
// Each effect implements the [render.Effect] contract, drawing palette
// indices into the shared frame buffer:
//
//   - [Plasma]: two-axis sine interference, the guaranteed-safe baseline
//   - [Spiral]: rotating spiral with a radial component
//   - [MatrixRain]: green digital rain on a coarse cell grid
//   - [ColorMatrix]: multi-color rain variant
//   - [Julia]: morphing Julia-set fractal with escape-time coloring
//   - [Fire]: cellular heat diffusion
//   - [Starfield]: perspective star warp
//   - [Waves]: orbiting wave-interference sources
//   - [Streamers]: wavy horizontal ribbons
//
// Effects are deterministic under a fixed seed: every random draw comes
// from an explicit source created in Init, never from global state. Phase
// accumulators wrap, so Step runs in bounded time at any frame index.
//
// [DefaultDescriptors] returns the full rotation in its canonical order;
// [Roster] builds a subset from config names.
package effects
