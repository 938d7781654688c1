// Package viz provides the terminal preview for the effect rotation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: interactive view driving the engine one tick per frame
//   - [Blitter]: half-block rasterizer mapping two pixels onto each cell
//
// # Key Bindings
//
//	Space - Pause/Resume rotation
//	N     - Skip to the next effect
//	G     - Toggle GIF recording
//	Q     - Quit
//	?     - Show help overlay
//
// # Recording
//
// Sessions can be captured as looping GIF animations with the G key; the
// first press starts capturing pushed frames, the second writes the file.
package viz
