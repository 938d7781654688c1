// Package engine drives the effect rotation.
//
// The [Cycler] is the engine aggregate: it exclusively owns the frame
// buffer, palette, registry and scheduler state, and lends the surfaces to
// one effect at a time. The [Guardian] wraps every transition with a
// reclamation barrier and enforces the scratch ceiling, so steady-state
// memory is constant across an unbounded rotation.
//
// The loop is single-threaded and cooperative: one Step per iteration, one
// display push per step, voluntary yield in between. Init failures caused by
// the scratch budget are the only recovered errors; anything else is fatal
// and surfaces from [Cycler.Run], leaving restart to external supervision.
package engine
