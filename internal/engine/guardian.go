package engine

import (
	"runtime"

	"github.com/Coreymillia/psyscreen/internal/render"
)

// Guardian owns the scratch arena and stands between effects and memory. It
// pre-checks declared bounds before an effect is allowed to allocate and
// reclaims everything at the barrier between teardown and the next init.
type Guardian struct {
	arena *render.Arena
}

// NewGuardian allocates the arena once, with the engine-wide budget.
func NewGuardian(budget int) *Guardian {
	return &Guardian{arena: render.NewArena(budget)}
}

// Scratch exposes the arena to the active effect's init.
func (g *Guardian) Scratch() *render.Arena { return g.arena }

// Budget returns the fixed ceiling in bytes.
func (g *Guardian) Budget() int { return g.arena.Budget() }

// InUse returns the bytes currently claimed by the active effect.
func (g *Guardian) InUse() int { return g.arena.InUse() }

// CheckBudget fails fast when a declared scratch bound cannot be satisfied,
// before any allocation is attempted.
func (g *Guardian) CheckBudget(requested int) error {
	if requested < 0 || requested > g.arena.Budget()-g.arena.InUse() {
		return render.ErrScratchBudget
	}
	return nil
}

// ReclaimBarrier reclaims the torn-down effect's scratch and forces a
// collection so nothing accumulates across rotations.
func (g *Guardian) ReclaimBarrier() {
	g.arena.Reset()
	runtime.GC()
}
