package render

// Arena is the fixed-capacity scratch allocator shared by the whole
// rotation. Effects claim sub-ranges during init instead of asking the heap
// for fresh objects on every switch; Reset reclaims everything at once, so
// steady-state memory is constant no matter how long the rotation runs.
//
// Two backing stores are kept, one for bytes and one for float64s, both
// charged against a single byte-denominated budget. Either store alone can
// satisfy the full budget.
type Arena struct {
	bytes    []byte
	floats   []float64
	byteOff  int
	floatOff int
	budget   int
	used     int
}

// NewArena allocates an arena with the given budget in bytes. The backing
// stores are allocated once, at engine start.
func NewArena(budget int) *Arena {
	if budget < 0 {
		budget = 0
	}
	return &Arena{
		bytes:  make([]byte, budget),
		floats: make([]float64, budget/8),
		budget: budget,
	}
}

// Budget returns the fixed ceiling in bytes.
func (a *Arena) Budget() int { return a.budget }

// InUse returns the bytes currently claimed. Zero after every Reset.
func (a *Arena) InUse() int { return a.used }

// Bytes claims a zeroed n-byte sub-range, charging n against the budget.
func (a *Arena) Bytes(n int) ([]byte, error) {
	if n < 0 || a.used+n > a.budget || a.byteOff+n > len(a.bytes) {
		return nil, ErrScratchBudget
	}
	s := a.bytes[a.byteOff : a.byteOff+n : a.byteOff+n]
	for i := range s {
		s[i] = 0
	}
	a.byteOff += n
	a.used += n
	return s, nil
}

// Float64s claims a zeroed n-element sub-range, charging 8n bytes.
func (a *Arena) Float64s(n int) ([]float64, error) {
	if n < 0 || a.used+8*n > a.budget || a.floatOff+n > len(a.floats) {
		return nil, ErrScratchBudget
	}
	s := a.floats[a.floatOff : a.floatOff+n : a.floatOff+n]
	for i := range s {
		s[i] = 0
	}
	a.floatOff += n
	a.used += 8 * n
	return s, nil
}

// Reset reclaims every claimed sub-range. Callers must have dropped their
// slices first; the next effect's claims will reuse the same storage.
func (a *Arena) Reset() {
	a.byteOff = 0
	a.floatOff = 0
	a.used = 0
}
