package model

import "fmt"

// Assignment maps variables to positions. Positions 1..Filled() are occupied;
// every unplaced variable takes one of the remaining positions.
type Assignment struct {
	vals   []int
	at     []int
	filled int
}

// NewAssignment creates an empty assignment over n variables.
func NewAssignment(n int) *Assignment {
	at := make([]int, n+1)
	for i := range at {
		at[i] = -1
	}
	return &Assignment{
		vals: make([]int, n),
		at:   at,
	}
}

// AssignmentOf builds a complete assignment from values indexed by variable
// ID. Values must be a permutation of 1..len(values).
func AssignmentOf(values []int) (*Assignment, error) {
	a := NewAssignment(len(values))
	for id, pos := range values {
		if pos < 1 || pos > len(values) {
			return nil, fmt.Errorf("variable %d has value %d outside 1..%d", id, pos, len(values))
		}
		if a.at[pos] != -1 {
			return nil, fmt.Errorf("variables %d and %d share value %d", a.at[pos], id, pos)
		}
		a.vals[id] = pos
		a.at[pos] = id
	}
	a.filled = len(values)
	return a, nil
}

// Size returns the number of variables, which is also the largest position.
func (a *Assignment) Size() int {
	return len(a.vals)
}

// Filled returns the number of leading positions that are occupied.
func (a *Assignment) Filled() int {
	return a.filled
}

// Place puts variable id at the next free position and returns it.
func (a *Assignment) Place(id int) int {
	a.filled++
	a.vals[id] = a.filled
	a.at[a.filled] = id
	return a.filled
}

// Unplace removes the variable at the last filled position.
func (a *Assignment) Unplace() {
	id := a.at[a.filled]
	a.vals[id] = 0
	a.at[a.filled] = -1
	a.filled--
}

// Swap exchanges the positions of two placed variables.
func (a *Assignment) Swap(x, y int) {
	px, py := a.vals[x], a.vals[y]
	a.vals[x], a.vals[y] = py, px
	a.at[px], a.at[py] = y, x
}

// Value returns the position of v and whether v has been placed.
func (a *Assignment) Value(v Var) (int, bool) {
	p := a.vals[v.ID]
	return p, p != 0
}

// Bounds returns the smallest and largest position v can still take.
func (a *Assignment) Bounds(v Var) (lo, hi int) {
	if p := a.vals[v.ID]; p != 0 {
		return p, p
	}
	return a.filled + 1, len(a.vals)
}

// At returns the variable ID placed at pos, or -1.
func (a *Assignment) At(pos int) int {
	if pos < 1 || pos >= len(a.at) {
		return -1
	}
	return a.at[pos]
}

// Placed reports whether variable id has a position.
func (a *Assignment) Placed(id int) bool {
	return a.vals[id] != 0
}

// Values returns a copy of the positions indexed by variable ID.
func (a *Assignment) Values() []int {
	out := make([]int, len(a.vals))
	copy(out, a.vals)
	return out
}
