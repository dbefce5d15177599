package model

import "fmt"

// Unbounded is used as the open end of a Diff range.
const Unbounded = 1 << 30

type diff struct {
	a, b     Term
	min, max int
}

// Diff holds when min <= b - a <= max.
func Diff(a, b Term, min, max int) Constraint {
	return diff{a: a, b: b, min: min, max: max}
}

// Less holds when a < b.
func Less(a, b Term) Constraint {
	return Diff(a, b, 1, Unbounded)
}

// Equal holds when x == y + offset.
func Equal(x, y Term, offset int) Constraint {
	return Diff(y, x, offset, offset)
}

// At holds when v sits at position pos.
func At(v Var, pos int) Constraint {
	return Diff(C(0), V(v), pos, pos)
}

// Within holds when start < v < end.
func Within(v Var, start, end Term) Constraint {
	return And(Less(start, V(v)), Less(V(v), end))
}

func (d diff) Vars() []Var { return termVars(d.a, d.b) }

func (d diff) Eval(a *Assignment) Truth {
	aLo, aHi := d.a.bounds(a)
	bLo, bHi := d.b.bounds(a)
	lo, hi := bLo-aHi, bHi-aLo
	switch {
	case hi < d.min || lo > d.max:
		return False
	case lo >= d.min && hi <= d.max:
		return True
	default:
		return Unknown
	}
}

func (d diff) String() string {
	switch {
	case d.min == d.max:
		return fmt.Sprintf("%s - %s == %d", d.b, d.a, d.min)
	case d.max >= Unbounded:
		return fmt.Sprintf("%s - %s >= %d", d.b, d.a, d.min)
	default:
		return fmt.Sprintf("%d <= %s - %s <= %d", d.min, d.b, d.a, d.max)
	}
}

type adjacent struct {
	x, y Var
}

// Adjacent holds when x and y occupy neighbouring positions. Boundaries in
// between do not matter.
func Adjacent(x, y Var) Constraint {
	return adjacent{x: x, y: y}
}

func (c adjacent) Vars() []Var { return []Var{c.x, c.y} }

func (c adjacent) Eval(a *Assignment) Truth {
	xv, xok := a.Value(c.x)
	yv, yok := a.Value(c.y)
	switch {
	case xok && yok:
		return truthOf(xv-yv == 1 || yv-xv == 1)
	case xok:
		return neighbourPossible(xv, a, c.y)
	case yok:
		return neighbourPossible(yv, a, c.x)
	default:
		return Unknown
	}
}

func neighbourPossible(p int, a *Assignment, other Var) Truth {
	lo, hi := a.Bounds(other)
	if (p-1 >= lo && p-1 <= hi) || (p+1 >= lo && p+1 <= hi) {
		return Unknown
	}
	return False
}

func (c adjacent) String() string {
	return fmt.Sprintf("adjacent(%s, %s)", c.x, c.y)
}

type inDomain struct {
	v Var
	n int
}

// InDomain holds when 1 <= v <= n.
func InDomain(v Var, n int) Constraint {
	return inDomain{v: v, n: n}
}

func (c inDomain) Vars() []Var { return []Var{c.v} }

func (c inDomain) Eval(a *Assignment) Truth {
	lo, hi := a.Bounds(c.v)
	switch {
	case lo >= 1 && hi <= c.n:
		return True
	case hi < 1 || lo > c.n:
		return False
	default:
		return Unknown
	}
}

func (c inDomain) String() string {
	return fmt.Sprintf("1 <= %s <= %d", c.v, c.n)
}

type allDifferent struct {
	vars []Var
}

// AllDifferent holds when no two of vars share a value.
func AllDifferent(vars []Var) Constraint {
	return allDifferent{vars: vars}
}

func (c allDifferent) Vars() []Var { return c.vars }

func (c allDifferent) Eval(a *Assignment) Truth {
	seen := make(map[int]bool, len(c.vars))
	placed := 0
	for _, v := range c.vars {
		p, ok := a.Value(v)
		if !ok {
			continue
		}
		if seen[p] {
			return False
		}
		seen[p] = true
		placed++
	}
	if placed == len(c.vars) {
		return True
	}
	return Unknown
}

func (c allDifferent) String() string {
	return "alldifferent" + varNames(c.vars)
}
