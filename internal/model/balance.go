package model

import "fmt"

type blockBalance struct {
	edges []Term
	short []Var
	n     int
}

// BlockBalance holds when the weighted lengths of the blocks delimited by
// edges differ pairwise by at most one. Edges run from C(0) to C(n+1) with
// the boundary variables in between. A block's length is the number of
// positions strictly inside it, with every short variable inside counting as
// half.
//
// Lengths are tracked in half units so the arithmetic stays integral.
func BlockBalance(edges []Term, short []Var, n int) Constraint {
	return blockBalance{edges: edges, short: short, n: n}
}

// Vars returns nil: an open block grows with every placement, whatever the
// variable placed.
func (c blockBalance) Vars() []Var { return nil }

func (c blockBalance) Eval(a *Assignment) Truth {
	blocks := len(c.edges) - 1
	if blocks < 1 {
		return True
	}
	slots := c.n - (blocks - 1)
	total := 2*slots - len(c.short)
	filled := a.Filled()

	maxLo, minHi := -Unbounded, Unbounded
	exact := true
	started := true
	for i := 0; i < blocks; i++ {
		sLo, sHi := c.edges[i].bounds(a)
		eLo, eHi := c.edges[i+1].bounds(a)

		var lo, hi int
		switch {
		case !started || sLo != sHi:
			started = false
			lo, hi = 0, Unbounded
		case eLo == eHi:
			s, e := sLo, eLo
			fixed, pending := c.shortsBetween(a, s, e)
			hi = 2*(e-s-1) - fixed
			lo = hi
			if e-1 > filled {
				lo = hi - pending
			}
		default:
			s := sLo
			k := filled - s
			if k < 0 {
				k = 0
			}
			fixed, _ := c.shortsBetween(a, s, filled+1)
			lo, hi = 2*k-fixed, Unbounded
		}

		if lo != hi {
			exact = false
		}
		if lo > maxLo {
			maxLo = lo
		}
		if hi < minHi {
			minHi = hi
		}
		// Lengths within 2 half units of each other sit within 2 of the mean.
		if lo*blocks > total+2*blocks {
			return False
		}
		if hi < Unbounded && hi*blocks < total-2*blocks {
			return False
		}
	}

	if maxLo-minHi > 2 {
		return False
	}
	if exact {
		return True
	}
	return Unknown
}

// shortsBetween counts placed short variables strictly between s and e, and
// short variables not yet placed.
func (c blockBalance) shortsBetween(a *Assignment, s, e int) (fixed, pending int) {
	for _, v := range c.short {
		p, ok := a.Value(v)
		if !ok {
			pending++
			continue
		}
		if p > s && p < e {
			fixed++
		}
	}
	return fixed, pending
}

func (c blockBalance) String() string {
	return fmt.Sprintf("blockbalance(edges=%d, short=%s)", len(c.edges), varNames(c.short))
}
