package model

import (
	"fmt"
	"strings"
)

// Constraint is a predicate over variable positions.
type Constraint interface {
	// Vars returns the variables the constraint reads. A nil result means the
	// constraint depends on how far the assignment has been filled and must be
	// re-evaluated after every placement.
	Vars() []Var

	// Eval reports whether the constraint holds. Unknown means the partial
	// assignment does not decide it yet.
	Eval(a *Assignment) Truth

	String() string
}

type not struct {
	c Constraint
}

// Not negates c.
func Not(c Constraint) Constraint {
	return not{c: c}
}

func (n not) Vars() []Var              { return n.c.Vars() }
func (n not) Eval(a *Assignment) Truth { return n.c.Eval(a).not() }
func (n not) String() string           { return "not(" + n.c.String() + ")" }

type and struct {
	cs []Constraint
}

// And holds when every c holds. An empty And is true.
func And(cs ...Constraint) Constraint {
	return and{cs: cs}
}

func (c and) Vars() []Var { return unionVars(c.cs) }

func (c and) Eval(a *Assignment) Truth {
	out := True
	for _, sub := range c.cs {
		switch sub.Eval(a) {
		case False:
			return False
		case Unknown:
			out = Unknown
		}
	}
	return out
}

func (c and) String() string { return "and(" + joinConstraints(c.cs) + ")" }

type or struct {
	cs []Constraint
}

// Or holds when at least one c holds. An empty Or is false.
func Or(cs ...Constraint) Constraint {
	return or{cs: cs}
}

func (c or) Vars() []Var { return unionVars(c.cs) }

func (c or) Eval(a *Assignment) Truth {
	out := False
	for _, sub := range c.cs {
		switch sub.Eval(a) {
		case True:
			return True
		case Unknown:
			out = Unknown
		}
	}
	return out
}

func (c or) String() string { return "or(" + joinConstraints(c.cs) + ")" }

// Implies holds when p is false or q is true.
func Implies(p, q Constraint) Constraint {
	return Or(Not(p), q)
}

type atMost struct {
	k  int
	cs []Constraint
}

// AtMost holds when no more than k of cs hold.
func AtMost(k int, cs ...Constraint) Constraint {
	return atMost{k: k, cs: cs}
}

func (c atMost) Vars() []Var { return unionVars(c.cs) }

func (c atMost) Eval(a *Assignment) Truth {
	trues, unknowns := 0, 0
	for _, sub := range c.cs {
		switch sub.Eval(a) {
		case True:
			trues++
			if trues > c.k {
				return False
			}
		case Unknown:
			unknowns++
		}
	}
	if trues+unknowns <= c.k {
		return True
	}
	return Unknown
}

func (c atMost) String() string {
	return fmt.Sprintf("atmost(%d; %s)", c.k, joinConstraints(c.cs))
}

func unionVars(cs []Constraint) []Var {
	seen := make(map[int]bool)
	var vars []Var
	for _, c := range cs {
		for _, v := range c.Vars() {
			if !seen[v.ID] {
				seen[v.ID] = true
				vars = append(vars, v)
			}
		}
	}
	return vars
}

func joinConstraints(cs []Constraint) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
