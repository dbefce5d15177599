package model

import (
	"fmt"
	"strconv"
)

// Kind distinguishes slot variables from block boundaries.
type Kind int

const (
	// KindSlot is a variable bound to one positionable unit.
	KindSlot Kind = iota

	// KindBoundary marks the end of one block and the start of the next.
	KindBoundary
)

func (k Kind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindBoundary:
		return "boundary"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Var is an integer decision variable. IDs are dense indexes into the Store
// that created the variable.
type Var struct {
	ID   int
	Name string
	Kind Kind
}

func (v Var) String() string {
	return v.Name
}

// Term is either a variable or an integer constant. Constants model the
// virtual boundaries at 0 and N+1.
type Term struct {
	v     Var
	c     int
	isVar bool
}

// V returns a Term referring to v.
func V(v Var) Term {
	return Term{v: v, isVar: true}
}

// C returns a constant Term.
func C(c int) Term {
	return Term{c: c}
}

// Var reports the variable behind t, if any.
func (t Term) Var() (Var, bool) {
	return t.v, t.isVar
}

func (t Term) bounds(a *Assignment) (lo, hi int) {
	if !t.isVar {
		return t.c, t.c
	}
	return a.Bounds(t.v)
}

func (t Term) String() string {
	if t.isVar {
		return t.v.Name
	}
	return strconv.Itoa(t.c)
}

func termVars(terms ...Term) []Var {
	var vars []Var
	for _, t := range terms {
		if v, ok := t.Var(); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

func varNames(vars []Var) string {
	s := ""
	for i, v := range vars {
		if i > 0 {
			s += ", "
		}
		s += v.Name
	}
	return fmt.Sprintf("[%s]", s)
}
