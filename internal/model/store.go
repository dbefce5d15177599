package model

import (
	"errors"
	"fmt"
)

// ErrViolated indicates an assignment breaks a hard constraint.
var ErrViolated = errors.New("hard constraint violated")

// Soft is a preference: the objective gains Weight whenever Constraint holds.
// Negative weights are penalties.
type Soft struct {
	Constraint Constraint
	Weight     int
}

// Store accumulates the variables and constraints of one ordering problem.
// It is built once per request and is read-only while being solved.
type Store struct {
	vars []Var
	hard []Constraint
	soft []Soft
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		vars: []Var{},
		hard: []Constraint{},
		soft: []Soft{},
	}
}

// NewVar creates a variable with the next free ID.
func (s *Store) NewVar(name string, kind Kind) Var {
	v := Var{ID: len(s.vars), Name: name, Kind: kind}
	s.vars = append(s.vars, v)
	return v
}

// Require adds hard constraints.
func (s *Store) Require(cs ...Constraint) {
	s.hard = append(s.hard, cs...)
}

// Prefer adds a soft constraint. A zero weight is dropped.
func (s *Store) Prefer(c Constraint, weight int) {
	if weight == 0 {
		return
	}
	s.soft = append(s.soft, Soft{Constraint: c, Weight: weight})
}

// Vars returns all variables in ID order.
func (s *Store) Vars() []Var {
	return s.vars
}

// Size returns the number of variables, N.
func (s *Store) Size() int {
	return len(s.vars)
}

// Hard returns the hard constraints.
func (s *Store) Hard() []Constraint {
	return s.hard
}

// Soft returns the soft constraints.
func (s *Store) Soft() []Soft {
	return s.soft
}

// Check verifies a complete assignment against every hard constraint.
func (s *Store) Check(values []int) error {
	if len(values) != len(s.vars) {
		return fmt.Errorf("%w: got %d values for %d variables", ErrViolated, len(values), len(s.vars))
	}
	a, err := AssignmentOf(values)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrViolated, err)
	}
	for _, c := range s.hard {
		if c.Eval(a) != True {
			return fmt.Errorf("%w: %s", ErrViolated, c)
		}
	}
	return nil
}

// Score returns the objective value of a complete assignment.
func (s *Store) Score(values []int) (int, error) {
	a, err := AssignmentOf(values)
	if err != nil {
		return 0, err
	}
	return s.ScoreOf(a), nil
}

// ScoreOf returns the objective value of a complete assignment.
func (s *Store) ScoreOf(a *Assignment) int {
	score := 0
	for _, soft := range s.soft {
		if soft.Constraint.Eval(a) == True {
			score += soft.Weight
		}
	}
	return score
}

// SatisfiesOf reports whether a complete assignment meets every hard
// constraint.
func (s *Store) SatisfiesOf(a *Assignment) bool {
	for _, c := range s.hard {
		if c.Eval(a) != True {
			return false
		}
	}
	return true
}
