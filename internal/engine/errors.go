package engine

import "errors"

var (
	// ErrValidation indicates a request that breaks the caller contract.
	ErrValidation = errors.New("validation failed")

	// ErrInfeasible indicates no running order satisfies every hard rule.
	ErrInfeasible = errors.New("no feasible running order")

	// ErrNotFound indicates a show file was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAssignment indicates solved positions that are not a
	// permutation of the plan's variables.
	ErrInvalidAssignment = errors.New("invalid assignment")
)
