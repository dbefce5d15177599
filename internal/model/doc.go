// Package model holds the decision variables and constraints of one show
// ordering problem.
//
// Every positionable unit (a piece, a diddy, or one vignette part) and every
// block boundary is an integer variable over the shared domain 1..N. A solved
// model is a permutation of 1..N: boundaries sit between slots, so block
// lengths and block membership reduce to arithmetic on variable values.
//
// Constraints are evaluated three-valued against an Assignment that may be
// partial. Positions are filled in increasing order, so an unplaced variable
// is known to lie in [Filled()+1, N]. Evaluation is monotone: once a
// constraint reports True or False, placing further variables never changes
// the answer. The solver relies on this for pruning.
//
// Key types:
//   - Var, Term: variables and constant-or-variable operands
//   - Constraint: three-valued predicate over a partial Assignment
//   - Store: accumulates hard constraints and weighted soft constraints
package model
