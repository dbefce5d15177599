package solver

import (
	"time"

	"github.com/danieljhkim/showorder/internal/clock"
)

// Status is the outcome of a solve.
type Status string

const (
	// StatusOptimal means the search space was exhausted and Values is the
	// best assignment.
	StatusOptimal Status = "optimal"

	// StatusFeasible means the time budget ran out; Values is the best
	// assignment found so far.
	StatusFeasible Status = "feasible"

	// StatusInfeasible means no assignment satisfies the hard constraints.
	StatusInfeasible Status = "infeasible"

	// StatusTimedOut means the time budget ran out before any assignment was
	// found.
	StatusTimedOut Status = "timed_out"
)

// HasSolution reports whether a solution with this status carries values.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Options tune a solve.
type Options struct {
	// Timeout bounds the wall-clock time of the solve. Zero means no limit.
	Timeout time.Duration

	// Workers is the portfolio size (default 1).
	Workers int

	// Seed drives the randomized workers. Zero picks a seed from the clock.
	Seed uint64

	// Clock measures the timeout (default RealClock).
	Clock clock.Clock
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Clock == nil {
		o.Clock = &clock.RealClock{}
	}
	if o.Seed == 0 {
		o.Seed = uint64(o.Clock.Now().UnixNano())
	}
	return o
}

// Solution is the result of a solve.
type Solution struct {
	Status Status

	// Values holds the position of each variable, indexed by variable ID.
	// It is nil unless Status.HasSolution.
	Values []int

	// Score is the objective value of Values.
	Score int

	// Nodes counts the search nodes visited by all workers.
	Nodes int64

	// Elapsed is the time spent solving, measured on Options.Clock.
	Elapsed time.Duration

	// Seed is the seed the workers were started with.
	Seed uint64
}
