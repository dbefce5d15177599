package engine

import (
	"time"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/planner"
	"github.com/danieljhkim/showorder/internal/solver"
)

// OrderResult represents the outcome of an ordering request.
type OrderResult struct {
	// Status is the solver outcome
	Status solver.Status `json:"status" yaml:"status"`

	// Order is the running order (nil unless Status.HasSolution)
	Order *RunningOrder `json:"order,omitempty" yaml:"order,omitempty"`

	// Score is the objective value of Order
	Score int `json:"score" yaml:"score"`

	// Conflicts lists the presolve conflicts that made the request infeasible
	Conflicts []planner.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`

	// Fingerprint identifies the show, preferences and seed
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	// Seed is the seed the solver ran with
	Seed uint64 `json:"seed" yaml:"seed"`

	// Variables is the number of decision variables in the model
	Variables int `json:"variables" yaml:"variables"`

	// Nodes is the number of search nodes visited
	Nodes int64 `json:"nodes" yaml:"nodes"`

	// Elapsed is the time spent solving
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// ValidateResult summarizes a validated request.
type ValidateResult struct {
	// Items, Units and Actors count the show's contents
	Items  int `json:"items" yaml:"items"`
	Units  int `json:"units" yaml:"units"`
	Actors int `json:"actors" yaml:"actors"`

	// Kinds counts items per kind
	Kinds map[catalog.Kind]int `json:"kinds" yaml:"kinds"`

	// Blocks is the number of blocks requested
	Blocks int `json:"blocks" yaml:"blocks"`

	// Variables, Hard and Soft describe the size of the model
	Variables int `json:"variables" yaml:"variables"`
	Hard      int `json:"hard" yaml:"hard"`
	Soft      int `json:"soft" yaml:"soft"`

	// Conflicts lists rule combinations that no running order can satisfy
	Conflicts []planner.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// RunningOrder is a decoded show order, split into blocks.
type RunningOrder struct {
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Block is one uninterrupted stretch of the show.
type Block struct {
	Number  int     `json:"number" yaml:"number"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Entry is one positioned unit: a standalone, a diddy or a vignette part.
type Entry struct {
	// Position is the unit's 1-based place in the show, counting boundaries
	Position int `json:"position" yaml:"position"`

	// Name is the display name ("Doordash 2" for a vignette part)
	Name string `json:"name" yaml:"name"`

	// Item is the owning item's name
	Item string `json:"item" yaml:"item"`

	// Kind is the owning item's kind
	Kind catalog.Kind `json:"kind" yaml:"kind"`

	// Actors are the performers of the unit
	Actors []string `json:"actors" yaml:"actors"`
}
