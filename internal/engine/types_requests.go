package engine

import (
	"time"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/planner"
)

// OrderRequest represents a request to compute a running order.
type OrderRequest struct {
	// Show is the validated catalog of items
	Show *catalog.Show

	// Preferences are the ordering options
	Preferences planner.Preferences

	// Timeout bounds the search; it must be positive
	Timeout time.Duration

	// Workers is the solver portfolio size (0 means one worker)
	Workers int

	// Seed makes runs repeatable (0 picks one from the clock)
	Seed uint64
}

// ValidateRequest represents a request to check a show and its options
// without solving.
type ValidateRequest struct {
	// Show is the catalog of items
	Show *catalog.Show

	// Preferences are the ordering options
	Preferences planner.Preferences
}
