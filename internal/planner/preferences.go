package planner

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/danieljhkim/showorder/internal/catalog"
)

// ErrInvalidPreferences indicates preferences that break the caller contract.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Mode selects whether a preference is enforced or only encouraged.
type Mode string

const (
	ModeHard Mode = "hard"
	ModeSoft Mode = "soft"
)

// Pair names two items.
type Pair struct {
	A string
	B string
}

// Weights are the magnitudes of the soft preferences. The planner applies the
// sign: quick changes, size clashes and discouraged pairs are penalties,
// placements are rewards.
type Weights struct {
	QuickChange int
	SizeClash   int
	Placement   int
	Pairing     int
}

// DefaultWeights returns the weights used when none are configured.
func DefaultWeights() Weights {
	return Weights{
		QuickChange: 1,
		SizeClash:   2,
		Placement:   3,
		Pairing:     6,
	}
}

// Preferences are the knobs of one ordering request.
type Preferences struct {
	NumBlocks          int
	MaxChangesPerActor int

	DesiredFirst []string
	FirstMode    Mode
	DesiredLast  []string
	LastMode     Mode

	NonAdjacent     []Pair
	NonAdjacentMode Mode

	DifferentBlocks []Pair
	BlockStarters   []string
	NotInFirstBlock []string

	// NoAdjacentSmalls forbids two small units (two actors or fewer) from
	// being adjacent; otherwise it is only discouraged.
	NoAdjacentSmalls bool

	// NoAdjacentBigs does the same for large units (five actors or more).
	NoAdjacentBigs bool

	// SkipShortFormSizing leaves diddies and vignette parts out of the
	// small/large classes.
	SkipShortFormSizing bool

	// Weights is replaced by DefaultWeights when left zero.
	Weights Weights
}

// DefaultPreferences returns four blocks, at most three quick changes per
// actor, and no placement rules.
func DefaultPreferences() Preferences {
	return Preferences{
		NumBlocks:          4,
		MaxChangesPerActor: 3,
		FirstMode:          ModeHard,
		LastMode:           ModeHard,
		NonAdjacentMode:    ModeHard,
		Weights:            DefaultWeights(),
	}
}

func (p Preferences) withDefaults() Preferences {
	if p.FirstMode == "" {
		p.FirstMode = ModeHard
	}
	if p.LastMode == "" {
		p.LastMode = ModeHard
	}
	if p.NonAdjacentMode == "" {
		p.NonAdjacentMode = ModeHard
	}
	if p.Weights == (Weights{}) {
		p.Weights = DefaultWeights()
	}
	return p
}

// Validate checks prefs against show and reports every problem it finds.
func Validate(show *catalog.Show, prefs Preferences) error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidPreferences}, args...)...))
	}

	if prefs.NumBlocks <= 0 {
		invalid("number of blocks must be a positive integer, got %d", prefs.NumBlocks)
	} else if prefs.NumBlocks > len(show.Items) {
		invalid("too many blocks, not enough items: %d blocks for %d items", prefs.NumBlocks, len(show.Items))
	}
	if prefs.MaxChangesPerActor < 0 {
		invalid("max quick changes per actor must be non-negative, got %d", prefs.MaxChangesPerActor)
	}

	modes := []struct {
		option string
		mode   Mode
	}{
		{"first", prefs.FirstMode},
		{"last", prefs.LastMode},
		{"non-adjacent", prefs.NonAdjacentMode},
	}
	for _, m := range modes {
		if m.mode != "" && m.mode != ModeHard && m.mode != ModeSoft {
			invalid("%s mode must be %q or %q, got %q", m.option, ModeHard, ModeSoft, m.mode)
		}
	}

	w := prefs.Weights
	if w.QuickChange < 0 || w.SizeClash < 0 || w.Placement < 0 || w.Pairing < 0 {
		invalid("weights must be non-negative, got %+v", w)
	}

	lookup := func(option, name string, allowShort bool) {
		it, ok := show.Item(name)
		if !ok {
			invalid("every item in %s must be in the show, %q is not", option, name)
			return
		}
		if !allowShort && it.Short() {
			invalid("%s does not support %s %q", option, it.Kind, name)
		}
	}
	pairs := func(option string, list []Pair, allowShort bool) {
		for _, pr := range list {
			lookup(option, pr.A, allowShort)
			lookup(option, pr.B, allowShort)
			if pr.A == pr.B {
				invalid("%s pairs an item with itself: %q", option, pr.A)
			}
		}
	}

	for _, name := range prefs.DesiredFirst {
		lookup("desired first items", name, false)
	}
	for _, name := range prefs.DesiredLast {
		lookup("desired last items", name, false)
	}
	pairs("non-adjacent pairs", prefs.NonAdjacent, true)
	pairs("different-block pairs", prefs.DifferentBlocks, false)
	for _, name := range prefs.BlockStarters {
		lookup("block-starting items", name, false)
	}
	for _, name := range prefs.NotInFirstBlock {
		lookup("not-in-first-block items", name, true)
	}

	return errs
}
