package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// ErrInvalidShow indicates a show catalog that breaks a shape rule.
var ErrInvalidShow = errors.New("invalid show")

// Kind is the variant of an Item.
type Kind string

const (
	KindStandalone Kind = "standalone"
	KindDiddy      Kind = "diddy"
	KindVignette   Kind = "vignette"
)

// Actor is a performer, identified by name.
type Actor struct {
	Name string
}

// Part is one segment of a vignette sequence.
type Part struct {
	Actors []Actor
}

// Item is one entry of a show catalog.
type Item struct {
	Name string
	Kind Kind

	// Actors is used by standalone pieces and diddies.
	Actors []Actor

	// Parts is used by vignettes, in authored order.
	Parts []Part
}

// Standalone creates a standalone piece.
func Standalone(name string, actors ...Actor) Item {
	return Item{Name: name, Kind: KindStandalone, Actors: actors}
}

// Diddy creates a short standalone piece.
func Diddy(name string, actors ...Actor) Item {
	return Item{Name: name, Kind: KindDiddy, Actors: actors}
}

// Vignette creates a vignette sequence from per-part actor lists.
func Vignette(name string, parts ...[]Actor) Item {
	item := Item{Name: name, Kind: KindVignette, Parts: make([]Part, len(parts))}
	for i, actors := range parts {
		item.Parts[i] = Part{Actors: actors}
	}
	return item
}

// Actors builds an actor list from names.
func Actors(names ...string) []Actor {
	actors := make([]Actor, len(names))
	for i, name := range names {
		actors[i] = Actor{Name: name}
	}
	return actors
}

// Short reports whether the item is a short form: a diddy or a vignette.
func (it Item) Short() bool {
	return it.Kind == KindDiddy || it.Kind == KindVignette
}

// Units returns how many positions the item occupies in a running order.
func (it Item) Units() int {
	if it.Kind == KindVignette {
		return len(it.Parts)
	}
	return 1
}

// ActorsAt returns the actors in unit k of the item.
func (it Item) ActorsAt(k int) []Actor {
	if it.Kind == KindVignette {
		return it.Parts[k].Actors
	}
	return it.Actors
}

// UnitName returns the display name of unit k. Vignette parts are numbered
// from 1.
func (it Item) UnitName(k int) string {
	if it.Kind == KindVignette {
		return it.Name + " " + strconv.Itoa(k+1)
	}
	return it.Name
}

// Show is an ordered collection of items.
type Show struct {
	Items []Item

	// Roster optionally lists every actor. When set, items may only use
	// actors from it.
	Roster []Actor
}

// NewShow validates items and returns a Show.
func NewShow(items []Item, roster []Actor) (*Show, error) {
	s := &Show{Items: items, Roster: roster}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the shape rules of the show and reports every problem it
// finds.
func (s *Show) Validate() error {
	var errs error
	if len(s.Items) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: show has no items", ErrInvalidShow))
	}

	var roster map[string]bool
	if len(s.Roster) > 0 {
		roster = make(map[string]bool, len(s.Roster))
		for _, a := range s.Roster {
			if a.Name == "" {
				errs = multierr.Append(errs, fmt.Errorf("%w: roster has an actor without a name", ErrInvalidShow))
				continue
			}
			if roster[a.Name] {
				errs = multierr.Append(errs, fmt.Errorf("%w: roster lists %q twice", ErrInvalidShow, a.Name))
			}
			roster[a.Name] = true
		}
	}

	seen := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		if it.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: item without a name", ErrInvalidShow))
			continue
		}
		if seen[it.Name] {
			errs = multierr.Append(errs, fmt.Errorf("%w: item name %q is not unique", ErrInvalidShow, it.Name))
		}
		seen[it.Name] = true
		errs = multierr.Append(errs, validateItem(it, roster))
	}
	return errs
}

func validateItem(it Item, roster map[string]bool) error {
	var errs error
	switch it.Kind {
	case KindStandalone, KindDiddy:
		if len(it.Parts) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s %q cannot have parts", ErrInvalidShow, it.Kind, it.Name))
		}
		errs = multierr.Append(errs, validateActors(it.Name, it.Actors, roster))
	case KindVignette:
		if len(it.Parts) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: vignette %q needs at least one part", ErrInvalidShow, it.Name))
		}
		if len(it.Actors) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: vignette %q lists actors outside its parts", ErrInvalidShow, it.Name))
		}
		for k := range it.Parts {
			errs = multierr.Append(errs, validateActors(it.UnitName(k), it.Parts[k].Actors, roster))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: item %q has unknown kind %q", ErrInvalidShow, it.Name, it.Kind))
	}
	return errs
}

func validateActors(unit string, actors []Actor, roster map[string]bool) error {
	var errs error
	seen := make(map[string]bool, len(actors))
	for _, a := range actors {
		if a.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q has an actor without a name", ErrInvalidShow, unit))
			continue
		}
		if seen[a.Name] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q lists actor %q twice", ErrInvalidShow, unit, a.Name))
		}
		seen[a.Name] = true
		if roster != nil && !roster[a.Name] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q uses actor %q who is not on the roster", ErrInvalidShow, unit, a.Name))
		}
	}
	return errs
}

// Item returns the item with the given name.
func (s *Show) Item(name string) (Item, bool) {
	for _, it := range s.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Units returns the total number of positionable units in the show.
func (s *Show) Units() int {
	n := 0
	for _, it := range s.Items {
		n += it.Units()
	}
	return n
}

// ActorNames returns every actor appearing in the show, in first-seen order.
func (s *Show) ActorNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, it := range s.Items {
		for k := 0; k < it.Units(); k++ {
			for _, a := range it.ActorsAt(k) {
				if !seen[a.Name] {
					seen[a.Name] = true
					names = append(names, a.Name)
				}
			}
		}
	}
	return names
}
