// Package showfile reads show documents.
//
// A show document lists the cast, the items of the show and, optionally, the
// ordering preferences to use for it:
//
//	actors: [Scott, Mira, John]
//	items:
//	  - name: Opening
//	    actors: [Scott, Mira]
//	  - name: Doordash
//	    kind: vignette
//	    parts:
//	      - [Scott]
//	      - [Mira, John]
//	preferences:
//	  blocks: 2
//	  desired_first: [Opening]
//
// Documents are YAML; JSON documents are accepted as well.
package showfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/showorder/internal/catalog"
	"github.com/danieljhkim/showorder/internal/planner"
)

// ErrInvalidDocument indicates a document that cannot be decoded.
var ErrInvalidDocument = errors.New("invalid show document")

// Document is the decoded form of a show document.
type Document struct {
	Actors      []string     `yaml:"actors,omitempty" json:"actors,omitempty"`
	Items       []Item       `yaml:"items" json:"items"`
	Preferences *Preferences `yaml:"preferences,omitempty" json:"preferences,omitempty"`
}

// Item is one entry of the items list. Kind defaults to vignette when parts
// are given and to standalone otherwise.
type Item struct {
	Name   string     `yaml:"name" json:"name"`
	Kind   string     `yaml:"kind,omitempty" json:"kind,omitempty"`
	Actors []string   `yaml:"actors,omitempty" json:"actors,omitempty"`
	Parts  [][]string `yaml:"parts,omitempty" json:"parts,omitempty"`
}

// Preferences mirrors the ordering options. Unset fields leave the caller's
// defaults alone.
type Preferences struct {
	Blocks     *int `yaml:"blocks,omitempty" json:"blocks,omitempty"`
	MaxChanges *int `yaml:"max_changes,omitempty" json:"max_changes,omitempty"`

	DesiredFirst []string `yaml:"desired_first,omitempty" json:"desired_first,omitempty"`
	FirstMode    string   `yaml:"first_mode,omitempty" json:"first_mode,omitempty"`
	DesiredLast  []string `yaml:"desired_last,omitempty" json:"desired_last,omitempty"`
	LastMode     string   `yaml:"last_mode,omitempty" json:"last_mode,omitempty"`

	NonAdjacent     [][]string `yaml:"non_adjacent,omitempty" json:"non_adjacent,omitempty"`
	NonAdjacentMode string     `yaml:"non_adjacent_mode,omitempty" json:"non_adjacent_mode,omitempty"`

	DifferentBlocks [][]string `yaml:"different_blocks,omitempty" json:"different_blocks,omitempty"`
	BlockStarters   []string   `yaml:"block_starters,omitempty" json:"block_starters,omitempty"`
	NotInFirstBlock []string   `yaml:"not_in_first_block,omitempty" json:"not_in_first_block,omitempty"`

	NoAdjacentSmalls    *bool `yaml:"no_adjacent_smalls,omitempty" json:"no_adjacent_smalls,omitempty"`
	NoAdjacentBigs      *bool `yaml:"no_adjacent_bigs,omitempty" json:"no_adjacent_bigs,omitempty"`
	SkipShortFormSizing *bool `yaml:"skip_short_form_sizing,omitempty" json:"skip_short_form_sizing,omitempty"`

	Weights *Weights `yaml:"weights,omitempty" json:"weights,omitempty"`

	// Timeout is a duration string such as "90s".
	Timeout string  `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Seed    *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Weights overrides individual soft weights.
type Weights struct {
	QuickChange *int `yaml:"quick_change,omitempty" json:"quick_change,omitempty"`
	SizeClash   *int `yaml:"size_clash,omitempty" json:"size_clash,omitempty"`
	Placement   *int `yaml:"placement,omitempty" json:"placement,omitempty"`
	Pairing     *int `yaml:"pairing,omitempty" json:"pairing,omitempty"`
}

// Parse decodes a YAML or JSON document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Show converts the document into a validated catalog.Show.
func (d *Document) Show() (*catalog.Show, error) {
	items := make([]catalog.Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, it.toCatalog())
	}
	return catalog.NewShow(items, catalog.Actors(d.Actors...))
}

func (it Item) toCatalog() catalog.Item {
	kind := catalog.Kind(it.Kind)
	if kind == "" {
		kind = catalog.KindStandalone
		if len(it.Parts) > 0 {
			kind = catalog.KindVignette
		}
	}
	out := catalog.Item{
		Name:   it.Name,
		Kind:   kind,
		Actors: catalog.Actors(it.Actors...),
	}
	for _, part := range it.Parts {
		out.Parts = append(out.Parts, catalog.Part{Actors: catalog.Actors(part...)})
	}
	return out
}

// Apply overlays the document's preferences onto prefs.
func (d *Document) Apply(prefs *planner.Preferences) error {
	p := d.Preferences
	if p == nil {
		return nil
	}

	var errs error
	if p.Blocks != nil {
		prefs.NumBlocks = *p.Blocks
	}
	if p.MaxChanges != nil {
		prefs.MaxChangesPerActor = *p.MaxChanges
	}
	if p.DesiredFirst != nil {
		prefs.DesiredFirst = p.DesiredFirst
	}
	if p.FirstMode != "" {
		prefs.FirstMode = planner.Mode(p.FirstMode)
	}
	if p.DesiredLast != nil {
		prefs.DesiredLast = p.DesiredLast
	}
	if p.LastMode != "" {
		prefs.LastMode = planner.Mode(p.LastMode)
	}
	if p.NonAdjacent != nil {
		pairs, err := toPairs("non_adjacent", p.NonAdjacent)
		errs = multierr.Append(errs, err)
		prefs.NonAdjacent = pairs
	}
	if p.NonAdjacentMode != "" {
		prefs.NonAdjacentMode = planner.Mode(p.NonAdjacentMode)
	}
	if p.DifferentBlocks != nil {
		pairs, err := toPairs("different_blocks", p.DifferentBlocks)
		errs = multierr.Append(errs, err)
		prefs.DifferentBlocks = pairs
	}
	if p.BlockStarters != nil {
		prefs.BlockStarters = p.BlockStarters
	}
	if p.NotInFirstBlock != nil {
		prefs.NotInFirstBlock = p.NotInFirstBlock
	}
	if p.NoAdjacentSmalls != nil {
		prefs.NoAdjacentSmalls = *p.NoAdjacentSmalls
	}
	if p.NoAdjacentBigs != nil {
		prefs.NoAdjacentBigs = *p.NoAdjacentBigs
	}
	if p.SkipShortFormSizing != nil {
		prefs.SkipShortFormSizing = *p.SkipShortFormSizing
	}
	if w := p.Weights; w != nil {
		setInt(&prefs.Weights.QuickChange, w.QuickChange)
		setInt(&prefs.Weights.SizeClash, w.SizeClash)
		setInt(&prefs.Weights.Placement, w.Placement)
		setInt(&prefs.Weights.Pairing, w.Pairing)
	}
	return errs
}

// Timeout returns the document's timeout, or zero when unset.
func (d *Document) Timeout() (time.Duration, error) {
	if d.Preferences == nil || d.Preferences.Timeout == "" {
		return 0, nil
	}
	t, err := time.ParseDuration(d.Preferences.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalidDocument, err)
	}
	return t, nil
}

// Seed returns the document's seed, or zero when unset.
func (d *Document) Seed() uint64 {
	if d.Preferences == nil || d.Preferences.Seed == nil {
		return 0
	}
	return *d.Preferences.Seed
}

func toPairs(field string, raw [][]string) ([]planner.Pair, error) {
	pairs := make([]planner.Pair, 0, len(raw))
	var errs error
	for i, p := range raw {
		if len(p) != 2 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s[%d] must name exactly two items, got %d", ErrInvalidDocument, field, i, len(p)))
			continue
		}
		pairs = append(pairs, planner.Pair{A: p[0], B: p[1]})
	}
	return pairs, errs
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
