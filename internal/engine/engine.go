// Package engine provides the core ordering logic of showorder.
//
// The engine package acts as the orchestration layer between the CLI and
// HTTP front ends and the lower-level packages. It turns show documents into
// requests, validates them, builds the constraint model, drives the solver
// and decodes the winning assignment into a running order.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Order: Validates, plans, solves and decodes one ordering request
//   - Validate: Checks a request without solving it
//   - Decode: Turns solved positions into block-delimited lines
package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/fsops"
	"github.com/danieljhkim/showorder/internal/hash"
	"github.com/danieljhkim/showorder/internal/planner"
	"github.com/danieljhkim/showorder/internal/showfile"
)

// Engine orchestrates all showorder operations.
// It is the main API surface called by the CLI and the server.
type Engine struct {
	fs       fsops.FS
	hasher   hash.Hasher
	clock    clock.Clock
	settings config.Settings
}

// New creates a new Engine with the given dependencies.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	settings config.Settings,
) *Engine {
	return &Engine{
		fs:       fs,
		hasher:   hasher,
		clock:    clk,
		settings: settings,
	}
}

// Settings returns the settings the engine was created with.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// DefaultPreferences returns the preferences implied by the settings.
func (e *Engine) DefaultPreferences() planner.Preferences {
	prefs := planner.DefaultPreferences()
	prefs.NumBlocks = e.settings.Blocks
	prefs.MaxChangesPerActor = e.settings.MaxChanges
	prefs.Weights = planner.Weights{
		QuickChange: e.settings.Weights.QuickChange,
		SizeClash:   e.settings.Weights.SizeClash,
		Placement:   e.settings.Weights.Placement,
		Pairing:     e.settings.Weights.Pairing,
	}
	return prefs
}

// LoadDocument reads and parses the show document at path.
func (e *Engine) LoadDocument(path string) (*showfile.Document, error) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: show file %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read show file: %w", err)
	}
	doc, err := showfile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrValidation, path, err)
	}
	return doc, nil
}

// NewOrderRequest builds a request from a show document. Settings supply
// every option the document leaves unset.
func (e *Engine) NewOrderRequest(doc *showfile.Document) (*OrderRequest, error) {
	show, err := doc.Show()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	prefs := e.DefaultPreferences()
	if err := doc.Apply(&prefs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	timeout, err := doc.Timeout()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if timeout == 0 {
		timeout = e.settings.Timeout
	}

	return &OrderRequest{
		Show:        show,
		Preferences: prefs,
		Timeout:     timeout,
		Workers:     e.settings.Workers,
		Seed:        doc.Seed(),
	}, nil
}

// WriteOutput atomically writes a presented order to path.
func (e *Engine) WriteOutput(path string, data []byte) error {
	if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
