package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/engine"
	"github.com/danieljhkim/showorder/internal/fsops"
	"github.com/danieljhkim/showorder/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, *config.Paths, error) {
	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	settings, err := config.LoadSettings(fs, settingsPath(paths))
	if err != nil {
		return nil, nil, err
	}

	return engine.New(fs, hash.NewSHA256Hasher(), &clock.RealClock{}, settings), paths, nil
}

// settingsPath returns the --config file or the default settings file.
func settingsPath(paths *config.Paths) string {
	if configPath != "" {
		return configPath
	}
	return paths.Config
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
