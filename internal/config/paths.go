// Package config manages showorder configuration and filesystem paths.
//
// Configuration includes the location of the showorder data directory, which
// can be customized via environment variables, the optional settings file
// holding default ordering options, and the environment-driven settings of
// the HTTP server. The default root is ~/.showorder/ containing config.yaml
// and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by showorder.
type Paths struct {
	// Root is the base directory for all showorder data (default: ~/.showorder)
	Root string

	// Config is the path to the settings file
	Config string

	// Env is the path to the optional .env file read by the server
	Env string
}

// DefaultPaths returns the default paths for showorder.
// Paths can be overridden with environment variables:
// - SHOWORDER_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("SHOWORDER_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".showorder")
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
		Env:    filepath.Join(root, ".env"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
