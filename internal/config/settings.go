package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/showorder/internal/fsops"
)

// ErrInvalidSettings indicates a settings file that cannot be used.
var ErrInvalidSettings = errors.New("invalid settings")

// Output formats for presented orders.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings are the user's default ordering options, read from config.yaml.
// Any field left out of the file keeps its default.
type Settings struct {
	Blocks     int            `yaml:"blocks"`
	MaxChanges int            `yaml:"max_changes"`
	Timeout    time.Duration  `yaml:"timeout"`
	Workers    int            `yaml:"workers"`
	Output     string         `yaml:"output"`
	Weights    WeightSettings `yaml:"weights"`
}

// WeightSettings are the magnitudes of the soft preferences.
type WeightSettings struct {
	QuickChange int `yaml:"quick_change"`
	SizeClash   int `yaml:"size_clash"`
	Placement   int `yaml:"placement"`
	Pairing     int `yaml:"pairing"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Blocks:     4,
		MaxChanges: 3,
		Timeout:    60 * time.Second,
		Workers:    4,
		Output:     FormatText,
		Weights: WeightSettings{
			QuickChange: 1,
			SizeClash:   2,
			Placement:   3,
			Pairing:     6,
		},
	}
}

// LoadSettings reads the settings file at path on top of the defaults. A
// missing file yields the defaults.
func LoadSettings(fsys fsops.FS, path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	switch {
	case s.Blocks <= 0:
		return fmt.Errorf("%w: blocks must be positive, got %d", ErrInvalidSettings, s.Blocks)
	case s.MaxChanges < 0:
		return fmt.Errorf("%w: max_changes must be non-negative, got %d", ErrInvalidSettings, s.MaxChanges)
	case s.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidSettings, s.Timeout)
	case s.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidSettings, s.Workers)
	}
	switch s.Output {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output must be text, json or yaml, got %q", ErrInvalidSettings, s.Output)
	}
	return nil
}

// Save writes the settings to path as YAML.
func (s Settings) Save(fsys fsops.FS, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return fsys.AtomicWrite(path, data, 0644)
}
