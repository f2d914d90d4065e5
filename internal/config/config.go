package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name probed under the candidate
// directories.
const FileName = "ember.yml"

// Config holds the rendering parameters read from the config file. A Config
// is fully populated once constructed; sections missing from the file are
// filled with their structural defaults during decoding.
type Config struct {
	dpi         DPI
	font        Font
	renderTimer bool
}

// DefaultConfig returns the built-in configuration used when a file is
// empty or a section is absent.
func DefaultConfig() Config {
	return Config{
		dpi:  defaultDPI(),
		font: defaultFont(),
	}
}

// CandidatePaths returns the file locations probed by Load, in priority
// order. It fails with an *EnvError when the home directory cannot be
// resolved.
func CandidatePaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, &EnvError{Err: err}
	}
	return []string{
		filepath.Join(home, ".config", FileName),
		filepath.Join(home, "."+FileName),
	}, nil
}

// Locate probes the candidate paths in order and returns the first one
// that exists. A probe failure other than a missing file stops the search
// and is returned as an *IOError; ErrNotFound is returned only when every
// candidate is absent.
func Locate() (string, error) {
	paths, err := CandidatePaths()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", &IOError{Path: path, Err: err}
		}
		return path, nil
	}
	return "", ErrNotFound
}

// Load reads the configuration from the first candidate path that exists:
//
//  1. `$HOME/.config/ember.yml`
//  2. `$HOME/.ember.yml`
//
// The dotfile form is consulted only when the primary path is missing; any
// other failure on the primary path is authoritative and returned as-is, so
// a malformed primary file is never masked by a stale fallback.
func Load() (Config, error) {
	path, err := Locate()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and decodes the config file at path. A missing file maps
// to ErrNotFound, other read failures to *IOError, and invalid content to
// *SchemaError.
func LoadFrom(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, ErrNotFound
		}
		return Config{}, &IOError{Path: path, Err: err}
	}

	// Start from the defaults so an empty document resolves to them
	// without a decode pass.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, &SchemaError{Path: path, Err: err}
	}
	return cfg, nil
}

// DPI returns the pixels-per-inch settings.
func (c Config) DPI() DPI { return c.dpi }

// Font returns the font settings.
func (c Config) Font() Font { return c.font }

// RenderTimer reports whether the diagnostic render timer should be shown.
func (c Config) RenderTimer() bool { return c.renderTimer }

// UnmarshalYAML decodes the top-level document. Each section defaults
// independently when absent; a section that is present decodes strictly.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		DPI         *DPI  `yaml:"dpi"`
		Font        *Font `yaml:"font"`
		RenderTimer *bool `yaml:"render_timer"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.DPI != nil {
		c.dpi = *raw.DPI
	} else {
		c.dpi = defaultDPI()
	}
	if raw.Font != nil {
		c.font = *raw.Font
	} else {
		c.font = defaultFont()
	}
	if raw.RenderTimer != nil {
		c.renderTimer = *raw.RenderTimer
	} else {
		c.renderTimer = false
	}
	return nil
}

// MarshalYAML serializes the fully resolved configuration.
func (c Config) MarshalYAML() (any, error) {
	return struct {
		DPI         DPI  `yaml:"dpi"`
		Font        Font `yaml:"font"`
		RenderTimer bool `yaml:"render_timer"`
	}{c.dpi, c.font, c.renderTimer}, nil
}
