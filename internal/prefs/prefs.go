// Package prefs handles emberconf user preferences persistence.
// Preferences are stored in ~/.config/emberconf/prefs.toml. They belong to
// the inspector itself and are independent of the emulator config file.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for emberconf.
type Prefs struct {
	Theme         string `toml:"theme"`
	ShowEffective bool   `toml:"show_effective"`
}

const (
	defaultPrefsPath = "~/.config/emberconf/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaultPrefs() Prefs {
	return Prefs{Theme: defaultTheme, ShowEffective: true}
}

// Load reads preferences from the given path (default location when
// empty). Preferences are cosmetic, so every failure degrades to the
// defaults instead of surfacing an error.
func Load(path string) Prefs {
	p := defaultPrefs()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}

	if err := toml.Unmarshal(raw, &p); err != nil {
		return defaultPrefs()
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
