package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/emberterm/ember/internal/config"
	"github.com/emberterm/ember/internal/prefs"
	"github.com/emberterm/ember/internal/state"
	"github.com/emberterm/ember/internal/ui"
)

// Options configure the emberconf application.
type Options struct {
	ConfigPath string // explicit config file; empty probes the standard candidates
	PrefsPath  string // empty uses default ~/.config/emberconf/prefs.toml
	Theme      string // one-shot theme override, not persisted on startup
}

// Run boots the inspector TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	loader := newLoader(opts.ConfigPath)

	store := &state.Store{}
	cfg, path, err := loader()
	if err != nil {
		store.Update(nil, "", err)
	} else {
		store.Update(&cfg, path, nil)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	if opts.Theme != "" {
		userPrefs.Theme = opts.Theme
	}

	return ui.Run(ctx, ui.Options{
		Store:      store,
		Loader:     loader,
		Candidates: candidates(opts.ConfigPath),
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
	})
}

// Check validates the configuration and writes a one-shot report instead
// of starting the TUI. The returned error mirrors what was reported.
func Check(opts Options, out io.Writer) error {
	loader := newLoader(opts.ConfigPath)

	cfg, path, err := loader()
	if err != nil {
		fmt.Fprintf(out, "config: %v\n", err)
		return err
	}

	if path == "" {
		fmt.Fprintln(out, "no config file found; built-in defaults apply")
	} else {
		fmt.Fprintf(out, "%s: OK\n", path)
	}

	font := cfg.Font()
	fmt.Fprintf(out, "  dpi          %g x %g\n", cfg.DPI().X(), cfg.DPI().Y())
	fmt.Fprintf(out, "  font         %s %s %gpt\n", font.Family(), font.Style(), font.Size())
	fmt.Fprintf(out, "  offset       %g / %g\n", font.Offset().X(), font.Offset().Y())
	fmt.Fprintf(out, "  render timer %v\n", cfg.RenderTimer())
	return nil
}

// newLoader builds the load function used for the initial load and every
// reload. Without an explicit path the standard probing applies, and a
// wholly absent config resolves to the built-in defaults; an explicit path
// that is missing stays an error, since the user named that file.
func newLoader(configPath string) ui.Loader {
	if configPath != "" {
		return func() (config.Config, string, error) {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return config.Config{}, "", err
			}
			return cfg, configPath, nil
		}
	}
	return func() (config.Config, string, error) {
		path, err := config.Locate()
		if err != nil {
			if errors.Is(err, config.ErrNotFound) {
				return config.DefaultConfig(), "", nil
			}
			return config.Config{}, "", err
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return config.Config{}, "", err
		}
		return cfg, path, nil
	}
}

func candidates(configPath string) []string {
	if configPath != "" {
		return []string{configPath}
	}
	paths, err := config.CandidatePaths()
	if err != nil {
		// The loader already surfaced the environment failure.
		return nil
	}
	return paths
}
