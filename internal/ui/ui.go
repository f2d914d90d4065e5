package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberterm/ember/internal/prefs"
	"github.com/emberterm/ember/internal/state"
)

// Options configure the inspector UI.
type Options struct {
	Store      *state.Store
	Loader     Loader
	Candidates []string // probe-order candidate paths, for display
	Prefs      prefs.Prefs
	PrefsPath  string // empty uses the default prefs location
}

// Run starts the inspector and blocks until ctx is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a state store")
	}
	if opts.Loader == nil {
		return fmt.Errorf("ui requires a loader")
	}

	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
