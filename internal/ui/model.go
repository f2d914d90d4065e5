package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberterm/ember/internal/config"
	"github.com/emberterm/ember/internal/prefs"
	"github.com/emberterm/ember/internal/state"
)

// Loader produces a fresh load outcome: the config, the file it came from
// (empty when built-in defaults were substituted wholesale), or an error.
type Loader func() (config.Config, string, error)

// reloadedMsg carries the snapshot taken after a reload completed.
type reloadedMsg struct {
	snap state.Snapshot
}

// Model is the bubbletea model for the inspector.
type Model struct {
	width  int
	height int

	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model

	store      *state.Store
	loader     Loader
	snap       state.Snapshot
	candidates []string

	showEffective bool
	prefsPath     string
	userPrefs     prefs.Prefs
}

// New constructs the inspector model from the given options.
func New(opts Options) Model {
	theme := GetTheme(opts.Prefs.Theme)
	return Model{
		theme:         theme,
		styles:        theme.Styles(),
		keys:          defaultKeyMap(),
		help:          help.New(),
		store:         opts.Store,
		loader:        opts.Loader,
		snap:          opts.Store.Snapshot(),
		candidates:    opts.Candidates,
		showEffective: opts.Prefs.ShowEffective,
		prefsPath:     opts.PrefsPath,
		userPrefs:     opts.Prefs,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case reloadedMsg:
		m.snap = msg.snap
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			return m, m.reloadCmd()

		case key.Matches(msg, m.keys.Effective):
			m.showEffective = !m.showEffective
			m.userPrefs.ShowEffective = m.showEffective
			m.persistPrefs()
			return m, nil

		case key.Matches(msg, m.keys.Theme):
			m.theme = GetTheme(NextTheme(m.theme.Name))
			m.styles = m.theme.Styles()
			m.userPrefs.Theme = m.theme.Name
			m.persistPrefs()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

// reloadCmd re-runs the loader off the update loop and publishes the new
// snapshot. This is an explicit user action; nothing watches the file.
func (m Model) reloadCmd() tea.Cmd {
	store, loader := m.store, m.loader
	return func() tea.Msg {
		cfg, path, err := loader()
		if err != nil {
			store.Update(nil, "", err)
		} else {
			store.Update(&cfg, path, nil)
		}
		return reloadedMsg{snap: store.Snapshot()}
	}
}

func (m Model) persistPrefs() {
	// Preferences are cosmetic; a failed save should never disturb the UI.
	_ = prefs.Save(m.prefsPath, m.userPrefs)
}
