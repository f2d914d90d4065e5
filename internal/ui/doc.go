// Package ui implements the emberconf terminal interface.
//
// # Overview
//
// The UI is a single-screen bubbletea program that shows the resolved
// ember configuration: which candidate file supplied it, the rendering
// values in effect, the effective config re-serialized as YAML, and any
// load failure rendered by kind. It exists to answer "what will ember
// actually use, and why" without starting the emulator.
//
// # Layout
//
//	┌ header: logo, load time, theme ─────────────┐
//	│ Source: candidate paths, active one marked  │
//	│ [error panel, only on load failure]         │
//	│ Rendering: dpi, font, offsets, render timer │
//	│ [Effective config: resolved YAML]           │
//	└ footer: key help ───────────────────────────┘
//
// # Keys
//
//   - r: reload (re-runs the loader on demand; the file is never watched)
//   - e: toggle the effective-YAML pane
//   - t: cycle themes (persisted via prefs)
//   - ?: expand help
//   - q / ctrl+c: quit
//
// # Model
//
// The package follows the standard MVU split: Model holds the latest
// state.Snapshot plus view toggles, Update handles keys and reload
// completion messages, View renders lipgloss-styled panels. Reloads run
// as a tea.Cmd so the update loop never blocks on the filesystem.
package ui
