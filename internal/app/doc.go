// Package app provides the orchestration layer for emberconf.
//
// # Overview
//
// This package wires configuration loading, preferences, state, and the UI
// into the complete inspector. It is the composition root where all
// dependencies are initialized and connected.
//
// # Initialization
//
//  1. Build the loader (standard candidate probing, or an explicit file)
//  2. Perform the initial load into a state.Store snapshot
//  3. Load emberconf preferences (theme, pane toggles)
//  4. Start the TUI and block until the user exits or the context cancels
//
// # Load Policy
//
// The loader wraps internal/config. With the standard candidates, "no file
// anywhere" resolves to the built-in defaults so the inspector can still
// show what the emulator would use; every other failure is surfaced. With
// an explicit -config path a missing file stays an error, because the user
// named that exact file.
//
// # Check Mode
//
// Check performs a single load and writes a plain-text report (resolved
// source, dpi, font, offsets, render timer, or the failure). The CLI maps
// its error to the exit code, which makes emberconf usable as a config
// linter in scripts.
package app
