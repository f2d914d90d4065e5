// Package state provides thread-safe state management for emberconf.
//
// # Overview
//
// This package implements a simple store for sharing the latest
// configuration load outcome between the loader and the UI. It is the
// coordination point where explicit reloads meet rendering.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest load outcome
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (reload handler), reader on every UI frame
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains the resolved config, its source path, error, and timing
//   - Returned by value
//
// # Update Semantics
//
// Update has special error handling behavior:
//
//	// Success: replace config and clear the error
//	store.Update(&cfg, path, nil)
//
//	// Failure: keep the previous config, record the error
//	store.Update(nil, "", err)
//
// This keeps the most recent successful load on screen while still
// surfacing what went wrong with the latest attempt. The emulator config
// itself is immutable once loaded; reload here means running the loader
// again at the user's request, never watching the file.
package state
