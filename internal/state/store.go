package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/emberterm/ember/internal/config"
)

// Snapshot represents the latest load outcome available to the UI.
type Snapshot struct {
	Config    config.Config
	HasConfig bool
	Path      string // file the config was read from; empty when built-in defaults apply
	LastError error
	LoadedAt  time.Time
	Reloads   int // reloads performed after the initial load
}

// Store coordinates concurrent access to the snapshot. The UI reads it on
// every frame while explicit reloads replace it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot with a fresh load outcome. When err
// is non-nil the previous config is kept so the UI can keep rendering the
// last good values next to the failure.
func (s *Store) Update(cfg *config.Config, path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snapshot.LoadedAt.IsZero() {
		s.snapshot.Reloads++
	}
	s.snapshot.LoadedAt = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		return
	}

	if cfg != nil {
		s.snapshot.Config = *cfg
		s.snapshot.HasConfig = true
	}
	s.snapshot.Path = path
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
