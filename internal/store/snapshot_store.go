// Package store holds the current dataset snapshot and the dashboard user
// registry in memory. Nothing here survives a restart; every collection is
// either regenerated or re-seeded at boot.
package store

import (
	"sync"

	"github.com/example/commerce-dashboard/internal/dataset"
)

// SnapshotStore guards the single current snapshot. Replace swaps it
// atomically, so readers either see the previous complete snapshot or the new
// one, never a partially populated mix.
type SnapshotStore struct {
	mu         sync.RWMutex
	snap       *dataset.Snapshot
	generation uint64
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Replace installs a new snapshot wholesale and returns its generation
// number. Generation 0 means no snapshot has ever been installed.
func (s *SnapshotStore) Replace(snap *dataset.Snapshot) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap
	s.generation++
	return s.generation
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *SnapshotStore) Snapshot() (*dataset.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}

// Generation returns the number of snapshots installed so far.
func (s *SnapshotStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
