// Package store holds the current snapshot and applies engine-produced
// mutations atomically.
package store

import (
	"sync"

	"github.com/rlankford/crewboard/internal/domain"
)

// Store is the single source of truth for the employee/task/product
// collections. Mutations go through Apply and commit all-or-nothing; readers
// always see either the pre- or post-mutation snapshot, never a partial one.
// The store enforces no domain invariants itself.
type Store struct {
	mu       sync.RWMutex
	snapshot domain.Snapshot
	onCommit func(domain.Snapshot)
}

// New creates a store seeded with the given snapshot.
func New(initial domain.Snapshot) *Store {
	return &Store{snapshot: initial.Clone()}
}

// Current returns a copy of the current snapshot. Callers may mutate it
// freely without affecting the store.
func (s *Store) Current() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Apply runs produce against a copy of the current snapshot and commits the
// result. If produce returns an error nothing changes. Producers are
// serialized; each runs against the latest committed state.
func (s *Store) Apply(produce func(domain.Snapshot) (domain.Snapshot, error)) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := produce(s.snapshot.Clone())
	if err != nil {
		return domain.Snapshot{}, err
	}

	s.snapshot = next
	if s.onCommit != nil {
		s.onCommit(next.Clone())
	}
	return next.Clone(), nil
}

// OnCommit registers a hook invoked with a copy of every committed snapshot,
// on the committing goroutine. The main wiring uses it to persist state.
func (s *Store) OnCommit(fn func(domain.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = fn
}
