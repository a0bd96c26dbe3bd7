package source

import "sync"

// Counters track load activity across the process lifetime for the
// stats endpoint.
type Counters struct {
	Loads     int `json:"loads"`
	Fallbacks int `json:"fallbacks"`
}

// Store holds the current dataset Snapshot. It is written once per load
// cycle and read concurrently by the aggregation handlers; replacement is
// always wholesale, never a partial update.
type Store struct {
	mu       sync.RWMutex
	snap     Snapshot
	counters Counters
}

// NewStore creates an empty Store. Callers should Replace it with an
// initial Snapshot before serving queries.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a new Snapshot and updates the load counters.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap
	s.counters.Loads++
	if snap.Fallback {
		s.counters.Fallbacks++
	}
}

// Current returns the current Snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Counters returns the load activity counters.
func (s *Store) Counters() Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters
}
