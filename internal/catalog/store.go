package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Bases               []pizzeria.CatalogEntry
	Sizes               []pizzeria.CatalogEntry
	Toppings            []pizzeria.CatalogEntry
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Loaded reports whether any catalog data has arrived yet.
func (s Snapshot) Loaded() bool {
	return len(s.Bases) > 0 || len(s.Sizes) > 0 || len(s.Toppings) > 0
}

// Base looks up a base entry by name.
func (s Snapshot) Base(name string) (pizzeria.CatalogEntry, bool) {
	return findByName(s.Bases, name)
}

// Size looks up a size entry by name.
func (s Snapshot) Size(name string) (pizzeria.CatalogEntry, bool) {
	return findByName(s.Sizes, name)
}

// Topping looks up a topping entry by name.
func (s Snapshot) Topping(name string) (pizzeria.CatalogEntry, bool) {
	return findByName(s.Toppings, name)
}

func findByName(entries []pizzeria.CatalogEntry, name string) (pizzeria.CatalogEntry, bool) {
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return pizzeria.CatalogEntry{}, false
}

// Store coordinates concurrent updates to the catalog snapshot. The
// background poller is the single writer; the UI reads snapshots on its
// own schedule.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility, so the UI keeps
// rendering the last good prices while the backend is unreachable.
func (s *Store) Update(bases, sizes, toppings []pizzeria.CatalogEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Bases = cloneEntries(bases)
	s.snapshot.Sizes = cloneEntries(sizes)
	s.snapshot.Toppings = cloneEntries(toppings)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Bases = cloneEntries(s.snapshot.Bases)
	snap.Sizes = cloneEntries(s.snapshot.Sizes)
	snap.Toppings = cloneEntries(s.snapshot.Toppings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []pizzeria.CatalogEntry) []pizzeria.CatalogEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]pizzeria.CatalogEntry, len(entries))
	copy(dup, entries)
	return dup
}
