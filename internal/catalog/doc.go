// Package catalog provides thread-safe storage for the latest catalog
// snapshot fetched from the pizzeria backend.
//
// # Overview
//
// The package implements the coordination point where background catalog
// polling meets UI rendering. The poller writes full snapshots; the UI and
// the cart's pricing pass read them.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):              Consumer (UI / cart pricing):
//	┌─────────────────┐            ┌──────────────────┐
//	│ FetchBases()    │            │                  │
//	│ FetchSizes()    │            │                  │
//	│ FetchToppings() │            │                  │
//	│      ↓          │            │                  │
//	│ store.Update()  │───────────→│ store.Snapshot() │
//	│      ↓          │  (mutex)   │      ↓           │
//	│  repeat...      │            │  price + render  │
//	└─────────────────┘            └──────────────────┘
//
// # Update Semantics
//
// Update replaces the whole snapshot on success and resets the failure
// counter. On error the previous data is kept and only LastError,
// LastUpdated, and ConsecutiveFailures change. A superseded fetch simply
// loses the race: whichever result arrives last is the current snapshot,
// and no cancellation of in-flight fetches is attempted.
//
// This means displayed prices always reflect the most recently fetched
// catalog, degrading to the last good data when the backend is down.
//
// # Lookups
//
// Snapshot offers Base/Size/Topping lookups keyed by entry name, since
// pizza configurations reference catalog entries by name. A miss returns
// ok=false; callers treat unknown names as zero-price contributions, never
// as errors.
//
// # Concurrency Model
//
// A readers-writer lock with a single writer (the poller) and multiple
// readers. Both Update and Snapshot copy slices defensively so no caller
// ever holds a reference into the store's internal state. The zero value
// Store is ready to use.
package catalog
