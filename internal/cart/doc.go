// Package cart implements the in-memory cart store: an ordered sequence
// of line items with derived totals.
//
// # Transitions
//
// The store is a CRUD-style state machine with five transitions:
//
//   - AddPizza: merge into an existing item with the same recipe
//     (quantity+1, identity kept) or append with quantity 1
//   - Remove: delete by id, no-op when absent
//   - SetQuantity: set exactly; zero or below removes the item
//   - Edit: replace configuration fields, keep quantity and position
//   - Clear: reset to the empty state
//
// Merging compares base, size, and the topping multiset order-
// independently, never configuration ids.
//
// # Derived State
//
// Total and ItemCount are recomputed from scratch over the item sequence
// after every transition rather than patched incrementally, so they can
// never drift from the items. The invariants
//
//	Total == sum(item.Price * item.Quantity)
//	ItemCount == sum(item.Quantity)
//
// hold for every State value the store hands out.
//
// # Pricing Views
//
// Stored prices are the values computed at add or edit time. Priced()
// reprices every item against a caller-supplied catalog snapshot and is
// the view the UI displays, so a catalog refresh moves displayed prices
// without touching stored quantities or identities.
//
// # Failure Semantics
//
// No transition returns an error. Unknown ids on Remove/SetQuantity/Edit
// are no-ops, and the store never re-validates configurations: the builder
// enforces completeness before AddPizza is called. This boundary is
// deliberate.
//
// # Concurrency
//
// A single mutex serializes all transitions. AddPizza's find-then-merge is
// a read-modify-write sequence; without the lock two concurrent adds of
// the same recipe could append twice instead of merging. Reads return
// defensive copies in the same style as the catalog store.
package cart
