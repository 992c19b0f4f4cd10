package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/pizza"
)

// LineItem is a pizza configuration plus a quantity. Price is the value
// computed when the item was added or last edited; display should go
// through Store.Priced, which reprices against the latest catalog.
// Quantity is always >= 1; an item that would reach zero is removed.
type LineItem struct {
	pizza.Configuration
	Quantity int
	Price    decimal.Decimal
}

// State is the cart at a point in time. Total and ItemCount are derived
// from Items and recomputed from scratch after every transition; they are
// never settable independently.
type State struct {
	Items     []LineItem
	Total     decimal.Decimal
	ItemCount int
}

// Store holds the cart and applies its transitions. All mutation goes
// through Store methods; the mutex serializes the find-then-merge path in
// AddPizza so concurrent adds of the same recipe cannot double-append.
// The zero value is an empty cart ready for use.
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

// AddPizza puts a completed configuration in the cart. When an item with
// the same recipe (base, size, topping multiset) already exists its
// quantity is incremented and its identity kept; otherwise the
// configuration is appended as a new line item with quantity 1, priced
// against the given snapshot.
//
// Callers validate completeness before calling; the store does not
// re-check it.
func (s *Store) AddPizza(cfg pizza.Configuration, snap catalog.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if pizza.SameRecipe(s.items[i].Configuration, cfg) {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, LineItem{
		Configuration: cfg.Clone(),
		Quantity:      1,
		Price:         pizza.Price(cfg, snap),
	})
}

// Remove deletes the line item with the given configuration id. Unknown
// ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store) removeLocked(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets an item's quantity to exactly the given value. A value
// of zero or below removes the item. Unknown ids are a no-op.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Edit replaces the configuration fields of the identified line item,
// keeping its quantity and position in the sequence, and reprices it
// against the given snapshot. Unknown ids are a no-op.
func (s *Store) Edit(id string, cfg pizza.Configuration, snap catalog.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Configuration = cfg.Clone()
			s.items[i].Price = pizza.Price(cfg, snap)
			return
		}
	}
}

// Clear resets the cart to its empty initial state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// State returns a copy of the cart with totals derived from the stored
// add-time prices.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildState(cloneItems(s.items))
}

// Priced returns the cart with every line item repriced against the given
// catalog snapshot. This is the view consumers should display: prices
// follow the latest catalog rather than staying frozen at add time.
func (s *Store) Priced(snap catalog.Snapshot) State {
	s.mu.Lock()
	items := cloneItems(s.items)
	s.mu.Unlock()

	for i := range items {
		items[i].Price = pizza.Price(items[i].Configuration, snap)
	}
	return buildState(items)
}

// Items returns a copy of the raw line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

func buildState(items []LineItem) State {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return State{Items: items, Total: total, ItemCount: count}
}

func cloneItems(items []LineItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]LineItem, len(items))
	for i, item := range items {
		dup[i] = item
		dup[i].Configuration = item.Configuration.Clone()
	}
	return dup
}
