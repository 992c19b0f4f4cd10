package catalog

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

func entry(id, name string, price float64) pizzeria.CatalogEntry {
	return pizzeria.CatalogEntry{ID: id, Name: name, Price: decimal.NewFromFloat(price)}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	bases := []pizzeria.CatalogEntry{entry("b1", "Thin Crust", 10)}
	sizes := []pizzeria.CatalogEntry{entry("s1", "Large (14–16 Inches)", 159.99)}
	toppings := []pizzeria.CatalogEntry{entry("t1", "Bacon", 10), entry("t2", "Onions", 10)}

	before := time.Now()
	s.Update(bases, sizes, toppings, nil)

	snap := s.Snapshot()
	if !snap.Loaded() {
		t.Fatalf("Loaded() = false, want true after update")
	}
	if len(snap.Bases) != 1 || snap.Bases[0].ID != "b1" {
		t.Fatalf("snapshot bases = %#v, want 1 entry b1", snap.Bases)
	}
	if len(snap.Toppings) != 2 {
		t.Fatalf("snapshot toppings = %#v, want 2 entries", snap.Toppings)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Bases[0].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Bases[0].ID != "b1" {
		t.Fatalf("Snapshot should clone entries; got id %q want b1", snap2.Bases[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]pizzeria.CatalogEntry{entry("b1", "Thin Crust", 10)}, nil, nil, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, nil, nil, origErr)

	snap := s.Snapshot()
	if len(snap.Bases) != 1 || snap.Bases[0].ID != prev.Bases[0].ID {
		t.Fatalf("bases changed on error: got %#v want %#v", snap.Bases, prev.Bases)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("zero store: failures = %d offline = %v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, nil, nil, errors.New("fail 1"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures = %d offline = %v, want 1/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, nil, nil, errors.New("fail 2"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures = %d offline = %v, want 2/true", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update([]pizzeria.CatalogEntry{entry("b1", "Thin Crust", 10)}, nil, nil, nil)
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: failures = %d offline = %v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

func TestSnapshot_LookupsByName(t *testing.T) {
	var s Store
	s.Update(
		[]pizzeria.CatalogEntry{entry("b1", "Thin Crust", 10)},
		[]pizzeria.CatalogEntry{entry("s1", "Large (14–16 Inches)", 159.99)},
		[]pizzeria.CatalogEntry{entry("t1", "Bacon", 10)},
		nil,
	)
	snap := s.Snapshot()

	if got, ok := snap.Base("Thin Crust"); !ok || got.ID != "b1" {
		t.Fatalf("Base lookup = %#v ok=%v, want b1 true", got, ok)
	}
	if got, ok := snap.Size("Large (14–16 Inches)"); !ok || got.ID != "s1" {
		t.Fatalf("Size lookup = %#v ok=%v, want s1 true", got, ok)
	}
	if got, ok := snap.Topping("Bacon"); !ok || got.ID != "t1" {
		t.Fatalf("Topping lookup = %#v ok=%v, want t1 true", got, ok)
	}
	if _, ok := snap.Topping("Anchovies"); ok {
		t.Fatalf("Topping lookup for unknown name ok = true, want false")
	}
}
