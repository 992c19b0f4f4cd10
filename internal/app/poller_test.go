package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"many failures capped", 10, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

// fakeMenu serves canned catalog data or a fixed error.
type fakeMenu struct {
	err      error
	bases    []pizzeria.CatalogEntry
	sizes    []pizzeria.CatalogEntry
	toppings []pizzeria.CatalogEntry
}

func (f *fakeMenu) FetchBases(ctx context.Context) ([]pizzeria.CatalogEntry, error) {
	return f.bases, f.err
}

func (f *fakeMenu) FetchSizes(ctx context.Context) ([]pizzeria.CatalogEntry, error) {
	return f.sizes, f.err
}

func (f *fakeMenu) FetchToppings(ctx context.Context) ([]pizzeria.CatalogEntry, error) {
	return f.toppings, f.err
}

func (f *fakeMenu) SubmitOrder(ctx context.Context, order pizzeria.OrderRequest) (*pizzeria.OrderResponse, error) {
	return nil, errors.New("not implemented")
}

func TestRefresh_UpdatesStoreOnSuccess(t *testing.T) {
	var store catalog.Store
	menu := &fakeMenu{
		bases:    []pizzeria.CatalogEntry{{ID: "b1", Name: "Thin Crust", Price: decimal.NewFromInt(10)}},
		sizes:    []pizzeria.CatalogEntry{{ID: "s1", Name: "Large (14–16 Inches)", Price: decimal.RequireFromString("159.99")}},
		toppings: []pizzeria.CatalogEntry{{ID: "t1", Name: "Bacon", Price: decimal.NewFromInt(10)}},
	}

	refresh(context.Background(), &store, menu)

	snap := store.Snapshot()
	if !snap.Loaded() || snap.LastError != nil {
		t.Fatalf("snapshot = %#v, want loaded without error", snap)
	}
	if len(snap.Bases) != 1 || len(snap.Sizes) != 1 || len(snap.Toppings) != 1 {
		t.Fatalf("snapshot counts = %d/%d/%d, want 1/1/1", len(snap.Bases), len(snap.Sizes), len(snap.Toppings))
	}
}

func TestRefresh_ErrorKeepsPreviousSnapshot(t *testing.T) {
	var store catalog.Store
	menu := &fakeMenu{
		bases: []pizzeria.CatalogEntry{{ID: "b1", Name: "Thin Crust", Price: decimal.NewFromInt(10)}},
	}
	refresh(context.Background(), &store, menu)

	menu.err = errors.New("backend down")
	refresh(context.Background(), &store, menu)

	snap := store.Snapshot()
	if len(snap.Bases) != 1 {
		t.Fatalf("bases = %#v, want previous data kept", snap.Bases)
	}
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("snapshot = err %v failures %d, want recorded failure", snap.LastError, snap.ConsecutiveFailures)
	}
}
