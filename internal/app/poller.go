package app

import (
	"context"
	"log"
	"time"

	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 2 * time.Minute
)

// StartPoller launches a background goroutine that refreshes the catalog
// store at a fixed cadence, backing off while the backend is unreachable.
// It returns immediately.
func StartPoller(ctx context.Context, store *catalog.Store, menu pizzeria.Menu, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, menu)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh fetches all three catalog categories and records the result.
// A failure on any endpoint keeps the previous snapshot data.
func refresh(ctx context.Context, store *catalog.Store, menu pizzeria.Menu) {
	bases, err := menu.FetchBases(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Printf("bases poll failed: %v", err)
		return
	}
	sizes, err := menu.FetchSizes(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Printf("sizes poll failed: %v", err)
		return
	}
	toppings, err := menu.FetchToppings(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Printf("toppings poll failed: %v", err)
		return
	}
	store.Update(bases, sizes, toppings, nil)
}

// calculateBackoff doubles the poll interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	wait := interval
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
