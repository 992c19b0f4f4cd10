package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pizzetta/pizzetta/internal/cart"
	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/config"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
	"github.com/pizzetta/pizzetta/internal/prefs"
	"github.com/pizzetta/pizzetta/internal/ui"
)

// Options configure the Pizzetta application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pizzetta/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the Pizzetta TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := pizzeria.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init pizzeria client: %w", err)
	}

	catalogStore := &catalog.Store{}
	cartStore := &cart.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, catalogStore, client, interval)

	// Do initial refresh to populate the catalog before the UI starts
	refresh(ctx, catalogStore, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Catalog:   catalogStore,
		Cart:      cartStore,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
