// Package app provides the orchestration layer for the Pizzetta storefront.
//
// # Overview
//
// This package wires together configuration, catalog polling, the cart,
// and the UI. It is the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
//  1. Load configuration from ~/.config/pizzetta/config.toml
//  2. Load user preferences (theme)
//  3. Initialize the HTTP client for the pizzeria API
//  4. Create the shared catalog.Store and cart.Store
//  5. Launch the background catalog poller
//  6. Do one synchronous catalog refresh so the builder opens with data
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Polling Behavior
//
// The poller refreshes all three catalog categories at a configurable
// cadence (default: 15 seconds), doubling the wait while the backend is
// unreachable (capped at 2 minutes). Failures keep the last good
// snapshot; the UI shows stale-but-usable prices and an offline marker.
//
// A catalog refresh never mutates the cart. The UI reads the cart's
// repriced view against the latest snapshot, which is how displayed
// prices follow catalog changes.
//
// # Error Handling
//
// Fatal errors (returned from Run): config parse failures and client
// initialization failures. Everything network-related after startup is
// recoverable and merely logged; the storefront works offline with
// whatever catalog it last saw.
package app
