// Package ui provides the Bubble Tea storefront for Pizzetta.
//
// # Architecture Overview
//
// The package implements an Elm-architecture TUI on bubbletea: a single
// root Model carries all view state, Update routes messages, and View
// renders the active screen below a persistent header and command bar.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, message/command plumbing, key dispatch, and the main Run function
//   - builder.go: Pizza builder wizard (base, size, toppings, review)
//   - cartview.go: Cart screen with quantity, edit, and removal actions
//   - checkout.go: Customer form, validation surface, and order submission
//   - confirm.go: Order confirmation screen
//   - header.go: Status bar and per-view command bar
//   - help.go: Help overlay rendered from the keymap
//   - keys.go: bubbles/key bindings consulted by every key handler
//   - theme.go: Color themes and pre-built lipgloss styles
//
// # Views
//
// Four screens are available:
//
//   - Builder: Step through base, size, and toppings, then review with a
//     live price against the latest catalog snapshot. Also hosts edits of
//     existing cart lines.
//   - Cart: Line items repriced on every render, derived total and count.
//   - Checkout: Name/email/phone/notes inputs; submission runs as a
//     tea.Cmd with a spinner, and failures leave the cart intact.
//   - Confirmation: Order id, status, and a warning when items were
//     dropped during menu resolution.
//
// # Data Flow
//
// A tick command polls the catalog store for fresh snapshots; the cart
// store is shared with the application layer. All displayed prices come
// from the cart's repriced view, so a catalog refresh moves them without
// touching stored quantities.
//
// # Key Bindings
//
// All bindings live in keys.go and are matched via key.Matches; the help
// overlay and command bar render from the same keymap, so a rebinding
// shows up everywhere at once.
package ui
