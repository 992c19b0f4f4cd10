package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	ViewBuilder  key.Binding
	ViewCart     key.Binding
	ViewCheckout key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Builder actions
	Select    key.Binding
	Remove    key.Binding
	StepBack  key.Binding
	StepNext  key.Binding
	StartOver key.Binding

	// Cart actions
	Increase  key.Binding
	Decrease  key.Binding
	Delete    key.Binding
	EditItem  key.Binding
	ClearCart key.Binding

	// Checkout/confirmation actions
	Tab      key.Binding
	ShiftTab key.Binding
	Confirm  key.Binding
	Submit   key.Binding
	NewOrder key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		// View switching
		ViewBuilder: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Pizza builder"),
		),
		ViewCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cart"),
		),
		ViewCheckout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Checkout"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Builder actions
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "Remove topping"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Previous step"),
		),
		StepNext: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Next step"),
		),
		StartOver: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Start over"),
		),

		// Cart actions
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More of this pizza"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Fewer of this pizza"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Remove line"),
		),
		EditItem: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit pizza"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Empty cart"),
		),

		// Checkout/confirmation actions
		Tab: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Place order"),
		),
		NewOrder: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New order"),
		),
	}
}

// ShortHelp returns the bindings shown in the command bar help hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ViewBuilder, k.ViewCart, k.ViewCheckout, k.Help, k.Quit}
}

// FullHelp returns the grouped bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewBuilder, k.ViewCart, k.ViewCheckout, k.CycleTheme, k.Help, k.Quit},
		{k.Up, k.Down, k.Top, k.Bottom, k.Escape},
		{k.Select, k.Remove, k.StepBack, k.StepNext, k.StartOver},
		{k.Increase, k.Decrease, k.Delete, k.EditItem, k.ClearCart},
		{k.Tab, k.Submit, k.NewOrder},
	}
}

// fullHelpTitles labels the FullHelp groups, in the same order.
func fullHelpTitles() []string {
	return []string{"General", "Navigation", "Builder", "Cart", "Checkout"}
}
