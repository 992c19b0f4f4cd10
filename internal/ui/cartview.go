package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// clampCartCursor keeps the cursor on a real line item after the cart
// shrinks underneath it.
func (m *Model) clampCartCursor() {
	count := len(m.cart.Items())
	if count == 0 {
		m.cartCursor = 0
		return
	}
	if m.cartCursor >= count {
		m.cartCursor = count - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

// handleCartKey processes keyboard input for the cart view.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cartCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(items) > 0 {
			m.cartCursor = len(items) - 1
		}

	case key.Matches(msg, m.keys.Increase):
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			m.cart.SetQuantity(line.ID, line.Quantity+1)
		}
	case key.Matches(msg, m.keys.Decrease):
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			m.cart.SetQuantity(line.ID, line.Quantity-1)
			m.clampCartCursor()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cartCursor < len(items) {
			m.cart.Remove(items[m.cartCursor].ID)
			m.clampCartCursor()
		}
	case key.Matches(msg, m.keys.EditItem):
		if m.cartCursor < len(items) {
			m.builder.beginEdit(items[m.cartCursor].Configuration)
			m.currentView = ViewBuilder
		}
	case key.Matches(msg, m.keys.ClearCart):
		m.cart.Clear()
		m.cartCursor = 0

	case key.Matches(msg, m.keys.ViewCheckout), key.Matches(msg, m.keys.Confirm):
		if len(items) > 0 {
			m.currentView = ViewCheckout
			m.checkout.focusFirst()
		}
	}

	return m, nil
}

// renderCart renders the cart view with live prices.
func (m Model) renderCart() string {
	styles := m.theme.Styles()
	state := m.pricedCart()

	if len(state.Items) == 0 {
		msg := styles.MutedText.Render("Your cart is empty. Press b to build a pizza.")
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString("  " + styles.Text.Bold(true).Render("Your cart") + "\n\n")

	for i, line := range state.Items {
		cursor := "  "
		nameStyle := styles.Text
		if i == m.cartCursor {
			cursor = styles.AccentText.Render("> ")
			nameStyle = nameStyle.Bold(true)
		}

		name := fmt.Sprintf("%s %s", line.Size, line.Base)
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		b.WriteString(fmt.Sprintf("  %s%s %s  %s\n",
			cursor,
			styles.MutedText.Render(fmt.Sprintf("%d ×", line.Quantity)),
			nameStyle.Render(truncate(name, 40)),
			styles.Text.Render(formatPrice(lineTotal)),
		))
		b.WriteString("      " + styles.FaintText.Render(truncate(strings.Join(line.Toppings, ", "), 56)) + "\n")
	}

	b.WriteString("\n  " + styles.MutedText.Render(fmt.Sprintf("%d pizzas", state.ItemCount)))
	b.WriteString("   " + styles.SuccessText.Render("Total "+formatPrice(state.Total)))
	b.WriteString("\n\n  " + styles.FaintText.Render("+/- quantity  •  d remove  •  e edit  •  C empty  •  o checkout"))

	return b.String()
}
