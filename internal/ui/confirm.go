package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pizzetta/pizzetta/internal/order"
)

// handleConfirmKey processes keyboard input for the confirmation view.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NewOrder), key.Matches(msg, m.keys.Confirm):
		m.placedOrder = nil
		m.droppedItems = 0
		m.builder.reset()
		m.checkout.submitErr = nil
		m.checkout.fieldErrs = order.CustomerErrors{}
		m.currentView = ViewBuilder
	}
	return m, nil
}

// renderConfirm renders the order confirmation view.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	if m.placedOrder == nil {
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No order placed yet. Press b to build a pizza."))
	}

	var b strings.Builder
	b.WriteString(styles.SuccessText.Render("Order placed!"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Order ID  "))
	b.WriteString(styles.Text.Bold(true).Render(m.placedOrder.OrderID))
	b.WriteString("\n")
	if m.placedOrder.Status != "" {
		b.WriteString(styles.MutedText.Render("Status    "))
		b.WriteString(styles.StatusStyle(m.placedOrder.Status).Render(m.placedOrder.Status))
		b.WriteString("\n")
	}

	if m.droppedItems > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render(fmt.Sprintf(
			"%d pizza(s) were no longer on the menu and were left out of the order.", m.droppedItems)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("n start a new order"))

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, b.String())
}
