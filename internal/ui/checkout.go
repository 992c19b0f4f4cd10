package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pizzetta/pizzetta/internal/order"
)

var (
	errEmptyCart         = errors.New("your cart is empty")
	errNothingResolvable = errors.New("none of the cart items are on the current menu")
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldNotes
	fieldCount
)

var checkoutFieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Notes"}

// checkoutState holds the customer form for the checkout view.
type checkoutState struct {
	inputs    [fieldCount]textinput.Model
	focusIdx  int
	fieldErrs order.CustomerErrors
	submitErr error
	ready     bool
}

func newCheckoutState() checkoutState {
	return checkoutState{}
}

// initInputs initializes the customer form text inputs.
func (c *checkoutState) initInputs() {
	if c.ready {
		return
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "e.g. Priya Sharma"
	nameInput.CharLimit = 80
	nameInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "e.g. priya@example.com"
	emailInput.CharLimit = 120
	emailInput.Width = 40

	phoneInput := textinput.New()
	phoneInput.Placeholder = "e.g. 98765 43210"
	phoneInput.CharLimit = 20
	phoneInput.Width = 40

	notesInput := textinput.New()
	notesInput.Placeholder = "delivery instructions (optional)"
	notesInput.CharLimit = 200
	notesInput.Width = 40

	c.inputs[fieldName] = nameInput
	c.inputs[fieldEmail] = emailInput
	c.inputs[fieldPhone] = phoneInput
	c.inputs[fieldNotes] = notesInput
	c.ready = true
}

// focusFirst focuses the first form field and blurs the rest.
func (c *checkoutState) focusFirst() {
	if !c.ready {
		c.initInputs()
	}
	c.focusIdx = 0
	for i := range c.inputs {
		if i == 0 {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

// focusField moves focus to the given field index, wrapping around.
func (c *checkoutState) focusField(idx int) {
	c.inputs[c.focusIdx].Blur()
	c.focusIdx = (idx + fieldCount) % fieldCount
	c.inputs[c.focusIdx].Focus()
}

// customerInfo collects the form values for validation and submission.
func (c checkoutState) customerInfo() order.CustomerInfo {
	return order.CustomerInfo{
		Name:  strings.TrimSpace(c.inputs[fieldName].Value()),
		Email: strings.TrimSpace(c.inputs[fieldEmail].Value()),
		Phone: strings.TrimSpace(c.inputs[fieldPhone].Value()),
	}
}

func (c checkoutState) notes() string {
	return strings.TrimSpace(c.inputs[fieldNotes].Value())
}

// handleCheckoutKey handles keyboard input for the checkout view. The
// form owns most keys; only a few chords pass through as commands.
func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewCart
		m.clampCartCursor()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.checkout.focusField(m.checkout.focusIdx + 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.checkout.focusField(m.checkout.focusIdx - 1)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.checkout.focusIdx < fieldCount-1 {
			m.checkout.focusField(m.checkout.focusIdx + 1)
			return m, nil
		}
		cmd := m.submitCmd()
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		cmd := m.submitCmd()
		return m, cmd
	}

	return m.updateCheckoutInputs(msg)
}

// updateCheckoutInputs forwards a message to the focused text input.
func (m Model) updateCheckoutInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.checkout.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.checkout.inputs[m.checkout.focusIdx], cmd = m.checkout.inputs[m.checkout.focusIdx].Update(msg)
	return m, cmd
}

// renderCheckout renders the customer form and order summary.
func (m Model) renderCheckout() string {
	styles := m.theme.Styles()
	state := m.pricedCart()

	var b strings.Builder
	b.WriteString("  " + styles.Text.Bold(true).Render("Checkout") + "\n\n")

	fieldErr := func(idx int) string {
		switch idx {
		case fieldName:
			return m.checkout.fieldErrs.Name
		case fieldEmail:
			return m.checkout.fieldErrs.Email
		case fieldPhone:
			return m.checkout.fieldErrs.Phone
		}
		return ""
	}

	for i := range m.checkout.inputs {
		label := fmt.Sprintf("%-7s", checkoutFieldLabels[i])
		if i == m.checkout.focusIdx {
			b.WriteString("  " + styles.AccentText.Render(label))
		} else {
			b.WriteString("  " + styles.MutedText.Render(label))
		}
		b.WriteString(m.checkout.inputs[i].View())
		if problem := fieldErr(i); problem != "" {
			b.WriteString("  " + styles.DangerText.Render(problem))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  " + styles.MutedText.Render(fmt.Sprintf("%d pizzas", state.ItemCount)))
	b.WriteString("   " + styles.SuccessText.Render("Total "+formatPrice(state.Total)) + "\n")

	if m.submitting {
		b.WriteString("\n  " + m.spinner.View() + styles.Text.Render(" Placing your order..."))
	} else if m.checkout.submitErr != nil {
		b.WriteString("\n  " + styles.DangerText.Render(m.checkout.submitErr.Error()))
	}

	b.WriteString("\n\n  " + styles.FaintText.Render("tab next field  •  ctrl+s place order  •  esc back to cart"))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}
