package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pizzetta/pizzetta/internal/pizza"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
)

// builderStep is the wizard stage within the builder view.
type builderStep int

const (
	stepBase builderStep = iota
	stepSize
	stepToppings
	stepSummary
)

// builderState holds the in-progress pizza configuration. The
// configuration only enters the cart once it passes validation; until
// then it lives here, possibly incomplete.
type builderState struct {
	step       builderStep
	cursor     int
	config     pizza.Configuration
	editingID  string // non-empty while editing an existing cart line
	showErrors bool
}

func newBuilderState() builderState {
	return builderState{config: pizza.New()}
}

// reset discards the in-progress configuration and starts a fresh one.
func (b *builderState) reset() {
	*b = builderState{config: pizza.New()}
}

// beginEdit loads an existing configuration for editing. The cart keeps
// the line item untouched until the edited configuration is saved.
func (b *builderState) beginEdit(cfg pizza.Configuration) {
	*b = builderState{
		step:      stepSummary,
		config:    cfg.Clone(),
		editingID: cfg.ID,
	}
}

// options returns the catalog entries the cursor ranges over for the
// current step.
func (m Model) builderOptions() []pizzeria.CatalogEntry {
	switch m.builder.step {
	case stepBase:
		return m.snapshot.Bases
	case stepSize:
		return m.snapshot.Sizes
	case stepToppings:
		return m.snapshot.Toppings
	default:
		return nil
	}
}

// handleBuilderKey processes keyboard input for the builder view.
func (m Model) handleBuilderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.builderOptions()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.builder.cursor < len(options)-1 {
			m.builder.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.builder.cursor > 0 {
			m.builder.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.builder.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(options) > 0 {
			m.builder.cursor = len(options) - 1
		}

	case key.Matches(msg, m.keys.StepBack):
		if m.builder.step > stepBase {
			m.builder.step--
			m.builder.cursor = 0
		}
	case key.Matches(msg, m.keys.StepNext):
		if m.builder.step < stepSummary {
			m.builder.step++
			m.builder.cursor = 0
		}

	case key.Matches(msg, m.keys.Select):
		return m.builderSelect(options)

	case key.Matches(msg, m.keys.Remove):
		if m.builder.step == stepToppings && m.builder.cursor < len(options) {
			m.builder.removeTopping(options[m.builder.cursor].Name)
		}

	case key.Matches(msg, m.keys.StartOver):
		m.builder.reset()

	case key.Matches(msg, m.keys.Escape):
		if m.builder.editingID != "" {
			// Abandon the edit, keep the cart line as it was.
			m.builder.reset()
			m.currentView = ViewCart
			m.clampCartCursor()
		}
	}

	return m, nil
}

// builderSelect applies the current selection for the active step.
func (m Model) builderSelect(options []pizzeria.CatalogEntry) (tea.Model, tea.Cmd) {
	switch m.builder.step {
	case stepBase:
		if m.builder.cursor < len(options) {
			m.builder.config.Base = options[m.builder.cursor].Name
			m.builder.step = stepSize
			m.builder.cursor = 0
		}
	case stepSize:
		if m.builder.cursor < len(options) {
			m.builder.config.Size = options[m.builder.cursor].Name
			m.builder.step = stepToppings
			m.builder.cursor = 0
		}
	case stepToppings:
		if m.builder.cursor < len(options) {
			// Selecting again adds another helping of the same topping.
			m.builder.config.Toppings = append(m.builder.config.Toppings, options[m.builder.cursor].Name)
		}
	case stepSummary:
		return m.builderCommit()
	}
	return m, nil
}

// builderCommit validates the configuration and moves it into the cart.
// Validation happens here, at the UI boundary: the cart store trusts its
// callers and never re-checks completeness.
func (m Model) builderCommit() (tea.Model, tea.Cmd) {
	validation := pizza.Validate(m.builder.config)
	if !validation.Valid {
		m.builder.showErrors = true
		return m, nil
	}

	if id := m.builder.editingID; id != "" {
		m.cart.Edit(id, m.builder.config, m.snapshot)
	} else {
		m.cart.AddPizza(m.builder.config, m.snapshot)
	}
	m.builder.reset()
	m.currentView = ViewCart
	m.clampCartCursor()
	return m, nil
}

// removeTopping drops one occurrence of the named topping, newest first.
func (b *builderState) removeTopping(name string) {
	for i := len(b.config.Toppings) - 1; i >= 0; i-- {
		if b.config.Toppings[i] == name {
			b.config.Toppings = append(b.config.Toppings[:i], b.config.Toppings[i+1:]...)
			return
		}
	}
}

// toppingCount returns how many helpings of the named topping are selected.
func (b builderState) toppingCount(name string) int {
	count := 0
	for _, topping := range b.config.Toppings {
		if topping == name {
			count++
		}
	}
	return count
}

// renderBuilder renders the builder wizard.
func (m Model) renderBuilder() string {
	styles := m.theme.Styles()

	if !m.snapshot.Loaded() {
		msg := styles.WarningText.Render("Waiting for the menu...")
		if m.snapshot.IsOffline() {
			msg = styles.DangerText.Render("Pizzeria unreachable - menu unavailable")
		}
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(m.renderBuilderBreadcrumb())
	b.WriteString("\n\n")

	switch m.builder.step {
	case stepBase, stepSize, stepToppings:
		b.WriteString(m.renderBuilderOptions())
	case stepSummary:
		b.WriteString(m.renderBuilderSummary())
	}

	return b.String()
}

// renderBuilderBreadcrumb shows the wizard stages with the active one
// highlighted.
func (m Model) renderBuilderBreadcrumb() string {
	styles := m.theme.Styles()
	labels := []string{"Base", "Size", "Toppings", "Review"}

	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if builderStep(i) == m.builder.step {
			parts = append(parts, styles.AccentText.Bold(true).Render(label))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	crumb := strings.Join(parts, styles.FaintText.Render(" > "))

	title := "Build your pizza"
	if m.builder.editingID != "" {
		title = "Edit your pizza"
	}
	return "  " + styles.Text.Bold(true).Render(title) + "  " + crumb
}

// renderBuilderOptions lists catalog entries for the active step.
func (m Model) renderBuilderOptions() string {
	styles := m.theme.Styles()
	options := m.builderOptions()

	if len(options) == 0 {
		return "  " + styles.MutedText.Render("Nothing available in this category yet")
	}

	var b strings.Builder
	for i, entry := range options {
		cursor := "  "
		line := entry.Name
		style := styles.Text

		if i == m.builder.cursor {
			cursor = styles.AccentText.Render("> ")
			style = style.Bold(true)
		}

		marker := ""
		switch m.builder.step {
		case stepBase:
			if m.builder.config.Base == entry.Name {
				marker = styles.SuccessText.Render(" ●")
			}
		case stepSize:
			if m.builder.config.Size == entry.Name {
				marker = styles.SuccessText.Render(" ●")
			}
		case stepToppings:
			if count := m.builder.toppingCount(entry.Name); count > 0 {
				marker = styles.SuccessText.Render(fmt.Sprintf(" ×%d", count))
			}
		}

		price := styles.MutedText.Render(formatPrice(entry.Price))
		b.WriteString(fmt.Sprintf("  %s%-36s %s%s\n", cursor, style.Render(line), price, marker))
	}

	if m.builder.step == stepToppings {
		b.WriteString("\n  ")
		selected := len(m.builder.config.Toppings)
		hint := fmt.Sprintf("%d selected (minimum %d, repeats welcome)", selected, pizza.MinToppings)
		if selected < pizza.MinToppings {
			b.WriteString(styles.WarningText.Render(hint))
		} else {
			b.WriteString(styles.SuccessText.Render(hint))
		}
	}

	return b.String()
}

// renderBuilderSummary shows the configuration review with live pricing.
func (m Model) renderBuilderSummary() string {
	styles := m.theme.Styles()
	cfg := m.builder.config
	validation := pizza.Validate(cfg)

	var b strings.Builder

	writeField := func(label, value, problem string) {
		b.WriteString("  " + styles.MutedText.Render(fmt.Sprintf("%-10s", label)))
		if value == "" {
			b.WriteString(styles.FaintText.Render("not chosen"))
		} else {
			b.WriteString(styles.Text.Render(value))
		}
		if problem != "" && m.builder.showErrors {
			b.WriteString("  " + styles.DangerText.Render(problem))
		}
		b.WriteString("\n")
	}

	writeField("Base", cfg.Base, validation.Errors.Base)
	writeField("Size", cfg.Size, validation.Errors.Size)
	writeField("Toppings", strings.Join(cfg.Toppings, ", "), validation.Errors.Toppings)

	b.WriteString("\n  " + styles.MutedText.Render("Price     "))
	if validation.Valid {
		b.WriteString(styles.SuccessText.Render(formatPrice(pizza.Price(cfg, m.snapshot))))
	} else {
		b.WriteString(styles.FaintText.Render("complete your pizza to see the price"))
	}
	b.WriteString("\n\n  ")

	action := "add to cart"
	if m.builder.editingID != "" {
		action = "save changes"
	}
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("enter %s  •  h/l change step  •  r start over", action)))

	return b.String()
}
