package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, menu availability, cart
// summary, last refresh, and any catalog error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.Loaded() {
		return m.renderConnectingHeader(styles, bg)
	}

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderConnectingHeader shows the first-load and error states.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}
		errorMsg := classifyConnectionError(m.snapshot.LastError)

		parts := []string{
			bg.Render("pizzetta", styles.Logo),
			bg.Render("MENU "+errorMsg, styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("pizzetta", styles.Logo) + sep +
			bg.Render("Fetching the menu...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 100
	state := m.pricedCart()

	var parts []string

	parts = append(parts, bg.Render("pizzetta", styles.Logo))

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	} else {
		parts = append(parts, bg.Render("● OPEN", styles.SuccessText))
	}

	menu := fmt.Sprintf("%d/%d/%d",
		len(m.snapshot.Bases), len(m.snapshot.Sizes), len(m.snapshot.Toppings))
	parts = append(parts,
		bg.Render("Menu:", styles.MutedText)+bg.Space()+bg.Render(menu, styles.Text))

	cartStyle := styles.MutedText
	if state.ItemCount > 0 {
		cartStyle = styles.Text
	}
	parts = append(parts,
		bg.Render("Cart:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", state.ItemCount), cartStyle)+bg.Space()+
			bg.Render(formatPrice(state.Total), cartStyle))

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("STALE", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.WarningText))
	}

	return bg.Join(parts, "  ")
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// commandBarBindings returns the keymap bindings hinted for the current
// view, falling back to the keymap's ShortHelp.
func (m Model) commandBarBindings() []key.Binding {
	k := m.keys
	switch m.currentView {
	case ViewCart:
		return []key.Binding{k.Down, k.Increase, k.Decrease, k.Delete, k.EditItem, k.ClearCart, k.ViewCheckout, k.ViewBuilder, k.Help}
	case ViewCheckout:
		return []key.Binding{k.Tab, k.Submit, k.Escape}
	case ViewConfirm:
		return []key.Binding{k.NewOrder, k.ViewCart, k.Help}
	case ViewBuilder:
		return []key.Binding{k.Down, k.Select, k.StepBack, k.StepNext, k.Remove, k.StartOver, k.ViewCart, k.Help}
	default:
		return k.ShortHelp()
	}
}

// renderCommandBar renders the per-view command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bindings := m.commandBarBindings()

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(bindings)+1)
	for _, binding := range bindings {
		help := binding.Help()
		segments = append(segments,
			bg.Render(help.Key, styles.AccentText)+colon+bg.Render(help.Desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// contentHeight returns the rows left for the content area below the
// header and command bar.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}
