package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pizzetta/pizzetta/internal/cart"
	"github.com/pizzetta/pizzetta/internal/catalog"
	"github.com/pizzetta/pizzetta/internal/order"
	"github.com/pizzetta/pizzetta/internal/pizzeria"
	"github.com/pizzetta/pizzetta/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewBuilder View = iota
	ViewCart
	ViewCheckout
	ViewConfirm
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    pizzeria.Menu
	Catalog   *catalog.Store
	Cart      *cart.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    pizzeria.Menu
	catalog   *catalog.Store
	cart      *cart.Store
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    catalog.Snapshot
	lastUpdated time.Time

	// Builder state
	builder builderState

	// Cart state
	cartCursor int

	// Checkout state
	checkout   checkoutState
	spinner    spinner.Model
	submitting bool

	// Confirmation state
	placedOrder  *pizzeria.OrderResponse
	droppedItems int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		catalog:     opts.Catalog,
		cart:        opts.Cart,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       theme,
		keys:        DefaultKeyMap(),
		currentView: ViewBuilder,
		builder:     newBuilderState(),
		checkout:    newCheckoutState(),
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.catalog != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.catalog))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.checkout.initInputs()
		}
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = catalog.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case orderPlacedMsg:
		m.submitting = false
		m.placedOrder = msg.response
		m.droppedItems = msg.dropped
		m.cart.Clear()
		m.currentView = ViewConfirm
		return m, nil

	case orderFailedMsg:
		// Cart stays intact; the user can retry the same submission.
		m.submitting = false
		m.checkout.submitErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.currentView == ViewCheckout && !m.submitting {
		return m.updateCheckoutInputs(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewBuilder:
		return m.renderBuilder()
	case ViewCart:
		return m.renderCart()
	case ViewCheckout:
		return m.renderCheckout()
	case ViewConfirm:
		return m.renderConfirm()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While submitting only Ctrl+C is honored
	if m.submitting {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Checkout owns most keys while its inputs are focused
	if m.currentView == ViewCheckout {
		return m.handleCheckoutKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewBuilder):
		m.currentView = ViewBuilder
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.currentView = ViewCart
		m.clampCartCursor()
		return m, nil
	}

	switch m.currentView {
	case ViewBuilder:
		return m.handleBuilderKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewConfirm:
		return m.handleConfirmKey(msg)
	}

	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.catalog != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.catalog))
	}
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// pricedCart returns the cart repriced against the latest snapshot. All
// rendering and checkout paths read this view, never the raw stored
// prices, so a catalog refresh moves every displayed price.
func (m Model) pricedCart() cart.State {
	if m.cart == nil {
		return cart.State{}
	}
	return m.cart.Priced(m.snapshot)
}

// Messages

type tickMsg time.Time

type snapshotMsg catalog.Snapshot

type orderPlacedMsg struct {
	response *pizzeria.OrderResponse
	dropped  int
}

type orderFailedMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func submitOrderCmd(ctx context.Context, client pizzeria.Menu, req pizzeria.OrderRequest, dropped int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SubmitOrder(ctx, req)
		if err != nil {
			return orderFailedMsg{err: err}
		}
		return orderPlacedMsg{response: resp, dropped: dropped}
	}
}

// submitCmd validates and kicks off order submission. It is shared by the
// checkout key handler so tests can exercise the same path.
func (m *Model) submitCmd() tea.Cmd {
	state := m.pricedCart()
	if len(state.Items) == 0 {
		m.checkout.submitErr = errEmptyCart
		return nil
	}

	info := m.checkout.customerInfo()
	errs := order.ValidateCustomer(info)
	m.checkout.fieldErrs = errs
	if !errs.Valid() {
		return nil
	}

	req, dropped := order.BuildRequest(state.Items, info, m.checkout.notes(), m.snapshot)
	if len(req.Items) == 0 {
		m.checkout.submitErr = errNothingResolvable
		return nil
	}

	m.checkout.submitErr = nil
	m.submitting = true
	return tea.Batch(m.spinner.Tick, submitOrderCmd(m.ctx, m.client, req, dropped))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
