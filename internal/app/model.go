// Package app contains the demo host: a Bubble Tea model that runs simulated
// asynchronous actions and drives the outcome overlay from their results.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/outcome/internal/config"
	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/logging"
	"github.com/riordanpawley/outcome/internal/scenario"
	"github.com/riordanpawley/outcome/internal/types"
	"github.com/riordanpawley/outcome/internal/ui/motion"
	"github.com/riordanpawley/outcome/internal/ui/overlay"
	"github.com/riordanpawley/outcome/internal/ui/styles"
	"github.com/riordanpawley/outcome/internal/ui/toast"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastError   = types.ToastError
)

// Loader returns the scenarios the host offers
type Loader func() ([]scenario.Scenario, error)

// actionDoneMsg reports that a simulated action finished
type actionDoneMsg struct {
	run   int
	index int
}

// expireToastsMsg asks the model to drop expired toasts
type expireToastsMsg struct{}

// Model is the host application state. It is used through a pointer: the
// overlay's callbacks close over it and mutate the open flag directly.
type Model struct {
	// Scenarios
	scenarios []scenario.Scenario
	loader    Loader
	cursor    int

	// Simulated action
	running bool
	run     int
	target  int
	latency time.Duration
	spinner spinner.Model

	// Outcome overlay; open is the logical flag the request is built from
	open    bool
	active  int
	overlay *overlay.Controller
	pending []tea.Cmd

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	ctx    context.Context
	now    func() time.Time
}

// Option configures a Model
type Option func(*modelOptions)

type modelOptions struct {
	loader   Loader
	ctx      context.Context
	now      func() time.Time
	overlays []overlay.Option
}

// WithLoader replaces the scenario source
func WithLoader(l Loader) Option {
	return func(o *modelOptions) { o.loader = l }
}

// WithContext sets the context carrying the logger
func WithContext(ctx context.Context) Option {
	return func(o *modelOptions) { o.ctx = ctx }
}

// WithClock sets the time source used for toast expiry
func WithClock(now func() time.Time) Option {
	return func(o *modelOptions) { o.now = now }
}

// WithOverlayOptions passes extra options to the overlay controller
func WithOverlayOptions(opts ...overlay.Option) Option {
	return func(o *modelOptions) { o.overlays = append(o.overlays, opts...) }
}

// New creates the host model. Scenarios come from cfg.Demo.Scenarios when set,
// otherwise the built-in set is used.
func New(cfg *config.Config, opts ...Option) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	o := modelOptions{
		loader: fileLoader(cfg.Demo.Scenarios),
		ctx:    context.Background(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	scenarios, err := o.loader()
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	overlayOpts := append([]overlay.Option{
		overlay.WithContext(o.ctx),
		overlay.WithMotion(cfg.Motion()),
		overlay.WithCardWidth(cfg.Layout.CardWidth),
	}, o.overlays...)

	return &Model{
		scenarios: scenarios,
		loader:    o.loader,
		latency:   cfg.Demo.Latency,
		spinner:   s,
		overlay:   overlay.NewController(overlayOpts...),
		styles:    styles.New(),
		ctx:       o.ctx,
		now:       o.now,
	}, nil
}

func fileLoader(path string) Loader {
	if path == "" {
		return func() ([]scenario.Scenario, error) { return scenario.Default(), nil }
	}
	return func() ([]scenario.Scenario, error) { return scenario.Load(path) }
}

// Init returns the initial command for the application
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	// The overlay sees the request rebuilt from the state this message left
	present := m.overlay.SetRequest(m.request())
	pending := m.pending
	m.pending = nil
	return m, tea.Batch(append(pending, cmd, present)...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overlay.SetSize(msg.Width, msg.Height)
		return nil

	case spinner.TickMsg:
		if !m.running {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case motion.FrameMsg:
		return m.updateOverlay(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.open {
			return m.updateOverlay(msg)
		}
		return m.handleMouse(msg)

	case actionDoneMsg:
		if msg.run != m.run || !m.running || msg.index >= len(m.scenarios) {
			// Cancelled or superseded
			return nil
		}
		m.running = false
		m.active = msg.index
		m.open = true
		logging.FromContext(m.ctx).Info().
			Str("scenario", m.scenarios[msg.index].Name).
			Str("variant", m.scenarios[msg.index].Variant).
			Msg("action finished")
		return nil

	case overlay.ActivatedMsg:
		logging.FromContext(m.ctx).Debug().Str("label", msg.Label).Msg("outcome action activated")
		return nil

	case overlay.DismissedMsg:
		logging.FromContext(m.ctx).Debug().Stringer("source", msg.Source).Msg("outcome dismissed")
		return nil

	case overlay.EffectResultMsg:
		return m.handleEffectResult(msg)

	case expireToastsMsg:
		m.toasts = toast.Prune(m.toasts, m.now())
		return nil
	}

	return nil
}

func (m *Model) updateOverlay(msg tea.Msg) tea.Cmd {
	_, cmd := m.overlay.Update(msg)
	return cmd
}

// handleKey processes keyboard input based on current mode
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in any mode)
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+l":
		return tea.ClearScreen
	}

	switch m.Mode() {
	case types.ModeOverlay:
		return m.updateOverlay(msg)
	case types.ModeRunning:
		return m.handleRunningMode(msg)
	default:
		return m.handleBrowseMode(msg)
	}
}

// handleBrowseMode processes keyboard input while picking a scenario
func (m *Model) handleBrowseMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.scenarios) - 1
	case "enter", " ":
		return m.startAction(m.cursor)
	case "r":
		return m.reload()
	}
	return nil
}

// handleRunningMode processes keyboard input while an action is in flight
func (m *Model) handleRunningMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc":
		m.running = false
		m.run++
		return m.addToast(ToastInfo, "Action cancelled")
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.running || msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	n := len(m.scenarios)
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

// startAction runs the scenario at index as a simulated asynchronous action
func (m *Model) startAction(index int) tea.Cmd {
	if index < 0 || index >= len(m.scenarios) {
		return nil
	}
	m.running = true
	m.target = index
	m.run++
	run := m.run

	logging.FromContext(m.ctx).Debug().
		Str("scenario", m.scenarios[index].Name).
		Dur("latency", m.latency).
		Msg("action started")

	done := actionDoneMsg{run: run, index: index}
	if m.latency <= 0 {
		return func() tea.Msg { return done }
	}
	return tea.Batch(m.spinner.Tick, tea.Tick(m.latency, func(time.Time) tea.Msg {
		return done
	}))
}

func (m *Model) reload() tea.Cmd {
	scenarios, err := m.loader()
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("reloading scenarios")
		return m.addToast(ToastError, err.Error())
	}
	m.scenarios = scenarios
	m.moveCursor(0)
	return m.addToast(ToastSuccess, fmt.Sprintf("Loaded %d scenarios", len(scenarios)))
}

// request builds the overlay request from the current state
func (m *Model) request() domain.Request {
	if m.active < 0 || m.active >= len(m.scenarios) {
		return domain.Request{}
	}
	return m.scenarios[m.active].Request(m.open, m.bind, m.closeOverlay)
}

func (m *Model) closeOverlay() {
	m.open = false
}

// bind turns a scenario action's intent into its callback
func (m *Model) bind(spec scenario.ActionSpec) func() {
	index := m.active
	switch spec.Intent {
	case scenario.IntentRetry:
		return func() {
			m.open = false
			m.pending = append(m.pending, m.startAction(index))
		}
	case scenario.IntentNotify:
		return func() {
			m.open = false
			note := spec.Note
			if note == "" {
				note = spec.Label
			}
			m.pending = append(m.pending, m.addToast(ToastInfo, note))
		}
	default:
		return m.closeOverlay
	}
}

func (m *Model) handleEffectResult(msg overlay.EffectResultMsg) tea.Cmd {
	if msg.Err != nil {
		// Already logged by the effect; the overlay stays as it was
		return nil
	}
	switch msg.Kind {
	case overlay.EffectCopy:
		return m.addToast(ToastSuccess, "Transaction copied")
	case overlay.EffectOpen:
		return m.addToast(ToastSuccess, "Opened in explorer")
	}
	return nil
}

// addToast shows a toast and schedules its expiry
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.now().Add(toast.DefaultTTL),
	})
	return tea.Tick(toast.DefaultTTL, func(time.Time) tea.Msg { return expireToastsMsg{} })
}

// Mode returns what the host is doing, which decides where keys go
func (m *Model) Mode() types.Mode {
	switch {
	case m.open:
		return types.ModeOverlay
	case m.running:
		return types.ModeRunning
	default:
		return types.ModeBrowse
	}
}

// Overlay exposes the overlay controller
func (m *Model) Overlay() *overlay.Controller {
	return m.overlay
}

// Toasts returns the toasts currently shown
func (m *Model) Toasts() []Toast {
	return m.toasts
}
