// Package overlay renders transient outcome overlays (failure or success)
// above a Bubble Tea host view. The host owns visibility: it passes a
// domain.Request on every state change and the overlay mounts iff IsOpen.
package overlay

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/logging"
	"github.com/riordanpawley/outcome/internal/platform"
	"github.com/riordanpawley/outcome/internal/ui/motion"
)

// DefaultCardWidth is the card's outer width in cells
const DefaultCardWidth = 56

// DismissSource says how the user dismissed the overlay
type DismissSource int

const (
	DismissBackdrop DismissSource = iota
	DismissClose
	DismissKey
)

// String returns the string representation of the dismiss source
func (s DismissSource) String() string {
	switch s {
	case DismissBackdrop:
		return "backdrop"
	case DismissClose:
		return "close"
	case DismissKey:
		return "key"
	default:
		return "unknown"
	}
}

// ActivatedMsg is sent after a button's callback ran
type ActivatedMsg struct {
	Slot  Slot
	Label string
}

// DismissedMsg is sent after the dismiss callback ran from the backdrop, the
// close affordance or the dismiss key
type DismissedMsg struct {
	Source DismissSource
}

// Controller mounts the overlay for the host. Its logical state is the last
// request's IsOpen; the visual lifecycle (entrance, exit) lives in the
// presence, which keeps the last open request on screen while it exits.
type Controller struct {
	req      domain.Request
	presence *motion.Presence[domain.Request]

	clipboard platform.Clipboard
	browser   platform.Browser
	ctx       context.Context

	styles    *Styles
	keys      KeyMap
	cardWidth int
	width     int
	height    int
	focus     int
}

var _ tea.Model = (*Controller)(nil)

// Option configures a Controller
type Option func(*Controller)

// WithClipboard sets the clipboard used by the copy affordance
func WithClipboard(cb platform.Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithBrowser sets the opener used by the explorer link
func WithBrowser(br platform.Browser) Option {
	return func(c *Controller) { c.browser = br }
}

// WithContext sets the context passed to effects; it carries the logger
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// WithMotion sets the animation options
func WithMotion(opts motion.Options) Option {
	return func(c *Controller) { c.presence = motion.NewPresence(entrance, opts) }
}

// WithCardWidth sets the card's outer width
func WithCardWidth(w int) Option {
	return func(c *Controller) {
		if w > 0 {
			c.cardWidth = w
		}
	}
}

// NewController creates a closed overlay controller
func NewController(opts ...Option) *Controller {
	c := &Controller{
		presence:  motion.NewPresence(entrance, motion.Options{}),
		clipboard: platform.NewClipboard(),
		browser:   platform.NewBrowser(),
		ctx:       context.Background(),
		styles:    New(),
		keys:      DefaultKeyMap(),
		cardWidth: DefaultCardWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// entrance picks the choreography for a request's variant
func entrance(req domain.Request) motion.Timeline {
	if req.VariantOf() != domain.VariantSuccess {
		return motion.Entrance(motion.EntranceOptions{ActionsDelay: motion.FailureActionsDelay})
	}
	return motion.Entrance(motion.EntranceOptions{
		Sparkle:      true,
		Detail:       req.Detail() != nil,
		ActionsDelay: motion.SuccessActionsDelay,
	})
}

// SetRequest supplies the host's current request. Calling it with an
// unchanged IsOpen is a no-op apart from refreshing the content.
func (c *Controller) SetRequest(req domain.Request) tea.Cmd {
	opening := req.IsOpen && !c.req.IsOpen
	c.req = req
	if opening {
		c.focus = 0
	}
	cmd := c.presence.Present(req.IsOpen, req)
	c.clampFocus()
	return cmd
}

// SetSize records the screen size used for layout and hit testing
func (c *Controller) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// IsOpen reports the logical state: the last request's IsOpen
func (c *Controller) IsOpen() bool {
	return c.req.IsOpen
}

// Visible reports whether the overlay draws anything, including while it
// plays its exit
func (c *Controller) Visible() bool {
	return c.presence.Visible()
}

// Phase returns the visual lifecycle phase
func (c *Controller) Phase() motion.Phase {
	return c.presence.Phase()
}

// Focus returns the index of the focused button
func (c *Controller) Focus() int {
	return c.focus
}

// Layout returns the composed content currently on screen
func (c *Controller) Layout() Layout {
	return Compose(c.presence.Snapshot())
}

// Init implements tea.Model
func (c *Controller) Init() tea.Cmd {
	return nil
}

// Update handles frames, input and resizes. Input is consumed only while the
// overlay is open.
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, c.update(msg)
}

func (c *Controller) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return nil

	case motion.FrameMsg:
		return c.presence.Update(msg)

	case tea.KeyMsg:
		if !c.req.IsOpen {
			return nil
		}
		return c.handleKey(msg)

	case tea.MouseMsg:
		if !c.req.IsOpen {
			return nil
		}
		if msg.Action != tea.MouseActionRelease {
			return nil
		}
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return nil
		}
		return c.Click(msg.X, msg.Y)
	}

	return nil
}

// handleKey routes a key press. The key map wins over action shortcuts, so a
// shortcut that collides with a binding never fires.
func (c *Controller) handleKey(msg tea.KeyMsg) tea.Cmd {
	layout := c.Layout()

	switch {
	case key.Matches(msg, c.keys.Dismiss):
		return c.dismiss(DismissKey)
	case key.Matches(msg, c.keys.Next):
		c.moveFocus(len(layout.Buttons), 1)
	case key.Matches(msg, c.keys.Prev):
		c.moveFocus(len(layout.Buttons), -1)
	case key.Matches(msg, c.keys.Activate):
		return c.activate(layout, c.focus)
	case key.Matches(msg, c.keys.Copy):
		return c.copyReference(layout)
	case key.Matches(msg, c.keys.Open):
		return c.openReference(layout)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		for i, b := range layout.Buttons {
			if b.Key != 0 && b.Key == msg.Runes[0] {
				return c.activate(layout, i)
			}
		}
	}
	return nil
}

// Click handles a left click at a screen cell. Cells outside the card
// dismiss; cells inside the card act only on their affordance.
func (c *Controller) Click(x, y int) tea.Cmd {
	if !c.req.IsOpen || !c.presence.Visible() {
		return nil
	}

	layout := c.Layout()
	target := c.placement(layout).hit(x, y)

	logging.FromContext(c.ctx).Debug().
		Int("x", x).
		Int("y", y).
		Stringer("target", target.Kind).
		Msg("overlay click")

	switch target.Kind {
	case TargetBackdrop:
		return c.dismiss(DismissBackdrop)
	case TargetClose:
		return c.dismiss(DismissClose)
	case TargetCopy:
		return c.copyReference(layout)
	case TargetOpen:
		return c.openReference(layout)
	case TargetButton:
		c.focus = target.Index
		return c.activate(layout, target.Index)
	}
	return nil
}

func (c *Controller) dismiss(source DismissSource) tea.Cmd {
	logging.FromContext(c.ctx).Debug().Stringer("source", source).Msg("overlay dismissed")
	c.req.Dismiss()
	return func() tea.Msg { return DismissedMsg{Source: source} }
}

func (c *Controller) activate(layout Layout, index int) tea.Cmd {
	if index < 0 || index >= len(layout.Buttons) {
		return nil
	}
	b := layout.Buttons[index]

	logging.FromContext(c.ctx).Debug().
		Stringer("slot", b.Slot).
		Str("label", b.Label).
		Msg("overlay action")

	b.Activate()
	return func() tea.Msg { return ActivatedMsg{Slot: b.Slot, Label: b.Label} }
}

func (c *Controller) copyReference(layout Layout) tea.Cmd {
	if layout.Detail == nil || layout.Detail.Reference == nil {
		return nil
	}
	return CopyCmd(c.ctx, c.clipboard, layout.Detail.Reference.Full)
}

func (c *Controller) openReference(layout Layout) tea.Cmd {
	if layout.Detail == nil || layout.Detail.Reference == nil {
		return nil
	}
	return OpenCmd(c.ctx, c.browser, layout.Detail.Reference.URL)
}

func (c *Controller) moveFocus(n, delta int) {
	if n == 0 {
		c.focus = 0
		return
	}
	c.focus = ((c.focus+delta)%n + n) % n
}

func (c *Controller) clampFocus() {
	n := len(Compose(c.presence.Snapshot()).Buttons)
	if c.focus >= n {
		c.focus = 0
	}
}

// effectiveWidth fits the card to the screen
func (c *Controller) effectiveWidth(width int) int {
	if width > 0 && width < c.cardWidth {
		return width
	}
	return c.cardWidth
}

func (c *Controller) placement(layout Layout) placement {
	frame := c.presence.Frame()
	crd := renderCard(layout, frame, c.styles, c.keys, c.effectiveWidth(c.width), c.focus)
	return place(crd, frame, c.width, c.height)
}

// View renders the overlay on a plain backdrop filling the size set by
// SetSize, or "" when nothing is visible
func (c *Controller) View() string {
	return c.render("", c.width, c.height)
}

// Overlay renders the overlay over the host's background view. The
// background is returned unchanged when nothing is visible.
func (c *Controller) Overlay(background string) string {
	if !c.presence.Visible() {
		return background
	}
	return c.render(background, c.width, c.height)
}

func (c *Controller) render(background string, width, height int) string {
	if !c.presence.Visible() || width <= 0 || height <= 0 {
		return ""
	}
	frame := c.presence.Frame()
	crd := renderCard(c.Layout(), frame, c.styles, c.keys, c.effectiveWidth(width), c.focus)
	return composite(place(crd, frame, width, height), frame, background, width, height)
}
