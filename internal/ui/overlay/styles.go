package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/outcome/internal/ui/styles"
)

// Styles holds the overlay's static styles. Colours that depend on the
// theme or the animation frame are applied at render time.
type Styles struct {
	// Card is the overlay container: rounded border with padding
	Card lipgloss.Style
	// HelpKey is the style for keybinding hints in the footer
	HelpKey lipgloss.Style
	// HelpDesc is the style for keybinding descriptions
	HelpDesc lipgloss.Style
	// HelpSeparator is the style for the dots between hints
	HelpSeparator lipgloss.Style
}

// New creates the overlay styles using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Card).
			Padding(chromeY-1, chromeX-1),

		HelpKey: lipgloss.NewStyle().
			Foreground(styles.Highlight).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(styles.Surface2),
	}
}

// helpView renders the key hints over bg at the given opacity
func (s *Styles) helpView(bindings []key.Binding, bg lipgloss.Color, opacity float64, width int) string {
	fade := func(st lipgloss.Style) lipgloss.Style {
		fg, _ := st.GetForeground().(lipgloss.Color)
		return st.Foreground(styles.Fade(fg, bg, opacity)).Background(bg)
	}

	h := help.New()
	h.Width = width
	h.ShortSeparator = " • "
	h.Styles.ShortKey = fade(s.HelpKey)
	h.Styles.ShortDesc = fade(s.HelpDesc)
	h.Styles.ShortSeparator = fade(s.HelpSeparator)
	h.Styles.Ellipsis = fade(s.HelpSeparator)
	return h.ShortHelpView(bindings)
}
