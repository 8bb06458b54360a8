package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the host application styles
type Styles struct {
	// Screen
	Screen lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style

	// Scenario list
	Scenario       lipgloss.Style
	ScenarioActive lipgloss.Style
	ScenarioTag    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	toast := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Screen: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay1),

		Scenario: lipgloss.NewStyle().
			Foreground(Subtext0).
			PaddingLeft(2),

		ScenarioActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			PaddingLeft(2),

		ScenarioTag: lipgloss.NewStyle().
			Foreground(Base).
			Background(Surface2).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo:    toast.BorderForeground(Blue).Foreground(Text),
		ToastSuccess: toast.BorderForeground(Green).Foreground(Green),
		ToastWarning: toast.BorderForeground(Yellow).Foreground(Yellow),
		ToastError:   toast.BorderForeground(Red).Foreground(Red),
	}
}

// ScenarioTagColor returns the badge colour for a scenario's variant name
func ScenarioTagColor(variant string) lipgloss.Color {
	switch variant {
	case "success":
		return Positive
	case "failure":
		return Danger
	default:
		return Surface2
	}
}
