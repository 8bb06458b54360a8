package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Crust    = lipgloss.Color("#181926")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve  = lipgloss.Color("#c6a0f6")
	Red    = lipgloss.Color("#ed8796")
	Maroon = lipgloss.Color("#ee99a0")
	Peach  = lipgloss.Color("#f5a97f")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Blue   = lipgloss.Color("#8aadf4")
)

// Semantic tokens used by overlay themes
var (
	Primary = Blue
	Accent  = Mauve
	// Positive is the success chart colour
	Positive = Green
	// Highlight marks decorative flourishes (the success sparkle)
	Highlight = Yellow
	Danger    = Red
	// DangerDeep is the darker end of the error gradient
	DangerDeep = Maroon
	Caution    = Yellow
	// CautionDeep is the darker end of the warning gradient
	CautionDeep = Peach

	// Card is the overlay surface, Scrim the dimmed backdrop behind it
	Card  = Mantle
	Scrim = Crust
)
