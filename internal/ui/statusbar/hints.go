package statusbar

import "github.com/riordanpawley/outcome/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeBrowse:
		return "j/k: scenario  Enter: run  r: reload  q: quit"
	case types.ModeRunning:
		return "Esc: cancel  q: quit"
	case types.ModeOverlay:
		// The overlay renders its own key hints
		return ""
	default:
		return ""
	}
}
