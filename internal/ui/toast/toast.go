// Package toast renders short-lived notifications in the corner of the host
// view.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/outcome/internal/types"
	"github.com/riordanpawley/outcome/internal/ui/styles"
)

// DefaultTTL is how long a toast stays on screen
const DefaultTTL = 2500 * time.Millisecond

const maxWidth = 40

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render stacks toasts, newest last, right-aligned. It returns "" when there
// is nothing to show.
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width / 3
	if toastWidth > maxWidth {
		toastWidth = maxWidth
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(Icon(t.Level)+" "+t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}

// Icon returns the glyph shown before a toast's message
func Icon(level types.ToastLevel) string {
	switch level {
	case types.ToastSuccess:
		return "✔"
	case types.ToastWarning:
		return "⚠"
	case types.ToastError:
		return "✖"
	default:
		return "•"
	}
}

// Prune drops toasts that have expired at now
func Prune(toasts []types.Toast, now time.Time) []types.Toast {
	kept := make([]types.Toast, 0, len(toasts))
	for _, t := range toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	return kept
}
