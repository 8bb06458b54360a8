package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/ui/styles"
)

// Icon identifies the glyph in the overlay's badge
type Icon int

const (
	IconAlert Icon = iota
	IconCheck
	IconGift
)

// Glyph returns the terminal glyph for the icon
func (i Icon) Glyph() string {
	switch i {
	case IconCheck:
		return "✔"
	case IconGift:
		return "❖"
	default:
		return "⚠"
	}
}

// String returns the string representation of the icon
func (i Icon) String() string {
	switch i {
	case IconAlert:
		return "alert"
	case IconCheck:
		return "check"
	case IconGift:
		return "gift"
	default:
		return "unknown"
	}
}

// tintStrength is how strongly the accent washes over the card in panels
const tintStrength = 0.10

// Theme is the visual identity derived from an outcome type
type Theme struct {
	Icon     Icon
	Gradient [2]lipgloss.Color
	Accent   lipgloss.Color
	Tint     lipgloss.Color
}

func newTheme(icon Icon, from, to, accent lipgloss.Color) Theme {
	return Theme{
		Icon:     icon,
		Gradient: [2]lipgloss.Color{from, to},
		Accent:   accent,
		Tint:     styles.Tint(accent, styles.Card, tintStrength),
	}
}

// Resolve returns the theme for a request payload. A nil payload resolves to
// the failure default.
func Resolve(p domain.Payload) Theme {
	switch p := domain.NormalizePayload(p).(type) {
	case domain.Success:
		return ResolveSuccess(p.Type)
	case domain.Failure:
		return ResolveFailure(p.Type)
	default:
		return ResolveFailure(domain.FailureError)
	}
}

// ResolveFailure returns the failure theme for t; unknown types get the error
// theme
func ResolveFailure(t domain.FailureType) Theme {
	switch t {
	case domain.FailureWarning:
		return newTheme(IconAlert, styles.Caution, styles.CautionDeep, styles.Caution)
	default:
		return newTheme(IconAlert, styles.Danger, styles.DangerDeep, styles.Danger)
	}
}

// ResolveSuccess returns the success theme for t; unknown types get the
// general theme
func ResolveSuccess(t domain.SuccessType) Theme {
	positiveFaded := styles.Fade(styles.Positive, styles.Card, 0.7)

	switch t {
	case domain.SuccessPurchase:
		return newTheme(IconGift, styles.Positive, positiveFaded, styles.Positive)
	case domain.SuccessVerification:
		return newTheme(IconCheck, styles.Primary, styles.Accent, styles.Primary)
	default:
		return newTheme(IconCheck, styles.Positive, positiveFaded, styles.Positive)
	}
}
