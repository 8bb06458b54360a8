package overlay

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/logging"
	"github.com/riordanpawley/outcome/internal/platform"
)

// EffectKind names a platform side effect triggered from the overlay
type EffectKind int

const (
	EffectCopy EffectKind = iota
	EffectOpen
)

// String returns the operation name of the effect
func (k EffectKind) String() string {
	switch k {
	case EffectCopy:
		return "copy"
	case EffectOpen:
		return "open"
	default:
		return "unknown"
	}
}

// EffectResultMsg reports the outcome of a copy or open. Failures are already
// logged; the overlay's state does not depend on the result.
type EffectResultMsg struct {
	Kind   EffectKind
	Target string
	Err    error
}

// CopyCmd writes text to the clipboard off the event loop
func CopyCmd(ctx context.Context, cb platform.Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return runEffect(ctx, EffectCopy, text, func() error {
			return cb.WriteText(ctx, text)
		})
	}
}

// OpenCmd opens url in the browser off the event loop
func OpenCmd(ctx context.Context, br platform.Browser, url string) tea.Cmd {
	return func() tea.Msg {
		return runEffect(ctx, EffectOpen, url, func() error {
			return br.Open(ctx, url)
		})
	}
}

func runEffect(ctx context.Context, kind EffectKind, target string, fn func() error) EffectResultMsg {
	msg := EffectResultMsg{Kind: kind, Target: target}
	if err := fn(); err != nil {
		msg.Err = &domain.EffectError{Op: kind.String(), Target: target, Err: err}
		logging.FromContext(ctx).Warn().Err(msg.Err).Msg("overlay effect failed")
	}
	return msg
}
