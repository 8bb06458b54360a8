package platform

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/logging"
)

// SystemClipboard implements Clipboard with the platform clipboard tools
// (pbcopy, wl-copy, xclip, xsel, or the Windows API)
type SystemClipboard struct{}

// NewClipboard creates a system clipboard adapter
func NewClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteText copies text to the clipboard
func (c *SystemClipboard) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if clipboard.Unsupported {
		log.Debug().Msg("clipboard unsupported on this system")
		return domain.ErrClipboardUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}
