package platform

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/riordanpawley/outcome/internal/domain"
	"github.com/riordanpawley/outcome/internal/logging"
)

// Runner starts an external command without waiting for it
type Runner interface {
	Start(ctx context.Context, name string, args ...string) error
}

// ExecRunner implements Runner using os/exec
type ExecRunner struct{}

// Start implements Runner
func (ExecRunner) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}

// SystemBrowser opens URLs with the desktop's opener
type SystemBrowser struct {
	runner   Runner
	lookPath func(string) (string, error)
	goos     string
}

// NewBrowser creates a browser adapter using os/exec
func NewBrowser() *SystemBrowser {
	return &SystemBrowser{
		runner:   ExecRunner{},
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

// Open launches url in a new browser tab. The URL is passed verbatim.
func (b *SystemBrowser) Open(ctx context.Context, url string) error {
	name, args, err := b.opener()
	if err != nil {
		return err
	}

	if err := b.runner.Start(ctx, name, append(args, url)...); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	logging.FromContext(ctx).Debug().Str("opener", name).Str("url", url).Msg("opened url")
	return nil
}

// opener picks the command for the current platform
func (b *SystemBrowser) opener() (string, []string, error) {
	switch b.goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	}

	// Use xdg-open on Linux and the BSDs, with common fallbacks
	for _, candidate := range []string{"xdg-open", "gio", "wslview"} {
		if _, err := b.lookPath(candidate); err == nil {
			if candidate == "gio" {
				return candidate, []string{"open"}, nil
			}
			return candidate, nil, nil
		}
	}
	return "", nil, domain.ErrNoBrowser
}
