package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/outcome/internal/domain"
)

type startCall struct {
	name string
	args []string
}

type recordingRunner struct {
	calls []startCall
	err   error
}

func (r *recordingRunner) Start(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, startCall{name: name, args: args})
	return r.err
}

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestSystemBrowser_Open(t *testing.T) {
	const url = "https://explorer.solana.com/tx/abcdef1234567890"

	tests := []struct {
		name      string
		goos      string
		available []string
		wantName  string
		wantArgs  []string
	}{
		{"linux xdg-open", "linux", []string{"xdg-open", "gio"}, "xdg-open", []string{url}},
		{"linux gio fallback", "linux", []string{"gio"}, "gio", []string{"open", url}},
		{"wsl", "linux", []string{"wslview"}, "wslview", []string{url}},
		{"macOS", "darwin", nil, "open", []string{url}},
		{"windows", "windows", nil, "rundll32", []string{"url.dll,FileProtocolHandler", url}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{}
			b := &SystemBrowser{runner: runner, lookPath: lookPathFor(tt.available...), goos: tt.goos}

			require.NoError(t, b.Open(context.Background(), url))
			require.Len(t, runner.calls, 1)
			assert.Equal(t, tt.wantName, runner.calls[0].name)
			assert.Equal(t, tt.wantArgs, runner.calls[0].args)
		})
	}
}

func TestSystemBrowser_NoOpener(t *testing.T) {
	runner := &recordingRunner{}
	b := &SystemBrowser{runner: runner, lookPath: lookPathFor(), goos: "linux"}

	err := b.Open(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, domain.ErrNoBrowser)
	assert.Empty(t, runner.calls)
}

func TestSystemBrowser_StartFailure(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exec format error")}
	b := &SystemBrowser{runner: runner, lookPath: lookPathFor("xdg-open"), goos: "linux"}

	err := b.Open(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start xdg-open")
}

func TestNewBrowser(t *testing.T) {
	b := NewBrowser()
	assert.NotNil(t, b.runner)
	assert.NotNil(t, b.lookPath)
	assert.NotEmpty(t, b.goos)
}
