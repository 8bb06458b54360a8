// Package platform adapts the host system's clipboard and URL opener.
package platform

import "context"

//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Browser opens a URL in the user's browser
type Browser interface {
	Open(ctx context.Context, url string) error
}
