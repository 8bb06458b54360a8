// Package types contains shared types used across the host application.
package types

// Mode represents what the host is doing, which decides where keys go
type Mode int

const (
	// ModeBrowse is picking a scenario
	ModeBrowse Mode = iota
	// ModeRunning is waiting on the simulated action
	ModeRunning
	// ModeOverlay is showing the outcome overlay; it owns the keyboard
	ModeOverlay
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeRunning:
		return "RUNNING"
	case ModeOverlay:
		return "OUTCOME"
	default:
		return "UNKNOWN"
	}
}
