package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrNoBrowser            = errors.New("no browser opener found")
)

// EffectError represents a failed platform side effect (clipboard write,
// opening a link)
type EffectError struct {
	Op     string // Operation: "copy", "open"
	Target string // Optional: what was copied or opened
	Err    error  // Underlying error
}

func (e *EffectError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EffectError) Unwrap() error {
	return e.Err
}

// ParseError represents a value that could not be mapped to a known enum
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
