package overlay

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the overlay keybindings
type KeyMap struct {
	Dismiss  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Copy     key.Binding
	Open     key.Binding
}

// DefaultKeyMap returns the default overlay keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy tx"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "explorer"),
		),
	}
}

// ShortHelp returns the footer bindings. Copy and open are listed only when
// a transaction reference is shown.
func (k KeyMap) ShortHelp(hasReference bool) []key.Binding {
	bindings := []key.Binding{k.Activate, k.Next, k.Dismiss}
	if hasReference {
		bindings = append(bindings, k.Copy, k.Open)
	}
	return bindings
}

// Binds reports whether r is taken by one of the bindings, which would shadow
// an action shortcut on the same key
func (k KeyMap) Binds(r rune) bool {
	for _, b := range []key.Binding{k.Dismiss, k.Next, k.Prev, k.Activate, k.Copy, k.Open} {
		for _, s := range b.Keys() {
			if s == string(r) {
				return true
			}
		}
	}
	return false
}
