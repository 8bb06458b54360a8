package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Mix blends from toward to by t in Lab space. t is clamped to [0, 1].
// Colours that fail to parse fall back to from.
func Mix(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, err := colorful.Hex(string(from))
	if err != nil {
		return from
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Fade returns fg as seen at the given opacity over bg
func Fade(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	return Mix(bg, fg, opacity)
}

// Tint returns a wash of c over bg, as used for panel backgrounds
func Tint(c, bg lipgloss.Color, strength float64) lipgloss.Color {
	return Mix(bg, c, strength)
}

// Gradient returns n colours stepping evenly from one colour to the other
func Gradient(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = Mix(from, to, float64(i)/float64(n-1))
	}
	return out
}
