// Package motion describes overlay choreography as data: each element moves
// between two visual states after a delay, following a curve. Timelines are
// sampled at an elapsed duration, so nothing here reads the wall clock.
package motion

import "math"

// Visual is the animatable state of one element
type Visual struct {
	Opacity float64
	Scale   float64
	// OffsetY is a downward displacement in pixels
	OffsetY float64
	// Rotate is in degrees
	Rotate float64
}

// Rest is the settled state every element ends its entrance in
var Rest = Visual{Opacity: 1, Scale: 1}

// Lerp interpolates between a and b. p may exceed [0, 1] for springs that
// overshoot.
func Lerp(a, b Visual, p float64) Visual {
	switch p {
	case 0:
		return a
	case 1:
		return b
	}
	return Visual{
		Opacity: clamp(a.Opacity+(b.Opacity-a.Opacity)*p, 0, 1),
		Scale:   math.Max(0, a.Scale+(b.Scale-a.Scale)*p),
		OffsetY: a.OffsetY + (b.OffsetY-a.OffsetY)*p,
		Rotate:  a.Rotate + (b.Rotate-a.Rotate)*p,
	}
}

// Compose applies a parent's visual to a child: opacity and scale multiply,
// offsets add.
func Compose(parent, child Visual) Visual {
	return Visual{
		Opacity: parent.Opacity * child.Opacity,
		Scale:   parent.Scale * child.Scale,
		OffsetY: parent.OffsetY + child.OffsetY,
		Rotate:  parent.Rotate + child.Rotate,
	}
}

// Hidden reports whether the element is invisible
func (v Visual) Hidden() bool {
	return v.Opacity <= 0.01 || v.Scale <= 0.01
}

// PixelsPerRow converts pixel offsets to terminal rows
const PixelsPerRow = 10

// Rows returns the vertical offset rounded to whole terminal rows, never
// negative
func (v Visual) Rows() int {
	if v.OffsetY <= 0 {
		return 0
	}
	return int(math.Round(v.OffsetY / PixelsPerRow))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
