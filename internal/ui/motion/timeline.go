package motion

import "time"

// Element identifies an animated part of the overlay
type Element int

const (
	Backdrop Element = iota
	Container
	Icon
	Sparkle
	Body
	Detail
	Actions
)

// String returns the string representation of the element
func (e Element) String() string {
	switch e {
	case Backdrop:
		return "backdrop"
	case Container:
		return "container"
	case Icon:
		return "icon"
	case Sparkle:
		return "sparkle"
	case Body:
		return "body"
	case Detail:
		return "detail"
	case Actions:
		return "actions"
	default:
		return "unknown"
	}
}

// Transition moves one element from one visual state to another.
//
// When Stops holds two or more states the element follows them in order
// (keyframes) and From/To are ignored.
type Transition struct {
	Element Element
	From    Visual
	To      Visual
	Stops   []Visual
	Delay   time.Duration
	Curve   Curve
}

// At returns the element's visual state elapsed after the timeline started
func (t Transition) At(elapsed time.Duration) Visual {
	p := t.Curve.Progress(elapsed - t.Delay)
	if len(t.Stops) < 2 {
		return Lerp(t.From, t.To, p)
	}
	segments := len(t.Stops) - 1
	if p >= 1 {
		return t.Stops[segments]
	}
	if p <= 0 {
		return t.Stops[0]
	}
	pos := p * float64(segments)
	i := int(pos)
	return Lerp(t.Stops[i], t.Stops[i+1], pos-float64(i))
}

// End returns when the transition settles
func (t Transition) End() time.Duration {
	return t.Delay + t.Curve.Duration()
}

// Final returns the settled state
func (t Transition) Final() Visual {
	if len(t.Stops) >= 2 {
		return t.Stops[len(t.Stops)-1]
	}
	return t.To
}

// Frame is a sampled set of element states. Elements without an entry are at
// Rest.
type Frame map[Element]Visual

// Get returns the state of e
func (f Frame) Get(e Element) Visual {
	if v, ok := f[e]; ok {
		return v
	}
	return Rest
}

// Effective returns the state of e composed with its container. The backdrop
// and container are returned as-is.
func (f Frame) Effective(e Element) Visual {
	switch e {
	case Backdrop, Container:
		return f.Get(e)
	case Sparkle:
		return Compose(f.Effective(Icon), f.Get(Sparkle))
	default:
		return Compose(f.Get(Container), f.Get(e))
	}
}

// With returns a copy of f with other's entries layered on top
func (f Frame) With(other Frame) Frame {
	out := make(Frame, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Timeline is an ordered set of transitions sampled together
type Timeline struct {
	transitions []Transition
	duration    time.Duration
}

// NewTimeline builds a timeline from transitions
func NewTimeline(transitions ...Transition) Timeline {
	tl := Timeline{transitions: transitions}
	for _, t := range transitions {
		if end := t.End(); end > tl.duration {
			tl.duration = end
		}
	}
	return tl
}

// Sample returns every element's state at elapsed
func (tl Timeline) Sample(elapsed time.Duration) Frame {
	f := make(Frame, len(tl.transitions))
	for _, t := range tl.transitions {
		f[t.Element] = t.At(elapsed)
	}
	return f
}

// Final returns every element's settled state
func (tl Timeline) Final() Frame {
	f := make(Frame, len(tl.transitions))
	for _, t := range tl.transitions {
		f[t.Element] = t.Final()
	}
	return f
}

// Duration returns when the last transition settles
func (tl Timeline) Duration() time.Duration {
	return tl.duration
}

// Done reports whether every transition has settled at elapsed
func (tl Timeline) Done(elapsed time.Duration) bool {
	return elapsed >= tl.duration
}

// Transitions returns the timeline's transitions in order
func (tl Timeline) Transitions() []Transition {
	return tl.transitions
}

// Lookup returns the transition driving e
func (tl Timeline) Lookup(e Element) (Transition, bool) {
	for _, t := range tl.transitions {
		if t.Element == e {
			return t, true
		}
	}
	return Transition{}, false
}
