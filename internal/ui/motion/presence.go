package motion

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Phase is the visual lifecycle of a presence
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseEntering
	PhaseShown
	PhaseExiting
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseEntering:
		return "entering"
	case PhaseShown:
		return "shown"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// FrameMsg advances the presence whose instance matches. Frames from earlier
// instances are ignored.
type FrameMsg struct {
	Instance uuid.UUID
	At       time.Time
}

// Options configures a presence
type Options struct {
	// FPS is the frame rate of the tick loop. Zero means 60.
	FPS int
	// Speed scales animation time. Zero means 1.
	Speed float64
	// ReducedMotion skips every transition
	ReducedMotion bool
}

// Presence keeps a snapshot of T on screen while it animates in and out.
//
// The caller decides whether the content is present; Presence only retains
// the last present snapshot long enough to play the exit. Reopening while an
// exit is in flight discards the exit and restarts a clean entrance.
type Presence[T any] struct {
	phase    Phase
	snapshot T
	instance uuid.UUID
	origin   time.Time
	elapsed  time.Duration
	timeline Timeline
	frame    Frame

	entrance func(T) Timeline
	opts     Options
}

// NewPresence creates a hidden presence. entrance builds the entrance
// choreography for a snapshot.
func NewPresence[T any](entrance func(T) Timeline, opts Options) *Presence[T] {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	return &Presence[T]{
		entrance: entrance,
		opts:     opts,
	}
}

// Present reconciles the presence with the caller's state. It returns the
// command that drives the next frame, if any.
func (p *Presence[T]) Present(open bool, snapshot T) tea.Cmd {
	if open {
		p.snapshot = snapshot
		switch p.phase {
		case PhaseHidden, PhaseExiting:
			return p.start(p.entrance(snapshot), PhaseEntering)
		}
		return nil
	}

	switch p.phase {
	case PhaseEntering, PhaseShown:
		return p.start(Exit(p.frame), PhaseExiting)
	}
	return nil
}

func (p *Presence[T]) start(tl Timeline, phase Phase) tea.Cmd {
	p.instance = uuid.New()
	p.origin = time.Time{}
	p.elapsed = 0
	p.timeline = tl
	p.phase = phase

	if p.opts.ReducedMotion {
		p.settle()
		return nil
	}
	p.frame = p.frameAt(0)
	return p.tick()
}

// Update advances the animation on a matching FrameMsg
func (p *Presence[T]) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.Instance != p.instance {
		return nil
	}
	if p.phase != PhaseEntering && p.phase != PhaseExiting {
		return nil
	}

	if p.origin.IsZero() {
		p.origin = frame.At
	}
	p.elapsed = time.Duration(float64(frame.At.Sub(p.origin)) * p.opts.Speed)

	if p.timeline.Done(p.elapsed) {
		p.settle()
		return nil
	}

	p.frame = p.frameAt(p.elapsed)
	return p.tick()
}

func (p *Presence[T]) frameAt(elapsed time.Duration) Frame {
	sample := p.timeline.Sample(elapsed)
	if p.phase == PhaseExiting {
		return p.frame.With(sample)
	}
	return sample
}

func (p *Presence[T]) settle() {
	switch p.phase {
	case PhaseEntering:
		p.phase = PhaseShown
		p.frame = p.timeline.Final()
	case PhaseExiting:
		var zero T
		p.phase = PhaseHidden
		p.snapshot = zero
		p.frame = nil
	}
}

func (p *Presence[T]) tick() tea.Cmd {
	id := p.instance
	return tea.Tick(time.Second/time.Duration(p.opts.FPS), func(t time.Time) tea.Msg {
		return FrameMsg{Instance: id, At: t}
	})
}

// Visible reports whether anything should be drawn
func (p *Presence[T]) Visible() bool {
	return p.phase != PhaseHidden
}

// Phase returns the current phase
func (p *Presence[T]) Phase() Phase {
	return p.phase
}

// Snapshot returns the content to draw. During an exit this is the last
// snapshot that was present.
func (p *Presence[T]) Snapshot() T {
	return p.snapshot
}

// Frame returns the current visual states
func (p *Presence[T]) Frame() Frame {
	return p.frame
}

// Instance identifies the current animation run
func (p *Presence[T]) Instance() uuid.UUID {
	return p.instance
}

// Elapsed returns animation time since the current run started
func (p *Presence[T]) Elapsed() time.Duration {
	return p.elapsed
}
