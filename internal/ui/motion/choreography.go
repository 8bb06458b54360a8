package motion

import "time"

// Spring parameters for the card shell and the icon badge
const (
	ShellStiffness = 300
	ShellDamping   = 30
	IconStiffness  = 300
	IconDamping    = 20
)

// Entrance delays
const (
	IconDelay           = 200 * time.Millisecond
	BodyDelay           = 300 * time.Millisecond
	DetailDelay         = 400 * time.Millisecond
	SparkleDelay        = 400 * time.Millisecond
	FailureActionsDelay = 400 * time.Millisecond
	SuccessActionsDelay = 500 * time.Millisecond
)

// Durations of the eased (non-spring) transitions
const (
	BackdropFade    = 200 * time.Millisecond
	BlockFade       = 300 * time.Millisecond
	SparkleDuration = 800 * time.Millisecond
)

// Offsets, in pixels, that blocks slide up from
const (
	ShellOffset  = 20.0
	BlockOffset  = 20.0
	DetailOffset = 10.0
	ShellScale   = 0.9
)

// EntranceOptions selects the optional parts of the entrance
type EntranceOptions struct {
	// Sparkle adds the rotating flourish on the icon badge
	Sparkle bool
	// Detail animates the detail panel
	Detail bool
	// ActionsDelay defaults to FailureActionsDelay
	ActionsDelay time.Duration
}

var (
	transparent = Visual{Opacity: 0, Scale: 1}
	shellHidden = Visual{Opacity: 0, Scale: ShellScale, OffsetY: ShellOffset}
)

// Entrance returns the staggered entrance choreography
func Entrance(opts EntranceOptions) Timeline {
	actionsDelay := opts.ActionsDelay
	if actionsDelay == 0 {
		actionsDelay = FailureActionsDelay
	}

	ts := []Transition{
		{
			Element: Backdrop,
			From:    transparent,
			To:      Rest,
			Curve:   Tween(BackdropFade),
		},
		{
			Element: Container,
			From:    shellHidden,
			To:      Rest,
			Curve:   Spring(ShellStiffness, ShellDamping),
		},
		{
			Element: Icon,
			From:    Visual{Opacity: 1, Scale: 0},
			To:      Rest,
			Delay:   IconDelay,
			Curve:   Spring(IconStiffness, IconDamping),
		},
		{
			Element: Body,
			From:    Visual{Opacity: 0, Scale: 1, OffsetY: BlockOffset},
			To:      Rest,
			Delay:   BodyDelay,
			Curve:   Tween(BlockFade),
		},
	}

	if opts.Sparkle {
		ts = append(ts, Transition{
			Element: Sparkle,
			Stops: []Visual{
				{Opacity: 1, Scale: 0, Rotate: 0},
				{Opacity: 1, Scale: 1.2, Rotate: 180},
				{Opacity: 1, Scale: 1, Rotate: 360},
			},
			Delay: SparkleDelay,
			Curve: Linear(SparkleDuration),
		})
	}

	if opts.Detail {
		ts = append(ts, Transition{
			Element: Detail,
			From:    Visual{Opacity: 0, Scale: 1, OffsetY: DetailOffset},
			To:      Rest,
			Delay:   DetailDelay,
			Curve:   Tween(BlockFade),
		})
	}

	ts = append(ts, Transition{
		Element: Actions,
		From:    Visual{Opacity: 0, Scale: 1, OffsetY: BlockOffset},
		To:      Rest,
		Delay:   actionsDelay,
		Curve:   Tween(BlockFade),
	})

	return NewTimeline(ts...)
}

// Exit returns the exit choreography starting from the frame that was on
// screen. The backdrop and shell wind down together with no stagger; inner
// elements keep their current state and fade with the shell.
func Exit(from Frame) Timeline {
	return NewTimeline(
		Transition{
			Element: Backdrop,
			From:    from.Get(Backdrop),
			To:      transparent,
			Curve:   Tween(BackdropFade),
		},
		Transition{
			Element: Container,
			From:    from.Get(Container),
			To:      shellHidden,
			Curve:   Spring(ShellStiffness, ShellDamping),
		},
	)
}
