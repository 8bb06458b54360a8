package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	a := Visual{Opacity: 0, Scale: 0.9, OffsetY: 20}
	b := Rest

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))

	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 0.5, mid.Opacity, 1e-9)
	assert.InDelta(t, 0.95, mid.Scale, 1e-9)
	assert.InDelta(t, 10, mid.OffsetY, 1e-9)

	// Overshoot never pushes opacity past 1
	assert.Equal(t, 1.0, Lerp(a, b, 1.2).Opacity)
}

func TestVisual_Rows(t *testing.T) {
	assert.Equal(t, 0, Visual{OffsetY: -3}.Rows())
	assert.Equal(t, 0, Visual{OffsetY: 4}.Rows())
	assert.Equal(t, 1, Visual{OffsetY: 10}.Rows())
	assert.Equal(t, 2, Visual{OffsetY: 20}.Rows())
}

func TestFrame_GetDefaultsToRest(t *testing.T) {
	var f Frame
	assert.Equal(t, Rest, f.Get(Body))
}

func TestFrame_Effective(t *testing.T) {
	f := Frame{
		Container: {Opacity: 0.5, Scale: 0.9, OffsetY: 4},
		Body:      {Opacity: 0.5, Scale: 1, OffsetY: 2},
		Icon:      {Opacity: 1, Scale: 0.5},
		Sparkle:   {Opacity: 1, Scale: 1, Rotate: 90},
	}

	body := f.Effective(Body)
	assert.InDelta(t, 0.25, body.Opacity, 1e-9)
	assert.InDelta(t, 6, body.OffsetY, 1e-9)

	sparkle := f.Effective(Sparkle)
	assert.InDelta(t, 0.45, sparkle.Scale, 1e-9)
	assert.InDelta(t, 90, sparkle.Rotate, 1e-9)

	assert.Equal(t, f[Container], f.Effective(Container))
}

func TestTransition_Keyframes(t *testing.T) {
	tr := Transition{
		Element: Sparkle,
		Stops: []Visual{
			{Opacity: 1, Scale: 0, Rotate: 0},
			{Opacity: 1, Scale: 1.2, Rotate: 180},
			{Opacity: 1, Scale: 1, Rotate: 360},
		},
		Delay: 400 * time.Millisecond,
		Curve: Linear(800 * time.Millisecond),
	}

	assert.Equal(t, 0.0, tr.At(0).Scale, "hidden before delay")
	assert.InDelta(t, 1.2, tr.At(800*time.Millisecond).Scale, 1e-9)
	assert.InDelta(t, 180, tr.At(800*time.Millisecond).Rotate, 1e-9)
	assert.Equal(t, tr.Stops[2], tr.At(2*time.Second))
	assert.Equal(t, 1200*time.Millisecond, tr.End())
	assert.Equal(t, tr.Stops[2], tr.Final())
}

func TestEntrance_Stagger(t *testing.T) {
	tl := Entrance(EntranceOptions{})

	delays := map[Element]time.Duration{}
	for _, tr := range tl.Transitions() {
		delays[tr.Element] = tr.Delay
	}

	assert.Equal(t, time.Duration(0), delays[Backdrop])
	assert.Equal(t, time.Duration(0), delays[Container])
	assert.Equal(t, IconDelay, delays[Icon])
	assert.Equal(t, BodyDelay, delays[Body])
	assert.Equal(t, FailureActionsDelay, delays[Actions])

	_, hasSparkle := tl.Lookup(Sparkle)
	_, hasDetail := tl.Lookup(Detail)
	assert.False(t, hasSparkle)
	assert.False(t, hasDetail)
}

func TestEntrance_SuccessOptions(t *testing.T) {
	tl := Entrance(EntranceOptions{Sparkle: true, Detail: true, ActionsDelay: SuccessActionsDelay})

	sparkle, ok := tl.Lookup(Sparkle)
	require.True(t, ok)
	assert.Equal(t, SparkleDelay, sparkle.Delay)

	detail, ok := tl.Lookup(Detail)
	require.True(t, ok)
	assert.Equal(t, DetailDelay, detail.Delay)
	assert.Equal(t, DetailOffset, detail.From.OffsetY)

	actions, ok := tl.Lookup(Actions)
	require.True(t, ok)
	assert.Equal(t, SuccessActionsDelay, actions.Delay)
}

func TestEntrance_StartsHiddenEndsAtRest(t *testing.T) {
	tl := Entrance(EntranceOptions{Sparkle: true, Detail: true, ActionsDelay: SuccessActionsDelay})

	start := tl.Sample(0)
	assert.Equal(t, 0.0, start.Get(Backdrop).Opacity)
	assert.Equal(t, 0.0, start.Get(Container).Opacity)
	assert.Equal(t, ShellScale, start.Get(Container).Scale)
	assert.Equal(t, ShellOffset, start.Get(Container).OffsetY)
	assert.Equal(t, 0.0, start.Get(Icon).Scale)
	assert.Equal(t, 0.0, start.Get(Body).Opacity)
	assert.Equal(t, 0.0, start.Get(Actions).Opacity)

	end := tl.Sample(tl.Duration())
	for _, e := range []Element{Backdrop, Container, Icon, Body, Detail, Actions} {
		assert.Equal(t, Rest, end.Get(e), e.String())
	}
	assert.Equal(t, 1.0, end.Get(Sparkle).Scale)
	assert.True(t, tl.Done(tl.Duration()))
	assert.False(t, tl.Done(tl.Duration()-time.Millisecond))
}

func TestEntrance_BodyWaitsForDelay(t *testing.T) {
	tl := Entrance(EntranceOptions{})

	assert.Equal(t, 0.0, tl.Sample(BodyDelay-time.Millisecond).Get(Body).Opacity)
	assert.Greater(t, tl.Sample(BodyDelay+100*time.Millisecond).Get(Body).Opacity, 0.0)
}

func TestExit_MirrorsShell(t *testing.T) {
	tl := Exit(Frame{})

	assert.Len(t, tl.Transitions(), 2, "exit is not staggered")
	for _, tr := range tl.Transitions() {
		assert.Equal(t, time.Duration(0), tr.Delay)
	}

	end := tl.Final()
	assert.Equal(t, 0.0, end.Get(Backdrop).Opacity)
	assert.Equal(t, Visual{Opacity: 0, Scale: ShellScale, OffsetY: ShellOffset}, end.Get(Container))

	start := tl.Sample(0)
	assert.Equal(t, Rest, start.Get(Container))
}

func TestExit_StartsFromCurrentFrame(t *testing.T) {
	mid := Frame{Container: {Opacity: 0.4, Scale: 0.95, OffsetY: 8}}
	tl := Exit(mid)

	assert.Equal(t, mid[Container], tl.Sample(0).Get(Container))
}
