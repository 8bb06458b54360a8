package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpring_SettlesAtOne(t *testing.T) {
	c := Spring(ShellStiffness, ShellDamping)

	assert.Equal(t, 0.0, c.Progress(0))
	assert.Equal(t, 0.0, c.Progress(-time.Second))
	assert.Equal(t, 1.0, c.Progress(c.Duration()))
	assert.Equal(t, 1.0, c.Progress(10*time.Second))
	assert.Greater(t, c.Duration(), time.Duration(0))
	assert.Less(t, c.Duration(), springMaxTime)
}

func TestSpring_IsMonotonicEarly(t *testing.T) {
	c := Spring(ShellStiffness, ShellDamping)

	prev := 0.0
	for d := time.Duration(0); d <= 50*time.Millisecond; d += 5 * time.Millisecond {
		p := c.Progress(d)
		assert.GreaterOrEqual(t, p, prev, "progress should rise at %v", d)
		prev = p
	}
}

func TestSpring_IconOvershoots(t *testing.T) {
	// The icon spring is less damped than the shell and may overshoot
	icon := Spring(IconStiffness, IconDamping)
	shell := Spring(ShellStiffness, ShellDamping)

	assert.Greater(t, icon.Peak(), 1.0)
	assert.Greater(t, icon.Peak(), shell.Peak())
	assert.Less(t, icon.Peak(), 1.3, "overshoot should stay slight")
}

func TestSpring_Cached(t *testing.T) {
	assert.Same(t, Spring(120, 14), Spring(120, 14))
}

func TestTween(t *testing.T) {
	c := Tween(300 * time.Millisecond)

	assert.Equal(t, 0.0, c.Progress(0))
	assert.Equal(t, 1.0, c.Progress(300*time.Millisecond))
	assert.Equal(t, 1.0, c.Progress(time.Second))

	// Ease-out runs ahead of linear progress
	assert.Greater(t, c.Progress(150*time.Millisecond), 0.5)
}

func TestTween_ZeroDuration(t *testing.T) {
	assert.Equal(t, 1.0, Tween(0).Progress(0))
}

func TestLinear(t *testing.T) {
	c := Linear(time.Second)

	assert.Equal(t, 0.0, c.Progress(0))
	assert.InDelta(t, 0.25, c.Progress(250*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, c.Progress(2*time.Second))
	assert.Equal(t, time.Second, c.Duration())
}
