package motion

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Curve maps time since a transition started to progress. Progress runs from
// 0 to 1 and may overshoot in between.
type Curve interface {
	Progress(elapsed time.Duration) float64
	// Duration is the time the curve needs to settle at 1
	Duration() time.Duration
}

const (
	springSampleFPS = 120
	springMaxTime   = 3 * time.Second
	springRest      = 0.001
)

// SpringCurve is a pre-sampled damped spring from 0 to 1
type SpringCurve struct {
	samples []float64
	step    time.Duration
}

type springKey struct{ stiffness, damping float64 }

var (
	springMu    sync.Mutex
	springCache = map[springKey]*SpringCurve{}
)

// Spring returns the curve of a unit-mass spring with the given stiffness and
// damping, released from rest at 0 toward 1. Curves are cached per parameter
// pair.
func Spring(stiffness, damping float64) *SpringCurve {
	key := springKey{stiffness, damping}

	springMu.Lock()
	defer springMu.Unlock()
	if c, ok := springCache[key]; ok {
		return c
	}

	angular := math.Sqrt(stiffness)
	ratio := damping / (2 * math.Sqrt(stiffness))
	s := harmonica.NewSpring(harmonica.FPS(springSampleFPS), angular, ratio)

	step := time.Second / springSampleFPS
	maxSamples := int(springMaxTime / step)
	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < maxSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(1-pos) < springRest && math.Abs(vel) < springRest {
			break
		}
	}
	samples[len(samples)-1] = 1

	c := &SpringCurve{samples: samples, step: step}
	springCache[key] = c
	return c
}

// Progress implements Curve
func (c *SpringCurve) Progress(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	pos := float64(elapsed) / float64(c.step)
	i := int(pos)
	if i >= len(c.samples)-1 {
		return 1
	}
	frac := pos - float64(i)
	return c.samples[i] + (c.samples[i+1]-c.samples[i])*frac
}

// Duration implements Curve
func (c *SpringCurve) Duration() time.Duration {
	return time.Duration(len(c.samples)-1) * c.step
}

// Peak returns the largest progress value the spring reaches
func (c *SpringCurve) Peak() float64 {
	peak := 0.0
	for _, v := range c.samples {
		peak = math.Max(peak, v)
	}
	return peak
}

// TweenCurve is a fixed-duration cubic ease-out
type TweenCurve struct {
	d time.Duration
}

// Tween returns an ease-out curve lasting d
func Tween(d time.Duration) TweenCurve {
	return TweenCurve{d: d}
}

// Progress implements Curve
func (c TweenCurve) Progress(elapsed time.Duration) float64 {
	if c.d <= 0 || elapsed >= c.d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(c.d)
	return 1 - math.Pow(1-t, 3)
}

// Duration implements Curve
func (c TweenCurve) Duration() time.Duration {
	return c.d
}

// LinearCurve moves at constant speed; keyframe paths use it so each stop is
// reached at an even share of the duration
type LinearCurve struct {
	d time.Duration
}

// Linear returns a constant-speed curve lasting d
func Linear(d time.Duration) LinearCurve {
	return LinearCurve{d: d}
}

// Progress implements Curve
func (c LinearCurve) Progress(elapsed time.Duration) float64 {
	if c.d <= 0 || elapsed >= c.d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(c.d)
}

// Duration implements Curve
func (c LinearCurve) Duration() time.Duration {
	return c.d
}
