package grid

import (
	"math"
	"time"
)

// Easing shapes the progress curve of a Tween.
type Easing uint8

const (
	Linear Easing = iota
	Swing         // cosine ease-in-out
)

// Apply maps linear progress t in [0, 1] onto the easing curve.
func (e Easing) Apply(t float64) float64 {
	switch e {
	case Swing:
		return 0.5 - math.Cos(t*math.Pi)/2
	default:
		return t
	}
}

// Next cycles to the next easing.
func (e Easing) Next() Easing {
	switch e {
	case Linear:
		return Swing
	default:
		return Linear
	}
}

// String returns the name of the easing.
func (e Easing) String() string {
	switch e {
	case Swing:
		return "swing"
	default:
		return "linear"
	}
}

// ParseEasing accepts the names produced by String. Unknown names are linear.
func ParseEasing(s string) Easing {
	switch s {
	case "swing", "ease":
		return Swing
	default:
		return Linear
	}
}

// Tween interpolates a display position from (FromX, FromY) to (ToX, ToY)
// between Start and Start+Duration.
type Tween struct {
	FromX, FromY float64
	ToX, ToY     float64
	Start        time.Time
	Duration     time.Duration
	Ease         Easing
}

// Progress returns how far along the tween is at now, in [0, 1].
func (t Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= t.Duration {
		return 1
	}
	return float64(elapsed) / float64(t.Duration)
}

// Done reports whether the tween has reached its target at now.
func (t Tween) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Sample returns the interpolated position at now.
func (t Tween) Sample(now time.Time) (float64, float64) {
	p := t.Progress(now)
	if p >= 1 {
		return t.ToX, t.ToY
	}
	e := t.Ease.Apply(p)
	return t.FromX + (t.ToX-t.FromX)*e, t.FromY + (t.ToY-t.FromY)*e
}
