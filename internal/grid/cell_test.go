package grid

import (
	"math"
	"testing"
	"time"
)

func TestAnimateToPreemptsInFlightTween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCell(0, 0, "")

	c.AnimateTo(10, 0, time.Second, start)
	second := start.Add(100 * time.Millisecond)
	tw := c.AnimateTo(0, 10, time.Second, second)

	if c.X != 0 || c.Y != 10 {
		t.Fatalf("expected logical (0, 10), got (%d, %d)", c.X, c.Y)
	}
	if tw.ToX != 0 || tw.ToY != 10 {
		t.Fatalf("expected target (0, 10), got (%v, %v)", tw.ToX, tw.ToY)
	}
	if math.Abs(tw.FromX-1) > 1e-9 || tw.FromY != 0 {
		t.Fatalf("expected tween to start from sampled (1, 0), got (%v, %v)", tw.FromX, tw.FromY)
	}

	x, y := c.Smooth(second.Add(2 * time.Second))
	if x != 0 || y != 10 {
		t.Fatalf("expected to settle on second target, got (%v, %v)", x, y)
	}
}

func TestTweenZeroDurationSnaps(t *testing.T) {
	now := time.Now()
	tw := Tween{FromX: 1, FromY: 1, ToX: 4, ToY: 5, Start: now}
	x, y := tw.Sample(now)
	if x != 4 || y != 5 {
		t.Fatalf("expected snap to (4, 5), got (%v, %v)", x, y)
	}
	if !tw.Done(now) {
		t.Fatal("expected zero-duration tween to be done")
	}
}

func TestTweenBeforeStartHoldsOrigin(t *testing.T) {
	now := time.Now()
	tw := Tween{FromX: 1, FromY: 2, ToX: 3, ToY: 4, Start: now, Duration: time.Second}
	x, y := tw.Sample(now.Add(-time.Second))
	if x != 1 || y != 2 {
		t.Fatalf("expected origin (1, 2), got (%v, %v)", x, y)
	}
}

func TestEasingCurves(t *testing.T) {
	if got := Linear.Apply(0.25); got != 0.25 {
		t.Fatalf("expected linear 0.25, got %v", got)
	}
	if got := Swing.Apply(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected swing midpoint 0.5, got %v", got)
	}
	if got := Swing.Apply(0.25); got >= 0.25 {
		t.Fatalf("expected swing to start slower than linear, got %v", got)
	}
	if Linear.Next() != Swing || Swing.Next() != Linear {
		t.Fatal("expected easing to cycle")
	}
	if ParseEasing("ease") != Swing || ParseEasing("bogus") != Linear {
		t.Fatal("unexpected ParseEasing result")
	}
}
