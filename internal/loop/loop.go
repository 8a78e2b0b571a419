// Package loop keeps frame timing for a render loop.
package loop

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// SlowFrame is the frame time above which a frame counts as running slow.
const SlowFrame = 250 * time.Millisecond

// Frame describes one step of the loop.
type Frame struct {
	Delta time.Duration // time since the previous step
	Total time.Duration // accumulated render time
	Count uint64
	Slow  bool
}

// Loop measures frame times, accumulates total render time and keeps a
// spring-smoothed FPS estimate for display.
type Loop struct {
	// OnSlow is called with the frame time of every slow frame.
	OnSlow func(time.Duration)

	last   time.Time
	total  time.Duration
	frames uint64

	spring harmonica.Spring
	fps    float64
	fpsVel float64
}

// New creates a loop expecting to be stepped roughly fps times a second.
func New(fps int) *Loop {
	if fps <= 0 {
		fps = 30
	}
	return &Loop{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Step records a frame at now.
func (l *Loop) Step(now time.Time) Frame {
	var delta time.Duration
	if !l.last.IsZero() {
		delta = now.Sub(l.last)
		if delta < 0 {
			delta = 0
		}
	}
	l.last = now
	l.total += delta
	l.frames++

	f := Frame{Delta: delta, Total: l.total, Count: l.frames}
	if delta > SlowFrame {
		f.Slow = true
		if l.OnSlow != nil {
			l.OnSlow(delta)
		}
	}
	if delta > 0 {
		inst := float64(time.Second) / float64(delta)
		if l.fps == 0 {
			l.fps = inst
		} else {
			l.fps, l.fpsVel = l.spring.Update(l.fps, l.fpsVel, inst)
		}
	}
	return f
}

// FPS returns the smoothed frames-per-second estimate.
func (l *Loop) FPS() float64 {
	if l.fps < 0 {
		return 0
	}
	return l.fps
}

// Total returns the accumulated render time.
func (l *Loop) Total() time.Duration { return l.total }

// Frames returns the number of steps taken.
func (l *Loop) Frames() uint64 { return l.frames }
