// Package driver rotates a grid on a fixed cadence.
package driver

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/spiralmatrix/internal/grid"
)

// DefaultInterval is used when Start is given a non-positive interval.
const DefaultInterval = 500 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg asks the driver that scheduled it to rotate its grid.
type TickMsg struct {
	Time time.Time
	id   int
	seq  uint64
}

// Driver owns the single repeating rotation timer of a grid. Each rotation
// is animated over exactly one interval so motion is continuous.
//
// Bubble Tea hosts use Start and Update; frame-driven hosts call Poll once
// per frame instead.
type Driver struct {
	grid      *grid.Grid
	now       func() time.Time
	id        int
	seq       uint64
	running   bool
	interval  time.Duration
	next      time.Time
	rotations int
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock overrides the time source used by Poll.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// New creates a stopped driver for g.
func New(g *grid.Grid, opts ...Option) *Driver {
	d := &Driver{
		grid:     g,
		now:      time.Now,
		id:       nextID(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Running reports whether a timer is active.
func (d *Driver) Running() bool { return d.running }

// Interval returns the current rotation interval.
func (d *Driver) Interval() time.Duration { return d.interval }

// Rotations returns how many rotations the driver has performed.
func (d *Driver) Rotations() int { return d.rotations }

// Start stops any previous timer and begins rotating every interval. The
// returned command delivers the first tick.
func (d *Driver) Start(interval time.Duration) tea.Cmd {
	d.Stop()
	if interval <= 0 {
		interval = DefaultInterval
	}
	d.interval = interval
	d.running = true
	d.next = d.now().Add(interval)
	return d.tick()
}

// Stop cancels the timer. Ticks already in flight are ignored. Calling Stop
// on a stopped driver does nothing.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.seq++
}

// Update handles a TickMsg addressed to this driver. handled is false for
// any other message.
func (d *Driver) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != d.id {
		return nil, false
	}
	if !d.running || tick.seq != d.seq {
		return nil, true
	}
	d.rotate(d.now())
	return d.tick(), true
}

// Poll rotates the grid if the next deadline has passed. A host that fell
// more than one interval behind gets a single rotation and a fresh deadline.
func (d *Driver) Poll(now time.Time) bool {
	if !d.running || now.Before(d.next) {
		return false
	}
	d.grid.Rotate(d.interval)
	d.rotations++
	d.next = d.next.Add(d.interval)
	if !now.Before(d.next) {
		d.next = now.Add(d.interval)
	}
	return true
}

func (d *Driver) rotate(now time.Time) {
	d.grid.Rotate(d.interval)
	d.rotations++
	d.next = now.Add(d.interval)
}

func (d *Driver) tick() tea.Cmd {
	id, seq := d.id, d.seq
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, id: id, seq: seq}
	})
}
