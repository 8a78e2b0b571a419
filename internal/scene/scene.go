// Package scene bundles the state shared by every host: the grid, its
// rotation driver, the image gallery and the frame loop.
package scene

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/spiralmatrix/internal/config"
	"github.com/olivier-w/spiralmatrix/internal/driver"
	"github.com/olivier-w/spiralmatrix/internal/gallery"
	"github.com/olivier-w/spiralmatrix/internal/grid"
	"github.com/olivier-w/spiralmatrix/internal/loop"
)

// MaxSize bounds SetSize; beyond this cells are sub-pixel on any realistic
// surface.
const MaxSize = 99

// Scene owns one grid and everything that animates it. Hosts create it with
// New, call Start once and Dispose on exit. It is not safe for concurrent
// use; hosts drive it from their update loop.
type Scene struct {
	Grid    *grid.Grid
	Driver  *driver.Driver
	Gallery *gallery.Gallery
	Loop    *loop.Loop

	refs     []string
	interval time.Duration
	paused   bool
}

// New creates a stopped scene for cfg with images cycled from refs.
func New(cfg config.Config, refs []string) *Scene {
	g := grid.New(cfg.Size, grid.WithEasing(cfg.EasingMode()))
	g.Populate(gallery.Cycle(refs))

	l := loop.New(cfg.FPS)
	l.OnSlow = func(d time.Duration) {
		log.Printf("loop: running slow, frame took %v", d)
	}

	return &Scene{
		Grid:     g,
		Driver:   driver.New(g),
		Gallery:  gallery.New(),
		Loop:     l,
		refs:     refs,
		interval: config.ClampInterval(cfg.Interval),
	}
}

// Start begins rotating. Bubble Tea hosts must run the returned command;
// frame-driven hosts poll the driver instead and may drop it.
func (s *Scene) Start() tea.Cmd {
	s.paused = false
	return s.Driver.Start(s.interval)
}

// Dispose stops the rotation timer. Tweens in flight are left where they
// are.
func (s *Scene) Dispose() {
	s.Driver.Stop()
}

// Paused reports whether rotation is paused.
func (s *Scene) Paused() bool { return s.paused }

// Interval returns the rotation interval.
func (s *Scene) Interval() time.Duration { return s.interval }

// TogglePause stops or restarts the driver.
func (s *Scene) TogglePause() tea.Cmd {
	if s.paused {
		return s.Start()
	}
	s.paused = true
	s.Driver.Stop()
	return nil
}

// SetInterval changes the rotation cadence. A running driver is restarted
// so the next tween spans the new interval.
func (s *Scene) SetInterval(d time.Duration) tea.Cmd {
	d = config.ClampInterval(d)
	if d == s.interval {
		return nil
	}
	s.interval = d
	log.Printf("scene: interval %v", d)
	if s.paused {
		return nil
	}
	return s.Driver.Start(d)
}

// Faster halves the interval.
func (s *Scene) Faster() tea.Cmd { return s.SetInterval(s.interval / 2) }

// Slower doubles the interval.
func (s *Scene) Slower() tea.Cmd { return s.SetInterval(s.interval * 2) }

// SetSize rebuilds the grid at size (clamped to [1, MaxSize], rounded up to
// odd) and reassigns images. It reports whether the size changed.
func (s *Scene) SetSize(size int) bool {
	size = grid.NormalizeSize(min(max(size, 1), MaxSize))
	if size == s.Grid.Size() {
		return false
	}
	s.Grid.Resize(size)
	s.Grid.Populate(gallery.Cycle(s.refs))
	log.Printf("scene: size %d", size)
	return true
}

// Grow enlarges the grid by one ring.
func (s *Scene) Grow() bool { return s.SetSize(s.Grid.Size() + 2) }

// Shrink removes the outer ring.
func (s *Scene) Shrink() bool { return s.SetSize(s.Grid.Size() - 2) }

// ToggleEasing switches the easing used by later rotations.
func (s *Scene) ToggleEasing() {
	s.Grid.SetEasing(s.Grid.Easing().Next())
}

// ImageRefs returns the refs of every cell that carries one, in storage
// order. Refs repeat when the grid is larger than the gallery.
func (s *Scene) ImageRefs() []string {
	cells := s.Grid.WithImage()
	refs := make([]string, 0, len(cells))
	for _, c := range cells {
		refs = append(refs, c.Image)
	}
	return refs
}

// LoadAsync starts background loads for refs the gallery has not seen.
func (s *Scene) LoadAsync() tea.Cmd {
	return s.Gallery.LoadAll(s.ImageRefs())
}

// LoadSync decodes every missing ref before returning. Failures are logged
// by the gallery and skipped.
func (s *Scene) LoadSync() {
	for _, ref := range s.ImageRefs() {
		if s.Gallery.Image(ref) != nil {
			continue
		}
		_ = s.Gallery.Load(ref)
	}
}
