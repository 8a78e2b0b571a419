package grid

import "time"

// Cell is one renderable slot of the grid: a logical position that jumps on
// every rotation and a display position that follows it smoothly.
type Cell struct {
	X, Y  int
	Image string // image ref; empty means nothing to draw

	tween Tween
}

// NewCell creates a cell resting at (x, y).
func NewCell(x, y int, image string) *Cell {
	fx, fy := float64(x), float64(y)
	return &Cell{
		X:     x,
		Y:     y,
		Image: image,
		tween: Tween{FromX: fx, FromY: fy, ToX: fx, ToY: fy},
	}
}

// HasImage reports whether the cell carries an image ref.
func (c *Cell) HasImage() bool {
	return c.Image != ""
}

// AnimateTo moves the logical position to (x, y) immediately and starts a
// tween from the current display position toward it. Any tween still in
// flight is replaced; the returned value describes the new one.
func (c *Cell) AnimateTo(x, y int, d time.Duration, now time.Time) Tween {
	return c.animateTo(x, y, d, now, c.tween.Ease)
}

func (c *Cell) animateTo(x, y int, d time.Duration, now time.Time, ease Easing) Tween {
	sx, sy := c.tween.Sample(now)
	c.X, c.Y = x, y
	c.tween = Tween{
		FromX:    sx,
		FromY:    sy,
		ToX:      float64(x),
		ToY:      float64(y),
		Start:    now,
		Duration: d,
		Ease:     ease,
	}
	return c.tween
}

// Smooth returns the display position at now.
func (c *Cell) Smooth(now time.Time) (float64, float64) {
	return c.tween.Sample(now)
}

// Tween returns the cell's current interpolation state.
func (c *Cell) Tween() Tween {
	return c.tween
}
