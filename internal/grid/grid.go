// Package grid stores a square grid of cells in spiral order and rotates
// them one spiral step at a time.
package grid

import (
	"fmt"
	"time"

	"github.com/olivier-w/spiralmatrix/internal/spiral"
)

// Option configures a Grid.
type Option func(*Grid)

// WithClock overrides the time source used to start tweens.
func WithClock(now func() time.Time) Option {
	return func(g *Grid) {
		g.now = now
	}
}

// WithEasing sets the easing applied to rotation tweens.
func WithEasing(e Easing) Option {
	return func(g *Grid) {
		g.ease = e
	}
}

// Grid owns size² cells addressed through spiral.Index on centered
// coordinates. It is only mutated from the host's update loop.
type Grid struct {
	size  int
	cells []*Cell
	now   func() time.Time
	ease  Easing
}

// New creates a grid of the given side length with every cell resting on
// its own position and no images.
func New(size int, opts ...Option) *Grid {
	g := &Grid{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	g.Resize(size)
	return g
}

// NormalizeSize rounds size up to the nearest odd value >= 1 so that the
// grid always has a center cell.
func NormalizeSize(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		return size + 1
	}
	return size
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Easing returns the easing used by Rotate.
func (g *Grid) Easing() Easing { return g.ease }

// SetEasing changes the easing for subsequent rotations.
func (g *Grid) SetEasing(e Easing) { g.ease = e }

// Resize discards every cell and reallocates size² fresh ones.
func (g *Grid) Resize(size int) {
	size = NormalizeSize(size)
	g.size = size
	g.cells = make([]*Cell, spiral.Len(size))
	for i := range g.cells {
		x, y := g.Slot(i)
		g.cells[i] = NewCell(x, y, "")
	}
}

// Populate replaces every cell with one carrying the image ref returned by
// ref. Ids are 1-based in row-major order over (x, y). A nil ref leaves the
// cells without images.
func (g *Grid) Populate(ref func(id int) string) {
	for i := range g.cells {
		x, y := g.Slot(i)
		var image string
		if ref != nil {
			image = ref(x*g.size + y + 1)
		}
		g.cells[i] = NewCell(x, y, image)
	}
}

// Slot returns the grid coordinate whose cell is stored at index i.
func (g *Grid) Slot(i int) (x, y int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("grid: slot %d outside %d cells", i, len(g.cells)))
	}
	cx, cy := spiral.Coord(i)
	return spiral.Uncenter(cx, g.size), spiral.Uncenter(cy, g.size)
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		panic(fmt.Sprintf("grid: (%d, %d) outside %dx%d", x, y, g.size, g.size))
	}
	return spiral.Index(spiral.Center(x, g.size), spiral.Center(y, g.size))
}

// At returns the cell stored in the slot for grid coordinate (x, y).
// Slots are fixed; after rotations the cell in a slot is no longer the one
// whose logical position is (x, y).
func (g *Grid) At(x, y int) *Cell {
	return g.cells[g.index(x, y)]
}

// Set stores c in the slot for grid coordinate (x, y).
func (g *Grid) Set(x, y int, c *Cell) {
	g.cells[g.index(x, y)] = c
}

// Cells returns every cell in storage (spiral) order. The slice is owned by
// the grid and must not be modified.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// WithImage returns the cells that carry an image ref, in storage order.
func (g *Grid) WithImage() []*Cell {
	out := make([]*Cell, 0, len(g.cells))
	for _, c := range g.cells {
		if c.HasImage() {
			out = append(out, c)
		}
	}
	return out
}

// Rotate advances every cell one step along the spiral. The cell in slot i
// heads for the logical position held by slot i+1 and the last one wraps to
// the position slot 0 had before the call. The tweens last d, then the
// slots shift left by one with the old first cell moving to the end.
func (g *Grid) Rotate(d time.Duration) {
	n := len(g.cells)
	if n == 0 {
		return
	}
	now := g.now()
	first := g.cells[0]
	fx, fy := first.X, first.Y
	for i, c := range g.cells {
		nx, ny := fx, fy
		if i+1 < n {
			next := g.cells[i+1]
			nx, ny = next.X, next.Y
		}
		c.animateTo(nx, ny, d, now, g.ease)
	}
	copy(g.cells, g.cells[1:])
	g.cells[n-1] = first
}
