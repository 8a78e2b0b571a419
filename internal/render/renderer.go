// Package render rasterizes the grid into an RGB frame and encodes frames
// for the terminal.
package render

import (
	"math"
	"time"

	"github.com/olivier-w/spiralmatrix/internal/gallery"
	"github.com/olivier-w/spiralmatrix/internal/grid"
)

var (
	DefaultBackground = RGB{12, 12, 16}
	DefaultGridLine   = RGB{70, 70, 80}
)

// Renderer draws every cell with a loaded image at its smoothed position.
// It only reads grid state.
type Renderer struct {
	Margin     int
	Background RGB
	GridLine   RGB
	ShowGrid   bool
}

// NewRenderer creates a renderer with the default palette.
func NewRenderer(margin int) *Renderer {
	return &Renderer{
		Margin:     margin,
		Background: DefaultBackground,
		GridLine:   DefaultGridLine,
	}
}

// Layout returns the layout of g on f.
func (r *Renderer) Layout(f *Frame, g *grid.Grid) Layout {
	return Layout{Width: f.Width, Height: f.Height, Margin: r.Margin, GridSize: g.Size()}
}

// Draw clears f and paints g onto it as of now. Cells whose image has not
// loaded are skipped.
func (r *Renderer) Draw(f *Frame, g *grid.Grid, gal *gallery.Gallery, now time.Time) {
	f.Clear(r.Background)
	l := r.Layout(f, g)
	px := int(math.Round(l.CellLen()))
	if px < 1 {
		return
	}
	for _, c := range g.WithImage() {
		t := gal.Thumb(c.Image, px)
		if t == nil {
			continue
		}
		sx, sy := float64(c.X), float64(c.Y)
		if !c.Tween().Done(now) {
			sx, sy = c.Smooth(now)
		}
		x, y := l.Position(sx, sy)
		f.Blit(t, int(math.Round(x)), int(math.Round(y)))
	}
	if r.ShowGrid {
		r.drawGrid(f, l)
	}
}

func (r *Renderer) drawGrid(f *Frame, l Layout) {
	cx, cy := float64(f.Width)/2, float64(f.Height)/2
	half := l.Extent() / 2
	for _, p := range l.Lines() {
		x := int(math.Round(cx + p))
		y := int(math.Round(cy + p))
		f.VLine(x, int(math.Round(cy-half)), int(math.Round(cy+half)), r.GridLine)
		f.HLine(int(math.Round(cx-half)), int(math.Round(cx+half)), y, r.GridLine)
	}
}
