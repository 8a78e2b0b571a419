package render

// Layout maps grid coordinates onto a drawing surface: the grid is scaled to
// fit the smaller surface dimension (less a margin) and centered.
type Layout struct {
	Width    int
	Height   int
	Margin   int
	GridSize int
}

// Extent is the side length of the square the grid occupies.
func (l Layout) Extent() float64 {
	e := min(l.Width, l.Height) - l.Margin
	if e < 0 {
		return 0
	}
	return float64(e)
}

// CellLen is the side length of one cell.
func (l Layout) CellLen() float64 {
	if l.GridSize <= 0 {
		return 0
	}
	return l.Extent() / float64(l.GridSize)
}

// Position returns the top-left surface coordinate of a cell whose display
// position is (sx, sy) in grid units.
func (l Layout) Position(sx, sy float64) (float64, float64) {
	if l.GridSize <= 0 {
		return float64(l.Width) / 2, float64(l.Height) / 2
	}
	n := float64(l.GridSize)
	e := l.Extent()
	return float64(l.Width)/2 + (sx-n/2)/n*e, float64(l.Height)/2 + (sy-n/2)/n*e
}

// Lines returns the surface offsets of the n+1 grid lines along one axis,
// relative to the surface center.
func (l Layout) Lines() []float64 {
	if l.GridSize <= 0 {
		return nil
	}
	e := l.Extent()
	cell := l.CellLen()
	out := make([]float64, l.GridSize+1)
	for i := range out {
		out[i] = -e/2 + float64(i)*cell
	}
	return out
}
