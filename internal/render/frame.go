package render

import "github.com/olivier-w/spiralmatrix/internal/gallery"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Frame is an RGB24 pixel buffer, row-major, top-to-bottom.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a w×h frame.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize changes the frame dimensions, reusing the buffer when it is large
// enough. Contents are undefined afterwards.
func (f *Frame) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	f.Width, f.Height = w, h
	n := w * h * 3
	if cap(f.Pix) < n {
		f.Pix = make([]byte, n)
		return
	}
	f.Pix = f.Pix[:n]
}

// Clear fills the frame with c.
func (f *Frame) Clear(c RGB) {
	for i := 0; i+2 < len(f.Pix); i += 3 {
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
	}
}

// Set writes c at (x, y); writes outside the frame are dropped.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	off := (y*f.Width + x) * 3
	f.Pix[off] = c.R
	f.Pix[off+1] = c.G
	f.Pix[off+2] = c.B
}

// At reads the pixel at (x, y). Outside the frame it returns black.
func (f *Frame) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return RGB{}
	}
	off := (y*f.Width + x) * 3
	return RGB{f.Pix[off], f.Pix[off+1], f.Pix[off+2]}
}

// Blit copies t with its top-left corner at (x, y), clipped to the frame.
func (f *Frame) Blit(t *gallery.Thumb, x, y int) {
	if t == nil {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+t.Size, f.Width), min(y+t.Size, f.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		src := ((py-y)*t.Size + (x0 - x)) * 3
		dst := (py*f.Width + x0) * 3
		n := (x1 - x0) * 3
		copy(f.Pix[dst:dst+n], t.Pix[src:src+n])
	}
}

// HLine draws a horizontal line from x0 to x1 inclusive.
func (f *Frame) HLine(x0, x1, y int, c RGB) {
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		f.Set(x, y, c)
	}
}

// VLine draws a vertical line from y0 to y1 inclusive.
func (f *Frame) VLine(x, y0, y1 int, c RGB) {
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		f.Set(x, y, c)
	}
}
