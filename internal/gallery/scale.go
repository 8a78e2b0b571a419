package gallery

import "image"

// maxTaps bounds how many source pixels are averaged per axis for one
// thumbnail pixel.
const maxTaps = 4

// scale stretches img onto a px×px thumbnail with a box filter.
func scale(img image.Image, px int) *Thumb {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	t := &Thumb{Size: px, Pix: make([]byte, px*px*3)}
	if w <= 0 || h <= 0 {
		return t
	}

	for dy := 0; dy < px; dy++ {
		y0 := b.Min.Y + dy*h/px
		y1 := max(b.Min.Y+(dy+1)*h/px, y0+1)
		ystep := max((y1-y0)/maxTaps, 1)
		for dx := 0; dx < px; dx++ {
			x0 := b.Min.X + dx*w/px
			x1 := max(b.Min.X+(dx+1)*w/px, x0+1)
			xstep := max((x1-x0)/maxTaps, 1)

			var rs, gs, bs, n uint32
			for y := y0; y < y1; y += ystep {
				for x := x0; x < x1; x += xstep {
					r, g, bb, _ := img.At(x, y).RGBA()
					rs += r >> 8
					gs += g >> 8
					bs += bb >> 8
					n++
				}
			}
			off := (dy*px + dx) * 3
			t.Pix[off] = uint8(rs / n)
			t.Pix[off+1] = uint8(gs / n)
			t.Pix[off+2] = uint8(bs / n)
		}
	}
	return t
}
