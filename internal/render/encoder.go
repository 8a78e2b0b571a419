package render

import "strings"

// Encoder converts frames into terminal strings. In color modes it packs two
// pixel rows into each terminal row with "▀" (fg = top, bg = bottom); with
// color off it maps each pixel pair to a brightness character.
type Encoder struct {
	Mode ColorMode
	sb   strings.Builder // reused between frames
}

// NewEncoder creates an encoder for the given color mode.
func NewEncoder(mode ColorMode) *Encoder {
	return &Encoder{Mode: mode}
}

// Rows returns how many terminal rows a frame of pixel height h occupies.
func Rows(h int) int {
	return (h + 1) / 2
}

// PixelHeight returns the frame height that fills rows terminal rows.
func PixelHeight(rows int) int {
	return max(rows, 0) * 2
}

// Encode renders f as f.Width columns by Rows(f.Height) lines.
func (e *Encoder) Encode(f *Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	rows := Rows(f.Height)

	e.sb.Reset()
	// worst case ~40 bytes per cell with both escapes
	e.sb.Grow(f.Width * rows * 40)

	if e.Mode == ColorOff {
		e.encodeASCII(f, rows)
	} else {
		e.encodeHalfBlock(f, rows)
	}
	return e.sb.String()
}

func (e *Encoder) encodeHalfBlock(f *Frame, rows int) {
	var lastFg, lastBg string
	for row := 0; row < rows; row++ {
		for col := 0; col < f.Width; col++ {
			top := f.At(col, row*2)
			bot := f.At(col, row*2+1)

			fg := colorSeq(e.Mode, top, false)
			bg := colorSeq(e.Mode, bot, true)
			if fg != lastFg {
				e.sb.WriteString(fg)
				lastFg = fg
			}
			if bg != lastBg {
				e.sb.WriteString(bg)
				lastBg = bg
			}
			e.sb.WriteString("▀")
		}
		e.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

func (e *Encoder) encodeASCII(f *Frame, rows int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < f.Width; col++ {
			top := luminance(f.At(col, row*2))
			bot := luminance(f.At(col, row*2+1))
			e.sb.WriteByte(brightnessChar(uint8((int(top) + int(bot)) / 2)))
		}
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}
