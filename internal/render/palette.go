package render

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// ASCII brightness ramp from darkest to brightest.
const asciiRamp = " .:-=+*#%@"

const ansiReset = "\x1b[0m"

// ColorMode describes how the encoder emits colors.
type ColorMode uint8

const (
	ColorOff     ColorMode = iota // NO_COLOR or dumb terminal
	ColorANSI16                   // basic 16-color
	ColorANSI256                  // 256-color
	ColorTrue                     // 24-bit truecolor
)

// String returns the config name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorANSI16:
		return "16"
	case ColorANSI256:
		return "256"
	case ColorTrue:
		return "true"
	default:
		return "off"
	}
}

// ParseColorMode maps a config value onto a mode. "auto" and unknown values
// detect the terminal.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "true", "truecolor", "24":
		return ColorTrue
	case "256", "8":
		return ColorANSI256
	case "16", "4":
		return ColorANSI16
	case "off", "none", "ascii":
		return ColorOff
	default:
		return DetectColorMode()
	}
}

var (
	detectOnce sync.Once
	termColor  ColorMode
	seqCache   sync.Map
)

// DetectColorMode checks terminal capabilities once.
func DetectColorMode() ColorMode {
	detectOnce.Do(func() {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			termColor = ColorOff
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		ct := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(ct, "truecolor"), strings.Contains(ct, "24bit"):
			termColor = ColorTrue
		case strings.Contains(term, "256color"):
			termColor = ColorANSI256
		case term == "dumb":
			termColor = ColorOff
		case term == "" && runtime.GOOS == "windows":
			termColor = ColorANSI16
		case term == "":
			termColor = ColorOff
		default:
			termColor = ColorANSI16
		}
	})
	return termColor
}

// brightnessChar maps a 0-255 luminance to an ASCII character.
func brightnessChar(lum uint8) byte {
	idx := int(lum) * (len(asciiRamp) - 1) / 255
	return asciiRamp[idx]
}

// luminance computes perceived brightness (ITU-R BT.601).
func luminance(c RGB) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

// colorSeq returns the foreground (bg=false) or background escape for c.
// Sequences are cached per mode and color.
func colorSeq(mode ColorMode, c RGB, bg bool) string {
	if mode == ColorOff {
		return ""
	}
	key := uint32(mode)<<25 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if bg {
		key |= 1 << 24
	}
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	base := 38
	if bg {
		base = 48
	}
	var seq string
	switch mode {
	case ColorTrue:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
	case ColorANSI256:
		ri := int(c.R) * 5 / 255
		gi := int(c.G) * 5 / 255
		bi := int(c.B) * 5 / 255
		seq = fmt.Sprintf("\x1b[%d;5;%dm", base, 16+36*ri+6*gi+bi)
	case ColorANSI16:
		idx := ansi16Nearest(c)
		code := base - 8 // 30 or 40
		if idx >= 8 {
			code += 60
			idx -= 8
		}
		seq = fmt.Sprintf("\x1b[%dm", code+idx)
	}

	seqCache.Store(key, seq)
	return seq
}

func ansi16Nearest(c RGB) int {
	best := 0
	bestDist := 1<<31 - 1
	for i, p := range ansi16Palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

var ansi16Palette = [16]RGB{
	{0, 0, 0},       // black
	{205, 49, 49},   // red
	{13, 188, 121},  // green
	{229, 229, 16},  // yellow
	{36, 114, 200},  // blue
	{188, 63, 188},  // magenta
	{17, 168, 205},  // cyan
	{229, 229, 229}, // white
	{102, 102, 102}, // bright black
	{241, 76, 76},   // bright red
	{35, 209, 139},  // bright green
	{245, 245, 67},  // bright yellow
	{59, 142, 234},  // bright blue
	{214, 112, 214}, // bright magenta
	{41, 184, 219},  // bright cyan
	{255, 255, 255}, // bright white
}
