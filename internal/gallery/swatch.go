package gallery

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	swatchPrefix = "swatch:"
	swatchSize   = 64
)

// Swatches returns n refs to generated gradient tiles, used when no image
// directory is configured.
func Swatches(n int) []string {
	refs := make([]string, n)
	for i := range refs {
		refs[i] = fmt.Sprintf("%s%d", swatchPrefix, i)
	}
	return refs
}

// IsSwatch reports whether ref names a generated tile.
func IsSwatch(ref string) bool {
	return strings.HasPrefix(ref, swatchPrefix)
}

func swatch(ref string) (image.Image, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(ref, swatchPrefix))
	if err != nil {
		return nil, fmt.Errorf("bad swatch ref %q", ref)
	}

	// golden-angle hue steps keep neighbouring ids apart
	hue := math.Mod(float64(n)*137.508, 360)
	light := colorful.Hcl(hue, 0.55, 0.82)
	dark := colorful.Hcl(math.Mod(hue+35, 360), 0.6, 0.38)
	edge := colorful.Hcl(hue, 0.3, 0.2).Clamped()

	img := image.NewRGBA(image.Rect(0, 0, swatchSize, swatchSize))
	last := swatchSize - 1
	for y := 0; y < swatchSize; y++ {
		for x := 0; x < swatchSize; x++ {
			var c colorful.Color
			if x == 0 || y == 0 || x == last || y == last {
				c = edge
			} else {
				c = light.BlendHcl(dark, float64(x+y)/float64(2*last)).Clamped()
			}
			r, g, b := c.RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img, nil
}
