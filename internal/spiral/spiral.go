// Package spiral maps centered grid coordinates onto a square spiral
// ordering. Index 0 is the center; ring k (max(|x|,|y|) == k) occupies
// indices [(2k-1)², (2k+1)²).
package spiral

import "math"

// Index returns the spiral position of the centered coordinate (x, y).
//
// Ring k starts just right of the top-left corner at (-k+1, k), runs along
// the top edge to (k, k), down the right edge, leftwards along the bottom
// and finishes up the left edge at (-k, k).
func Index(x, y int) int {
	var idx int
	if x*x >= y*y {
		idx = 4*x*x - x - y
		if x < y {
			idx -= 2 * (x - y)
		}
	} else {
		idx = 4*y*y - x - y
		if x < y {
			idx += 2 * (x - y)
		}
	}
	return idx
}

// Coord is the inverse of Index. Negative indices map to the center.
func Coord(i int) (x, y int) {
	if i <= 0 {
		return 0, 0
	}
	k := ringOf(i)
	kk := 4 * k * k
	switch {
	case i < kk-2*k:
		return i - kk + 3*k, k
	case i <= kk:
		return k, kk - k - i
	case i <= kk+2*k:
		return kk + k - i, -k
	default:
		return -k, i - kk - 3*k
	}
}

// Ring returns which concentric square (x, y) lies on.
func Ring(x, y int) int {
	return max(abs(x), abs(y))
}

// Center shifts a grid-relative coordinate in [0, size) so that the middle
// cell of an odd-sized grid becomes 0.
func Center(v, size int) int {
	return v - (size-1)/2
}

// Uncenter is the inverse of Center.
func Uncenter(v, size int) int {
	return v + (size-1)/2
}

// Len is the number of cells in a grid of the given side length.
func Len(size int) int {
	return size * size
}

func ringOf(i int) int {
	k := int((math.Sqrt(float64(i)) + 1) / 2)
	for (2*k+1)*(2*k+1) <= i {
		k++
	}
	for k > 0 && (2*k-1)*(2*k-1) > i {
		k--
	}
	return k
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
