// Package palette loads ordered color palettes and maps escape-time
// iteration counts onto them.
package palette

import "image/color"

// Palette is an ordered, non-empty list of colors.
// Index 0 holds the fastest-escaping bucket, the last index holds points that never escaped.
type Palette []color.RGBA

// Index returns the bucket of iteration count iter for an iteration cap of max.
//
// The range [0, max] is cut by the ascending thresholds max/P, 2·max/P, ... (P-1)·max/P
// into P buckets; the first threshold above iter selects the bucket below it. Counts at
// or past the last threshold, and iter == max in particular, land in bucket P-1.
func (p Palette) Index(iter, max int) int {
	step := float64(max) / float64(len(p))
	for i := 1; i < len(p); i++ {
		if float64(i)*step > float64(iter) {
			return i - 1
		}
	}
	return len(p) - 1
}

// Color returns the palette entry for iteration count iter.
func (p Palette) Color(iter, max int) color.RGBA {
	return p[p.Index(iter, max)]
}
