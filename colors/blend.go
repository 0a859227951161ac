// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// MinBlend and MaxBlend are the number of colors the mixer works with.
// They are enforced by callers, not by [BlendHex].
const (
	MinBlend = 2
	MaxBlend = 7
)

// BlendHex returns the average of the given hex colors in RGB space,
// rounding each channel to the nearest integer. An empty list
// results in [Black].
//
// The channel sums are divided by the length of the whole list,
// so any entry that is not a valid hex color counts as black
// rather than being skipped: BlendHex([]string{"#FFFFFF", "bad"})
// is #808080, not #FFFFFF.
func BlendHex(hexes []string) string {
	if len(hexes) == 0 {
		return Black
	}
	var r, g, b int
	for _, h := range hexes {
		c, ok := HexToRGB(h)
		if !ok {
			continue
		}
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := float64(len(hexes))
	return RGBToHex(
		uint8(math.Round(float64(r)/n)),
		uint8(math.Round(float64(g)/n)),
		uint8(math.Round(float64(b)/n)),
	)
}
