// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shades generates a ten step shade scale (50 through 900)
// from a single base color, in the style of common design systems.
// The base color is the 500 shade.
//
// Lightness follows one fixed curve: the shades lighter than 500 use
// lightness 95, 90, 80, 70, and 60, and the shades darker than 500 step
// down from the base lightness by 10 per shade, with floors of 40, 30,
// 20, and 12. The curve is then clamped so that it never rises above the
// base on the dark side or falls below it on the light side, which keeps
// it monotonic for very light and very dark base colors. Saturation is
// reduced for the light shades, by 5 points per 100 steps below 500, but
// never below 70% of the base saturation, to avoid oversaturated pastels.
package shades

import (
	"iter"
	"math"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/colors/hsl"
	"cogentcore.org/swatch/palette"
)

// Labels are the shade labels of a [Scale], from lightest to darkest.
var Labels = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// BaseLabel is the label of the shade that is equal to the base color.
const BaseLabel = 500

// lightTones are the fixed lightness values of the shades below 500.
var lightTones = map[int]int{50: 95, 100: 90, 200: 80, 300: 70, 400: 60}

// darkSteps are the lightness offsets and floors of the shades above 500.
var darkSteps = map[int][2]int{600: {10, 40}, 700: {20, 30}, 800: {30, 20}, 900: {40, 12}}

// Scale is a shade scale: one hex color for each of the [Labels].
type Scale struct {

	// Base is the base color, which is also the 500 shade.
	Base string

	colors [len(Labels)]string
}

// Generate returns the shade scale for the given base color,
// and false if it is not a valid hex color.
func Generate(hex string) (Scale, bool) {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return Scale{}, false
	}
	base := hsl.FromRGB(c.R, c.G, c.B)
	s := Scale{Base: colors.RGBToHex(c.R, c.G, c.B)}
	for i, label := range Labels {
		if label == BaseLabel {
			s.colors[i] = s.Base
			continue
		}
		l := lightness(label, base.L)
		sat := saturation(label, base.S)
		s.colors[i] = colors.AsHex(hsl.ToRGB(float64(base.H), sat, float64(l)))
	}
	return s, true
}

// lightness returns the lightness of the shade with the given label
// for a base color with the given lightness.
func lightness(label, base int) int {
	if label == BaseLabel {
		return base
	}
	if l, ok := lightTones[label]; ok {
		return min(max(l, base), 100)
	}
	st := darkSteps[label]
	return max(min(max(base-st[0], st[1]), base), 0)
}

// saturation returns the saturation of the shade with the given label
// for a base color with the given saturation.
func saturation(label, base int) float64 {
	s := float64(base)
	if label < BaseLabel {
		s = math.Max(s-float64(BaseLabel-label)/100*5, s*0.7)
	}
	return math.Min(math.Max(s, 0), 100)
}

// Get returns the shade with the given label, and false if
// the label is not one of the [Labels].
func (s Scale) Get(label int) (string, bool) {
	for i, l := range Labels {
		if l == label {
			return s.colors[i], s.colors[i] != ""
		}
	}
	return "", false
}

// All returns an iterator over the labels and colors of
// the scale, from lightest to darkest.
func (s Scale) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, l := range Labels {
			if !yield(l, s.colors[i]) {
				return
			}
		}
	}
}

// Colors returns the colors of the scale, from lightest to darkest.
func (s Scale) Colors() []string {
	return s.colors[:]
}

// Shades returns the scale as [palette.Shades] for export.
// If withDefault is true, the base color is added first under
// [palette.DefaultKey], as in a Tailwind color definition.
func (s Scale) Shades(withDefault bool) palette.Shades {
	var sh palette.Shades
	if withDefault {
		sh.Add(palette.DefaultKey, s.Base)
	}
	for l, c := range s.All() {
		sh.Add(palette.ShadeKey(l), c)
	}
	return sh
}
