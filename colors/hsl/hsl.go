// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides integer HSL (hue, saturation, lightness) colors
// and the conversions between them and RGB and hex colors.
//
// There is exactly one HSL to RGB formula in this module, [ToRGB];
// everything else that needs to go from HSL back to RGB calls it.
// Conversions from RGB to HSL round each component to an integer,
// so a round trip through HSL is only equivalent to within about
// one unit per RGB channel, not exact.
package hsl

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/swatch/colors"
)

// HSL represents a color with an integer hue in degrees in [0,360)
// and integer saturation and lightness percentages in [0,100].
type HSL struct {

	// H is the hue in degrees, in [0,360)
	H int

	// S is the saturation percentage, in [0,100]
	S int

	// L is the lightness percentage, in [0,100]
	L int
}

// New returns a new HSL color from the given components,
// normalizing the hue and clamping the saturation and lightness.
func New(h, s, l int) HSL {
	return HSL{H: NormalizeHue(h), S: clampPct(s), L: clampPct(l)}
}

// FromRGB returns the HSL representation of the given RGB components.
// Achromatic colors have a hue and saturation of 0.
func FromRGB(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255
	mx := max(rf, gf, bf)
	mn := min(rf, gf, bf)
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100))}
	}
	d := mx - mn
	var s float64
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	var h float64
	switch mx {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6
	return HSL{
		H: NormalizeHue(int(math.Round(h * 360))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// FromColor returns the HSL representation of the given color.
func FromColor(c color.Color) HSL {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return FromRGB(r.R, r.G, r.B)
}

// FromHex returns the HSL representation of the given hex color,
// and false if it is not a valid hex color.
func FromHex(hex string) (HSL, bool) {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}
	return FromRGB(c.R, c.G, c.B), true
}

// ToRGB converts the given hue (degrees), saturation and lightness
// (percentages) to an RGB color, rounding each channel to the nearest
// integer. Saturation and lightness may be fractional and are clamped
// to [0,100]; the hue wraps.
func ToRGB(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	s = math.Min(math.Max(s, 0), 100) / 100
	l = math.Min(math.Max(l, 0), 100) / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return color.RGBA{
		colors.ClampChannel(r * 255),
		colors.ClampChannel(g * 255),
		colors.ClampChannel(b * 255),
		255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// AsRGBA returns the color as a [color.RGBA] using [ToRGB].
func (h HSL) AsRGBA() color.RGBA {
	return ToRGB(float64(h.H), float64(h.S), float64(h.L))
}

// Hex returns the color as an uppercase #RRGGBB string.
func (h HSL) Hex() string {
	return colors.AsHex(h.AsRGBA())
}

// Rotate returns the color with its hue rotated by the given
// number of degrees, which may be negative.
func (h HSL) Rotate(deg int) HSL {
	h.H = NormalizeHue(h.H + deg)
	return h
}

// WithLightness returns the color with the given lightness, clamped to [0,100].
func (h HSL) WithLightness(l int) HSL {
	h.L = clampPct(l)
	return h
}

// WithSaturation returns the color with the given saturation, clamped to [0,100].
func (h HSL) WithSaturation(s int) HSL {
	h.S = clampPct(s)
	return h
}

// String returns the color in the CSS hsl(h, s%, l%) form.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// NormalizeHue maps any hue in degrees, including negative ones, into [0,360).
func NormalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampPct(v int) int {
	return min(max(v, 0), 100)
}
