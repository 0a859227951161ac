// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harmony generates sets of related colors (complementary,
// analogous, triadic, tetradic, and monochromatic) from a base color
// by rotating its hue or shifting its lightness in HSL space.
//
// Every function takes a hex color and returns false if it is not
// valid. The base slot of each result is the canonical form of the
// input itself, not a round trip through HSL.
package harmony

import (
	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/colors/hsl"
)

// Complementary is a base color and the color opposite it on the color wheel.
type Complementary struct {
	Base       string
	Complement string
}

// Analogous is a base color and its two neighbors 30 degrees away.
type Analogous struct {
	Left  string
	Base  string
	Right string
}

// Triadic is three colors spaced 120 degrees apart.
type Triadic struct {
	Base   string
	Second string
	Third  string
}

// Tetradic is four colors spaced 90 degrees apart (a square).
type Tetradic struct {
	Base   string
	Second string
	Third  string
	Fourth string
}

// Monochromatic is five lightness variants of the same hue and saturation.
type Monochromatic struct {
	Darkest  string
	Darker   string
	Base     string
	Lighter  string
	Lightest string
}

// base parses the given hex color into its canonical form and HSL.
func base(hex string) (string, hsl.HSL, bool) {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return "", hsl.HSL{}, false
	}
	return colors.RGBToHex(c.R, c.G, c.B), hsl.FromRGB(c.R, c.G, c.B), true
}

// GenerateComplementary returns the complementary harmony of the given color.
func GenerateComplementary(hex string) (Complementary, bool) {
	b, h, ok := base(hex)
	if !ok {
		return Complementary{}, false
	}
	return Complementary{Base: b, Complement: h.Rotate(180).Hex()}, true
}

// GenerateAnalogous returns the analogous harmony of the given color.
func GenerateAnalogous(hex string) (Analogous, bool) {
	b, h, ok := base(hex)
	if !ok {
		return Analogous{}, false
	}
	return Analogous{
		Left:  h.Rotate(-30).Hex(),
		Base:  b,
		Right: h.Rotate(30).Hex(),
	}, true
}

// GenerateTriadic returns the triadic harmony of the given color.
func GenerateTriadic(hex string) (Triadic, bool) {
	b, h, ok := base(hex)
	if !ok {
		return Triadic{}, false
	}
	return Triadic{
		Base:   b,
		Second: h.Rotate(120).Hex(),
		Third:  h.Rotate(240).Hex(),
	}, true
}

// GenerateTetradic returns the tetradic (square) harmony of the given color.
func GenerateTetradic(hex string) (Tetradic, bool) {
	b, h, ok := base(hex)
	if !ok {
		return Tetradic{}, false
	}
	return Tetradic{
		Base:   b,
		Second: h.Rotate(90).Hex(),
		Third:  h.Rotate(180).Hex(),
		Fourth: h.Rotate(270).Hex(),
	}, true
}

// GenerateMonochromatic returns the monochromatic harmony of the given color.
// The darker variants are 30 and 15 points of lightness below the base, but
// no darker than 10 and 20; the lighter ones are 15 and 30 points above it,
// but no lighter than 80 and 90.
func GenerateMonochromatic(hex string) (Monochromatic, bool) {
	b, h, ok := base(hex)
	if !ok {
		return Monochromatic{}, false
	}
	return Monochromatic{
		Darkest:  h.WithLightness(max(h.L-30, 10)).Hex(),
		Darker:   h.WithLightness(max(h.L-15, 20)).Hex(),
		Base:     b,
		Lighter:  h.WithLightness(min(h.L+15, 80)).Hex(),
		Lightest: h.WithLightness(min(h.L+30, 90)).Hex(),
	}, true
}
