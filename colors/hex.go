// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the hex and RGB color primitives used by all
// of the other swatch packages: strict hex parsing, canonical hex
// formatting, and averaging of colors.
//
// Hex colors are always handled as strings of the form #RRGGBB. Input
// is case-insensitive and the leading # is optional, but output is
// always uppercase with a leading #.
package colors

import (
	"fmt"
	"image/color"
	"math"
)

// Black and White are the canonical hex strings for pure black and white.
const (
	Black = "#000000"
	White = "#FFFFFF"
)

// HexToRGB parses the given hex color string and returns the resulting
// color, with an alpha of 255. The string must be exactly six hexadecimal
// digits, optionally preceded by a #; the three digit shorthand form is
// not supported. It returns false for any other string instead of an
// error; see [MustHexToRGB] for a version that panics.
func HexToRGB(hex string) (color.RGBA, bool) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	var v [3]uint8
	for i := range v {
		hi, ok := hexDigit(hex[2*i])
		if !ok {
			return color.RGBA{}, false
		}
		lo, ok := hexDigit(hex[2*i+1])
		if !ok {
			return color.RGBA{}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{v[0], v[1], v[2], 255}, true
}

// MustHexToRGB parses the given hex color string and returns the
// resulting color. It panics if the string is not a valid hex color;
// see [HexToRGB] for a version that does not.
func MustHexToRGB(hex string) color.RGBA {
	c, ok := HexToRGB(hex)
	if !ok {
		panic("colors.MustHexToRGB: invalid hex color: " + hex)
	}
	return c
}

// IsHex returns whether the given string is a valid hex color
// as accepted by [HexToRGB].
func IsHex(hex string) bool {
	_, ok := HexToRGB(hex)
	return ok
}

// Normalize returns the canonical (uppercase, # prefixed) form
// of the given hex color, and false if it is not valid.
func Normalize(hex string) (string, bool) {
	c, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return RGBToHex(c.R, c.G, c.B), true
}

// RGBToHex returns the given color components as an uppercase
// #RRGGBB string. The components are not validated beyond their
// type; use [ClampChannel] to bring computed values into range first.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// AsHex returns the given color as an uppercase #RRGGBB string,
// ignoring its alpha channel.
func AsHex(c color.Color) string {
	if c == nil {
		return Black
	}
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return RGBToHex(r.R, r.G, r.B)
}

// ClampChannel rounds the given value to the nearest integer and
// clamps it to the range of a color channel.
func ClampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RGBString returns the given color in the CSS rgb(r, g, b) form.
func RGBString(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
