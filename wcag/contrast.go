// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag implements the WCAG 2.1 relative luminance and contrast
// ratio formulas, classification of contrast ratios into compliance
// levels, and a search for accessible foreground colors.
//
// See https://www.w3.org/TR/WCAG21/#dfn-relative-luminance and
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
package wcag

import (
	"fmt"
	"math"

	"cogentcore.org/swatch/colors"
)

// Contrast ratio thresholds for the WCAG success criteria.
// All of them are inclusive.
const (
	// AALarge is the minimum AA ratio for large text.
	AALarge = 3.0

	// AANormal is the minimum AA ratio for normal text,
	// and also the minimum AAA ratio for large text.
	AANormal = 4.5

	// AAANormal is the minimum AAA ratio for normal text.
	AAANormal = 7.0

	// AAALarge is the minimum AAA ratio for large text.
	AAALarge = AANormal
)

// linearize converts an sRGB channel value (0-255) to linear light.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the relative luminance of the given hex
// color, between 0 (black) and 1 (white). An invalid hex color has
// a luminance of 0.
func RelativeLuminance(hex string) float64 {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio returns the contrast ratio between the two given hex
// colors, between 1 and 21. The order of the arguments does not matter.
func ContrastRatio(fg, bg string) float64 {
	return ContrastRatioOfLuminances(RelativeLuminance(fg), RelativeLuminance(bg))
}

// ContrastRatioOfLuminances returns the contrast ratio of two relative luminances.
func ContrastRatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// FormatRatio formats the given contrast ratio for display, such as "4.52:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// Description returns a short human-readable description of the given
// contrast ratio.
func Description(ratio float64) string {
	switch {
	case ratio >= 12:
		return "Excellent"
	case ratio >= AAANormal:
		return "Very Good"
	case ratio >= AANormal:
		return "Good"
	case ratio >= AALarge:
		return "Sufficient for Large Text"
	}
	return "Poor"
}
