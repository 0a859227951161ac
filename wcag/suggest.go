// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wcag

import (
	"slices"

	"cogentcore.org/swatch/colors"
)

// DefaultTarget is the default target contrast ratio for
// [SuggestAccessibleColor], the AA requirement for normal text.
const DefaultTarget = AANormal

// SearchIterations is the maximum number of bisection steps that
// [SuggestAccessibleColor] takes. Each step halves the remaining
// range of the adjustment factor, so the result is within 2^-20 of
// the smallest passing factor.
const SearchIterations = 20

// adjust returns the given color lightened toward white (factor > 0)
// or darkened toward black (factor < 0) by the given fraction in RGB space.
// It returns the color unchanged if it is not a valid hex color.
func adjust(hex string, factor float64) string {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return hex
	}
	ch := func(v uint8) uint8 {
		f := float64(v)
		if factor > 0 {
			return colors.ClampChannel(f + (255-f)*factor)
		}
		return colors.ClampChannel(f * (1 + factor))
	}
	return colors.RGBToHex(ch(c.R), ch(c.G), ch(c.B))
}

// Suggest is [SuggestAccessibleColor] with the [DefaultTarget] ratio.
func Suggest(fg, bg string) string {
	return SuggestAccessibleColor(fg, bg, DefaultTarget)
}

// SuggestAccessibleColor returns a foreground color close to fg that has
// at least the given contrast ratio against bg. If fg already meets the
// target, it is returned unchanged.
//
// Otherwise fg is lightened if bg is dark (luminance below 0.5) and
// darkened if it is light, with the amount found by bisection over
// [0,1] in at most [SearchIterations] steps; the search stops early once
// the best passing color is less than one ratio unit above the target.
// If no adjustment passes, pure white or pure black is returned, whichever
// passes with the higher ratio. If neither passes, the best color found is
// returned even though it does not meet the target, so callers must check
// the ratio of the result.
func SuggestAccessibleColor(fg, bg string, target float64) string {
	current := ContrastRatio(fg, bg)
	if current >= target {
		return fg
	}

	lighten := RelativeLuminance(bg) < 0.5
	low, high := 0.0, 1.0
	best, bestRatio := fg, current
	for range SearchIterations {
		mid := (low + high) / 2
		factor := -mid
		if lighten {
			factor = mid
		}
		c := adjust(fg, factor)
		r := ContrastRatio(c, bg)
		if r >= target {
			best, bestRatio = c, r
			high = mid
		} else {
			low = mid
		}
		if bestRatio >= target && bestRatio < target+1 {
			break
		}
	}
	if bestRatio >= target {
		return best
	}

	white := ContrastRatio(colors.White, bg)
	black := ContrastRatio(colors.Black, bg)
	switch {
	case white >= black && white >= target:
		return colors.White
	case black >= target:
		return colors.Black
	}
	return best
}

// Suggestion is a suggested accessible replacement for a foreground color.
type Suggestion struct {
	Color string
	Ratio float64
	Level Level
	Label string
}

// MaxSuggestions is the maximum number of suggestions returned by [Suggestions].
const MaxSuggestions = 4

// Suggestions returns up to [MaxSuggestions] accessible replacements for
// the foreground color fg on bg, if fg does not already meet the AA
// requirement for normal text: the closest AA color, the closest AAA color,
// and pure white and pure black when they pass AA. AAA suggestions come
// first, then the rest by descending contrast ratio.
func Suggestions(fg, bg string) []Suggestion {
	if ContrastRatio(fg, bg) >= AANormal {
		return nil
	}
	var res []Suggestion
	has := func(c string) bool {
		return slices.ContainsFunc(res, func(s Suggestion) bool { return s.Color == c })
	}

	aa := SuggestAccessibleColor(fg, bg, AANormal)
	aaRatio := ContrastRatio(aa, bg)
	if aaRatio >= AANormal && aa != fg {
		res = append(res, Suggestion{aa, aaRatio, ComplianceLevel(aaRatio), "Meets AA standard"})
	}

	aaa := SuggestAccessibleColor(fg, bg, AAANormal)
	aaaRatio := ContrastRatio(aaa, bg)
	if aaaRatio >= AAANormal && aaa != aa && aaa != fg {
		res = append(res, Suggestion{aaa, aaaRatio, AAA, "Meets AAA standard"})
	}

	for _, c := range []struct{ hex, label string }{{colors.White, "Pure white"}, {colors.Black, "Pure black"}} {
		r := ContrastRatio(c.hex, bg)
		if r >= AANormal && !has(c.hex) {
			res = append(res, Suggestion{c.hex, r, ComplianceLevel(r), c.label})
		}
	}

	slices.SortStableFunc(res, func(a, b Suggestion) int {
		if (a.Level == AAA) != (b.Level == AAA) {
			if a.Level == AAA {
				return -1
			}
			return 1
		}
		switch {
		case a.Ratio > b.Ratio:
			return -1
		case a.Ratio < b.Ratio:
			return 1
		}
		return 0
	})
	if len(res) > MaxSuggestions {
		res = res[:MaxSuggestions]
	}
	return res
}
