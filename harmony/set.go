// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harmony

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds are the supported kinds of color harmony.
type Kinds int32

const (
	KindComplementary Kinds = iota
	KindAnalogous
	KindTriadic
	KindTetradic
	KindMonochromatic

	kindsN
)

// ErrUnknownKind is returned by [ParseKind] for an unrecognized name.
var ErrUnknownKind = errors.New("unknown harmony kind")

var kindNames = [kindsN]string{"complementary", "analogous", "triadic", "tetradic", "monochromatic"}

var kindTitles = [kindsN]string{"Complementary", "Analogous", "Triadic", "Tetradic (Square)", "Monochromatic"}

var kindDescriptions = [kindsN]string{
	"Opposite on color wheel - high contrast",
	"Adjacent colors - harmonious blend",
	"120° apart - vibrant and balanced",
	"90° apart - rich and diverse",
	"Same hue, varied lightness",
}

// KindsValues returns all of the harmony kinds, in display order.
func KindsValues() []Kinds {
	return []Kinds{KindComplementary, KindAnalogous, KindTriadic, KindTetradic, KindMonochromatic}
}

// String returns the lowercase name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= kindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name, case-insensitive.
func ParseKind(s string) (Kinds, error) {
	s = strings.ToLower(s)
	for i, n := range kindNames {
		if n == s {
			return Kinds(i), nil
		}
	}
	return 0, fmt.Errorf("harmony.ParseKind: %w: %q", ErrUnknownKind, s)
}

// Set is a harmony in a uniform shape for display: its colors in
// order, with a positional label for each one.
type Set struct {
	Kind        Kinds
	Title       string
	Description string
	Colors      []string
	Labels      []string
}

func newSet(k Kinds, colors []string, labels ...string) Set {
	return Set{
		Kind:        k,
		Title:       kindTitles[k],
		Description: kindDescriptions[k],
		Colors:      colors,
		Labels:      labels,
	}
}

// Generate returns the harmony of the given kind for the given
// base color, and false if the color is not valid.
func Generate(kind Kinds, hex string) (Set, bool) {
	switch kind {
	case KindComplementary:
		h, ok := GenerateComplementary(hex)
		return newSet(kind, []string{h.Base, h.Complement}, "Base", "Complement"), ok
	case KindAnalogous:
		h, ok := GenerateAnalogous(hex)
		return newSet(kind, []string{h.Left, h.Base, h.Right}, "Left", "Base", "Right"), ok
	case KindTriadic:
		h, ok := GenerateTriadic(hex)
		return newSet(kind, []string{h.Base, h.Second, h.Third}, "Base", "Second", "Third"), ok
	case KindTetradic:
		h, ok := GenerateTetradic(hex)
		return newSet(kind, []string{h.Base, h.Second, h.Third, h.Fourth}, "Base", "Second", "Third", "Fourth"), ok
	case KindMonochromatic:
		h, ok := GenerateMonochromatic(hex)
		return newSet(kind, []string{h.Darkest, h.Darker, h.Base, h.Lighter, h.Lightest},
			"Darkest", "Darker", "Base", "Lighter", "Lightest"), ok
	}
	return Set{}, false
}

// All returns every kind of harmony for the given base color,
// in the order of [KindsValues].
func All(hex string) ([]Set, bool) {
	kinds := KindsValues()
	sets := make([]Set, 0, len(kinds))
	for _, k := range kinds {
		s, ok := Generate(k, hex)
		if !ok {
			return nil, false
		}
		sets = append(sets, s)
	}
	return sets, true
}
