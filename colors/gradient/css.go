// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient builds CSS linear and radial gradient strings
// from a list of hex color stops.
package gradient

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds are the supported gradient types.
type Kinds int32

const (
	// Linear is a linear-gradient along an angle.
	Linear Kinds = iota

	// Radial is a circular radial-gradient; it ignores the angle.
	Radial
)

// MinStops and MaxStops are the number of color stops
// the gradient builder works with.
const (
	MinStops = 2
	MaxStops = 7
)

// DefaultAngle is the angle in degrees used when none is given.
const DefaultAngle = 90

// ErrUnknownKind is returned by [ParseKind] for an unrecognized name.
var ErrUnknownKind = errors.New("unknown gradient kind")

// String returns the CSS name of the kind.
func (k Kinds) String() string {
	if k == Radial {
		return "radial"
	}
	return "linear"
}

// ParseKind returns the gradient kind with the given name
// ("linear" or "radial", case-insensitive).
func ParseKind(s string) (Kinds, error) {
	switch strings.ToLower(s) {
	case "linear", "":
		return Linear, nil
	case "radial":
		return Radial, nil
	}
	return Linear, fmt.Errorf("gradient.ParseKind: %w: %q", ErrUnknownKind, s)
}

// CSS returns the CSS gradient function for the given kind, angle in
// degrees, and color stops, such as "linear-gradient(90deg, #8B5CF6, #EC4899)".
// The colors are used as given.
func CSS(kind Kinds, angle int, colors []string) string {
	stops := strings.Join(colors, ", ")
	if kind == Radial {
		return "radial-gradient(circle, " + stops + ")"
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, stops)
}

// Background returns a CSS background declaration for
// the gradient, such as "background: linear-gradient(...);".
func Background(kind Kinds, angle int, colors []string) string {
	return "background: " + CSS(kind, angle, colors) + ";"
}
