// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wcag

// Levels reports whether a contrast ratio passes one WCAG conformance
// level for normal and large text.
type Levels struct {
	Normal bool
	Large  bool
}

// Compliance reports whether a contrast ratio passes
// the AA and AAA conformance levels.
type Compliance struct {
	AA  Levels
	AAA Levels
}

// CheckCompliance returns the compliance of the given contrast ratio
// with each WCAG conformance level and text size.
func CheckCompliance(ratio float64) Compliance {
	return Compliance{
		AA: Levels{
			Normal: ratio >= AANormal,
			Large:  ratio >= AALarge,
		},
		AAA: Levels{
			Normal: ratio >= AAANormal,
			Large:  ratio >= AAALarge,
		},
	}
}

// Level is an overall compliance level for normal text.
type Level int32

const (
	// Fail is a ratio below the AA requirement for normal text.
	Fail Level = iota

	// AA is a ratio that meets AA but not AAA for normal text.
	AA

	// AAA is a ratio that meets AAA for normal text.
	AAA
)

// String returns "AAA", "AA", or "FAIL".
func (l Level) String() string {
	switch l {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	}
	return "FAIL"
}

// ComplianceLevel returns the highest level the given contrast ratio
// meets for normal text. It does not consider the lower large text
// thresholds; use [CheckCompliance] for those.
func ComplianceLevel(ratio float64) Level {
	switch {
	case ratio >= AAANormal:
		return AAA
	case ratio >= AANormal:
		return AA
	}
	return Fail
}

// Report is the full contrast evaluation of a foreground
// color on a background color.
type Report struct {
	Foreground  string
	Background  string
	Ratio       float64
	Compliance  Compliance
	Level       Level
	Description string
}

// Check returns the [Report] for the given foreground
// and background hex colors.
func Check(fg, bg string) Report {
	r := ContrastRatio(fg, bg)
	return Report{
		Foreground:  fg,
		Background:  bg,
		Ratio:       r,
		Compliance:  CheckCompliance(r),
		Level:       ComplianceLevel(r),
		Description: Description(r),
	}
}
