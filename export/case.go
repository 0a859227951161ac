// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Case is the letter case used for color names in an export.
type Case int32

const (
	// Kebab is kebab-case, as in primary-color.
	Kebab Case = iota

	// Camel is camelCase, as in primaryColor.
	Camel

	// Snake is snake_case, as in primary_color.
	Snake

	casesN
)

var caseNames = [casesN]string{"kebab-case", "camelCase", "snake_case"}

// ErrUnknownCase is returned by [ParseCase] for an unknown case name.
var ErrUnknownCase = errors.New("unknown case")

// CasesValues returns all of the cases.
func CasesValues() []Case {
	return []Case{Kebab, Camel, Snake}
}

func (c Case) String() string {
	if c < 0 || c >= casesN {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseNames[c]
}

var caseShortNames = [casesN]string{"kebab", "camel", "snake"}

// ParseCase returns the case with the given name. Both the display
// names ("camelCase") and the short names ("camel") are accepted,
// ignoring letter case.
func ParseCase(s string) (Case, error) {
	s = strings.TrimSpace(s)
	for _, c := range CasesValues() {
		if strings.EqualFold(s, caseNames[c]) || strings.EqualFold(s, caseShortNames[c]) {
			return c, nil
		}
	}
	return Kebab, fmt.Errorf("export.ParseCase: %w: %q", ErrUnknownCase, s)
}

// Apply returns the given name in this case. Word boundaries are
// case changes, hyphens, underscores, and spaces.
func (c Case) Apply(name string) string {
	switch c {
	case Camel:
		return strcase.ToLowerCamel(name)
	case Snake:
		return strcase.ToSnake(name)
	}
	return strcase.ToKebab(name)
}
