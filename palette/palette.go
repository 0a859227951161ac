// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides [Palette], an ordered set of named colors,
// where each color is either a single hex color ([Solid]) or a nested
// set of labeled shades ([Shades]). The order in which colors and
// shades are added is preserved so that exports are deterministic.
package palette

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"cogentcore.org/swatch/colors"
)

// DefaultKey is the shade key that stands for the color itself;
// exporters omit the shade suffix for it.
const DefaultKey = "DEFAULT"

// ErrInvalidColor is returned when a palette color is not a valid hex color.
var ErrInvalidColor = errors.New("invalid hex color")

// Entry is one named color of a [Palette]: either a [Solid] or [Shades].
type Entry interface {
	isEntry()
}

// Solid is a single hex color.
type Solid string

func (Solid) isEntry() {}

// Shades is an ordered mapping from shade key (such as "500"
// or [DefaultKey]) to hex color. The zero value is empty and ready to use.
type Shades struct {
	om ordered[string]
}

func (Shades) isEntry() {}

// ShadeKey returns the shade key for the given numeric label.
func ShadeKey(label int) string {
	return strconv.Itoa(label)
}

// Add sets the color of the given shade key. An existing key
// keeps its position.
func (s *Shades) Add(key, hex string) {
	s.om.add(key, hex)
}

// Get returns the color of the given shade key.
func (s Shades) Get(key string) (string, bool) {
	return s.om.get(key)
}

// Len returns the number of shades.
func (s Shades) Len() int {
	return s.om.len()
}

// Keys returns the shade keys in order.
func (s Shades) Keys() []string {
	return s.om.keys()
}

// All returns an iterator over the shade keys and colors in order.
func (s Shades) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, kv := range s.om.order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Palette is an ordered set of named colors. The zero value is
// empty and ready to use; it is not safe for concurrent mutation.
type Palette struct {
	om ordered[Entry]
}

// New returns a new empty palette.
func New() *Palette {
	return &Palette{}
}

// Add sets the entry for the given name. An existing name keeps
// its position. Shades are copied, so later changes to s do not
// affect the palette.
func (p *Palette) Add(name string, e Entry) {
	switch sh := e.(type) {
	case Shades:
		e = Shades{om: sh.om.clone()}
	case *Shades:
		if sh == nil {
			e = Shades{}
			break
		}
		e = Shades{om: sh.om.clone()}
	}
	p.om.add(name, e)
}

// AddSolid adds the given hex color under the given name, in its
// canonical form. It returns false, without adding anything, if the
// color is not a valid hex color.
func (p *Palette) AddSolid(name, hex string) bool {
	h, ok := colors.Normalize(hex)
	if !ok {
		return false
	}
	p.Add(name, Solid(h))
	return true
}

// Get returns the entry with the given name.
func (p *Palette) Get(name string) (Entry, bool) {
	return p.om.get(name)
}

// Delete removes the entry with the given name, returning false if
// it is not found.
func (p *Palette) Delete(name string) bool {
	return p.om.remove(name)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return p.om.len()
}

// Names returns the entry names in order.
func (p *Palette) Names() []string {
	return p.om.keys()
}

// All returns an iterator over the names and entries in order.
func (p *Palette) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if p == nil {
			return
		}
		for _, kv := range p.om.order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Validate returns an error naming the first color in the
// palette that is not a valid hex color.
func (p *Palette) Validate() error {
	for name, e := range p.All() {
		switch e := e.(type) {
		case Solid:
			if !colors.IsHex(string(e)) {
				return fmt.Errorf("palette: %w for %q: %q", ErrInvalidColor, name, string(e))
			}
		case Shades:
			for k, c := range e.All() {
				if !colors.IsHex(c) {
					return fmt.Errorf("palette: %w for %q shade %s: %q", ErrInvalidColor, name, k, c)
				}
			}
		}
	}
	return nil
}

// Parse returns a palette from a list of name=color assignments,
// such as "primary=#3B82F6", in order.
func Parse(assignments []string) (*Palette, error) {
	p := New()
	for _, a := range assignments {
		name, hex, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("palette.Parse: expected name=color, got %q", a)
		}
		if !p.AddSolid(name, strings.TrimSpace(hex)) {
			return nil, fmt.Errorf("palette.Parse: %w for %q: %q", ErrInvalidColor, name, hex)
		}
	}
	return p, nil
}
