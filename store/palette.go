// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"errors"
	"fmt"

	"cogentcore.org/swatch/palette"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrNotFound is returned by [LoadPalette] when
	// there is no palette with the given name.
	ErrNotFound = errors.New("palette not found")

	// ErrSave is returned by [SavePalette] when the
	// store could not save the palette.
	ErrSave = errors.New("palette not saved")
)

// paletteDoc is the TOML document of a saved palette. Colors and
// shades are arrays of tables so that their order is kept.
type paletteDoc struct {
	Name   string     `toml:"name"`
	Colors []colorDoc `toml:"color"`
}

type colorDoc struct {
	Name   string     `toml:"name"`
	Value  string     `toml:"value,omitempty"`
	Scale  bool       `toml:"scale,omitempty"`
	Shades []shadeDoc `toml:"shade,omitempty"`
}

type shadeDoc struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// EncodePalette returns the TOML encoding of the given palette.
func EncodePalette(name string, p *palette.Palette) ([]byte, error) {
	doc := paletteDoc{Name: name}
	for n, e := range p.All() {
		cd := colorDoc{Name: n}
		switch e := e.(type) {
		case palette.Solid:
			cd.Value = string(e)
		case palette.Shades:
			cd.Scale = true
			for k, c := range e.All() {
				cd.Shades = append(cd.Shades, shadeDoc{Key: k, Value: c})
			}
		}
		doc.Colors = append(doc.Colors, cd)
	}
	b, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("store.EncodePalette: %w", err)
	}
	return b, nil
}

// DecodePalette returns the palette in the given TOML encoding,
// and the name it was saved with. The palette colors are validated.
func DecodePalette(data []byte) (*palette.Palette, string, error) {
	var doc paletteDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("store.DecodePalette: %w", err)
	}
	p := palette.New()
	for _, cd := range doc.Colors {
		if !cd.Scale && cd.Shades == nil {
			p.Add(cd.Name, palette.Solid(cd.Value))
			continue
		}
		var sh palette.Shades
		for _, s := range cd.Shades {
			sh.Add(s.Key, s.Value)
		}
		p.Add(cd.Name, sh)
	}
	if err := p.Validate(); err != nil {
		return nil, "", fmt.Errorf("store.DecodePalette: %w", err)
	}
	return p, doc.Name, nil
}

// SavePalette saves the given palette in the given store under the given name.
func SavePalette(s Store, name string, p *palette.Palette) error {
	if !ValidKey(name) {
		return fmt.Errorf("store.SavePalette: %w: invalid name %q", ErrSave, name)
	}
	b, err := EncodePalette(name, p)
	if err != nil {
		return err
	}
	if !s.Save(name, b) {
		return fmt.Errorf("store.SavePalette: %w: %q", ErrSave, name)
	}
	return nil
}

// LoadPalette loads the palette saved under the given name in the given store.
func LoadPalette(s Store, name string) (*palette.Palette, error) {
	b, ok := s.Load(name)
	if !ok {
		return nil, fmt.Errorf("store.LoadPalette: %w: %q", ErrNotFound, name)
	}
	p, _, err := DecodePalette(b)
	return p, err
}
