// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cogentcore.org/swatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidKey(t *testing.T) {
	for _, k := range []string{"brand", "brand-2025", "my_palette.v2", "A"} {
		assert.True(t, ValidKey(k), k)
	}
	for _, k := range []string{"", ".hidden", "../up", "a/b", "a b", "ü"} {
		assert.False(t, ValidKey(k), k)
	}
}

func testStore(t *testing.T, s Store) {
	_, ok := s.Load("missing")
	assert.False(t, ok)

	assert.True(t, s.Save("one", []byte("first")))
	v, ok := s.Load("one")
	require.True(t, ok)
	assert.Equal(t, "first", string(v))

	// values are copied in and out
	in := []byte("second")
	assert.True(t, s.Save("one", in))
	in[0] = 'X'
	v, _ = s.Load("one")
	assert.Equal(t, "second", string(v))
	v[0] = 'Y'
	v, _ = s.Load("one")
	assert.Equal(t, "second", string(v))

	assert.False(t, s.Save("../escape", []byte("x")))
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	testStore(t, m)
	m.Save("b", nil)
	m.Save("a", nil)
	assert.Equal(t, []string{"a", "b", "one"}, m.Keys())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Save("c", []byte{byte(i)})
			m.Load("c")
		}()
	}
	wg.Wait()
	_, ok := m.Load("c")
	assert.True(t, ok)
}

func TestDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "palettes")
	d, err := NewDir(dir)
	require.NoError(t, err)

	keys, err := d.Keys()
	assert.NoError(t, err)
	assert.Empty(t, keys)

	testStore(t, d)
	b, err := os.ReadFile(filepath.Join(dir, "one"+Ext))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	d.Save("alpha", []byte("a"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"+Ext), 0o755))
	keys, err = d.Keys()
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "one"}, keys)
}

func TestDefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".config", "swatch", "palettes")), dir)
}

func testPalette() *palette.Palette {
	p := palette.New()
	p.AddSolid("primary", "#3B82F6")
	var gray palette.Shades
	gray.Add(palette.DefaultKey, "#6B7280")
	gray.Add("900", "#111827")
	gray.Add("50", "#F9FAFB")
	p.Add("gray", gray)
	p.AddSolid("accent", "#F59E0B")
	p.Add("empty", palette.Shades{})
	return p
}

func TestPaletteRoundTrip(t *testing.T) {
	m := NewMemory()
	p := testPalette()
	require.NoError(t, SavePalette(m, "brand", p))

	res, err := LoadPalette(m, "brand")
	require.NoError(t, err)
	assert.Equal(t, p.Names(), res.Names())
	for name, e := range p.All() {
		re, ok := res.Get(name)
		require.True(t, ok, name)
		switch e := e.(type) {
		case palette.Solid:
			assert.Equal(t, e, re)
		case palette.Shades:
			rs, ok := re.(palette.Shades)
			require.True(t, ok, name)
			assert.Equal(t, e.Keys(), rs.Keys())
			for k, c := range e.All() {
				rc, _ := rs.Get(k)
				assert.Equal(t, c, rc)
			}
		}
	}

	b, _ := m.Load("brand")
	_, name, err := DecodePalette(b)
	require.NoError(t, err)
	assert.Equal(t, "brand", name)
	assert.Contains(t, string(b), "[[color]]")
}

func TestPaletteErrors(t *testing.T) {
	m := NewMemory()
	_, err := LoadPalette(m, "nothing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, SavePalette(m, "no/slash", testPalette()), ErrSave)

	m.Save("broken", []byte("name = \"broken\"\n[[color]]\nname = \"x\"\nvalue = \"red\"\n"))
	_, err = LoadPalette(m, "broken")
	assert.ErrorIs(t, err, palette.ErrInvalidColor)

	m.Save("garbage", []byte("[[[ not toml"))
	_, err = LoadPalette(m, "garbage")
	assert.Error(t, err)
}
