// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shades

import (
	"testing"

	"cogentcore.org/swatch/colors/hsl"
	"cogentcore.org/swatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColors = []string{"#3B82F6", "#9333EA", "#F59E0B", "#10B981", "#EF4444", "#6B7280", "#000000", "#FFFFFF", "#FEF2F2", "#0A0A0A"}

func TestBaseIsIdentity(t *testing.T) {
	for _, c := range testColors {
		s, ok := Generate(c)
		require.True(t, ok)
		got, ok := s.Get(500)
		require.True(t, ok)
		assert.Equal(t, c, got)
		assert.Equal(t, c, s.Base)
	}
	s, ok := Generate("3b82f6")
	require.True(t, ok)
	got, _ := s.Get(500)
	assert.Equal(t, "#3B82F6", got)
}

func TestInvalid(t *testing.T) {
	_, ok := Generate("#3B82F")
	assert.False(t, ok)
	var s Scale
	_, ok = s.Get(500)
	assert.False(t, ok)
	s, _ = Generate("#3B82F6")
	_, ok = s.Get(550)
	assert.False(t, ok)
}

func TestLightnessCurve(t *testing.T) {
	type data struct {
		label, base, want int
	}
	tests := []data{
		{50, 60, 95}, {100, 60, 90}, {200, 60, 80}, {300, 60, 70}, {400, 60, 60},
		{500, 60, 60}, {600, 60, 50}, {700, 60, 40}, {800, 60, 30}, {900, 60, 20},
		{600, 45, 40}, {700, 45, 30}, {800, 45, 20}, {900, 45, 12},
		{400, 97, 97}, {50, 97, 97},
		{600, 20, 20}, {900, 20, 12}, {900, 5, 5},
	}
	for i, test := range tests {
		res := lightness(test.label, test.base)
		if res != test.want {
			t.Errorf("%d: expected %d for shade %d of lightness %d but got %d", i, test.want, test.label, test.base, res)
		}
	}
}

func TestLightnessMonotonic(t *testing.T) {
	for base := 0; base <= 100; base++ {
		prev := 101
		for _, label := range Labels {
			l := lightness(label, base)
			assert.LessOrEqual(t, l, prev, "shade %d of lightness %d", label, base)
			assert.GreaterOrEqual(t, l, 0)
			prev = l
		}
		assert.Equal(t, base, lightness(500, base))
	}
}

func TestSaturation(t *testing.T) {
	assert.Equal(t, 68.5, saturation(50, 91))
	assert.Equal(t, 86.0, saturation(400, 91))
	assert.Equal(t, 91.0, saturation(500, 91))
	assert.Equal(t, 91.0, saturation(900, 91))
	// floor of 70% of the base saturation
	assert.InDelta(t, 7.0, saturation(50, 10), 1e-9)
	assert.Equal(t, 0.0, saturation(50, 0))
}

func TestGeneratedLightness(t *testing.T) {
	for _, c := range testColors {
		s, _ := Generate(c)
		base, _ := hsl.FromHex(c)
		for label, hex := range s.All() {
			h, ok := hsl.FromHex(hex)
			require.True(t, ok)
			assert.InDelta(t, lightness(label, base.L), h.L, 1, "shade %d of %s", label, c)
		}
	}
}

func TestScaleShades(t *testing.T) {
	s, _ := Generate("#3B82F6")
	sh := s.Shades(true)
	assert.Equal(t, []string{palette.DefaultKey, "50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}, sh.Keys())
	def, _ := sh.Get(palette.DefaultKey)
	assert.Equal(t, "#3B82F6", def)

	sh = s.Shades(false)
	assert.Equal(t, 10, sh.Len())
	assert.Len(t, s.Colors(), 10)
	assert.Equal(t, s.Colors()[5], s.Base)
}
