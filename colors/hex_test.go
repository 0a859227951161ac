// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToRGB(t *testing.T) {
	type data struct {
		hex  string
		want color.RGBA
		ok   bool
	}
	tests := []data{
		{"#EF4444", color.RGBA{239, 68, 68, 255}, true},
		{"ef4444", color.RGBA{239, 68, 68, 255}, true},
		{"#3b82F6", color.RGBA{59, 130, 246, 255}, true},
		{"#000000", color.RGBA{0, 0, 0, 255}, true},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, true},
		{"#FFF", color.RGBA{}, false},
		{"FFF", color.RGBA{}, false},
		{"#GGGGGG", color.RGBA{}, false},
		{"##FFFFFF", color.RGBA{}, false},
		{"#FFFFFFFF", color.RGBA{}, false},
		{" #FFFFFF", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"#", color.RGBA{}, false},
	}
	for i, test := range tests {
		c, ok := HexToRGB(test.hex)
		if ok != test.ok {
			t.Errorf("%d: expected ok %v for %q but got %v", i, test.ok, test.hex, ok)
		}
		if c != test.want {
			t.Errorf("%d: expected %v for %q but got %v", i, test.want, test.hex, c)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#EF4444", RGBToHex(239, 68, 68))
	assert.Equal(t, "#000000", RGBToHex(0, 0, 0))
	assert.Equal(t, "#0A0B0C", RGBToHex(10, 11, 12))
	assert.Len(t, RGBToHex(1, 2, 3), 7)
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				hex := RGBToHex(uint8(r), uint8(g), uint8(b))
				c, ok := HexToRGB(hex)
				if !ok || c != (color.RGBA{uint8(r), uint8(g), uint8(b), 255}) {
					t.Fatalf("round trip of (%d, %d, %d) through %s gave %v, %v", r, g, b, hex, c, ok)
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	h, ok := Normalize("abcdef")
	assert.True(t, ok)
	assert.Equal(t, "#ABCDEF", h)

	_, ok = Normalize("#abc")
	assert.False(t, ok)
	assert.True(t, IsHex("#a1B2c3"))
	assert.False(t, IsHex("#a1B2c"))
}

func TestMustHexToRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, MustHexToRGB("#010203"))
	assert.Panics(t, func() { MustHexToRGB("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF8000", AsHex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "#102030", AsHex(color.NRGBA{16, 32, 48, 255}))
	assert.Equal(t, Black, AsHex(nil))
}

func TestClampChannel(t *testing.T) {
	assert.Equal(t, uint8(0), ClampChannel(-3))
	assert.Equal(t, uint8(255), ClampChannel(300))
	assert.Equal(t, uint8(128), ClampChannel(127.5))
	assert.Equal(t, uint8(127), ClampChannel(127.4))
}

func ExampleRGBString() {
	fmt.Println(RGBString(MustHexToRGB("#3B82F6")))
	// Output: rgb(59, 130, 246)
}
