// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/colors/hsl"
	"cogentcore.org/swatch/wcag"
	"github.com/muesli/termenv"
)

// printer writes command output, with color swatches
// if the output is a terminal that supports colors.
type printer struct {
	w     io.Writer
	out   *termenv.Output
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	out := termenv.NewOutput(w)
	return &printer{w: w, out: out, color: color && out.Profile != termenv.Ascii}
}

// swatch returns a small block of the given color followed by the
// color, or just the color if swatches are off.
func (p *printer) swatch(hex string) string {
	if !p.color || !colors.IsHex(hex) {
		return hex
	}
	fg := colors.White
	if wcag.ContrastRatio(colors.Black, hex) > wcag.ContrastRatio(colors.White, hex) {
		fg = colors.Black
	}
	block := p.out.String("  ").Background(p.out.Color(hex)).String()
	label := p.out.String(hex).Foreground(p.out.Color(fg)).Background(p.out.Color(hex)).String()
	return block + " " + label
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Details are the display strings of a color in each color space.
type Details struct {
	Hex string
	RGB string
	HSL string
}

// colorDetails returns the [Details] of the given hex color,
// and false if it is not a valid hex color.
func colorDetails(hex string) (Details, bool) {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return Details{}, false
	}
	return Details{
		Hex: colors.RGBToHex(c.R, c.G, c.B),
		RGB: colors.RGBString(c),
		HSL: hsl.FromRGB(c.R, c.G, c.B).String(),
	}, true
}
