// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export formats a [palette.Palette] as source text for
// stylesheets, JavaScript themes, Tailwind configurations, JSON, and
// YAML design tokens. Every formatter keeps the order in which colors
// and shades were added to the palette.
package export

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/swatch/palette"
	"cogentcore.org/swatch/shades"
)

// Format is an export format.
type Format int32

const (
	// CSS is CSS custom properties in a :root rule.
	CSS Format = iota

	// SCSS is SCSS variables.
	SCSS

	// React is a JavaScript theme object module.
	React

	// JSON is a JSON object.
	JSON

	// Tailwind is a Tailwind CSS configuration module, with a
	// shade scale for every solid color.
	Tailwind

	// YAML is a YAML design token document.
	YAML

	formatsN
)

var formatNames = [formatsN]string{"css", "scss", "react", "json", "tailwind", "yaml"}

var formatTitles = [formatsN]string{"CSS Variables", "SCSS Variables", "React Theme", "JSON", "Tailwind Config", "YAML Tokens"}

var formatExts = [formatsN]string{".css", ".scss", ".js", ".json", ".js", ".yaml"}

// ErrUnknownFormat is returned by [ParseFormat] for an unknown format name.
var ErrUnknownFormat = errors.New("unknown format")

// FormatsValues returns all of the formats.
func FormatsValues() []Format {
	return []Format{CSS, SCSS, React, JSON, Tailwind, YAML}
}

func (f Format) String() string {
	if f < 0 || f >= formatsN {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Title returns the display title of the format.
func (f Format) Title() string {
	if f < 0 || f >= formatsN {
		return f.String()
	}
	return formatTitles[f]
}

// Ext returns the usual file extension for the format, including the dot.
func (f Format) Ext() string {
	if f < 0 || f >= formatsN {
		return ""
	}
	return formatExts[f]
}

// ParseFormat returns the format with the given name, ignoring letter case.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(s)
	for _, f := range FormatsValues() {
		if strings.EqualFold(s, formatNames[f]) {
			return f, nil
		}
	}
	return CSS, fmt.Errorf("export.ParseFormat: %w: %q", ErrUnknownFormat, s)
}

// DefaultCase returns the default name case for the given format:
// [Kebab] for stylesheets and [Camel] for everything else.
func DefaultCase(f Format) Case {
	switch f {
	case CSS, SCSS:
		return Kebab
	}
	return Camel
}

// Generate returns the given palette in the given format and name case.
func Generate(f Format, p *palette.Palette, c Case) (string, error) {
	switch f {
	case CSS:
		return CSSVariables(p, c), nil
	case SCSS:
		return SCSSVariables(p, c), nil
	case React:
		return ReactTheme(p, c), nil
	case JSON:
		return JSONObject(p, c), nil
	case Tailwind:
		return TailwindConfig(p, c), nil
	case YAML:
		return YAMLTokens(p, c)
	}
	return "", fmt.Errorf("export.Generate: %w: %v", ErrUnknownFormat, f)
}

// variableName returns the variable name of the given shade of a color;
// the [palette.DefaultKey] shade has no suffix.
func variableName(name, shade string) string {
	if shade == palette.DefaultKey {
		return name
	}
	return name + "-" + shade
}

// variables returns one line per color and shade, with the given
// prefix before and suffix after each name.
func variables(p *palette.Palette, c Case, prefix, suffix string) []string {
	var lines []string
	for name, e := range p.All() {
		n := c.Apply(name)
		switch e := e.(type) {
		case palette.Solid:
			lines = append(lines, prefix+n+suffix+string(e)+";")
		case palette.Shades:
			for k, hex := range e.All() {
				lines = append(lines, prefix+variableName(n, k)+suffix+hex+";")
			}
		}
	}
	return lines
}

// CSSVariables returns the palette as CSS custom properties:
//
//	:root {
//	  --primary: #3B82F6;
//	  --gray-500: #6B7280;
//	}
func CSSVariables(p *palette.Palette, c Case) string {
	lines := []string{":root {"}
	lines = append(lines, variables(p, c, "  --", ": ")...)
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// SCSSVariables returns the palette as SCSS variables, one per line,
// such as $primary: #3B82F6;.
func SCSSVariables(p *palette.Palette, c Case) string {
	return strings.Join(variables(p, c, "$", ": "), "\n")
}

// ReactTheme returns the palette as a JavaScript module exporting a
// theme object with a colors property, with 2 space indentation.
func ReactTheme(p *palette.Palette, c Case) string {
	fs := []field{{key: "colors", fields: paletteFields(p, c)}}
	return "export const theme = " + object(fs, objectOptions{indent: "  ", bareKeys: true}) + ";"
}

// JSONObject returns the palette as a JSON object with 2 space indentation.
func JSONObject(p *palette.Palette, c Case) string {
	return object(paletteFields(p, c), objectOptions{indent: "  "})
}

// tailwindFields returns the colors of a Tailwind configuration: nested
// shades as they are, and a [shades.Scale] for each solid color, after
// the solid color itself as the [palette.DefaultKey] shade.
func tailwindFields(p *palette.Palette, c Case) []field {
	fs := make([]field, 0, p.Len())
	for name, e := range p.All() {
		f := field{key: c.Apply(name)}
		switch e := e.(type) {
		case palette.Solid:
			if sc, ok := shades.Generate(string(e)); ok {
				f.fields = shadeFields(sc.Shades(true))
			} else {
				f.fields = []field{{key: palette.DefaultKey, value: string(e)}}
			}
		case palette.Shades:
			f.fields = shadeFields(e)
		}
		fs = append(fs, f)
	}
	return fs
}

// TailwindConfig returns the palette as a Tailwind CSS configuration
// module that extends the theme colors.
func TailwindConfig(p *palette.Palette, c Case) string {
	colors := object(tailwindFields(p, c), objectOptions{indent: strings.Repeat(" ", 8), bareKeys: true})
	colors = strings.ReplaceAll(colors, "\n", "\n  ")
	return "module.exports = {\n" +
		"  theme: {\n" +
		"    extend: {\n" +
		"      colors: " + colors + "\n" +
		"    }\n" +
		"  }\n" +
		"}"
}
