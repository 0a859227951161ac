// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"strings"
	"testing"

	"cogentcore.org/swatch/palette"
	"cogentcore.org/swatch/shades"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testPalette() *palette.Palette {
	p := palette.New()
	p.AddSolid("primary", "#3B82F6")
	p.AddSolid("textColor", "#1F2937")
	var gray palette.Shades
	gray.Add(palette.DefaultKey, "#6B7280")
	gray.Add("50", "#F9FAFB")
	gray.Add("900", "#111827")
	p.Add("gray", gray)
	return p
}

func TestCase(t *testing.T) {
	type data struct {
		c          Case
		name, want string
	}
	tests := []data{
		{Kebab, "primary", "primary"},
		{Kebab, "textColor", "text-color"},
		{Kebab, "text_color", "text-color"},
		{Kebab, "Text Color", "text-color"},
		{Camel, "text-color", "textColor"},
		{Camel, "text_color", "textColor"},
		{Camel, "textColor", "textColor"},
		{Snake, "textColor", "text_color"},
		{Snake, "text-color", "text_color"},
	}
	for i, test := range tests {
		res := test.c.Apply(test.name)
		if res != test.want {
			t.Errorf("%d: expected %q for %v of %q but got %q", i, test.want, test.c, test.name, res)
		}
	}

	for _, s := range []string{"camelCase", "camel", "CAMEL"} {
		c, err := ParseCase(s)
		assert.NoError(t, err)
		assert.Equal(t, Camel, c)
	}
	c, err := ParseCase("snake_case")
	assert.NoError(t, err)
	assert.Equal(t, Snake, c)
	_, err = ParseCase("title")
	assert.ErrorIs(t, err, ErrUnknownCase)
	assert.Equal(t, "kebab-case", Kebab.String())
}

func TestFormat(t *testing.T) {
	for _, f := range FormatsValues() {
		pf, err := ParseFormat(strings.ToUpper(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, pf)
		assert.NotEmpty(t, f.Ext())
		assert.NotEmpty(t, f.Title())
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = Generate(Format(42), palette.New(), Kebab)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Equal(t, Kebab, DefaultCase(CSS))
	assert.Equal(t, Kebab, DefaultCase(SCSS))
	assert.Equal(t, Camel, DefaultCase(JSON))
	assert.Equal(t, Camel, DefaultCase(Tailwind))
}

func TestCSSVariables(t *testing.T) {
	want := `:root {
  --primary: #3B82F6;
  --text-color: #1F2937;
  --gray: #6B7280;
  --gray-50: #F9FAFB;
  --gray-900: #111827;
}`
	assert.Equal(t, want, CSSVariables(testPalette(), Kebab))
	assert.Equal(t, ":root {\n}", CSSVariables(palette.New(), Kebab))
}

func TestSCSSVariables(t *testing.T) {
	want := `$primary: #3B82F6;
$text_color: #1F2937;
$gray: #6B7280;
$gray-50: #F9FAFB;
$gray-900: #111827;`
	assert.Equal(t, want, SCSSVariables(testPalette(), Snake))
	assert.Equal(t, "", SCSSVariables(palette.New(), Kebab))
}

func TestJSONObject(t *testing.T) {
	want := `{
  "primary": "#3B82F6",
  "textColor": "#1F2937",
  "gray": {
    "DEFAULT": "#6B7280",
    "50": "#F9FAFB",
    "900": "#111827"
  }
}`
	assert.Equal(t, want, JSONObject(testPalette(), Camel))
	assert.Equal(t, "{}", JSONObject(palette.New(), Camel))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"#3B82F6"`, quote("#3B82F6"))
	assert.Equal(t, `"a<b>&\"c\""`, quote(`a<b>&"c"`))
}

func TestReactTheme(t *testing.T) {
	want := `export const theme = {
  colors: {
    primary: "#3B82F6",
    textColor: "#1F2937",
    gray: {
      DEFAULT: "#6B7280",
      50: "#F9FAFB",
      900: "#111827"
    }
  }
};`
	assert.Equal(t, want, ReactTheme(testPalette(), Camel))
}

func TestTailwindConfig(t *testing.T) {
	p := palette.New()
	var gray palette.Shades
	gray.Add(palette.DefaultKey, "#6B7280")
	gray.Add("50", "#F9FAFB")
	p.Add("gray", gray)

	want := "module.exports = {\n" +
		"  theme: {\n" +
		"    extend: {\n" +
		"      colors: {\n" +
		"          gray: {\n" +
		"                  DEFAULT: \"#6B7280\",\n" +
		"                  50: \"#F9FAFB\"\n" +
		"          }\n" +
		"  }\n" +
		"    }\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, TailwindConfig(p, Camel))

	// solid colors are expanded to a full scale, after DEFAULT
	res := TailwindConfig(testPalette(), Camel)
	sc, _ := shades.Generate("#3B82F6")
	var b strings.Builder
	b.WriteString("          primary: {\n")
	b.WriteString("                  DEFAULT: \"#3B82F6\",\n")
	for l, c := range sc.All() {
		fmt.Fprintf(&b, "                  %d: %q", l, c)
		if l != 900 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("          },\n")
	assert.Contains(t, res, b.String())
	assert.Less(t, strings.Index(res, "primary:"), strings.Index(res, "textColor:"))
	assert.Less(t, strings.Index(res, "textColor:"), strings.Index(res, "gray:"))
	assert.Equal(t, 3, strings.Count(res, "DEFAULT:"))
}

func TestYAMLTokens(t *testing.T) {
	res, err := YAMLTokens(testPalette(), Kebab)
	require.NoError(t, err)
	want := `colors:
  primary: "#3B82F6"
  text-color: "#1F2937"
  gray:
    DEFAULT: "#6B7280"
    "50": "#F9FAFB"
    "900": "#111827"`
	assert.Equal(t, want, res)

	var m map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res), &m))
	assert.Equal(t, "#3B82F6", m["colors"]["primary"])
	assert.Equal(t, map[string]any{"DEFAULT": "#6B7280", "50": "#F9FAFB", "900": "#111827"}, m["colors"]["gray"])
}

func TestGenerateAll(t *testing.T) {
	p := testPalette()
	for _, f := range FormatsValues() {
		res, err := Generate(f, p, DefaultCase(f))
		require.NoError(t, err)
		assert.Contains(t, res, "#3B82F6", "%v", f)
		assert.Contains(t, res, "#111827", "%v", f)
	}
}

func ExampleCSSVariables() {
	p := palette.New()
	p.AddSolid("brandBlue", "#3b82f6")
	p.AddSolid("danger", "#EF4444")
	fmt.Println(CSSVariables(p, Kebab))
	// Output:
	// :root {
	//   --brand-blue: #3B82F6;
	//   --danger: #EF4444;
	// }
}
