// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"strings"

	"cogentcore.org/swatch/logx"
	"cogentcore.org/swatch/palette"
)

// field is one key of an ordered object: either a string
// value, or a nested object if fields is non-nil.
type field struct {
	key    string
	value  string
	fields []field
}

// objectOptions are the options for writing an ordered object.
type objectOptions struct {

	// indent is the indentation of each nesting level.
	indent string

	// bareKeys writes keys without quotes, as in a JavaScript object literal.
	bareKeys bool
}

// shadeFields returns the fields of the given shades, in order.
func shadeFields(sh palette.Shades) []field {
	fs := make([]field, 0, sh.Len())
	for k, c := range sh.All() {
		fs = append(fs, field{key: k, value: c})
	}
	return fs
}

// paletteFields returns the fields of the given palette, in order,
// with names in the given case. Shade keys are not changed.
func paletteFields(p *palette.Palette, c Case) []field {
	fs := make([]field, 0, p.Len())
	for name, e := range p.All() {
		f := field{key: c.Apply(name)}
		switch e := e.(type) {
		case palette.Solid:
			f.value = string(e)
		case palette.Shades:
			f.fields = shadeFields(e)
		}
		fs = append(fs, f)
	}
	return fs
}

// quote returns s as a JSON string, without HTML escaping.
func quote(s string) string {
	var b bytes.Buffer
	e := json.NewEncoder(&b)
	e.SetEscapeHTML(false)
	logx.Log(e.Encode(s))
	return strings.TrimSuffix(b.String(), "\n")
}

// writeObject writes the given fields as a multi-line object, in the
// layout of JSON.stringify with an indent, starting at the given depth.
// An empty object is written as {}.
func writeObject(b *strings.Builder, fs []field, o objectOptions, depth int) {
	if len(fs) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	in := strings.Repeat(o.indent, depth+1)
	for i, f := range fs {
		b.WriteString(in)
		if o.bareKeys {
			b.WriteString(f.key)
		} else {
			b.WriteString(quote(f.key))
		}
		b.WriteString(": ")
		if f.fields != nil {
			writeObject(b, f.fields, o, depth+1)
		} else {
			b.WriteString(quote(f.value))
		}
		if i < len(fs)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(o.indent, depth))
	b.WriteByte('}')
}

// object returns the given fields written with [writeObject] at depth 0.
func object(fs []field, o objectOptions) string {
	var b strings.Builder
	writeObject(&b, fs, o, 0)
	return b.String()
}
