// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"
	"strings"

	"cogentcore.org/swatch/palette"
	"gopkg.in/yaml.v3"
)

func yamlKey(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlColor(hex string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hex, Style: yaml.DoubleQuotedStyle}
}

func yamlMapping(fs []field) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fs {
		v := yamlColor(f.value)
		if f.fields != nil {
			v = yamlMapping(f.fields)
		}
		m.Content = append(m.Content, yamlKey(f.key), v)
	}
	return m
}

// YAMLTokens returns the palette as a YAML document with a colors
// mapping, with 2 space indentation. Shade keys are always strings.
func YAMLTokens(p *palette.Palette, c Case) (string, error) {
	root := yamlMapping([]field{{key: "colors", fields: paletteFields(p, c)}})
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("export.YAMLTokens: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("export.YAMLTokens: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
