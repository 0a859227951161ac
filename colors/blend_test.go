// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendHex(t *testing.T) {
	assert.Equal(t, "#95639D", BlendHex([]string{"#EF4444", "#3B82F6"}))
	assert.Equal(t, Black, BlendHex(nil))
	assert.Equal(t, Black, BlendHex([]string{}))
	assert.Equal(t, "#808080", BlendHex([]string{"#FFFFFF", "#000000"}))
	assert.Equal(t, "#555555", BlendHex([]string{"#FFFFFF", "#000000", "#000000"}))
}

func TestBlendHexSingleton(t *testing.T) {
	for _, c := range []string{"#EF4444", "#3B82F6", "#000000", "#FFFFFF", "#123456", "#abcdef"} {
		want, _ := Normalize(c)
		assert.Equal(t, want, BlendHex([]string{c}))
	}
}

func TestBlendHexInvalidCountsAsBlack(t *testing.T) {
	assert.Equal(t, "#808080", BlendHex([]string{"#FFFFFF", "bad"}))
	assert.Equal(t, Black, BlendHex([]string{"bad", "#FFF"}))
}

func ExampleBlendHex() {
	fmt.Println(BlendHex([]string{"#EF4444", "#3B82F6"}))
	// Output: #95639D
}
