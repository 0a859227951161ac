// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSS(t *testing.T) {
	assert.Equal(t, "linear-gradient(90deg, #8B5CF6, #EC4899)", CSS(Linear, 90, []string{"#8B5CF6", "#EC4899"}))
	assert.Equal(t, "linear-gradient(-45deg, #000000, #FFFFFF, #FF0000)", CSS(Linear, -45, []string{"#000000", "#FFFFFF", "#FF0000"}))
	assert.Equal(t, "radial-gradient(circle, #8B5CF6, #EC4899)", CSS(Radial, 90, []string{"#8B5CF6", "#EC4899"}))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Radial")
	assert.NoError(t, err)
	assert.Equal(t, Radial, k)

	k, err = ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, Linear, k)

	_, err = ParseKind("conic")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	assert.Equal(t, "radial", Radial.String())
	assert.Equal(t, "linear", Linear.String())
}

func ExampleBackground() {
	fmt.Println(Background(Radial, 0, []string{"#8B5CF6", "#EC4899"}))
	// Output: background: radial-gradient(circle, #8B5CF6, #EC4899);
}
