// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swatch is a command line color design toolkit: it converts,
// blends, and harmonizes colors, generates shade scales and gradients,
// checks WCAG contrast, extracts colors from images, and exports
// palettes as code.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "swatch:", err)
		os.Exit(1)
	}
}
