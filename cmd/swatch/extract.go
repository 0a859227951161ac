// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/swatch/extract"
	"github.com/spf13/cobra"
)

func newExtractCmd(a *app) *cobra.Command {
	var stride int
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant color and a palette from an image file",
		Long:  "Extract the dominant color and a palette from a png, jpeg, gif, bmp, tiff, or webp image of at most 5 MB.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("stride") {
				stride = a.cfg.Stride
			}
			res, err := extract.File(args[0], stride)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			p.printf("dominant  %s\n", p.swatch(res.Dominant))
			for _, c := range res.Palette {
				p.printf("palette   %s\n", p.swatch(c))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&stride, "stride", extract.DefaultStride, "count every n-th pixel")
	return cmd
}
