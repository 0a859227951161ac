// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/colors/gradient"
	"cogentcore.org/swatch/harmony"
	"cogentcore.org/swatch/shades"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Show colors in hex, RGB, and HSL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			for _, s := range args {
				d, ok := colorDetails(s)
				if !ok {
					return fmt.Errorf("invalid hex color %q (expected #RRGGBB)", s)
				}
				p.printf("%s  %s  %s\n", p.swatch(d.Hex), d.RGB, d.HSL)
			}
			return nil
		},
	}
}

func newBlendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blend <color> <color>...",
		Short: fmt.Sprintf("Blend %d to %d colors by averaging them", colors.MinBlend, colors.MaxBlend),
		Args:  cobra.RangeArgs(colors.MinBlend, colors.MaxBlend),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			p.println(p.swatch(colors.BlendHex(cs)))
			return nil
		},
	}
}

func newGradientCmd(a *app) *cobra.Command {
	var kind string
	var angle int
	cmd := &cobra.Command{
		Use:   "gradient <color> <color>...",
		Short: "Build a CSS gradient from color stops",
		Args:  cobra.RangeArgs(gradient.MinStops, gradient.MaxStops),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := gradient.ParseKind(kind)
			if err != nil {
				return err
			}
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			a.printer(cmd).println(gradient.Background(k, angle, cs))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "linear", "gradient kind (linear or radial)")
	cmd.Flags().IntVar(&angle, "angle", gradient.DefaultAngle, "angle in degrees of a linear gradient")
	return cmd
}

func newHarmonyCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Generate color harmonies from a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sets []harmony.Set
			if kind == "" || kind == "all" {
				all, ok := harmony.All(args[0])
				if !ok {
					return fmt.Errorf("invalid hex color %q (expected #RRGGBB)", args[0])
				}
				sets = all
			} else {
				k, err := harmony.ParseKind(kind)
				if err != nil {
					return err
				}
				s, ok := harmony.Generate(k, args[0])
				if !ok {
					return fmt.Errorf("invalid hex color %q (expected #RRGGBB)", args[0])
				}
				sets = []harmony.Set{s}
			}
			p := a.printer(cmd)
			for i, s := range sets {
				if i > 0 {
					p.println()
				}
				p.printf("%s: %s\n", s.Title, s.Description)
				for j, c := range s.Colors {
					p.printf("  %-9s %s\n", s.Labels[j], p.swatch(c))
				}
			}
			return nil
		},
	}
	names := make([]string, 0, len(harmony.KindsValues()))
	for _, k := range harmony.KindsValues() {
		names = append(names, k.String())
	}
	cmd.Flags().StringVar(&kind, "kind", "all", "harmony kind: all, "+strings.Join(names, ", "))
	return cmd
}

func newShadesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shades <color>",
		Short: "Generate a 50-900 shade scale from a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := shades.Generate(args[0])
			if !ok {
				return fmt.Errorf("invalid hex color %q (expected #RRGGBB)", args[0])
			}
			p := a.printer(cmd)
			for l, c := range s.All() {
				p.printf("%3d  %s\n", l, p.swatch(c))
			}
			return nil
		},
	}
}
