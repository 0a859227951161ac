// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/swatch/wcag"
	"github.com/spf13/cobra"
)

func newContrastCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check WCAG contrast between foreground and background colors",
	}
	cmd.AddCommand(newContrastCheckCmd(a), newContrastSuggestCmd(a))
	return cmd
}

func passMark(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func newContrastCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Show the contrast ratio and WCAG compliance of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			r := wcag.Check(cs[0], cs[1])
			p := a.printer(cmd)
			p.printf("foreground  %s\n", p.swatch(r.Foreground))
			p.printf("background  %s\n", p.swatch(r.Background))
			p.printf("ratio       %s (%s)\n", wcag.FormatRatio(r.Ratio), r.Description)
			p.printf("level       %s\n", r.Level)
			p.printf("AA          normal %s, large %s\n", passMark(r.Compliance.AA.Normal), passMark(r.Compliance.AA.Large))
			p.printf("AAA         normal %s, large %s\n", passMark(r.Compliance.AAA.Normal), passMark(r.Compliance.AAA.Large))
			return nil
		},
	}
}

func newContrastSuggestCmd(a *app) *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest accessible foreground colors for a background",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			fg, bg := cs[0], cs[1]
			if !cmd.Flags().Changed("target") {
				target = a.cfg.Target
			}
			p := a.printer(cmd)
			res := wcag.SuggestAccessibleColor(fg, bg, target)
			ratio := wcag.ContrastRatio(res, bg)
			note := ""
			if ratio < target {
				note = " (target not reached)"
			}
			p.printf("closest  %s  %s%s\n", p.swatch(res), wcag.FormatRatio(ratio), note)
			for _, s := range wcag.Suggestions(fg, bg) {
				p.printf("%-4s     %s  %s  %s\n", s.Level, p.swatch(s.Color), wcag.FormatRatio(s.Ratio), s.Label)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&target, "target", wcag.DefaultTarget, "target contrast ratio")
	return cmd
}
