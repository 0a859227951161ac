// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/swatch/export"
	"cogentcore.org/swatch/palette"
	"cogentcore.org/swatch/shades"
	"cogentcore.org/swatch/store"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	format   string
	caseName string
	scale    []string
	save     string
	load     string
	out      string
	list     bool
}

func newExportCmd(a *app) *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export [name=color]...",
		Short: "Export a palette as CSS, SCSS, React, JSON, Tailwind, or YAML",
		Long: `Export a palette of named colors as code.

Colors are given as name=color arguments, such as primary=#3B82F6, and
are exported in the given order. Colors named with --scale are exported
as a 50-900 shade scale. A palette can be saved with --save and loaded
again with --load; arguments are added to a loaded palette.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "export format: css, scss, react, json, tailwind, or yaml (default from config)")
	cmd.Flags().StringVarP(&f.caseName, "case", "c", "", "name case: kebab, camel, or snake (default depends on the format)")
	cmd.Flags().StringSliceVar(&f.scale, "scale", nil, "names of colors to export as a shade scale")
	cmd.Flags().StringVar(&f.save, "save", "", "save the palette under the given name")
	cmd.Flags().StringVar(&f.load, "load", "", "start from the saved palette with the given name")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write to the given file instead of standard output")
	cmd.Flags().BoolVar(&f.list, "list", false, "list the saved palettes")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, f *exportFlags, args []string) error {
	var st *store.Dir
	if f.list || f.save != "" || f.load != "" {
		d, err := a.cfg.paletteStore()
		if err != nil {
			return err
		}
		st = d
	}
	if f.list {
		keys, err := st.Keys()
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	}

	p := palette.New()
	if f.load != "" {
		lp, err := store.LoadPalette(st, f.load)
		if err != nil {
			return err
		}
		p = lp
	}
	ap, err := palette.Parse(args)
	if err != nil {
		return err
	}
	for name, e := range ap.All() {
		p.Add(name, e)
	}
	if p.Len() == 0 {
		return errors.New("no colors to export: give name=color arguments or --load")
	}
	for _, name := range f.scale {
		e, ok := p.Get(name)
		if !ok {
			return fmt.Errorf("--scale: no color named %q", name)
		}
		if s, ok := e.(palette.Solid); ok {
			sc, _ := shades.Generate(string(s))
			p.Add(name, sc.Shades(true))
		}
	}

	fname := f.format
	if fname == "" {
		fname = a.cfg.Format
	}
	format, err := export.ParseFormat(fname)
	if err != nil {
		return err
	}
	c := export.DefaultCase(format)
	cname := f.caseName
	if cname == "" {
		cname = a.cfg.Case
	}
	if cname != "" {
		c, err = export.ParseCase(cname)
		if err != nil {
			return err
		}
	}
	code, err := export.Generate(format, p, c)
	if err != nil {
		return err
	}

	if f.save != "" {
		if err := store.SavePalette(st, f.save, p); err != nil {
			return err
		}
		slog.Info("saved palette", "name", f.save, "dir", st.Path)
	}
	if f.out != "" {
		if err := os.WriteFile(f.out, []byte(code+"\n"), 0o644); err != nil {
			return err
		}
		slog.Info("wrote export", "format", format, "file", f.out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
