// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/swatch/cli"
	"cogentcore.org/swatch/colors"
	"cogentcore.org/swatch/logx"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands.
type app struct {
	configFile string
	verbose    bool
	debug      bool
	quiet      bool
	noColor    bool

	cfg *Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch is a color design toolkit for the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ~/.config/swatch/config.toml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "show informational log messages")
	cmd.PersistentFlags().BoolVar(&a.debug, "vv", false, "show debug log messages")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only show error log messages")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "do not show color swatches")

	cmd.AddCommand(
		newConvertCmd(a),
		newBlendCmd(a),
		newGradientCmd(a),
		newHarmonyCmd(a),
		newShadesCmd(a),
		newContrastCmd(a),
		newExtractCmd(a),
		newExportCmd(a),
	)
	return cmd
}

// init sets up logging and loads the config.
func (a *app) init(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(a.debug, a.verbose, a.quiet)
	logx.SetDefaultLogger(cmd.ErrOrStderr())

	file, explicit := a.configFile, a.configFile != ""
	if !explicit {
		file = logx.Log1(cli.DefaultConfigFile())
	}
	cfg, err := loadConfig(file, explicit)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Color = false
	}
	a.cfg = cfg
	return nil
}

// printer returns a printer for the output of the given command.
func (a *app) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), a.cfg.Color)
}

// parseColors returns the given hex colors in canonical form,
// or an error naming the first invalid one.
func parseColors(args []string) ([]string, error) {
	res := make([]string, len(args))
	for i, s := range args {
		h, ok := colors.Normalize(s)
		if !ok {
			return nil, fmt.Errorf("invalid hex color %q (expected #RRGGBB)", s)
		}
		res[i] = h
	}
	return res, nil
}
