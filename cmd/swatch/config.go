// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"cogentcore.org/swatch/cli"
	"cogentcore.org/swatch/export"
	"cogentcore.org/swatch/extract"
	"cogentcore.org/swatch/store"
	"github.com/go-playground/validator/v10"
)

// Config is the swatch configuration, read from a TOML file.
// Command line flags override it.
type Config struct {

	// Format is the default export format.
	Format string `toml:"format" default:"css" validate:"format"`

	// Case is the name case for exports; empty means the
	// default case of the export format.
	Case string `toml:"case" validate:"omitempty,namecase"`

	// Target is the default target contrast ratio for suggestions.
	Target float64 `toml:"target" default:"4.5" validate:"gte=1,lte=21"`

	// Stride is the pixel sampling stride for image color extraction,
	// at most the number of pixels in a downscaled image.
	Stride int `toml:"stride" default:"10" validate:"gte=0,lte=40000"`

	// StoreDir is the directory of saved palettes; empty
	// means ~/.config/swatch/palettes.
	StoreDir string `toml:"store_dir"`

	// Color is whether to show color swatches on terminals that support them.
	Color bool `toml:"color" default:"true"`
}

// loadConfig returns the config with defaults, updated from the given
// file. If explicit is false, a missing file is not an error.
func loadConfig(file string, explicit bool) (*Config, error) {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file == "" {
		return cfg, nil
	}
	err := cli.Open(cfg, file)
	if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, err
	}
	if err := configValidator().Struct(cfg); err != nil {
		return nil, validationError(file, err)
	}
	if cfg.Stride < 1 {
		cfg.Stride = extract.DefaultStride
	}
	return cfg, nil
}

// paletteStore returns the palette store of the config.
func (c *Config) paletteStore() (*store.Dir, error) {
	dir := c.StoreDir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return store.NewDir(dir)
}

var configValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		_, err := export.ParseFormat(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("namecase", func(fl validator.FieldLevel) bool {
		_, err := export.ParseCase(fl.Field().String())
		return err == nil
	})
	return v
})

// validationError returns an error naming the config
// key of the first failed validation.
func validationError(file string, err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("config %s: %w", file, err)
	}
	fe := ves[0]
	return fmt.Errorf("config %s: invalid %s %v (failed %q)", file, strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
}
