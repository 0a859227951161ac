// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// DefaultConfigFile returns the default config file path,
// ~/.config/swatch/config.toml.
func DefaultConfigFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "swatch", "config.toml"), nil
}

// Open reads the given TOML config file into the given config struct
// pointer, overwriting only the fields that are set in the file. A
// leading ~ in the path is expanded to the home directory. Keys in
// the file that do not match any field are logged as warnings.
// A missing file results in an error satisfying errors.Is(err, fs.ErrNotExist).
func Open(cfg any, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return fmt.Errorf("cli.Open: %w", err)
	}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("cli.Open: %s: %w", path, err)
	}
	for _, k := range meta.Undecoded() {
		slog.Warn("cli.Open: unknown config key", "file", path, "key", k.String())
	}
	slog.Debug("cli.Open: loaded config", "file", path)
	return nil
}
