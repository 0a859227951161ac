// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store provides a simple key-value [Store] for saved palettes,
// with an in-memory implementation and one that keeps one file per key
// in a directory.
package store

import (
	"bytes"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
)

// Store is a key-value store of byte values.
type Store interface {

	// Load returns the value saved under the given key,
	// and false if there is none.
	Load(key string) ([]byte, bool)

	// Save saves the given value under the given key,
	// returning false if it could not be saved.
	Save(key string, value []byte) bool
}

// ValidKey returns whether the given key can be used with every store:
// it must be non-empty and only contain letters, digits, '-', '_', and '.',
// and not start with '.'.
func ValidKey(key string) bool {
	if key == "" || key[0] == '.' {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// Memory is a [Store] that keeps values in memory.
// It is safe for concurrent use. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns a new empty [Memory] store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return bytes.Clone(v), ok
}

func (m *Memory) Save(key string, value []byte) bool {
	if !ValidKey(key) {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string][]byte{}
	}
	m.values[key] = bytes.Clone(value)
	return true
}

// Keys returns the saved keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.values))
}

// Ext is the file extension of the files of a [Dir] store.
const Ext = ".toml"

// Dir is a [Store] that saves each value in a file named after its
// key, with the [Ext] extension, in a directory. The directory is
// created when the first value is saved.
type Dir struct {
	Path string
}

// NewDir returns a new [Dir] store for the given directory.
// A leading ~ in the path is expanded to the home directory.
func NewDir(path string) (*Dir, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	return &Dir{Path: p}, nil
}

// DefaultDir returns the default palette directory,
// ~/.config/swatch/palettes.
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "swatch", "palettes"), nil
}

func (d *Dir) file(key string) string {
	return filepath.Join(d.Path, key+Ext)
}

func (d *Dir) Load(key string) ([]byte, bool) {
	if !ValidKey(key) {
		return nil, false
	}
	b, err := os.ReadFile(d.file(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("store.Dir.Load", "key", key, "err", err)
		}
		return nil, false
	}
	return b, true
}

func (d *Dir) Save(key string, value []byte) bool {
	if !ValidKey(key) {
		slog.Warn("store.Dir.Save: invalid key", "key", key)
		return false
	}
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		slog.Warn("store.Dir.Save", "key", key, "err", err)
		return false
	}
	if err := os.WriteFile(d.file(key), value, 0o644); err != nil {
		slog.Warn("store.Dir.Save", "key", key, "err", err)
		return false
	}
	return true
}

// Keys returns the keys of the saved values in sorted order.
func (d *Dir) Keys() ([]string, error) {
	ents, err := os.ReadDir(d.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range ents {
		if k, ok := strings.CutSuffix(e.Name(), Ext); ok && !e.IsDir() && ValidKey(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
