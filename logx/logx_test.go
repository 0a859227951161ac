// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != UserLevel {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", UserLevel, l)
	}
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	log := slog.New(NewHandler(&b, slog.LevelInfo))
	log.Debug("hidden")
	log.Info("shown", "count", 3)
	log.Warn("careful")
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown count=3")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "WARN")
	assert.NotContains(t, out, "time=")
}

func TestLog(t *testing.T) {
	var b bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)
	slog.SetDefault(slog.New(NewHandler(&b, slog.LevelDebug)))

	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := errors.New("broken")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "msg=broken")

	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(3, err))
}
