// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for swatch commands, with a
// user-selected verbosity level and colored level names on terminals.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level will be shown. The default is [slog.LevelWarn],
// or [slog.LevelDebug] when built with the debug tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// levelColors are the terminal colors of the level names.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#8B5CF6",
	slog.LevelInfo:  "#3B82F6",
	slog.LevelWarn:  "#F59E0B",
	slog.LevelError: "#EF4444",
}

// NewHandler returns a text [slog.Handler] that writes to w the
// messages at or above the given level, without timestamps. Level
// names are colored if w is a terminal that supports colors.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, has := levelColors[lv]
				if !has {
					return a
				}
				a.Value = slog.StringValue(out.String(lv.String()).Foreground(out.Color(c)).String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog.Logger] to one that
// writes to w with [NewHandler] at the [UserLevel].
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, UserLevel)))
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	logx.Log(MyFunc(v))
//	// or
//	return logx.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := logx.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
		var zero T
		return zero
	}
	return v
}
