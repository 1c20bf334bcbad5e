// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"sync/atomic"
)

// Debug turns on debug logging of resource lifecycle events
// (creation, destruction, link results) and contract checks that are
// too costly for normal use, such as buffer update range checks.
// Messages go to [Logger] at [slog.LevelDebug] and [slog.LevelWarn].
var Debug = false

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used by gpu and its sub-packages.
// By default nothing is logged. Pass nil to restore that.
//
//	gpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debug logs a lifecycle event when [Debug] is on.
func debug(msg string, args ...any) {
	if !Debug {
		return
	}
	Logger().Debug(msg, args...)
}
