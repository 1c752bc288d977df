// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the zap loggers used by the command-line
// tools.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevLogger creates a human-readable logger at the given level.
func NewDevLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level.SetLevel(level)
	return config.Build()
}

// NewDevInfoLogger creates a development logger at the INFO level.
func NewDevInfoLogger() (*zap.Logger, error) {
	return NewDevLogger(zapcore.InfoLevel)
}

// NewProdLogger creates a JSON logger at the given level.
func NewProdLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level.SetLevel(level)
	return config.Build()
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	err := l.Set(s)
	return l, err
}
