// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

// Package logging provides the leveled logger used by the epitypes CLI.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is a leveled logger with printf-style methods.
// A nil *Logger discards everything.
type Logger struct {
	logger *log.Logger
}

// NewLogger returns a logger writing to w at level ("debug", "info", "warn", "error").
// Unknown levels fall back to warn.
func NewLogger(w io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.WarnLevel
	}

	return &Logger{
		logger: log.NewWithOptions(w, log.Options{
			Level:  lvl,
			Prefix: "epitypes",
		}),
	}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return NewLogger(io.Discard, "error")
}

// Debug logs a formatted message at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l != nil {
		l.logger.Debugf(format, args...)
	}
}

// Info logs a formatted message at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	if l != nil {
		l.logger.Infof(format, args...)
	}
}

// Warn logs a formatted message at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l != nil {
		l.logger.Warnf(format, args...)
	}
}

// Error logs a formatted message at error level.
func (l *Logger) Error(format string, args ...interface{}) {
	if l != nil {
		l.logger.Errorf(format, args...)
	}
}

// With returns a logger that adds key/value pairs to every message.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	if l == nil {
		return nil
	}

	return &Logger{logger: l.logger.With(keyvals...)}
}

// Level returns the enabled level name.
func (l *Logger) Level() string {
	if l == nil {
		return ""
	}

	return l.logger.GetLevel().String()
}
