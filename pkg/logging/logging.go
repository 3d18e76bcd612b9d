/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging wraps the standard library slog package with
// statio-specific defaults: structured JSON records on stderr, a
// module/version attribute on every record, LOG_LEVEL environment
// configuration, and source location tracking at debug level.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

const envLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name (case-insensitive) to a slog.Level.
// Unknown or empty names fall back to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv returns the level configured via LOG_LEVEL, or the
// provided fallback when the variable is unset.
func levelFromEnv(fallback slog.Level) slog.Level {
	if v := os.Getenv(envLogLevel); v != "" {
		return ParseLevel(v)
	}
	return fallback
}

// NewStructuredLogger creates a JSON logger writing to stderr with the
// given module name and version attached to every record. Source
// location is included when the level is debug.
func NewStructuredLogger(name, version, level string) *slog.Logger {
	lvl := ParseLevel(level)

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})

	return slog.New(handler).With(
		slog.String("name", name),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs the statio default logger using
// LOG_LEVEL (defaulting to info) for the level.
func SetDefaultStructuredLogger(name, version string) {
	lvl := levelFromEnv(slog.LevelInfo)
	slog.SetDefault(NewStructuredLogger(name, version, lvl.String()))
}

// SetDefaultStructuredLoggerWithLevel installs the statio default
// logger with an explicit level, overriding LOG_LEVEL. Used after flag
// parsing so --log-level takes effect before any command executes.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	slog.SetDefault(NewStructuredLogger(name, version, level))
}
