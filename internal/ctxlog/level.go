// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Levels above slog.LevelError, matching the names accepted by the
// --loglevel option.
const (
	LevelCritical  = slog.LevelError + 4
	LevelException = slog.LevelError + 8
)

// ErrUnknownLevel is returned when a level name is not recognized.
var ErrUnknownLevel = errors.New("unrecognized log level")

// ParseLevel maps a level name (DEBUG, INFO, WARNING, ERROR, CRITICAL,
// EXCEPTION) to its slog level. Matching is case-insensitive.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	case "EXCEPTION":
		return LevelException, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
}

// LevelName returns the command-line name for a slog level.
func LevelName(l slog.Level) string {
	switch {
	case l >= LevelException:
		return "EXCEPTION"
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
