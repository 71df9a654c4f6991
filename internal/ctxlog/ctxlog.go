// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-carried structured logger built on
// log/slog. The process-wide level is held in LevelVar and is set by
// the dispatch layer from the --loglevel option. Two levels above
// slog.LevelError are defined, CRITICAL and EXCEPTION, matching the
// level names accepted on the command line.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
)

type loggerKey struct{}

// LevelVar holds the process-wide log level. The zero value is INFO.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is the logger used when a context carries none. It
// writes human-readable structured text to stderr.
var DefaultLogger = slog.New(NewPretty(
	&slog.HandlerOptions{Level: LevelVar},
	WithWriter(os.Stderr),
))

// New returns a context carrying the given logger. A nil logger means
// DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger carried by ctx, or DefaultLogger.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}
