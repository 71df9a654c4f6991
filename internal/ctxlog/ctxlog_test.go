// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           context.Context
		expectDefault bool
	}{
		{
			name:          "context with logger",
			ctx:           New(context.Background(), slog.New(slog.DiscardHandler)),
			expectDefault: false,
		},
		{
			name:          "context without logger",
			ctx:           context.Background(),
			expectDefault: true,
		},
		{
			name:          "nil logger falls back to default",
			ctx:           New(context.Background(), nil),
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.ctx)
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "DEBUG", want: slog.LevelDebug},
		{name: "INFO", want: slog.LevelInfo},
		{name: "WARNING", want: slog.LevelWarn},
		{name: "ERROR", want: slog.LevelError},
		{name: "CRITICAL", want: LevelCritical},
		{name: "EXCEPTION", want: LevelException},
		{name: "debug", want: slog.LevelDebug},
		{name: "TRACE", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelName(slog.LevelDebug))
	assert.Equal(t, "WARNING", LevelName(slog.LevelWarn))
	assert.Equal(t, "CRITICAL", LevelName(LevelCritical))
	assert.Equal(t, "EXCEPTION", LevelName(LevelException+4))
}

func TestPrettyHandlerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(
		&slog.HandlerOptions{Level: slog.LevelDebug},
		WithWriter(buf),
	))

	logger.Info("command completed", "status", 0)

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "command completed")
	assert.Contains(t, out, "status")
}

func TestPrettyHandlerLevelGate(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(
		&slog.HandlerOptions{Level: slog.LevelWarn},
		WithWriter(buf),
	))

	logger.Info("should not appear")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}
