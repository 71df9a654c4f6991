// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestBindMainSelectsDeclaredSubset(t *testing.T) {
	var got Values

	h, err := BindMain(Main{
		Params: []string{"a", "c"},
		Run: func(_ context.Context, args Values) error {
			got = args
			return nil
		},
	})
	require.NoError(t, err)

	cmd := &cli.Command{
		Name: "x",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "a"},
			&cli.IntFlag{Name: "b"},
			&cli.IntFlag{Name: "c"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return h(ctx, c)
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"x", "--a", "1", "--b", "2", "--c", "3"}))

	assert.Equal(t, Values{"a": 1, "c": 3}, got,
		"only the declared parameter subset is passed through")
}

func TestBindMainSkipsUndeclaredOptions(t *testing.T) {
	var got Values

	h, err := BindMain(Main{
		Params: []string{"present", "absent"},
		Run: func(_ context.Context, args Values) error {
			got = args
			return nil
		},
	})
	require.NoError(t, err)

	cmd := &cli.Command{
		Name:  "x",
		Flags: []cli.Flag{&cli.StringFlag{Name: "present", Value: "yes"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			return h(ctx, c)
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"x"}))

	assert.Equal(t, Values{"present": "yes"}, got,
		"declared parameters without a matching option are omitted")
}

func TestBindMainContractViolations(t *testing.T) {
	run := func(context.Context, Values) error { return nil }

	tests := []struct {
		name    string
		main    Main
		wantErr error
	}{
		{
			name:    "nil entry point",
			main:    Main{Params: []string{"a"}},
			wantErr: ErrNilMain,
		},
		{
			name:    "catch-all star",
			main:    Main{Params: []string{"*"}, Run: run},
			wantErr: ErrCatchAllParam,
		},
		{
			name:    "catch-all ellipsis",
			main:    Main{Params: []string{"args..."}, Run: run},
			wantErr: ErrCatchAllParam,
		},
		{
			name:    "empty parameter",
			main:    Main{Params: []string{""}, Run: run},
			wantErr: ErrInvalidParam,
		},
		{
			name:    "whitespace parameter",
			main:    Main{Params: []string{"a b"}, Run: run},
			wantErr: ErrInvalidParam,
		},
		{
			name:    "duplicate parameter",
			main:    Main{Params: []string{"a", "a"}, Run: run},
			wantErr: ErrDuplicateParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := BindMain(tt.main)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.wantErr, "binding construction must fail, never call time")
		})
	}
}

func TestValuesAccessors(t *testing.T) {
	v := Values{"s": "str", "i": 42, "b": true}

	assert.Equal(t, "str", v.String("s"))
	assert.Equal(t, 42, v.Int("i"))
	assert.True(t, v.Bool("b"))

	assert.Empty(t, v.String("missing"))
	assert.Zero(t, v.Int("missing"))
	assert.False(t, v.Bool("missing"))
}
