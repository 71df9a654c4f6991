// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/urfave/cli/v3"
)

var (
	// ErrNilMain is returned when a Main has no entry function.
	ErrNilMain = errors.New("dispatch: nil command entry point")
	// ErrInvalidParam is returned when a declared parameter name is
	// empty or contains whitespace.
	ErrInvalidParam = errors.New("dispatch: invalid parameter name")
	// ErrCatchAllParam is returned when a Main declares a catch-all
	// parameter. Catch-all entry points cannot be matched against a
	// fixed set of parsed options; this is a contract violation, not a
	// runtime condition.
	ErrCatchAllParam = errors.New("dispatch: catch-all parameters are not supported")
	// ErrDuplicateParam is returned when a parameter is declared twice.
	ErrDuplicateParam = errors.New("dispatch: duplicate parameter name")
)

// Values is the subset of parsed options selected for a command entry
// point, keyed by declared parameter name.
type Values map[string]any

// String returns the named value as a string, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the named value as an int, or 0 when absent.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Bool returns the named value as a bool, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Main describes a command entry point together with the set of option
// names it consumes. Parsed options outside the declared set (the
// selected command name, the log level, and so on) are never passed
// through.
type Main struct {
	Params []string
	Run    func(ctx context.Context, args Values) error
}

// BindMain builds the adapter that calls m.Run with exactly the
// declared subset of parsed options. The declared parameter set is
// checked here, at binding construction time: a malformed set fails
// before any command can run.
func BindMain(m Main) (hook.Handler, error) {
	if m.Run == nil {
		return nil, ErrNilMain
	}

	seen := make(map[string]struct{}, len(m.Params))

	for _, p := range m.Params {
		if p == "" || strings.ContainsAny(p, " \t\n") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, p)
		}

		if p == "*" || strings.Contains(p, "...") {
			return nil, fmt.Errorf("%w: %q", ErrCatchAllParam, p)
		}

		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, p)
		}

		seen[p] = struct{}{}
	}

	params := slices.Clone(m.Params)

	return func(ctx context.Context, c *cli.Command) error {
		vals := make(Values, len(params))

		for _, p := range params {
			if hasFlag(c, p) {
				vals[p] = c.Value(p)
			}
		}

		return m.Run(ctx, vals)
	}, nil
}
