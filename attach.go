// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"

	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/urfave/cli/v3"
)

// Attach wires a command's parser to its entry point. It loads the
// built-in hook implementations (idempotent, first invocation wins),
// runs the configure-parser extension point so plugins can add options
// before parsing, and stores an action that routes the eventual call
// through the call-command hook chain rather than invoking h directly.
func (a *App) Attach(c *cli.Command, h hook.Handler) *cli.Command {
	a.loadHooks()
	a.Hooks.ConfigureParser(c)

	c.Action = func(ctx context.Context, parsed *cli.Command) error {
		a.started = true
		a.exitCode = a.classify(ctx, a.invoke(ctx, parsed, h))

		// The outcome is owned by App.Run; urfave sees success so the
		// process exit stays in the controller's hands.
		return nil
	}

	return c
}

// AttachMain is Attach for entry points with a declared parameter set:
// the handler receives only the subset of parsed options it declared.
// A malformed parameter set fails here, at attach time.
func (a *App) AttachMain(c *cli.Command, m Main) (*cli.Command, error) {
	h, err := BindMain(m)
	if err != nil {
		return nil, err
	}

	return a.Attach(c, h), nil
}

// loadHooks makes sure the App has a registry with at least the
// built-in implementations. Plugins registered by the caller before
// the first attach suppress the built-ins.
func (a *App) loadHooks() {
	if a.Hooks == nil {
		a.Hooks = hook.NewRegistry()
	}

	hook.RegisterBuiltins(a.Hooks)
}
