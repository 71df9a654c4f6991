// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package hook defines the extension points of the dispatch framework
// and the registry that invokes them. Plugins are trusted, in-process
// and registered eagerly at startup; there is no isolation or
// hot-reload.
//
// Two dispatch-path extension points exist. ConfigureParser is
// side-effecting: every registered implementation runs against the
// shared parser before arguments are parsed. CallCommand is
// value-returning: implementations run in priority order until one
// produces a result; an implementation delegates to the next by
// returning ErrNext. A third point, HandleFileArg, lets plugins
// observe or rewrite file-valued options before dispatch.
package hook

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"
)

// ErrNext is the tagged "delegate to the next implementation" result.
// A CallCommand or HandleFileArg implementation returns it (possibly
// wrapped) to pass control down the chain.
var ErrNext = errors.New("hook: delegate to next implementation")

// Handler is a command entry point invoked with the parsed arguments.
// A nil error normalizes to exit status 0.
type Handler func(ctx context.Context, cmd *cli.Command) error

// Plugin is the identity every hook implementation carries.
// Registration is keyed by PluginName.
type Plugin interface {
	PluginName() string
}

// ParserConfigurer is implemented by plugins that add options to a
// command's parser before parsing. Every registered implementation
// runs, in priority order.
type ParserConfigurer interface {
	ConfigureParser(cmd *cli.Command)
}

// CommandCaller is implemented by plugins that intercept command
// invocation. The first implementation that does not return ErrNext
// determines the final result.
type CommandCaller interface {
	CallCommand(ctx context.Context, run Handler, cmd *cli.Command) error
}

// FileArgHandler is implemented by plugins that observe or transform a
// single file-valued argument. The first implementation that does not
// return ErrNext determines the value used.
type FileArgHandler interface {
	HandleFileArg(ctx context.Context, val string) (string, error)
}
