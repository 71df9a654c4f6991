// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package hook

import (
	"context"

	"github.com/urfave/cli/v3"
)

// RegisterBuiltins installs the framework's two default
// implementations into an empty registry: a call-command terminal that
// invokes the handler directly, and a file-argument identity. They are
// registered try-last so that richer plugins win the chain. Calling
// this on a registry that already has plugins is a no-op.
func RegisterBuiltins(r *Registry) {
	if !r.Empty() {
		return
	}

	_ = r.Register(defaultCaller{}, TryLast())
	_ = r.Register(fileArgIdentity{}, TryLast())
}

// defaultCaller is the terminal call-command implementation.
type defaultCaller struct{}

func (defaultCaller) PluginName() string {
	return "dispatch.call"
}

func (defaultCaller) CallCommand(ctx context.Context, run Handler, cmd *cli.Command) error {
	return run(ctx, cmd)
}

// fileArgIdentity returns file-valued arguments unchanged.
type fileArgIdentity struct{}

func (fileArgIdentity) PluginName() string {
	return "dispatch.filearg"
}

func (fileArgIdentity) HandleFileArg(_ context.Context, val string) (string, error) {
	return val, nil
}
