// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package hook

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

var (
	// ErrNilPlugin is returned when a nil plugin is registered.
	ErrNilPlugin = errors.New("hook: nil plugin")
	// ErrNoName is returned when a plugin has an empty identity.
	ErrNoName = errors.New("hook: plugin has no name")
)

type entry struct {
	plugin  Plugin
	tryLast bool
}

// Registry is an ordered collection of plugins. Implementations run in
// registration order, except those registered with TryLast, which run
// after all others. The registry is owned by a single App and needs no
// locking: dispatch is single-threaded.
type Registry struct {
	entries []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Option configures a registration.
type Option func(*entry)

// TryLast marks the plugin's implementations to run only after every
// other plugin has had its chance.
func TryLast() Option {
	return func(e *entry) {
		e.tryLast = true
	}
}

// Register adds a plugin's implementations. Registering an identity
// that is already present is a no-op.
func (r *Registry) Register(p Plugin, opts ...Option) error {
	if p == nil {
		return ErrNilPlugin
	}

	name := p.PluginName()
	if name == "" {
		return ErrNoName
	}

	for _, e := range r.entries {
		if e.plugin.PluginName() == name {
			return nil
		}
	}

	e := entry{plugin: p}
	for _, opt := range opts {
		opt(&e)
	}

	r.entries = append(r.entries, e)

	return nil
}

// Names returns the identities of the registered plugins in priority
// order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.ordered() {
		names = append(names, e.plugin.PluginName())
	}

	return names
}

// Empty reports whether no plugin is registered.
func (r *Registry) Empty() bool {
	return len(r.entries) == 0
}

// ConfigureParser runs the configure-parser point: every registered
// implementation, in priority order, for side effects against cmd.
func (r *Registry) ConfigureParser(cmd *cli.Command) {
	for _, e := range r.ordered() {
		if pc, ok := e.plugin.(ParserConfigurer); ok {
			pc.ConfigureParser(cmd)
		}
	}
}

// CallCommand runs the call-command point: implementations are tried
// in priority order and the first one that does not delegate with
// ErrNext determines the result. When every implementation delegates,
// the handler is invoked directly.
func (r *Registry) CallCommand(ctx context.Context, run Handler, cmd *cli.Command) error {
	for _, e := range r.ordered() {
		cc, ok := e.plugin.(CommandCaller)
		if !ok {
			continue
		}

		err := cc.CallCommand(ctx, run, cmd)
		if errors.Is(err, ErrNext) {
			continue
		}

		return err
	}

	return run(ctx, cmd)
}

// HandleFileArg runs the file-argument point and returns the first
// non-delegated value. When every implementation delegates, the value
// is returned unchanged.
func (r *Registry) HandleFileArg(ctx context.Context, val string) (string, error) {
	for _, e := range r.ordered() {
		fh, ok := e.plugin.(FileArgHandler)
		if !ok {
			continue
		}

		out, err := fh.HandleFileArg(ctx, val)
		if errors.Is(err, ErrNext) {
			continue
		}

		if err != nil {
			return "", fmt.Errorf("hook: file arg %q: %w", val, err)
		}

		return out, nil
	}

	return val, nil
}

// ordered returns entries with try-last plugins moved to the end,
// preserving registration order within each class.
func (r *Registry) ordered() []entry {
	out := make([]entry, 0, len(r.entries))

	for _, e := range r.entries {
		if !e.tryLast {
			out = append(out, e)
		}
	}

	for _, e := range r.entries {
		if e.tryLast {
			out = append(out, e)
		}
	}

	return out
}
