// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

var (
	// ErrNoCommands is returned when an App has no command descriptors.
	ErrNoCommands = errors.New("dispatch: no commands defined")
	// ErrNilBuilder is returned when a descriptor has no builder function.
	ErrNilBuilder = errors.New("dispatch: descriptor has no builder")
	// ErrUnnamedCommand is returned when a nameless descriptor appears in
	// a multi-command set. A nameless descriptor is only valid on its own.
	ErrUnnamedCommand = errors.New("dispatch: unnamed command in multi-command set")
	// ErrInvalidCommandName is returned when a command name contains whitespace.
	ErrInvalidCommandName = errors.New("dispatch: invalid command name")
	// ErrDuplicateCommand is returned when two descriptors share a name.
	ErrDuplicateCommand = errors.New("dispatch: duplicate command name")
	// ErrUnknownCommand is returned when the first argument names no
	// registered subcommand.
	ErrUnknownCommand = errors.New("dispatch: unknown command")
)

// BuilderFunc constructs a subcommand's parser, including its flags
// and its attached entry point. Builders typically end with a call to
// App.Attach or App.AttachMain.
type BuilderFunc func(a *App) (*cli.Command, error)

// Descriptor names one subcommand and the function that builds its
// parser. An empty Name is permitted only as the sole descriptor of an
// App, which degenerates the framework to a single-command CLI.
type Descriptor struct {
	Name string
	New  BuilderFunc
}

func (d Descriptor) validate() error {
	if d.New == nil {
		return fmt.Errorf("%w: %q", ErrNilBuilder, d.Name)
	}

	if d.Name == "" {
		return ErrUnnamedCommand
	}

	if strings.ContainsAny(d.Name, " \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidCommandName, d.Name)
	}

	return nil
}
