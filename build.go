// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v3"
)

// readTheDocsEnv toggles documentation-generation mode: subcommands
// without a usage string get a blank placeholder instead, so doc
// generators do not render them as undocumented.
const readTheDocsEnv = "READTHEDOCS"

const placeholderUsage = "   "

// Build constructs the parser tree from the descriptor list.
//
// A single descriptor with an empty name yields that descriptor's own
// parser, and the selected-command field of the invocation defaults to
// the empty string. Otherwise the result is a root parser carrying the
// App description, a custom enumerating help flag, a version flag, and
// one child parser per descriptor. Descriptor validation failures are
// aggregated and returned together.
func (a *App) Build() (*cli.Command, error) {
	if len(a.Commands) == 0 {
		return nil, ErrNoCommands
	}

	if len(a.Commands) == 1 && a.Commands[0].Name == "" {
		return a.buildSingle()
	}

	return a.buildMulti()
}

func (a *App) buildSingle() (*cli.Command, error) {
	a.single = true

	d := a.Commands[0]
	if d.New == nil {
		return nil, ErrNilBuilder
	}

	c, err := d.New(a)
	if err != nil {
		return nil, err
	}

	c.Name = a.Name
	c.Writer = a.out()
	c.ErrWriter = a.errw()

	return c, nil
}

func (a *App) buildMulti() (*cli.Command, error) {
	a.single = false

	root := &cli.Command{
		Name:        a.Name,
		Usage:       "subcommand",
		Description: a.Description,
		Writer:      a.out(),
		ErrWriter:   a.errw(),
		HideHelp:    true,
		Flags: []cli.Flag{
			helpFlag(),
			VersionFlag(),
		},
		Action: a.rootAction,
	}

	var merr *multierror.Error

	seen := make(map[string]struct{}, len(a.Commands))

	for _, d := range a.Commands {
		if err := d.validate(); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		if _, dup := seen[d.Name]; dup {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrDuplicateCommand, d.Name))
			continue
		}

		seen[d.Name] = struct{}{}

		child, err := d.New(a)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("building %q: %w", d.Name, err))
			continue
		}

		child.Name = d.Name

		if child.Usage == "" && os.Getenv(readTheDocsEnv) != "" {
			child.Usage = placeholderUsage
		}

		root.Commands = append(root.Commands, child)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return root, nil
}
