// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is a small file utility demonstrating the dispatch
// framework: two subcommands sharing the common option families, the
// provenance plugin, and graceful signal handling.
package main

import (
	"bufio"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/dispatch"
	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
	"github.com/matt-FFFFFF/dispatch/internal/signalbroker"
	"github.com/matt-FFFFFF/dispatch/plugins/provenance"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	hooks := hook.NewRegistry()
	_ = hooks.Register(provenance.New(dispatch.Version))

	app := &dispatch.App{
		Name: "demo",
		Description: `Demo is a small file utility built on the dispatch framework.
It exposes multiple subcommands from a single executable, with
logging, temp-directory scoping and provenance recording handled
by the framework.`,
		Version:  fmt.Sprintf("%s (commit: %s)", dispatch.Version, dispatch.Commit),
		Hooks:    hooks,
		Commands: []dispatch.Descriptor{
			{Name: "checksum", New: checksumCmd},
			{Name: "lines", New: linesCmd},
		},
	}

	os.Exit(app.Run(ctx, os.Args))
}

func checksumCmd(a *dispatch.App) (*cli.Command, error) {
	cmd := &cli.Command{
		Usage: "Compute the SHA-256 digest of a file.",
		Description: `Compute the SHA-256 digest of the input file.  The result is
written to stdout as a "<digest>  <path>" line.`,
		Flags: append(dispatch.CommonFlags(),
			&cli.StringFlag{
				Name:      "in",
				Usage:     "Input file.",
				TakesFile: true,
				Required:  true,
			},
			dispatch.ThreadsFlag(0),
			dispatch.VersionFlag(),
		),
	}

	return a.AttachMain(cmd, dispatch.Main{
		Params: []string{"in", "threads"},
		Run:    runChecksum,
	})
}

func runChecksum(ctx context.Context, args dispatch.Values) error {
	in := args.String("in")

	f, err := os.Open(in)
	if err != nil {
		return dispatch.BadInputf("cannot open %s: %v", in, err)
	}

	defer f.Close() //nolint:errcheck

	ctxlog.Debug(ctx, "hashing", "file", in, "threads", args.Int("threads"))

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	fmt.Printf("%x  %s\n", h.Sum(nil), in)

	return nil
}

func linesCmd(a *dispatch.App) (*cli.Command, error) {
	cmd := &cli.Command{
		Usage:       "Count the lines of a file.",
		Description: `Count the lines of the input file and write the count to stdout.`,
		Flags: append(dispatch.CommonFlags(),
			&cli.StringFlag{
				Name:      "in",
				Usage:     "Input file.",
				TakesFile: true,
				Required:  true,
			},
			dispatch.VersionFlag(),
		),
	}

	return a.AttachMain(cmd, dispatch.Main{
		Params: []string{"in"},
		Run:    runLines,
	})
}

func runLines(_ context.Context, args dispatch.Values) error {
	in := args.String("in")

	f, err := os.Open(in)
	if err != nil {
		return dispatch.BadInputf("cannot open %s: %v", in, err)
	}

	defer f.Close() //nolint:errcheck

	n := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	fmt.Println(n)

	return nil
}
