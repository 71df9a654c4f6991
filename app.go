// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
	"github.com/matt-FFFFFF/dispatch/internal/jobctx"
	"github.com/matt-FFFFFF/dispatch/internal/tmpdir"
	"github.com/urfave/cli/v3"
)

// Exit code for argument-parsing and configuration failures, reported
// before any command runs.
const usageExitCode = 2

// App is the invocation controller: it owns the command descriptors,
// the hook registry, and the lifecycle of a single command execution.
// Exactly one command runs per process invocation, start to finish.
type App struct {
	// Name is the program name used in usage and help output.
	Name string
	// Description is the overall description shown by the root help.
	Description string
	// Version overrides the build-injected module version.
	Version string
	// Commands is the ordered descriptor list. A single descriptor
	// with an empty name degenerates to a single-command CLI.
	Commands []Descriptor
	// Hooks is the plugin registry. A nil registry is created on first
	// attach; built-in implementations register only when it is empty.
	Hooks *hook.Registry
	// Writer and ErrWriter default to stdout and stderr.
	Writer    io.Writer
	ErrWriter io.Writer
	// Logger overrides the default process-wide log sink.
	Logger *slog.Logger

	single   bool
	started  bool
	exitCode int
}

// Run builds the parser tree, parses args (os.Args form: the program
// name first), dispatches the selected command, and returns the
// process exit status. Invocation with no arguments renders help;
// invocation with exactly a command name renders that command's help.
func (a *App) Run(ctx context.Context, args []string) int {
	root, err := a.Build()
	if err != nil {
		fmt.Fprintln(a.errw(), err)
		return usageExitCode
	}

	argv := slices.Clone(args)

	switch {
	case len(argv) == 0:
		argv = []string{a.Name, "--" + HelpFlagName}
	case len(argv) == 1:
		argv = append(argv, "--"+HelpFlagName)
	case len(argv) == 2 && !a.single:
		argv = append(argv, "--"+HelpFlagName)
	}

	return a.execute(ctx, root, argv)
}

// RunCommand runs one registered command by name through the full
// parse-and-dispatch path, without the degenerate-help argument
// handling. It exists for tests and for embedding the framework.
func (a *App) RunCommand(ctx context.Context, name string, args ...string) int {
	root, err := a.Build()
	if err != nil {
		fmt.Fprintln(a.errw(), err)
		return usageExitCode
	}

	argv := []string{a.Name}
	if name != "" {
		argv = append(argv, name)
	}

	argv = append(argv, args...)

	return a.execute(ctx, root, argv)
}

func (a *App) execute(ctx context.Context, root *cli.Command, argv []string) int {
	a.started = false
	a.exitCode = 0

	if err := root.Run(ctx, argv); err != nil {
		fmt.Fprintln(a.errw(), err)

		// Only failures before any command ran are usage errors; a
		// late error does not mask a dispatched command's outcome,
		// which the action closure already captured.
		if !a.started {
			return usageExitCode
		}
	}

	return a.exitCode
}

// invoke drives one command execution: logging configuration, the
// invocation record, per-command --version, file-argument hooks, the
// scoped temp directory, and finally the call-command hook chain.
func (a *App) invoke(ctx context.Context, c *cli.Command, h hook.Handler) error {
	ctx, err := a.configureLogging(ctx, c)
	if err != nil {
		return err
	}

	name := a.commandName(c)

	ctxlog.Info(ctx, "invocation",
		"version", a.version(),
		"command", name,
		"args", invocationArgs(c),
	)

	if hasFlag(c, VersionFlagName) && c.Bool(VersionFlagName) {
		fmt.Fprintln(a.out(), a.version())
		return nil
	}

	if err := a.translateFileArgs(ctx, c); err != nil {
		return err
	}

	if !hasFlag(c, TmpDirFlagName) {
		return a.Hooks.CallCommand(ctx, h, c)
	}

	prefix := tmpdir.Proposed(scriptName(), name, jobctx.FromEnv())

	scope, err := tmpdir.New(c.String(TmpDirFlagName), prefix)
	if err != nil {
		return err
	}

	ctxlog.Debug(ctx, "using temp dir", "path", scope.Path())

	keep := tmpdir.KeepAll() ||
		(hasFlag(c, TmpDirKeepFlagName) && c.Bool(TmpDirKeepFlagName))

	// Release runs on every exit path of the command.
	defer func() {
		if rerr := scope.Release(ctx, keep); rerr != nil {
			ctxlog.Warn(ctx, "temp dir release failed", "error", rerr)
		}
	}()

	return a.Hooks.CallCommand(ctx, h, c)
}

// classify maps a command outcome to a process exit status. A nil
// result is 0; an explicit cli.Exit carries its own code; everything
// else is logged and exits 1.
func (a *App) classify(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := coder.Error(); msg != "" {
			fmt.Fprintln(a.errw(), msg)
		}

		return coder.ExitCode()
	}

	if errors.Is(err, ErrBadInput) {
		ctxlog.Error(ctx, "bad input", "error", err)
		return 1
	}

	ctxlog.Error(ctx, "command failed", "error", err)

	return 1
}

// configureLogging resolves the effective log level (a command that
// did not opt into --loglevel logs everything), points the process
// wide level at it, and attaches the logger to the context.
func (a *App) configureLogging(ctx context.Context, c *cli.Command) (context.Context, error) {
	levelName := "DEBUG"
	if hasFlag(c, LogLevelFlagName) {
		levelName = c.String(LogLevelFlagName)
	}

	level, err := ctxlog.ParseLevel(levelName)
	if err != nil {
		return ctx, err
	}

	ctxlog.LevelVar.Set(level)

	return ctxlog.New(ctx, a.Logger), nil
}

// translateFileArgs passes user-supplied file-valued options through
// the file-argument hook chain, writing any transformed value back
// into the parsed command.
func (a *App) translateFileArgs(ctx context.Context, c *cli.Command) error {
	for _, f := range c.Flags {
		sf, ok := f.(*cli.StringFlag)
		if !ok || !sf.TakesFile || !c.IsSet(sf.Name) {
			continue
		}

		val := c.String(sf.Name)

		out, err := a.Hooks.HandleFileArg(ctx, val)
		if err != nil {
			return err
		}

		if out == val {
			continue
		}

		if err := c.Set(sf.Name, out); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) commandName(c *cli.Command) string {
	if a.single {
		return ""
	}

	return c.Name
}

func (a *App) version() string {
	if a.Version != "" {
		return a.Version
	}

	return Version
}

func (a *App) out() io.Writer {
	if a.Writer != nil {
		return a.Writer
	}

	return os.Stdout
}

func (a *App) errw() io.Writer {
	if a.ErrWriter != nil {
		return a.ErrWriter
	}

	return os.Stderr
}

// invocationArgs renders every non-internal option as name=value
// pairs for the invocation log line.
func invocationArgs(c *cli.Command) string {
	parts := make([]string, 0, len(c.Flags))

	for _, f := range c.Flags {
		names := f.Names()
		if len(names) == 0 {
			continue
		}

		name := names[0]
		if name == HelpFlagName || name == VersionFlagName {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s=%v", name, c.Value(name)))
	}

	return strings.Join(parts, " ")
}

func scriptName() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}
