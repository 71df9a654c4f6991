// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"runtime"
	"slices"
	"strconv"

	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
	"github.com/matt-FFFFFF/dispatch/internal/tmpdir"
	"github.com/urfave/cli/v3"
)

// Names of the common option families. Commands opt in to each family
// individually via the flag constructors below.
const (
	HelpFlagName       = "help"
	LogLevelFlagName   = "loglevel"
	ThreadsFlagName    = "threads"
	TmpDirFlagName     = "tmp_dir"
	TmpDirKeepFlagName = "tmp_dirKeep"
	VersionFlagName    = "version"
)

// DefaultLogLevel is the effective level when a command opts into
// --loglevel without overriding the default.
const DefaultLogLevel = "INFO"

// LogLevelFlag returns the --loglevel option. An empty def means INFO.
func LogLevelFlag(def string) cli.Flag {
	if def == "" {
		def = DefaultLogLevel
	}

	return &cli.StringFlag{
		Name:  LogLevelFlagName,
		Usage: "Verboseness of output. One of DEBUG, INFO, WARNING, ERROR, CRITICAL, EXCEPTION.",
		Value: def,
		// Rejected at parse time so a bad value exits through the
		// usage path, before any command runs.
		Validator: func(v string) error {
			_, err := ctxlog.ParseLevel(v)
			return err
		},
	}
}

// TmpDirFlags returns the --tmp_dir and --tmp_dirKeep options. An
// empty base means the resolved default temp root.
func TmpDirFlags(base string) []cli.Flag {
	if base == "" {
		base = tmpdir.BasePath()
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:      TmpDirFlagName,
			Usage:     "Base directory for temp files.",
			Value:     base,
			TakesFile: false,
		},
		&cli.BoolFlag{
			Name: TmpDirKeepFlagName,
			Usage: "Keep the per-invocation temp directory, even if an error occurs while " +
				"running. Default is to delete all temp files at the end, even on failure.",
			Value: false,
		},
	}
}

// ThreadsFlag returns the --threads option. A non-positive def means
// all available cores.
func ThreadsFlag(def int) cli.Flag {
	text := strconv.Itoa(def)
	if def <= 0 {
		def = runtime.NumCPU()
		text = "all available cores"
	}

	return &cli.IntFlag{
		Name:        ThreadsFlagName,
		Usage:       "Number of threads.",
		Value:       def,
		DefaultText: text,
	}
}

// VersionFlag returns the per-command --version/-V option. The
// invocation controller handles it before the command entry point
// runs.
func VersionFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    VersionFlagName,
		Aliases: []string{"V"},
		Usage:   "Print version and exit.",
	}
}

// CommonFlags returns the default option families most commands want:
// a temp-directory scope and a log level.
func CommonFlags() []cli.Flag {
	return append(TmpDirFlags(""), LogLevelFlag(""))
}

// hasFlag reports whether the parsed command declares an option with
// the given name.
func hasFlag(c *cli.Command, name string) bool {
	for _, f := range c.Flags {
		if slices.Contains(f.Names(), name) {
			return true
		}
	}

	return false
}
