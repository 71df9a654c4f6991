// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tmpdir manages the scoped temporary directory owned by a
// single command invocation. The directory is created under a caller
// supplied base, named so that it can be traced back to the script,
// command and cluster job that created it, published via TMPDIR so
// that subprocess tooling inherits it, and removed on release unless
// retention was requested.
package tmpdir

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
	"github.com/matt-FFFFFF/dispatch/internal/jobctx"
	"github.com/spf13/afero"
)

// FS is the filesystem abstraction used for directory operations.
// Default is the OS filesystem, but can be replaced with a mock for
// testing.
var FS = afero.NewOsFs()

// BasePath resolves the default base directory for temp files.
var BasePath = os.TempDir

// KeepEnv is the environment variable that, when set, retains every
// scoped temp directory regardless of per-invocation flags.
const KeepEnv = "DISPATCH_TMP_DIRKEEP"

var (
	// ErrCreate is returned when the scoped directory cannot be created.
	ErrCreate = errors.New("failed to create temp directory")
	// ErrRemove is returned when the scoped directory cannot be removed.
	ErrRemove = errors.New("failed to remove temp directory")
)

// KeepAll reports whether the global keep override is active.
func KeepAll() bool {
	_, ok := os.LookupEnv(KeepEnv)
	return ok
}

// Proposed computes the directory name prefix for a command
// invocation. Empty segments are skipped; the scheduler job id and
// array index are appended when the process runs under a recognized
// scheduler.
func Proposed(script, command string, job jobctx.Job) string {
	parts := []string{"tmp"}

	for _, s := range []string{script, command} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	if job.Scheduled() {
		parts = append(parts, job.ID, job.Index)
	}

	return strings.Join(parts, "-")
}

// Scope is a uniquely named temporary directory owned by one command
// invocation.
type Scope struct {
	fs   afero.Fs
	path string
}

// New creates a uniquely suffixed directory under base and publishes
// it through TMPDIR. An empty base means the resolved default.
func New(base, prefix string) (*Scope, error) {
	if base == "" {
		base = BasePath()
	}

	path, err := afero.TempDir(FS, base, prefix+"-")
	if err != nil {
		return nil, errors.Join(ErrCreate, err)
	}

	// Subprocess tooling picks the scoped directory up uniformly.
	os.Setenv("TMPDIR", path)

	return &Scope{fs: FS, path: path}, nil
}

// Path returns the scoped directory path.
func (s *Scope) Path() string {
	return s.path
}

// Release removes the scoped directory, or leaves it in place and
// logs its location when keep is true. It must run on every exit path
// of the owning command.
func (s *Scope) Release(ctx context.Context, keep bool) error {
	if keep {
		ctxlog.Debug(ctx, "saving temp dir", "path", s.path)
		return nil
	}

	if err := s.fs.RemoveAll(s.path); err != nil {
		return errors.Join(ErrRemove, err)
	}

	return nil
}
