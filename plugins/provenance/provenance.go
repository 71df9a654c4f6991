// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package provenance is a hook plugin that records how each command
// was invoked. When enabled it claims the call-command extension
// point, times the run, and writes a YAML run record (command, argv,
// version, cluster job, input files, timing, outcome) into the
// configured directory. When not enabled every implementation defers
// with hook.ErrNext, so registering the plugin unconditionally is
// safe.
package provenance

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
	"github.com/matt-FFFFFF/dispatch/internal/jobctx"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// DirEnv is the environment variable that enables the plugin and
// names the directory run records are written to.
const DirEnv = "DISPATCH_PROVENANCE_DIR"

// FS is the filesystem abstraction used for record writes. Default is
// the OS filesystem, but can be replaced with a mock for testing.
var FS = afero.NewOsFs()

const recordMode = 0o644

// Record is one command invocation's provenance.
type Record struct {
	Command         string    `yaml:"command"`
	Argv            []string  `yaml:"argv"`
	Version         string    `yaml:"version"`
	JobID           string    `yaml:"job_id,omitempty"`
	JobIndex        string    `yaml:"job_index,omitempty"`
	InputFiles      []string  `yaml:"input_files,omitempty"`
	StartTime       time.Time `yaml:"start_time"`
	EndTime         time.Time `yaml:"end_time"`
	DurationSeconds float64   `yaml:"duration_seconds"`
	Outcome         string    `yaml:"outcome"`
}

// Plugin implements the call-command and file-argument extension
// points.
type Plugin struct {
	// Dir overrides the record directory; when empty, DirEnv is
	// consulted at call time.
	Dir string
	// Version is recorded with each run.
	Version string

	now   func() time.Time
	files []string
}

// New returns a Plugin ready for registration.
func New(version string) *Plugin {
	return &Plugin{Version: version, now: time.Now}
}

// PluginName implements hook.Plugin.
func (p *Plugin) PluginName() string {
	return "provenance"
}

// HandleFileArg records the absolute path of a file-valued argument
// and passes the value through unchanged.
func (p *Plugin) HandleFileArg(_ context.Context, val string) (string, error) {
	if p.dir() == "" {
		return "", hook.ErrNext
	}

	abs, err := filepath.Abs(val)
	if err != nil {
		abs = val
	}

	p.files = append(p.files, abs)

	return val, nil
}

// CallCommand runs the handler itself so that it can time the full
// execution, then writes the run record. The handler's result is
// returned unchanged; a record-write failure is logged, never
// escalated.
func (p *Plugin) CallCommand(ctx context.Context, run hook.Handler, cmd *cli.Command) error {
	dir := p.dir()
	if dir == "" {
		return hook.ErrNext
	}

	start := p.now()
	err := run(ctx, cmd)
	end := p.now()

	outcome := "success"
	if err != nil {
		outcome = err.Error()
	}

	job := jobctx.FromEnv()

	rec := Record{
		Command:         cmd.Name,
		Argv:            os.Args,
		Version:         p.Version,
		JobID:           job.ID,
		JobIndex:        job.Index,
		InputFiles:      p.files,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: end.Sub(start).Seconds(),
		Outcome:         outcome,
	}

	if werr := p.write(dir, rec); werr != nil {
		ctxlog.Warn(ctx, "provenance record not written", "error", werr)
	}

	return err
}

func (p *Plugin) write(dir string, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("run-%s-%s.yaml", rec.Command, rec.StartTime.UTC().Format("20060102T150405Z"))

	return afero.WriteFile(FS, filepath.Join(dir, name), data, recordMode)
}

func (p *Plugin) dir() string {
	if p.Dir != "" {
		return p.Dir
	}

	return os.Getenv(DirEnv)
}
