// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package provenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/dispatch/hook"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestCallCommandDefersWhenDisabled(t *testing.T) {
	t.Setenv(DirEnv, "")

	p := New("1.0.0")

	err := p.CallCommand(context.Background(), func(context.Context, *cli.Command) error {
		t.Fatal("handler must not run when the plugin defers")
		return nil
	}, &cli.Command{Name: "assemble"})

	assert.ErrorIs(t, err, hook.ErrNext)
}

func TestCallCommandWritesRecord(t *testing.T) {
	fs := afero.NewMemMapFs()

	stubs := gostub.Stub(&FS, fs)
	defer stubs.Reset()

	p := New("1.2.3")
	p.Dir = "/records"

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	p.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 2 * time.Second)
	}

	_, err := p.HandleFileArg(context.Background(), "reads.bam")
	require.NoError(t, err)

	ran := false
	cmdErr := p.CallCommand(context.Background(), func(context.Context, *cli.Command) error {
		ran = true
		return nil
	}, &cli.Command{Name: "assemble"})

	require.NoError(t, cmdErr)
	assert.True(t, ran, "the plugin performs the call itself")

	matches, err := afero.Glob(fs, "/records/run-assemble-*.yaml")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := afero.ReadFile(fs, matches[0])
	require.NoError(t, err)

	var rec Record
	require.NoError(t, yaml.Unmarshal(data, &rec))

	assert.Equal(t, "assemble", rec.Command)
	assert.Equal(t, "1.2.3", rec.Version)
	assert.Equal(t, "success", rec.Outcome)
	assert.InDelta(t, 2.0, rec.DurationSeconds, 0.001)
	require.Len(t, rec.InputFiles, 1)
	assert.Contains(t, rec.InputFiles[0], "reads.bam")
}

func TestCallCommandPreservesHandlerError(t *testing.T) {
	fs := afero.NewMemMapFs()

	stubs := gostub.Stub(&FS, fs)
	defer stubs.Reset()

	p := New("1.2.3")
	p.Dir = "/records"

	want := errors.New("assembly failed")
	got := p.CallCommand(context.Background(), func(context.Context, *cli.Command) error {
		return want
	}, &cli.Command{Name: "assemble"})

	assert.Same(t, want, got)

	matches, err := afero.Glob(fs, "/records/run-assemble-*.yaml")
	require.NoError(t, err)
	require.Len(t, matches, 1, "a failed run still gets a record")

	data, err := afero.ReadFile(fs, matches[0])
	require.NoError(t, err)

	var rec Record
	require.NoError(t, yaml.Unmarshal(data, &rec))
	assert.Equal(t, "assembly failed", rec.Outcome)
}

func TestHandleFileArgDefersWhenDisabled(t *testing.T) {
	t.Setenv(DirEnv, "")

	p := New("1.0.0")

	_, err := p.HandleFileArg(context.Background(), "in.txt")
	assert.ErrorIs(t, err, hook.ErrNext)
}
