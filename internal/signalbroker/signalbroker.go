// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker provides termination-signal handling for
// binaries built on the dispatch framework. The dispatch path itself
// is synchronous and has no cancellation concept; the broker exists so
// that an entry point can shut down cleanly on SIGINT/SIGTERM.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel delivering the signals that should terminate
// the process. When no signals are supplied, the default termination
// set is used.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}
