// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/dispatch/internal/ctxlog"
)

// stopNotify is stubbed in tests.
var stopNotify = signal.Stop

// Watch monitors the signal channel and cancels the context when a
// second signal of the same type arrives. The first signal of each
// type is logged and otherwise ignored so that an in-flight command
// can finish its temp-directory cleanup.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "second signal received, terminating", "signal", sig.String())

			// Delivery must stop before the channel closes, or a
			// straggler signal would be sent on a closed channel.
			stopNotify(sigCh)
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "first signal received", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
