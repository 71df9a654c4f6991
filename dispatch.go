// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch is a multi-command CLI framework: a single
// executable exposes many subcommands, each with its own flags and
// entry point, while cross-cutting behavior (logging setup, scoped
// temp directories, command interception) is centralized and
// extensible through the hook package.
package dispatch

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
