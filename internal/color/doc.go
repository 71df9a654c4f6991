// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI control codes for terminal text
// formatting. Output honors the NO_COLOR and FORCE_COLOR environment
// variables and falls back to a tty check on stdout.
package color
