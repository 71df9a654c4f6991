// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
)

// ErrBadInput indicates that an invalid input was given to a command.
// It propagates unchanged to the top level; scoped temp-directory
// cleanup still runs.
var ErrBadInput = errors.New("bad input")

// BadInputf returns an ErrBadInput carrying a human-readable reason.
func BadInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadInput, fmt.Sprintf(format, args...))
}

// CheckInput returns nil when cond holds, or an ErrBadInput with the
// given reason otherwise.
func CheckInput(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}

	return BadInputf(format, args...)
}
