// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorCapable(), "NO_COLOR should disable color output")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorCapable(), "NO_COLOR should win over FORCE_COLOR")

	t.Setenv(NoColor, "")
	assert.True(t, isColorCapable(), "FORCE_COLOR should enable color output")
}

func TestColorize(t *testing.T) {
	old := enabled

	defer func() { enabled = old }()

	enabled = true

	assert.Equal(t, "\033[1mhi\033[0m", Colorize("hi", Bold))
	assert.Equal(t, "\033[1;31mhi\033[0m", Colorize("hi", Bold, FgRed))
	assert.Equal(t, "hi", Colorize("hi"), "no codes means no escape sequences")

	enabled = false

	assert.Equal(t, "hi", Colorize("hi", Bold), "disabled color returns the input unchanged")
}
