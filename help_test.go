// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "double space after period",
			in:   "Does X.  Also Y.",
			want: "Does X. Also Y.",
		},
		{
			name: "embedded newlines and tabs",
			in:   "Line one\n\tline two\nline three",
			want: "Line one line two line three",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "only whitespace",
			in:   " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDescription(tt.in))
		})
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := strings.Repeat("word ", 40)

	lines := wrapText(text, helpWrapWidth)

	assert.NotEmpty(t, lines)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), helpWrapWidth)
	}

	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")),
		"wrapping reflows but never drops words")
}

func TestWrapTextLongWord(t *testing.T) {
	long := strings.Repeat("x", helpWrapWidth+10)

	lines := wrapText("a "+long+" b", helpWrapWidth)

	assert.Contains(t, lines, long, "a word longer than the width gets its own line")
}

func TestRootHelpRendersNormalizedDescriptions(t *testing.T) {
	a, out, _ := testApp(Descriptor{
		Name: "assemble",
		New: func(a *App) (*cli.Command, error) {
			cmd := &cli.Command{
				Description: "Does X.  Also Y.",
			}

			return a.AttachMain(cmd, Main{
				Run: func(context.Context, Values) error { return nil },
			})
		},
	}, Descriptor{Name: "align", New: noopCmd()})

	code := a.Run(context.Background(), []string{"prog"})

	assert.Zero(t, code)

	help := out.String()

	assert.Contains(t, help, "assemble")
	assert.Contains(t, help, "align")
	assert.Contains(t, help, "Does X. Also Y.")
	assert.NotContains(t, help, "Does X.  Also Y.", "runs of whitespace collapse")
	assert.Contains(t, help, "usage: prog subcommand")
	assert.Contains(t, help, "A test program.")
}

func TestRootHelpWrapsLongDescriptions(t *testing.T) {
	long := strings.Repeat("every word counts ", 10)

	a, out, _ := testApp(Descriptor{
		Name: "assemble",
		New: func(a *App) (*cli.Command, error) {
			cmd := &cli.Command{Description: long}

			return a.AttachMain(cmd, Main{
				Run: func(context.Context, Values) error { return nil },
			})
		},
	}, Descriptor{Name: "align", New: noopCmd()})

	assert.Zero(t, a.Run(context.Background(), []string{"prog"}))

	for _, line := range strings.Split(out.String(), "\n") {
		if !strings.HasPrefix(line, helpIndent+helpIndent) {
			continue
		}

		assert.LessOrEqual(t, len(strings.TrimLeft(line, " ")), helpWrapWidth)
	}
}

func TestRootVersionFlag(t *testing.T) {
	a, out, _ := testApp(
		Descriptor{Name: "one", New: noopCmd()},
		Descriptor{Name: "two", New: noopCmd()},
	)
	a.Version = "3.2.1"

	code := a.Run(context.Background(), []string{"prog", "--version", "x"})

	assert.Zero(t, code)
	assert.Contains(t, out.String(), "3.2.1")
}
