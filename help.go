// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
)

const (
	helpWrapWidth = 60
	helpIndent    = "     "
)

var boldStyle = lipgloss.NewStyle().Bold(true)

func helpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    HelpFlagName,
		Aliases: []string{"h"},
		Usage:   "Show help.",
	}
}

// rootAction runs when no subcommand is selected: it handles the root
// --version flag and otherwise renders the enumerating help.
func (a *App) rootAction(_ context.Context, c *cli.Command) error {
	if c.Bool(VersionFlagName) {
		fmt.Fprintln(c.Writer, a.version())
		return nil
	}

	if c.Args().Present() {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Args().First())
	}

	a.renderHelp(c)

	return nil
}

// renderHelp enumerates every subcommand with its invocation syntax
// and a word-wrapped description, then falls through to a usage
// summary of the root options.
func (a *App) renderHelp(c *cli.Command) {
	w := c.Writer

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Enter a subcommand to view additional information:")

	for _, sub := range c.Commands {
		fmt.Fprintf(w, "\n%s%s %s [...]\n", helpIndent, c.Name, boldStyle.Render(sub.Name))

		desc := sub.Description
		if desc == "" {
			desc = sub.Usage
		}

		desc = normalizeDescription(desc)
		if desc == "" {
			continue
		}

		for _, line := range wrapText(desc, helpWrapWidth) {
			fmt.Fprintf(w, "%s%s\n", helpIndent+helpIndent, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "usage: %s subcommand\n", c.Name)

	if d := normalizeDescription(c.Description); d != "" {
		fmt.Fprintln(w)

		for _, line := range wrapText(d, helpWrapWidth) {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "options:")

	for _, f := range c.Flags {
		fmt.Fprintf(w, "%s%s\n", helpIndent, f.String())
	}
}

// normalizeDescription collapses line breaks and runs of whitespace
// from multi-line declarations into single spaces.
func normalizeDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrapText greedily wraps words to the given column width.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		cur   strings.Builder
	)

	for _, word := range words {
		if cur.Len() == 0 {
			cur.WriteString(word)
			continue
		}

		if cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)

			continue
		}

		cur.WriteString(" ")
		cur.WriteString(word)
	}

	lines = append(lines, cur.String())

	return lines
}
