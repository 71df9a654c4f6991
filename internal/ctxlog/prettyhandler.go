// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/dispatch/internal/color"
)

var (
	// ErrMarshalAttribute is returned when an attribute cannot be marshaled.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when the handler cannot write to its output.
	ErrIoWrite = errors.New("error when writing to output")
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 0
	jsonFormatter.DisabledColor = !color.Enabled()
}

// Pretty is a slog handler that renders records as a single line of
// human-readable structured text: timestamp, level name, message, and
// the remaining attributes as compact JSON.
type Pretty struct {
	inner slog.Handler
	buf   *bytes.Buffer
	mu    *sync.Mutex
	w     io.Writer
}

// Option configures a Pretty handler.
type Option func(*Pretty)

// WithWriter sets the destination writer.
func WithWriter(w io.Writer) Option {
	return func(p *Pretty) {
		p.w = w
	}
}

// NewPretty creates a Pretty handler with the given slog options.
func NewPretty(opts *slog.HandlerOptions, options ...Option) *Pretty {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	p := &Pretty{
		buf: buf,
		mu:  &sync.Mutex{},
		w:   os.Stderr,
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: suppressDefaults(opts.ReplaceAttr),
		}),
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Enabled implements slog.Handler.
func (p *Pretty) Enabled(ctx context.Context, level slog.Level) bool {
	return p.inner.Enabled(ctx, level)
}

// WithAttrs implements slog.Handler.
func (p *Pretty) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Pretty{inner: p.inner.WithAttrs(attrs), buf: p.buf, mu: p.mu, w: p.w}
}

// WithGroup implements slog.Handler.
func (p *Pretty) WithGroup(name string) slog.Handler {
	return &Pretty{inner: p.inner.WithGroup(name), buf: p.buf, mu: p.mu, w: p.w}
}

// Handle implements slog.Handler.
func (p *Pretty) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := p.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrJSON []byte

	if len(attrs) > 0 {
		attrJSON, err = jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	out := strings.Builder{}
	out.WriteString(color.Colorize(r.Time.Format(TimeFormat), color.FgWhite))
	out.WriteString(" ")
	out.WriteString(levelTag(r.Level))
	out.WriteString(" ")
	out.WriteString(color.Colorize(r.Message, color.FgHiWhite))

	if len(attrJSON) > 0 {
		out.WriteString(" ")
		out.Write(attrJSON)
	}

	out.WriteString("\n")

	if _, err := io.WriteString(p.w, out.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

// computeAttrs round-trips the record through the inner JSON handler
// so that groups and ReplaceAttr are applied consistently.
func (p *Pretty) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	p.mu.Lock()
	defer func() {
		p.buf.Reset()
		p.mu.Unlock()
	}()

	if err := p.inner.Handle(ctx, r); err != nil {
		return nil, errors.Join(ErrMarshalAttribute, err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(p.buf.Bytes(), &attrs); err != nil {
		return nil, errors.Join(ErrMarshalAttribute, err)
	}

	return attrs, nil
}

func levelTag(l slog.Level) string {
	tag := LevelName(l) + ":"

	switch {
	case l < slog.LevelInfo:
		return color.Colorize(tag, color.FgWhite)
	case l < slog.LevelWarn:
		return color.Colorize(tag, color.FgCyan)
	case l < slog.LevelError:
		return color.Colorize(tag, color.FgYellow)
	case l < LevelCritical:
		return color.Colorize(tag, color.FgRed)
	default:
		return color.Colorize(tag, color.FgHiMagenta)
	}
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 &&
			(a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
