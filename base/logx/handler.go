// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal profile.
type Handler struct {
	w      io.Writer
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr
}

// NewHandler returns a new [Handler] writing to w, showing records
// at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{w: w, out: termenv.NewOutput(w), mu: &sync.Mutex{}, level: level}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// on [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// levelColors are ANSI color indexes for each level.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "8",
	slog.LevelInfo:  "4",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

func (h *Handler) levelString(level slog.Level) string {
	s := h.out.String(level.String())
	if c, ok := levelColors[level]; ok {
		s = s.Foreground(h.out.Color(c))
	}
	if level >= slog.LevelError {
		s = s.Bold()
	}
	return s.String()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix+a.Key+".", ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.Resolve().String())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}
