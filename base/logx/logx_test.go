// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, slog.LevelInfo))
	lg.Debug("hidden")
	lg.With("display", "Arrow").WithGroup("group").Info("finished", "index", 2)
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "display=Arrow")
	assert.Contains(t, out, "group.index=2")
}
