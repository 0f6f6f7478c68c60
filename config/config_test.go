// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/pxlab/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 1024, c.Screen.Width)
	assert.Equal(t, 60.0, c.Screen.RefreshRate)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, 200*time.Millisecond, c.Run.Debounce)
	code, err := c.Run.Abort()
	require.NoError(t, err)
	assert.Equal(t, key.CodeEscape, code)
	assert.NoError(t, c.Check())
	assert.InDelta(t, float64(time.Second/60), float64(c.Screen.Period()), 1)
}

func TestOpenSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "config.toml")
	c := Default()
	c.Screen.Width = 800
	c.Run.Frames = "frames"
	require.NoError(t, c.Save(fn))

	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	require.NoError(t, os.WriteFile(fn, []byte("[screen]\nheight = 600\n"), 0o644))
	got, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 600, got.Screen.Height)
	assert.Equal(t, 1024, got.Screen.Width)

	require.NoError(t, os.WriteFile(fn, []byte("[screen]\nrefresh_rate = 0\n[run]\nabort_key = \"nokey\"\n"), 0o644))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "refresh rate")
	assert.ErrorContains(t, err, "nokey")

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
