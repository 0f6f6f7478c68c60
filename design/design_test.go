// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package design

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/present"
	"cogentcore.org/pxlab/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlDesign = `
version = "1.0"
title = "fixation then selection"
trials = 3

[[display]]
type = "Fixation"
name = "Fix"
params = { Size = 30, TargetSize = "=2 * Num(\"Trial.Fix.Size\")", TargetColor = "#ff0000" }

[[display.timer]]
group = 1
duration = 200

[[display]]
type = "SelectionGrid"

[display.params]
Rows = 1
Columns = 4

[[display.timer]]
group = 0
keys = ["space"]
timeout = 500
`

const yamlDesign = `
version: 1.2.0
display:
  - type: Arrow
    params:
      Direction: 180
      Length: 80
    timer:
      - group: 0
        timer: clock
        duration: 250
`

func TestReadTOML(t *testing.T) {
	df, err := Read(strings.NewReader(tomlDesign), TOML)
	require.NoError(t, err)
	assert.Equal(t, 3, df.NumTrials())
	require.Len(t, df.Displays, 2)
	assert.Equal(t, "Fix", df.Displays[0].Name)
	assert.Equal(t, "SelectionGrid", df.Displays[1].Name)
	require.Len(t, df.Displays[0].Timers, 1)
	assert.Equal(t, 1, df.Displays[0].Timers[0].Group)
	assert.Equal(t, 200.0, df.Displays[0].Timers[0].Duration)
	assert.Equal(t, []string{"space"}, df.Displays[1].Timers[0].Keys)
}

func TestBuild(t *testing.T) {
	df, err := Read(strings.NewReader(tomlDesign), TOML)
	require.NoError(t, err)
	ctx := expar.NewContext()
	clock := present.NewSimClock(time.Millisecond)
	c := present.NewController(present.NewScheduler(clock, nil))
	ds, err := Build(c, ctx, df)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	fix, grid := ds[0], ds[1]
	assert.True(t, fix.Created())

	size, err := fix.Par("TargetSize")
	require.NoError(t, err)
	assert.Equal(t, expar.Expression, size.Kind)
	assert.Equal(t, 60.0, size.Double())
	col, err := fix.Par("TargetColor")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(col.Color()))

	res, err := c.Present(context.Background(), fix)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, res.Group(1).Elapsed)
	assert.Equal(t, 1700*time.Millisecond, res.Duration())

	pol := grid.List.Timing(0).Policy.(timing.Response)
	assert.Equal(t, []key.Codes{key.CodeSpacebar}, pol.Keys)
	assert.Equal(t, 500*time.Millisecond, pol.Timeout)
	res, err = c.Present(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, res.Group(0).Elapsed)
	assert.Equal(t, 5, grid.List.Len())
}

func TestReadYAML(t *testing.T) {
	df, err := Read(strings.NewReader(yamlDesign), YAML)
	require.NoError(t, err)
	require.Len(t, df.Displays, 1)
	assert.Equal(t, "Arrow", df.Displays[0].Name)
	assert.Equal(t, "clock", df.Displays[0].Timers[0].Kind)

	ctx := expar.NewContext()
	c := present.NewController(present.NewScheduler(present.NewSimClock(10*time.Millisecond), nil))
	ds, err := Build(c, ctx, df)
	require.NoError(t, err)
	arrow := ds[0]
	assert.Equal(t, timing.Clock{Duration: 250 * time.Millisecond}, arrow.List.Timing(0).Policy)
	dir, err := arrow.Par("Direction")
	require.NoError(t, err)
	assert.Equal(t, 180.0, dir.Double())
}

func TestVersion(t *testing.T) {
	for _, v := range []string{"", "2.0.0", "0.9", "abc"} {
		src := "version = \"" + v + "\"\n"
		_, err := Read(strings.NewReader(src), TOML)
		assert.Error(t, err, v)
	}
	_, err := Read(strings.NewReader("version = \"1.9.3\"\n"), TOML)
	assert.NoError(t, err)
}

func TestCheck(t *testing.T) {
	_, err := Read(strings.NewReader("version = \"1.0\"\n[[display]]\nname = \"x\"\n"), TOML)
	assert.ErrorContains(t, err, "no type")
	_, err = Read(strings.NewReader("version = \"1.0\"\n[[display]]\ntype = \"Arrow\"\n[[display]]\ntype = \"Arrow\"\n"), TOML)
	assert.ErrorContains(t, err, "duplicate")
	_, err = Read(strings.NewReader("version = \"1.0\"\ncolour = 3\n"), TOML)
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	src := `
version = "1.0"
[[display]]
type = "Arrow"
params = { Lenght = 10, Direction = { a = 1 } }
[[display.timer]]
group = 3
[[display]]
type = "Arow"
`
	df, err := Read(strings.NewReader(src), TOML)
	require.NoError(t, err)
	ctx := expar.NewContext()
	c := present.NewController(present.NewScheduler(present.NewSimClock(time.Millisecond), nil))
	ds, err := Build(c, ctx, df)
	require.Error(t, err)
	assert.Len(t, ds, 1)
	msg := err.Error()
	assert.Contains(t, msg, `did you mean "Length"`)
	assert.Contains(t, msg, "unsupported value")
	assert.Contains(t, msg, "no timing group 3")
	assert.Contains(t, msg, `did you mean "Arrow"`)
}

func TestOpenWrite(t *testing.T) {
	df, err := Read(strings.NewReader(tomlDesign), TOML)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"exp.toml", "exp.yaml"} {
		format, err := FormatOf(name)
		require.NoError(t, err)
		var b bytes.Buffer
		require.NoError(t, Write(&b, df, format))
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, b.Bytes(), 0o644))
		got, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, df.Title, got.Title)
		assert.Len(t, got.Displays, 2)
		assert.Equal(t, 2, len(got.Displays[1].Params))
	}
	_, err = FormatOf("exp.json")
	assert.Error(t, err)
	assert.Contains(t, df.String(), "SelectionGrid")
}
