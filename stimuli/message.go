// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"strings"

	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Message shows lines of text, such as instructions, until the space
// bar or the return key is pressed.
type Message struct {
	BackgroundColor *expar.Par
	Color           *expar.Par

	// Text is the message; lines are separated by newlines.
	Text        *expar.Par
	LineSpacing *expar.Par
}

// firstLine is the list index of the first text line.
const firstLine = 1

func (ms *Message) Create(d *display.Display) int {
	ms.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	ms.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.White))
	ms.Text = d.NewPar("Text", expar.String, expar.StringValue("Press the space bar to continue"))
	ms.LineSpacing = d.NewPar("LineSpacing", expar.Double, expar.DoubleValue(20))

	bg := d.Enter(display.NewBackground(ms.BackgroundColor), 0)
	d.EnterTiming(0, timing.Response{Keys: []key.Codes{key.CodeSpacebar, key.CodeReturnEnter}})
	return bg
}

func (ms *Message) ComputeColors(d *display.Display) {}

func (ms *Message) ComputeGeometry(d *display.Display) {
	lines := strings.Split(ms.Text.Str(), "\n")
	d.List.Ensure(firstLine, len(lines), func(i int) (display.Element, display.Mask) {
		return display.NewText(ms.Color, "", math32.Vector2{}), display.Groups(0)
	})
	sp := ms.LineSpacing.Float32()
	y0 := -sp * float32(len(lines)-1) / 2
	for i, ln := range lines {
		d.List.At(firstLine+i).(*display.Text).SetText(ln, math32.Vec2(0, y0+sp*float32(i)))
	}
}
