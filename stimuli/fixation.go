// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Fixation shows a fixation cross, then a briefly flashed target,
// then a blank screen, each for a fixed time: 500, 100 and 1000 ms
// unless the Group<g>.Duration parameters say otherwise.
type Fixation struct {
	BackgroundColor *expar.Par
	Color           *expar.Par
	Size            *expar.Par
	LineWidth       *expar.Par
	TargetColor     *expar.Par
	TargetSize      *expar.Par
	TargetPosition  *expar.Par

	horizontal, vertical *display.Line
	target               *display.Oval
}

func (fx *Fixation) Create(d *display.Display) int {
	fx.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	fx.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.White))
	fx.Size = d.NewPar("Size", expar.Double, expar.DoubleValue(20))
	fx.LineWidth = d.NewPar("LineWidth", expar.Double, expar.DoubleValue(2))
	fx.TargetColor = d.NewPar("TargetColor", expar.Color, expar.ColorValue(colors.Gray(60)))
	fx.TargetSize = d.NewPar("TargetSize", expar.Double, expar.DoubleValue(30))
	fx.TargetPosition = d.NewPar("TargetPosition", expar.Array, expar.Numbers(120, 0))

	bg := d.Enter(display.NewBackground(fx.BackgroundColor), 0, 1, 2)
	fx.horizontal = display.NewLine(fx.Color, math32.Vector2{}, math32.Vector2{}, 2)
	fx.vertical = display.NewLine(fx.Color, math32.Vector2{}, math32.Vector2{}, 2)
	d.Enter(fx.horizontal, 0)
	d.Enter(fx.vertical, 0)
	fx.target = display.NewOval(fx.TargetColor, math32.Vector2{}, math32.Vector2{})
	d.Enter(fx.target, 1)

	d.EnterTiming(0, timing.Clock{Duration: timing.Milliseconds(500)})
	d.EnterTiming(1, timing.Clock{Duration: timing.Milliseconds(100)})
	d.EnterTiming(2, timing.Clock{Duration: timing.Milliseconds(1000)})
	return bg
}

func (fx *Fixation) ComputeColors(d *display.Display) {}

func (fx *Fixation) ComputeGeometry(d *display.Display) {
	s := fx.Size.Float32() / 2
	w := fx.LineWidth.Float32()
	fx.horizontal.Width, fx.vertical.Width = w, w
	fx.horizontal.SetLine(math32.Vec2(-s, 0), math32.Vec2(s, 0))
	fx.vertical.SetLine(math32.Vec2(0, -s), math32.Vec2(0, s))
	ts := fx.TargetSize.Float32()
	fx.target.SetOval(vec(fx.TargetPosition), math32.Vec2(ts, ts))
}
