// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Arrow shows an arrow pointing in a direction and waits for the left
// or right arrow key. Correct is set to 1 when the key matches the
// horizontal direction of the arrow.
type Arrow struct {
	BackgroundColor *expar.Par
	Color           *expar.Par

	// Direction is the clockwise angle in degrees, 0 pointing right.
	Direction  *expar.Par
	Length     *expar.Par
	ShaftWidth *expar.Par
	HeadSize   *expar.Par

	// Correct is 1 after a correct response and 0 otherwise.
	Correct *expar.Par

	arrow *display.Polygon
}

func (ar *Arrow) Create(d *display.Display) int {
	ar.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	ar.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.White))
	ar.Direction = d.NewPar("Direction", expar.Double, expar.DoubleValue(0))
	ar.Length = d.NewPar("Length", expar.Double, expar.DoubleValue(120))
	ar.ShaftWidth = d.NewPar("ShaftWidth", expar.Double, expar.DoubleValue(12))
	ar.HeadSize = d.NewPar("HeadSize", expar.Double, expar.DoubleValue(40))
	ar.Correct = d.NewDerived("Correct", expar.Int, expar.IntValue(0))

	bg := d.Enter(display.NewBackground(ar.BackgroundColor), 0)
	ar.arrow = display.NewPolygon(ar.Color)
	d.Enter(ar.arrow, 0)
	d.EnterTiming(0, timing.Response{
		Keys:    []key.Codes{key.CodeLeftArrow, key.CodeRightArrow},
		Timeout: timing.Milliseconds(3000),
	})
	return bg
}

func (ar *Arrow) ComputeColors(d *display.Display) {}

// ComputeGeometry builds the arrow pointing right and rotates it.
func (ar *Arrow) ComputeGeometry(d *display.Display) {
	l := ar.Length.Float32() / 2
	w := ar.ShaftWidth.Float32() / 2
	h := math32.Min(ar.HeadSize.Float32(), 2*l)
	x := l - h
	pts := []math32.Vector2{
		{X: -l, Y: -w}, {X: x, Y: -w}, {X: x, Y: -h / 2}, {X: l, Y: 0},
		{X: x, Y: h / 2}, {X: x, Y: w}, {X: -l, Y: w},
	}
	ar.arrow.SetPoints(math32.Transform(pts, ar.Direction.Float32(), math32.Vector2{}))
}

// Expected returns the key matching the direction of the arrow.
func (ar *Arrow) Expected() key.Codes {
	if math32.Cos(math32.DegToRad(ar.Direction.Float32())) < 0 {
		return key.CodeLeftArrow
	}
	return key.CodeRightArrow
}

func (ar *Arrow) TimingGroupFinished(d *display.Display, group int) {
	te := d.List.Timing(group)
	ok := te != nil && timing.StopReasons(te.Code.Int()).IsResponse() &&
		te.Response.Int() == int(ar.Expected())
	d.Set(ar.Correct, expar.BoolValue(ok))
}
