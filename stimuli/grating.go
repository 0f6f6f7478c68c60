// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"cogentcore.org/pxlab/anim"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Grating shows a drifting sinusoidal luminance grating. One cycle of
// the drift is precomputed as a table of frames, which is rebuilt
// only when a parameter affecting the frames changes.
type Grating struct {
	BackgroundColor *expar.Par

	// MeanColor is the mean color of the grating; its luminance is
	// modulated.
	MeanColor *expar.Par
	Contrast  *expar.Par
	Size      *expar.Par

	// Period is the spatial period in pixels.
	Period *expar.Par

	// Orientation is the clockwise rotation in degrees, 0 giving
	// vertical bars drifting right.
	Orientation    *expar.Par
	FramesPerCycle *expar.Par

	// Ticks is the number of refresh ticks the grating is shown.
	Ticks *expar.Par

	bitmap *display.Bitmap
	table  *anim.Table[*image.RGBA]
}

func (gr *Grating) Create(d *display.Display) int {
	gr.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	gr.MeanColor = d.NewPar("MeanColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	gr.Contrast = d.NewPar("Contrast", expar.Double, expar.DoubleValue(0.8))
	gr.Size = d.NewPar("Size", expar.Int, expar.IntValue(128))
	gr.Period = d.NewPar("Period", expar.Double, expar.DoubleValue(32))
	gr.Orientation = d.NewPar("Orientation", expar.Double, expar.DoubleValue(0))
	gr.FramesPerCycle = d.NewPar("FramesPerCycle", expar.Int, expar.IntValue(16))
	gr.Ticks = d.NewPar("Ticks", expar.Int, expar.IntValue(120))
	gr.table = anim.NewTable[*image.RGBA](gr.MeanColor, gr.Contrast, gr.Size, gr.Period)

	bg := d.Enter(display.NewBackground(gr.BackgroundColor), 0)
	gr.bitmap = display.NewBitmap(nil, math32.Vector2{})
	d.Enter(gr.bitmap, 0)
	d.EnterTiming(0, timing.VSyncClock{Ticks: gr.Ticks.Int()})
	return bg
}

func (gr *Grating) ComputeColors(d *display.Display) {}

// ComputeGeometry updates the frame table and the timer.
func (gr *Grating) ComputeGeometry(d *display.Display) {
	n := max(gr.FramesPerCycle.Int(), 1)
	if gr.table.Update(n, func(i int) *image.RGBA { return gr.render(i, n) }) {
		gr.bitmap.SetImage(gr.table.Frames[0])
	}
	gr.bitmap.SetAngle(gr.Orientation.Double())
	if te := d.List.Timing(0); te != nil {
		te.Policy = timing.VSyncClock{Ticks: gr.Ticks.Int()}
	}
}

// render draws the given frame of a cycle of n frames.
func (gr *Grating) render(frame, n int) *image.RGBA {
	size := max(gr.Size.Int(), 1)
	period := gr.Period.Double()
	if period <= 0 {
		period = float64(size)
	}
	mean := gr.MeanColor.Color()
	c := gr.Contrast.Double()
	phase := 2 * math.Pi * float64(frame) / float64(n)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := range size {
		lum := mean.Lum * (1 + c*math.Sin(2*math.Pi*float64(x)/period-phase))
		col := color.RGBAModel.Convert(mean.WithLum(lum))
		draw.Draw(img, image.Rect(x, 0, x+1, size), image.NewUniform(col), image.Point{}, draw.Src)
	}
	return img
}

func (gr *Grating) Animation(d *display.Display) anim.Config {
	return anim.Config{FramesPerCycle: gr.table.Len(), Mode: anim.Cyclic}
}

func (gr *Grating) ComputeAnimationFrame(d *display.Display, frame int) {
	if img, ok := gr.table.Frame(frame); ok {
		gr.bitmap.SetImage(img)
	}
}
