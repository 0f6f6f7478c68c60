// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"image"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/base/iox/imagex"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/timing"
	"github.com/mitchellh/go-homedir"
)

// Picture shows an image file, optionally rotated. The file content
// is checked to be an image whatever its name; a file that cannot be
// read is replaced by an empty image of FallbackSize.
type Picture struct {
	BackgroundColor *expar.Par
	FileName        *expar.Par
	Position        *expar.Par

	// Angle is the clockwise rotation in degrees.
	Angle        *expar.Par
	FallbackSize *expar.Par

	// Format is the format of the loaded file.
	Format imagex.Formats

	bitmap *display.Bitmap
	loaded string
}

func (pc *Picture) Create(d *display.Display) int {
	pc.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	pc.FileName = d.NewPar("FileName", expar.String, expar.StringValue(""))
	pc.Position = d.NewPar("Position", expar.Array, expar.Numbers(0, 0))
	pc.Angle = d.NewPar("Angle", expar.Double, expar.DoubleValue(0))
	pc.FallbackSize = d.NewPar("FallbackSize", expar.Int, expar.IntValue(64))

	bg := d.Enter(display.NewBackground(pc.BackgroundColor), 0)
	pc.bitmap = display.NewBitmap(nil, vec(pc.Position))
	d.Enter(pc.bitmap, 0)
	d.EnterTiming(0, timing.Clock{Duration: timing.Milliseconds(1000)})
	return bg
}

func (pc *Picture) ComputeColors(d *display.Display) {}

func (pc *Picture) ComputeGeometry(d *display.Display) {
	if fn := pc.FileName.Str(); fn != pc.loaded || pc.bitmap.Image == nil {
		pc.bitmap.SetImage(pc.load(d, fn))
		pc.loaded = fn
	}
	pc.bitmap.Center = vec(pc.Position)
	pc.bitmap.SetAngle(pc.Angle.Double())
}

func (pc *Picture) load(d *display.Display, fn string) image.Image {
	path, err := homedir.Expand(fn)
	if err == nil {
		var img image.Image
		img, pc.Format, err = imagex.Open(path)
		if err == nil {
			return img
		}
	}
	d.Ctx.ReportConfigError(pc.FileName, errors.Unavailable(fn, err))
	pc.Format = imagex.None
	s := max(pc.FallbackSize.Int(), 1)
	return image.NewRGBA(image.Rect(0, 0, s, s))
}
