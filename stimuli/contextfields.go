// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"fmt"
	"log/slog"

	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// ContextFields shows a ring of square context fields around the
// center of the background, as used for simultaneous contrast
// experiments. The number of fields is a parameter; changing it
// rebuilds the display list on the next geometry pass.
type ContextFields struct {
	BackgroundColor *expar.Par

	// NumberOfContextFields is the number of fields in the ring.
	NumberOfContextFields *expar.Par
	FieldColor            *expar.Par
	FieldSize             *expar.Par
	Radius                *expar.Par

	// FieldLuminances holds the luminance of each field, computed
	// from FieldColor and Contrast alternating around the ring.
	FieldLuminances *expar.Par
	Contrast        *expar.Par

	colors []*expar.Par
}

// firstField is the list index of the first context field, after
// the background.
const firstField = 1

func (cf *ContextFields) Create(d *display.Display) int {
	cf.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	cf.NumberOfContextFields = d.NewPar("NumberOfContextFields", expar.Int, expar.IntValue(4))
	cf.FieldColor = d.NewPar("FieldColor", expar.Color, expar.ColorValue(colors.Gray(40)))
	cf.FieldSize = d.NewPar("FieldSize", expar.Double, expar.DoubleValue(60))
	cf.Radius = d.NewPar("Radius", expar.Double, expar.DoubleValue(120))
	cf.Contrast = d.NewPar("Contrast", expar.Double, expar.DoubleValue(0.5))
	cf.FieldLuminances = d.NewDerived("FieldLuminances", expar.Array, expar.Value{})

	bg := d.Enter(display.NewBackground(cf.BackgroundColor), 0)
	d.EnterTiming(0, timing.Response{Pointer: true, Timeout: timing.Milliseconds(5000)})
	return bg
}

func (cf *ContextFields) count(d *display.Display) int {
	n := cf.NumberOfContextFields.Int()
	if n < 0 {
		d.Ctx.ReportConfigError(cf.NumberOfContextFields, errNegative)
		return 0
	}
	return n
}

// ComputeColors computes alternating field luminances, each field
// with a color parameter of its own.
func (cf *ContextFields) ComputeColors(d *display.Display) {
	n := cf.count(d)
	base := cf.FieldColor.Color()
	c := cf.Contrast.Double()
	lums := make([]float64, n)
	for i := range n {
		if i%2 == 0 {
			lums[i] = base.Lum * (1 + c)
		} else {
			lums[i] = base.Lum * (1 - c)
		}
	}
	d.Set(cf.FieldLuminances, expar.Numbers(lums...))
	cf.ensureColors(d, n)
	for i, l := range lums {
		d.Set(cf.colors[i], expar.ColorValue(base.WithLum(l)))
	}
}

func (cf *ContextFields) ComputeGeometry(d *display.Display) {
	n := cf.count(d)
	cf.ensureColors(d, n)
	rebuilt := d.List.Ensure(firstField, n, func(i int) (display.Element, display.Mask) {
		return display.NewRect(cf.colors[i], math32.Vector2{}, math32.Vector2{}), display.Groups(0)
	})
	if rebuilt {
		slog.Debug("context fields rebuilt", "display", d.Name, "fields", n)
	}
	r := cf.Radius.Float32()
	s := cf.FieldSize.Float32()
	centers := math32.RegularPolygon(math32.Vector2{}, r, n, -90)
	for i, c := range centers {
		d.List.At(firstField + i).(*display.Rect).SetRect(c, math32.Vec2(s, s))
	}
}

// ensureColors creates the color parameters of the first n fields.
// They are kept when the number of fields shrinks.
func (cf *ContextFields) ensureColors(d *display.Display, n int) {
	for i := len(cf.colors); i < n; i++ {
		cf.colors = append(cf.colors, d.NewDerived(fmt.Sprintf("Field%d.Color", i), expar.Color, expar.Value{}))
	}
}
