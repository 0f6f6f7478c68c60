// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"log/slog"
	"math"

	"cogentcore.org/pxlab/base/num"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// ColorAdjust is a mixin letting the subject adjust a color parameter
// of the display in HSB space with the keyboard: up and down change
// the brightness, left and right the hue, and the h and s keys the
// saturation down and up. The color stays in the device gamut.
type ColorAdjust struct {

	// Par is the short name of the adjusted color parameter.
	Par string

	// Step is the brightness and saturation step, in [0, 1].
	Step *expar.Par

	// HueStep is the hue step in degrees.
	HueStep *expar.Par

	// Adjustments counts the adjustments made.
	Adjustments int

	target *expar.Par
}

func (ca *ColorAdjust) CreateMixin(d *display.Display) {
	ca.Step = d.NewPar("AdjustStep", expar.Double, expar.DoubleValue(0.02))
	ca.HueStep = d.NewPar("AdjustHueStep", expar.Double, expar.DoubleValue(5))
	p, err := d.Par(ca.Par)
	if err != nil {
		slog.Warn("color adjustment disabled", "display", d.Name, "err", err)
		return
	}
	ca.target = p
}

func (ca *ColorAdjust) KeyResponse(d *display.Display, ev *events.Key) bool {
	if ca.target == nil {
		return false
	}
	h, s, v := ca.target.Color().Colorful().Hsv()
	step := ca.Step.Double()
	switch ev.Code {
	case key.CodeUpArrow:
		v += step
	case key.CodeDownArrow:
		v -= step
	case key.CodeRightArrow:
		h += ca.HueStep.Double()
	case key.CodeLeftArrow:
		h -= ca.HueStep.Double()
	case key.CodeS:
		s += step
	case key.CodeH:
		s -= step
	default:
		return false
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colors.FromHSV(h, num.Clamp(s, 0, 1), num.Clamp(v, 0, 1))
	if err := ca.target.Set(expar.ColorValue(c)); err != nil {
		d.Ctx.ReportConfigError(ca.target, err)
		return false
	}
	ca.Adjustments++
	return true
}

// Patch shows a centered color patch on a background. Its group ends
// with the return key. Registered as ColorAdjust together with the
// [ColorAdjust] mixin bound to its Color parameter.
type Patch struct {
	BackgroundColor *expar.Par
	Color           *expar.Par
	Size            *expar.Par

	patch *display.Rect
}

func (pt *Patch) Create(d *display.Display) int {
	pt.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	pt.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.FromHSV(0, 0.5, 0.5)))
	pt.Size = d.NewPar("Size", expar.Array, expar.Numbers(100, 100))

	bg := d.Enter(display.NewBackground(pt.BackgroundColor), 0)
	pt.patch = display.NewRect(pt.Color, math32.Vector2{}, math32.Vector2{})
	d.Enter(pt.patch, 0)
	d.EnterTiming(0, timing.Response{Keys: []key.Codes{key.CodeReturnEnter}})
	return bg
}

func (pt *Patch) ComputeColors(d *display.Display) {}

func (pt *Patch) ComputeGeometry(d *display.Display) {
	pt.patch.SetRect(math32.Vector2{}, vec(pt.Size))
}
