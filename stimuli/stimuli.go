// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stimuli provides stimulus behaviors and the mixins they are
// composed with, and a registry creating displays by type name.
//
// Positions and sizes are in pixels with the origin at the center of
// the screen and y growing downward. Durations are in milliseconds.
package stimuli

import (
	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
)

// vec reads a two number array parameter as a vector. A scalar is
// used for both components.
func vec(p *expar.Par) math32.Vector2 {
	a := p.Array()
	switch len(a) {
	case 0:
		return math32.Vector2{}
	case 1:
		f := float32(a[0].Double())
		return math32.Vec2(f, f)
	}
	return math32.Vec2(float32(a[0].Double()), float32(a[1].Double()))
}

// hitSelectable returns the index of the topmost selectable element
// of the active group under the pointer.
func hitSelectable(d *display.Display, pt math32.Vector2) (int, bool) {
	i, el, ok := d.HitTest(pt)
	if !ok || !el.AsBase().Selectable {
		return -1, false
	}
	return i, true
}

var errNegative = errors.New("negative count, using 0")
