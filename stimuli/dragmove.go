// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/math32"
)

// DragMove is a mixin letting the subject move selectable elements
// with the pointer. If the behavior of the display is a [Dropper] it
// decides where a dropped element lands.
type DragMove struct {

	// Moves counts the completed moves.
	Moves int

	grabbed int
	offset  math32.Vector2
	start   math32.Vector2
}

// Dropper decides the final position of an element dropped at the
// given position after being dragged from start.
type Dropper interface {
	Drop(d *display.Display, i int, start, drop math32.Vector2) math32.Vector2
}

func (dm *DragMove) CreateMixin(d *display.Display) {
	dm.grabbed = -1
}

// Grabbed returns the list index of the element being dragged, or -1.
func (dm *DragMove) Grabbed() int {
	return dm.grabbed
}

func (dm *DragMove) PointerActivated(d *display.Display, ev *events.Mouse) bool {
	pt := math32.FromPoint(ev.Where)
	i, ok := hitSelectable(d, pt)
	if !ok {
		return false
	}
	c, ok := centerOf(d.List.At(i))
	if !ok {
		return false
	}
	dm.grabbed, dm.start, dm.offset = i, c, c.Sub(pt)
	return true
}

func (dm *DragMove) PointerDragged(d *display.Display, ev *events.Mouse) bool {
	if dm.grabbed < 0 {
		return false
	}
	setCenter(d.List.At(dm.grabbed), math32.FromPoint(ev.Where).Add(dm.offset))
	return true
}

func (dm *DragMove) PointerReleased(d *display.Display, ev *events.Mouse) bool {
	if dm.grabbed < 0 {
		return false
	}
	i := dm.grabbed
	dm.grabbed = -1
	drop := math32.FromPoint(ev.Where).Add(dm.offset)
	if dr, ok := d.Behavior.(Dropper); ok {
		drop = dr.Drop(d, i, dm.start, drop)
	}
	setCenter(d.List.At(i), drop)
	dm.Moves++
	return true
}

// centerOf returns the center of elements that can be moved.
func centerOf(el display.Element) (math32.Vector2, bool) {
	switch x := el.(type) {
	case *display.Rect:
		return x.Center, !x.FullScreen
	case *display.Oval:
		return x.Center, true
	case *display.Bitmap:
		return x.Center, true
	case *display.Text:
		return x.Center, true
	}
	return math32.Vector2{}, false
}

func setCenter(el display.Element, c math32.Vector2) {
	switch x := el.(type) {
	case *display.Rect:
		x.Center = c
	case *display.Oval:
		x.Center = c
	case *display.Bitmap:
		x.Center = c
	case *display.Text:
		x.Center = c
	default:
		return
	}
	el.AsBase().Invalidate()
}
