// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// Selection is a mixin that lets the subject select and deselect the
// selectable elements of a display by clicking them. Selected
// elements are painted with SelectionColor.
//
// With DisableNonSelection set, gated timing groups cannot end while
// nothing is selected. When a group ends, SelectionSet receives the
// list indexes of the selected elements and NumberSelected their count.
type Selection struct {
	DisableNonSelection *expar.Par
	SelectionColor      *expar.Par
	SelectionSet        *expar.Par
	NumberSelected      *expar.Par

	// colors holds the color of each selected element before it was
	// selected, by list index.
	colors map[int]*expar.Par
}

func (sl *Selection) CreateMixin(d *display.Display) {
	sl.DisableNonSelection = d.NewPar("DisableNonSelection", expar.Int, expar.IntValue(0))
	sl.SelectionColor = d.NewPar("SelectionColor", expar.Color, expar.ColorValue(colors.XYY(40, 0.3, 0.5)))
	sl.SelectionSet = d.NewDerived("SelectionSet", expar.Array, expar.ArrayValue())
	sl.NumberSelected = d.NewDerived("NumberSelected", expar.Int, expar.IntValue(0))
	sl.colors = map[int]*expar.Par{}
}

// Selected returns the list indexes of the selected elements.
func (sl *Selection) Selected(d *display.Display) []int {
	var is []int
	for i, el := range d.List.All() {
		if el.AsBase().Selected {
			is = append(is, i)
		}
	}
	return is
}

// Toggle flips the selection of the element at list index i.
func (sl *Selection) Toggle(d *display.Display, i int) {
	eb := d.List.At(i).AsBase()
	eb.Selected = !eb.Selected
	if eb.Selected {
		sl.colors[i] = eb.Color
		eb.Color = sl.SelectionColor
		return
	}
	if c, ok := sl.colors[i]; ok {
		eb.Color = c
		delete(sl.colors, i)
	}
}

// Clear deselects all elements.
func (sl *Selection) Clear(d *display.Display) {
	for _, i := range sl.Selected(d) {
		sl.Toggle(d, i)
	}
}

// ResetTrial deselects all elements and clears the selection outputs,
// so that each presentation starts with nothing selected.
func (sl *Selection) ResetTrial(d *display.Display) {
	sl.Clear(d)
	clear(sl.colors)
	d.Set(sl.SelectionSet, expar.ArrayValue())
	d.Set(sl.NumberSelected, expar.IntValue(0))
}

func (sl *Selection) PointerActivated(d *display.Display, ev *events.Mouse) bool {
	i, ok := hitSelectable(d, math32.FromPoint(ev.Where))
	if !ok {
		return false
	}
	sl.Toggle(d, i)
	return true
}

func (sl *Selection) PointerDragged(d *display.Display, ev *events.Mouse) bool { return false }

func (sl *Selection) PointerReleased(d *display.Display, ev *events.Mouse) bool { return false }

func (sl *Selection) AllowTimerStop(d *display.Display, reason timing.StopReasons) bool {
	if sl.DisableNonSelection.Int() == 0 {
		return true
	}
	return len(sl.Selected(d)) > 0
}

func (sl *Selection) TimingGroupFinished(d *display.Display, group int) {
	sel := sl.Selected(d)
	vs := make([]expar.Value, len(sel))
	for j, i := range sel {
		vs[j] = expar.IntValue(i)
	}
	d.Set(sl.SelectionSet, expar.ArrayValue(vs...))
	d.Set(sl.NumberSelected, expar.IntValue(len(sel)))
}

// SelectionGrid shows a grid of selectable squares. It is composed
// with the [Selection] mixin, and its group ends with the return key
// or after a timeout.
type SelectionGrid struct {
	BackgroundColor *expar.Par
	Color           *expar.Par
	Rows            *expar.Par
	Columns         *expar.Par
	CellSize        *expar.Par
	Gap             *expar.Par
}

// firstCell is the list index of the first grid cell.
const firstCell = 1

func (sg *SelectionGrid) Create(d *display.Display) int {
	sg.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	sg.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.Gray(50)))
	sg.Rows = d.NewPar("Rows", expar.Int, expar.IntValue(2))
	sg.Columns = d.NewPar("Columns", expar.Int, expar.IntValue(3))
	sg.CellSize = d.NewPar("CellSize", expar.Double, expar.DoubleValue(60))
	sg.Gap = d.NewPar("Gap", expar.Double, expar.DoubleValue(20))

	bg := d.Enter(display.NewBackground(sg.BackgroundColor), 0)
	d.EnterTiming(0, timing.Response{
		Keys:    []key.Codes{key.CodeReturnEnter},
		Timeout: timing.Milliseconds(2000),
	})
	return bg
}

func (sg *SelectionGrid) ComputeColors(d *display.Display) {}

func (sg *SelectionGrid) ComputeGeometry(d *display.Display) {
	rows, cols := max(sg.Rows.Int(), 0), max(sg.Columns.Int(), 0)
	d.List.Ensure(firstCell, rows*cols, func(i int) (display.Element, display.Mask) {
		r := display.NewRect(sg.Color, math32.Vector2{}, math32.Vector2{})
		r.Selectable = true
		return r, display.Groups(0)
	})
	s := sg.CellSize.Float32()
	step := s + sg.Gap.Float32()
	x0 := -step * float32(cols-1) / 2
	y0 := -step * float32(rows-1) / 2
	for i := range rows * cols {
		c := math32.Vec2(x0+step*float32(i%cols), y0+step*float32(i/cols))
		d.List.At(firstCell + i).(*display.Rect).SetRect(c, math32.Vec2(s, s))
	}
}
