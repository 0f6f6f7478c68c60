// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Mouse is a pointer event. Positions are in display coordinates:
// the origin is the center of the screen and y grows downward.
type Mouse struct {
	Base

	// Button is the button pressed, released or held during a drag.
	Button Buttons

	// Where is the pointer position.
	Where image.Point

	// Prev is the previous position for moves and drags.
	Prev image.Point

	// Start is where the button was pressed for drags.
	Start image.Point
}

// NewMouse returns a new press or release event.
func NewMouse(typ Types, but Buttons, where image.Point) *Mouse {
	ev := &Mouse{Button: but, Where: where}
	ev.Typ = typ
	return ev
}

// NewMouseMove returns a new move event.
func NewMouseMove(where, prev image.Point) *Mouse {
	ev := &Mouse{Where: where, Prev: prev}
	ev.Typ = MouseMove
	return ev
}

// NewMouseDrag returns a new drag event.
func NewMouseDrag(but Buttons, where, prev, start image.Point) *Mouse {
	ev := &Mouse{Button: but, Where: where, Prev: prev, Start: start}
	ev.Typ = MouseDrag
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Typ, ev.Button, ev.Where, ev.When)
}

// Delta returns the motion since the previous event.
func (ev *Mouse) Delta() image.Point {
	return ev.Where.Sub(ev.Prev)
}
