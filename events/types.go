// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of input event. Presentation only needs
// the raw press, release and motion events of the keyboard and the
// pointer; higher level gestures are left to the displays.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is sent when a key is pressed.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// MouseDown is sent when a pointer button is pressed.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp is sent when a pointer button is released.
	MouseUp

	// MouseMove is sent when the pointer moves with no button down.
	MouseMove

	// MouseDrag is sent when the pointer moves with a button down.
	// [Mouse.Start] is where the button was pressed.
	MouseDrag
)

var typeNames = []string{"UnknownType", "KeyDown", "KeyUp", "MouseDown", "MouseUp", "MouseMove", "MouseDrag"}

func (tp Types) String() string {
	if tp >= 0 && int(tp) < len(typeNames) {
		return typeNames[tp]
	}
	return "Types(" + strconv.Itoa(int(tp)) + ")"
}

// IsKey returns whether the type is a keyboard event type.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}

// IsMouse returns whether the type is a pointer event type.
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= MouseDrag
}
