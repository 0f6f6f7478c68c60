// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/pxlab/events/key"
)

// Key is a keyboard event.
type Key struct {
	Base

	// Code is the physical key.
	Code key.Codes

	// Rune is the character typed, if any.
	Rune rune
}

// NewKey returns a new [Key] event of the given type.
func NewKey(typ Types, code key.Codes) *Key {
	ev := &Key{Code: code, Rune: code.Rune()}
	ev.Typ = typ
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Time: %v}", ev.Typ, ev.Code, ev.When)
}
