// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered to displays during
// presentation, and the lock-free queue they travel through from the
// input source to the presentation loop.
package events

import (
	"fmt"
	"time"
)

// Event is the interface of all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns when the event happened, relative to the start of
	// the presentation clock. It is set when the event is sent to the
	// presentation.
	Time() time.Duration

	// SetTime sets the event time.
	SetTime(t time.Duration)

	// IsHandled returns whether a handler consumed the event.
	IsHandled() bool

	// SetHandled marks the event as consumed.
	SetHandled()
}

// Base is the base type of all events, carrying the fields common
// to all of them.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// When is the time of the event on the presentation clock.
	When time.Duration

	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Duration {
	return ev.When
}

func (ev *Base) SetTime(t time.Duration) {
	ev.When = t
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.When)
}
