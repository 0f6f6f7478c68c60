// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/timing"
)

// verdict is the outcome of dispatching one input event.
type verdict struct {
	abort    bool
	reason   timing.StopReasons
	response int
	repaint  bool
}

// Gate routes input events of the active group to the hooks of the
// display and decides whether a group may stop.
type Gate struct {
	display *display.Display
	policy  timing.Policy
	abort   func(*events.Key) bool
}

// dispatch handles one event. Priority: the abort key, then the
// response keys of a response policy, then the hooks of the behavior
// and its mixins in order until one consumes the event. A pointer press
// nobody consumed is a response if the policy accepts pointer responses.
func (g *Gate) dispatch(ev events.Event) verdict {
	switch ev := ev.(type) {
	case *events.Key:
		if ev.Typ != events.KeyDown {
			return verdict{}
		}
		if g.abort(ev) {
			return verdict{abort: true}
		}
		if rp, ok := g.policy.(timing.Response); ok && rp.Accepts(ev.Code) {
			return verdict{reason: timing.KeyResponse, response: int(ev.Code)}
		}
		for _, h := range g.display.Hooks() {
			if kh, ok := h.(display.KeyHandler); ok && kh.KeyResponse(g.display, ev) {
				ev.SetHandled()
				return verdict{repaint: true}
			}
		}
	case *events.Mouse:
		var call func(display.PointerHandler) bool
		switch ev.Typ {
		case events.MouseDown:
			call = func(ph display.PointerHandler) bool { return ph.PointerActivated(g.display, ev) }
		case events.MouseDrag:
			call = func(ph display.PointerHandler) bool { return ph.PointerDragged(g.display, ev) }
		case events.MouseUp:
			call = func(ph display.PointerHandler) bool { return ph.PointerReleased(g.display, ev) }
		default:
			return verdict{}
		}
		for _, h := range g.display.Hooks() {
			if ph, ok := h.(display.PointerHandler); ok && call(ph) {
				ev.SetHandled()
				return verdict{repaint: true}
			}
		}
		if rp, ok := g.policy.(timing.Response); ok && rp.Pointer && ev.Typ == events.MouseDown {
			return verdict{reason: timing.PointerResponse, response: int(ev.Button)}
		}
	}
	return verdict{}
}

// AllowStop returns whether the behavior and all mixins implementing
// [display.StopGate] allow a stop for the given reason. Every gate is
// consulted, so gates may observe each candidate stop.
func (g *Gate) AllowStop(reason timing.StopReasons) bool {
	allow := true
	for _, h := range g.display.Hooks() {
		if sg, ok := h.(display.StopGate); ok && !sg.AllowTimerStop(g.display, reason) {
			allow = false
		}
	}
	return allow
}

// finished runs the [display.GroupFinisher] hooks.
func (g *Gate) finished(group int) {
	for _, h := range g.display.Hooks() {
		if gf, ok := h.(display.GroupFinisher); ok {
			gf.TimingGroupFinished(g.display, group)
		}
	}
}
