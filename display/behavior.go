// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"cogentcore.org/pxlab/anim"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/timing"
)

// Behavior is what makes a display a particular stimulus. The hooks
// are called by the presentation controller in a fixed order: Create
// once, then ComputeColors followed by ComputeGeometry before every
// presentation.
type Behavior interface {

	// Create creates the parameters, elements and timing elements of
	// the display, and returns the index of the primary element,
	// usually the background.
	Create(d *Display) int

	// ComputeColors writes all derived color parameters.
	ComputeColors(d *Display)

	// ComputeGeometry writes all derived geometry, rebuilding the
	// list if the number of parts changed.
	ComputeGeometry(d *Display)
}

// The optional interfaces below may be implemented by a behavior and
// by any of the mixins of the display. Hooks are called on the
// behavior first and then on the mixins in order.

// Animator is implemented by animated displays.
type Animator interface {

	// Animation returns the animation configuration, which is read
	// after ComputeGeometry.
	Animation(d *Display) anim.Config

	// ComputeAnimationFrame mutates the existing elements to show
	// the given frame.
	ComputeAnimationFrame(d *Display, frame int)
}

// PointerHandler receives pointer events of the active group. Each
// method returns whether it consumed the event, which repaints the
// group immediately.
type PointerHandler interface {
	PointerActivated(d *Display, ev *events.Mouse) bool
	PointerDragged(d *Display, ev *events.Mouse) bool
	PointerReleased(d *Display, ev *events.Mouse) bool
}

// KeyHandler receives key presses that are not stop keys.
type KeyHandler interface {
	KeyResponse(d *Display, ev *events.Key) bool
}

// StopGate may veto the end of a gated timing group.
type StopGate interface {
	AllowTimerStop(d *Display, reason timing.StopReasons) bool
}

// GroupFinisher is notified when a timing group ends, before its
// elements disappear.
type GroupFinisher interface {
	TimingGroupFinished(d *Display, group int)
}

// Creator is implemented by mixins needing to create parameters or
// elements of their own. It is called after the Create of the behavior.
type Creator interface {
	CreateMixin(d *Display)
}

// TrialResetter clears state left over from the previous presentation.
// It is called before ComputeColors of every presentation.
type TrialResetter interface {
	ResetTrial(d *Display)
}
