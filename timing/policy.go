// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timing defines the timer policies that decide when a timing
// group of a display ends, and the timing elements binding a policy to
// a group and its output parameters.
package timing

import (
	"fmt"
	"slices"
	"time"

	"cogentcore.org/pxlab/events/key"
)

// Policy is a timer policy. The set of policies is closed: it is one of
// [Clock], [Response], [VSyncClock], [EndOfMedia] and [NoTimer].
type Policy interface {
	fmt.Stringer

	// Gated returns whether a stop under this policy must be allowed
	// by the stop gate of the display. Purely clock driven policies
	// are not gated.
	Gated() bool

	isPolicy()
}

// Clock ends the group after a fixed duration, ignoring input.
type Clock struct {
	Duration time.Duration
}

// Response ends the group on one of the response keys, on a pointer
// press if Pointer is set, or after Timeout if it is positive.
type Response struct {
	Keys    []key.Codes
	Pointer bool
	Timeout time.Duration
}

// VSyncClock ends the group after a number of display refresh ticks.
type VSyncClock struct {
	Ticks int
}

// EndOfMedia ends the group when the media signals completion, or after
// Timeout if it is positive.
type EndOfMedia struct {
	Media   Media
	Timeout time.Duration
}

// NoTimer ends the group immediately, used for groups that only update
// state without showing anything for a measurable time.
type NoTimer struct{}

// Media is an externally driven media element, such as a sound track,
// whose completion ends an [EndOfMedia] group.
type Media interface {

	// Start starts playback from the beginning.
	Start()

	// Advance moves playback forward by d, which the presentation loop
	// calls once per refresh tick.
	Advance(d time.Duration)

	// Done returns whether playback has completed.
	Done() bool
}

func (Clock) Gated() bool      { return false }
func (Response) Gated() bool   { return true }
func (VSyncClock) Gated() bool { return false }
func (EndOfMedia) Gated() bool { return true }
func (NoTimer) Gated() bool    { return false }

func (Clock) isPolicy()      {}
func (Response) isPolicy()   {}
func (VSyncClock) isPolicy() {}
func (EndOfMedia) isPolicy() {}
func (NoTimer) isPolicy()    {}

func (p Clock) String() string {
	return fmt.Sprintf("clock %v", p.Duration)
}

func (p Response) String() string {
	s := fmt.Sprintf("response %v", p.Keys)
	if p.Pointer {
		s += " pointer"
	}
	if p.Timeout > 0 {
		s += fmt.Sprintf(" timeout %v", p.Timeout)
	}
	return s
}

func (p VSyncClock) String() string {
	return fmt.Sprintf("vsync %d ticks", p.Ticks)
}

func (p EndOfMedia) String() string {
	if p.Timeout > 0 {
		return fmt.Sprintf("end of media timeout %v", p.Timeout)
	}
	return "end of media"
}

func (NoTimer) String() string {
	return "no timer"
}

// Accepts returns whether the key is one of the response keys.
func (p Response) Accepts(code key.Codes) bool {
	return slices.Contains(p.Keys, code)
}

// Milliseconds converts a duration given in (possibly fractional)
// milliseconds, the unit of design files and duration parameters.
func Milliseconds(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// ToMilliseconds converts a duration to fractional milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
