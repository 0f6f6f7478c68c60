// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"fmt"
	"strconv"
	"time"

	"cogentcore.org/pxlab/timing"
)

// States are the states of the scheduler.
type States int32

const (
	// Idle is the state before a presentation.
	Idle States = iota

	// GroupActive is the state while a timing group is shown.
	GroupActive

	// GroupFinished is entered when a group ended normally.
	GroupFinished

	// Interrupted is entered when a group was ended by a forced stop
	// or an abort.
	Interrupted

	// AllGroupsDone is the terminal state of a complete presentation.
	AllGroupsDone

	// Aborted is the terminal state of an aborted presentation.
	Aborted
)

var stateNames = []string{"Idle", "GroupActive", "GroupFinished", "Interrupted", "AllGroupsDone", "Aborted"}

func (s States) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "States(" + strconv.Itoa(int(s)) + ")"
}

// Transition is one state change of the scheduler.
type Transition struct {
	State States

	// Group is the timing group, or -1 for the terminal states.
	Group int

	// Reason is the stop reason for GroupFinished and Interrupted.
	Reason timing.StopReasons

	// At is the clock time of the transition.
	At time.Duration
}

func (t Transition) String() string {
	switch t.State {
	case GroupActive:
		return fmt.Sprintf("%v(%d) at %v", t.State, t.Group, t.At)
	case GroupFinished, Interrupted:
		return fmt.Sprintf("%v(%d) %v at %v", t.State, t.Group, t.Reason, t.At)
	}
	return fmt.Sprintf("%v at %v", t.State, t.At)
}

// GroupResult is the outcome of one timing group.
type GroupResult struct {
	Group  int
	Policy timing.Policy
	Reason timing.StopReasons

	// Elapsed is the time from entering the group to its stop.
	Elapsed time.Duration

	// Nominal is the nominal duration of the group, 0 for none.
	Nominal time.Duration

	// Response is the key code or pointer button of a response.
	Response int

	// Ticks is the number of refresh ticks the group lasted.
	Ticks int

	// Vetoes counts the stops vetoed by the stop gate.
	Vetoes int

	// Err is a programming error that forced the group to stop.
	Err error
}

// Result is the outcome of one presentation of a display.
type Result struct {
	Display string
	Groups  []GroupResult

	// Aborted is set if the presentation was aborted.
	Aborted bool

	// Start and End are the clock times of the presentation.
	Start, End time.Duration

	// Frames counts the screen presents.
	Frames int
}

// Group returns the result of group g, or nil.
func (r *Result) Group(g int) *GroupResult {
	for i := range r.Groups {
		if r.Groups[i].Group == g {
			return &r.Groups[i]
		}
	}
	return nil
}

// Duration returns the total presentation time.
func (r *Result) Duration() time.Duration {
	return r.End - r.Start
}
