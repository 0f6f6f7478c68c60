// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package present runs displays: the scheduler advancing through the
// timing groups of a display on a refresh clock, the gate routing input
// to the display, and the controller driving the lifecycle of displays
// over trials.
package present

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cogentcore.org/pxlab/anim"
	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/timing"
)

// Screen is the canvas presentations paint on. Present shows what was
// painted since the previous call.
type Screen interface {
	display.Canvas
	Present() error
}

const (
	controlNone int32 = iota
	controlForce
	controlAbort
)

// Scheduler presents displays, running their timing groups in ascending
// order. A group ends when the stop condition of its timer policy holds
// and, for gated policies, the stop gate of the display allows it.
//
// Run must be called from a single goroutine. Send, ForceStop and Abort
// may be called from any goroutine.
type Scheduler struct {

	// Clock is the refresh clock.
	Clock Clock

	// Screen is painted on entering a group and on every repaint.
	// A nil Screen runs without painting.
	Screen Screen

	// AbortKey aborts the presentation when pressed.
	AbortKey key.Codes

	// OnTransition is called on every state change.
	OnTransition func(Transition)

	// Observers are called with every input event before it is
	// dispatched, for event logging.
	Observers events.Listeners

	queue   events.Queue
	control atomic.Int32
}

// NewScheduler returns a new scheduler.
func NewScheduler(clock Clock, screen Screen) *Scheduler {
	s := &Scheduler{Clock: clock, Screen: screen, AbortKey: key.CodeEscape}
	s.queue.Init()
	return s
}

// Send queues an input event, stamping it with the current clock time.
// Events are processed at the next tick in arrival order. Events
// processed in the same tick as, and after, the event stopping a group
// are passed to the observers but not dispatched, so they never reach
// the next group.
func (s *Scheduler) Send(ev events.Event) {
	ev.SetTime(s.Clock.Now())
	s.queue.Send(ev)
}

// ForceStop ends the current group at the next tick with reason
// [timing.Forced], bypassing the stop gate.
func (s *Scheduler) ForceStop() {
	s.control.CompareAndSwap(controlNone, controlForce)
}

// Abort ends the current group with reason [timing.Aborted] and
// terminates the presentation.
func (s *Scheduler) Abort() {
	s.control.Store(controlAbort)
}

func (s *Scheduler) transition(st States, group int, reason timing.StopReasons, at time.Duration) {
	t := Transition{State: st, Group: group, Reason: reason, At: at}
	slog.Debug("presentation", "transition", t.String())
	if s.OnTransition != nil {
		s.OnTransition(t)
	}
}

// run is the state of one presentation.
type run struct {
	s        *Scheduler
	d        *display.Display
	gate     Gate
	res      *Result
	animator display.Animator
	driver   *anim.Driver
}

// Run presents the display once, running all its timing groups, and
// returns the outcome. Input queued before Run is discarded. The error
// is non-nil only if the context was canceled, in which case the result
// is marked aborted.
func (s *Scheduler) Run(ctx context.Context, d *display.Display) (*Result, error) {
	timings := d.List.Timings()
	if len(timings) == 0 {
		return nil, fmt.Errorf("present: display %s has no timing groups", d.Name)
	}
	s.queue.Clear()
	s.control.Store(controlNone)
	r := &run{s: s, d: d, res: &Result{Display: d.Name, Start: s.Clock.Now()}}
	r.gate = Gate{display: d, abort: func(ev *events.Key) bool { return ev.Code == s.AbortKey }}
	if a := d.Animator(); a != nil {
		drv, err := anim.NewDriver(a.Animation(d))
		if err != nil {
			d.Ctx.ReportConfigError(nil, fmt.Errorf("%s: animation disabled: %w", d.Name, err))
		} else {
			r.animator, r.driver = a, drv
		}
	}
	defer func() { d.Active = -1 }()

	var err error
	for _, te := range timings {
		if err = r.group(ctx, te); r.res.Aborted {
			break
		}
	}
	r.res.End = s.Clock.Now()
	if r.res.Aborted {
		s.transition(Aborted, -1, timing.Aborted, r.res.End)
	} else {
		s.transition(AllGroupsDone, -1, timing.NotStopped, r.res.End)
	}
	return r.res, err
}

// group runs one timing group until it stops.
func (r *run) group(ctx context.Context, te *timing.Element) error {
	s, d := r.s, r.d
	d.Active = te.Group
	r.gate.policy = te.Policy
	gr := GroupResult{Group: te.Group, Policy: te.Policy, Nominal: te.Nominal()}
	ticks := te.Ticks()
	start := s.Clock.Now()

	var media timing.Media
	if em, ok := te.Policy.(timing.EndOfMedia); ok && em.Media != nil {
		media = em.Media
		media.Start()
	}
	_, vsync := te.Policy.(timing.VSyncClock)
	animating := r.driver != nil && vsync
	if animating {
		gr.Err = r.frame(r.driver.Start())
	}
	s.transition(GroupActive, te.Group, timing.NotStopped, start)
	r.paint(te.Group)

	var err error
	stopAt := start
	stop := func(reason timing.StopReasons, at time.Duration) {
		gr.Reason = reason
		stopAt = max(at, start)
	}
	for gr.Reason == timing.NotStopped {
		if gr.Err != nil {
			stop(timing.Forced, s.Clock.Now())
			break
		}
		switch s.control.Swap(controlNone) {
		case controlForce:
			stop(timing.Forced, s.Clock.Now())
		case controlAbort:
			stop(timing.Aborted, s.Clock.Now())
		}
		if gr.Reason != timing.NotStopped {
			break
		}

		dropped := 0
		for ev := range s.queue.Drain() {
			s.Observers.Call(ev)
			if gr.Reason != timing.NotStopped {
				// sent during the group that just stopped
				dropped++
				continue
			}
			v := r.gate.dispatch(ev)
			if v.abort {
				stop(timing.Aborted, ev.Time())
				continue
			}
			if v.repaint {
				r.paint(te.Group)
			}
			if v.reason != timing.NotStopped {
				if r.gate.AllowStop(v.reason) {
					stop(v.reason, ev.Time())
					gr.Response = v.response
					continue
				}
				gr.Vetoes++
			}
		}
		if dropped > 0 {
			slog.Debug("input after group stop dropped", "display", d.Name, "group", te.Group, "events", dropped)
		}
		if gr.Reason != timing.NotStopped {
			break
		}

		now := s.Clock.Now()
		if reason := timerStop(te.Policy, &gr, now-start, ticks, media); reason != timing.NotStopped {
			if !te.Policy.Gated() || r.gate.AllowStop(reason) {
				stop(reason, now)
				break
			}
			gr.Vetoes++
		}

		if werr := s.Clock.WaitRefresh(ctx); werr != nil {
			err = werr
			stop(timing.Aborted, s.Clock.Now())
			break
		}
		gr.Ticks++
		if media != nil {
			media.Advance(s.Clock.Period())
		}
		if animating {
			if gr.Err = r.frame(r.driver.Step()); gr.Err == nil {
				r.paint(te.Group)
			}
		}
	}

	gr.Elapsed = stopAt - start
	if ferr := te.Finish(d.Owner, gr.Elapsed, gr.Reason, gr.Response); ferr != nil {
		d.Ctx.ReportConfigError(nil, ferr)
	}
	r.gate.finished(te.Group)
	state := GroupFinished
	if gr.Reason == timing.Forced || gr.Reason == timing.Aborted {
		state = Interrupted
	}
	s.transition(state, te.Group, gr.Reason, stopAt)
	if gr.Err != nil {
		errors.Log(fmt.Errorf("present: %s group %d: %w", d.Name, te.Group, gr.Err))
	}
	r.res.Groups = append(r.res.Groups, gr)
	if gr.Reason == timing.Aborted {
		r.res.Aborted = true
	}
	return err
}

// timerStop returns the stop reason if the stop condition of the policy
// holds, or [timing.NotStopped].
func timerStop(p timing.Policy, gr *GroupResult, elapsed time.Duration, ticks int, media timing.Media) timing.StopReasons {
	switch p.(type) {
	case timing.Clock:
		if elapsed >= gr.Nominal {
			return timing.Timeout
		}
	case timing.VSyncClock:
		if gr.Ticks >= ticks {
			return timing.Timeout
		}
	case timing.Response:
		if gr.Nominal > 0 && elapsed >= gr.Nominal {
			return timing.Timeout
		}
	case timing.EndOfMedia:
		if media == nil || media.Done() {
			return timing.MediaEnded
		}
		if gr.Nominal > 0 && elapsed >= gr.Nominal {
			return timing.Timeout
		}
	case timing.NoTimer:
		return timing.Immediate
	}
	return timing.NotStopped
}

// frame shows an animation frame, mapped to the frame table by the
// bounds policy of the animation.
func (r *run) frame(f int) error {
	i, ok, err := r.driver.TableIndex(f)
	if err != nil {
		return err
	}
	if ok {
		r.animator.ComputeAnimationFrame(r.d, i)
	}
	return nil
}

// paint paints the group on the screen and presents it.
func (r *run) paint(group int) {
	scr := r.s.Screen
	if scr == nil {
		return
	}
	scr.Fill(colors.Black)
	r.d.Paint(scr, group)
	errors.Log(scr.Present())
	r.res.Frames++
}
