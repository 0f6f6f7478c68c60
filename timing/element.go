// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import (
	"time"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/expar"
)

// Element binds one timing group ordinal to its timer policy and its
// parameters. Elements are consumed in ascending Group order, once per
// presentation.
type Element struct {

	// Group is the ordinal of the timing group, which is also the bit
	// of the group in display element masks.
	Group int

	// Policy is the timer policy.
	Policy Policy

	// Duration optionally overrides the nominal duration of the policy:
	// milliseconds for [Clock], the timeout of [Response] and
	// [EndOfMedia], and the tick count of [VSyncClock].
	Duration *expar.Par

	// Time receives the elapsed time of the group in milliseconds.
	Time *expar.Par

	// Code receives the [StopReasons] of the group.
	Code *expar.Par

	// Response receives the key code or pointer button of a response.
	Response *expar.Par
}

// Nominal returns the nominal duration of the group: the clock duration,
// or the timeout of response and media policies (0 for none).
func (e *Element) Nominal() time.Duration {
	var d time.Duration
	switch p := e.Policy.(type) {
	case Clock:
		d = p.Duration
	case Response:
		d = p.Timeout
	case EndOfMedia:
		d = p.Timeout
	default:
		return 0
	}
	if e.Duration != nil {
		if v := e.Duration.Get(); v.IsSet() {
			d = Milliseconds(v.Double())
		}
	}
	return d
}

// Ticks returns the number of refresh ticks of a [VSyncClock] group.
func (e *Element) Ticks() int {
	p, ok := e.Policy.(VSyncClock)
	if !ok {
		return 0
	}
	if e.Duration != nil {
		if v := e.Duration.Get(); v.IsSet() {
			return v.Int()
		}
	}
	return p.Ticks
}

// Finish writes the outputs of the group. A nil output parameter is
// skipped, as are output parameters the writer does not own.
func (e *Element) Finish(owner *expar.Owner, elapsed time.Duration, reason StopReasons, response int) error {
	var errs []error
	if e.Time != nil {
		errs = append(errs, e.Time.Assign(owner, expar.DoubleValue(ToMilliseconds(elapsed))))
	}
	if e.Code != nil {
		errs = append(errs, e.Code.Assign(owner, expar.IntValue(int(reason))))
	}
	if e.Response != nil && reason.IsResponse() {
		errs = append(errs, e.Response.Assign(owner, expar.IntValue(response)))
	}
	return errors.Join(errs...)
}
