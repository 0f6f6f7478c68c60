// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import (
	"fmt"
	"strings"

	"cogentcore.org/pxlab/events/key"
)

// Timer is the declarative form of a timer policy, as written in
// design files.
type Timer struct {

	// Kind is the policy name: clock, response, vsync, media or none.
	Kind string `toml:"timer" yaml:"timer"`

	// Duration is the clock duration in milliseconds, or the number of
	// ticks for vsync timers.
	Duration float64 `toml:"duration" yaml:"duration"`

	// Keys are the response key names of response timers.
	Keys []string `toml:"keys" yaml:"keys"`

	// Pointer makes pointer presses responses.
	Pointer bool `toml:"pointer" yaml:"pointer"`

	// Timeout in milliseconds for response and media timers; 0 is none.
	Timeout float64 `toml:"timeout" yaml:"timeout"`
}

// ParsePolicy returns the policy described by t. The media is only
// used by media timers, which require it.
func ParsePolicy(t Timer, media Media) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(t.Kind)) {
	case "clock", "":
		if t.Duration < 0 {
			return nil, fmt.Errorf("timing.ParsePolicy: negative clock duration %g", t.Duration)
		}
		return Clock{Duration: Milliseconds(t.Duration)}, nil
	case "response", "key":
		keys, err := key.ParseCodes(t.Keys)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 && !t.Pointer && t.Timeout <= 0 {
			return nil, fmt.Errorf("timing.ParsePolicy: response timer with no keys, no pointer and no timeout never ends")
		}
		return Response{Keys: keys, Pointer: t.Pointer, Timeout: Milliseconds(t.Timeout)}, nil
	case "vsync":
		if t.Duration < 1 {
			return nil, fmt.Errorf("timing.ParsePolicy: vsync timer needs at least one tick, got %g", t.Duration)
		}
		return VSyncClock{Ticks: int(t.Duration)}, nil
	case "media":
		if media == nil {
			return nil, fmt.Errorf("timing.ParsePolicy: media timer without media")
		}
		return EndOfMedia{Media: media, Timeout: Milliseconds(t.Timeout)}, nil
	case "none":
		return NoTimer{}, nil
	}
	return nil, fmt.Errorf("timing.ParsePolicy: unknown timer %q", t.Kind)
}

// Override returns p with the settings of t applied where they are
// given: a positive duration, keys, pointer and a positive timeout.
// A different timer kind replaces p entirely.
func Override(p Policy, t Timer) (Policy, error) {
	kind := strings.ToLower(strings.TrimSpace(t.Kind))
	if kind != "" && kind != KindOf(p) {
		var media Media
		if em, ok := p.(EndOfMedia); ok {
			media = em.Media
		}
		return ParsePolicy(t, media)
	}
	switch x := p.(type) {
	case Clock:
		if t.Duration > 0 {
			x.Duration = Milliseconds(t.Duration)
		}
		return x, nil
	case Response:
		if len(t.Keys) > 0 {
			keys, err := key.ParseCodes(t.Keys)
			if err != nil {
				return p, err
			}
			x.Keys = keys
		}
		x.Pointer = x.Pointer || t.Pointer
		if t.Timeout > 0 {
			x.Timeout = Milliseconds(t.Timeout)
		}
		return x, nil
	case VSyncClock:
		if t.Duration >= 1 {
			x.Ticks = int(t.Duration)
		}
		return x, nil
	case EndOfMedia:
		if t.Timeout > 0 {
			x.Timeout = Milliseconds(t.Timeout)
		}
		return x, nil
	}
	return p, nil
}

// KindOf returns the design file name of the kind of the policy.
func KindOf(p Policy) string {
	switch p.(type) {
	case Clock:
		return "clock"
	case Response:
		return "response"
	case VSyncClock:
		return "vsync"
	case EndOfMedia:
		return "media"
	}
	return "none"
}
