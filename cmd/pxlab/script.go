// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"image"
	"slices"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/present"
)

// scripted is a response sent at a fixed time after the start of
// every presentation.
type scripted struct {
	at time.Duration

	// send returns new events for one response.
	send func() []events.Event
}

// parseScript parses responses of the form key@time or click:x,y@time.
// A time without unit is in milliseconds. The result is sorted by time.
func parseScript(responses []string) ([]scripted, error) {
	var script []scripted
	for _, resp := range responses {
		i := strings.LastIndexByte(resp, '@')
		if i < 0 {
			return nil, fmt.Errorf("response %q: missing @time", resp)
		}
		at, err := parseTime(resp[i+1:])
		if err != nil {
			return nil, fmt.Errorf("response %q: %w", resp, err)
		}
		what := resp[:i]
		if pos, ok := strings.CutPrefix(what, "click:"); ok {
			var x, y int
			if _, err := fmt.Sscanf(pos, "%d,%d", &x, &y); err != nil {
				return nil, fmt.Errorf("response %q: invalid position %q", resp, pos)
			}
			pt := image.Pt(x, y)
			script = append(script, scripted{at: at, send: func() []events.Event {
				return []events.Event{
					events.NewMouse(events.MouseDown, events.Left, pt),
					events.NewMouse(events.MouseUp, events.Left, pt),
				}
			}})
			continue
		}
		code, err := key.ParseCode(what)
		if err != nil {
			return nil, fmt.Errorf("response %q: %w", resp, err)
		}
		script = append(script, scripted{at: at, send: func() []events.Event {
			return []events.Event{events.NewKey(events.KeyDown, code), events.NewKey(events.KeyUp, code)}
		}})
	}
	slices.SortStableFunc(script, func(a, b scripted) int {
		return cmp.Compare(a.at, b.at)
	})
	return script, nil
}

func parseTime(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// scriptClock is a [present.Clock] sending the scripted responses to
// the scheduler once their time has come.
type scriptClock struct {
	present.Clock

	sched  *present.Scheduler
	script []scripted
	next   int
	start  time.Duration
}

// restart starts the script over, from the current time.
func (c *scriptClock) restart() {
	c.start = c.Clock.Now()
	c.next = 0
}

func (c *scriptClock) WaitRefresh(ctx context.Context) error {
	if err := c.Clock.WaitRefresh(ctx); err != nil {
		return err
	}
	now := c.Clock.Now() - c.start
	for ; c.next < len(c.script) && c.script[c.next].at <= now; c.next++ {
		for _, ev := range c.script[c.next].send() {
			c.sched.Send(ev)
		}
	}
	return nil
}
