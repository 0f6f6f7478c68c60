// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Clock is the refresh clock driving presentation. Now may be called
// from any goroutine; WaitRefresh only from the presentation loop.
type Clock interface {

	// Now returns the time since the clock started.
	Now() time.Duration

	// WaitRefresh waits for the next refresh tick.
	WaitRefresh(ctx context.Context) error

	// Period returns the refresh period.
	Period() time.Duration
}

// SimClock is a simulated refresh clock advancing by exactly one period
// per WaitRefresh without waiting, for headless runs and tests.
type SimClock struct {

	// OnTick is called after every tick with the new time, on the
	// presentation goroutine. Tests use it to send input at precise
	// times.
	OnTick func(now time.Duration)

	period time.Duration
	now    atomic.Int64
}

// NewSimClock returns a new [SimClock] with the given period.
func NewSimClock(period time.Duration) *SimClock {
	return &SimClock{period: period}
}

func (c *SimClock) Now() time.Duration {
	return time.Duration(c.now.Load())
}

func (c *SimClock) Period() time.Duration {
	return c.period
}

func (c *SimClock) WaitRefresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Duration(c.now.Add(int64(c.period)))
	if c.OnTick != nil {
		c.OnTick(now)
	}
	return nil
}

// RealClock is a wall clock with a fixed refresh period. WaitRefresh
// sleeps until shortly before the next tick boundary and then spins,
// since sleeping alone is not accurate enough for frame timing.
type RealClock struct {

	// Spin is how long before the tick boundary sleeping stops.
	Spin time.Duration

	period time.Duration
	start  time.Time
}

// NewRealClock returns a new [RealClock] ticking at the given refresh
// rate in Hz, started now.
func NewRealClock(hz float64) *RealClock {
	if hz <= 0 {
		hz = 60
	}
	return &RealClock{
		Spin:   2 * time.Millisecond,
		period: time.Duration(float64(time.Second) / hz),
		start:  time.Now(),
	}
}

func (c *RealClock) Now() time.Duration {
	return time.Since(c.start)
}

func (c *RealClock) Period() time.Duration {
	return c.period
}

func (c *RealClock) WaitRefresh(ctx context.Context) error {
	now := c.Now()
	next := (now/c.period + 1) * c.period
	if sleep := next - now - c.Spin; sleep > 0 {
		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	for c.Now() < next {
		runtime.Gosched()
	}
	return ctx.Err()
}
