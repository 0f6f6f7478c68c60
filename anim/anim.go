// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the animation frame driver stepping the frame
// index of an animated display once per refresh tick, and tables of
// precomputed frames.
package anim

import (
	"fmt"
	"strconv"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/base/num"
)

// ErrFrameOutOfRange is returned for a frame beyond the populated frame
// table under the [Fail] bounds policy.
var ErrFrameOutOfRange = errors.New("anim: frame beyond frame table")

// Modes are the ways the frame index advances.
type Modes int32

const (
	// Cyclic wraps the frame index around the cycle.
	Cyclic Modes = iota

	// Bounded clamps the frame index to the first or last frame.
	Bounded
)

func (m Modes) String() string {
	if m == Bounded {
		return "Bounded"
	}
	return "Cyclic"
}

// BoundsPolicies decide what happens with a frame index beyond the
// populated frame table.
type BoundsPolicies int32

const (
	// Ignore skips the frame: the elements keep showing the previous
	// frame.
	Ignore BoundsPolicies = iota

	// Clamp shows the last frame of the table.
	Clamp

	// Wrap shows the frame modulo the table length.
	Wrap

	// Fail ends the group with an error.
	Fail
)

var boundsNames = []string{"Ignore", "Clamp", "Wrap", "Fail"}

func (b BoundsPolicies) String() string {
	if b >= 0 && int(b) < len(boundsNames) {
		return boundsNames[b]
	}
	return "BoundsPolicies(" + strconv.Itoa(int(b)) + ")"
}

// Config configures the animation of a display.
type Config struct {

	// FramesPerCycle is the loop period in frames, at least 1.
	FramesPerCycle int

	// Increment is the signed frame step per tick; 0 means 1.
	Increment int

	// Mode is cyclic or bounded stepping.
	Mode Modes

	// Bounds is the policy for frames beyond the table.
	Bounds BoundsPolicies

	// TableLen is the number of populated frames; 0 means
	// FramesPerCycle.
	TableLen int

	// Initial is the frame shown before the first tick.
	Initial int
}

// Validate returns an error for an invalid configuration.
func (c Config) Validate() error {
	if c.FramesPerCycle < 1 {
		return fmt.Errorf("anim: frames per cycle %d < 1", c.FramesPerCycle)
	}
	if c.TableLen < 0 {
		return fmt.Errorf("anim: negative frame table length %d", c.TableLen)
	}
	if c.TableLen > 0 && c.FramesPerCycle%c.TableLen != 0 {
		return fmt.Errorf("anim: frame table length %d does not divide frames per cycle %d", c.TableLen, c.FramesPerCycle)
	}
	return nil
}

func (c Config) increment() int {
	if c.Increment == 0 {
		return 1
	}
	return c.Increment
}

func (c Config) tableLen() int {
	if c.TableLen == 0 {
		return c.FramesPerCycle
	}
	return c.TableLen
}

// Driver steps the frame index of one animated group.
type Driver struct {
	Config Config

	frame int
	ticks int
}

// NewDriver returns a new driver for a valid configuration.
func NewDriver(c Config) (*Driver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Driver{Config: c}, nil
}

// Start resets the driver to the initial frame and returns it.
func (d *Driver) Start() int {
	d.ticks = 0
	d.frame = d.normalize(d.Config.Initial)
	return d.frame
}

// Frame returns the current frame index.
func (d *Driver) Frame() int {
	return d.frame
}

// Ticks returns the number of steps since [Driver.Start].
func (d *Driver) Ticks() int {
	return d.ticks
}

// Step advances the frame index by one tick and returns it.
func (d *Driver) Step() int {
	d.ticks++
	d.frame = d.normalize(d.frame + d.Config.increment())
	return d.frame
}

func (d *Driver) normalize(f int) int {
	n := d.Config.FramesPerCycle
	if d.Config.Mode == Bounded {
		return num.Clamp(f, 0, n-1)
	}
	return num.Mod(f, n)
}

// TableIndex maps a frame index to a frame table index according to
// the bounds policy. It returns false if the frame is to be skipped.
func (d *Driver) TableIndex(frame int) (int, bool, error) {
	n := d.Config.tableLen()
	if frame >= 0 && frame < n {
		return frame, true, nil
	}
	switch d.Config.Bounds {
	case Clamp:
		return num.Clamp(frame, 0, n-1), true, nil
	case Wrap:
		return num.Mod(frame, n), true, nil
	case Fail:
		return -1, false, fmt.Errorf("%w: frame %d, table length %d", ErrFrameOutOfRange, frame, n)
	}
	return -1, false, nil
}
