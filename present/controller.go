// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"context"
	"log/slog"
	"strconv"

	"cogentcore.org/pxlab/display"
)

// Stages are the lifecycle stages of a display.
type Stages int32

const (
	StageCreate Stages = iota
	StageComputeColors
	StageComputeGeometry
	StagePresent
	StageDestroy
)

var stageNames = []string{"Create", "ComputeColors", "ComputeGeometry", "Present", "Destroy"}

func (s Stages) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "Stages(" + strconv.Itoa(int(s)) + ")"
}

// Controller drives the lifecycle of displays: Create once, then for
// every trial ComputeColors, ComputeGeometry and the scheduled
// presentation.
type Controller struct {

	// Scheduler presents the displays.
	Scheduler *Scheduler

	// OnStage is called at the start of every lifecycle stage.
	OnStage func(d *display.Display, st Stages)
}

// NewController returns a new controller presenting with the scheduler.
func NewController(s *Scheduler) *Controller {
	return &Controller{Scheduler: s}
}

func (c *Controller) stage(d *display.Display, st Stages) {
	if c.OnStage != nil {
		c.OnStage(d, st)
	}
}

// Create creates the display if it was not created yet.
func (c *Controller) Create(d *display.Display) {
	if d.Created() {
		return
	}
	c.stage(d, StageCreate)
	d.Create()
}

// Prepare resets and recomputes the display for a trial: all colors
// first, then all geometry. Elements not visible in any timing group
// are reported.
func (c *Controller) Prepare(d *display.Display) {
	c.Create(d)
	for _, h := range d.Hooks() {
		if r, ok := h.(display.TrialResetter); ok {
			r.ResetTrial(d)
		}
	}
	c.stage(d, StageComputeColors)
	d.Behavior.ComputeColors(d)
	c.stage(d, StageComputeGeometry)
	d.Behavior.ComputeGeometry(d)
	if orph := d.Orphans(); len(orph) > 0 {
		slog.Warn("display elements not visible in any timing group", "display", d.Name, "elements", orph)
	}
}

// Present prepares and presents the display for one trial.
func (c *Controller) Present(ctx context.Context, d *display.Display) (*Result, error) {
	c.Prepare(d)
	c.stage(d, StagePresent)
	return c.Scheduler.Run(ctx, d)
}

// RunTrials presents the displays in order, for the given number of
// trials. It stops at the first aborted presentation, returning the
// results so far.
func (c *Controller) RunTrials(ctx context.Context, trials int, ds ...*display.Display) ([]*Result, error) {
	var results []*Result
	for trial := range trials {
		for _, d := range ds {
			res, err := c.Present(ctx, d)
			if res != nil {
				results = append(results, res)
			}
			if err != nil {
				return results, err
			}
			if res.Aborted {
				slog.Info("presentation aborted", "display", d.Name, "trial", trial)
				return results, nil
			}
		}
	}
	return results, nil
}

// Destroy removes the display parameters from the parameter context.
func (c *Controller) Destroy(d *display.Display) {
	c.stage(d, StageDestroy)
	d.Destroy()
}
