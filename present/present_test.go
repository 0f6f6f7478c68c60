// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"context"
	"fmt"
	"image"
	"testing"
	"time"

	"cogentcore.org/pxlab/anim"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen struct {
	presents int
}

func (s *screen) Size() image.Point { return image.Pt(400, 300) }

func (s *screen) Fill(c colors.Color) {}

func (s *screen) FillPolygon(pts []math32.Vector2, c colors.Color) {}

func (s *screen) StrokeLine(from, to math32.Vector2, width float32, c colors.Color) {}

func (s *screen) DrawImage(img image.Image, center math32.Vector2) {}

func (s *screen) DrawText(text string, center math32.Vector2, c colors.Color) {}

func (s *screen) TextSize(text string) math32.Vector2 { return math32.Vector2{} }

func (s *screen) Present() error {
	s.presents++
	return nil
}

// stimulus is a configurable test behavior recording its hook calls.
type stimulus struct {
	policies []timing.Policy
	calls    []string
	allow    func(reason timing.StopReasons) bool
	keys     []key.Codes
	pointer  []string
	finished []int
	frames   []int
	anim     *anim.Config
	target   int
}

func (st *stimulus) Create(d *display.Display) int {
	st.calls = append(st.calls, "Create")
	bg := d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	fg := d.NewPar("Color", expar.Color, expar.ColorValue(colors.White))
	i := d.Enter(display.NewBackground(bg), 0, 1, 2, 3)
	st.target = d.Enter(display.NewRect(fg, math32.Vec2(0, 0), math32.Vec2(40, 40)), 0)
	d.Enter(display.NewRect(fg, math32.Vec2(100, 0), math32.Vec2(40, 40)), 1)
	for g, p := range st.policies {
		d.EnterTiming(g, p)
	}
	return i
}

func (st *stimulus) ComputeColors(d *display.Display) {
	st.calls = append(st.calls, "ComputeColors")
}

func (st *stimulus) ComputeGeometry(d *display.Display) {
	st.calls = append(st.calls, "ComputeGeometry")
}

func (st *stimulus) AllowTimerStop(d *display.Display, reason timing.StopReasons) bool {
	if st.allow == nil {
		return true
	}
	return st.allow(reason)
}

func (st *stimulus) KeyResponse(d *display.Display, ev *events.Key) bool {
	st.keys = append(st.keys, ev.Code)
	return true
}

func (st *stimulus) PointerActivated(d *display.Display, ev *events.Mouse) bool {
	i, _, ok := d.HitTest(math32.FromPoint(ev.Where))
	if ok && i == st.target {
		st.pointer = append(st.pointer, "activated")
		return true
	}
	return false
}

func (st *stimulus) PointerDragged(d *display.Display, ev *events.Mouse) bool {
	st.pointer = append(st.pointer, "dragged")
	return true
}

func (st *stimulus) PointerReleased(d *display.Display, ev *events.Mouse) bool {
	return false
}

func (st *stimulus) TimingGroupFinished(d *display.Display, group int) {
	st.finished = append(st.finished, group)
}

// animated adds animation hooks to a stimulus.
type animated struct {
	*stimulus
}

func (a animated) Animation(d *display.Display) anim.Config {
	return *a.anim
}

func (a animated) ComputeAnimationFrame(d *display.Display, frame int) {
	a.frames = append(a.frames, frame)
}

func setup(t *testing.T, b display.Behavior, period time.Duration) (*display.Display, *Controller, *SimClock, *[]Transition) {
	ctx := expar.NewContext()
	d := display.New(ctx, "Test", "Stim", b)
	clock := NewSimClock(period)
	s := NewScheduler(clock, &screen{})
	var trs []Transition
	s.OnTransition = func(tr Transition) { trs = append(trs, tr) }
	return d, NewController(s), clock, &trs
}

func TestScenarioClockGroups(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.Clock{Duration: 500 * time.Millisecond},
		timing.Clock{Duration: 100 * time.Millisecond},
		timing.Clock{Duration: 1000 * time.Millisecond},
	}}
	d, c, clock, trs := setup(t, st, time.Millisecond)
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.False(t, res.Aborted)
	assert.Equal(t, 1600*time.Millisecond, clock.Now())
	assert.Equal(t, 1600*time.Millisecond, res.Duration())

	want := []float64{500, 100, 1000}
	for g, ms := range want {
		p, err := d.Par(fmt.Sprintf("Group%d.Time", g))
		require.NoError(t, err)
		assert.InDelta(t, ms, p.Double(), 1)
		code, err := d.Par(fmt.Sprintf("Group%d.Code", g))
		require.NoError(t, err)
		assert.Equal(t, int(timing.Timeout), code.Int())
	}
	last := (*trs)[len(*trs)-1]
	assert.Equal(t, AllGroupsDone, last.State)
	assert.Equal(t, []int{0, 1, 2}, st.finished)
	assert.Equal(t, -1, d.Active)
}

func TestGroupMonotonicity(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.NoTimer{},
		timing.VSyncClock{Ticks: 3},
		timing.Clock{Duration: 20 * time.Millisecond},
		timing.Response{Keys: []key.Codes{key.CodeSpacebar}, Timeout: 50 * time.Millisecond},
	}}
	d, c, _, trs := setup(t, st, 10*time.Millisecond)
	for range 3 {
		*trs = nil
		_, err := c.Present(context.Background(), d)
		require.NoError(t, err)
		var active []int
		for _, tr := range *trs {
			if tr.State == GroupActive {
				active = append(active, tr.Group)
			}
		}
		assert.Equal(t, []int{0, 1, 2, 3}, active)
	}
}

func TestLifecycleOrdering(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.NoTimer{}}}
	d, c, _, _ := setup(t, st, time.Millisecond)
	var stages []Stages
	c.OnStage = func(_ *display.Display, s Stages) { stages = append(stages, s) }
	results, err := c.RunTrials(context.Background(), 3, d)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, []string{
		"Create",
		"ComputeColors", "ComputeGeometry",
		"ComputeColors", "ComputeGeometry",
		"ComputeColors", "ComputeGeometry",
	}, st.calls)
	assert.Equal(t, []Stages{
		StageCreate, StageComputeColors, StageComputeGeometry, StagePresent,
		StageComputeColors, StageComputeGeometry, StagePresent,
		StageComputeColors, StageComputeGeometry, StagePresent,
	}, stages)

	c.Destroy(d)
	assert.Equal(t, 0, d.Ctx.Len())
}

func TestVetoOverrun(t *testing.T) {
	vetoes := 20
	st := &stimulus{
		policies: []timing.Policy{timing.Response{Keys: []key.Codes{key.CodeA}, Timeout: 100 * time.Millisecond}},
	}
	st.allow = func(reason timing.StopReasons) bool {
		vetoes--
		return vetoes < 0
	}
	d, c, _, _ := setup(t, st, 10*time.Millisecond)
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	gr := res.Group(0)
	require.NotNil(t, gr)
	assert.Equal(t, timing.Timeout, gr.Reason)
	assert.Greater(t, gr.Elapsed, gr.Nominal)
	assert.Equal(t, 20, gr.Vetoes)
	p, err := d.Par("Group0.Time")
	require.NoError(t, err)
	assert.Greater(t, p.Double(), 100.0)
}

func TestClockBypassesGate(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.Clock{Duration: 50 * time.Millisecond}}}
	st.allow = func(timing.StopReasons) bool { return false }
	d, c, _, _ := setup(t, st, 10*time.Millisecond)
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, res.Groups[0].Elapsed)
	assert.Zero(t, res.Groups[0].Vetoes)
}

func TestKeyResponse(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.Response{Keys: []key.Codes{key.CodeLeftArrow, key.CodeRightArrow}}}}
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	s := c.Scheduler
	clock.OnTick = func(now time.Duration) {
		switch now {
		case 100 * time.Millisecond:
			s.Send(events.NewKey(events.KeyDown, key.CodeA))
		case 250 * time.Millisecond:
			s.Send(events.NewKey(events.KeyUp, key.CodeRightArrow))
			s.Send(events.NewKey(events.KeyDown, key.CodeRightArrow))
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	gr := res.Groups[0]
	assert.Equal(t, timing.KeyResponse, gr.Reason)
	assert.Equal(t, int(key.CodeRightArrow), gr.Response)
	assert.Equal(t, 250*time.Millisecond, gr.Elapsed)
	assert.Equal(t, []key.Codes{key.CodeA}, st.keys, "stop keys are not passed to the key hook")
	resp, err := d.Par("Group0.Response")
	require.NoError(t, err)
	assert.Equal(t, int(key.CodeRightArrow), resp.Int())
}

func TestInputAfterStopDropped(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.Response{Keys: []key.Codes{key.CodeLeftArrow}},
		timing.Response{Keys: []key.Codes{key.CodeRightArrow}, Timeout: 100 * time.Millisecond},
	}}
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	s := c.Scheduler
	var seen []key.Codes
	s.Observers.Add(events.KeyDown, func(ev events.Event) {
		seen = append(seen, ev.(*events.Key).Code)
	})
	clock.OnTick = func(now time.Duration) {
		if now == 50*time.Millisecond {
			s.Send(events.NewKey(events.KeyDown, key.CodeLeftArrow))
			s.Send(events.NewKey(events.KeyDown, key.CodeRightArrow))
			s.Send(events.NewKey(events.KeyDown, key.CodeA))
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, timing.KeyResponse, res.Groups[0].Reason)
	assert.Equal(t, int(key.CodeLeftArrow), res.Groups[0].Response)
	assert.Equal(t, timing.Timeout, res.Groups[1].Reason)
	assert.Equal(t, 100*time.Millisecond, res.Groups[1].Elapsed)
	assert.Empty(t, st.keys)
	assert.Equal(t, []key.Codes{key.CodeLeftArrow, key.CodeRightArrow, key.CodeA}, seen)
}

func TestVetoedResponseDropped(t *testing.T) {
	allowed := false
	st := &stimulus{policies: []timing.Policy{timing.Response{Keys: []key.Codes{key.CodeSpacebar}}}}
	st.allow = func(timing.StopReasons) bool { return allowed }
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	s := c.Scheduler
	clock.OnTick = func(now time.Duration) {
		switch now {
		case 50 * time.Millisecond:
			s.Send(events.NewKey(events.KeyDown, key.CodeSpacebar))
		case 100 * time.Millisecond:
			allowed = true
		case 150 * time.Millisecond:
			s.Send(events.NewKey(events.KeyDown, key.CodeSpacebar))
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, res.Groups[0].Elapsed)
	assert.Equal(t, 1, res.Groups[0].Vetoes)
}

func TestPointer(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.Response{Pointer: true},
		timing.Response{Pointer: true},
	}}
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	s := c.Scheduler
	clock.OnTick = func(now time.Duration) {
		switch now {
		case 20 * time.Millisecond:
			// consumed by the behavior: repaints, no response
			s.Send(events.NewMouse(events.MouseDown, events.Left, image.Pt(0, 0)))
			s.Send(events.NewMouseDrag(events.Left, image.Pt(5, 0), image.Pt(0, 0), image.Pt(0, 0)))
		case 40 * time.Millisecond:
			s.Send(events.NewMouse(events.MouseDown, events.Right, image.Pt(150, 100)))
		case 60 * time.Millisecond:
			// the target element is not in group 1
			s.Send(events.NewMouse(events.MouseDown, events.Left, image.Pt(0, 0)))
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, []string{"activated", "dragged"}, st.pointer)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, timing.PointerResponse, res.Groups[0].Reason)
	assert.Equal(t, int(events.Right), res.Groups[0].Response)
	assert.Equal(t, timing.PointerResponse, res.Groups[1].Reason)
	assert.Equal(t, 20*time.Millisecond, res.Groups[1].Elapsed)
}

func TestForceStop(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.Response{Keys: []key.Codes{key.CodeA}},
		timing.Clock{Duration: 30 * time.Millisecond},
	}}
	st.allow = func(timing.StopReasons) bool { return false }
	d, c, clock, trs := setup(t, st, 10*time.Millisecond)
	clock.OnTick = func(now time.Duration) {
		if now == 70*time.Millisecond {
			c.Scheduler.ForceStop()
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, timing.Forced, res.Groups[0].Reason)
	assert.Equal(t, 70*time.Millisecond, res.Groups[0].Elapsed)
	assert.Equal(t, timing.Timeout, res.Groups[1].Reason)
	assert.False(t, res.Aborted)
	assert.Contains(t, *trs, Transition{State: Interrupted, Group: 0, Reason: timing.Forced, At: 70 * time.Millisecond})
}

func TestAbortKey(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{
		timing.Clock{Duration: time.Second},
		timing.Clock{Duration: time.Second},
	}}
	d, c, clock, trs := setup(t, st, 10*time.Millisecond)
	clock.OnTick = func(now time.Duration) {
		if now == 100*time.Millisecond {
			c.Scheduler.Send(events.NewKey(events.KeyDown, key.CodeEscape))
		}
	}
	results, err := c.RunTrials(context.Background(), 5, d)
	require.NoError(t, err)
	require.Len(t, results, 1)
	res := results[0]
	assert.True(t, res.Aborted)
	assert.Len(t, res.Groups, 1)
	assert.Equal(t, timing.Aborted, res.Groups[0].Reason)
	assert.Equal(t, Aborted, (*trs)[len(*trs)-1].State)
}

func TestContextCancel(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.Response{Keys: []key.Codes{key.CodeA}}}}
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	clock.OnTick = func(now time.Duration) {
		if now == 30*time.Millisecond {
			cancel()
		}
	}
	res, err := c.Present(ctx, d)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.True(t, res.Aborted)
}

type track struct {
	left time.Duration
}

func (tr *track) Start()                  { tr.left = 80 * time.Millisecond }
func (tr *track) Advance(d time.Duration) { tr.left -= d }
func (tr *track) Done() bool              { return tr.left <= 0 }

func TestEndOfMedia(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.EndOfMedia{Media: &track{}}}}
	d, c, _, _ := setup(t, st, 10*time.Millisecond)
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, timing.MediaEnded, res.Groups[0].Reason)
	assert.Equal(t, 80*time.Millisecond, res.Groups[0].Elapsed)
}

func TestAnimationRoundTrip(t *testing.T) {
	st := &stimulus{
		policies: []timing.Policy{timing.Clock{Duration: 20 * time.Millisecond}, timing.VSyncClock{Ticks: 16}},
		anim:     &anim.Config{FramesPerCycle: 16},
	}
	d, c, _, _ := setup(t, animated{st}, 10*time.Millisecond)
	assert.True(t, d.IsAnimated())
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, st.frames, 17, "initial frame plus one per tick")
	assert.Equal(t, 0, st.frames[0])
	assert.Equal(t, st.frames[0], st.frames[16])
	assert.Equal(t, 16, res.Groups[1].Ticks)
	assert.Equal(t, 160*time.Millisecond, res.Groups[1].Elapsed)
}

func TestAnimationBounds(t *testing.T) {
	st := &stimulus{
		policies: []timing.Policy{timing.VSyncClock{Ticks: 8}},
		anim:     &anim.Config{FramesPerCycle: 8, TableLen: 4, Bounds: anim.Ignore},
	}
	d, c, _, _ := setup(t, animated{st}, 10*time.Millisecond)
	_, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, st.frames)

	st.frames = nil
	st.anim.Bounds = anim.Fail
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	gr := res.Groups[0]
	assert.Equal(t, timing.Forced, gr.Reason)
	assert.ErrorIs(t, gr.Err, anim.ErrFrameOutOfRange)
	assert.Equal(t, []int{0, 1, 2, 3}, st.frames)
}

func TestAnimationInvalidConfig(t *testing.T) {
	st := &stimulus{
		policies: []timing.Policy{timing.VSyncClock{Ticks: 2}},
		anim:     &anim.Config{FramesPerCycle: 0},
	}
	d, c, _, _ := setup(t, animated{st}, 10*time.Millisecond)
	_, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Empty(t, st.frames)
	assert.Len(t, d.Ctx.ConfigErrors, 1)
}

func TestRepaint(t *testing.T) {
	st := &stimulus{policies: []timing.Policy{timing.Clock{Duration: 50 * time.Millisecond}}}
	d, c, clock, _ := setup(t, st, 10*time.Millisecond)
	clock.OnTick = func(now time.Duration) {
		if now == 20*time.Millisecond {
			c.Scheduler.Send(events.NewKey(events.KeyDown, key.CodeB))
		}
	}
	res, err := c.Present(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Frames, "entry paint plus the consumed key")
	assert.Equal(t, 2, c.Scheduler.Screen.(*screen).presents)
}

func TestNoTimingGroups(t *testing.T) {
	st := &stimulus{}
	d, c, _, _ := setup(t, st, 10*time.Millisecond)
	_, err := c.Present(context.Background(), d)
	assert.Error(t, err)
}

func TestRealClock(t *testing.T) {
	clock := NewRealClock(1000)
	assert.Equal(t, time.Millisecond, clock.Period())
	before := clock.Now()
	require.NoError(t, clock.WaitRefresh(context.Background()))
	after := clock.Now()
	assert.Greater(t, after, before)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, clock.WaitRefresh(ctx))
}
