// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/base/iox/imagex"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/paint"
	"cogentcore.org/pxlab/present"
	"cogentcore.org/pxlab/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rig struct {
	d      *display.Display
	c      *present.Controller
	clock  *present.SimClock
	screen *paint.Image
}

func newRig(t *testing.T, typ string, period time.Duration) *rig {
	ctx := expar.NewContext()
	d, err := New(ctx, typ, "Stim")
	require.NoError(t, err)
	clock := present.NewSimClock(period)
	scr := paint.NewImage(image.Pt(400, 300))
	c := present.NewController(present.NewScheduler(clock, scr))
	c.Create(d)
	return &rig{d: d, c: c, clock: clock, screen: scr}
}

func (r *rig) set(t *testing.T, name string, v expar.Value) {
	p, err := r.d.Par(name)
	require.NoError(t, err)
	require.NoError(t, p.Set(v))
}

func (r *rig) par(t *testing.T, name string) *expar.Par {
	p, err := r.d.Par(name)
	require.NoError(t, err)
	return p
}

func (r *rig) present(t *testing.T) *present.Result {
	res, err := r.c.Present(context.Background(), r.d)
	require.NoError(t, err)
	return res
}

func (r *rig) send(ev events.Event) {
	r.c.Scheduler.Send(ev)
}

func TestRegistry(t *testing.T) {
	types := Types()
	assert.Equal(t, []string{"Fixation", "Arrow", "ContextFields", "SelectionGrid", "Grating",
		"Tone", "Picture", "Message", "ColorAdjust", "Puzzle"}, types)

	ctx := expar.NewContext()
	for _, typ := range types {
		d, err := New(ctx, typ, "D"+typ)
		require.NoError(t, err, typ)
		d.Create()
		assert.NotEmpty(t, d.List.Timings(), typ)
	}

	_, err := New(ctx, "Fixaton", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Fixation"`)
}

func TestFixation(t *testing.T) {
	r := newRig(t, "Fixation", time.Millisecond)
	var first color.RGBA
	r.screen.OnPresent = func(img *image.RGBA) error {
		if r.screen.Presents == 1 {
			first = img.RGBAAt(200, 150)
		}
		return nil
	}
	res := r.present(t)
	assert.Equal(t, 1600*time.Millisecond, r.clock.Now())
	require.Len(t, res.Groups, 3)
	for g, ms := range []float64{500, 100, 1000} {
		assert.Equal(t, timing.Timeout, res.Groups[g].Reason)
		assert.InDelta(t, ms, r.par(t, fmt.Sprintf("Group%d.Time", g)).Double(), 0.001)
	}
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, first)

	// a duration override
	r.set(t, "Group1.Duration", expar.DoubleValue(50))
	res = r.present(t)
	assert.Equal(t, 50*time.Millisecond, res.Groups[1].Elapsed)
}

func TestArrow(t *testing.T) {
	r := newRig(t, "Arrow", 10*time.Millisecond)
	r.set(t, "Direction", expar.DoubleValue(180))
	r.clock.OnTick = func(now time.Duration) {
		if now == 50*time.Millisecond {
			r.send(events.NewKey(events.KeyDown, key.CodeLeftArrow))
		}
	}
	res := r.present(t)
	gr := res.Group(0)
	require.NotNil(t, gr)
	assert.Equal(t, timing.KeyResponse, gr.Reason)
	assert.Equal(t, int(key.CodeLeftArrow), gr.Response)
	assert.Equal(t, 1, r.par(t, "Correct").Int())

	ar := r.d.Behavior.(*Arrow)
	assert.Equal(t, key.CodeLeftArrow, ar.Expected())
	assert.True(t, ar.arrow.Contains(math32.Vec2(-50, 0)))
	assert.False(t, ar.arrow.Contains(math32.Vec2(0, 30)))

	// a timeout is not correct
	r.clock.OnTick = nil
	res = r.present(t)
	assert.Equal(t, timing.Timeout, res.Group(0).Reason)
	assert.Equal(t, 0, r.par(t, "Correct").Int())
}

func TestContextFieldsRebuild(t *testing.T) {
	r := newRig(t, "ContextFields", 10*time.Millisecond)
	r.c.Prepare(r.d)
	assert.Equal(t, 5, r.d.List.Len())
	rebuilds := r.d.List.Rebuilds

	r.set(t, "NumberOfContextFields", expar.IntValue(8))
	r.c.Prepare(r.d)
	assert.Equal(t, 9, r.d.List.Len())
	assert.Equal(t, rebuilds+1, r.d.List.Rebuilds)

	r.c.Prepare(r.d)
	assert.Equal(t, rebuilds+1, r.d.List.Rebuilds)
	assert.Empty(t, r.d.Orphans())

	lums := r.par(t, "FieldLuminances").Array()
	require.Len(t, lums, 8)
	assert.InDelta(t, 60, lums[0].Double(), 1e-9)
	assert.InDelta(t, 20, lums[1].Double(), 1e-9)
	assert.InDelta(t, 60, r.par(t, "Field2.Color").Color().Lum, 1e-9)

	// fields lie on the ring, the first one straight up
	top := r.d.List.At(firstField).(*display.Rect)
	assert.InDelta(t, 0, top.Center.X, 1e-3)
	assert.InDelta(t, -120, top.Center.Y, 1e-3)

	r.set(t, "NumberOfContextFields", expar.IntValue(-2))
	r.c.Prepare(r.d)
	assert.Equal(t, 1, r.d.List.Len())
	assert.NotEmpty(t, r.d.Ctx.ConfigErrors)
}

func TestSelectionGridVeto(t *testing.T) {
	r := newRig(t, "SelectionGrid", 10*time.Millisecond)
	r.set(t, "DisableNonSelection", expar.IntValue(1))
	r.clock.OnTick = func(now time.Duration) {
		if now == 3000*time.Millisecond {
			// the first cell of the 2x3 grid
			r.send(events.NewMouse(events.MouseDown, events.Left, image.Pt(-80, -40)))
		}
	}
	res := r.present(t)
	gr := res.Group(0)
	require.NotNil(t, gr)
	assert.Equal(t, timing.Timeout, gr.Reason)
	assert.Greater(t, gr.Vetoes, 0)
	assert.GreaterOrEqual(t, gr.Elapsed, 3000*time.Millisecond)
	assert.Less(t, gr.Elapsed, 3050*time.Millisecond)
	assert.Equal(t, 1, r.par(t, "NumberSelected").Int())
	sel := r.par(t, "SelectionSet").Array()
	require.Len(t, sel, 1)
	assert.Equal(t, firstCell, sel[0].Int())

	sl := r.d.Mixins[0].(*Selection)
	cell := r.d.List.At(firstCell).AsBase()
	assert.True(t, cell.Selected)
	assert.Same(t, sl.SelectionColor, cell.Color)
	sl.Toggle(r.d, firstCell)
	assert.False(t, cell.Selected)
	assert.Same(t, r.par(t, "Color"), cell.Color)
}

func TestSelectionGridNoVeto(t *testing.T) {
	r := newRig(t, "SelectionGrid", 10*time.Millisecond)
	res := r.present(t)
	gr := res.Group(0)
	assert.Equal(t, 2000*time.Millisecond, gr.Elapsed)
	assert.Equal(t, 0, gr.Vetoes)
	assert.Equal(t, 0, r.par(t, "NumberSelected").Int())
}

func TestSelectionGridTwoTrials(t *testing.T) {
	r := newRig(t, "SelectionGrid", 10*time.Millisecond)
	r.clock.OnTick = func(now time.Duration) {
		if now == 100*time.Millisecond {
			r.send(events.NewMouse(events.MouseDown, events.Left, image.Pt(-80, -40)))
		}
	}
	r.present(t)
	assert.Equal(t, 1, r.par(t, "NumberSelected").Int())

	// nothing selected yet, so the second trial cannot time out
	r.set(t, "DisableNonSelection", expar.IntValue(1))
	start := r.clock.Now()
	r.clock.OnTick = func(now time.Duration) {
		if now-start == 2500*time.Millisecond {
			// the second cell of the first row
			r.send(events.NewMouse(events.MouseDown, events.Left, image.Pt(0, -40)))
		}
	}
	res := r.present(t)
	gr := res.Group(0)
	require.NotNil(t, gr)
	assert.Equal(t, timing.Timeout, gr.Reason)
	assert.Greater(t, gr.Vetoes, 0)
	assert.GreaterOrEqual(t, gr.Elapsed, 2500*time.Millisecond)
	assert.Equal(t, 1, r.par(t, "NumberSelected").Int())
	sel := r.par(t, "SelectionSet").Array()
	require.Len(t, sel, 1)
	assert.Equal(t, firstCell+1, sel[0].Int())

	cell := r.d.List.At(firstCell).AsBase()
	assert.False(t, cell.Selected)
	assert.Same(t, r.par(t, "Color"), cell.Color)
}

func TestGrating(t *testing.T) {
	r := newRig(t, "Grating", 10*time.Millisecond)
	r.set(t, "Ticks", expar.IntValue(20))
	r.set(t, "Size", expar.IntValue(32))
	gr := r.d.Behavior.(*Grating)
	res := r.present(t)
	g := res.Group(0)
	require.NotNil(t, g)
	assert.Equal(t, timing.Timeout, g.Reason)
	assert.Equal(t, 20, g.Ticks)
	assert.Equal(t, 16, gr.table.Len())
	assert.Equal(t, 1, gr.table.Rebuilds)

	r.c.Prepare(r.d)
	assert.Equal(t, 1, gr.table.Rebuilds)
	r.set(t, "Contrast", expar.DoubleValue(0.2))
	r.c.Prepare(r.d)
	assert.Equal(t, 2, gr.table.Rebuilds)

	// frames differ by a phase shift
	f0, f4 := gr.table.Frames[0], gr.table.Frames[4]
	assert.Equal(t, image.Pt(32, 32), f0.Bounds().Size())
	assert.NotEqual(t, f0.RGBAAt(0, 0), f4.RGBAAt(0, 0))
	// a quarter period on is a quarter cycle on
	assert.Equal(t, f0.RGBAAt(8, 0), f4.RGBAAt(16, 0))
}

func TestTone(t *testing.T) {
	r := newRig(t, "Tone", 10*time.Millisecond)
	r.set(t, "Length", expar.DoubleValue(100))
	tn := r.d.Behavior.(*Tone)
	samples := 0
	tn.Sink = func(s [][2]float64) { samples += len(s) }
	res := r.present(t)
	gr := res.Group(0)
	require.NotNil(t, gr)
	assert.Equal(t, timing.MediaEnded, gr.Reason)
	assert.GreaterOrEqual(t, gr.Elapsed, 100*time.Millisecond)
	assert.Less(t, gr.Elapsed, 130*time.Millisecond)
	assert.Equal(t, 4410, samples)
	track := tn.Track

	r.c.Prepare(r.d)
	assert.Same(t, track, tn.Track)

	r.set(t, "SoundFile", expar.StringValue(filepath.Join(t.TempDir(), "missing.wav")))
	res = r.present(t)
	assert.Equal(t, timing.MediaEnded, res.Group(0).Reason)
	require.NotEmpty(t, r.d.Ctx.ConfigErrors)
	assert.True(t, errors.IsUnavailable(r.d.Ctx.ConfigErrors[0]))
}

func TestPicture(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, imagex.Save(image.NewRGBA(image.Rect(0, 0, 20, 10)), fn))

	r := newRig(t, "Picture", 10*time.Millisecond)
	pc := r.d.Behavior.(*Picture)
	r.set(t, "FileName", expar.StringValue(fn))
	r.set(t, "Angle", expar.DoubleValue(90))
	r.c.Prepare(r.d)
	assert.Equal(t, imagex.PNG, pc.Format)
	assert.Empty(t, r.d.Ctx.ConfigErrors)
	sz := pc.bitmap.Rendered().Bounds().Size()
	assert.InDelta(t, 10, sz.X, 1)
	assert.InDelta(t, 20, sz.Y, 1)

	res := r.present(t)
	assert.Equal(t, time.Second, res.Group(0).Elapsed)

	r.set(t, "FileName", expar.StringValue(filepath.Join(t.TempDir(), "none.png")))
	r.set(t, "Angle", expar.DoubleValue(0))
	r.c.Prepare(r.d)
	assert.Equal(t, imagex.None, pc.Format)
	assert.Equal(t, image.Pt(64, 64), pc.bitmap.Image.Bounds().Size())
	require.Len(t, r.d.Ctx.ConfigErrors, 1)
	assert.True(t, errors.IsUnavailable(r.d.Ctx.ConfigErrors[0]))
}

func TestMessage(t *testing.T) {
	r := newRig(t, "Message", 10*time.Millisecond)
	r.set(t, "Text", expar.StringValue("one\ntwo\nthree"))
	r.clock.OnTick = func(now time.Duration) {
		if now == 30*time.Millisecond {
			r.send(events.NewKey(events.KeyDown, key.CodeSpacebar))
		}
	}
	res := r.present(t)
	assert.Equal(t, 4, r.d.List.Len())
	assert.Equal(t, "two", r.d.List.At(firstLine+1).(*display.Text).Text)
	assert.Equal(t, timing.KeyResponse, res.Group(0).Reason)
	assert.Equal(t, int(key.CodeSpacebar), res.Group(0).Response)
}

func TestColorAdjust(t *testing.T) {
	r := newRig(t, "ColorAdjust", 10*time.Millisecond)
	ca := r.d.Mixins[0].(*ColorAdjust)
	_, _, v0 := r.par(t, "Color").Color().Colorful().Hsv()
	r.clock.OnTick = func(now time.Duration) {
		switch now {
		case 20 * time.Millisecond, 30 * time.Millisecond, 40 * time.Millisecond:
			r.send(events.NewKey(events.KeyDown, key.CodeUpArrow))
		case 50 * time.Millisecond:
			r.send(events.NewKey(events.KeyDown, key.CodeX))
		case 60 * time.Millisecond:
			r.send(events.NewKey(events.KeyDown, key.CodeReturnEnter))
		}
	}
	res := r.present(t)
	assert.Equal(t, timing.KeyResponse, res.Group(0).Reason)
	assert.Equal(t, 3, ca.Adjustments)
	_, _, v := r.par(t, "Color").Color().Colorful().Hsv()
	assert.InDelta(t, v0+0.06, v, 0.01)
}

func TestPuzzle(t *testing.T) {
	r := newRig(t, "Puzzle", 10*time.Millisecond)
	pz := r.d.Behavior.(*Puzzle)
	r.c.Prepare(r.d)
	require.Equal(t, 10, r.d.List.Len())
	before := pz.Correct()
	require.Less(t, before, 9)

	tile := -1
	for i, c := range pz.cells {
		if c != i {
			tile = i
			break
		}
	}
	from := pz.cellCenter(pz.cells[tile]).ToPoint()
	home := pz.cellCenter(tile).ToPoint()
	r.clock.OnTick = func(now time.Duration) {
		switch now {
		case 20 * time.Millisecond:
			r.send(events.NewMouse(events.MouseDown, events.Left, from))
		case 30 * time.Millisecond:
			r.send(events.NewMouseDrag(events.Left, home.Add(image.Pt(3, 2)), from, from))
		case 40 * time.Millisecond:
			r.send(events.NewMouse(events.MouseUp, events.Left, home.Add(image.Pt(3, 2))))
		case 50 * time.Millisecond:
			r.send(events.NewKey(events.KeyDown, key.CodeReturnEnter))
		}
	}
	res := r.present(t)
	assert.Equal(t, timing.KeyResponse, res.Group(0).Reason)
	dm := r.d.Mixins[0].(*DragMove)
	assert.Equal(t, 1, dm.Moves)
	assert.Equal(t, -1, dm.Grabbed())
	assert.Equal(t, tile, pz.cells[tile])
	assert.GreaterOrEqual(t, pz.Correct(), before+1)
	assert.Equal(t, pz.Correct(), r.par(t, "NumberCorrect").Int())
	moved := r.d.List.At(firstTile + tile).(*display.Rect)
	assert.Equal(t, pz.cellCenter(tile), moved.Center)

	// unshuffled
	r.set(t, "Seed", expar.IntValue(0))
	r.clock.OnTick = func(now time.Duration) {
		if now == 20*time.Millisecond {
			r.send(events.NewKey(events.KeyDown, key.CodeReturnEnter))
		}
	}
	r.present(t)
	assert.Equal(t, 9, r.par(t, "NumberCorrect").Int())
}
