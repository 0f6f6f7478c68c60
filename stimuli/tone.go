// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"time"

	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/media"
	"cogentcore.org/pxlab/timing"
	"github.com/mitchellh/go-homedir"
)

// Tone plays a sound while showing a fixation mark, ending when the
// sound ends. The sound is a generated sine tone unless SoundFile
// names a WAV file.
type Tone struct {
	BackgroundColor *expar.Par
	Color           *expar.Par

	// Frequency is the tone frequency in Hz.
	Frequency *expar.Par

	// Length is the tone duration in ms.
	Length *expar.Par

	// Gain is the tone level in dB relative to full scale.
	Gain      *expar.Par
	SoundFile *expar.Par

	// Sink, if set, receives the samples of the track as it plays.
	Sink func(samples [][2]float64)

	// Track is the track of the last geometry pass.
	Track *media.Track

	built string
	mark  *display.Oval
}

func (tn *Tone) Create(d *display.Display) int {
	tn.BackgroundColor = d.NewPar("BackgroundColor", expar.Color, expar.ColorValue(colors.Gray(20)))
	tn.Color = d.NewPar("Color", expar.Color, expar.ColorValue(colors.White))
	tn.Frequency = d.NewPar("Frequency", expar.Double, expar.DoubleValue(440))
	tn.Length = d.NewPar("Length", expar.Double, expar.DoubleValue(300))
	tn.Gain = d.NewPar("Gain", expar.Double, expar.DoubleValue(-12))
	tn.SoundFile = d.NewPar("SoundFile", expar.String, expar.StringValue(""))

	bg := d.Enter(display.NewBackground(tn.BackgroundColor), 0)
	tn.mark = display.NewOval(tn.Color, math32.Vector2{}, math32.Vec2(8, 8))
	d.Enter(tn.mark, 0)
	d.EnterTiming(0, timing.EndOfMedia{})
	return bg
}

func (tn *Tone) ComputeColors(d *display.Display) {}

// ComputeGeometry makes the track for the current parameters, reusing
// the previous one if nothing changed.
func (tn *Tone) ComputeGeometry(d *display.Display) {
	length := timing.Milliseconds(tn.Length.Double())
	key := tn.Frequency.Str() + "|" + tn.Length.Str() + "|" + tn.Gain.Str() + "|" + tn.SoundFile.Str()
	if tn.Track == nil || key != tn.built {
		tn.build(d, length)
		tn.built = key
	}
	tn.Track.Sink = tn.Sink
	if te := d.List.Timing(0); te != nil {
		// the timeout guards against tracks that never end
		te.Policy = timing.EndOfMedia{Media: tn.Track, Timeout: tn.Track.Length() + time.Second}
	}
}

func (tn *Tone) build(d *display.Display, length time.Duration) {
	if tn.Track != nil {
		tn.Track.Close()
	}
	fn := tn.SoundFile.Str()
	if fn == "" {
		tn.Track = media.Tone(tn.Frequency.Double(), length, tn.Gain.Double())
		return
	}
	if p, err := homedir.Expand(fn); err == nil {
		fn = p
	}
	tr, err := media.OpenWAV(fn, length)
	d.Ctx.ReportConfigError(tn.SoundFile, err)
	tn.Track = tr
}
