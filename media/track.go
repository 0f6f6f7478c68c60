// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package media provides sound tracks that end timing groups with the
// end-of-media policy. Tracks are pulled by the presentation loop, one
// refresh period of samples at a time, so they play in step with the
// display whether or not a sound device is attached.
package media

import (
	"io"
	"math"
	"os"
	"time"

	"cogentcore.org/pxlab/base/errors"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
)

// DefaultSampleRate is the sample rate of generated tones.
const DefaultSampleRate beep.SampleRate = 44100

// Track is a sound track. It implements the media interface of the
// timing package: Start rewinds it, Advance pulls the samples of the
// elapsed time and Done reports whether the track has ended.
type Track struct {

	// Name identifies the track in logs.
	Name string

	// Format is the sample format of the track.
	Format beep.Format

	// Sink, if set, receives every block of samples pulled from the
	// track, for example to feed a sound device or a recorder.
	Sink func(samples [][2]float64)

	// Pulled is the number of samples pulled since the last Start.
	Pulled int

	length time.Duration
	open   func() (beep.Streamer, error)
	closer io.Closer
	stream beep.Streamer
	buf    [][2]float64
	done   bool
}

// New returns a track playing the streamers returned by open, which is
// called on every Start.
func New(name string, format beep.Format, open func() (beep.Streamer, error)) *Track {
	return &Track{Name: name, Format: format, open: open}
}

// Tone returns a track playing a sine tone of the given frequency in Hz
// and duration. Gain is in decibels relative to full scale.
func Tone(freq float64, dur time.Duration, gain float64) *Track {
	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	t := New("tone", format, func() (beep.Streamer, error) {
		s := beep.Take(format.SampleRate.N(dur), sine(format.SampleRate, freq))
		return &effects.Volume{Streamer: s, Base: 10, Volume: gain / 20}, nil
	})
	t.length = dur
	return t
}

// Silence returns a silent track of the given duration.
func Silence(dur time.Duration) *Track {
	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	t := New("silence", format, func() (beep.Streamer, error) {
		return beep.Silence(format.SampleRate.N(dur)), nil
	})
	t.length = dur
	return t
}

// OpenWAV opens a WAV file as a track. If the file cannot be read, an
// [errors.UnavailableError] is returned together with a silent track of
// the given fallback duration, so presentation can go on.
func OpenWAV(filename string, fallback time.Duration) (*Track, error) {
	f, err := os.Open(filename)
	if err != nil {
		return named(Silence(fallback), filename), errors.Unavailable(filename, err)
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return named(Silence(fallback), filename), errors.Unavailable(filename, err)
	}
	t := New(filename, format, func() (beep.Streamer, error) {
		return s, s.Seek(0)
	})
	t.closer = s
	t.length = format.SampleRate.D(s.Len())
	return t, nil
}

func named(t *Track, name string) *Track {
	t.Name = name
	return t
}

func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(phase)
			samples[i] = [2]float64{v, v}
			phase += step
		}
		return len(samples), true
	})
}

// Length returns the duration of the track, or 0 if it is not known.
func (t *Track) Length() time.Duration {
	return t.length
}

// Start rewinds the track to its beginning.
func (t *Track) Start() {
	t.Pulled = 0
	t.done = false
	s, err := t.open()
	if errors.Log(err) != nil {
		t.stream = nil
		t.done = true
		return
	}
	t.stream = s
}

// Advance pulls the samples for the given elapsed time. The track is
// done when its streamer is drained.
func (t *Track) Advance(d time.Duration) {
	if t.done || t.stream == nil {
		return
	}
	n := t.Format.SampleRate.N(d)
	for n > 0 {
		if cap(t.buf) < n {
			t.buf = make([][2]float64, n)
		}
		buf := t.buf[:n]
		got, ok := t.stream.Stream(buf)
		if got > 0 {
			t.Pulled += got
			if t.Sink != nil {
				t.Sink(buf[:got])
			}
		}
		if !ok || got == 0 {
			errors.Log(t.stream.Err())
			t.done = true
			return
		}
		n -= got
	}
}

// Done returns whether the track has played to its end.
func (t *Track) Done() bool {
	return t.done
}

// Close releases the file behind the track, if any.
func (t *Track) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
