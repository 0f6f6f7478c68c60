// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package media

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/timing"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ timing.Media = (*Track)(nil)

const period = time.Second / 60

// ticks advances the track one refresh period at a time until it is
// done, returning the number of periods needed.
func ticks(t *Track, max int) int {
	for i := 1; i <= max; i++ {
		t.Advance(period)
		if t.Done() {
			return i
		}
	}
	return -1
}

func TestTone(t *testing.T) {
	tr := Tone(440, 100*time.Millisecond, -6)
	assert.Equal(t, 100*time.Millisecond, tr.Length())
	peak := 0.0
	tr.Sink = func(s [][2]float64) {
		for _, v := range s {
			peak = max(peak, v[0])
		}
	}
	tr.Start()
	assert.False(t, tr.Done())
	n := ticks(tr, 100)
	// 100 ms is six refresh periods; the end is seen on the seventh pull
	assert.Equal(t, 7, n)
	assert.Equal(t, DefaultSampleRate.N(100*time.Millisecond), tr.Pulled)
	assert.InDelta(t, 0.5, peak, 0.01)

	// restartable
	tr.Start()
	assert.False(t, tr.Done())
	assert.Equal(t, 0, tr.Pulled)
	assert.Equal(t, 7, ticks(tr, 100))
}

func TestSilence(t *testing.T) {
	tr := Silence(50 * time.Millisecond)
	tr.Start()
	assert.Equal(t, 4, ticks(tr, 100))
}

func TestWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")
	f, err := os.Create(fn)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(800), format))
	require.NoError(t, f.Close())

	tr, err := OpenWAV(fn, time.Second)
	require.NoError(t, err)
	defer tr.Close()
	assert.Equal(t, 100*time.Millisecond, tr.Length())
	tr.Start()
	assert.Equal(t, 7, ticks(tr, 100))
	assert.Equal(t, 800, tr.Pulled)

	tr.Start()
	assert.Equal(t, 0, tr.Pulled)
	assert.Equal(t, 7, ticks(tr, 100))
}

func TestWAVUnavailable(t *testing.T) {
	tr, err := OpenWAV(filepath.Join(t.TempDir(), "missing.wav"), 50*time.Millisecond)
	assert.True(t, errors.IsUnavailable(err))
	require.NotNil(t, tr)
	tr.Start()
	assert.Equal(t, 4, ticks(tr, 100))
}
