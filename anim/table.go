// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/pxlab/expar"
)

// Table is a table of precomputed animation frames, rebuilt only when
// one of the parameters it depends on changed or its length changes.
type Table[T any] struct {

	// Frames are the precomputed frames.
	Frames []T

	// Rebuilds counts the rebuilds of the table.
	Rebuilds int

	tracker *expar.Tracker
}

// NewTable returns a new table depending on the given parameters.
func NewTable[T any](deps ...*expar.Par) *Table[T] {
	return &Table[T]{tracker: expar.NewTracker(deps...)}
}

// Update makes the table hold n frames, calling build for every frame
// if the dependencies changed since the last update or n differs from
// the current length. It returns whether the table was rebuilt.
func (t *Table[T]) Update(n int, build func(i int) T) bool {
	changed := t.tracker.Changed()
	if !changed && len(t.Frames) == n {
		return false
	}
	t.Frames = make([]T, n)
	for i := range n {
		t.Frames[i] = build(i)
	}
	t.Rebuilds++
	return true
}

// Len returns the number of frames.
func (t *Table[T]) Len() int {
	return len(t.Frames)
}

// Frame returns frame i, or false if i is beyond the table.
func (t *Table[T]) Frame(i int) (T, bool) {
	if i < 0 || i >= len(t.Frames) {
		var zero T
		return zero, false
	}
	return t.Frames[i], true
}
