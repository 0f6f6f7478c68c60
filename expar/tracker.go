// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import (
	"cogentcore.org/pxlab/base/errors"
	"github.com/jinzhu/copier"
)

// copyValues deep copies tracked values; array values share their
// element slices with the parameters.
var copyValues = func(dst, src *[]Value) error {
	return copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
}

// Tracker records the values of a set of parameters and reports whether
// any of them changed since the last check. Displays use it to skip
// rebuilding precomputed data (such as animation frames) when none of
// the parameters it depends on changed.
type Tracker struct {
	pars   []*Par
	last   []Value
	primed bool
}

// NewTracker returns a new [Tracker] for the given parameters.
func NewTracker(pars ...*Par) *Tracker {
	return &Tracker{pars: pars}
}

// Add adds parameters to the tracked set, which forces the next
// [Tracker.Changed] to return true.
func (t *Tracker) Add(pars ...*Par) {
	t.pars = append(t.pars, pars...)
	t.primed = false
}

// Changed returns whether any tracked value differs from the values
// seen at the previous call, and records the current values. The first
// call always returns true.
func (t *Tracker) Changed() bool {
	cur := make([]Value, len(t.pars))
	for i, p := range t.pars {
		cur[i] = p.Get()
	}
	changed := !t.primed || len(cur) != len(t.last)
	if !changed {
		for i := range cur {
			if !cur[i].Equal(t.last[i]) {
				changed = true
				break
			}
		}
	}
	if changed {
		t.last = nil
		// without a copy the next call reports a change again
		t.primed = errors.Log(copyValues(&t.last, &cur)) == nil
	}
	return changed
}

// Reset forgets the recorded values.
func (t *Tracker) Reset() {
	t.last = nil
	t.primed = false
}
