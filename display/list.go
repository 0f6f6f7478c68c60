// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"iter"
	"slices"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/timing"
)

// ErrStaleHandle is returned when resolving a [Handle] whose element
// was removed by a truncate.
var ErrStaleHandle = errors.New("display: stale element handle")

// IndexError is the panic value of [List.At] for an index beyond the
// list, which indicates a rebuild bug in the owning display.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("display: element index %d out of range [0:%d]", e.Index, e.Len)
}

// Handle refers to a list slot and detects use after the slot was
// removed, unlike a raw index.
type Handle struct {
	index int
	gen   uint64
}

// Index returns the index the handle refers to.
func (h Handle) Index() int {
	return h.index
}

type slot struct {
	el   Element
	mask Mask
	gen  uint64
}

// List is the display list of a display: a dense ordered sequence of
// elements, each visible in a set of timing groups, together with the
// timing elements of the groups. List order is paint order.
type List struct {
	slots   []slot
	timings []*timing.Element

	// gen increases on every truncate, so slots appended after a
	// truncate never match handles made before it.
	gen uint64

	// Rebuilds counts the truncate and rebuild cycles of [List.Ensure].
	Rebuilds int
}

// Len returns the number of elements.
func (ls *List) Len() int {
	return len(ls.slots)
}

// Append adds an element visible in the given groups and returns
// its index.
func (ls *List) Append(el Element, mask Mask) int {
	ls.slots = append(ls.slots, slot{el: el, mask: mask, gen: ls.gen})
	return len(ls.slots) - 1
}

// TruncateFrom removes the elements from index i to the end. Handles to
// removed elements become stale.
func (ls *List) TruncateFrom(i int) {
	if i < 0 || i > len(ls.slots) {
		panic(&IndexError{Index: i, Len: len(ls.slots)})
	}
	if i == len(ls.slots) {
		return
	}
	clear(ls.slots[i:])
	ls.slots = ls.slots[:i]
	ls.gen++
}

// At returns the element at index i. It panics with an [IndexError]
// if i is out of range.
func (ls *List) At(i int) Element {
	if i < 0 || i >= len(ls.slots) {
		panic(&IndexError{Index: i, Len: len(ls.slots)})
	}
	return ls.slots[i].el
}

// Lookup returns the element at index i, or an [IndexError].
func (ls *List) Lookup(i int) (Element, error) {
	if i < 0 || i >= len(ls.slots) {
		return nil, &IndexError{Index: i, Len: len(ls.slots)}
	}
	return ls.slots[i].el, nil
}

// Mask returns the group mask of the element at index i.
func (ls *List) Mask(i int) Mask {
	if i < 0 || i >= len(ls.slots) {
		panic(&IndexError{Index: i, Len: len(ls.slots)})
	}
	return ls.slots[i].mask
}

// SetMask sets the group mask of the element at index i.
func (ls *List) SetMask(i int, m Mask) {
	if i < 0 || i >= len(ls.slots) {
		panic(&IndexError{Index: i, Len: len(ls.slots)})
	}
	ls.slots[i].mask = m
}

// Masks returns the group masks of all elements in order.
func (ls *List) Masks() []Mask {
	ms := make([]Mask, len(ls.slots))
	for i, s := range ls.slots {
		ms[i] = s.mask
	}
	return ms
}

// ElementsIn iterates in list order over the elements visible in any
// of the groups of the mask.
func (ls *List) ElementsIn(m Mask) iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, s := range ls.slots {
			if s.mask.Intersects(m) && !yield(i, s.el) {
				return
			}
		}
	}
}

// All iterates over all elements in list order.
func (ls *List) All() iter.Seq2[int, Element] {
	return ls.ElementsIn(AllGroups)
}

// Handle returns a handle to the element at index i.
func (ls *List) Handle(i int) Handle {
	if i < 0 || i >= len(ls.slots) {
		panic(&IndexError{Index: i, Len: len(ls.slots)})
	}
	return Handle{index: i, gen: ls.slots[i].gen}
}

// Resolve returns the element a handle refers to, or [ErrStaleHandle]
// if that element was removed.
func (ls *List) Resolve(h Handle) (Element, error) {
	if h.index < 0 || h.index >= len(ls.slots) || ls.slots[h.index].gen != h.gen {
		return nil, fmt.Errorf("%w: index %d", ErrStaleHandle, h.index)
	}
	return ls.slots[h.index].el, nil
}

// Ensure makes the list hold exactly n elements from index first on,
// the common case of a display whose number of parts is given by a
// parameter. If the list already has n elements past first nothing
// happens; otherwise the list is truncated at first and build is
// called for each of the n new elements in order. It returns whether
// the list was rebuilt.
func (ls *List) Ensure(first, n int, build func(i int) (Element, Mask)) bool {
	if len(ls.slots)-first == n {
		return false
	}
	ls.TruncateFrom(first)
	for i := range n {
		ls.Append(build(i))
	}
	ls.Rebuilds++
	return true
}

// Orphans returns the indexes of the elements not visible in any of
// the groups of the mask.
func (ls *List) Orphans(all Mask) []int {
	var is []int
	for i, s := range ls.slots {
		if !s.mask.Intersects(all) {
			is = append(is, i)
		}
	}
	return is
}

// SetTiming adds a timing element, replacing any existing element for
// the same group.
func (ls *List) SetTiming(te *timing.Element) error {
	if te.Group < 0 || te.Group >= MaxGroups {
		return fmt.Errorf("display: timing group %d out of range [0:%d]", te.Group, MaxGroups)
	}
	if i := ls.timingIndex(te.Group); i >= 0 {
		ls.timings[i] = te
		return nil
	}
	ls.timings = append(ls.timings, te)
	slices.SortFunc(ls.timings, func(a, b *timing.Element) int { return a.Group - b.Group })
	return nil
}

// Timing returns the timing element of group g, or nil.
func (ls *List) Timing(g int) *timing.Element {
	if i := ls.timingIndex(g); i >= 0 {
		return ls.timings[i]
	}
	return nil
}

// RemoveTimingsFrom removes the timing elements of groups g and above,
// for displays whose number of groups is given by a parameter.
func (ls *List) RemoveTimingsFrom(g int) {
	ls.timings = slices.DeleteFunc(ls.timings, func(te *timing.Element) bool { return te.Group >= g })
}

// Timings returns the timing elements in ascending group order.
func (ls *List) Timings() []*timing.Element {
	return slices.Clone(ls.timings)
}

// TimingMask returns the mask of all groups with a timing element.
func (ls *List) TimingMask() Mask {
	var m Mask
	for _, te := range ls.timings {
		m |= Groups(te.Group)
	}
	return m
}

func (ls *List) timingIndex(g int) int {
	return slices.IndexFunc(ls.timings, func(te *timing.Element) bool { return te.Group == g })
}
