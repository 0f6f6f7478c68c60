// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxGroups is the maximum number of timing groups of a display.
const MaxGroups = 64

// Mask is a set of timing groups, with bit g set for group ordinal g.
type Mask uint64

// AllGroups is the mask with every group set.
const AllGroups = ^Mask(0)

// Groups makes a mask from group ordinals.
func Groups(groups ...int) Mask {
	var m Mask
	for _, g := range groups {
		m |= 1 << uint(g)
	}
	return m
}

// Has returns whether group g is in the mask.
func (m Mask) Has(g int) bool {
	return m&(1<<uint(g)) != 0
}

// Intersects returns whether the masks have any group in common.
func (m Mask) Intersects(o Mask) bool {
	return m&o != 0
}

// With returns the mask with groups added.
func (m Mask) With(groups ...int) Mask {
	return m | Groups(groups...)
}

// Without returns the mask with groups removed.
func (m Mask) Without(groups ...int) Mask {
	return m &^ Groups(groups...)
}

// Count returns the number of groups in the mask.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// String returns the group ordinals, for example "{0,2}".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for g := range MaxGroups {
		if !m.Has(g) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(g))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
