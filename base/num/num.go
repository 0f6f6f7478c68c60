// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric helpers.
package num

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns v limited to the range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mod returns the Euclidean modulus of a by n, which is always
// in [0, n) for n > 0, also for negative a.
func Mod[T constraints.Integer](a, n T) T {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
