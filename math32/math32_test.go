// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.InDelta(t, 5, v.Length(), 1e-6)
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, image.Pt(3, 4), v.ToPoint())

	r := Vec2(1, 0).Rotate(90)
	assert.InDelta(t, 0, r.X, 1e-6)
	assert.InDelta(t, 1, r.Y, 1e-6)
}

func TestBox2(t *testing.T) {
	b := B2FromCenter(Vec2(0, 0), Vec2(10, 4))
	assert.Equal(t, B2(-5, -2, 5, 2), b)
	assert.True(t, b.ContainsPoint(Vec2(5, 2)))
	assert.False(t, b.ContainsPoint(Vec2(5.5, 0)))
	assert.Equal(t, Vec2(10, 4), b.Size())

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e = B2FromPoints(Vec2(1, 1), Vec2(-1, 3))
	assert.Equal(t, B2(-1, 1, 1, 3), e)
	assert.Equal(t, image.Rect(99, 101, 101, 103), e.ToRect(image.Pt(100, 100)))
}

func TestLine2(t *testing.T) {
	l := NewLine2(Vec2(0, 0), Vec2(10, 0))
	assert.InDelta(t, 3, l.DistToPoint(Vec2(5, 3)), 1e-6)
	assert.InDelta(t, 5, l.DistToPoint(Vec2(13, 4)), 1e-6)
	assert.Equal(t, Vec2(5, 0), l.Center())
}

func TestPolygonContains(t *testing.T) {
	sq := []Vector2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	assert.True(t, PolygonContains(sq, Vec2(0, 0)))
	assert.False(t, PolygonContains(sq, Vec2(2, 0)))
	assert.False(t, PolygonContains(sq[:2], Vec2(0, 0)))

	tri := RegularPolygon(Vec2(0, 0), 10, 3, -90)
	assert.True(t, PolygonContains(tri, Vec2(0, 0)))
	assert.False(t, PolygonContains(tri, Vec2(0, 9)))
	assert.Len(t, Ellipse(Vec2(0, 0), 2, 1, 32), 32)
}
