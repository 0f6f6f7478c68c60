// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromCenter returns a new [Box2] with the given center and size.
func B2FromCenter(center, size Vector2) Box2 {
	half := size.MulScalar(0.5)
	return Box2{center.Sub(half), center.Add(half)}
}

// B2FromPoints returns the bounding box of the given points.
func B2FromPoints(points ...Vector2) Box2 {
	b := B2Empty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExpandByScalar expands this bounding box by the specified scalar
// subtracting from min and adding to max.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min = b.Min.Sub(Vec2(scalar, scalar))
	b.Max = b.Max.Add(Vec2(scalar, scalar))
}

// Center returns the center of the bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// Union returns the union of this box with other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// ToRect returns the box as an [image.Rectangle] relative to the given
// origin, which is where (0, 0) falls in image coordinates.
func (b Box2) ToRect(origin image.Point) image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPoint().Add(origin), Max: b.Max.ToPoint().Add(origin)}
}
