// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// ToPoint returns the vector rounded to an [image.Point].
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(Round(v.X)), int(Round(v.Y)))
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(s float32) {
	v.X = s
	v.Y = s
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s
// and returns result in a new vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Dot returns the dot product of this vector with other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the cross product of this vector with other,
// which is the z component of the 3D cross product.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// LengthSquared returns the length squared of this vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Rotate returns the vector rotated by the given angle in degrees
// around the origin. With y growing downward positive angles rotate
// clockwise on screen.
func (v Vector2) Rotate(degrees float32) Vector2 {
	rad := DegToRad(degrees)
	c, s := Cos(rad), Sin(rad)
	return Vec2(v.X*c-v.Y*s, v.X*s+v.Y*c)
}

// IsEqual returns if this vector is equal to other.
func (v Vector2) IsEqual(other Vector2) bool {
	return v == other
}
