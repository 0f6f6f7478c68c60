// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 creates and returns a new Line2 with the
// specified start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Center calculates this line center point.
func (l Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this line.
func (l Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// Length returns the length from start to end point of this line.
func (l Line2) Length() float32 {
	return l.Delta().Length()
}

// ClosestPointToPoint returns the point on the segment closest to point.
func (l Line2) ClosestPointToPoint(point Vector2) Vector2 {
	d := l.Delta()
	dd := d.LengthSquared()
	if dd == 0 {
		return l.Start
	}
	t := point.Sub(l.Start).Dot(d) / dd
	t = Max(0, Min(1, t))
	return l.Start.Add(d.MulScalar(t))
}

// DistToPoint returns the distance from point to the segment.
func (l Line2) DistToPoint(point Vector2) float32 {
	return point.Sub(l.ClosestPointToPoint(point)).Length()
}
