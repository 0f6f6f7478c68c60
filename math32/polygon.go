// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// PolygonContains returns whether the point is inside the closed
// polygon with the given vertices, using the even-odd rule.
func PolygonContains(points []Vector2, pt Vector2) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	in := false
	j := n - 1
	for i := range n {
		pi, pj := points[i], points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

// RegularPolygon returns the vertices of a regular polygon with n
// vertices on a circle of radius r around center, the first at angle
// degrees.
func RegularPolygon(center Vector2, r float32, n int, degrees float32) []Vector2 {
	pts := make([]Vector2, n)
	for i := range n {
		a := DegToRad(degrees + 360*float32(i)/float32(n))
		pts[i] = center.Add(Vec2(r*Cos(a), r*Sin(a)))
	}
	return pts
}

// Ellipse returns n vertices approximating the ellipse with the given
// center and radii.
func Ellipse(center Vector2, rx, ry float32, n int) []Vector2 {
	pts := make([]Vector2, n)
	for i := range n {
		a := 2 * Pi * float32(i) / float32(n)
		pts[i] = center.Add(Vec2(rx*Cos(a), ry*Sin(a)))
	}
	return pts
}

// Transform returns the points rotated by degrees around the origin
// and then translated by offset.
func Transform(points []Vector2, degrees float32, offset Vector2) []Vector2 {
	out := make([]Vector2, len(points))
	for i, p := range points {
		out[i] = p.Rotate(degrees).Add(offset)
	}
	return out
}
