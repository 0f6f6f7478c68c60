// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image"

	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"github.com/anthonynsimon/bild/transform"
)

// ovalVertices is the number of vertices approximating an oval.
const ovalVertices = 96

// Rect is an axis aligned rectangle. A FullScreen rectangle covers
// the whole canvas, as used for display backgrounds.
type Rect struct {
	ElementBase
	Center     math32.Vector2
	Size       math32.Vector2
	FullScreen bool
}

// NewRect returns a new [Rect].
func NewRect(color *expar.Par, center, size math32.Vector2) *Rect {
	r := &Rect{Center: center, Size: size}
	r.Color = color
	return r
}

// NewBackground returns a new full screen [Rect].
func NewBackground(color *expar.Par) *Rect {
	r := &Rect{FullScreen: true}
	r.Color = color
	return r
}

// SetRect sets the center and size.
func (r *Rect) SetRect(center, size math32.Vector2) {
	r.Center, r.Size = center, size
	r.Invalidate()
}

func (r *Rect) Bounds() math32.Box2 {
	return r.cachedBounds(func() math32.Box2 {
		if r.FullScreen {
			return math32.B2(-math32.Infinity, -math32.Infinity, math32.Infinity, math32.Infinity)
		}
		return math32.B2FromCenter(r.Center, r.Size)
	})
}

func (r *Rect) Contains(pt math32.Vector2) bool {
	return r.Bounds().ContainsPoint(pt)
}

func (r *Rect) Paint(c Canvas) {
	if r.FullScreen {
		c.Fill(r.ColorValue())
		return
	}
	b := r.Bounds()
	c.FillPolygon([]math32.Vector2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}, r.ColorValue())
}

// Oval is an axis aligned ellipse.
type Oval struct {
	ElementBase
	Center math32.Vector2
	Size   math32.Vector2
}

// NewOval returns a new [Oval].
func NewOval(color *expar.Par, center, size math32.Vector2) *Oval {
	o := &Oval{Center: center, Size: size}
	o.Color = color
	return o
}

// SetOval sets the center and size.
func (o *Oval) SetOval(center, size math32.Vector2) {
	o.Center, o.Size = center, size
	o.Invalidate()
}

func (o *Oval) Bounds() math32.Box2 {
	return o.cachedBounds(func() math32.Box2 {
		return math32.B2FromCenter(o.Center, o.Size)
	})
}

func (o *Oval) Contains(pt math32.Vector2) bool {
	rx, ry := o.Size.X/2, o.Size.Y/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	d := pt.Sub(o.Center)
	return (d.X*d.X)/(rx*rx)+(d.Y*d.Y)/(ry*ry) <= 1
}

func (o *Oval) Paint(c Canvas) {
	c.FillPolygon(math32.Ellipse(o.Center, o.Size.X/2, o.Size.Y/2, ovalVertices), o.ColorValue())
}

// Polygon is a filled closed polygon in display coordinates.
type Polygon struct {
	ElementBase
	Points []math32.Vector2
}

// NewPolygon returns a new [Polygon].
func NewPolygon(color *expar.Par, pts ...math32.Vector2) *Polygon {
	p := &Polygon{Points: pts}
	p.Color = color
	return p
}

// SetPoints sets the vertices.
func (p *Polygon) SetPoints(pts []math32.Vector2) {
	p.Points = pts
	p.Invalidate()
}

func (p *Polygon) Bounds() math32.Box2 {
	return p.cachedBounds(func() math32.Box2 {
		return math32.B2FromPoints(p.Points...)
	})
}

func (p *Polygon) Contains(pt math32.Vector2) bool {
	return p.Bounds().ContainsPoint(pt) && math32.PolygonContains(p.Points, pt)
}

func (p *Polygon) Paint(c Canvas) {
	c.FillPolygon(p.Points, p.ColorValue())
}

// Line is a line segment with a width.
type Line struct {
	ElementBase
	From  math32.Vector2
	To    math32.Vector2
	Width float32
}

// NewLine returns a new [Line].
func NewLine(color *expar.Par, from, to math32.Vector2, width float32) *Line {
	l := &Line{From: from, To: to, Width: width}
	l.Color = color
	return l
}

// SetLine sets the end points.
func (l *Line) SetLine(from, to math32.Vector2) {
	l.From, l.To = from, to
	l.Invalidate()
}

func (l *Line) Bounds() math32.Box2 {
	return l.cachedBounds(func() math32.Box2 {
		b := math32.B2FromPoints(l.From, l.To)
		b.ExpandByScalar(l.Width / 2)
		return b
	})
}

func (l *Line) Contains(pt math32.Vector2) bool {
	return math32.NewLine2(l.From, l.To).DistToPoint(pt) <= math32.Max(l.Width/2, 1)
}

func (l *Line) Paint(c Canvas) {
	c.StrokeLine(l.From, l.To, l.Width, l.ColorValue())
}

// Text is a single line of text centered at a point.
type Text struct {
	ElementBase
	Text   string
	Center math32.Vector2

	size math32.Vector2
}

// NewText returns a new [Text].
func NewText(color *expar.Par, text string, center math32.Vector2) *Text {
	t := &Text{Text: text, Center: center}
	t.Color = color
	return t
}

// SetText sets the text and its center.
func (t *Text) SetText(text string, center math32.Vector2) {
	t.Text, t.Center = text, center
	t.Invalidate()
}

// Bounds returns the bounds measured at the last paint; before the
// first paint the box is empty around the center.
func (t *Text) Bounds() math32.Box2 {
	return t.cachedBounds(func() math32.Box2 {
		return math32.B2FromCenter(t.Center, t.size)
	})
}

func (t *Text) Contains(pt math32.Vector2) bool {
	return t.Bounds().ContainsPoint(pt)
}

func (t *Text) Paint(c Canvas) {
	if sz := c.TextSize(t.Text); sz != t.size {
		t.size = sz
		t.Invalidate()
	}
	c.DrawText(t.Text, t.Center, t.ColorValue())
}

// Bitmap is an image centered at a point, optionally rotated.
// The rotated image is cached until the image or the angle change.
type Bitmap struct {
	ElementBase
	Image  image.Image
	Center math32.Vector2

	// Angle is the clockwise rotation in degrees.
	Angle float64

	rotated    image.Image
	rotatedFor image.Image
	rotatedAt  float64
}

// NewBitmap returns a new [Bitmap]. The color parameter is not used
// for painting and may be nil.
func NewBitmap(img image.Image, center math32.Vector2) *Bitmap {
	return &Bitmap{Image: img, Center: center}
}

// SetImage sets the image, for example to the next animation frame.
func (b *Bitmap) SetImage(img image.Image) {
	b.Image = img
	b.Invalidate()
}

// SetAngle sets the rotation.
func (b *Bitmap) SetAngle(degrees float64) {
	b.Angle = degrees
	b.Invalidate()
}

// Rendered returns the image as painted, rotated as needed.
func (b *Bitmap) Rendered() image.Image {
	if b.Image == nil {
		return nil
	}
	if b.Angle == 0 {
		return b.Image
	}
	if b.rotated == nil || b.rotatedFor != b.Image || b.rotatedAt != b.Angle {
		b.rotated = transform.Rotate(b.Image, b.Angle, &transform.RotationOptions{ResizeBounds: true})
		b.rotatedFor = b.Image
		b.rotatedAt = b.Angle
	}
	return b.rotated
}

func (b *Bitmap) Bounds() math32.Box2 {
	return b.cachedBounds(func() math32.Box2 {
		img := b.Rendered()
		if img == nil {
			return math32.B2FromCenter(b.Center, math32.Vector2{})
		}
		sz := img.Bounds().Size()
		return math32.B2FromCenter(b.Center, math32.FromPoint(sz))
	})
}

func (b *Bitmap) Contains(pt math32.Vector2) bool {
	return b.Image != nil && b.Bounds().ContainsPoint(pt)
}

func (b *Bitmap) Paint(c Canvas) {
	if img := b.Rendered(); img != nil {
		c.DrawImage(img, b.Center)
	}
}
