// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides a software rendering surface for displays,
// drawing into an [image.RGBA] with anti-aliased polygon filling.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/pxlab/base/iox/imagex"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Image is a screen backed by an in-memory RGBA image. Coordinates
// passed to its drawing methods have their origin at the center of
// the image, with y growing downward.
type Image struct {

	// OnPresent, if set, is called with the finished frame each time
	// it is presented. The image is reused for the next frame.
	OnPresent func(img *image.RGBA) error

	// Presents is the number of frames presented so far.
	Presents int

	image  *image.RGBA
	origin image.Point
	ras    *vector.Rasterizer
	face   font.Face
}

// NewImage returns a new surface of the given size in pixels.
func NewImage(size image.Point) *Image {
	im := &Image{}
	im.SetSize(size)
	im.ras = &vector.Rasterizer{}
	im.face = basicfont.Face7x13
	return im
}

// SetSize resizes the surface, discarding its content.
func (im *Image) SetSize(size image.Point) {
	if im.image != nil && im.image.Rect.Size() == size {
		return
	}
	im.image = image.NewRGBA(image.Rectangle{Max: size})
	im.origin = size.Div(2)
}

// Image returns the underlying image.
func (im *Image) Image() *image.RGBA { return im.image }

// Size returns the size of the surface in pixels.
func (im *Image) Size() image.Point { return im.image.Rect.Size() }

// ToImage converts display coordinates to image coordinates.
func (im *Image) ToImage(v math32.Vector2) math32.Vector2 {
	return v.Add(math32.FromPoint(im.origin))
}

// Fill fills the whole surface.
func (im *Image) Fill(c colors.Color) {
	draw.Draw(im.image, im.image.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillPolygon fills the closed polygon with the given vertices.
func (im *Image) FillPolygon(pts []math32.Vector2, c colors.Color) {
	if len(pts) < 3 {
		return
	}
	sz := im.Size()
	im.ras.Reset(sz.X, sz.Y)
	for i, p := range pts {
		p = im.ToImage(p)
		if i == 0 {
			im.ras.MoveTo(p.X, p.Y)
		} else {
			im.ras.LineTo(p.X, p.Y)
		}
	}
	im.ras.ClosePath()
	im.ras.Draw(im.image, im.image.Rect, image.NewUniform(c), image.Point{})
}

// StrokeLine draws a line segment of the given width, as a filled
// quadrilateral around the segment.
func (im *Image) StrokeLine(from, to math32.Vector2, width float32, c colors.Color) {
	d := to.Sub(from)
	ln := d.Length()
	if ln == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	n := math32.Vec2(-d.Y, d.X).MulScalar(width / (2 * ln))
	im.FillPolygon([]math32.Vector2{from.Add(n), to.Add(n), to.Sub(n), from.Sub(n)}, c)
}

// DrawImage draws the image centered at the given point.
func (im *Image) DrawImage(img image.Image, center math32.Vector2) {
	b := img.Bounds()
	tl := im.ToImage(center).ToPoint().Sub(b.Size().Div(2))
	dr := image.Rectangle{Min: tl, Max: tl.Add(b.Size())}
	draw.Draw(im.image, dr, img, b.Min, draw.Over)
}

// DrawText draws a line of text centered at the given point.
func (im *Image) DrawText(text string, center math32.Vector2, c colors.Color) {
	sz := im.TextSize(text)
	tl := im.ToImage(center).Sub(sz.MulScalar(0.5))
	asc := im.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  im.image,
		Src:  image.NewUniform(c),
		Face: im.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math32.Round(tl.X))), Y: fixed.I(int(math32.Round(tl.Y))) + asc},
	}
	d.DrawString(text)
}

// TextSize returns the size of a line of text.
func (im *Image) TextSize(text string) math32.Vector2 {
	w := font.MeasureString(im.face, text)
	h := im.face.Metrics().Height
	return math32.Vec2(float32(w.Ceil()), float32(h.Ceil()))
}

// At returns the color at the given display coordinates.
func (im *Image) At(pt math32.Vector2) color.RGBA {
	p := im.ToImage(pt).ToPoint()
	return im.image.RGBAAt(p.X, p.Y)
}

// Present finishes the current frame.
func (im *Image) Present() error {
	im.Presents++
	if im.OnPresent != nil {
		return im.OnPresent(im.image)
	}
	return nil
}

// Save saves the current frame to the given file, with the format
// taken from the file extension.
func (im *Image) Save(filename string) error {
	return imagex.Save(im.image, filename)
}
