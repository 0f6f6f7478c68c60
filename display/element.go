// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"image"

	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
)

// Canvas is the drawing surface display elements paint on. Coordinates
// have their origin at the center of the surface, with y growing
// downward.
type Canvas interface {

	// Size returns the size of the surface in pixels.
	Size() image.Point

	// Fill fills the whole surface.
	Fill(c colors.Color)

	// FillPolygon fills the closed polygon with the given vertices.
	FillPolygon(pts []math32.Vector2, c colors.Color)

	// StrokeLine draws a line segment of the given width.
	StrokeLine(from, to math32.Vector2, width float32, c colors.Color)

	// DrawImage draws the image centered at the given point.
	DrawImage(img image.Image, center math32.Vector2)

	// DrawText draws a line of text centered at the given point.
	DrawText(text string, center math32.Vector2, c colors.Color)

	// TextSize returns the size of a line of text.
	TextSize(text string) math32.Vector2
}

// Element is one paintable primitive of a display list.
type Element interface {

	// AsBase returns the [ElementBase] of the element.
	AsBase() *ElementBase

	// Paint paints the element on the canvas.
	Paint(c Canvas)

	// Bounds returns the bounding box of the element.
	Bounds() math32.Box2

	// Contains returns whether the point hits the element.
	Contains(pt math32.Vector2) bool
}

// ElementBase holds the state common to all elements. The color
// parameter is shared, not owned: many elements may reference the same
// parameter.
type ElementBase struct {

	// Color is the parameter supplying the color of the element.
	// A nil Color paints black.
	Color *expar.Par

	// Selected is the selection state, for selectable elements.
	Selected bool

	// Selectable marks elements a selection behavior may toggle.
	Selectable bool

	boundsValid bool
	bounds      math32.Box2
}

func (eb *ElementBase) AsBase() *ElementBase {
	return eb
}

// ColorValue returns the current color of the element.
func (eb *ElementBase) ColorValue() colors.Color {
	if eb.Color == nil {
		return colors.Black
	}
	return eb.Color.Color()
}

// Invalidate marks the cached bounds as stale. Elements call it
// when their geometry is changed through their setters; code mutating
// geometry fields directly must call it too.
func (eb *ElementBase) Invalidate() {
	eb.boundsValid = false
}

// BoundsValid returns whether the cached bounds are current.
func (eb *ElementBase) BoundsValid() bool {
	return eb.boundsValid
}

// cachedBounds returns the cached bounds, recomputing them when stale.
func (eb *ElementBase) cachedBounds(compute func() math32.Box2) math32.Box2 {
	if !eb.boundsValid {
		eb.bounds = compute()
		eb.boundsValid = true
	}
	return eb.bounds
}
