// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides colors specified in the CIE 1931 xyY color space,
// which is how stimulus colors are defined for psychophysics, together with
// conversions to and from device (sRGB) colors.
package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// WhiteLuminance is the luminance in cd/m² of the device white point.
// Device colors are obtained by scaling luminance relative to this value.
var WhiteLuminance = 100.0

// Chromaticity coordinates of the D65 white point.
const (
	D65X = 0.3127
	D65Y = 0.3290
)

// Color is a color in the CIE 1931 xyY color space. It implements
// [color.Color] by converting to the device sRGB gamut, clamping
// colors that are out of gamut.
type Color struct {

	// Lum is the luminance Y in cd/m².
	Lum float64

	// X is the chromaticity coordinate x.
	X float64

	// Y is the chromaticity coordinate y.
	Y float64
}

var (
	// Black is the zero luminance color.
	Black = Color{0, D65X, D65Y}

	// White is the device white.
	White = Gray(WhiteLuminance)
)

// Gray returns an achromatic color with the given luminance.
func Gray(lum float64) Color {
	return Color{lum, D65X, D65Y}
}

// XYY returns the color with the given luminance and chromaticity.
func XYY(lum, x, y float64) Color {
	return Color{lum, x, y}
}

// FromColorful converts a [colorful.Color] in device space.
func FromColorful(c colorful.Color) Color {
	x, y, lum := c.Xyy()
	return Color{lum * WhiteLuminance, x, y}
}

// FromRGB returns the color for the given sRGB components in [0, 1].
func FromRGB(r, g, b float64) Color {
	return FromColorful(colorful.Color{R: r, G: g, B: b})
}

// FromLab returns the color for the given CIE L*a*b* coordinates,
// relative to the D65 device white.
func FromLab(l, a, b float64) Color {
	return FromColorful(colorful.Lab(l, a, b))
}

// FromHSV returns the color for the given hue in degrees, saturation
// and value in [0, 1].
func FromHSV(h, s, v float64) Color {
	return FromColorful(colorful.Hsv(h, s, v))
}

// FromColor converts any [color.Color].
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	cf, _ := colorful.MakeColor(c)
	return FromColorful(cf)
}

// Colorful returns the device space [colorful.Color], which
// may be out of gamut.
func (c Color) Colorful() colorful.Color {
	if c.Lum <= 0 || c.Y <= 0 {
		return colorful.Color{}
	}
	return colorful.Xyy(c.X, c.Y, c.Lum/WhiteLuminance)
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Colorful().Clamped().RGBA()
}

// InGamut returns whether the color can be shown on the device
// without clamping.
func (c Color) InGamut() bool {
	return c.Colorful().IsValid()
}

// Lab returns the CIE L*a*b* coordinates of the color.
func (c Color) Lab() (l, a, b float64) {
	return c.Colorful().Lab()
}

// WithLum returns the color with the same chromaticity and the given luminance.
func (c Color) WithLum(lum float64) Color {
	c.Lum = lum
	return c
}

// Mix returns the color at t in [0, 1] between a and b, interpolated
// in the perceptually uniform L*a*b* space.
func Mix(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
}

// Hex returns the device color as a hex string like "#ff8000".
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// String returns the color as "Y x y", which [Parse] accepts.
func (c Color) String() string {
	return fmt.Sprintf("%.6g %.6g %.6g", c.Lum, c.X, c.Y)
}

// Equal returns whether the two colors are the same within a
// small tolerance.
func (c Color) Equal(o Color) bool {
	const tol = 1e-9
	return abs(c.Lum-o.Lum) < tol && abs(c.X-o.X) < tol && abs(c.Y-o.Y) < tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
