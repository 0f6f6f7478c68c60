// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// named are the sRGB components of the named colors.
var named = map[string][3]float64{
	"black":   {0, 0, 0},
	"white":   {1, 1, 1},
	"gray":    {0.5, 0.5, 0.5},
	"grey":    {0.5, 0.5, 0.5},
	"red":     {1, 0, 0},
	"green":   {0, 1, 0},
	"blue":    {0, 0, 1},
	"yellow":  {1, 1, 0},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
	"orange":  {1, 0.5, 0},
}

// Lookup returns the named color, or an error if the name is unknown.
func Lookup(name string) (Color, error) {
	rgb, ok := named[strings.ToLower(name)]
	if !ok {
		return Black, fmt.Errorf("colors.Lookup: unknown color name %q", name)
	}
	return FromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// Parse parses a color given as a name ("red"), a hex device color
// ("#ff0000"), a single luminance ("20" for a gray of 20 cd/m²) or a
// luminance and chromaticity triple ("20 0.31 0.33", commas allowed).
// It returns [Black] and an error for anything else.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Black, fmt.Errorf("colors.Parse: empty color")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Black, fmt.Errorf("colors.Parse: %q: %w", s, err)
		}
		return FromColorful(c), nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			if len(fields) == 1 {
				return Lookup(s)
			}
			return Black, fmt.Errorf("colors.Parse: %q: %w", s, err)
		}
		nums = append(nums, v)
	}
	switch len(nums) {
	case 1:
		return Gray(nums[0]), nil
	case 3:
		return XYY(nums[0], nums[1], nums[2]), nil
	}
	return Black, fmt.Errorf("colors.Parse: %q: need 1 or 3 numbers, got %d", s, len(nums))
}
