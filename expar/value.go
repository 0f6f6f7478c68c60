// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/pxlab/colors"
)

// Value is a parameter value of one of the [Types]. The zero Value is
// unset. Values are coerced between types by the accessor methods,
// which are total: every Value yields a result for every accessor.
//
// Coercion rules:
//   - unset: 0, 0.0, "", [colors.Black], nil, false
//   - an array with one element coerces as that element; a longer array
//     coerces as its first element for scalar accessors, except that
//     [Value.Color] reads a three number array as luminance, x, y and
//     [Value.String] joins the elements with spaces
//   - numbers: [Value.Int] rounds half away from zero; [Value.Color]
//     is a gray with the number as luminance
//   - strings: parsed as numbers (0 on failure) or with [colors.Parse]
//     ([colors.Black] on failure)
//   - colors: numbers are the luminance
type Value struct {
	Type  Types
	Num   float64
	Str   string
	Col   colors.Color
	Elems []Value
}

// IntValue returns an int value.
func IntValue(v int) Value {
	return Value{Type: Int, Num: float64(v)}
}

// DoubleValue returns a double value.
func DoubleValue(v float64) Value {
	return Value{Type: Double, Num: v}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{Type: String, Str: s}
}

// ColorValue returns a color value.
func ColorValue(c colors.Color) Value {
	return Value{Type: Color, Col: c}
}

// BoolValue returns an int value of 1 or 0.
func BoolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// ArrayValue returns an array of the given values.
func ArrayValue(vs ...Value) Value {
	return Value{Type: Array, Elems: vs}
}

// Numbers returns an array of double values.
func Numbers(fs ...float64) Value {
	vs := make([]Value, len(fs))
	for i, f := range fs {
		vs[i] = DoubleValue(f)
	}
	return ArrayValue(vs...)
}

// IsSet returns whether the value has a type.
func (v Value) IsSet() bool {
	return v.Type != Unset
}

// scalar returns the element scalar accessors read from.
func (v Value) scalar() Value {
	for v.Type == Array {
		if len(v.Elems) == 0 {
			return Value{}
		}
		v = v.Elems[0]
	}
	return v
}

// Double returns the value as a float64.
func (v Value) Double() float64 {
	v = v.scalar()
	switch v.Type {
	case Int, Double:
		return v.Num
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	case Color:
		return v.Col.Lum
	}
	return 0
}

// Int returns the value as an int.
func (v Value) Int() int {
	return int(math.Round(v.Double()))
}

// Bool returns whether the value is non-zero.
func (v Value) Bool() bool {
	return v.Int() != 0
}

// String returns the value as a string.
func (v Value) String() string {
	switch v.Type {
	case Int:
		return strconv.Itoa(int(v.Num))
	case Double:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case String:
		return v.Str
	case Color:
		return v.Col.String()
	case Array:
		ss := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			ss[i] = e.String()
		}
		return strings.Join(ss, " ")
	}
	return ""
}

// Color returns the value as a color.
func (v Value) Color() colors.Color {
	if v.Type == Array && len(v.Elems) == 3 {
		return colors.XYY(v.Elems[0].Double(), v.Elems[1].Double(), v.Elems[2].Double())
	}
	v = v.scalar()
	switch v.Type {
	case Color:
		return v.Col
	case Int, Double:
		return colors.Gray(v.Num)
	case String:
		c, _ := colors.Parse(v.Str)
		return c
	}
	return colors.Black
}

// Array returns the elements of an array value, a single element slice
// for a scalar value, and nil for an unset value.
func (v Value) Array() []Value {
	switch v.Type {
	case Array:
		return v.Elems
	case Unset:
		return nil
	}
	return []Value{v}
}

// Len returns the number of elements of [Value.Array].
func (v Value) Len() int {
	return len(v.Array())
}

// As returns the value converted to the given type. Conversion to
// [Array] wraps scalars; conversion to [Unset] returns the value as is.
func (v Value) As(t Types) Value {
	if v.Type == t {
		return v
	}
	switch t {
	case Int:
		return IntValue(v.Int())
	case Double:
		return DoubleValue(v.Double())
	case String:
		return StringValue(v.String())
	case Color:
		return ColorValue(v.Color())
	case Array:
		return ArrayValue(v.Array()...)
	}
	return v
}

// Equal returns whether the two values are the same.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case Int, Double:
		return v.Num == o.Num
	case String:
		return v.Str == o.Str
	case Color:
		return v.Col == o.Col
	case Array:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
	}
	return true
}

// FromAny converts a decoded design value (as produced by TOML, YAML or
// JSON decoders) into a Value: integers, floats, bools, strings,
// slices of those, and [colors.Color].
func FromAny(a any) (Value, bool) {
	switch x := a.(type) {
	case nil:
		return Value{}, true
	case Value:
		return x, true
	case int:
		return IntValue(x), true
	case int64:
		return IntValue(int(x)), true
	case int32:
		return IntValue(int(x)), true
	case uint64:
		return IntValue(int(x)), true
	case float64:
		return DoubleValue(x), true
	case float32:
		return DoubleValue(float64(x)), true
	case bool:
		return BoolValue(x), true
	case string:
		return StringValue(x), true
	case colors.Color:
		return ColorValue(x), true
	case []any:
		vs := make([]Value, len(x))
		for i, e := range x {
			ev, ok := FromAny(e)
			if !ok {
				return Value{}, false
			}
			vs[i] = ev
		}
		return ArrayValue(vs...), true
	case []float64:
		return Numbers(x...), true
	case []int:
		vs := make([]Value, len(x))
		for i, e := range x {
			vs[i] = IntValue(e)
		}
		return ArrayValue(vs...), true
	case []string:
		vs := make([]Value, len(x))
		for i, e := range x {
			vs[i] = StringValue(e)
		}
		return ArrayValue(vs...), true
	}
	return Value{}, false
}
