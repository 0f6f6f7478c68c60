// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import "strconv"

// Kinds are the natures a parameter value can have.
type Kinds int32

const (
	// Constant is a literal value, set by the design or by code.
	Constant Kinds = iota

	// Expression is a value computed on every read from a Go
	// expression, which may reference other parameters.
	Expression

	// Derived is a value written by the owning display during its
	// recompute passes and input handlers only.
	Derived
)

var kindNames = []string{"constant", "expression", "derived"}

func (k Kinds) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kinds(" + strconv.Itoa(int(k)) + ")"
}

// Types are the value types of parameters and values.
type Types int32

const (
	// Unset is the type of the zero [Value].
	Unset Types = iota
	Int
	Double
	Color
	String
	Array
)

var typeNames = []string{"unset", "int", "double", "color", "string", "array"}

func (t Types) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Types(" + strconv.Itoa(int(t)) + ")"
}
