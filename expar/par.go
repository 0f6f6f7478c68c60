// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import (
	"fmt"

	"cogentcore.org/pxlab/base/errors"
	"cogentcore.org/pxlab/colors"
)

// ErrDerivedWrite is returned when a derived parameter is written
// by anything other than its owner.
var ErrDerivedWrite = errors.New("expar: derived parameter written by non-owner")

// Owner identifies the single writer of a set of derived parameters,
// typically one display.
type Owner struct {
	Name string
}

// Par is one named, typed parameter cell. Parameters are created
// within a [Context] and live until they are removed from it.
type Par struct {

	// Name is the dotted name of the parameter, unique in its context,
	// for example "Trial.Arrow.Color".
	Name string

	// Kind is the nature of the value.
	Kind Kinds

	// Type is the type values are coerced to on read.
	Type Types

	// Doc is an optional description.
	Doc string

	value   Value
	initial Value
	expr    string
	owner   *Owner
	ctx     *Context
}

func (p *Par) String() string {
	return p.Name + " = " + p.Get().String()
}

// Context returns the context the parameter belongs to.
func (p *Par) Context() *Context {
	return p.ctx
}

// Owner returns the owner of a derived parameter, or nil.
func (p *Par) Owner() *Owner {
	return p.owner
}

// Expr returns the expression of an [Expression] parameter.
func (p *Par) Expr() string {
	return p.expr
}

// Get returns the current value. For expression parameters the
// expression is evaluated; on failure the error is reported to the
// context and the last good value is returned.
func (p *Par) Get() Value {
	v, err := p.eval()
	if err != nil {
		p.ctx.ReportConfigError(p, err)
	}
	return v
}

// eval returns the current value, evaluating expressions. A failed
// evaluation returns the last good value and leaves it unchanged.
func (p *Par) eval() (Value, error) {
	if p.Kind != Expression || p.ctx == nil {
		return p.value, nil
	}
	v, err := p.ctx.Eval(p.expr)
	if err != nil {
		return p.value, err
	}
	p.value = v.As(p.Type)
	return p.value, nil
}

// Set sets a constant value, coerced to the parameter type. Setting an
// expression parameter turns it into a constant. Derived parameters
// can only be written by their owner with [Par.Assign], and Set returns
// [ErrDerivedWrite] for them.
func (p *Par) Set(v Value) error {
	if p.Kind == Derived && p.owner != nil {
		return fmt.Errorf("%w: %s", ErrDerivedWrite, p.Name)
	}
	if p.Kind == Expression {
		p.Kind = Constant
		p.expr = ""
	}
	p.value = v.As(p.Type)
	return nil
}

// SetExpr makes the parameter an [Expression] parameter with the given
// Go expression. It returns an error for derived parameters.
func (p *Par) SetExpr(expr string) error {
	if p.Kind == Derived {
		return fmt.Errorf("expar: cannot set expression on derived parameter %s", p.Name)
	}
	p.Kind = Expression
	p.expr = expr
	return nil
}

// Assign sets the value on behalf of the given owner. For derived
// parameters owner must be the owner the parameter was created with;
// for other parameters it is the same as [Par.Set].
func (p *Par) Assign(owner *Owner, v Value) error {
	if p.Kind == Derived && p.owner != nil && p.owner != owner {
		return fmt.Errorf("%w: %s", ErrDerivedWrite, p.Name)
	}
	if p.Kind == Derived {
		p.value = v.As(p.Type)
		return nil
	}
	return p.Set(v)
}

// Reset restores the value the parameter was created with.
func (p *Par) Reset() {
	p.value = p.initial
}

// Int returns the value as an int.
func (p *Par) Int() int { return p.Get().Int() }

// Double returns the value as a float64.
func (p *Par) Double() float64 { return p.Get().Double() }

// Float32 returns the value as a float32.
func (p *Par) Float32() float32 { return float32(p.Get().Double()) }

// Bool returns whether the value is non-zero.
func (p *Par) Bool() bool { return p.Get().Bool() }

// Str returns the value as a string.
func (p *Par) Str() string { return p.Get().String() }

// Color returns the value as a color.
func (p *Par) Color() colors.Color { return p.Get().Color() }

// Array returns the value as a slice of values.
func (p *Par) Array() []Value { return p.Get().Array() }
