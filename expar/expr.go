// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import (
	"fmt"
	"reflect"

	"github.com/cogentcore/yaegi/interp"
	"github.com/cogentcore/yaegi/stdlib"
)

// maxEvalDepth bounds nested expression evaluation, which catches
// parameters whose expressions reference each other in a cycle.
const maxEvalDepth = 8

// Eval evaluates the given Go expression in the context. Expressions
// read other parameters with Num("Name"), Int("Name") and Str("Name"),
// and may use the math package, for example
//
//	math.Sqrt(Num("Trial.Arrow.Size")) * 2
func (c *Context) Eval(expr string) (Value, error) {
	if c.evalDepth >= maxEvalDepth {
		return Value{}, fmt.Errorf("expar.Eval: expression nesting deeper than %d, probably a cycle: %s", maxEvalDepth, expr)
	}
	in, err := c.interpreter(c.evalDepth)
	if err != nil {
		return Value{}, err
	}
	outer := c.evalErr
	c.evalErr = nil
	c.evalDepth++
	defer func() {
		c.evalDepth--
		c.evalErr = outer
	}()
	rv, err := in.Eval(expr)
	if err != nil {
		return Value{}, fmt.Errorf("expar.Eval: %q: %w", expr, err)
	}
	// a failed parameter lookup fails the whole expression
	if c.evalErr != nil {
		return Value{}, fmt.Errorf("expar.Eval: %q: %w", expr, c.evalErr)
	}
	return valueOf(rv)
}

// interpreter returns the interpreter for the given nesting depth,
// creating it on first use. Each depth has its own interpreter so that
// an expression referencing another expression parameter never
// re-enters a running interpreter.
func (c *Context) interpreter(depth int) (*interp.Interpreter, error) {
	if depth < len(c.interps) {
		return c.interps[depth], nil
	}
	in := interp.New(interp.Options{})
	if err := in.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	err := in.Use(interp.Exports{
		"cogentcore.org/pxlab/expar/expar": map[string]reflect.Value{
			"Num": reflect.ValueOf(c.num),
			"Int": reflect.ValueOf(c.integer),
			"Str": reflect.ValueOf(c.str),
		},
	})
	if err != nil {
		return nil, err
	}
	setup := []string{
		`import "math"`,
		`import "cogentcore.org/pxlab/expar"`,
		`var Num = expar.Num`,
		`var Int = expar.Int`,
		`var Str = expar.Str`,
	}
	for _, src := range setup {
		if _, err := in.Eval(src); err != nil {
			return nil, fmt.Errorf("expar: setting up interpreter: %w", err)
		}
	}
	c.interps = append(c.interps, in)
	return in, nil
}

// lookupValue returns the value of a parameter read by an expression.
// Errors are recorded for the running [Context.Eval] to return.
func (c *Context) lookupValue(name string) Value {
	p, err := c.Par(name)
	if err == nil {
		var v Value
		if v, err = p.eval(); err == nil {
			return v
		}
	}
	if c.evalErr == nil {
		c.evalErr = err
	}
	return Value{}
}

func (c *Context) num(name string) float64 { return c.lookupValue(name).Double() }

func (c *Context) integer(name string) int { return c.lookupValue(name).Int() }

func (c *Context) str(name string) string { return c.lookupValue(name).String() }

// valueOf converts an interpreter result to a [Value].
func valueOf(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Value{}, fmt.Errorf("expar.Eval: expression has no value")
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntValue(int(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return DoubleValue(rv.Float()), nil
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return Value{}, nil
		}
		return valueOf(rv.Elem())
	}
	if v, ok := FromAny(rv.Interface()); ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("expar.Eval: unsupported result type %s", rv.Type())
}
