// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration
// structs.
package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// NonPointerValue returns the value after following any pointers.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the fields of the struct pointed to by obj
// from their `default:` struct tags, recursing into struct fields.
// Fields without a default tag are left as they are. All fields that
// could not be set are reported in the returned error.
func SetFromDefaultTags(obj any) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct || !v.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a pointer to a struct, got %T", obj)
	}
	return setDefaults(v)
}

func setDefaults(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setDefaults(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s.%s: %w", typ.Name(), f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets a settable value of a basic kind from its string
// representation. Durations use [time.ParseDuration].
func SetString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("cannot set %v from a string", v.Type())
	}
	return nil
}
