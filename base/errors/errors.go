// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
// It is a drop-in replacement for the standard library package.
package errors

import (
	"errors"
)

// New is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the same as [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is the same as [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// ErrUnsupported is the same as [errors.ErrUnsupported].
var ErrUnsupported = errors.ErrUnsupported
