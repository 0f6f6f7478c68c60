// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

// UnavailableError marks a resource (file, device, color data) that could
// not be obtained. Callers substitute a documented fallback and continue;
// see [Unavailable].
type UnavailableError struct {
	// Resource names what was requested, for example a file path.
	Resource string

	// Base is the underlying error.
	Base error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("resource unavailable: %s: %v", e.Resource, e.Base)
}

func (e *UnavailableError) Unwrap() error {
	return e.Base
}

// Unavailable wraps err as an [*UnavailableError] for the given resource,
// logs it as a warning and returns it. It returns nil if err is nil.
func Unavailable(resource string, err error) error {
	if err == nil {
		return nil
	}
	ue := &UnavailableError{Resource: resource, Base: err}
	return Warn(ue)
}

// IsUnavailable returns whether err is or wraps an [*UnavailableError].
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return As(err, &ue)
}
