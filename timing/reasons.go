// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timing

import "strconv"

// StopReasons are the reasons a timing group ended. The numeric value
// is written to the code output parameter of the group.
type StopReasons int32

const (
	// NotStopped is the code of a group that has not ended.
	NotStopped StopReasons = iota

	// Timeout is a clock, refresh tick count or response timeout expiry.
	Timeout

	// KeyResponse is a response key press.
	KeyResponse

	// PointerResponse is a pointer button press.
	PointerResponse

	// MediaEnded is the completion of the media of the group.
	MediaEnded

	// Immediate is the stop of a [NoTimer] group.
	Immediate

	// Forced is an operator forced stop, which bypasses the stop gate.
	Forced

	// Aborted is the stop of the group running when the presentation
	// was aborted.
	Aborted
)

var reasonNames = []string{"NotStopped", "Timeout", "KeyResponse", "PointerResponse", "MediaEnded", "Immediate", "Forced", "Aborted"}

func (r StopReasons) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "StopReasons(" + strconv.Itoa(int(r)) + ")"
}

// IsResponse returns whether the reason is a subject response.
func (r StopReasons) IsResponse() bool {
	return r == KeyResponse || r == PointerResponse
}
