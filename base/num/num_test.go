// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 15))
	assert.Equal(t, 15, Clamp(20, 0, 15))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 1, Mod(17, 16))
	assert.Equal(t, 15, Mod(-1, 16))
	assert.Equal(t, 0, Mod(-16, 16))
}
