// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/pxlab/events/key"
	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())
	for _, c := range []key.Codes{key.CodeA, key.CodeB, key.CodeC} {
		q.Send(NewKey(KeyDown, c))
	}
	assert.Equal(t, uint64(3), q.Len())

	var got []key.Codes
	for ev := range q.Drain() {
		got = append(got, ev.(*Key).Code)
	}
	assert.Equal(t, []key.Codes{key.CodeA, key.CodeB, key.CodeC}, got)
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	q.Init()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Send(NewMouse(MouseDown, Left, image.Pt(1, 2)))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(800), q.Len())
	n := 0
	for range q.Drain() {
		n++
	}
	assert.Equal(t, 800, n)
}

func TestQueueClear(t *testing.T) {
	var q Queue
	q.Init()
	q.Send(NewKey(KeyDown, key.CodeA))
	q.Send(NewKey(KeyUp, key.CodeA))
	q.Clear()
	assert.Equal(t, uint64(0), q.Len())
	assert.Nil(t, q.NextEvent())
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(KeyDown, func(ev Event) { calls = append(calls, "first") })
	ls.Add(KeyDown, func(ev Event) {
		calls = append(calls, "second")
		ev.SetHandled()
	})
	ls.Call(NewKey(KeyDown, key.CodeA))
	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 2, ls.Len(KeyDown))
	assert.Equal(t, 0, ls.Len(MouseDown))
}

func TestTypes(t *testing.T) {
	assert.True(t, KeyUp.IsKey())
	assert.False(t, MouseDown.IsKey())
	assert.True(t, MouseDrag.IsMouse())
	assert.Equal(t, "MouseDown", MouseDown.String())
	ev := NewMouseDrag(Left, image.Pt(5, 5), image.Pt(2, 1), image.Pt(0, 0))
	assert.Equal(t, image.Pt(3, 4), ev.Delta())
}
