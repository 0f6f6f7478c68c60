// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list of values with a map
// from keys to indexes, for registries that are listed in
// registration order and looked up by name.
package keylist

import "fmt"

// List is an ordered list of Values with a parallel list of Keys.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in the same order as Values.
	Keys []K

	indexes map[K]int
}

// Len returns the number of items.
func (kl *List[K, V]) Len() int {
	return len(kl.Values)
}

// Set sets the given key to the given value, adding it to the end of
// the list if not already present and replacing the value otherwise.
func (kl *List[K, V]) Set(key K, val V) {
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.append(key, val)
}

// Add adds an item with the given key, returning an error if the key
// is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.append(key, val)
	return nil
}

func (kl *List[K, V]) append(key K, val V) {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// AtTry returns the value for the given key and whether it was found.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, or -1 if not found.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}
