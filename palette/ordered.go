// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"maps"
	"slices"
)

// keyValue is one entry of an [ordered] map.
type keyValue[V any] struct {
	Key   string
	Value V
}

// ordered is a map that retains the order in which keys were added,
// while also providing fast key lookup. The slice holds the keys and
// values in order, and the map holds the index of each key in the slice.
type ordered[V any] struct {
	order []keyValue[V]
	index map[string]int
}

// add sets the value for the given key. If the key already exists,
// its value is replaced in place; otherwise it is added to the end.
func (om *ordered[V]) add(key string, val V) {
	if om.index == nil {
		om.index = make(map[string]int)
	}
	if idx, has := om.index[key]; has {
		om.order[idx].Value = val
		return
	}
	om.index[key] = len(om.order)
	om.order = append(om.order, keyValue[V]{Key: key, Value: val})
}

// get returns the value for the given key, and false if it is missing.
func (om *ordered[V]) get(key string) (V, bool) {
	idx, ok := om.index[key]
	if !ok {
		var zv V
		return zv, false
	}
	return om.order[idx].Value, true
}

// remove deletes the given key, renumbering the indexes above it.
// It returns false if the key is not found.
func (om *ordered[V]) remove(key string) bool {
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	for o := idx + 1; o < len(om.order); o++ {
		om.index[om.order[o].Key] = o - 1
	}
	delete(om.index, key)
	om.order = slices.Delete(om.order, idx, idx+1)
	return true
}

func (om *ordered[V]) len() int {
	return len(om.order)
}

func (om *ordered[V]) keys() []string {
	kl := make([]string, len(om.order))
	for i, kv := range om.order {
		kl[i] = kv.Key
	}
	return kl
}

// clone returns a copy that does not share storage with om.
func (om *ordered[V]) clone() ordered[V] {
	return ordered[V]{order: slices.Clone(om.order), index: maps.Clone(om.index)}
}
