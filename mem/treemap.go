// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package mem

import (
	"cmp"
	"iter"
	"sort"

	"golang.org/x/exp/constraints"
)

// BinaryTreeMap is a sorted map backed by an arena-allocated slice. Iteration
// is in key order, which makes it suitable for deterministic output.
type BinaryTreeMap[K constraints.Ordered, V any] struct {
	entries []binaryTreeMapEntry[K, V]
}

type binaryTreeMapEntry[K constraints.Ordered, V any] struct {
	key   K
	value V
}

func (m *BinaryTreeMap[K, V]) find(key K) (*binaryTreeMapEntry[K, V], bool) {
	idx, ok := sort.Find(len(m.entries), func(i int) int {
		return cmp.Compare(key, m.entries[i].key)
	})
	if !ok {
		return nil, false
	}
	return &m.entries[idx], true
}

// Insert adds or replaces the value for key. It reports whether key was new.
func (m *BinaryTreeMap[K, V]) Insert(a *Arena, key K, value V) bool {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return key <= m.entries[i].key
	})

	if idx < len(m.entries) && m.entries[idx].key == key {
		m.entries[idx].value = value
		return false
	}
	m.entries = insert(a, m.entries, idx, binaryTreeMapEntry[K, V]{key, value})
	return true
}

func (m *BinaryTreeMap[K, V]) Get(key K) (V, bool) {
	if e, ok := m.find(key); ok {
		return e.value, true
	}
	return *new(V), false
}

func (m *BinaryTreeMap[K, V]) Len() int {
	return len(m.entries)
}

func (m *BinaryTreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (m *BinaryTreeMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.value) {
				return
			}
		}
	}
}

func insert[S ~[]E, E any](a *Arena, s S, i int, v E) S {
	if i == len(s) {
		return Append(a, s, v)
	}

	if cap(s) > len(s) {
		s = s[:len(s)+1]
		copy(s[i+1:], s[i:])
		s[i] = v
		return s
	}
	s2 := NewSlice[S](a, len(s)+1, (len(s)+1)*2)
	copy(s2, s[:i])
	s2[i] = v
	copy(s2[i+1:], s[i:])
	return s2
}
