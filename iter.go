// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"iter"
	"math"
)

// Iterator enumerates the members of a Set in ascending order.
//
// An Iterator snapshots the set's block vector when created: mutating the
// set while iterating is memory safe but the values produced are
// unspecified.  Obtain a fresh Iterator to restart.
type Iterator[B Block] struct {
	blocks []B
	index  int
	bit    int
}

// Iter returns an iterator over the members of s in ascending order.
func (s *Set[B]) Iter() *Iterator[B] {
	return &Iterator[B]{blocks: s.blocks}
}

// Next returns the next member, or false when the set is exhausted.
func (it *Iterator[B]) Next() (int, bool) {
	w := blockBits[B]()
	for it.index < len(it.blocks) {
		if b, ok := findLowestSetBit(it.blocks[it.index], it.bit); ok {
			it.bit = b + 1
			if it.index > (math.MaxInt-b)/w {
				panic("bitset: element overflow")
			}
			return it.index*w + b, true
		}
		it.index++
		it.bit = 0
	}
	return 0, false
}

// All returns a range-over-func sequence of the members of s in ascending
// order.
func (s *Set[B]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendTo appends the members of s to dst in ascending order and returns
// the extended slice.
func (s *Set[B]) AppendTo(dst []int) []int {
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		dst = append(dst, v)
	}
	return dst
}
