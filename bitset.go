// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"iter"
	"math"
	"slices"
)

// Set is a growable set of non-negative integers, stored one bit per
// potential member in a packed vector of B blocks.  The zero value is an
// empty set ready to use.
type Set[B Block] struct {
	blocks []B
	// size is the number of tracked bits, set and unset.  Whenever
	// size > 0 the bit at size-1 is set: removals trim trailing zero
	// blocks so the set never carries dead capacity as logical length.
	size int
}

// New returns a new empty set.
func New[B Block]() *Set[B] {
	return &Set[B]{}
}

// WithCapacity returns a new empty set with storage pre-allocated for
// members up to at least n.
func WithCapacity[B Block](n int) *Set[B] {
	return &Set[B]{blocks: make([]B, 0, numBlocks[B](n))}
}

// Of returns a set containing the given values.  Duplicates collapse and
// order is irrelevant.
func Of[B Block](values ...int) *Set[B] {
	s := New[B]()
	s.Extend(values...)
	return s
}

// Collect drains seq into a new set.
func Collect[B Block](seq iter.Seq[int]) *Set[B] {
	s := New[B]()
	s.ExtendSeq(seq)
	return s
}

// Extend inserts each of the given values.
func (s *Set[B]) Extend(values ...int) {
	for _, v := range values {
		s.Insert(v)
	}
}

// ExtendSeq inserts every value produced by seq.
func (s *Set[B]) ExtendSeq(seq iter.Seq[int]) {
	for v := range seq {
		s.Insert(v)
	}
}

// Capacity returns the number of bits the set can track without
// reallocating, saturating at the maximum int.
func (s *Set[B]) Capacity() int {
	w := blockBits[B]()
	if c := cap(s.blocks); c <= math.MaxInt/w {
		return c * w
	}
	return math.MaxInt
}

// Reserve grows the set's storage so that at least additional more bits
// beyond the current logical length can be tracked without reallocating.
// It may over-allocate to amortize future growth; panics on overflow of
// the bit length.
func (s *Set[B]) Reserve(additional int) {
	want := s.checkedBitLen(additional)
	if want > s.Capacity() {
		s.blocks = slices.Grow(s.blocks, numBlocks[B](want)-len(s.blocks))
	}
}

// ReserveExact is like Reserve but allocates exactly the capacity asked
// for, with no amortization headroom.
func (s *Set[B]) ReserveExact(additional int) {
	want := s.checkedBitLen(additional)
	if want > s.Capacity() {
		blocks := make([]B, len(s.blocks), numBlocks[B](want))
		copy(blocks, s.blocks)
		s.blocks = blocks
	}
}

func (s *Set[B]) checkedBitLen(additional int) int {
	if additional < 0 {
		panic("bitset: negative reservation")
	}
	if s.size > math.MaxInt-additional {
		panic("bitset: capacity overflow")
	}
	return s.size + additional
}

// ShrinkToFit releases unused storage.  Set membership is unaffected.
func (s *Set[B]) ShrinkToFit() {
	s.compact()
	if cap(s.blocks) > len(s.blocks) {
		blocks := make([]B, len(s.blocks))
		copy(blocks, s.blocks)
		s.blocks = blocks
	}
}

// Len returns the number of members in the set.  It is computed on demand
// by summing per-block popcounts.
func (s *Set[B]) Len() int {
	n := 0
	for _, blk := range s.blocks {
		n += countOnes(blk)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s *Set[B]) IsEmpty() bool {
	// size > 0 implies the bit at size-1 is set.
	return s.size == 0
}

// Clear removes all members.  Storage is retained for reuse.
func (s *Set[B]) Clear() {
	s.blocks = s.blocks[:0]
	s.size = 0
}

// Contains reports whether value is a member of the set.  Negative values
// are never members.
func (s *Set[B]) Contains(value int) bool {
	if value < 0 || value >= s.size {
		return false
	}
	return s.contains(value)
}

func (s *Set[B]) contains(value int) bool {
	w := blockBits[B]()
	return bit(s.blocks[value/w], value%w)
}

// Insert adds value to the set, growing storage as needed, and reports
// whether it was newly added (false if value was already a member).
// It panics if value is negative or exceeds the maximum tracked length.
func (s *Set[B]) Insert(value int) bool {
	if value < 0 {
		panic("bitset: negative value")
	}
	if value == math.MaxInt {
		panic("bitset: capacity overflow")
	}
	nblk := numBlocks[B](value + 1)
	if grow := nblk - len(s.blocks); grow > 0 {
		s.blocks = slices.Grow(s.blocks, grow)
		for len(s.blocks) < nblk {
			s.blocks = append(s.blocks, 0)
		}
	}
	if s.size < value+1 {
		s.size = value + 1
	}
	present := s.contains(value)
	w := blockBits[B]()
	setBit(&s.blocks[value/w], value%w)
	return !present
}

// Remove deletes value from the set and reports whether it was a member.
// Removing the highest member compacts the set: trailing zero blocks are
// trimmed and the logical length shrinks to the new highest member.
func (s *Set[B]) Remove(value int) bool {
	if value < 0 || value >= s.size {
		return false
	}
	present := s.contains(value)
	w := blockBits[B]()
	resetBit(&s.blocks[value/w], value%w)
	if value+1 == s.size {
		s.compact()
	}
	return present
}

// Clone returns an independent copy of the set.
func (s *Set[B]) Clone() *Set[B] {
	return &Set[B]{blocks: slices.Clone(s.blocks), size: s.size}
}

// compact scans backward for the last non-zero block, truncates everything
// after it and recomputes size so that the highest tracked bit is set.
func (s *Set[B]) compact() {
	w := blockBits[B]()
	for i := len(s.blocks) - 1; i >= 0; i-- {
		if blk := s.blocks[i]; blk != 0 {
			s.blocks = s.blocks[:i+1]
			s.size = (i+1)*w - highestZeros(blk)
			return
		}
	}
	s.blocks = s.blocks[:0]
	s.size = 0
}
