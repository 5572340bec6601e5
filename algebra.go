// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import "slices"

// The binary operators all work over min(len(s.blocks), len(other.blocks))
// blocks: bits beyond the shorter operand's logical length are zero by
// construction, so OR and XOR treat the longer tail as identity and AND
// treats it as annihilating, without materializing the missing blocks.

// UnionWith adds every member of other to s.
func (s *Set[B]) UnionWith(other *Set[B]) {
	if other.size > s.size {
		n := len(s.blocks)
		s.blocks = append(s.blocks, other.blocks[n:]...)
		s.size = other.size
		for i := 0; i < n; i++ {
			s.blocks[i] |= other.blocks[i]
		}
		return
	}
	for i, blk := range other.blocks {
		s.blocks[i] |= blk
	}
	// No compaction: OR can only add bits, so the highest tracked bit of
	// the longer operand survives.
}

// Union returns a new set holding the union of s and other.
func (s *Set[B]) Union(other *Set[B]) *Set[B] {
	if other.size > s.size {
		s, other = other, s
	}
	r := s.Clone()
	r.UnionWith(other)
	return r
}

// IntersectWith removes every member of s that is not also in other.
func (s *Set[B]) IntersectWith(other *Set[B]) {
	if other.size < s.size {
		s.blocks = s.blocks[:len(other.blocks)]
		s.size = other.size
	}
	for i := range s.blocks {
		s.blocks[i] &= other.blocks[i]
	}
	s.compact()
}

// Intersect returns a new set holding the intersection of s and other.
func (s *Set[B]) Intersect(other *Set[B]) *Set[B] {
	if other.size < s.size {
		s, other = other, s
	}
	r := s.Clone()
	r.IntersectWith(other)
	return r
}

// DifferenceWith removes every member of other from s.
func (s *Set[B]) DifferenceWith(other *Set[B]) {
	n := min(len(s.blocks), len(other.blocks))
	for i := 0; i < n; i++ {
		s.blocks[i] &^= other.blocks[i]
	}
	s.compact()
}

// Difference returns a new set holding the members of s that are not in
// other.  Unlike the other operators, difference is not commutative.
func (s *Set[B]) Difference(other *Set[B]) *Set[B] {
	r := s.Clone()
	r.DifferenceWith(other)
	return r
}

// SymmetricDifferenceWith keeps exactly the members present in one of s
// and other but not both.
func (s *Set[B]) SymmetricDifferenceWith(other *Set[B]) {
	if other.size > s.size {
		n := len(s.blocks)
		s.blocks = append(s.blocks, other.blocks[n:]...)
		s.size = other.size
		for i := 0; i < n; i++ {
			s.blocks[i] ^= other.blocks[i]
		}
	} else {
		for i, blk := range other.blocks {
			s.blocks[i] ^= blk
		}
	}
	s.compact()
}

// SymmetricDifference returns a new set holding the members present in
// exactly one of s and other.
func (s *Set[B]) SymmetricDifference(other *Set[B]) *Set[B] {
	if other.size > s.size {
		s, other = other, s
	}
	r := s.Clone()
	r.SymmetricDifferenceWith(other)
	return r
}

// IsSubsetOf reports whether every member of s is also a member of other.
// Every set is a subset of itself.
func (s *Set[B]) IsSubsetOf(other *Set[B]) bool {
	if s.size > other.size {
		return false
	}
	for i, blk := range s.blocks {
		if blk&^other.blocks[i] != 0 {
			return false
		}
	}
	return true
}

// IsProperSubsetOf reports whether s is a subset of other and other has at
// least one member not in s.
func (s *Set[B]) IsProperSubsetOf(other *Set[B]) bool {
	return s.IsSubsetOf(other) && !s.Equal(other)
}

// Equal reports whether s and other have identical members.  Compaction
// keeps the block vector canonical, so logical equality is exactly
// block-wise equality over the tracked prefix.
func (s *Set[B]) Equal(other *Set[B]) bool {
	return s.size == other.size && slices.Equal(s.blocks, other.blocks)
}
