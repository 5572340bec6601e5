// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Block is the set of unsigned integer types that can back a Set.  Narrow
// blocks waste less memory on sparse sets with small members; uint64 (or
// uint) gives the fastest set algebra on dense sets.
type Block interface {
	constraints.Unsigned
}

func blockBytes[B Block]() int {
	return int(unsafe.Sizeof(B(0)))
}

func blockBits[B Block]() int {
	return blockBytes[B]() * 8
}

// numBlocks returns how many blocks are needed to track nbits bits.
func numBlocks[B Block](nbits int) int {
	w := blockBits[B]()
	n := nbits / w
	if nbits%w != 0 {
		n++
	}
	return n
}

// bit reports whether the bit at idx is set.  Callers guarantee idx is in
// [0, blockBits).
func bit[B Block](b B, idx int) bool {
	return b&(1<<idx) != 0
}

func setBit[B Block](b *B, idx int) {
	if idx < 0 || idx >= blockBits[B]() {
		panic(fmt.Sprintf("bitset: bit index out of range: %d with block width %d", idx, blockBits[B]()))
	}
	*b |= 1 << idx
}

func resetBit[B Block](b *B, idx int) {
	if idx < 0 || idx >= blockBits[B]() {
		panic(fmt.Sprintf("bitset: bit index out of range: %d with block width %d", idx, blockBits[B]()))
	}
	*b &^= 1 << idx
}

func countOnes[B Block](b B) int {
	return bits.OnesCount64(uint64(b))
}

// highestZeros returns the number of leading (most significant) zero bits
// in b.  For a zero block it returns the full block width.
func highestZeros[B Block](b B) int {
	return bits.LeadingZeros64(uint64(b)) - (64 - blockBits[B]())
}

// findLowestSetBit returns the position of the lowest set bit at or after
// from, or false if no such bit exists within the block.
func findLowestSetBit[B Block](b B, from int) (int, bool) {
	if from >= blockBits[B]() {
		return 0, false
	}
	b &= ^B(0) << from
	if b == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(b)), true
}
