// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockBits(t *testing.T) {
	require.Equal(t, 8, blockBits[uint8]())
	require.Equal(t, 16, blockBits[uint16]())
	require.Equal(t, 32, blockBits[uint32]())
	require.Equal(t, 64, blockBits[uint64]())
	require.Equal(t, bits.UintSize, blockBits[uint]())
}

func TestSetResetBit(t *testing.T) {
	var b uint8
	setBit(&b, 0)
	setBit(&b, 7)
	require.Equal(t, uint8(0x81), b)
	require.True(t, bit(b, 0))
	require.False(t, bit(b, 1))
	require.True(t, bit(b, 7))

	resetBit(&b, 7)
	require.Equal(t, uint8(0x01), b)
	resetBit(&b, 7)
	require.Equal(t, uint8(0x01), b)

	require.Panics(t, func() { setBit(&b, 8) })
	require.Panics(t, func() { resetBit(&b, 8) })
	require.Panics(t, func() { setBit(&b, -1) })

	var w uint64
	setBit(&w, 63)
	require.Equal(t, uint64(1)<<63, w)
	require.Panics(t, func() { setBit(&w, 64) })
}

func TestCountOnes(t *testing.T) {
	require.Equal(t, 0, countOnes(uint16(0)))
	require.Equal(t, 1, countOnes(uint16(0x8000)))
	require.Equal(t, 16, countOnes(uint16(0xffff)))
	require.Equal(t, 3, countOnes(uint8(0b10110)))
}

func TestHighestZeros(t *testing.T) {
	require.Equal(t, 8, highestZeros(uint8(0)))
	require.Equal(t, 0, highestZeros(uint8(0x80)))
	require.Equal(t, 7, highestZeros(uint8(1)))
	require.Equal(t, 16, highestZeros(uint16(0)))
	require.Equal(t, 12, highestZeros(uint16(0b1010)))
	require.Equal(t, 64, highestZeros(uint64(0)))
	require.Equal(t, 0, highestZeros(^uint64(0)))
}

func TestFindLowestSetBit(t *testing.T) {
	// past the block width
	_, ok := findLowestSetBit(uint8(0xff), 8)
	require.False(t, ok)

	// empty block
	_, ok = findLowestSetBit(uint8(0), 0)
	require.False(t, ok)

	idx, ok := findLowestSetBit(uint8(0b1001_0010), 0)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	idx, ok = findLowestSetBit(uint8(0b1001_0010), 2)
	require.True(t, ok)
	require.Equal(t, 4, idx)

	idx, ok = findLowestSetBit(uint8(0b1001_0010), 5)
	require.True(t, ok)
	require.Equal(t, 7, idx)

	_, ok = findLowestSetBit(uint8(0b0001_0010), 5)
	require.False(t, ok)

	idx, ok = findLowestSetBit(uint64(1)<<63, 63)
	require.True(t, ok)
	require.Equal(t, 63, idx)
}
