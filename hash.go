// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"encoding/binary"

	"github.com/dgryski/go-farm"
)

// Hash returns a 64-bit hash of the set's members.  Sets that are Equal
// hash identically regardless of block width history or spare capacity:
// only the compacted block prefix is hashed.
func (s *Set[B]) Hash() uint64 {
	nbytes := blockBytes[B]()
	buf := make([]byte, 0, len(s.blocks)*nbytes)
	var scratch [8]byte
	for _, blk := range s.blocks {
		binary.LittleEndian.PutUint64(scratch[:], uint64(blk))
		buf = append(buf, scratch[:nbytes]...)
	}
	return farm.Hash64(buf)
}
