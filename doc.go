// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset implements a growable set of non-negative integers backed
// by a packed vector of fixed-width unsigned blocks.
//
// A Set is parameterized by its block type: any unsigned integer width from
// uint8 up to uint64 (or the native uint) can back the vector, and all bit
// manipulation compiles down to single-instruction popcount/lzcnt/tzcnt
// operations via math/bits.  Membership, insertion, removal and the usual
// boolean set algebra (union, intersection, difference, symmetric
// difference, subset tests) are provided, along with ascending iteration
// over members.
//
// The vector is kept compact: whenever a removal clears the highest tracked
// bit, trailing all-zero blocks are trimmed and the logical length shrinks
// so that the highest tracked bit is always a set bit.  Equality and
// hashing are therefore pure functions of set membership, independent of a
// set's allocation history.
//
// Set values are not safe for concurrent use; callers that share a Set
// across goroutines must provide their own synchronization.
package bitset
