// Copyright 2025 The bitset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"strconv"
	"strings"
)

// String renders the members in ascending order inside braces, e.g.
// "{0, 7, 14, 37}".  The empty set renders as "{}".
func (s *Set[B]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
