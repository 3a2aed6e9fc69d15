// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strarray

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Slice returns a copy of the bytes [lo, hi) of s.
//
// Both bounds must lie in [0, N] with lo <= hi (ErrOutOfRange), and both must
// fall on a char boundary so the result is valid UTF-8 (ErrCharBoundary).
func (s Str[A]) Slice(lo, hi int) (string, error) {
	v := s.view()
	if lo < 0 || hi > len(v) || lo > hi {
		return "", fmt.Errorf("strarray: slice [%d:%d] with length %d: %w", lo, hi, len(v), ErrOutOfRange)
	}
	if !isCharBoundary(v, lo) {
		return "", fmt.Errorf("strarray: slice start %d: %w", lo, ErrCharBoundary)
	}
	if !isCharBoundary(v, hi) {
		return "", fmt.Errorf("strarray: slice end %d: %w", hi, ErrCharBoundary)
	}
	return strings.Clone(v[lo:hi]), nil
}

// SliceFrom returns a copy of the bytes [lo, N) of s.
func (s Str[A]) SliceFrom(lo int) (string, error) {
	return s.Slice(lo, s.Len())
}

// SliceTo returns a copy of the bytes [0, hi) of s.
func (s Str[A]) SliceTo(hi int) (string, error) {
	return s.Slice(0, hi)
}

// IsCharBoundary reports whether i is the first byte of a rune or the end of
// s. Out of range indices are not boundaries.
func (s Str[A]) IsCharBoundary(i int) bool {
	v := s.view()
	if i < 0 || i > len(v) {
		return false
	}
	return isCharBoundary(v, i)
}

func isCharBoundary(s string, i int) bool {
	return i == 0 || i == len(s) || utf8.RuneStart(s[i])
}
