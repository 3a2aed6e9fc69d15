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
	"hash/maphash"
	"strings"
)

// Equal reports whether a and b hold the same text.
//
// a and b may have different lengths; values of different lengths are never
// equal. For two values of the same type, Equal(a, b) == (a == b).
func Equal[A, B comparable](a Str[A], b Str[B]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return a.view() == b.view()
}

// Compare orders a and b as plain text, byte-wise, which for UTF-8 is also
// code point order. The lengths of the types play no part beyond the text
// itself: "foo" sorts before "foo12".
//
// The result is -1, 0 or +1, like strings.Compare. It can be passed directly
// to slices.SortFunc:
//
//	slices.SortFunc(codes, strarray.Compare[[3]byte, [3]byte])
func Compare[A, B comparable](a Str[A], b Str[B]) int {
	return strings.Compare(a.view(), b.view())
}

// Less reports whether a sorts before b.
func Less[A, B comparable](a Str[A], b Str[B]) bool {
	return Compare(a, b) < 0
}

// EqualString reports whether s holds exactly t.
func (s Str[A]) EqualString(t string) bool {
	return s.view() == t
}

// CompareString orders s against t as plain text.
func (s Str[A]) CompareString(t string) int {
	return strings.Compare(s.view(), t)
}

// Hash returns the hash of the text of s. It equals maphash.String(seed, t)
// for the string t that s holds, so values of different lengths holding the
// same text, or a Str and a plain string, hash alike.
func (s Str[A]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.view())
}
