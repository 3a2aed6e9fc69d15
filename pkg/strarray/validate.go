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

import "unicode/utf8"

// Check reports whether b could be the content of a Str of length n.
//
// It returns a *LengthError when len(b) != n and a *UTF8Error when b is not
// valid UTF-8. The length is checked first.
func Check(b []byte, n int) error {
	if len(b) != n {
		return &LengthError{Expected: n, Actual: len(b)}
	}
	return validate(b)
}

// validate returns nil or a *UTF8Error locating the first invalid sequence.
func validate(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &UTF8Error{ValidUpTo: i, ErrorLen: invalidSequenceLen(b[i:])}
		}
		i += size
	}
	return nil
}

// invalidSequenceLen measures the maximal prefix of p that could start a
// well-formed sequence. It returns 0 when p ends before that prefix is
// complete.
func invalidSequenceLen(p []byte) int {
	need, lo, hi := leadByte(p[0])
	if need == 0 {
		return 1
	}
	if len(p) < 2 {
		return 0
	}
	if p[1] < lo || p[1] > hi {
		return 1
	}
	for k := 2; k < need; k++ {
		if k >= len(p) {
			return 0
		}
		if p[k] < 0x80 || p[k] > 0xBF {
			return k
		}
	}
	return need
}

// leadByte returns the sequence length announced by c and the accepted
// range of the second byte (Unicode Table 3-7). need is 0 for bytes that
// cannot start a sequence.
func leadByte(c byte) (need int, lo, hi byte) {
	switch {
	case c >= 0xC2 && c <= 0xDF:
		return 2, 0x80, 0xBF
	case c == 0xE0:
		return 3, 0xA0, 0xBF
	case c >= 0xE1 && c <= 0xEC, c == 0xEE, c == 0xEF:
		return 3, 0x80, 0xBF
	case c == 0xED:
		return 3, 0x80, 0x9F
	case c == 0xF0:
		return 4, 0x90, 0xBF
	case c >= 0xF1 && c <= 0xF3:
		return 4, 0x80, 0xBF
	case c == 0xF4:
		return 4, 0x80, 0x8F
	}
	return 0, 0, 0
}
