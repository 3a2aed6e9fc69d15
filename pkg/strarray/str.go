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
	"iter"
	"strconv"
	"unicode/utf8"
)

// Str is a string of exactly N bytes stored inline in A, where A is [N]byte.
//
// Invariant: the N bytes always form valid UTF-8. Every constructor checks
// it, and the only mutation paths (Mutate, MakeASCIIUpper, MakeASCIILower)
// preserve it.
//
// The zero value holds N NUL bytes, which is valid UTF-8.
//
// Str is comparable: == compares the content of two values of the same type,
// and Str can be used as a map key. Use Equal and Compare to compare values of
// different lengths.
type Str[A comparable] struct {
	v A
}

// FromUTF8 converts a byte array to a Str.
//
// It fails with a *UTF8Error, locating the first invalid sequence, unless the
// whole array is valid UTF-8. The inverse of FromUTF8 is Array.
//
//	heart, err := strarray.FromUTF8([4]byte{240, 159, 146, 150}) // "💖"
func FromUTF8[A comparable](v A) (Str[A], error) {
	if err := validate(bytesOf(&v)); err != nil {
		return Str[A]{}, err
	}
	return Str[A]{v: v}, nil
}

// FromUTF8Unchecked converts a byte array to a Str without checking that it
// is valid UTF-8. The caller promises that it is.
//
// When built with -tags debug, the check runs anyway and a broken promise
// panics: a Str holding invalid UTF-8 is never returned. In other builds a
// broken promise leaves every later read of the value unspecified.
func FromUTF8Unchecked[A comparable](v A) Str[A] {
	if debugAssertions {
		s, err := FromUTF8(v)
		if err != nil {
			panic(fmt.Sprintf("strarray: FromUTF8Unchecked called with invalid UTF-8: %v", err))
		}
		return s
	}
	_ = arrayLen[A]()
	return Str[A]{v: v}
}

// New copies s into a Str.
//
// New fails with a *LengthError unless len(s) is exactly N, and with a
// *UTF8Error if s holds invalid UTF-8 (Go strings may carry arbitrary bytes).
func New[A comparable](s string) (Str[A], error) {
	var out Str[A]
	dst := bytesOf(&out.v)
	if len(s) != len(dst) {
		return Str[A]{}, &LengthError{Expected: len(dst), Actual: len(s)}
	}
	copy(dst, s)
	if err := validate(dst); err != nil {
		return Str[A]{}, err
	}
	return out, nil
}

// MustNew is like New but panics on error. It is meant for constants and
// tests.
func MustNew[A comparable](s string) Str[A] {
	out, err := New[A](s)
	if err != nil {
		panic(err)
	}
	return out
}

// FromBytes copies b into a Str.
//
// The length is checked first (*LengthError), then the UTF-8 validity
// (*UTF8Error).
func FromBytes[A comparable](b []byte) (Str[A], error) {
	var out Str[A]
	dst := bytesOf(&out.v)
	if err := Check(b, len(dst)); err != nil {
		return Str[A]{}, err
	}
	copy(dst, b)
	return out, nil
}

// String returns a copy of the content.
func (s Str[A]) String() string {
	return string(bytesOf(&s.v))
}

// GoString returns the content as a quoted Go string literal, for %#v.
func (s Str[A]) GoString() string {
	return strconv.Quote(s.view())
}

// Bytes returns a copy of the content. Use Mutate to modify the content in
// place.
func (s Str[A]) Bytes() []byte {
	return append([]byte(nil), bytesOf(&s.v)...)
}

// Array returns the backing array. The inverse of Array is FromUTF8.
func (s Str[A]) Array() A {
	return s.v
}

// Len returns N, the length of s in bytes (not in runes).
func (s Str[A]) Len() int {
	return arrayLen[A]()
}

// IsEmpty reports whether N is 0.
func (s Str[A]) IsEmpty() bool {
	return arrayLen[A]() == 0
}

// RuneCount returns the number of runes in s.
func (s Str[A]) RuneCount() int {
	return utf8.RuneCount(bytesOf(&s.v))
}

// Runes returns an iterator over the runes of s. The content is captured
// when Runes is called.
//
// It composes with Collect to convert between lengths:
//
//	wide, err := strarray.Collect[[8]byte](narrow.Runes())
func (s Str[A]) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.view() {
			if !yield(r) {
				return
			}
		}
	}
}

// Mutate calls fn with a writable view of the content and checks that the
// result is still valid UTF-8.
//
// If it is not, the previous content is restored and the *UTF8Error is
// returned. If fn panics, the previous content is restored before the panic
// propagates. fn must not retain the slice.
func (s *Str[A]) Mutate(fn func(b []byte)) error {
	saved := s.v
	returned := false
	defer func() {
		if !returned {
			s.v = saved
		}
	}()

	b := bytesOf(&s.v)
	fn(b)
	returned = true
	if err := validate(b); err != nil {
		s.v = saved
		return err
	}
	return nil
}

// MakeASCIIUpper converts ASCII letters to upper case in place. Other bytes
// are left untouched, so the UTF-8 invariant holds.
func (s *Str[A]) MakeASCIIUpper() {
	b := bytesOf(&s.v)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILower converts ASCII letters to lower case in place.
func (s *Str[A]) MakeASCIILower() {
	b := bytesOf(&s.v)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}
