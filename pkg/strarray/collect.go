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
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"unicode/utf8"
)

// collector encodes runes one at a time into a fixed span.
//
// Invariant: n <= len(dst), and dst[:n] is the concatenation of the whole
// encodings of the runes accepted so far.
type collector struct {
	dst []byte
	n   int
}

// push writes the encoding of r at the cursor. It writes nothing and
// reports false when r does not fit in the remaining space.
func (c *collector) push(r rune) bool {
	if c.n == len(c.dst) {
		return false
	}
	size := utf8.RuneLen(r)
	if size < 0 {
		r, size = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	// Room is checked before writing: a 4-byte rune facing 1 to 3 free bytes
	// is rejected whole, never truncated.
	if size > len(c.dst)-c.n {
		return false
	}
	utf8.EncodeRune(c.dst[c.n:], r)
	c.n += size
	return true
}

func (c *collector) mismatch() error {
	return &CollectError{Expected: len(c.dst), Actual: UnknownLength}
}

// Fill encodes the runes of seq into dst and succeeds only if they take
// exactly len(dst) bytes.
//
// seq is traversed once. Fill stops pulling from it at the first rune that
// does not fit, so seq may be infinite. Invalid runes (surrogates, values
// above utf8.MaxRune) are encoded as U+FFFD.
//
// n is the number of bytes written. On failure err is a *CollectError and the
// content of dst is unspecified.
func Fill(dst []byte, seq iter.Seq[rune]) (n int, err error) {
	c := collector{dst: dst}
	for r := range seq {
		if !c.push(r) {
			return c.n, c.mismatch()
		}
	}
	if c.n != len(c.dst) {
		return c.n, c.mismatch()
	}
	return c.n, nil
}

// FillReader is like Fill but reads runes from r until io.EOF.
//
// When the rejected rune was read from an io.RuneScanner (such as
// *bufio.Reader or *strings.Reader) it is unread, so r is left positioned on
// the first rune that did not fit. Errors other than io.EOF are returned
// wrapped and take precedence over a length mismatch.
func FillReader(dst []byte, r io.RuneReader) (n int, err error) {
	var readErr error
	n, err = Fill(dst, readRunes(r, &readErr))
	if readErr != nil {
		return n, fmt.Errorf("strarray: read rune: %w", readErr)
	}
	return n, err
}

func readRunes(r io.RuneReader, errp *error) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			ch, _, err := r.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					*errp = err
				}
				return
			}
			if !yield(ch) {
				if rs, ok := r.(io.RuneScanner); ok {
					_ = rs.UnreadRune()
				}
				return
			}
		}
	}
}

// Collect builds a Str from a sequence of runes of unknown total length.
//
// It succeeds only if the runes encode to exactly N bytes. A sequence that
// runs long and one that runs short both fail with a *CollectError; the
// sequence is never read past the first rune that does not fit, and no
// partial encoding is ever stored.
//
//	s, err := strarray.Collect[[10]byte](slices.Values([]rune("Hello 💖")))
func Collect[A comparable](seq iter.Seq[rune]) (Str[A], error) {
	var out Str[A]
	if _, err := Fill(bytesOf(&out.v), seq); err != nil {
		return Str[A]{}, err
	}
	return out, nil
}

// CollectReader is like Collect but reads runes from r. See FillReader.
func CollectReader[A comparable](r io.RuneReader) (Str[A], error) {
	var out Str[A]
	if _, err := FillReader(bytesOf(&out.v), r); err != nil {
		return Str[A]{}, err
	}
	return out, nil
}

// FromRunes collects runes into a Str. See Collect.
func FromRunes[A comparable](runes ...rune) (Str[A], error) {
	return Collect[A](slices.Values(runes))
}
