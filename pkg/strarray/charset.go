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

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Text decoded from legacy charsets is written straight into the fixed
// storage: the transformer's destination is the N-byte span itself, so a
// decode allocates nothing for the result.

// ErrUnknownCharset is returned by LookupCharset for names it cannot resolve.
var ErrUnknownCharset = errors.New("strarray: unknown charset")

// LookupCharset resolves an IANA charset name or alias ("ISO-8859-1",
// "latin1", "windows-1252", "Shift_JIS", ...).
func LookupCharset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	if enc == nil {
		// Known to IANA but not implemented by x/text.
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownCharset, name)
	}
	return enc, nil
}

// DecodeInto transcodes src to UTF-8 with t and succeeds only if the result
// is exactly len(dst) bytes.
//
// A result that does not fit, or that is shorter than dst, fails with a
// *CollectError. Transformer errors are returned wrapped. n is the number of
// bytes written to dst; on failure the content of dst is unspecified.
func DecodeInto(dst []byte, t transform.Transformer, src []byte) (n int, err error) {
	t.Reset()
	n, _, err = t.Transform(dst, src, true)
	switch {
	case errors.Is(err, transform.ErrShortDst):
		return n, &CollectError{Expected: len(dst), Actual: UnknownLength}
	case err != nil:
		return n, fmt.Errorf("strarray: decode: %w", err)
	case n != len(dst):
		return n, &CollectError{Expected: len(dst), Actual: UnknownLength}
	}
	// Decoders replace invalid input with U+FFFD, but a Nop or custom
	// transformer may pass bytes through untouched.
	if err := validate(dst); err != nil {
		return n, err
	}
	return n, nil
}

// Decode transcodes src from enc into a Str.
//
//	latin1, _ := strarray.LookupCharset("ISO-8859-1")
//	s, err := strarray.Decode[[5]byte](latin1, []byte{0x43, 0x61, 0x66, 0xE9}) // "Café"
func Decode[A comparable](enc encoding.Encoding, src []byte) (Str[A], error) {
	var out Str[A]
	if _, err := DecodeInto(bytesOf(&out.v), enc.NewDecoder(), src); err != nil {
		return Str[A]{}, err
	}
	return out, nil
}

// Encode transcodes the text of s into enc. Runes that enc cannot represent
// make it fail with the encoder's error.
func Encode[A comparable](enc encoding.Encoding, s Str[A]) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes(bytesOf(&s.v))
	if err != nil {
		return nil, fmt.Errorf("strarray: encode: %w", err)
	}
	return out, nil
}
