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

// Package strarray provides Str, a fixed-length string stored inline in a
// byte array and guaranteed to always hold valid UTF-8 of exactly that
// length.
//
// The length is part of the type: Str[[3]byte] always holds 3 bytes, and a
// Str[[3]byte] and a Str[[5]byte] are different types. Values live wherever
// their owner lives (stack, struct field, array element); no constructor or
// collector allocates.
//
// Construction always goes through a check:
//
//   - FromUTF8 validates a byte array as UTF-8.
//   - New copies a string whose byte length must be exactly N, and checks
//     that it is valid UTF-8 (a Go string may hold arbitrary bytes).
//   - FromBytes checks both the length and the UTF-8 validity of a slice.
//   - Collect and CollectReader encode a sequence of runes of unknown total
//     length and fail unless it encodes to exactly N bytes.
//   - FromUTF8Unchecked trusts the caller; built with -tags debug it
//     validates anyway and panics on a broken promise.
//
// Usage:
//
//	code, err := strarray.New[[3]byte]("EUR")
//	if err != nil {
//		return err // *LengthError when len("EUR") != 3
//	}
//	fmt.Println(code)            // EUR
//	fmt.Println(code.Len())      // 3
//
//	greeting, err := strarray.Collect[[10]byte](slices.Values([]rune("Hello 💖")))
//	// "Hello " is 6 bytes and 💖 is 4: exactly 10, so err == nil.
//
// Go has no integer type parameters, so the type parameter A is the backing
// array itself. The "byte array" part of the constraint cannot be expressed
// in the type system and is checked at run time by every constructor: using
// a non-byte-array A is a programming error and panics.
//
// Callers that only know N at run time (decoders, command line tools) can
// use Check, Fill and FillReader, which run the same algorithms over a
// caller-provided []byte span.
package strarray
