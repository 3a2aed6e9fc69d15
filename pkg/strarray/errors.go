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
)

var (
	// ErrLength matches every *LengthError.
	ErrLength = errors.New("strarray: invalid length")
	// ErrInvalidUTF8 matches every *UTF8Error.
	ErrInvalidUTF8 = errors.New("strarray: invalid utf-8")
	// ErrCollectLength matches every *CollectError.
	ErrCollectLength = errors.New("strarray: collected text does not have the expected length")

	ErrOutOfRange   = errors.New("strarray: index out of range")
	ErrCharBoundary = errors.New("strarray: index is not a char boundary")
)

// UnknownLength is reported as the actual length when it was never measured.
const UnknownLength = -1

// LengthError reports an input whose byte length is not the length N of the
// target type.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("strarray: expected string with %d bytes, but got %d", e.Expected, e.Actual)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

// UTF8Error reports the first invalid UTF-8 sequence of an input.
//
// ValidUpTo is the index up to which the input is valid UTF-8. ErrorLen is the
// length of the invalid sequence starting at ValidUpTo (1 to 3 bytes), or 0
// when the input ends in the middle of an otherwise valid sequence.
type UTF8Error struct {
	ValidUpTo int
	ErrorLen  int
}

func (e *UTF8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("strarray: incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("strarray: invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

func (e *UTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// CollectError reports a rune sequence that did not encode to exactly
// Expected bytes.
//
// Collection never walks past the first rune that does not fit, so Actual is
// UnknownLength: a sequence that ran long and one that ran short are the same
// failure.
type CollectError struct {
	Expected int
	Actual   int
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("strarray: collected characters do not encode to exactly %d bytes", e.Expected)
}

func (e *CollectError) Is(target error) bool {
	return target == ErrCollectLength
}
