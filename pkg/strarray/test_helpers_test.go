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
	"iter"
	"testing"
)

// countingRunes yields runes and records how many of them were pulled by the
// consumer.
func countingRunes(runes []rune, pulled *int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range runes {
			*pulled++
			if !yield(r) {
				return
			}
		}
	}
}

// repeatRune yields r forever. It is used to verify that collection stops as
// soon as the destination is full.
func repeatRune(r rune, pulled *int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			*pulled++
			if !yield(r) {
				return
			}
		}
	}
}

// requireLengthError fails the test unless err is a *LengthError with the
// given fields.
func requireLengthError(t *testing.T, err error, expected, actual int) {
	t.Helper()
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LengthError, got %T (%v)", err, err)
	}
	if lerr.Expected != expected || lerr.Actual != actual {
		t.Fatalf("unexpected length error: got {%d %d}, want {%d %d}", lerr.Expected, lerr.Actual, expected, actual)
	}
	if !errors.Is(err, ErrLength) {
		t.Fatalf("errors.Is(%v, ErrLength) = false", err)
	}
}

// requireUTF8Error fails the test unless err is a *UTF8Error with the given
// fields.
func requireUTF8Error(t *testing.T, err error, validUpTo, errorLen int) {
	t.Helper()
	var uerr *UTF8Error
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UTF8Error, got %T (%v)", err, err)
	}
	if uerr.ValidUpTo != validUpTo || uerr.ErrorLen != errorLen {
		t.Fatalf("unexpected utf-8 error: got {%d %d}, want {%d %d}", uerr.ValidUpTo, uerr.ErrorLen, validUpTo, errorLen)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("errors.Is(%v, ErrInvalidUTF8) = false", err)
	}
}

// requireCollectError fails the test unless err is a *CollectError expecting
// the given length.
func requireCollectError(t *testing.T, err error, expected int) {
	t.Helper()
	var cerr *CollectError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CollectError, got %T (%v)", err, err)
	}
	if cerr.Expected != expected || cerr.Actual != UnknownLength {
		t.Fatalf("unexpected collect error: got {%d %d}, want {%d %d}", cerr.Expected, cerr.Actual, expected, UnknownLength)
	}
	if !errors.Is(err, ErrCollectLength) {
		t.Fatalf("errors.Is(%v, ErrCollectLength) = false", err)
	}
}
