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
	"bufio"
	"fmt"
	"io"
	"iter"
)

// ScanRecords returns a split function for a bufio.Scanner that returns each
// n-byte record of the input.
//
// A trailing record shorter than n is returned as is, so the caller can
// report it (Check and FromBytes reject it with a *LengthError). n must be
// positive; otherwise the scanner stops with an error wrapping
// ErrOutOfRange.
func ScanRecords(n int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if n <= 0 {
			return 0, nil, fmt.Errorf("strarray: record length %d: %w", n, ErrOutOfRange)
		}

		// No data and nothing more to read.
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		if len(data) >= n {
			return n, data[:n], nil
		}

		// Short final record.
		if atEOF {
			return len(data), data, nil
		}

		// Request more data.
		return 0, nil, nil
	}
}

// Records reads r as a sequence of N-byte records and yields one Str per
// record.
//
// Iteration stops after the first error: an invalid record (*UTF8Error), a
// short trailing record (*LengthError) or a read error. Records of a
// zero-length Str yield a single ErrOutOfRange error.
//
// Usage:
//
//	for code, err := range strarray.Records[[3]byte](file) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(code)
//	}
func Records[A comparable](r io.Reader) iter.Seq2[Str[A], error] {
	return func(yield func(Str[A], error) bool) {
		n := Size[A]()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(max(n, 1), 64*1024)), max(n, bufio.MaxScanTokenSize))
		scanner.Split(ScanRecords(n))

		for scanner.Scan() {
			s, err := FromBytes[A](scanner.Bytes())
			if !yield(s, err) || err != nil {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Str[A]{}, fmt.Errorf("strarray: scan records: %w", err))
		}
	}
}
