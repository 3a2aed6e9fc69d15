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
	"reflect"
	"unsafe"
)

// Size returns N, the byte length of every Str[A].
//
// It panics if A is not an array of bytes.
func Size[A comparable]() int {
	return arrayLen[A]()
}

func arrayLen[A comparable]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("strarray: %v is not a byte array type", t))
	}
	return t.Len()
}

// bytesOf exposes the array pointed to by a as a slice over the same memory.
//
// SAFETY: A is checked to be [N]byte, so the N bytes starting at a are the
// array elements. The slice must not outlive *a.
func bytesOf[A comparable](a *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(a)), arrayLen[A]())
}
