package strarray

import "unsafe"

// view reinterprets the content of s as a string without copying.
//
// SAFETY: the bytes are valid UTF-8 by the Str invariant. The returned string
// aliases s, so it must only be used while s is alive and unmodified: callers
// compare, hash or range over it and never return it. Value receivers call it
// on their own copy.
func (s *Str[A]) view() string {
	b := bytesOf(&s.v)
	return unsafe.String(unsafe.SliceData(b), len(b))
}
