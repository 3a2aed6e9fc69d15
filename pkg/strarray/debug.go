//go:build debug

package strarray

// debugAssertions makes FromUTF8Unchecked validate its input and panic on
// invalid UTF-8.
const debugAssertions = true
