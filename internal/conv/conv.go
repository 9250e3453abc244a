// Package conv provides checked integer narrowing for state IDs and symbols.
//
// Overflow here means a table or input outgrew the 32-bit state space or a
// symbol index escaped the byte range, both programming errors, so these
// helpers panic instead of returning an error.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// compare as uint so 32-bit platforms don't overflow the constant
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToByte converts n to a byte (input symbol).
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToByte(n int) byte {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of byte range")
	}
	return byte(n)
}
