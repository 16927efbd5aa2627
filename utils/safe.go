package utils

import (
	"errors"
	"math"
)

// MaxSqueezeBytes is the maximum squeeze buffer size tooling may
// allocate at once. Matrix expansion never needs more than a few
// blocks per entry; anything near this limit is a caller bug or an
// untrusted block count.
const MaxSqueezeBytes = 1 << 24 // 16MB

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMultiply multiplies two non-negative integers and returns an error if overflow occurs.
func SafeMultiply(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidLength
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// SafeMakeByteSlice creates a byte slice with bounds checking.
// Returns an error if count is negative or exceeds maxAllowed.
func SafeMakeByteSlice(count, maxAllowed int) ([]byte, error) {
	if count < 0 {
		return nil, ErrInvalidLength
	}
	if count > maxAllowed {
		return nil, ErrExceedsLimit
	}
	return make([]byte, count), nil
}

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}
