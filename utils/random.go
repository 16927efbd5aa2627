// Package utils provides supporting helpers for kPRISM: secure seed
// generation, constant-time comparison, zeroization, and overflow-safe
// sizing of squeeze buffers.
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"
	"runtime"

	kprism "github.com/BackendStack21/k-prism-go"
)

// RandReader is the entropy source used for seed and key generation.
// Tests may replace it with a deterministic reader.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(RandReader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomSeed generates a fresh 32-byte XOF seed.
func RandomSeed() (*kprism.Seed, error) {
	buf, err := SecureRandomBytes(kprism.SeedBytes)
	if err != nil {
		return nil, err
	}
	var seed kprism.Seed
	copy(seed[:], buf)
	Zeroize(buf)
	return &seed, nil
}

// ValidateSeedEntropy checks whether a caller-supplied seed looks like
// real entropy. It rejects obviously weak seeds (constant, sequential,
// low byte diversity). This is a tooling-side sanity check, not a
// rigorous randomness test; the library itself accepts any seed.
func ValidateSeedEntropy(seed *kprism.Seed) error {
	first := seed[0]
	allSame := true
	for _, b := range seed[1:] {
		if b != first {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("seed has low entropy: all bytes are identical")
	}

	isAscending := true
	isDescending := true
	for i := 1; i < len(seed); i++ {
		if seed[i] != seed[i-1]+1 {
			isAscending = false
		}
		if seed[i] != seed[i-1]-1 {
			isDescending = false
		}
		if !isAscending && !isDescending {
			break
		}
	}
	if isAscending || isDescending {
		return errors.New("seed has low entropy: sequential pattern detected")
	}

	unique := make(map[byte]struct{})
	for _, b := range seed {
		unique[b] = struct{}{}
		if len(unique) >= 8 {
			break
		}
	}
	if len(unique) < 8 {
		return errors.New("seed has low entropy: insufficient byte diversity")
	}

	return nil
}

// ConstantTimeEqual compares two byte slices in constant time.
// It returns true if the slices are equal, false otherwise.
// This function leaks only the length of the slices.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites a byte slice with zeros.
// This is used to clear sensitive data from memory.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
