package shake

import (
	"testing"
)

// FuzzKDF checks that KDF is total over arbitrary inputs.
func FuzzKDF(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add(make([]byte, 168))
	f.Add(make([]byte, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		out := KDF(data)
		if len(out) != 32 {
			t.Fatalf("KDF output length %d", len(out))
		}
	})
}

// FuzzPRFOutputLen checks PRF over varying output lengths.
func FuzzPRFOutputLen(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(1))
	f.Add(uint16(168))

	f.Fuzz(func(t *testing.T, n uint16) {
		var key [32]byte
		out := make([]byte, int(n)%4096)
		PRF(out, &key, 0)
	})
}
