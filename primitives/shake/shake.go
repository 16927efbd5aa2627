// Package shake implements the SHAKE-backed XOF, PRF and KDF primitives
// for kPRISM: SHAKE128 for matrix expansion, SHAKE256 for noise-seed
// derivation and shared-secret compression.
package shake

import (
	"sync"

	"golang.org/x/crypto/sha3"

	kprism "github.com/BackendStack21/k-prism-go"
)

// BlockBytes is the SHAKE128 rate, the squeeze granularity of the XOF.
const BlockBytes = 168

var shake256Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake256()
	},
}

// XOF is a streaming SHAKE128 extendable-output state. The zero value
// is unabsorbed; Absorb must be called before SqueezeBlocks. An XOF
// must not be shared between goroutines without external
// synchronization, but independent instances are fully concurrent.
type XOF struct {
	state    sha3.ShakeHash
	absorbed bool
}

// NewXOF returns a fresh, unabsorbed XOF.
func NewXOF() *XOF {
	return &XOF{state: sha3.NewShake128()}
}

// Absorb initializes the state from seed ‖ x ‖ y. Any previously
// squeezed stream is discarded.
func (s *XOF) Absorb(seed *kprism.Seed, x, y byte) {
	if s.state == nil {
		s.state = sha3.NewShake128()
	} else {
		s.state.Reset()
	}
	_, _ = s.state.Write(seed[:])
	_, _ = s.state.Write([]byte{x, y})
	s.absorbed = true
}

// SqueezeBlocks writes the next nblocks*BlockBytes bytes of the output
// stream into out. Repeated calls extend the stream; the concatenation
// of successive squeezes equals a single larger squeeze.
// Squeezing before Absorb, or into a short buffer, is a programming
// error and panics.
func (s *XOF) SqueezeBlocks(out []byte, nblocks int) {
	if !s.absorbed {
		panic("shake: SqueezeBlocks before Absorb")
	}
	n := nblocks * BlockBytes
	if len(out) < n {
		panic("shake: output buffer shorter than requested blocks")
	}
	_, _ = s.state.Read(out[:n])
}

// PRF fills out with SHAKE256(key ‖ nonce). The output length is
// len(out); distinct nonces under one key yield independent streams.
func PRF(out []byte, key *kprism.Key, nonce byte) {
	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()

	_, _ = h.Write(key[:])
	_, _ = h.Write([]byte{nonce})
	_, _ = h.Read(out)
}

// KDF compresses input into the shared-secret length via SHAKE256.
func KDF(input []byte) [kprism.SSBytes]byte {
	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()

	var out [kprism.SSBytes]byte
	_, _ = h.Write(input)
	_, _ = h.Read(out[:])
	return out
}
