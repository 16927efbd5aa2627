// Package aes256ctr implements the AES-backed XOF and PRF primitives
// for the kPRISM "90s" mode as deterministic AES-256 counter-mode
// keystreams.
//
// The 16-byte CTR IV is a 12-byte nonce followed by a 32-bit big-endian
// block counter starting at zero. The XOF places the domain-separation
// indices (x, y) in the first two nonce bytes; the PRF places its nonce
// byte in the first.
package aes256ctr

import (
	"crypto/cipher"

	"gitlab.com/yawning/bsaes.git"

	kprism "github.com/BackendStack21/k-prism-go"
)

// BlockBytes is the XOF squeeze granularity: four AES blocks.
const BlockBytes = 64

// XOF is a streaming AES-256-CTR extendable-output state. The zero
// value is unabsorbed; Absorb must be called before SqueezeBlocks.
type XOF struct {
	stream cipher.Stream
}

// NewXOF returns a fresh, unabsorbed XOF.
func NewXOF() *XOF {
	return &XOF{}
}

// newStream builds the keystream generator.
// bsaes is constant time on every platform and takes the `crypto/aes`
// fast path when the runtime and CPU support AES-NI.
func newStream(key *kprism.Key, iv *[16]byte) cipher.Stream {
	blk, err := bsaes.NewCipher(key[:])
	if err != nil {
		// 32-byte keys are always valid; this indicates a bug in bsaes.
		panic("aes256ctr: failed to create AES instance: " + err.Error())
	}
	return cipher.NewCTR(blk, iv[:])
}

// Absorb keys the keystream from seed with nonce x ‖ y ‖ 0¹⁰ and
// resets the block counter. Any previously squeezed stream is discarded.
func (s *XOF) Absorb(seed *kprism.Seed, x, y byte) {
	var iv [16]byte
	iv[0] = x
	iv[1] = y
	s.stream = newStream(seed, &iv)
}

// SqueezeBlocks writes the next nblocks*BlockBytes keystream bytes into
// out. Repeated calls extend the stream. Squeezing before Absorb, or
// into a short buffer, is a programming error and panics.
func (s *XOF) SqueezeBlocks(out []byte, nblocks int) {
	if s.stream == nil {
		panic("aes256ctr: SqueezeBlocks before Absorb")
	}
	n := nblocks * BlockBytes
	if len(out) < n {
		panic("aes256ctr: output buffer shorter than requested blocks")
	}
	dst := out[:n]
	for i := range dst {
		dst[i] = 0
	}
	s.stream.XORKeyStream(dst, dst)
}

// PRF fills out with the AES-256-CTR keystream keyed by key with nonce
// placed in the first IV byte. The output length is len(out).
func PRF(out []byte, key *kprism.Key, nonce byte) {
	var iv [16]byte
	iv[0] = nonce
	stream := newStream(key, &iv)
	for i := range out {
		out[i] = 0
	}
	stream.XORKeyStream(out, out)
}
