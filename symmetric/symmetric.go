// Package symmetric is the kPRISM dispatch layer: it binds message
// hashing (H, G), the streaming XOF, the PRF and the KDF to a single
// primitive family chosen at build time.
//
// The default build binds the SHAKE suite. Building with the `ninetys`
// tag binds the AES-SHA2 suite instead. No runtime switch exists; the
// one-primitive-per-binary guarantee is part of the KEM security
// argument. Both suite types are always compiled so that tests and
// vector tooling can compare the families.
package symmetric

import (
	kprism "github.com/BackendStack21/k-prism-go"
	"github.com/BackendStack21/k-prism-go/utils"
)

// XOF is a streaming extendable-output state with (x, y) domain
// separation. Its lifecycle is absorb, then any number of squeezes;
// re-absorbing discards the stream and starts a fresh context.
// Squeezing an unabsorbed state is a programming error and panics.
//
// An XOF is exclusively owned by the call sequence that absorbed it.
// Independent instances share no state and may be driven in parallel.
type XOF interface {
	// Absorb initializes the state deterministically from seed ‖ x ‖ y.
	Absorb(seed *kprism.Seed, x, y byte)
	// SqueezeBlocks writes the next nblocks blocks of the output stream
	// into out. Block size is the suite's BlockBytes.
	SqueezeBlocks(out []byte, nblocks int)
}

// Suite is the capability set the KEM consumes from one primitive family.
type Suite interface {
	// HashH is the 32-byte collision-resistant hash.
	HashH(input []byte) [kprism.HashHBytes]byte
	// HashG is the 64-byte collision-resistant hash.
	HashG(input []byte) [kprism.HashGBytes]byte
	// NewXOF returns a fresh, unabsorbed XOF.
	NewXOF() XOF
	// PRF fills out with a keyed, nonce-indexed pseudorandom stream.
	PRF(out []byte, key *kprism.Key, nonce byte)
	// KDF compresses input into the shared-secret length.
	KDF(input []byte) [kprism.SSBytes]byte
	// BlockBytes is the XOF squeeze granularity.
	BlockBytes() int
	// Mode identifies the primitive family.
	Mode() kprism.Mode
}

// HashH computes the 32-byte H hash under the bound suite.
func HashH(input []byte) [kprism.HashHBytes]byte {
	return Active.HashH(input)
}

// HashG computes the 64-byte G hash under the bound suite.
func HashG(input []byte) [kprism.HashGBytes]byte {
	return Active.HashG(input)
}

// NewXOF returns a fresh XOF of the bound suite.
func NewXOF() XOF {
	return Active.NewXOF()
}

// PRF fills out with the bound suite's keyed pseudorandom stream.
func PRF(out []byte, key *kprism.Key, nonce byte) {
	Active.PRF(out, key, nonce)
}

// KDF derives the shared secret from input under the bound suite.
func KDF(input []byte) [kprism.SSBytes]byte {
	return Active.KDF(input)
}

// NewSqueezeBuffer allocates a buffer sized for nblocks squeeze blocks
// of the bound suite. It exists for tooling that takes block counts
// from untrusted input; direct consumers size buffers with BlockBytes.
func NewSqueezeBuffer(nblocks int) ([]byte, error) {
	n, err := utils.SafeMultiply(nblocks, BlockBytes)
	if err != nil {
		return nil, err
	}
	return utils.SafeMakeByteSlice(n, utils.MaxSqueezeBytes)
}
