package symmetric

import (
	"crypto/sha256"
	"crypto/sha512"

	kprism "github.com/BackendStack21/k-prism-go"
	"github.com/BackendStack21/k-prism-go/primitives/aes256ctr"
)

// AesSha2Suite backs the symmetric layer with SHA-256, SHA-512 and
// AES-256-CTR, restricting the KEM to pre-SHA-3 primitives.
type AesSha2Suite struct{}

var _ Suite = AesSha2Suite{}

func (AesSha2Suite) HashH(input []byte) [kprism.HashHBytes]byte {
	return sha256.Sum256(input)
}

func (AesSha2Suite) HashG(input []byte) [kprism.HashGBytes]byte {
	return sha512.Sum512(input)
}

func (AesSha2Suite) NewXOF() XOF {
	return aes256ctr.NewXOF()
}

func (AesSha2Suite) PRF(out []byte, key *kprism.Key, nonce byte) {
	aes256ctr.PRF(out, key, nonce)
}

func (AesSha2Suite) KDF(input []byte) [kprism.SSBytes]byte {
	return sha256.Sum256(input)
}

func (AesSha2Suite) BlockBytes() int {
	return aes256ctr.BlockBytes
}

func (AesSha2Suite) Mode() kprism.Mode {
	return kprism.AESSHA2Mode
}
