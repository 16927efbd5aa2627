package symmetric

import (
	"golang.org/x/crypto/sha3"

	kprism "github.com/BackendStack21/k-prism-go"
	"github.com/BackendStack21/k-prism-go/primitives/shake"
)

// ShakeSuite backs the symmetric layer with SHA3-256, SHA3-512,
// SHAKE128 and SHAKE256.
type ShakeSuite struct{}

var _ Suite = ShakeSuite{}

func (ShakeSuite) HashH(input []byte) [kprism.HashHBytes]byte {
	return sha3.Sum256(input)
}

func (ShakeSuite) HashG(input []byte) [kprism.HashGBytes]byte {
	return sha3.Sum512(input)
}

func (ShakeSuite) NewXOF() XOF {
	return shake.NewXOF()
}

func (ShakeSuite) PRF(out []byte, key *kprism.Key, nonce byte) {
	shake.PRF(out, key, nonce)
}

func (ShakeSuite) KDF(input []byte) [kprism.SSBytes]byte {
	return shake.KDF(input)
}

func (ShakeSuite) BlockBytes() int {
	return shake.BlockBytes
}

func (ShakeSuite) Mode() kprism.Mode {
	return kprism.SHAKEMode
}
