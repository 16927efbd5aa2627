//go:build ninetys

package symmetric

import (
	kprism "github.com/BackendStack21/k-prism-go"
	"github.com/BackendStack21/k-prism-go/primitives/aes256ctr"
)

// The AES-SHA2 suite can only generate keys of length 256 bits; this
// fails the build if SSBytes ever departs from 32.
const _ = -uint(kprism.SSBytes ^ 32)

// Active is the suite bound into this binary.
var Active Suite = AesSha2Suite{}

// ActiveMode identifies the bound primitive family.
const ActiveMode = kprism.AESSHA2Mode

// BlockBytes is the XOF squeeze granularity of the bound suite.
const BlockBytes = aes256ctr.BlockBytes
