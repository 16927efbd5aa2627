//go:build !ninetys

package symmetric

import (
	kprism "github.com/BackendStack21/k-prism-go"
	"github.com/BackendStack21/k-prism-go/primitives/shake"
)

// Active is the suite bound into this binary.
var Active Suite = ShakeSuite{}

// ActiveMode identifies the bound primitive family.
const ActiveMode = kprism.SHAKEMode

// BlockBytes is the XOF squeeze granularity of the bound suite.
const BlockBytes = shake.BlockBytes
