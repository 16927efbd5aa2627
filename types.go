package kprism

// Mode identifies the primitive family backing the symmetric layer.
type Mode string

const (
	// AESSHA2Mode backs the layer with AES-256-CTR, SHA-256 and SHA-512
	// ("90s mode": primitives standardized before SHA-3).
	AESSHA2Mode Mode = "AES-SHA2"
	// SHAKEMode backs the layer with SHAKE128, SHAKE256, SHA3-256 and SHA3-512.
	SHAKEMode Mode = "SHAKE"
)

// Fixed widths of the symmetric layer. Seeds and keys cross every API
// boundary as fixed-size arrays, so these hold by construction rather
// than by runtime checks.
const (
	// SeedBytes is the length of an XOF seed.
	SeedBytes = 32
	// KeyBytes is the length of a PRF key.
	KeyBytes = 32
	// SSBytes is the length of the derived shared secret (KDF output).
	SSBytes = 32
	// HashHBytes is the output length of the H hash.
	HashHBytes = 32
	// HashGBytes is the output length of the G hash.
	HashGBytes = 64
)

// Seed is an XOF input seed.
type Seed = [SeedBytes]byte

// Key is a PRF key.
type Key = [KeyBytes]byte
