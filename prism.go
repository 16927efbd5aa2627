// Package kprism implements kPRISM, the symmetric-primitive layer used
// by lattice-based key encapsulation.
// It exposes message hashing (H, G), a streaming extendable-output
// function with (x, y) domain separation, a keyed PRF, and the final
// key-derivation function, all backed by a single primitive family
// fixed at build time: SHAKE (default) or AES-SHA2 (the `ninetys`
// build tag).
//
// WARNING: this layer provides raw cryptographic primitives for a KEM
// implementation. It performs no protocol-level validation; misuse of
// the seeds, nonces, or domain-separation indices is the caller's
// responsibility.
package kprism

// Version of the kPRISM Go implementation.
const Version = "1.0.0"

// API summary:
//
// Symmetric layer (mode-bound, build-time selection):
//   - symmetric.HashH(input) - 32-byte collision-resistant hash
//   - symmetric.HashG(input) - 64-byte collision-resistant hash
//   - symmetric.NewXOF() - streaming XOF; Absorb(seed, x, y) then SqueezeBlocks
//   - symmetric.PRF(out, key, nonce) - keyed, nonce-indexed pseudorandom bytes
//   - symmetric.KDF(input) - 32-byte shared-secret derivation
//   - symmetric.BlockBytes - XOF block size of the bound suite (64 or 168)
//
// Configuration:
//   - core.GetParams(mode) - parameter set for a primitive family
//   - core.ValidateParams(params) - configuration validation
//   - AESSHA2Mode, SHAKEMode - recognized primitive families
