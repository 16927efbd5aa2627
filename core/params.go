// Package core provides parameter sets and configuration validation for kPRISM.
package core

import (
	"fmt"

	kprism "github.com/BackendStack21/k-prism-go"
)

// Params describes the symmetric-layer configuration for one primitive family.
type Params struct {
	Mode          kprism.Mode `json:"mode"`
	SSBytes       int         `json:"ss_bytes"`        // Shared-secret length
	XOFBlockBytes int         `json:"xof_block_bytes"` // XOF squeeze granularity
}

// AESSHA2Params is the parameter set for the AES-SHA2 ("90s") primitive family.
var AESSHA2Params = Params{
	Mode:          kprism.AESSHA2Mode,
	SSBytes:       32,
	XOFBlockBytes: 64,
}

// SHAKEParams is the parameter set for the SHAKE primitive family.
var SHAKEParams = Params{
	Mode:          kprism.SHAKEMode,
	SSBytes:       32,
	XOFBlockBytes: 168,
}

// ConfigError reports a configuration that can never produce a valid
// binary. It is the only error class the symmetric layer defines; all
// runtime operations are total.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "kprism: invalid configuration: " + e.Reason
}

// GetParams returns the parameter set for the given primitive family.
func GetParams(mode kprism.Mode) (Params, error) {
	switch mode {
	case kprism.AESSHA2Mode:
		return AESSHA2Params, nil
	case kprism.SHAKEMode:
		return SHAKEParams, nil
	default:
		return Params{}, fmt.Errorf("unknown mode: %s", mode)
	}
}

// ValidateParams validates a symmetric-layer configuration.
// The AES-SHA2 family can only derive 256-bit shared secrets; any other
// SSBytes under that mode is rejected before a binary is produced. The
// same rule is enforced at compile time by the mode binding in the
// symmetric package; this function gives tooling a checkable surface.
func ValidateParams(params Params) error {
	if params.Mode != kprism.AESSHA2Mode && params.Mode != kprism.SHAKEMode {
		return &ConfigError{Reason: fmt.Sprintf("unknown mode %q", params.Mode)}
	}
	if params.SSBytes <= 0 {
		return &ConfigError{Reason: "shared-secret length must be positive"}
	}
	if params.Mode == kprism.AESSHA2Mode && params.SSBytes != 32 {
		return &ConfigError{Reason: "AES-SHA2 mode can only generate keys of length 256 bits"}
	}
	switch params.Mode {
	case kprism.AESSHA2Mode:
		if params.XOFBlockBytes != 64 {
			return &ConfigError{Reason: "AES-SHA2 mode uses 64-byte XOF blocks"}
		}
	case kprism.SHAKEMode:
		if params.XOFBlockBytes != 168 {
			return &ConfigError{Reason: "SHAKE mode uses 168-byte XOF blocks"}
		}
	}
	return nil
}
