package main

import (
	"testing"
)

func TestGetArg(t *testing.T) {
	args := []string{"--seed", "aabb", "-x", "3"}
	if v := getArg(args, "--seed", "-s"); v != "aabb" {
		t.Errorf("getArg(--seed) = %q", v)
	}
	if v := getArg(args, "--x", "-x"); v != "3" {
		t.Errorf("getArg(-x) = %q", v)
	}
	if v := getArg(args, "--missing", "-q"); v != "" {
		t.Errorf("getArg(--missing) = %q", v)
	}
	// A flag at the end with no value is ignored.
	if v := getArg([]string{"--seed"}, "--seed", "-s"); v != "" {
		t.Errorf("getArg(trailing flag) = %q", v)
	}
}

func TestParseFixed32(t *testing.T) {
	hex32 := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	seed, err := parseFixed32(hex32, "seed")
	if err != nil {
		t.Fatalf("parseFixed32 failed: %v", err)
	}
	for i := 0; i < 32; i++ {
		if seed[i] != byte(i) {
			t.Fatalf("seed[%d] = %d", i, seed[i])
		}
	}

	if _, err := parseFixed32("", "seed"); err == nil {
		t.Error("parseFixed32 should reject empty input")
	}
	if _, err := parseFixed32("zz", "seed"); err == nil {
		t.Error("parseFixed32 should reject non-hex input")
	}
	if _, err := parseFixed32("aabb", "seed"); err == nil {
		t.Error("parseFixed32 should reject short input")
	}
}

func TestWeakInputWarning(t *testing.T) {
	// The all-zero seed is valid vector input but must be flagged.
	var zero [32]byte
	if msg := weakInputWarning(&zero, "seed"); msg == "" {
		t.Error("weakInputWarning should flag the all-zero seed")
	}

	var seq [32]byte
	for i := range seq {
		seq[i] = byte(i)
	}
	if msg := weakInputWarning(&seq, "key"); msg == "" {
		t.Error("weakInputWarning should flag a sequential key")
	}

	good, err := parseFixed32("8f4a1c6b2e9d35770aa4c1f6e8b2d05391e7c44a6f0b8d231c5e97a2b4d6f810", "seed")
	if err != nil {
		t.Fatalf("parseFixed32 failed: %v", err)
	}
	if msg := weakInputWarning(good, "seed"); msg != "" {
		t.Errorf("weakInputWarning flagged plausible entropy: %s", msg)
	}
}

func TestParseByteArg(t *testing.T) {
	if v, err := parseByteArg("", "x"); err != nil || v != 0 {
		t.Errorf("parseByteArg(empty) = %d, %v", v, err)
	}
	if v, err := parseByteArg("255", "x"); err != nil || v != 255 {
		t.Errorf("parseByteArg(255) = %d, %v", v, err)
	}
	if _, err := parseByteArg("256", "x"); err == nil {
		t.Error("parseByteArg should reject 256")
	}
	if _, err := parseByteArg("-1", "x"); err == nil {
		t.Error("parseByteArg should reject -1")
	}
	if _, err := parseByteArg("abc", "x"); err == nil {
		t.Error("parseByteArg should reject non-decimal input")
	}
}
