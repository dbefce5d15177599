// Package hash fingerprints ordering requests.
//
// A fingerprint identifies the exact show and preferences an order was
// computed from, so two runs can be compared and a cached answer can be
// recognised. The package provides a real implementation using crypto/sha256
// and a fake implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher provides an abstraction for fingerprinting.
type Hasher interface {
	// HashBytes computes the hash of data.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes computes the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with a fixed answer for testing.
type FakeHasher struct {
	Fingerprint string
}

// NewFakeHasher creates a FakeHasher that always answers fingerprint.
func NewFakeHasher(fingerprint string) *FakeHasher {
	return &FakeHasher{Fingerprint: fingerprint}
}

// HashBytes returns the fixed fingerprint.
func (h *FakeHasher) HashBytes(data []byte) string {
	return h.Fingerprint
}
