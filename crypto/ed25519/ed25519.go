// Package ed25519 implements the Ed25519 operations this module's crypto
// capability exposes (RFC 8032), over the standard library primitive —
// Ed25519 itself is treated as an abstract primitive by the spec and the
// standard library implementation is the one every Go Substrate client in
// the ecosystem (including go-substrate-rpc-client) already relies on, so
// there is no third-party library from the retrieval pack to prefer here.
package ed25519

import (
	stded25519 "crypto/ed25519"
	"fmt"
)

// KeypairFromSeed derives the 32-byte public key for a 32-byte seed.
func KeypairFromSeed(seed [32]byte) [32]byte {
	priv := stded25519.NewKeyFromSeed(seed[:])
	var pub [32]byte
	copy(pub[:], priv.Public().(stded25519.PublicKey))
	return pub
}

// Sign signs msg with the key derived from seed.
func Sign(seed [32]byte, msg []byte) [64]byte {
	priv := stded25519.NewKeyFromSeed(seed[:])
	sig := stded25519.Sign(priv, msg)
	var out [64]byte
	copy(out[:], sig)
	return out
}

// Verify checks a signature against a public key and message.
func Verify(public [32]byte, msg []byte, sig [64]byte) bool {
	return stded25519.Verify(public[:], msg, sig[:])
}

// ValidateSeed returns an error naming the failing length if seed isn't
// exactly 32 bytes; callers constructing a Keypair from untrusted input
// should call this before KeypairFromSeed.
func ValidateSeed(seed []byte) error {
	if len(seed) != 32 {
		return fmt.Errorf("ed25519: seed must be 32 bytes, got %d", len(seed))
	}
	return nil
}
