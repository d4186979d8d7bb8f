// Package blake2b wraps golang.org/x/crypto/blake2b behind the
// variable-output-length contract this module needs (N in 1..=64).
package blake2b

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hash computes blake2b(input) truncated/sized to outLen bytes, 1..=64.
func Hash(input []byte, outLen int) ([]byte, error) {
	if outLen < 1 || outLen > 64 {
		return nil, fmt.Errorf("blake2b: invalid output length %d", outLen)
	}
	h, err := blake2b.New(outLen, nil)
	if err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	_, _ = h.Write(input)
	return h.Sum(nil), nil
}

// Hash256 is the common case used for signing-payload hashing and
// general-purpose 32-byte digests.
func Hash256(input []byte) [32]byte {
	return blake2b.Sum256(input)
}

// Hash512 is used for the SS58 checksum ("SS58PRE" || payload).
func Hash512(input []byte) [64]byte {
	return blake2b.Sum512(input)
}

// Hash128 produces the 16-byte digest used for storage-key blake2_128
// concatenation hashing of map keys.
func Hash128(input []byte) ([16]byte, error) {
	out, err := Hash(input, 16)
	var fixed [16]byte
	if err != nil {
		return fixed, err
	}
	copy(fixed[:], out)
	return fixed, nil
}
