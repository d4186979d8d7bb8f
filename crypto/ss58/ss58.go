// Package ss58 implements the SS58 address format: Base58 over
// version_byte || pubkey[32] || checksum[2], where the checksum is the
// first two bytes of blake2b_512("SS58PRE" || version_byte || pubkey).
//
// Only the single-byte version form (network_prefix < 64) is supported;
// multi-byte prefixes are a declared future extension (spec.md §9).
package ss58

import (
	"fmt"

	"github.com/decred/base58"
	"github.com/snowfork/substrate-go/crypto/blake2b"
)

const checksumPrefix = "SS58PRE"

// Kind mirrors crypto.Kind for the errors this package returns without
// importing the parent package (avoiding an import cycle with the
// capability wiring in default.go).
type Kind string

const (
	KindChecksumInvalid Kind = "Ss58ChecksumInvalid"
	KindFormatUnsupported Kind = "Ss58FormatUnsupported"
)

// Error is this package's typed error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ss58: %s: %s", e.Kind, e.Message)
}

// Encode renders a 32-byte public key as an SS58 address under the given
// single-byte network version (0..63).
func Encode(public [32]byte, version uint16) (string, error) {
	if version >= 64 {
		return "", &Error{Kind: KindFormatUnsupported, Message: "multi-byte version prefixes are not supported by this core"}
	}

	payload := append([]byte{byte(version)}, public[:]...)
	checksum := checksum(payload)

	full := append(payload, checksum[:2]...)
	return base58.Encode(full), nil
}

// Decode parses an SS58 address, returning the public key and the
// single-byte network version it was encoded under.
func Decode(address string) (public [32]byte, version uint16, err error) {
	raw := base58.Decode(address)
	if len(raw) != 35 {
		return public, 0, &Error{Kind: KindFormatUnsupported, Message: fmt.Sprintf("unexpected decoded length %d (multi-byte prefixes unsupported)", len(raw))}
	}

	payload := raw[:33]
	gotChecksum := raw[33:35]
	wantChecksum := checksum(payload)
	if gotChecksum[0] != wantChecksum[0] || gotChecksum[1] != wantChecksum[1] {
		return public, 0, &Error{Kind: KindChecksumInvalid, Message: "checksum mismatch"}
	}

	version = uint16(payload[0])
	copy(public[:], payload[1:33])
	return public, version, nil
}

func checksum(payload []byte) [64]byte {
	input := append([]byte(checksumPrefix), payload...)
	return blake2b.Hash512(input)
}
