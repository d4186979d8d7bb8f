package crypto

import (
	"github.com/snowfork/substrate-go/crypto/blake2b"
	"github.com/snowfork/substrate-go/crypto/ed25519"
	"github.com/snowfork/substrate-go/crypto/sr25519"
	"github.com/snowfork/substrate-go/crypto/ss58"
	"github.com/snowfork/substrate-go/crypto/xxhash"
)

// defaultCapability is the sole production implementation of Capability.
// Every operation delegates to a subpackage so each primitive keeps its
// own small, independently testable surface.
type defaultCapability struct{}

// New returns the default Capability implementation. Tests that need a
// deterministic or faulty crypto layer should implement Capability
// directly rather than wrapping this type.
func New() Capability {
	return defaultCapability{}
}

func (defaultCapability) Blake2b(input []byte, outLen int) ([]byte, error) {
	out, err := blake2b.Hash(input, outLen)
	if err != nil {
		return nil, &Error{Kind: KindOutOfRange, Message: "blake2b output length out of range", Cause: err}
	}
	return out, nil
}

func (defaultCapability) Twox64(input []byte) [8]byte {
	return xxhash.Twox64(input)
}

func (defaultCapability) Twox128(input []byte) [16]byte {
	return xxhash.Twox128(input)
}

func (defaultCapability) Ed25519KeypairFromSeed(seed [32]byte) ([32]byte, error) {
	return ed25519.KeypairFromSeed(seed), nil
}

func (defaultCapability) Ed25519Sign(seed [32]byte, msg []byte) ([64]byte, error) {
	return ed25519.Sign(seed, msg), nil
}

func (defaultCapability) Ed25519Verify(public [32]byte, msg []byte, sig [64]byte) bool {
	return ed25519.Verify(public, msg, sig)
}

func (defaultCapability) Sr25519KeypairFromSeed(seed [32]byte) ([32]byte, error) {
	kp, err := sr25519.PublicFromSeed(seed)
	if err != nil {
		return [32]byte{}, &Error{Kind: KindBadSeedLength, Message: "sr25519 key derivation failed", Cause: err}
	}
	return kp, nil
}

func (defaultCapability) Sr25519Sign(seed [32]byte, msg []byte) ([64]byte, error) {
	sig, err := sr25519.Sign(seed, msg)
	if err != nil {
		return [64]byte{}, &Error{Kind: KindSignatureInvalid, Message: "sr25519 signing failed", Cause: err}
	}
	return sig, nil
}

func (defaultCapability) Sr25519Verify(public [32]byte, msg []byte, sig [64]byte) bool {
	return sr25519.Verify(public, msg, sig)
}

func (defaultCapability) Ss58Encode(public [32]byte, version uint16) (string, error) {
	addr, err := ss58.Encode(public, version)
	if err != nil {
		return "", translateSs58Error(err)
	}
	return addr, nil
}

func (defaultCapability) Ss58Decode(address string) ([32]byte, uint16, error) {
	public, version, err := ss58.Decode(address)
	if err != nil {
		return public, version, translateSs58Error(err)
	}
	return public, version, nil
}

func translateSs58Error(err error) error {
	if sserr, ok := err.(*ss58.Error); ok {
		var kind Kind
		switch sserr.Kind {
		case ss58.KindChecksumInvalid:
			kind = KindSs58ChecksumBad
		case ss58.KindFormatUnsupported:
			kind = KindSs58Unsupported
		default:
			kind = KindSs58Unsupported
		}
		return &Error{Kind: kind, Message: sserr.Message}
	}
	return &Error{Kind: KindSs58Unsupported, Message: err.Error()}
}
