// Package sr25519 implements the Schnorrkel/Ristretto signature scheme
// Substrate calls Sr25519, the optional alternative spec.md's crypto
// capability allows alongside Ed25519.
package sr25519

import (
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
)

var signingContext = []byte("substrate")

// PublicFromSeed derives the public key for a raw 32-byte mini-secret
// seed, bypassing URI resolution — used by the crypto.Capability default
// implementation, which already holds a raw seed.
func PublicFromSeed(seed [32]byte) ([32]byte, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return [32]byte{}, fmt.Errorf("sr25519: derive mini secret key: %w", err)
	}
	pub := msk.Public()
	var out [32]byte
	enc := pub.Encode()
	copy(out[:], enc[:])
	return out, nil
}

// Sign signs msg with the Sr25519 key derived from a raw seed.
func Sign(seed [32]byte, msg []byte) ([64]byte, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return [64]byte{}, err
	}
	priv := msk.ExpandEd25519()
	t := schnorrkel.NewSigningContext(signingContext, msg)
	sig, err := priv.Sign(t)
	if err != nil {
		return [64]byte{}, err
	}
	return sig.Encode(), nil
}

// Verify checks an Sr25519 signature against a raw public key and
// message.
func Verify(public [32]byte, msg []byte, sig [64]byte) bool {
	pub := new(schnorrkel.PublicKey)
	if err := pub.Decode(public); err != nil {
		return false
	}
	var decoded schnorrkel.Signature
	if err := decoded.Decode(sig); err != nil {
		return false
	}
	t := schnorrkel.NewSigningContext(signingContext, msg)
	ok, err := pub.Verify(&decoded, t)
	return err == nil && ok
}
