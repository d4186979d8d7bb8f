// Package extrinsic assembles the V4 signed and unsigned extrinsic wire
// envelopes: version byte, MultiAddress signer, MultiSignature, extra,
// and call bytes, each length-prefixed with a Compact<len> of the whole
// body.
package extrinsic

import (
	"github.com/snowfork/substrate-go/crypto"
	"github.com/snowfork/substrate-go/keyring"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/snowfork/substrate-go/signedext"
)

const (
	versionSigned   = 0x84
	versionUnsigned = 0x04
	multiAddressId  = 0x00

	// signingPayloadHashThreshold is the point past which the signing
	// payload is replaced by its Blake2b digest before signing, so
	// arbitrarily large calls never produce an unbounded signing input.
	signingPayloadHashThreshold = 256
)

// BuildSigned performs the full C7 signing sequence: build extra and
// additional_signed from the metadata-declared signed-extension order,
// assemble and (if oversized) hash the signing payload, sign it, and
// assemble the final V4 envelope.
func BuildSigned(callBytes []byte, kp *keyring.Keypair, md *metadata.Metadata, params signedext.Params) ([]byte, error) {
	order := md.SignedExtensionOrder()

	extra, additionalSigned, err := signedext.Build(order, params)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(callBytes)+len(extra)+len(additionalSigned))
	payload = append(payload, callBytes...)
	payload = append(payload, extra...)
	payload = append(payload, additionalSigned...)

	if len(payload) > signingPayloadHashThreshold {
		digest, err := crypto.New().Blake2b(payload, 32)
		if err != nil {
			return nil, err
		}
		payload = digest
	}

	signature, err := kp.Sign(payload)
	if err != nil {
		return nil, err
	}

	schemeTag, err := schemeTagFor(kp.Scheme())
	if err != nil {
		return nil, err
	}

	public := kp.Public()

	body := scale.NewEncoder()
	body.Byte(versionSigned)
	body.Byte(multiAddressId)
	body.Append(public[:])
	body.Byte(schemeTag)
	body.Append(signature[:])
	body.Append(extra)
	body.Append(callBytes)

	return prependLength(body.Bytes()), nil
}

// BuildUnsigned assembles an unsigned V4 extrinsic: version byte 0x04
// followed directly by the call bytes.
func BuildUnsigned(callBytes []byte) []byte {
	body := scale.NewEncoder()
	body.Byte(versionUnsigned)
	body.Append(callBytes)
	return prependLength(body.Bytes())
}

func prependLength(body []byte) []byte {
	e := scale.NewEncoder()
	e.CompactUint64(uint64(len(body)))
	e.Append(body)
	return e.Bytes()
}

func schemeTagFor(scheme crypto.Scheme) (byte, error) {
	switch scheme {
	case crypto.SchemeEd25519:
		return 0x00, nil
	case crypto.SchemeSr25519:
		return 0x01, nil
	default:
		return 0, errUnsupportedScheme(byte(scheme))
	}
}
