// Package signedext implements the signed-extension engine: given the
// runtime's declared, ordered list of signed-extension identifiers, it
// produces the `extra` bytes (appended to the call for signing and sent
// on the wire) and the `additional_signed` bytes (appended only to the
// signing payload) each extension contributes.
package signedext

import (
	"math/big"

	"github.com/snowfork/substrate-go/scale"
)

// Params carries the per-transaction and per-chain values the built-in
// signed extensions read from. CheckpointHash should equal GenesisHash
// when Era is Immortal.
type Params struct {
	SpecVersion        uint32
	TransactionVersion uint32
	GenesisHash        [32]byte
	CheckpointHash     [32]byte
	Nonce              uint64
	Tip                *big.Int
	Era                Era
}

type contribution struct {
	extra      []byte
	additional []byte
}

func build(identifier string, p Params) (contribution, error) {
	switch identifier {
	case "CheckNonZeroSender":
		return contribution{}, nil

	case "CheckSpecVersion":
		return contribution{additional: scale.EncodeU32(p.SpecVersion)}, nil

	case "CheckTxVersion":
		return contribution{additional: scale.EncodeU32(p.TransactionVersion)}, nil

	case "CheckGenesis":
		return contribution{additional: p.GenesisHash[:]}, nil

	case "CheckMortality", "CheckEra":
		return contribution{extra: p.Era.Encode(), additional: p.CheckpointHash[:]}, nil

	case "CheckNonce":
		return contribution{extra: scale.EncodeCompactUint64(p.Nonce)}, nil

	case "CheckWeight":
		return contribution{}, nil

	case "ChargeTransactionPayment":
		tip := p.Tip
		if tip == nil {
			tip = big.NewInt(0)
		}
		b, err := scale.EncodeCompact(tip)
		if err != nil {
			return contribution{}, err
		}
		return contribution{extra: b}, nil

	case "ChargeAssetTxPayment":
		return contribution{extra: []byte{0x00}}, nil

	case "CheckMetadataHash":
		return contribution{extra: []byte{0x00}, additional: []byte{0x00}}, nil

	default:
		return contribution{}, UnsupportedSignedExtension(identifier)
	}
}

// Build walks order — the runtime-declared signed-extension identifiers,
// in their declared order — and returns the concatenated `extra` and
// `additional_signed` byte strings.
func Build(order []string, p Params) (extra []byte, additionalSigned []byte, err error) {
	for _, identifier := range order {
		c, err := build(identifier, p)
		if err != nil {
			return nil, nil, err
		}
		extra = append(extra, c.extra...)
		additionalSigned = append(additionalSigned, c.additional...)
	}
	return extra, additionalSigned, nil
}
