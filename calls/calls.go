// Package calls builds the SCALE-encoded body of a runtime Call —
// `pallet_index || call_index || arguments` — for the pallets this core
// supports natively, plus a `Custom` escape hatch for everything else.
// Every helper resolves its pallet/call indices through a *metadata.Metadata
// rather than hard-coding them, since indices are runtime- and
// version-specific.
package calls

import (
	"math/big"

	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
)

// TransferKind selects which balances transfer call to build.
type TransferKind int

const (
	AllowDeath TransferKind = iota
	KeepAlive
)

const (
	multiAddressId = 0x00

	balancesPallet            = "Balances"
	balancesTransferAllowDeath = "transfer_allow_death"
	balancesTransferKeepAlive  = "transfer_keep_alive"

	systemPallet = "System"
	systemRemark = "remark"
)

// Recipient is a 32-byte account id encoded as MultiAddress::Id, the only
// MultiAddress variant this core produces.
type Recipient [32]byte

func encodeMultiAddressId(e *scale.Encoder, r Recipient) {
	e.Byte(multiAddressId)
	e.Append(r[:])
}

func callHeader(e *scale.Encoder, palletIndex, callIndex uint8) {
	e.Byte(palletIndex)
	e.Byte(callIndex)
}

// BalancesTransfer builds `Balances.transfer_allow_death` or
// `Balances.transfer_keep_alive`, depending on kind.
func BalancesTransfer(md *metadata.Metadata, kind TransferKind, dest Recipient, amount *big.Int) ([]byte, error) {
	callName := balancesTransferAllowDeath
	if kind == KeepAlive {
		callName = balancesTransferKeepAlive
	}

	palletIndex, callIndex, err := md.CallIndex(balancesPallet, callName)
	if err != nil {
		return nil, err
	}

	e := scale.NewEncoder()
	callHeader(e, palletIndex, callIndex)
	encodeMultiAddressId(e, dest)
	e.Compact(amount)
	return e.Bytes(), nil
}

// SystemRemark builds `System.remark(payload)`.
func SystemRemark(md *metadata.Metadata, payload []byte) ([]byte, error) {
	palletIndex, callIndex, err := md.CallIndex(systemPallet, systemRemark)
	if err != nil {
		return nil, err
	}

	e := scale.NewEncoder()
	callHeader(e, palletIndex, callIndex)
	e.ByteVec(payload)
	return e.Bytes(), nil
}

// Custom builds a call for any (pallet, call) pair whose argument bytes
// the caller has already SCALE-encoded — the escape hatch for calls this
// core has no typed helper for.
func Custom(md *metadata.Metadata, pallet, call string, argBytes []byte) ([]byte, error) {
	palletIndex, callIndex, err := md.CallIndex(pallet, call)
	if err != nil {
		return nil, err
	}

	e := scale.NewEncoder()
	callHeader(e, palletIndex, callIndex)
	e.Append(argBytes)
	return e.Bytes(), nil
}
