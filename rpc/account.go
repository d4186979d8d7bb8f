package rpc

import (
	"context"
	"math/big"

	"github.com/snowfork/substrate-go/crypto"
	"github.com/snowfork/substrate-go/scale"
)

// AccountData is the balance portion of System.Account.
type AccountData struct {
	Free     *big.Int
	Reserved *big.Int
	Frozen   *big.Int
	Flags    *big.Int
}

// AccountInfo is the decoded System.Account storage value.
type AccountInfo struct {
	Nonce       uint32
	Consumers   uint32
	Providers   uint32
	Sufficients uint32
	Data        AccountData
}

func decodeAccountInfo(b []byte) (AccountInfo, error) {
	d := scale.NewDecoder(b)

	var info AccountInfo
	var err error

	if info.Nonce, err = d.U32(); err != nil {
		return info, err
	}
	if info.Consumers, err = d.U32(); err != nil {
		return info, err
	}
	if info.Providers, err = d.U32(); err != nil {
		return info, err
	}
	if info.Sufficients, err = d.U32(); err != nil {
		return info, err
	}
	if info.Data.Free, err = d.U128(); err != nil {
		return info, err
	}
	if info.Data.Reserved, err = d.U128(); err != nil {
		return info, err
	}
	if info.Data.Frozen, err = d.U128(); err != nil {
		return info, err
	}
	if info.Data.Flags, err = d.U128(); err != nil {
		return info, err
	}
	return info, nil
}

// systemAccountStorageKey builds the System.Account map key:
// twox128("System") || twox128("Account") || blake2_128(pubkey) || pubkey.
func systemAccountStorageKey(cap crypto.Capability, pubkey [32]byte) ([]byte, error) {
	palletHash := cap.Twox128([]byte("System"))
	itemHash := cap.Twox128([]byte("Account"))
	keyHash, err := cap.Blake2b(pubkey[:], 16)
	if err != nil {
		return nil, err
	}

	key := make([]byte, 0, 16+16+16+32)
	key = append(key, palletHash[:]...)
	key = append(key, itemHash[:]...)
	key = append(key, keyHash...)
	key = append(key, pubkey[:]...)
	return key, nil
}

// SystemAccount reads and decodes the System.Account entry for pubkey.
func (c *Client) SystemAccount(ctx context.Context, cap crypto.Capability, pubkey [32]byte, at *[32]byte) (AccountInfo, error) {
	key, err := systemAccountStorageKey(cap, pubkey)
	if err != nil {
		return AccountInfo{}, err
	}

	b, present, err := c.StateGetStorage(ctx, key, at)
	if err != nil {
		return AccountInfo{}, err
	}
	if !present {
		return AccountInfo{}, nil
	}

	return decodeAccountInfo(b)
}
