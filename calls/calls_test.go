package calls_test

import (
	"math/big"
	"testing"

	"github.com/snowfork/substrate-go/calls"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/snowfork/substrate-go/xcm"
	"github.com/stretchr/testify/require"
)

type variantSpec struct {
	name  string
	index uint8
}

func encodeVariantType(e *scale.Encoder, variants []variantSpec) {
	e.VecLenPrefix(0)
	e.VecLenPrefix(0)
	e.Byte(1)
	e.VecLenPrefix(len(variants))
	for _, v := range variants {
		e.ByteVec([]byte(v.name))
		e.VecLenPrefix(0)
		e.Byte(v.index)
		e.VecLenPrefix(0)
	}
	e.VecLenPrefix(0)
}

func encodePallet(e *scale.Encoder, name string, callsType uint64, index uint8) {
	e.ByteVec([]byte(name))
	e.OptionNone()
	e.OptionSomePrefix()
	e.CompactUint64(callsType)
	e.OptionNone()
	e.VecLenPrefix(0)
	e.OptionNone()
	e.Byte(index)
	e.VecLenPrefix(0)
}

func buildMetadata(t *testing.T) *metadata.Metadata {
	t.Helper()

	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)

	e.VecLenPrefix(3)
	e.CompactUint64(0)
	encodeVariantType(e, []variantSpec{{"transfer_allow_death", 0}, {"transfer_keep_alive", 3}})
	e.CompactUint64(1)
	encodeVariantType(e, []variantSpec{{"remark", 0}})
	e.CompactUint64(2)
	encodeVariantType(e, []variantSpec{{"limited_teleport_assets", 8}})

	e.VecLenPrefix(3)
	encodePallet(e, "Balances", 0, 5)
	encodePallet(e, "System", 1, 0)
	encodePallet(e, "PolkadotXcm", 2, 30)

	e.CompactUint64(0)
	e.Byte(4)
	e.VecLenPrefix(0)

	m, err := metadata.Parse(e.Bytes())
	require.NoError(t, err)
	return m
}

func TestBalancesTransfer(t *testing.T) {
	m := buildMetadata(t)

	var dest calls.Recipient
	dest[0] = 0xaa

	body, err := calls.BalancesTransfer(m, calls.KeepAlive, dest, big.NewInt(1000))
	require.NoError(t, err)

	require.Equal(t, byte(5), body[0])  // pallet index
	require.Equal(t, byte(3), body[1])  // call index
	require.Equal(t, byte(0x00), body[2]) // MultiAddress::Id tag
}

func TestSystemRemark(t *testing.T) {
	m := buildMetadata(t)

	body, err := calls.SystemRemark(m, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, byte(0), body[0])
	require.Equal(t, byte(0), body[1])
}

func TestCustomCallUnknownPallet(t *testing.T) {
	m := buildMetadata(t)
	_, err := calls.Custom(m, "NotReal", "call", nil)
	require.Error(t, err)
}

func TestXcmTransfer(t *testing.T) {
	m := buildMetadata(t)

	dest := xcm.VersionedLocation{Location: xcm.Location{Parents: 1, Interior: xcm.Here()}}
	beneficiary := xcm.VersionedLocation{Location: xcm.Location{
		Parents:  0,
		Interior: xcm.X(xcm.AccountId32(nil, [32]byte{1})),
	}}
	assets := xcm.VersionedAssets{Assets: []xcm.Asset{{
		Id:  xcm.Location{Parents: 1, Interior: xcm.Here()},
		Fun: xcm.Fungible(big.NewInt(5_000_000_000)),
	}}}

	body, err := calls.XcmTransfer(m, xcm.LimitedTeleportAssets, dest, beneficiary, assets, 0, xcm.Unlimited())
	require.NoError(t, err)
	require.Equal(t, byte(30), body[0])
	require.Equal(t, byte(8), body[1])
}
