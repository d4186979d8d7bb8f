package signedext_test

import (
	"math/big"
	"testing"

	"github.com/snowfork/substrate-go/signedext"
	"github.com/stretchr/testify/require"
)

func TestBuildKnownExtensionsImmortal(t *testing.T) {
	genesis := [32]byte{1, 2, 3}
	order := []string{
		"CheckNonZeroSender",
		"CheckSpecVersion",
		"CheckTxVersion",
		"CheckGenesis",
		"CheckMortality",
		"CheckNonce",
		"CheckWeight",
		"ChargeTransactionPayment",
	}

	extra, additional, err := signedext.Build(order, signedext.Params{
		SpecVersion:        100,
		TransactionVersion: 5,
		GenesisHash:        genesis,
		CheckpointHash:     genesis,
		Nonce:              7,
		Tip:                big.NewInt(0),
		Era:                signedext.Immortal(),
	})
	require.NoError(t, err)

	// extra = era(0x00) || nonce(Compact(7)=0x1c) || tip(Compact(0)=0x00)
	require.Equal(t, []byte{0x00, 0x1c, 0x00}, extra)

	// additional = spec_version(u32 LE) || tx_version(u32 LE) || genesis || checkpoint
	require.Len(t, additional, 4+4+32+32)
}

func TestBuildRejectsUnknownExtension(t *testing.T) {
	_, _, err := signedext.Build([]string{"SomeMadeUpExtension"}, signedext.Params{})
	require.Error(t, err)
}

func TestMortalEraEncodesTwoBytes(t *testing.T) {
	era := signedext.NewMortalEra(1000)
	require.Len(t, era.Encode(), 2)
}

func TestImmortalEraEncodesSingleZeroByte(t *testing.T) {
	require.Equal(t, []byte{0x00}, signedext.Immortal().Encode())
}
