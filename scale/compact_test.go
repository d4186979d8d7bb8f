package scale

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactRoundTripBoundaries(t *testing.T) {
	cases := []uint64{
		0, 63, 64, 16383, 16384, 1<<30 - 1, 1 << 30, 1<<32 - 1,
	}
	for _, n := range cases {
		enc := EncodeCompactUint64(n)
		got, consumed, err := DecodeCompactUint64(enc)
		require.NoError(t, err)
		require.Equal(t, n, got)
		require.Equal(t, len(enc), consumed)
	}
}

func TestCompactRoundTripBigIntegers(t *testing.T) {
	maxU64 := new(big.Int).SetUint64(1<<64 - 1)
	maxU128 := new(big.Int).Lsh(big.NewInt(1), 128)
	maxU128.Sub(maxU128, big.NewInt(1))

	for _, n := range []*big.Int{maxU64, maxU128} {
		enc, err := EncodeCompact(n)
		require.NoError(t, err)
		got, consumed, err := DecodeCompact(enc)
		require.NoError(t, err)
		require.Equal(t, 0, n.Cmp(got))
		require.Equal(t, len(enc), consumed)
	}
}

func TestCompactKnownEncoding(t *testing.T) {
	// 100_000_000_000 (100 billion) is the canonical big-integer-mode
	// example used across Substrate tooling: length byte 0x07 (k=5,
	// mode=3) followed by the 5-byte little-endian payload.
	enc := EncodeCompactUint64(100_000_000_000)
	require.Equal(t, []byte{0x07, 0x00, 0xe8, 0x76, 0x48, 0x17}, enc)

	got, consumed, err := DecodeCompactUint64(enc)
	require.NoError(t, err)
	require.Equal(t, uint64(100_000_000_000), got)
	require.Equal(t, 6, consumed)
}

func TestCompactDecodeTruncated(t *testing.T) {
	_, _, err := DecodeCompact(nil)
	require.Error(t, err)

	var scErr *Error
	require.ErrorAs(t, err, &scErr)
	require.Equal(t, KindTruncated, scErr.Kind)
}

func TestCompactDecodeUint64OutOfRange(t *testing.T) {
	maxU128 := new(big.Int).Lsh(big.NewInt(1), 128)
	maxU128.Sub(maxU128, big.NewInt(1))
	enc, err := EncodeCompact(maxU128)
	require.NoError(t, err)

	_, _, err = DecodeCompactUint64(enc)
	require.Error(t, err)
	var scErr *Error
	require.ErrorAs(t, err, &scErr)
	require.Equal(t, KindOutOfRange, scErr.Kind)
}
