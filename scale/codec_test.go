package scale

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedIntRoundTrip(t *testing.T) {
	e := NewEncoder().U16(0xbeef).U32(0xcafef00d).U64(0x0123456789abcdef)
	d := NewDecoder(e.Bytes())

	v16, err := d.U16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xbeef), v16)

	v32, err := d.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xcafef00d), v32)

	v64, err := d.U64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789abcdef), v64)
}

func TestU128RoundTrip(t *testing.T) {
	amount := new(big.Int)
	amount.SetString("340282366920938463463374607431768211455", 10) // 2^128-1
	e := NewEncoder().U128(amount)
	d := NewDecoder(e.Bytes())

	got, err := d.U128()
	require.NoError(t, err)
	require.Equal(t, 0, amount.Cmp(got))
}

func TestOptionEncoding(t *testing.T) {
	none := NewEncoder().OptionNone().Bytes()
	require.Equal(t, []byte{0x00}, none)

	some := NewEncoder().OptionSomePrefix().U32(42).Bytes()
	require.Equal(t, append([]byte{0x01}, EncodeU32(42)...), some)

	d := NewDecoder(some)
	present, err := d.OptionSome()
	require.NoError(t, err)
	require.True(t, present)
	v, err := d.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)
}

func TestByteVecRoundTrip(t *testing.T) {
	payload := []byte("hello substrate")
	e := NewEncoder().ByteVec(payload)
	d := NewDecoder(e.Bytes())

	got, err := d.ByteVec()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDecoderNeverReadsPastBuffer(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02})
	_, err := d.Bytes(3)
	require.Error(t, err)
	var scErr *Error
	require.ErrorAs(t, err, &scErr)
	require.Equal(t, KindTruncated, scErr.Kind)
}

func TestBoolRoundTrip(t *testing.T) {
	e := NewEncoder().Bool(true).Bool(false)
	d := NewDecoder(e.Bytes())

	v, err := d.Bool()
	require.NoError(t, err)
	require.True(t, v)

	v, err = d.Bool()
	require.NoError(t, err)
	require.False(t, v)
}
