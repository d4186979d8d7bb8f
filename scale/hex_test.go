package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	s := HexEncode(b)
	require.Equal(t, "0xdeadbeef", s)

	got, err := HexDecode(s)
	require.NoError(t, err)
	require.Equal(t, b, got)

	got, err = HexDecode("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestHexDecodeMalformed(t *testing.T) {
	_, err := HexDecode("0xabc")
	require.Error(t, err)

	_, err = HexDecode("0xzz")
	require.Error(t, err)

	var scErr *Error
	require.ErrorAs(t, err, &scErr)
	require.Equal(t, KindMalformedHex, scErr.Kind)
}
