package extrinsic_test

import (
	"testing"

	"github.com/snowfork/substrate-go/extrinsic"
	"github.com/snowfork/substrate-go/keyring"
	"github.com/snowfork/substrate-go/metadata"
	"github.com/snowfork/substrate-go/scale"
	"github.com/snowfork/substrate-go/signedext"
	"github.com/stretchr/testify/require"
)

func buildMinimalMetadata(t *testing.T) *metadata.Metadata {
	t.Helper()

	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)

	e.VecLenPrefix(0) // empty type registry
	e.VecLenPrefix(0) // no pallets

	e.CompactUint64(0) // extrinsic ty
	e.Byte(4)           // extrinsic version
	e.VecLenPrefix(2)
	e.ByteVec([]byte("CheckNonce"))
	e.CompactUint64(0)
	e.CompactUint64(0)
	e.ByteVec([]byte("CheckGenesis"))
	e.CompactUint64(0)
	e.CompactUint64(0)

	m, err := metadata.Parse(e.Bytes())
	require.NoError(t, err)
	return m
}

func TestBuildSignedProducesV4Envelope(t *testing.T) {
	md := buildMinimalMetadata(t)
	kp, err := keyring.FromSeed([32]byte{1, 1, 1}, keyring.Ed25519)
	require.NoError(t, err)

	callBytes := []byte{5, 0, 1, 2, 3}
	body, err := extrinsic.BuildSigned(callBytes, kp, md, signedext.Params{
		GenesisHash:    [32]byte{9},
		CheckpointHash: [32]byte{9},
		Nonce:          3,
		Era:            signedext.Immortal(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, body)

	// The Compact<len> prefix plus the envelope should decode the
	// version byte as 0x84 and the MultiAddress tag as 0x00.
	d := scale.NewDecoder(body)
	n, err := d.VecLen()
	require.NoError(t, err)
	require.Equal(t, len(body)-d.Offset(), n)

	version, err := d.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0x84), version)

	addrTag, err := d.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0x00), addrTag)
}

func TestBuildUnsignedPrependsVersionByte(t *testing.T) {
	callBytes := []byte{7, 1}
	body := extrinsic.BuildUnsigned(callBytes)

	d := scale.NewDecoder(body)
	_, err := d.VecLen()
	require.NoError(t, err)

	version, err := d.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0x04), version)
}

func TestBuildSignedRejectsUnsupportedExtension(t *testing.T) {
	e := scale.NewEncoder()
	e.Append([]byte("meta"))
	e.Byte(14)
	e.VecLenPrefix(0)
	e.VecLenPrefix(0)
	e.CompactUint64(0)
	e.Byte(4)
	e.VecLenPrefix(1)
	e.ByteVec([]byte("SomeUnknownExtension"))
	e.CompactUint64(0)
	e.CompactUint64(0)

	md, err := metadata.Parse(e.Bytes())
	require.NoError(t, err)

	kp, err := keyring.FromSeed([32]byte{2}, keyring.Ed25519)
	require.NoError(t, err)

	_, err = extrinsic.BuildSigned([]byte{1}, kp, md, signedext.Params{})
	require.Error(t, err)
}
